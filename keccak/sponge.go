// Copyright © 2020 AMIS Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package keccak

import (
	"github.com/dvlrd/keccaklac/crypto/circuit"
	"github.com/dvlrd/keccaklac/logger"
)

// Build constructs, but does not evaluate, the LAC computing the Keccak
// sponge hash of inputBits under the given rate/capacity/output-length
// parameters, per §6's build(input_bits, r, c, l) -> LAC.
func Build(inputBits []int, r, c, l int) (*circuit.LAC, error) {
	w, err := LaneWidth(r, c, l)
	if err != nil {
		return nil, err
	}

	blocks := (len(inputBits) + 1 + r - 1) / r
	paddedLen := blocks * r
	stateBase := circuit.FirstFreeID + circuit.ID(paddedLen)
	state := stateRegion{base: stateBase, w: w}

	logger.Logger().Debug("keccak: building sponge",
		"input_bits", len(inputBits), "r", r, "c", c, "l", l, "w", w, "blocks", blocks)

	lac := circuit.New()
	basic := circuit.NewBasicLayer()
	for i, bit := range inputBits {
		basic.SetBit(circuit.FirstFreeID+circuit.ID(i), bit)
	}
	lac.SetBasicLayer(basic)

	d, err := buildFirstLayer(lac, inputBits, r, blocks, state)
	if err != nil {
		return nil, err
	}

	for i := 0; i < blocks; i++ {
		future := futureMessageIDs(i, blocks, r)
		d, err = buildAbsorbBlock(lac, d, i, r, state, future)
		if err != nil {
			return nil, err
		}
		d, err = buildKeccakF(lac, d, state, w, future)
		if err != nil {
			return nil, err
		}
		logger.Logger().Debug("keccak: absorbed block", "block", i, "of", blocks)
	}

	d, err = buildSqueeze(lac, d, state, w, r, l)
	if err != nil {
		return nil, err
	}

	logger.Logger().Debug("keccak: sponge built", "layers", lac.LayerCount(), "gates", lac.GateCount())
	return lac, nil
}

// BuildAndEvaluate is §6's single compound operation: build(input, r, c, l)
// followed immediately by Evaluate().
func BuildAndEvaluate(inputBits []int, r, c, l int) ([]int, error) {
	lac, err := Build(inputBits, r, c, l)
	if err != nil {
		return nil, err
	}
	return lac.Evaluate()
}

// buildFirstLayer appends depth 1: pass through the constants and input
// bits, append the pad10*1 padding, and zero-initialize the state region.
func buildFirstLayer(lac *circuit.LAC, inputBits []int, r, blocks int, state stateRegion) (uint64, error) {
	l := circuit.NewLayer(1)
	if err := l.CopyThrough([]circuit.ID{circuit.ConstZero, circuit.ConstOne}); err != nil {
		return 1, err
	}
	inputIDs := make([]circuit.ID, len(inputBits))
	for i := range inputBits {
		inputIDs[i] = circuit.FirstFreeID + circuit.ID(i)
	}
	if err := l.CopyThrough(inputIDs); err != nil {
		return 1, err
	}

	padStart := circuit.FirstFreeID + circuit.ID(len(inputBits))
	padEnd := circuit.FirstFreeID + circuit.ID(blocks*r-1)
	if padStart == padEnd {
		if err := l.Append(circuit.NewAddGate(padStart, circuit.ConstZero, circuit.ConstOne)); err != nil {
			return 1, err
		}
	} else {
		if err := l.Append(circuit.NewAddGate(padStart, circuit.ConstZero, circuit.ConstOne)); err != nil {
			return 1, err
		}
		for pos := padStart + 1; pos < padEnd; pos++ {
			if err := l.Append(circuit.NewAddGate(pos, circuit.ConstZero, circuit.ConstZero)); err != nil {
				return 1, err
			}
		}
		if err := l.Append(circuit.NewAddGate(padEnd, circuit.ConstZero, circuit.ConstOne)); err != nil {
			return 1, err
		}
	}

	for _, id := range state.ids() {
		if err := l.Append(circuit.NewAddGate(id, circuit.ConstZero, circuit.ConstZero)); err != nil {
			return 1, err
		}
	}

	if err := lac.AppendLayer(l); err != nil {
		return 1, err
	}
	return 2, nil
}

// futureMessageIDs returns the padded-message IDs for blocks still to be
// absorbed after block i, which must survive every layer of block i's own
// absorb-XOR and Keccak-f application.
func futureMessageIDs(i, blocks, r int) []circuit.ID {
	var ids []circuit.ID
	for j := i + 1; j < blocks; j++ {
		base := circuit.FirstFreeID + circuit.ID(j*r)
		for k := 0; k < r; k++ {
			ids = append(ids, base+circuit.ID(k))
		}
	}
	return ids
}

// buildAbsorbBlock appends the two-layer XOR absorbing the i-th padded
// message block into the first r bits of the state region, per §4.4.
func buildAbsorbBlock(lac *circuit.LAC, d uint64, i, r int, state stateRegion, carry []circuit.ID) (uint64, error) {
	msgBase := circuit.FirstFreeID + circuit.ID(i*r)
	msgBlock := make([]circuit.ID, r)
	firstR := make([]circuit.ID, r)
	for k := 0; k < r; k++ {
		msgBlock[k] = msgBase + circuit.ID(k)
		firstR[k] = state.base + circuit.ID(k)
	}
	rest := state.ids()[r:]

	first := circuit.NewLayer(d)
	first.AddConstants()
	second := circuit.NewLayer(d + 1)
	second.AddConstants()
	if err := circuit.AppendXor(first, second, msgBlock, firstR, firstR); err != nil {
		return d, err
	}
	if err := copyThroughAll(first, rest, carry); err != nil {
		return d, err
	}
	if err := copyThroughAll(second, rest, carry); err != nil {
		return d, err
	}
	if err := lac.AppendLayer(first); err != nil {
		return d, err
	}
	if err := lac.AppendLayer(second); err != nil {
		return d, err
	}
	return d + 2, nil
}

// buildSqueeze appends the squeezing phase: repeatedly copy the state's
// first r bits to freshly-allocated output IDs, re-permuting with Keccak-f
// between copies until at least l bits are collected, then relabels the
// squeezed output IDs down to the final digest wires 0..l-1.
func buildSqueeze(lac *circuit.LAC, d uint64, state stateRegion, w, r, l int) (uint64, error) {
	firstR := make([]circuit.ID, r)
	for k := 0; k < r; k++ {
		firstR[k] = state.base + circuit.ID(k)
	}

	squeezed := 0
	for squeezed < l {
		layer := circuit.NewLayer(d)
		// AddConstants here, not on the final relabel layer below: whatever
		// comes next (another Keccak-f application, or the final relabel's
		// own pass-through gates) reads ConstZero from this depth.
		layer.AddConstants()
		newOut := make([]circuit.ID, r)
		for k := 0; k < r; k++ {
			newOut[k] = outBase + circuit.ID(squeezed+k)
		}
		if err := layer.CopyThroughRenamed(firstR, newOut); err != nil {
			return d, err
		}
		if err := layer.CopyThrough(state.ids()); err != nil {
			return d, err
		}
		prevOut := make([]circuit.ID, squeezed)
		for k := 0; k < squeezed; k++ {
			prevOut[k] = outBase + circuit.ID(k)
		}
		if err := layer.CopyThrough(prevOut); err != nil {
			return d, err
		}
		if err := lac.AppendLayer(layer); err != nil {
			return d, err
		}
		d++
		squeezed += r

		if squeezed < l {
			carry := make([]circuit.ID, squeezed)
			for k := 0; k < squeezed; k++ {
				carry[k] = outBase + circuit.ID(k)
			}
			var err error
			d, err = buildKeccakF(lac, d, state, w, carry)
			if err != nil {
				return d, err
			}
			logger.Logger().Debug("keccak: squeeze iteration", "collected", squeezed, "of", l)
		}
	}

	final := circuit.NewLayer(d)
	src := make([]circuit.ID, l)
	dst := make([]circuit.ID, l)
	for i := 0; i < l; i++ {
		src[i] = outBase + circuit.ID(i)
		dst[i] = circuit.ID(i)
	}
	if err := final.CopyThroughRenamed(src, dst); err != nil {
		return d, err
	}
	if err := lac.AppendLayer(final); err != nil {
		return d, err
	}
	return d + 1, nil
}
