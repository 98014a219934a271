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

import "github.com/dvlrd/keccaklac/crypto/circuit"

// thetaDepthCost is the number of layers θ occupies, per §4.3: 8 for the
// four chained column XORs producing C, 2 for D, 2 for the final A^D.
const thetaDepthCost = 12

// buildTheta appends θ's 12 layers, starting at depth d, into lac. carry
// lists IDs (e.g. still-unabsorbed message wires) that must survive every
// intermediate layer untouched. Returns the depth immediately above θ.
//
// Every XOR call below writes its sum/product intermediates to dedicated
// scratch lanes rather than folding them back into its own inputs: several
// of θ's inputs (a state lane feeding both the chain and, later, the final
// combine; a C lane feeding two different D columns, once directly and once
// through θ's single-bit rotate) are read by more than one call within the same layer pair, and
// reusing an input slot as scratch would either collide with another call's
// write to the same ID or silently destroy a value a later layer still
// needs.
func buildTheta(lac *circuit.LAC, d uint64, state stateRegion, carry []circuit.ID) (uint64, error) {
	w := state.w

	// C[x][z] = A[x][0][z] ^ A[x][1][z] ^ A[x][2][z] ^ A[x][3][z] ^ A[x][4][z],
	// computed as a chain of four two-layer XORs per column, five columns
	// sharing the same eight layers.
	cur := make([][]circuit.ID, 5)
	for x := 0; x < 5; x++ {
		cur[x] = state.lane(x, 0)
	}
	for stage := 0; stage < 4; stage++ {
		first := circuit.NewLayer(d)
		first.AddConstants()
		second := circuit.NewLayer(d + 1)
		second.AddConstants()
		for x := 0; x < 5; x++ {
			in1 := state.lane(x, stage+1)
			var out []circuit.ID
			if stage < 3 {
				out = thetaChainLane(x, stage, w)
			} else {
				out = cLane(cBase, x, w)
			}
			sum := thetaSumLane(x, stage, w)
			prod := thetaProdLane(x, stage, w)
			if err := circuit.AppendXorScratch(first, second, cur[x], in1, sum, prod, out); err != nil {
				return d, err
			}
			cur[x] = out
		}
		if err := copyThroughAll(first, state.ids(), carry); err != nil {
			return d, err
		}
		if err := copyThroughAll(second, state.ids(), carry); err != nil {
			return d, err
		}
		if err := lac.AppendLayer(first); err != nil {
			return d, err
		}
		if err := lac.AppendLayer(second); err != nil {
			return d, err
		}
		d += 2
	}

	// D[x][z] = C[x-1][z] ^ rotate_left(C[x+1][z], 1).
	{
		first := circuit.NewLayer(d)
		first.AddConstants()
		second := circuit.NewLayer(d + 1)
		second.AddConstants()
		for x := 0; x < 5; x++ {
			left := cLane(cBase, (x+4)%5, w)
			right := circuit.RotateLeft(cLane(cBase, (x+1)%5, w), 1)
			out := cLane(dBase, x, w)
			sum := thetaDSumLane(x, w)
			prod := thetaDProdLane(x, w)
			if err := circuit.AppendXorScratch(first, second, left, right, sum, prod, out); err != nil {
				return d, err
			}
		}
		if err := copyThroughAll(first, state.ids(), carry); err != nil {
			return d, err
		}
		if err := copyThroughAll(second, state.ids(), carry); err != nil {
			return d, err
		}
		if err := lac.AppendLayer(first); err != nil {
			return d, err
		}
		if err := lac.AppendLayer(second); err != nil {
			return d, err
		}
		d += 2
	}

	// A'[x][y][z] = A[x][y][z] ^ D[x][z], written back into the state region
	// in place, for all 25 lanes. D[x] is shared across all five y at a
	// given x, so its product scratch cannot alias D[x] itself.
	{
		first := circuit.NewLayer(d)
		first.AddConstants()
		second := circuit.NewLayer(d + 1)
		second.AddConstants()
		for x := 0; x < 5; x++ {
			dLane := cLane(dBase, x, w)
			for y := 0; y < 5; y++ {
				lane := state.lane(x, y)
				prod := thetaFinalProdLane(x, y, w)
				if err := circuit.AppendXorScratch(first, second, lane, dLane, lane, prod, lane); err != nil {
					return d, err
				}
			}
		}
		if err := copyThroughAll(first, carry); err != nil {
			return d, err
		}
		if err := copyThroughAll(second, carry); err != nil {
			return d, err
		}
		if err := lac.AppendLayer(first); err != nil {
			return d, err
		}
		if err := lac.AppendLayer(second); err != nil {
			return d, err
		}
		d += 2
	}

	return d, nil
}
