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

// chiDepthCost is the number of layers χ occupies, per §4.3: NOT (1),
// AND (1), XOR (2).
const chiDepthCost = 4

// buildChi appends χ's 4 layers at depth d:
// A'[x][y][z] = A[x][y][z] ^ (NOT A[x][y+1][z] AND A[x][y+2][z]).
// All 25 lanes are independent, so each of the four layers is shared across
// every (x, y). NOT/AND scratch is carved out of cBase/dBase: safe to reuse
// θ's scratch bases since χ's layers sit at depths strictly above θ's
// within the same round. Every layer calls AddConstants: each one's
// state/carry pass-throughs and the XOR stage's bilinear gates read
// ConstZero/ConstOne from the layer immediately below them, per §4.2, and
// ι's layer above reads them from χ's last layer.
func buildChi(lac *circuit.LAC, d uint64, state stateRegion, carry []circuit.ID) (uint64, error) {
	w := state.w

	notLayer := circuit.NewLayer(d)
	notLayer.AddConstants()
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			in := state.lane(x, (y+1)%5)
			out := chiScratchLane(cBase, x, y, w)
			if err := circuit.AppendNot(notLayer, in, out); err != nil {
				return d, err
			}
		}
	}
	if err := copyThroughAll(notLayer, state.ids(), carry); err != nil {
		return d, err
	}
	if err := lac.AppendLayer(notLayer); err != nil {
		return d, err
	}
	d++

	andLayer := circuit.NewLayer(d)
	andLayer.AddConstants()
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			notIn := chiScratchLane(cBase, x, y, w)
			andIn := state.lane(x, (y+2)%5)
			out := chiScratchLane(dBase, x, y, w)
			if err := circuit.AppendAnd(andLayer, notIn, andIn, out); err != nil {
				return d, err
			}
		}
	}
	if err := copyThroughAll(andLayer, state.ids(), carry); err != nil {
		return d, err
	}
	if err := lac.AppendLayer(andLayer); err != nil {
		return d, err
	}
	d++

	first := circuit.NewLayer(d)
	first.AddConstants()
	second := circuit.NewLayer(d + 1)
	second.AddConstants()
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			lane := state.lane(x, y)
			andOut := chiScratchLane(dBase, x, y, w)
			if err := circuit.AppendXor(first, second, lane, andOut, lane); err != nil {
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

	return d, nil
}
