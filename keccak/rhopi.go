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

// rhoPiDepthCost is the number of layers π∘ρ occupies, per §4.3.
const rhoPiDepthCost = 1

// buildRhoPi appends π∘ρ's single layer at depth d: for each (x, y), the
// lane at (x, y) moves to (y, (2x+3y) mod 5) while rotating its bits left
// by ROT[x+5y]. Every lane is touched exactly once, so the 25 destination
// lanes partition the whole state region with no collisions. AddConstants is
// required here: χ's following NOT layer reads ConstOne from this depth for
// its bilinear gates, and its own state/carry pass-throughs read ConstZero
// from this depth too.
func buildRhoPi(lac *circuit.LAC, d uint64, state stateRegion, carry []circuit.ID) (uint64, error) {
	w := state.w
	l := circuit.NewLayer(d)
	l.AddConstants()

	srcIDs := make([]circuit.ID, 0, 25*w)
	dstIDs := make([]circuit.ID, 0, 25*w)
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			rotated := circuit.RotateLeft(state.lane(x, y), rotationOffset(x, y, w))
			srcIDs = append(srcIDs, rotated...)
			dstIDs = append(dstIDs, state.lane(y, (2*x+3*y)%5)...)
		}
	}
	if err := l.CopyThroughRenamed(srcIDs, dstIDs); err != nil {
		return d, err
	}
	if err := l.CopyThrough(carry); err != nil {
		return d, err
	}
	if err := lac.AppendLayer(l); err != nil {
		return d, err
	}
	return d + 1, nil
}
