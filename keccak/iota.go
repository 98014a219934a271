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

// iotaDepthCost is the number of layers ι occupies, per §4.3.
const iotaDepthCost = 1

// buildIota appends ι's single layer at depth d: lane A[0][0] is XORed with
// the round constant RC[round], a value fixed at construction time, so each
// bit either passes through (RC bit 0) or is NOTted (RC bit 1). Bit
// indexing of RC[round] is little-endian within the lane.
func buildIota(lac *circuit.LAC, d uint64, state stateRegion, round, w int, carry []circuit.ID) (uint64, error) {
	l := circuit.NewLayer(d)
	l.AddConstants()

	lane := state.lane(0, 0)
	rc := roundConstant(round, w)
	var notIn, notOut, passIDs []circuit.ID
	for z := 0; z < w; z++ {
		if (rc>>uint(z))&1 == 1 {
			notIn = append(notIn, lane[z])
			notOut = append(notOut, lane[z])
		} else {
			passIDs = append(passIDs, lane[z])
		}
	}
	if len(notIn) > 0 {
		if err := circuit.AppendNot(l, notIn, notOut); err != nil {
			return d, err
		}
	}
	if err := l.CopyThrough(passIDs); err != nil {
		return d, err
	}

	otherLanes := make([]circuit.ID, 0, 24*w)
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			if x == 0 && y == 0 {
				continue
			}
			otherLanes = append(otherLanes, state.lane(x, y)...)
		}
	}
	if err := copyThroughAll(l, otherLanes, carry); err != nil {
		return d, err
	}
	if err := lac.AppendLayer(l); err != nil {
		return d, err
	}
	return d + 1, nil
}
