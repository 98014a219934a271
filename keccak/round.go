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

// roundDepthCost is one Keccak-f round's total layer count: θ (12) +
// π∘ρ (1) + χ (4) + ι (1) = 18, per §4.3's "Round assembly".
const roundDepthCost = thetaDepthCost + rhoPiDepthCost + chiDepthCost + iotaDepthCost

// buildRound appends one Keccak-f round (θ, π∘ρ, χ, ι in that order) at
// depth d, and returns the depth immediately above it.
func buildRound(lac *circuit.LAC, d uint64, state stateRegion, round, w int, carry []circuit.ID) (uint64, error) {
	var err error
	d, err = buildTheta(lac, d, state, carry)
	if err != nil {
		return d, err
	}
	d, err = buildRhoPi(lac, d, state, carry)
	if err != nil {
		return d, err
	}
	d, err = buildChi(lac, d, state, carry)
	if err != nil {
		return d, err
	}
	d, err = buildIota(lac, d, state, round, w, carry)
	if err != nil {
		return d, err
	}
	return d, nil
}

// buildKeccakF appends nr = NumRounds(w) rounds of Keccak-f to lac, starting
// at depth d, and returns the depth immediately above the permutation.
func buildKeccakF(lac *circuit.LAC, d uint64, state stateRegion, w int, carry []circuit.ID) (uint64, error) {
	nr := NumRounds(w)
	var err error
	for round := 0; round < nr; round++ {
		d, err = buildRound(lac, d, state, round, w, carry)
		if err != nil {
			return d, err
		}
	}
	return d, nil
}
