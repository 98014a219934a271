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
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/dvlrd/keccaklac/crypto/circuit"
)

var _ = Describe("one Keccak-f round", func() {
	It("occupies exactly 18 layers and validates structurally (P1-P3)", func() {
		const w = 8
		state := stateRegion{base: 2, w: w}

		lac := circuit.New()
		basic := circuit.NewBasicLayer()
		for i := 0; i < state.size(); i++ {
			basic.SetBit(state.base+circuit.ID(i), (i*13+1)%2)
		}
		lac.SetBasicLayer(basic)

		d, err := buildRound(lac, 1, state, 0, w, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(d).To(Equal(uint64(1 + roundDepthCost)))
		Expect(roundDepthCost).To(Equal(18))
		Expect(lac.LayerCount()).To(Equal(roundDepthCost))

		Expect(lac.Validate()).To(Succeed()) // P1, transitively P3 via Layer.Append
	})
})

var _ = Describe("Keccak-f", func() {
	It("runs n_r rounds and validates end to end", func() {
		const w = 8
		state := stateRegion{base: 2, w: w}

		lac := circuit.New()
		basic := circuit.NewBasicLayer()
		for i := 0; i < state.size(); i++ {
			basic.SetBit(state.base+circuit.ID(i), 0)
		}
		lac.SetBasicLayer(basic)

		d, err := buildKeccakF(lac, 1, state, w, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(d).To(Equal(uint64(1 + NumRounds(w)*roundDepthCost)))
		Expect(lac.Validate()).To(Succeed())

		// All-zero state is a fixed point of theta, rho/pi and chi (theta/chi
		// leave an all-zero lane untouched, rho/pi only relocate lanes), but
		// not of iota: RC[0] for w=8 has at least one set bit, which does NOT
		// keep the state all-zero -- so this only asserts the circuit
		// evaluates cleanly, not that the state stays zero.
		out, err := lac.Evaluate()
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(HaveLen(state.size() + 2)) // + the two reserved constants
	})
})
