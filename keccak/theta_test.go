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
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/dvlrd/keccaklac/crypto/circuit"
)

func TestKeccak(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Keccak Suite")
}

// theta's state here uses w=1, so the single-bit rotation inside theta's
// D step is the identity and the hand computation below reduces to plain
// column XORs, making it easy to verify by hand.
var _ = Describe("theta (L5)", func() {
	It("matches a hand-computed worked example", func() {
		const w = 1
		state := stateRegion{base: 2, w: w}

		// A[x][y] = 1 only at (x,y) = (0,0), 0 everywhere else.
		input := make([]int, state.size())
		input[state.id(0, 0, 0)-state.base] = 1

		lac := circuit.New()
		basic := circuit.NewBasicLayer()
		for i, bit := range input {
			basic.SetBit(state.base+circuit.ID(i), bit)
		}
		lac.SetBasicLayer(basic)

		_, err := buildTheta(lac, 1, state, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(lac.Validate()).To(Succeed())

		out, err := lac.Evaluate()
		Expect(err).NotTo(HaveOccurred())

		// C[x] = A[x][0]^...^A[x][4]: C[0]=1, C[1..4]=0.
		// D[x] = C[x-1] ^ C[x+1] (w=1, rotation is the identity):
		//   D[0]=C[4]^C[1]=0, D[1]=C[0]^C[2]=1, D[2]=C[1]^C[3]=0,
		//   D[3]=C[2]^C[4]=0, D[4]=C[3]^C[0]=1.
		// A'[x][y] = A[x][y] ^ D[x]:
		//   row 0: (1,0,0,0,0)   (D[0]=0, passes A through)
		//   row 1: (1,1,1,1,1)   (D[1]=1, A[1][*]=0)
		//   row 2: (0,0,0,0,0)   (D[2]=0)
		//   row 3: (0,0,0,0,0)   (D[3]=0)
		//   row 4: (1,1,1,1,1)   (D[4]=1, A[4][*]=0)
		want := []int{
			1, 0, 0, 0, 0,
			1, 1, 1, 1, 1,
			0, 0, 0, 0, 0,
			0, 0, 0, 0, 0,
			1, 1, 1, 1, 1,
		}
		// out holds the top layer's gates in ascending ID order: the two
		// reserved constants first (state.base=2 sits right after them),
		// then the 25 state bits.
		Expect(out[0]).To(Equal(0))
		Expect(out[1]).To(Equal(1))
		Expect(out[2:]).To(Equal(want))
	})
})
