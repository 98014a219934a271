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

// Scratch ID bases reserved for per-round intermediates, per §3: C_BASE and
// D_BASE hold θ's C[x][z]/D[x][z] (and, at other round depths, χ's NOT/AND
// intermediates — safe to share since a wire ID is only unique per layer,
// and θ and χ never occupy the same depth within a round). OutBase holds
// squeezed output bits before the final relabel to 0..l-1.
const (
	cBase   circuit.ID = 1_000_000_000
	dBase   circuit.ID = 2_000_000_000
	outBase circuit.ID = 3_000_000_000
)

// stateRegion locates the 25*w consecutive IDs holding the sponge state
// S[x][y][z] in row-major (x, y, z) order, per §3.
type stateRegion struct {
	base circuit.ID
	w    int
}

// id returns the wire ID for lane (x, y), bit z.
func (s stateRegion) id(x, y, z int) circuit.ID {
	return s.base + circuit.ID((x*5+y)*s.w+z)
}

// lane returns the w wire IDs for lane (x, y), indexed by z.
func (s stateRegion) lane(x, y int) []circuit.ID {
	ids := make([]circuit.ID, s.w)
	for z := 0; z < s.w; z++ {
		ids[z] = s.id(x, y, z)
	}
	return ids
}

// ids returns all 25*w state IDs in canonical (x, y, z) order.
func (s stateRegion) ids() []circuit.ID {
	ids := make([]circuit.ID, 0, 25*s.w)
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			ids = append(ids, s.lane(x, y)...)
		}
	}
	return ids
}

// size returns 25*w, the number of IDs the state region occupies.
func (s stateRegion) size() int {
	return 25 * s.w
}

// cLane returns the w scratch IDs for lane x of a 5-lane scratch range at
// base: θ's C[x][z] (base cBase) or D[x][z] (base dBase).
func cLane(base circuit.ID, x, w int) []circuit.ID {
	ids := make([]circuit.ID, w)
	for z := 0; z < w; z++ {
		ids[z] = base + circuit.ID(x*w+z)
	}
	return ids
}

// chiScratchLane returns the w scratch IDs for χ's per-(x,y) NOT/AND
// intermediate, carved out of base (cBase for NOT, dBase for AND) using the
// full 25-lane range rather than θ's narrower 5-lane range; the two stages
// never share a depth so this is safe (see the comment on cBase/dBase above).
func chiScratchLane(base circuit.ID, x, y, w int) []circuit.ID {
	ids := make([]circuit.ID, w)
	for z := 0; z < w; z++ {
		ids[z] = base + circuit.ID((x*5+y)*w+z)
	}
	return ids
}

// thetaChainLane returns the w scratch IDs for θ's stage-th intra-column
// XOR-chain partial sum at column x (stage in [0,2]), carved out just past
// C's own 5*w range so it never collides with the final C[x][z] values.
func thetaChainLane(x, stage, w int) []circuit.ID {
	base := cBase + circuit.ID(5*w*(stage+1))
	ids := make([]circuit.ID, w)
	for z := 0; z < w; z++ {
		ids[z] = base + circuit.ID(x*w+z)
	}
	return ids
}

// thetaSumLane and thetaProdLane return per-(x,stage) scratch for an
// AppendXorScratch call's sum/product intermediates, distinct from both the
// chain's own input and output lanes. θ's C-chain and D step read shared,
// rotated lanes across several XOR calls within one layer pair (e.g. C[2]
// feeds both D[3]'s left and D[1]'s rotated right), so the sum/product
// scratch must never alias an input that another call in the same layer
// still needs — see AppendXorScratch's doc comment.
func thetaSumLane(x, stage, w int) []circuit.ID {
	base := cBase + circuit.ID(5*w*4) + circuit.ID(5*w*stage)
	ids := make([]circuit.ID, w)
	for z := 0; z < w; z++ {
		ids[z] = base + circuit.ID(x*w+z)
	}
	return ids
}

func thetaProdLane(x, stage, w int) []circuit.ID {
	base := cBase + circuit.ID(5*w*4) + circuit.ID(5*w*4) + circuit.ID(5*w*stage)
	ids := make([]circuit.ID, w)
	for z := 0; z < w; z++ {
		ids[z] = base + circuit.ID(x*w+z)
	}
	return ids
}

// thetaDSumLane and thetaDProdLane are the analogous scratch lanes for θ's
// D computation, carved out of dBase rather than cBase since D's own
// output occupies dBase's first 5*w range.
func thetaDSumLane(x, w int) []circuit.ID {
	base := dBase + circuit.ID(5*w)
	ids := make([]circuit.ID, w)
	for z := 0; z < w; z++ {
		ids[z] = base + circuit.ID(x*w+z)
	}
	return ids
}

func thetaDProdLane(x, w int) []circuit.ID {
	base := dBase + circuit.ID(10*w)
	ids := make([]circuit.ID, w)
	for z := 0; z < w; z++ {
		ids[z] = base + circuit.ID(x*w+z)
	}
	return ids
}

// thetaFinalProdLane is the product scratch for θ's closing A[x][y] ^ D[x]
// combine, one lane per (x, y); needed because D[x] is the same input for
// all five y at a given x, so the product intermediate cannot alias D[x]'s
// own IDs without one y's write colliding with the next.
func thetaFinalProdLane(x, y, w int) []circuit.ID {
	base := cBase + circuit.ID(60*w)
	ids := make([]circuit.ID, w)
	for z := 0; z < w; z++ {
		ids[z] = base + circuit.ID((x*5+y)*w+z)
	}
	return ids
}

// copyThroughAll is a convenience over Layer.CopyThrough for multiple ID
// sets, skipping nils.
func copyThroughAll(l *circuit.Layer, idSets ...[]circuit.ID) error {
	for _, ids := range idSets {
		if err := l.CopyThrough(ids); err != nil {
			return err
		}
	}
	return nil
}
