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

package circuit

// Kind tags the three gate variants a Gate can be.
type Kind string

const (
	// KindAdd computes A + B.
	KindAdd Kind = "ADD"
	// KindMul computes A * B.
	KindMul Kind = "MUL"
	// KindBilinear computes (sum of Left terms) * (sum of Right terms), the
	// R1CS-style gate used to fold a linear combination into one layer.
	KindBilinear Kind = "BILINEAR"
)

// LinearTerm is one (coefficient, wire) pair inside a bilinear gate's linear
// combination. Pairing the coefficient with its ID in a single struct (as
// opposed to two parallel slices) makes it impossible for the two to drift
// out of sync in length.
type LinearTerm struct {
	Coeff int64
	Input ID
}

// ValueSource is anything a Gate can read its upstream inputs from: either
// the basic layer (depth 0) or an already-evaluated Layer.
type ValueSource interface {
	Lookup(id ID) (int64, bool)
}

// Gate is a single wire definition at depth >= 1. Exactly one of (A, B) or
// (Left, Right) is meaningful, depending on Kind.
type Gate struct {
	ID   ID
	Kind Kind

	// Add / Mul.
	A, B ID

	// Bilinear.
	Left, Right []LinearTerm

	value     int64
	evaluated bool
}

// NewAddGate builds a Gate computing out = a + b.
func NewAddGate(out, a, b ID) *Gate {
	return &Gate{ID: out, Kind: KindAdd, A: a, B: b}
}

// NewMulGate builds a Gate computing out = a * b.
func NewMulGate(out, a, b ID) *Gate {
	return &Gate{ID: out, Kind: KindMul, A: a, B: b}
}

// NewBilinearGate builds a Gate computing out = (sum of left)*(sum of right).
func NewBilinearGate(out ID, left, right []LinearTerm) *Gate {
	return &Gate{ID: out, Kind: KindBilinear, Left: left, Right: right}
}

// NewPassThroughGate builds the trivial add gate out = 0 + src used to carry
// a wire forward to the next depth unchanged (a "copy-through").
func NewPassThroughGate(out, src ID) *Gate {
	return NewAddGate(out, ConstZero, src)
}

// evaluate computes the gate's output from the given upstream source,
// caching the result on the gate itself. missingErr is the error reported
// when an input ID is not found in prev: ErrUnpopulatedInput for a depth-1
// gate reading the basic layer, ErrMissingUpstreamWire otherwise (§7's
// error taxonomy distinguishes the two cases even though both are detected
// the same way, by a failed lookup one layer down).
func (g *Gate) evaluate(prev ValueSource, missingErr error) (int64, error) {
	switch g.Kind {
	case KindAdd:
		a, ok := prev.Lookup(g.A)
		if !ok {
			return 0, missingErr
		}
		b, ok := prev.Lookup(g.B)
		if !ok {
			return 0, missingErr
		}
		g.value = a + b
	case KindMul:
		a, ok := prev.Lookup(g.A)
		if !ok {
			return 0, missingErr
		}
		b, ok := prev.Lookup(g.B)
		if !ok {
			return 0, missingErr
		}
		g.value = a * b
	case KindBilinear:
		l, err := foldLinear(g.Left, prev, missingErr)
		if err != nil {
			return 0, err
		}
		r, err := foldLinear(g.Right, prev, missingErr)
		if err != nil {
			return 0, err
		}
		g.value = l * r
	default:
		return 0, ErrUnsupportedGateKind
	}
	g.evaluated = true
	return g.value, nil
}

func foldLinear(terms []LinearTerm, prev ValueSource, missingErr error) (int64, error) {
	var sum int64
	for _, t := range terms {
		v, ok := prev.Lookup(t.Input)
		if !ok {
			return 0, missingErr
		}
		sum += t.Coeff * v
	}
	return sum, nil
}

// inputs returns every upstream ID this gate reads, used by the
// construction-time validation pass.
func (g *Gate) inputs() []ID {
	switch g.Kind {
	case KindAdd, KindMul:
		return []ID{g.A, g.B}
	case KindBilinear:
		ids := make([]ID, 0, len(g.Left)+len(g.Right))
		for _, t := range g.Left {
			ids = append(ids, t.Input)
		}
		for _, t := range g.Right {
			ids = append(ids, t.Input)
		}
		return ids
	default:
		return nil
	}
}

// cost is the gate's weight in LAC.GateCount: a bilinear gate is costed as 3
// (it folds two linear combinations and a product), an add/mul gate as 1,
// mirroring proof-system cost models.
func (g *Gate) cost() int {
	if g.Kind == KindBilinear {
		return 3
	}
	return 1
}
