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

// AppendNot appends, into an existing layer, one bilinear gate per bit
// computing out[i] = 1 - in[i]. Unlike Not, it does not allocate a layer, so
// callers can put several independent NOT sub-circuits into one shared layer
// (e.g. χ's 25 parallel lanes) alongside that layer's other gates. Like Not,
// it does not call AddConstants.
func AppendNot(l *Layer, in, out []ID) error {
	if len(in) != len(out) {
		return ErrLengthMismatch
	}
	for i := range in {
		g := NewBilinearGate(out[i],
			[]LinearTerm{{Coeff: 1, Input: ConstOne}, {Coeff: -1, Input: in[i]}},
			[]LinearTerm{{Coeff: 1, Input: ConstOne}},
		)
		if err := l.Append(g); err != nil {
			return err
		}
	}
	return nil
}

// AppendAnd appends, into an existing layer, one Mul gate per bit computing
// out[i] = in0[i] * in1[i]. See AppendNot for why this exists alongside And.
func AppendAnd(l *Layer, in0, in1, out []ID) error {
	if len(in0) != len(out) || len(in1) != len(out) {
		return ErrLengthMismatch
	}
	for i := range out {
		if err := l.Append(NewMulGate(out[i], in0[i], in1[i])); err != nil {
			return err
		}
	}
	return nil
}

// AppendXor appends, into two existing layers (first at depth d, second at
// d+1), the two-layer XOR sub-circuit: out[i] = in0[i] + in1[i] - 2*in0[i]*in1[i].
// As with AppendNot/AppendAnd, this lets callers share one pair of layers
// across many independent XOR sub-circuits (χ's 25 lanes, the sponge's
// block-absorb XOR) without re-defining the reserved constants once per
// sub-circuit. It reuses in0[i]/in1[i] themselves as the sum/product
// scratch IDs, which is only safe when no other gate appended to the same
// layer-pair also reads in0 or in1 — i.e. each bit of in0/in1 is consumed by
// exactly this one XOR call. Callers that share an input lane across several
// XOR calls in the same layer (θ's C/D computation, where a rotated C lane
// feeds two different destination columns) must use AppendXorScratch
// instead, with dedicated scratch IDs.
func AppendXor(first, second *Layer, in0, in1, out []ID) error {
	return AppendXorScratch(first, second, in0, in1, in0, in1, out)
}

// AppendXorScratch is AppendXor with the sum/product intermediates written
// to caller-supplied scratch IDs (sumOut, prodOut) instead of being folded
// back into in0/in1. Use this whenever in0 or in1 is also read by another
// XOR call appended to the same layer pair, so that one call's scratch
// write cannot collide with or shadow another call's still-needed input.
func AppendXorScratch(first, second *Layer, in0, in1, sumOut, prodOut, out []ID) error {
	if len(in0) != len(out) || len(in1) != len(out) || len(sumOut) != len(out) || len(prodOut) != len(out) {
		return ErrLengthMismatch
	}
	for i := range out {
		if err := first.Append(NewAddGate(sumOut[i], in0[i], in1[i])); err != nil {
			return err
		}
		if err := first.Append(NewMulGate(prodOut[i], in0[i], in1[i])); err != nil {
			return err
		}
		bilinear := NewBilinearGate(out[i],
			[]LinearTerm{{Coeff: 1, Input: sumOut[i]}, {Coeff: -2, Input: prodOut[i]}},
			[]LinearTerm{{Coeff: 1, Input: ConstOne}},
		)
		if err := second.Append(bilinear); err != nil {
			return err
		}
	}
	return nil
}

// Not builds the one-layer NOT sub-circuit at depth d: out[i] = 1 - in[i].
// A single bit is simply the len(in) == 1 case; there is no separate
// single-bit code path. Its bilinear gates read ConstOne from depth d-1, not
// from this layer, so this does not call AddConstants itself: the caller
// owns whatever layer (or the basic layer) sits at d-1 and must ensure the
// constants are defined there.
func Not(in, out []ID, d uint64) (*Layer, error) {
	if len(in) != len(out) {
		return nil, ErrLengthMismatch
	}
	l := NewLayer(d)
	if err := AppendNot(l, in, out); err != nil {
		return nil, err
	}
	return l, nil
}

// And builds the one-layer AND sub-circuit at depth d: out[i] = in0[i] * in1[i].
func And(in0, in1, out []ID, d uint64) (*Layer, error) {
	l := NewLayer(d)
	if err := AppendAnd(l, in0, in1, out); err != nil {
		return nil, err
	}
	return l, nil
}

// Xor builds the two-layer XOR sub-circuit starting at depth d:
// out[i] = in0[i] + in1[i] - 2*in0[i]*in1[i].
//
// At depth d, each bit's sum (Add) and product (Mul) are written into the
// in0[i]/in1[i] slots themselves (those are one-shot temporaries, safe to
// reuse since a gate's own output ID never affects its own or a sibling's
// inputs, which always resolve one depth below). At depth d+1 a bilinear
// gate folds (sum, -2*prod) against the constant 1 into the final XOR bit,
// reading ConstOne from depth d, so first.AddConstants is required here.
// second does not call AddConstants itself, for the same reason Not
// doesn't: a caller embedding this XOR as one step of a larger circuit (as
// every keccak package call site does, via AppendXor/AppendXorScratch
// directly rather than through this function) is responsible for adding
// constants to second when a later layer needs them from this depth.
func Xor(in0, in1, out []ID, d uint64) (first, second *Layer, err error) {
	first = NewLayer(d)
	first.AddConstants()
	second = NewLayer(d + 1)
	if err := AppendXor(first, second, in0, in1, out); err != nil {
		return nil, nil, err
	}
	return first, second, nil
}
