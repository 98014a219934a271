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

// Package keccak builds and evaluates a layered arithmetic circuit computing
// the Keccak sponge hash over a bit-level input, using the circuit package's
// Wire/Gate/Layer/LAC model.
package keccak

import "errors"

var (
	// ErrInvalidParams is returned when r, c, or l violate §6's constraints.
	ErrInvalidParams = errors.New("keccak: invalid r/c/l parameters")
)

// permutationWidths lists the standard Keccak permutation widths b = r+c,
// and the corresponding lane width w = b/25.
var permutationWidths = map[int]int{
	25: 1, 50: 2, 100: 4, 200: 8, 400: 16, 800: 32, 1600: 64,
}

// LaneWidth returns w = (r+c)/25, validating that r+c is one of the
// standard Keccak permutation widths and that r, c, l are all positive.
func LaneWidth(r, c, l int) (int, error) {
	if r <= 0 || c <= 0 || l <= 0 {
		return 0, ErrInvalidParams
	}
	b := r + c
	w, ok := permutationWidths[b]
	if !ok {
		return 0, ErrInvalidParams
	}
	return w, nil
}

// NumRounds returns n_r = 12 + 2*log2(w).
func NumRounds(w int) int {
	logw := 0
	for (1 << uint(logw)) < w {
		logw++
	}
	return 12 + 2*logw
}

// roundConstants holds RC[0..24), the standard Keccak-f[1600] round
// constants (used verbatim for w=64; truncated to the low w bits for
// smaller widths — see DESIGN.md for why full LFSR re-derivation isn't
// implemented for those widths).
var roundConstants = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808A, 0x8000000080008000,
	0x000000000000808B, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008A, 0x0000000000000088, 0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800A, 0x800000008000000A,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// roundConstant returns RC[round] truncated to the low w bits.
func roundConstant(round, w int) uint64 {
	rc := roundConstants[round]
	if w >= 64 {
		return rc
	}
	return rc & ((uint64(1) << uint(w)) - 1)
}

// rotationOffsets[x][y] is the standard Keccak ρ rotation offset for the
// lane at position (x, y), cross-checked bit-for-bit against the
// rotateLeft(a[...], n) calls in the reference Keccak circuit this
// repository's teacher pack includes alongside its go.mod-bearing repos.
var rotationOffsets = [5][5]int{
	{0, 36, 3, 41, 18},
	{1, 44, 10, 45, 2},
	{62, 6, 43, 15, 61},
	{28, 55, 25, 21, 56},
	{27, 20, 39, 8, 14},
}

// rotationOffset returns ROT[x+5y], reduced mod w for lane widths under 64.
func rotationOffset(x, y, w int) int {
	return rotationOffsets[x][y] % w
}
