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

// Preset names the (r, c, l) triple for one of the standard permutation
// widths the Keccak/SHA-3/SHAKE family actually exercises, so a caller need
// not memorize the raw rate/capacity/output-length numbers.
type Preset struct {
	R, C, L int
}

var (
	// Keccak256 is the original (pre-NIST-padding) Keccak-256 parameter set.
	Keccak256 = Preset{R: 1088, C: 512, L: 256}
	// SHA3_256 shares Keccak-256's rate/capacity; the two families differ
	// only in the domain-separation bits appended ahead of pad10*1, which is
	// outside this circuit builder's scope (it appends pad10*1 only; any
	// domain-separation bits must already be part of the input bits).
	SHA3_256 = Preset{R: 1088, C: 512, L: 256}
	// SHAKE128 is the extendable-output parameter set used by §8's S3.
	SHAKE128 = Preset{R: 1344, C: 256, L: 256}
)
