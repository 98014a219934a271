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

// RotateLeft returns ids cyclically left-shifted by n mod len(ids): the
// wire formerly at position (i+n) mod len(ids) is now at position i. Used
// to implement Keccak's ρ step and the single-bit rotate inside θ.
func RotateLeft(ids []ID, n int) []ID {
	size := len(ids)
	if size == 0 {
		return nil
	}
	n = ((n % size) + size) % size
	out := make([]ID, size)
	for i := 0; i < size; i++ {
		out[i] = ids[(i+n)%size]
	}
	return out
}
