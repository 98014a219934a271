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

// BasicLayer is the depth-0 layer: a keyed collection of (ID -> value) pairs
// holding the reserved constants and every input bit.
type BasicLayer struct {
	values map[ID]int64
}

// NewBasicLayer returns a BasicLayer with the two reserved constants already
// populated.
func NewBasicLayer() *BasicLayer {
	b := &BasicLayer{values: make(map[ID]int64)}
	b.values[ConstZero] = 0
	b.values[ConstOne] = 1
	return b
}

// Set assigns a value to an ID in the basic layer.
func (b *BasicLayer) Set(id ID, v int64) {
	b.values[id] = v
}

// SetBit is a convenience wrapper over Set for {0,1}-valued wires.
func (b *BasicLayer) SetBit(id ID, bit int) {
	b.Set(id, int64(bit))
}

// Lookup implements ValueSource.
func (b *BasicLayer) Lookup(id ID) (int64, bool) {
	v, ok := b.values[id]
	return v, ok
}

// Len returns the number of populated wires, including the two constants.
func (b *BasicLayer) Len() int {
	return len(b.values)
}
