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

import "fmt"

// LAC is a layered arithmetic circuit: a basic (depth-0) layer plus an
// ordered sequence of computed layers. It is built monolithically by a
// builder and evaluated once; gates are immutable after construction.
type LAC struct {
	basic  *BasicLayer
	layers []*Layer
}

// New returns an empty LAC with no basic layer set.
func New() *LAC {
	return &LAC{}
}

// SetBasicLayer installs the depth-0 layer.
func (c *LAC) SetBasicLayer(b *BasicLayer) {
	c.basic = b
}

// BasicLayer returns the depth-0 layer, or nil if none has been set.
func (c *LAC) BasicLayer() *BasicLayer {
	return c.basic
}

// AppendLayer appends a single layer, requiring its declared degree to equal
// its position (len(layers)+1). This catches builder bugs (a step's layers
// assembled out of order) earlier than the validation pass would.
func (c *LAC) AppendLayer(l *Layer) error {
	want := uint64(len(c.layers) + 1)
	if l.Degree() != want {
		return fmt.Errorf("%w: got degree %d, want %d", ErrLayerDegreeMismatch, l.Degree(), want)
	}
	c.layers = append(c.layers, l)
	return nil
}

// AppendLayers appends each layer in order via AppendLayer.
func (c *LAC) AppendLayers(ls []*Layer) error {
	for _, l := range ls {
		if err := c.AppendLayer(l); err != nil {
			return err
		}
	}
	return nil
}

// LayerCount returns the number of computed layers (excluding the basic
// layer).
func (c *LAC) LayerCount() int {
	return len(c.layers)
}

// GateCount returns the total gate count across all layers, weighting each
// bilinear gate as 3 and each add/mul gate as 1.
func (c *LAC) GateCount() int {
	n := 0
	for _, l := range c.layers {
		n += l.gateCount()
	}
	return n
}

// GateCountByKind returns the unweighted gate count broken down by Kind.
func (c *LAC) GateCountByKind() map[Kind]int {
	counts := map[Kind]int{KindAdd: 0, KindMul: 0, KindBilinear: 0}
	for _, l := range c.layers {
		l.gateCountByKind(counts)
	}
	return counts
}

// Validate runs the construction-time checks from the error taxonomy: every
// gate's inputs must be defined at the previous depth (the basic layer, for
// depth-1 gates). It does not evaluate anything.
func (c *LAC) Validate() error {
	if c.basic == nil {
		return ErrNoBasicLayer
	}
	var prevLayer *Layer
	for depth, l := range c.layers {
		for _, g := range l.gates {
			for _, in := range g.inputs() {
				var ok bool
				if depth == 0 {
					_, ok = c.basic.Lookup(in)
				} else {
					ok = prevLayer.has(in)
				}
				if !ok {
					return fmt.Errorf("%w: gate %d at depth %d reads undefined id %d", ErrMissingUpstreamWire, g.ID, l.Degree(), in)
				}
			}
		}
		prevLayer = l
	}
	return nil
}

// Evaluate walks the LAC depth-by-depth, populating every gate's cached
// output, and returns the top layer's gate outputs in ascending ID order as
// {0,1} bits.
func (c *LAC) Evaluate() ([]int, error) {
	if c.basic == nil {
		return nil, ErrNoBasicLayer
	}
	if len(c.layers) == 0 {
		return nil, ErrEmptyCircuit
	}

	var prev ValueSource = c.basic
	missingErr := ErrUnpopulatedInput
	for _, l := range c.layers {
		if err := l.evaluate(prev, missingErr); err != nil {
			return nil, err
		}
		prev = l
		missingErr = ErrMissingUpstreamWire
	}

	top := c.layers[len(c.layers)-1]
	ids := top.sortedIDs()
	out := make([]int, len(ids))
	for i, id := range ids {
		v, _ := top.Lookup(id)
		out[i] = int(v)
	}
	return out, nil
}
