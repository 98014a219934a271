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

import "sort"

// Layer is a set of gates all sharing one depth, keyed by output ID.
type Layer struct {
	degree uint64
	gates  map[ID]*Gate
}

// NewLayer returns an empty layer at the given depth (depth >= 1).
func NewLayer(degree uint64) *Layer {
	return &Layer{degree: degree, gates: make(map[ID]*Gate)}
}

// Degree returns the layer's depth.
func (l *Layer) Degree() uint64 {
	return l.degree
}

// Len returns the number of gates in the layer.
func (l *Layer) Len() int {
	return len(l.gates)
}

// Append inserts a gate by its output ID, failing if that ID is already
// defined in this layer.
func (l *Layer) Append(g *Gate) error {
	if _, exists := l.gates[g.ID]; exists {
		return ErrDuplicateID
	}
	l.gates[g.ID] = g
	return nil
}

// Merge unions another layer's gates into this one, failing on any ID
// collision. Used to coalesce independent parallel sub-circuits computed at
// the same depth (e.g. five independent χ columns).
func (l *Layer) Merge(other *Layer) error {
	for id, g := range other.gates {
		if _, exists := l.gates[id]; exists {
			return ErrDuplicateID
		}
		l.gates[id] = g
	}
	return nil
}

// AddConstants injects pass-through gates re-emitting the two reserved
// constants at this depth, if not already present. Idempotent, so it is safe
// to call from multiple builders contributing to the same layer.
func (l *Layer) AddConstants() {
	if _, ok := l.gates[ConstZero]; !ok {
		l.gates[ConstZero] = NewAddGate(ConstZero, ConstZero, ConstZero)
	}
	if _, ok := l.gates[ConstOne]; !ok {
		l.gates[ConstOne] = NewAddGate(ConstOne, ConstZero, ConstOne)
	}
}

// CopyThrough emits a pass-through add gate for each id not already defined
// in this layer, republishing it unchanged at this depth.
func (l *Layer) CopyThrough(ids []ID) error {
	for _, id := range ids {
		if _, exists := l.gates[id]; exists {
			continue
		}
		if err := l.Append(NewPassThroughGate(id, id)); err != nil {
			return err
		}
	}
	return nil
}

// CopyThroughRenamed emits, for each i, a pass-through gate whose output is
// dstIDs[i] and whose source is srcIDs[i]. Used by π∘ρ to relocate a lane's
// bits to their new position in a single layer.
func (l *Layer) CopyThroughRenamed(srcIDs, dstIDs []ID) error {
	if len(srcIDs) != len(dstIDs) {
		return ErrLengthMismatch
	}
	for i := range srcIDs {
		if err := l.Append(NewPassThroughGate(dstIDs[i], srcIDs[i])); err != nil {
			return err
		}
	}
	return nil
}

// evaluate computes every gate's output from prev, a ValueSource over the
// layer immediately below (or the basic layer, at depth 1). missingErr is
// the error to report for a failed upstream lookup: the caller passes
// ErrUnpopulatedInput when prev is the basic layer, ErrMissingUpstreamWire
// otherwise.
func (l *Layer) evaluate(prev ValueSource, missingErr error) error {
	for _, g := range l.gates {
		if _, err := g.evaluate(prev, missingErr); err != nil {
			return err
		}
	}
	return nil
}

// Lookup implements ValueSource, reading a gate's cached evaluated output.
func (l *Layer) Lookup(id ID) (int64, bool) {
	g, ok := l.gates[id]
	if !ok || !g.evaluated {
		return 0, false
	}
	return g.value, true
}

// has reports whether id is defined in this layer, irrespective of whether
// it has been evaluated yet. Used by the construction-time validation pass.
func (l *Layer) has(id ID) bool {
	_, ok := l.gates[id]
	return ok
}

// sortedIDs returns the layer's output IDs in ascending order, used for the
// deterministic top-layer digest readout.
func (l *Layer) sortedIDs() []ID {
	ids := make([]ID, 0, len(l.gates))
	for id := range l.gates {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// gateCount returns the number of gates, weighted by cost (bilinear = 3,
// add/mul = 1).
func (l *Layer) gateCount() int {
	n := 0
	for _, g := range l.gates {
		n += g.cost()
	}
	return n
}

// gateCountByKind returns gate counts broken down by Kind (unweighted).
func (l *Layer) gateCountByKind(counts map[Kind]int) {
	for _, g := range l.gates {
		counts[g.Kind]++
	}
}
