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

import "errors"

var (
	// ErrDuplicateID is returned by Append/Merge when an output ID already
	// exists in the same layer.
	ErrDuplicateID = errors.New("circuit: duplicate wire ID within a layer")
	// ErrMissingUpstreamWire is returned when a gate reads an ID that is not
	// defined at the previous depth.
	ErrMissingUpstreamWire = errors.New("circuit: missing upstream wire")
	// ErrUnsupportedGateKind is returned for a Kind outside {Add, Mul, Bilinear}.
	ErrUnsupportedGateKind = errors.New("circuit: unsupported gate kind")
	// ErrNoBasicLayer is returned by Evaluate/Validate when no basic layer
	// has been set.
	ErrNoBasicLayer = errors.New("circuit: no basic layer set")
	// ErrEmptyCircuit is returned by Evaluate when the LAC has no layers.
	ErrEmptyCircuit = errors.New("circuit: no layers to evaluate")
	// ErrLayerDegreeMismatch is returned by AppendLayer when a layer's
	// declared degree does not match its position in the LAC.
	ErrLayerDegreeMismatch = errors.New("circuit: layer degree does not match its position")
	// ErrLengthMismatch is returned by the boolean sub-circuit builders when
	// input/output ID vectors differ in length.
	ErrLengthMismatch = errors.New("circuit: input/output length mismatch")
	// ErrUnpopulatedInput is returned during evaluation when a depth-1 gate
	// reads a basic-layer ID that was never given a value.
	ErrUnpopulatedInput = errors.New("circuit: unpopulated basic-layer input")
)
