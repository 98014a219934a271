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

// Package circuit implements a layered arithmetic circuit (LAC): a directed
// acyclic circuit over {0,1}-valued wires, partitioned into depth layers,
// where every gate at depth d reads only wires defined at depth d-1.
package circuit

// ID names a single wire. IDs form a flat namespace; the same ID may be
// redefined in successive layers, which is how mutable state (e.g. a hash
// function's internal state) is represented without breaking single static
// assignment within a layer.
type ID uint64

// Reserved constant wires, always present in the basic (depth-0) layer.
const (
	ConstZero ID = 0
	ConstOne  ID = 1
)

// FirstFreeID is the first ID not reserved for the two constants; callers
// that own an input region conventionally start allocating there.
const FirstFreeID ID = 2
