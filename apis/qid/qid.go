/*
   Copyright 2026 The Taoslog Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package qid

// Qid is a 64-bit correlation identifier attached to a root span and
// inherited by its descendants.
//
// Implementations must be small immutable values: they are copied into
// every span created beneath the one that carries them and may cross
// goroutines freely.
type Qid interface {
	// Get returns the identifier's 64-bit projection, the form used for
	// log lines, HTTP headers and schema metadata.
	Get() uint64
}

// Manager produces Qid values. The concrete type is supplied by the
// embedder: taoslog never invents identifiers on its own beyond asking
// the manager for a seed.
type Manager interface {
	// Init returns the seed value used when a new root span has no
	// inherited identifier.
	Init() Qid

	// From reconstructs an identifier from its 64-bit projection, e.g.
	// after parsing an x-qid header.
	From(v uint64) Qid
}
