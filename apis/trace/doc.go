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

// Package trace defines the span tree that taoslog formats from: spans
// carried in contexts, events emitted inside them, and the Layer observer
// contract through which the formatting layer sees both.
//
// The package is deliberately minimal. It does not format, filter, or
// persist anything; it only maintains span identity (name, parent, the
// extension bag holding the query identifier and the field cache) and
// fans span/event notifications out to observers.
package trace
