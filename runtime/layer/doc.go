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

// Package layer implements the formatting layer: the trace observer that
// assigns and inherits query identifiers across nested spans, collects
// the structured fields attached to spans and events, and serializes one
// line per event into the writer obtained from the sink factory.
//
// The line shape is:
//
//	MM/DD HH:MM:SS.uuuuuu <tid> <LEVEL> qid:0x… k:v, k:v message stack:a->b
//
// with the stack section present for debug and trace events only, and an
// optional trailing " at file:line" when locations are enabled.
package layer
