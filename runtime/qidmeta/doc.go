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

// Package qidmeta moves query identifiers between the places a request
// touches: the current span, an HTTP header map, and the metadata of a
// columnar dataset schema. All three speak the same wire form under the
// same "x-qid" key, so an identifier minted at the HTTP edge survives
// into span-scoped log lines and out through dataset hand-offs.
package qidmeta
