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

// Package qid declares the query-identifier contract.
//
// A QID binds every log line produced while serving one request to a
// single 64-bit value. The identifier type itself is owned by the
// embedder; this package only fixes the three operations taoslog needs
// from it: seeding a fresh value for a new root span, projecting a value
// to its 64-bit wire form, and rebuilding a value from that projection.
package qid
