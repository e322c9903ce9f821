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

// Package field declares the basic structured logging building block
// used by taoslog: a key-value pair attached to a span or an event.
//
// The goal of this package is to define a minimal, backend-agnostic
// representation of a field together with its canonical textual "k:v"
// rendering, so that every component of the system serializes fields
// the same way.
package field
