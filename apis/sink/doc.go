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

// Package sink declares the contract between the formatting layer and
// whatever persists its lines. The layer serializes each event into one
// buffer and asks the factory for a writer keyed on the event metadata;
// the factory decides where (or whether) the bytes land.
package sink
