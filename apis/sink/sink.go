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

package sink

import (
	"io"

	"github.com/taosdata/taoslog/apis/trace"
)

// WriterFactory hands out the writer an event should be serialized into.
//
// Notes:
//   - Returned writers receive one fully assembled line per Write call;
//     the factory must keep each such write atomic with respect to
//     writers handed to other goroutines.
//   - MakeWriterFor may inspect the event metadata and return a null
//     writer to drop the event (e.g. under disk pressure).
//   - Implementations should avoid panicking: they are the end of the
//     pipeline.
type WriterFactory interface {
	// MakeWriter returns the destination for out-of-band lines that carry
	// no event metadata.
	MakeWriter() io.Writer

	// MakeWriterFor returns the destination for one event, keyed on its
	// metadata.
	MakeWriterFor(meta trace.Metadata) io.Writer
}
