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

package qidmeta

import (
	"fmt"
	"strconv"

	"github.com/taosdata/taoslog/apis/qid"
)

// HeaderKey is the metadata key carrying a query identifier, both in HTTP
// headers and in columnar schema metadata.
const HeaderKey = "x-qid"

// Format renders a query identifier in its wire form: "0x" followed by 16
// lowercase hex digits.
func Format(q qid.Qid) string {
	return fmt.Sprintf("0x%016x", q.Get())
}

// ParseText decodes the wire form. Malformed input — wrong prefix, wrong
// length, non-hex digits — reports false rather than an error: a carrier
// without a usable identifier is simply treated as empty.
func ParseText(s string) (uint64, bool) {
	if len(s) != 18 || s[0] != '0' || s[1] != 'x' {
		return 0, false
	}
	v, err := strconv.ParseUint(s[2:], 16, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Carrier is a location a query identifier can be read from.
type Carrier interface {
	qid(m qid.Manager) (qid.Qid, bool)
}

// MutableCarrier is a location a query identifier can be written to.
type MutableCarrier interface {
	setQid(q qid.Qid)
}

// Set stores q into the carrier, replacing any prior value.
func Set(c MutableCarrier, q qid.Qid) {
	c.setQid(q)
}

// Get reads the query identifier from the carrier. The manager rebuilds
// the embedder's identifier type from the 64-bit wire projection. The
// second return is false when the carrier holds no (or a malformed)
// identifier.
func Get(m qid.Manager, c Carrier) (qid.Qid, bool) {
	return c.qid(m)
}
