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

package field

import (
	"fmt"
	"strconv"
)

// Message is the reserved field name. A field with this key is not rendered
// as a k:v pair; its value becomes the free-text message of the span or event.
const Message = "message"

// Field represents a single structured key/value pair attached to a span
// or an event.
//
// Rules:
//   - Key MUST be non-empty for a field to be meaningful.
//   - Value is intentionally typed as `any` to keep the contract open;
//     the formatting layer stringifies it via Text.
//   - Field is expected to be a small, copyable value type.
type Field struct {
	// Key is the structured name of the field (e.g. "client_ip", "sql").
	Key string

	// Value is the field payload. Strings are rendered verbatim (quoted
	// when they contain spaces); other types are rendered in their default
	// fmt %v form.
	Value any
}

// New creates a new Field from key and value.
// This is a convenience constructor for call sites.
func New(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Text renders the field as a "key:value" pair, the on-wire form used by
// log lines. Keys or string values containing a space are surrounded by
// double quotes so the pair stays a single token.
func (f Field) Text() string {
	return Quote(f.Key) + ":" + ValueText(f.Value)
}

// ValueText stringifies a field value the way Text does, without the key.
func ValueText(v any) string {
	if s, ok := v.(string); ok {
		return Quote(s)
	}
	return fmt.Sprintf("%v", v)
}

// MessageText stringifies the value of a reserved message field. Unlike
// ValueText it never quotes: a message is free text, not a token.
func MessageText(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// Quote returns s unchanged unless it contains a space, in which case it is
// wrapped in double quotes with the usual escaping.
func Quote(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			return strconv.Quote(s)
		}
	}
	return s
}
