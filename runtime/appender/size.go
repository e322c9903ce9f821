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

package appender

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseUnitSize converts a human size like "1GB" into a byte count.
// The string is a nonnegative decimal integer followed by a two-letter
// unit, case-insensitively one of KB, MB, GB. Units multiply by 1024,
// 1024² and 1024³. Anything else fails with ErrInvalidRotationSize.
func ParseUnitSize(size string) (uint64, error) {
	if len(size) < 3 || !isASCII(size) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRotationSize, size)
	}
	count, unit := size[:len(size)-2], size[len(size)-2:]
	n, err := strconv.ParseUint(count, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRotationSize, size)
	}
	switch strings.ToUpper(unit) {
	case "KB":
		return n * 1024, nil
	case "MB":
		return n * 1024 * 1024, nil
	case "GB":
		return n * 1024 * 1024 * 1024, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidRotationSize, size)
	}
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
