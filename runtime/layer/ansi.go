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

package layer

import (
	"strconv"

	"github.com/taosdata/taoslog/apis/level"
)

// SGR foreground colors used by the optional colorized output.
const (
	grayColor   = 90
	redColor    = 91
	greenColor  = 92
	yellowColor = 93
	blueColor   = 94
	purpleColor = 95
)

func levelColor(lvl level.Level) int {
	switch lvl {
	case level.Trace:
		return purpleColor
	case level.Debug:
		return blueColor
	case level.Info:
		return greenColor
	case level.Warn:
		return yellowColor
	default:
		return redColor
	}
}

func withANSIForeground(content string, color int) string {
	return "\x1b[" + strconv.Itoa(color) + "m" + content + "\x1b[0m"
}
