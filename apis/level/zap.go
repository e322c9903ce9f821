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

package level

import "go.uber.org/zap/zapcore"

// Zap maps the level to the closest zapcore.Level, for embedders that
// route other subsystems through a zap core next to this one.
// Trace collapses into zap's Debug, which has no finer level.
func (l Level) Zap() zapcore.Level {
	switch l {
	case Trace, Debug:
		return zapcore.DebugLevel
	case Info:
		return zapcore.InfoLevel
	case Warn:
		return zapcore.WarnLevel
	case Error:
		return zapcore.ErrorLevel
	case Fatal:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// FromZap maps a zapcore.Level onto the taoslog level set.
// Levels above Error (dpanic, panic, fatal) are treated as Fatal; levels
// below Debug are treated as Trace.
func FromZap(zl zapcore.Level) Level {
	switch zl {
	case zapcore.DebugLevel:
		return Debug
	case zapcore.InfoLevel:
		return Info
	case zapcore.WarnLevel:
		return Warn
	case zapcore.ErrorLevel:
		return Error
	default:
		if zl > zapcore.ErrorLevel {
			return Fatal
		}
		return Trace
	}
}
