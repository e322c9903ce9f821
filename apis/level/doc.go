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

// Package level defines the logging severity type used across taoslog.
//
// The intent of this package is to provide a small, stable set of levels
// (trace, debug, info, warn, error, fatal) together with canonical string
// representations, the padded five-column form used in log lines, and
// simple parsing/validation routines.
//
// Mapping to concrete backends is kept next to the type: the zapcore
// bridge lives here so that all components translate severities the
// same way.
package level
