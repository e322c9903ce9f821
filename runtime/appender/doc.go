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

// Package appender implements the rolling file sink.
//
// One appender owns one log directory slice named by (component,
// instance). It discovers existing files on startup, opens a new file on
// day or size boundaries, repairs itself when the live file disappears,
// compresses and prunes old files from a background worker, and watches
// free disk space so that it can shed non-error output — and eventually
// all output — before filling the disk.
//
// Construction failures are typed (see errors.go) and abort startup.
// Everything after construction is best-effort: a logger must not crash
// the process it observes.
package appender
