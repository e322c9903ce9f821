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

import "errors"

// Stable error kinds raised by appender construction and rotation.
// Callers match them with errors.Is; the wrapped message carries the
// offending path or size string.
var (
	// ErrCreateLogDir indicates the log directory could not be created.
	ErrCreateLogDir = errors.New("appender: create log dir")

	// ErrOpenLogFile indicates a log file could not be opened.
	ErrOpenLogFile = errors.New("appender: open log file")

	// ErrGetFileSize indicates the live file could not be stat'ed for the
	// size-rotation check.
	ErrGetFileSize = errors.New("appender: get file size")

	// ErrCompress indicates an archive could not be gzip-compressed.
	ErrCompress = errors.New("appender: compress file")

	// ErrReadDir indicates the log directory could not be listed.
	ErrReadDir = errors.New("appender: read log dir")

	// ErrParseDate indicates a date stamp did not parse as YYYYMMDD.
	ErrParseDate = errors.New("appender: parse date")

	// ErrInvalidRotationSize indicates a size string is not of the form
	// <decimal><KB|MB|GB>.
	ErrInvalidRotationSize = errors.New("appender: invalid rotation size")

	// ErrDiskMountPointNotFound indicates no mounted filesystem contains
	// the log directory.
	ErrDiskMountPointNotFound = errors.New("appender: disk mount point not found")

	// ErrGetLogAbsolutePath indicates the log directory could not be
	// resolved to an absolute path.
	ErrGetLogAbsolutePath = errors.New("appender: get log absolute path")

	// ErrClosed indicates the appender has been closed.
	ErrClosed = errors.New("appender: closed")
)
