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
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/klauspost/compress/gzip"
)

// retentionEvent asks the retention worker for one pass over the log
// directory. compressPath, when non-empty, names the file a rotation just
// closed; the worker may archive it before pruning. The config travels by
// value so the worker holds no reference back into the appender.
type retentionEvent struct {
	cfg          config
	compressPath string
}

// runRetention is the single consumer of the retention channel. It exits
// when the channel closes. Every failure inside a pass is absorbed: the
// logger must not take the host process down over housekeeping.
func runRetention(events <-chan retentionEvent) {
	for ev := range events {
		handleOldFiles(ev.cfg, ev.compressPath)
	}
}

// handleOldFiles archives the just-closed file when asked, then deletes
// the oldest files beyond the retention count. All I/O errors are
// swallowed; retention is best-effort.
//
// Compression is skipped when rotateCount is 1: with a single retained
// file the archive would be removed by the very next prune.
func handleOldFiles(cfg config, compressPath string) {
	if compressPath != "" && cfg.compress && cfg.rotateCount != 1 {
		_ = compressFile(compressPath)
	}

	// rotateCount 0 means never prune by count.
	if cfg.rotateCount == 0 {
		return
	}

	type entry struct {
		path  string
		stamp fileStamp
	}
	dirents, err := os.ReadDir(cfg.logDir)
	if err != nil {
		return
	}
	var files []entry
	for _, de := range dirents {
		if !de.Type().IsRegular() {
			continue
		}
		stamp, ok := cfg.parser.parse(de.Name())
		if !ok {
			continue
		}
		files = append(files, entry{path: filepath.Join(cfg.logDir, de.Name()), stamp: stamp})
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].stamp.less(files[j].stamp)
	})

	deleteCount := len(files) - cfg.rotateCount
	for i := 0; i < deleteCount; i++ {
		_ = os.Remove(files[i].path)
	}
}

// compressFile gzips path into path+".gz" and removes the source. The
// destination is opened create-new: when it already exists a previous
// pass got there first and the source is left alone.
func compressFile(path string) error {
	dest := path + ".gz"

	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w %s: %v", ErrCompress, path, err)
	}
	defer src.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil
		}
		return fmt.Errorf("%w %s: %v", ErrOpenLogFile, dest, err)
	}
	defer out.Close()

	gw := gzip.NewWriter(out)
	if _, err := io.Copy(gw, src); err != nil {
		_ = gw.Close()
		return fmt.Errorf("%w %s: %v", ErrCompress, path, err)
	}
	if err := gw.Close(); err != nil {
		return fmt.Errorf("%w %s: %v", ErrCompress, path, err)
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("%w %s: %v", ErrCompress, path, err)
	}
	return nil
}
