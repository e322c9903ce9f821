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
	"os"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shirou/gopsutil/v4/disk"
)

const diskRefreshInterval = 30 * time.Second

// diskMonitor tracks the free byte count of the filesystem holding the
// log directory. The count is refreshed every 30 seconds by a background
// goroutine and read through an atomic, so readers see a value at most
// one refresh period stale.
type diskMonitor struct {
	mount string
	free  atomic.Uint64
	stop  chan struct{}
}

// newDiskMonitor resolves the mount point owning dir (the mounted
// filesystem whose mount point is the longest prefix of dir), seeds the
// free-space counter, and starts the refresh loop on the given clock.
func newDiskMonitor(dir string, clock clockwork.Clock) (*diskMonitor, error) {
	parts, err := disk.Partitions(true)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDiskMountPointNotFound, err)
	}
	sort.Slice(parts, func(i, j int) bool {
		return len(parts[i].Mountpoint) > len(parts[j].Mountpoint)
	})
	mount := ""
	for _, p := range parts {
		if mountContains(p.Mountpoint, dir) {
			mount = p.Mountpoint
			break
		}
	}
	if mount == "" {
		return nil, fmt.Errorf("%w: %s", ErrDiskMountPointNotFound, dir)
	}

	m := &diskMonitor{mount: mount, stop: make(chan struct{})}
	if usage, err := disk.Usage(mount); err == nil {
		m.free.Store(usage.Free)
	}
	go m.run(clock)
	return m, nil
}

func (m *diskMonitor) run(clock clockwork.Clock) {
	ticker := clock.NewTicker(diskRefreshInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.Chan():
			if usage, err := disk.Usage(m.mount); err == nil {
				m.free.Store(usage.Free)
			}
		case <-m.stop:
			return
		}
	}
}

// load returns the last observed free byte count.
func (m *diskMonitor) load() uint64 {
	return m.free.Load()
}

func (m *diskMonitor) close() {
	close(m.stop)
}

// mountContains reports whether path lives under the mount point mp.
func mountContains(mp, path string) bool {
	if mp == string(os.PathSeparator) {
		return strings.HasPrefix(path, mp)
	}
	return path == mp || strings.HasPrefix(path, mp+string(os.PathSeparator))
}
