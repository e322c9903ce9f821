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
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/taosdata/taoslog/apis/health"
	"github.com/taosdata/taoslog/apis/level"
	"github.com/taosdata/taoslog/apis/sink"
	"github.com/taosdata/taoslog/apis/trace"
)

const (
	defaultRotationCount    = 30
	defaultRotationSize     = "1GB"
	defaultReservedDiskSize = "2GB"
	defaultStopThresholdPct = 50
)

// rotation is the immutable rotation policy: a forced rotation every
// timeDelta, plus a rotation whenever the live file reaches fileSize.
type rotation struct {
	timeDelta time.Duration
	fileSize  uint64
}

// nextTimestamp returns the unix timestamp of local midnight at the start
// of the day that contains now+timeDelta. A file opened now stays current
// until that instant at the latest.
func (r rotation) nextTimestamp(now time.Time) int64 {
	t := now.Add(r.timeDelta)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).Unix()
}

// config is the immutable appender configuration, shared by value with
// the retention worker.
type config struct {
	logDir           string
	component        string
	instanceID       uint8
	rotation         rotation
	reservedDiskSize uint64
	compress         bool
	rotateCount      int
	stopThreshold    float64
	parser           *filenameParser
}

// state is the mutable rotation state, guarded by the appender's state
// lock.
type state struct {
	nextDate int64
	maxSeqID int
	filePath string
}

// Option configures appender construction.
type Option func(*options)

type options struct {
	rotationCount    int
	rotationSize     string
	compress         bool
	reservedDiskSize string
	stopThresholdPct uint
	clock            clockwork.Clock
}

// WithRotationCount sets how many files per (component, instance) may
// remain in the directory; older ones are deleted. 0 disables pruning.
func WithRotationCount(n uint16) Option {
	return func(o *options) { o.rotationCount = int(n) }
}

// WithRotationSize sets the live-file size threshold, e.g. "1GB".
func WithRotationSize(size string) Option {
	return func(o *options) { o.rotationSize = size }
}

// WithCompress makes the retention worker gzip files closed by rotation.
func WithCompress(compress bool) Option {
	return func(o *options) { o.compress = compress }
}

// WithReservedDiskSize sets the free-space floor, e.g. "2GB". Below it
// only error events are written.
func WithReservedDiskSize(size string) Option {
	return func(o *options) { o.reservedDiskSize = size }
}

// WithStopLoggingThreshold sets the percentage of the reserved size at or
// below which all logging stops. 50 means: stop once free space is down
// to half the reserve.
func WithStopLoggingThreshold(pct uint) Option {
	return func(o *options) { o.stopThresholdPct = pct }
}

// WithClock substitutes the clock used for rotation timing and the disk
// refresh. Tests pass a fake clock; production code never needs this.
func WithClock(clock clockwork.Clock) Option {
	return func(o *options) { o.clock = clock }
}

// RollingFileAppender is a concurrent, self-maintaining file sink.
//
// It keeps one live file of the form <component>_<instance>_<date>.log
// (plus a .<seq> suffix after size rotations) in the log directory, rolls
// it on day boundaries and size thresholds, hands closed files to an
// asynchronous retention worker for compression and pruning, and degrades
// gracefully when the disk runs low: first to error-only output, then to
// full silence.
//
// It implements sink.WriterFactory, so it plugs directly under the
// formatting layer.
type RollingFileAppender struct {
	cfg   config
	clock clockwork.Clock
	disk  *diskMonitor

	levelDowngrade atomic.Bool
	events         chan retentionEvent

	stateMu sync.RWMutex
	st      state

	writerMu sync.RWMutex
	file     *os.File
}

var _ sink.WriterFactory = (*RollingFileAppender)(nil)
var _ health.Checker = (*RollingFileAppender)(nil)

// New builds an appender writing to logDir for the given component and
// instance. Construction scans the directory for today's files to resume
// the sequence numbering, opens a fresh live file, starts the disk
// monitor and the retention worker, and queues an initial retention pass
// over pre-existing files.
func New(logDir, component string, instanceID uint8, opts ...Option) (*RollingFileAppender, error) {
	o := options{
		rotationCount:    defaultRotationCount,
		rotationSize:     defaultRotationSize,
		reservedDiskSize: defaultReservedDiskSize,
		stopThresholdPct: defaultStopThresholdPct,
		clock:            clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	absDir, err := filepath.Abs(logDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGetLogAbsolutePath, err)
	}
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrCreateLogDir, absDir, err)
	}

	fileSize, err := ParseUnitSize(o.rotationSize)
	if err != nil {
		return nil, err
	}
	reserved, err := ParseUnitSize(o.reservedDiskSize)
	if err != nil {
		return nil, err
	}

	cfg := config{
		logDir:           absDir,
		component:        component,
		instanceID:       instanceID,
		rotation:         rotation{timeDelta: 24 * time.Hour, fileSize: fileSize},
		reservedDiskSize: reserved,
		compress:         o.compress,
		rotateCount:      o.rotationCount,
		stopThreshold:    float64(o.stopThresholdPct) / 100,
		parser:           newFilenameParser(component, instanceID),
	}

	a := &RollingFileAppender{cfg: cfg, clock: o.clock}

	now := a.clock.Now()
	seq, err := a.maxSeqIDFromDir(now)
	if err != nil {
		return nil, err
	}
	path, file, err := a.openNext(now, &seq)
	if err != nil {
		return nil, err
	}
	a.st = state{
		nextDate: cfg.rotation.nextTimestamp(now),
		maxSeqID: seq,
		filePath: path,
	}
	a.file = file

	a.disk, err = newDiskMonitor(absDir, a.clock)
	if err != nil {
		_ = file.Close()
		return nil, err
	}

	a.events = make(chan retentionEvent, 1)
	go runRetention(a.events)

	// Enforce retention against files left over from previous runs.
	a.enqueueRetention("")

	return a, nil
}

// maxSeqIDFromDir scans the log directory and returns the highest
// sequence suffix among files stamped with now's calendar day, 0 when
// none exist. Files from other days do not count; they only matter to
// retention.
func (a *RollingFileAppender) maxSeqIDFromDir(now time.Time) (int, error) {
	dirents, err := os.ReadDir(a.cfg.logDir)
	if err != nil {
		return 0, fmt.Errorf("%w %s: %v", ErrReadDir, a.cfg.logDir, err)
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	maxSeq := 0
	for _, de := range dirents {
		if !de.Type().IsRegular() {
			continue
		}
		stamp, ok := a.cfg.parser.parse(de.Name())
		if !ok || !stamp.date.Equal(today) {
			continue
		}
		if stamp.seq > maxSeq {
			maxSeq = stamp.seq
		}
	}
	return maxSeq, nil
}

// openNext opens the first non-existing file at or after *seq for now's
// date, growing *seq past collisions. The loop terminates: only existing
// files collide, and they are finite.
func (a *RollingFileAppender) openNext(now time.Time, seq *int) (string, *os.File, error) {
	for {
		name := logFileName(a.cfg.component, a.cfg.instanceID, now, *seq)
		path := filepath.Join(a.cfg.logDir, name)
		file, err := createFile(path)
		if err != nil {
			return "", nil, err
		}
		if file != nil {
			return path, file, nil
		}
		*seq++
	}
}

// createFile opens path append-only with create-new semantics. A nil file
// with nil error means the name is taken and the caller should try the
// next sequence number.
func createFile(path string) (*os.File, error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w %s: %v", ErrOpenLogFile, path, err)
	}
	return file, nil
}

// rotate decides, under the state write lock, whether the next write
// needs a new file. It returns the freshly opened file, or nil when the
// current one stays live.
//
// Order of checks: the day boundary first, then the size threshold, then
// self-healing after external deletion of the live file. The self-heal
// branch does not queue retention — the vanished file is not there to
// compress.
func (a *RollingFileAppender) rotate() (*os.File, error) {
	a.stateMu.Lock()
	defer a.stateMu.Unlock()

	a.writerMu.RLock()
	closed := a.file == nil
	a.writerMu.RUnlock()
	if closed {
		return nil, ErrClosed
	}

	now := a.clock.Now()

	// Time rotation.
	if now.Unix() >= a.st.nextDate {
		a.st.maxSeqID = 0
		path, file, err := a.openNext(now, &a.st.maxSeqID)
		if err != nil {
			return nil, err
		}
		a.st.nextDate = a.cfg.rotation.nextTimestamp(now)
		a.enqueueRetention(a.st.filePath)
		a.st.filePath = path
		return file, nil
	}

	// Size rotation.
	a.writerMu.RLock()
	info, err := a.file.Stat()
	a.writerMu.RUnlock()
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrGetFileSize, a.st.filePath, err)
	}
	if uint64(info.Size()) >= a.cfg.rotation.fileSize {
		a.st.maxSeqID++
		path, file, err := a.openNext(now, &a.st.maxSeqID)
		if err != nil {
			return nil, err
		}
		a.enqueueRetention(a.st.filePath)
		a.st.filePath = path
		return file, nil
	}

	// The live file was removed out from under us: recompute the sequence
	// from what is left on disk and open a replacement.
	if _, err := os.Stat(a.st.filePath); err != nil {
		seq, err := a.maxSeqIDFromDir(now)
		if err != nil {
			return nil, err
		}
		path, file, err := a.openNext(now, &seq)
		if err != nil {
			return nil, err
		}
		a.st.maxSeqID = seq
		a.st.filePath = path
		return file, nil
	}

	return nil, nil
}

// enqueueRetention queues a retention pass without blocking. A full
// channel means a pass is already pending, and that pass still prunes;
// the dropped event is lost, so the file it named is not compressed.
func (a *RollingFileAppender) enqueueRetention(compressPath string) {
	select {
	case a.events <- retentionEvent{cfg: a.cfg, compressPath: compressPath}:
	default:
	}
}

// swapWriter installs file as the live writer and closes the previous
// one. In-flight writes finish against the old handle before the swap
// acquires the lock, so no write is split across files.
func (a *RollingFileAppender) swapWriter(file *os.File) {
	a.writerMu.Lock()
	old := a.file
	a.file = file
	a.writerMu.Unlock()
	if old != nil {
		_ = old.Close()
	}
}

// MakeWriter rotates if due and returns a writer on the live file. A
// failed rotation is absorbed: writes keep going to the existing file.
func (a *RollingFileAppender) MakeWriter() io.Writer {
	if file, err := a.rotate(); err == nil && file != nil {
		a.swapWriter(file)
	}
	return &rollingWriter{a: a}
}

// MakeWriterFor gates the writer on disk pressure before rotating.
//
// The ladder: once free space is at or below stopThreshold of the
// reserve, everything is dropped. Once free space is at or below the
// reserve, only error-or-worse events are written, with a single marker
// line on each transition of the downgrade flag. Otherwise writes flow
// normally.
func (a *RollingFileAppender) MakeWriterFor(meta trace.Metadata) io.Writer {
	free := a.disk.load()
	if float64(free)/float64(a.cfg.reservedDiskSize) <= a.cfg.stopThreshold {
		return io.Discard
	}

	downgraded := free <= a.cfg.reservedDiskSize
	if downgraded && a.levelDowngrade.CompareAndSwap(false, true) {
		w := a.MakeWriter()
		_, _ = io.WriteString(w, "=======level downgrade=====\n")
	}
	if !downgraded && a.levelDowngrade.CompareAndSwap(true, false) {
		w := a.MakeWriter()
		_, _ = io.WriteString(w, "=======level upgrade=====\n")
	}

	if downgraded && meta.Level < level.Error {
		return io.Discard
	}
	return a.MakeWriter()
}

// Check reports the appender's position on the degradation ladder.
func (a *RollingFileAppender) Check(_ context.Context) health.Result {
	free := a.disk.load()
	a.stateMu.RLock()
	filePath := a.st.filePath
	a.stateMu.RUnlock()

	status := health.StatusHealthy
	switch {
	case float64(free)/float64(a.cfg.reservedDiskSize) <= a.cfg.stopThreshold:
		status = health.StatusUnhealthy
	case free <= a.cfg.reservedDiskSize:
		status = health.StatusDegraded
	}
	return health.Result{
		Name:       fmt.Sprintf("appender(%s_%d)", a.cfg.component, a.cfg.instanceID),
		Status:     status,
		ObservedAt: a.clock.Now(),
		Details: map[string]any{
			"free_bytes":     free,
			"reserved_bytes": a.cfg.reservedDiskSize,
			"file":           filePath,
		},
	}
}

// Close stops the disk monitor and the retention worker and closes the
// live file. After Close the appender must not be used.
func (a *RollingFileAppender) Close() error {
	a.disk.close()
	close(a.events)

	a.writerMu.Lock()
	defer a.writerMu.Unlock()
	if a.file == nil {
		return nil
	}
	err := a.file.Close()
	a.file = nil
	return err
}

// rollingWriter writes to the appender's live file while holding the
// writer read lock, so a concurrent rotation cannot swap the handle in
// the middle of a write.
type rollingWriter struct {
	a *RollingFileAppender
}

func (w *rollingWriter) Write(p []byte) (int, error) {
	w.a.writerMu.RLock()
	defer w.a.writerMu.RUnlock()
	if w.a.file == nil {
		return 0, ErrClosed
	}
	return w.a.file.Write(p)
}
