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
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/petermattis/goid"
	"go.uber.org/zap/buffer"

	"github.com/taosdata/taoslog/apis/field"
	"github.com/taosdata/taoslog/apis/level"
	"github.com/taosdata/taoslog/apis/qid"
	"github.com/taosdata/taoslog/apis/sink"
	"github.com/taosdata/taoslog/apis/trace"
)

// Layer renders every event into one text line and hands it to the
// writer factory, keyed on the event metadata.
//
// On span creation it assigns the query identifier: the parent's when one
// exists, the manager's seed otherwise. Fields recorded on a span are
// cached on the span and moved into the first event line emitted beneath
// it; later events under the same span do not repeat them.
//
// A Layer is immutable after construction and safe for concurrent use.
type Layer struct {
	manager      qid.Manager
	factory      sink.WriterFactory
	withANSI     bool
	withLocation bool
}

var _ trace.Layer = (*Layer)(nil)

// Option configures layer construction.
type Option func(*Layer)

// WithANSI colorizes the timestamp, thread id, level and field sections
// with SGR escapes. Meant for terminal sinks only.
func WithANSI() Option {
	return func(l *Layer) { l.withANSI = true }
}

// WithLocation appends " at <file>:<line>" to events that carry source
// location metadata.
func WithLocation() Option {
	return func(l *Layer) { l.withLocation = true }
}

// New constructs a layer writing through factory, drawing query
// identifier seeds from manager.
func New(manager qid.Manager, factory sink.WriterFactory, opts ...Option) *Layer {
	l := &Layer{manager: manager, factory: factory}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// OnNewSpan inherits the parent's query identifier, or seeds a fresh one
// for a root span, and captures the creation-time fields into the span's
// cache.
func (l *Layer) OnNewSpan(s *trace.Span, attrs []field.Field) {
	var q qid.Qid
	if p := s.Parent(); p != nil {
		q = p.Qid()
	}
	if q == nil {
		q = l.manager.Init()
	}
	s.SetQid(q)
	s.CacheFields(attrs)
}

// OnRecord appends later field updates into the span's cache.
func (l *Layer) OnRecord(s *trace.Span, values []field.Field) {
	s.CacheFields(values)
}

var pool = buffer.NewPool()

// OnEvent assembles the event line into a pooled buffer and writes it in
// a single call. Events emitted outside any span produce no output.
func (l *Layer) OnEvent(ev *trace.Event, scope []*trace.Span) {
	buf := pool.Get()
	defer buf.Free()

	l.appendTimestamp(buf, time.Now())
	l.appendThreadID(buf)
	l.appendLevel(buf, ev.Metadata.Level)

	if len(scope) == 0 {
		return
	}
	l.appendFieldsAndQid(buf, ev, scope)

	if l.withLocation && ev.Metadata.File != "" {
		buf.AppendString(" at ")
		buf.AppendString(ev.Metadata.File)
		buf.AppendByte(':')
		buf.AppendInt(int64(ev.Metadata.Line))
	}
	buf.AppendByte('\n')

	w := l.factory.MakeWriterFor(ev.Metadata)
	if _, err := w.Write(buf.Bytes()); err != nil {
		fmt.Fprintf(os.Stderr, "[taoslog] unable to write an event to the writer for this layer: %v\n", err)
	}
}

func (l *Layer) appendTimestamp(buf *buffer.Buffer, now time.Time) {
	s := now.Format("01/02 15:04:05.000000 ")
	if l.withANSI {
		s = withANSIForeground(s, grayColor)
	}
	buf.AppendString(s)
}

func (l *Layer) appendThreadID(buf *buffer.Buffer) {
	s := fmt.Sprintf("%08d", goid.Get())
	if l.withANSI {
		s = withANSIForeground(s, grayColor)
	}
	buf.AppendString(s)
}

func (l *Layer) appendLevel(buf *buffer.Buffer, lvl level.Level) {
	buf.AppendByte(' ')
	s := lvl.Padded()
	if l.withANSI {
		s = withANSIForeground(s, levelColor(lvl))
	}
	buf.AppendString(s)
	buf.AppendByte(' ')
}

// appendFieldsAndQid renders the qid, the k:v section, the message, and
// (for debug and trace events) the span stack. Ancestor span fields come
// first, root to leaf, then the event's own fields; rendering moves each
// span's cache, so the pairs appear once.
func (l *Layer) appendFieldsAndQid(buf *buffer.Buffer, ev *trace.Event, scope []*trace.Span) {
	printStack := ev.Metadata.Level <= level.Debug

	var (
		kvs     []string
		qidVal  uint64
		hasQid  bool
		names   []string
		message = ev.Message
	)
	for _, span := range scope {
		if printStack {
			names = append(names, field.Quote(span.Name()))
		}
		if q := span.Qid(); q != nil {
			qidVal = q.Get()
			hasQid = true
		}
		kvs = append(kvs, span.TakeFields()...)
	}
	for _, f := range ev.Fields {
		if f.Key == field.Message {
			message = field.MessageText(f.Value)
			continue
		}
		kvs = append(kvs, f.Text())
	}

	if hasQid {
		fmt.Fprintf(buf, "qid:0x%016x ", qidVal)
	}

	if len(kvs) > 0 {
		joined := strings.Join(kvs, ", ")
		if l.withANSI {
			joined = withANSIForeground(joined, grayColor)
		}
		buf.AppendString(joined)
		buf.AppendByte(' ')
	}

	buf.AppendString(message)

	if printStack {
		buf.AppendString(" stack:")
		buf.AppendString(strings.Join(names, "->"))
	}
}
