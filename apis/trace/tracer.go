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

package trace

import (
	"context"
	"runtime"
	"sync/atomic"

	"github.com/taosdata/taoslog/apis/field"
	"github.com/taosdata/taoslog/apis/level"
)

// Metadata describes an event independent of its payload: severity plus
// the source location, when it was captured.
type Metadata struct {
	Level level.Level
	File  string
	Line  int
}

// Event is a single emitted log event together with its metadata.
// Fields hold the event-scope pairs only; pairs inherited from enclosing
// spans are resolved by observers walking the scope.
type Event struct {
	Metadata Metadata
	Message  string
	Fields   []field.Field
}

// Layer observes the span tree. Implementations must be safe for
// concurrent use: spans from many goroutines funnel into the same layer.
//
// The scope passed to OnEvent lists the enclosing spans root-first, with
// the current span last. An event emitted outside any span gets an empty
// scope; what to do with it is the layer's decision.
type Layer interface {
	// OnNewSpan fires once per span, after the span exists but before
	// Start returns. attrs are the fields supplied at creation.
	OnNewSpan(s *Span, attrs []field.Field)

	// OnRecord fires for every Span.Record call with the added values.
	OnRecord(s *Span, values []field.Field)

	// OnEvent fires for every emitted event.
	OnEvent(ev *Event, scope []*Span)
}

// Tracer creates spans and dispatches events to its layers.
// A Tracer is immutable after construction and safe for concurrent use.
type Tracer struct {
	layers []Layer
}

// New returns a Tracer dispatching to the given layers in order.
func New(layers ...Layer) *Tracer {
	return &Tracer{layers: layers}
}

// Start creates a span named name under the current span of ctx and
// returns a derived context carrying it. The attrs are handed to every
// layer's OnNewSpan hook.
func (t *Tracer) Start(ctx context.Context, name string, attrs ...field.Field) (context.Context, *Span) {
	s := &Span{
		name:   name,
		parent: SpanFromContext(ctx),
		tracer: t,
	}
	for _, l := range t.layers {
		l.OnNewSpan(s, attrs)
	}
	return ContextWithSpan(ctx, s), s
}

func (t *Tracer) record(s *Span, values []field.Field) {
	for _, l := range t.layers {
		l.OnRecord(s, values)
	}
}

// Event emits an event at the given level inside the current span of ctx.
func (t *Tracer) Event(ctx context.Context, lvl level.Level, msg string, fields ...field.Field) {
	t.emit(ctx, lvl, msg, fields)
}

// Trace emits a trace-level event.
func (t *Tracer) Trace(ctx context.Context, msg string, fields ...field.Field) {
	t.emit(ctx, level.Trace, msg, fields)
}

// Debug emits a debug-level event.
func (t *Tracer) Debug(ctx context.Context, msg string, fields ...field.Field) {
	t.emit(ctx, level.Debug, msg, fields)
}

// Info emits an info-level event.
func (t *Tracer) Info(ctx context.Context, msg string, fields ...field.Field) {
	t.emit(ctx, level.Info, msg, fields)
}

// Warn emits a warn-level event.
func (t *Tracer) Warn(ctx context.Context, msg string, fields ...field.Field) {
	t.emit(ctx, level.Warn, msg, fields)
}

// Error emits an error-level event.
func (t *Tracer) Error(ctx context.Context, msg string, fields ...field.Field) {
	t.emit(ctx, level.Error, msg, fields)
}

func (t *Tracer) emit(ctx context.Context, lvl level.Level, msg string, fields []field.Field) {
	ev := &Event{
		Metadata: Metadata{Level: lvl},
		Message:  msg,
		Fields:   fields,
	}
	// Two frames up: emit plus its exported wrapper.
	if _, file, line, ok := runtime.Caller(2); ok {
		ev.Metadata.File = file
		ev.Metadata.Line = line
	}
	scope := scopeOf(SpanFromContext(ctx))
	for _, l := range t.layers {
		l.OnEvent(ev, scope)
	}
}

// scopeOf returns the span chain of s ordered root-first. A nil s yields
// an empty scope.
func scopeOf(s *Span) []*Span {
	if s == nil {
		return nil
	}
	n := 0
	for cur := s; cur != nil; cur = cur.parent {
		n++
	}
	scope := make([]*Span, n)
	for cur := s; cur != nil; cur = cur.parent {
		n--
		scope[n] = cur
	}
	return scope
}

var defaultTracer atomic.Pointer[Tracer]

func init() {
	defaultTracer.Store(New())
}

// SetDefault installs t as the process-wide tracer returned by Default.
func SetDefault(t *Tracer) {
	if t != nil {
		defaultTracer.Store(t)
	}
}

// Default returns the process-wide tracer. Before SetDefault it is a
// tracer with no layers, so spans exist but events go nowhere.
func Default() *Tracer {
	return defaultTracer.Load()
}
