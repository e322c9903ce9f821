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
	"sync"

	"github.com/taosdata/taoslog/apis/field"
	"github.com/taosdata/taoslog/apis/qid"
)

// Span is one node of the active span tree. Spans are created by
// Tracer.Start and travel inside a context.Context; the innermost span of
// a context is the "current" span.
//
// A span carries an extension bag filled in by observers: the inherited
// query identifier and a cache of the textual k:v pairs recorded on the
// span. Both are guarded by the span's own mutex so observers and
// concurrent readers do not race.
type Span struct {
	name   string
	parent *Span
	tracer *Tracer

	mu     sync.Mutex
	qid    qid.Qid
	kvs    []string
	msg    string
	hasMsg bool
}

// Name returns the name the span was started with.
func (s *Span) Name() string { return s.name }

// Parent returns the enclosing span, or nil for a root span.
func (s *Span) Parent() *Span { return s.parent }

// Qid returns the query identifier attached to the span, or nil when no
// observer has attached one.
func (s *Span) Qid() qid.Qid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.qid
}

// SetQid attaches q to the span, replacing any prior value.
func (s *Span) SetQid(q qid.Qid) {
	s.mu.Lock()
	s.qid = q
	s.mu.Unlock()
}

// CacheFields appends the textual rendering of fs to the span's field
// cache. The reserved "message" field is routed to the message slot
// instead, overwriting a previous message.
func (s *Span) CacheFields(fs []field.Field) {
	if len(fs) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range fs {
		if f.Key == field.Message {
			s.msg = field.MessageText(f.Value)
			s.hasMsg = true
			continue
		}
		s.kvs = append(s.kvs, f.Text())
	}
}

// TakeFields moves the cached k:v pairs out of the span and returns them.
// After the call the cache is empty: the pairs render on the first event
// emitted beneath the span and on no later one.
func (s *Span) TakeFields() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	kvs := s.kvs
	s.kvs = nil
	return kvs
}

// Message returns the message recorded on the span, if any.
func (s *Span) Message() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.msg, s.hasMsg
}

// Record adds fields to the span after creation. Observers see the update
// through their OnRecord hook.
func (s *Span) Record(fields ...field.Field) {
	if s.tracer != nil {
		s.tracer.record(s, fields)
	}
}

type spanKey struct{}

// ContextWithSpan returns a copy of ctx carrying s as the current span.
func ContextWithSpan(ctx context.Context, s *Span) context.Context {
	return context.WithValue(ctx, spanKey{}, s)
}

// SpanFromContext returns the current span of ctx, or nil when ctx carries
// none.
func SpanFromContext(ctx context.Context) *Span {
	s, _ := ctx.Value(spanKey{}).(*Span)
	return s
}
