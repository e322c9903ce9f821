package trace

import (
	"context"
	"testing"

	"github.com/taosdata/taoslog/apis/field"
	"github.com/taosdata/taoslog/apis/level"
)

// recordingLayer captures observer callbacks for assertions.
type recordingLayer struct {
	newSpans []*Span
	events   []*Event
	scopes   [][]*Span
}

func (l *recordingLayer) OnNewSpan(s *Span, attrs []field.Field) {
	s.CacheFields(attrs)
	l.newSpans = append(l.newSpans, s)
}

func (l *recordingLayer) OnRecord(s *Span, values []field.Field) {
	s.CacheFields(values)
}

func (l *recordingLayer) OnEvent(ev *Event, scope []*Span) {
	l.events = append(l.events, ev)
	l.scopes = append(l.scopes, scope)
}

func TestTracer_ScopeIsRootFirst(t *testing.T) {
	rec := &recordingLayer{}
	tr := New(rec)

	ctx, outer := tr.Start(context.Background(), "outer")
	ctx, inner := tr.Start(ctx, "inner")
	tr.Info(ctx, "hello")

	if len(rec.scopes) != 1 {
		t.Fatalf("events seen = %d, want 1", len(rec.scopes))
	}
	scope := rec.scopes[0]
	if len(scope) != 2 || scope[0] != outer || scope[1] != inner {
		t.Fatalf("scope = %v, want [outer inner]", scope)
	}
	if rec.events[0].Metadata.Level != level.Info {
		t.Fatalf("level = %v, want Info", rec.events[0].Metadata.Level)
	}
	if rec.events[0].Metadata.File == "" || rec.events[0].Metadata.Line == 0 {
		t.Fatalf("caller location not captured")
	}
}

func TestTracer_EventOutsideSpanHasEmptyScope(t *testing.T) {
	rec := &recordingLayer{}
	tr := New(rec)

	tr.Warn(context.Background(), "orphan")

	if len(rec.scopes) != 1 || len(rec.scopes[0]) != 0 {
		t.Fatalf("scope = %v, want empty", rec.scopes)
	}
}

func TestSpan_FieldCacheMoves(t *testing.T) {
	rec := &recordingLayer{}
	tr := New(rec)

	_, s := tr.Start(context.Background(), "job", field.New("k", "v"))
	s.Record(field.New("k2", "v2"), field.New("message", "running"))

	got := s.TakeFields()
	if len(got) != 2 || got[0] != "k:v" || got[1] != "k2:v2" {
		t.Fatalf("TakeFields = %v, want [k:v k2:v2]", got)
	}
	if again := s.TakeFields(); len(again) != 0 {
		t.Fatalf("second TakeFields = %v, want empty", again)
	}

	msg, ok := s.Message()
	if !ok || msg != "running" {
		t.Fatalf("Message = %q/%v, want running/true", msg, ok)
	}
}

func TestDefaultTracer(t *testing.T) {
	if Default() == nil {
		t.Fatalf("Default() = nil before SetDefault")
	}
	tr := New()
	SetDefault(tr)
	if Default() != tr {
		t.Fatalf("Default() did not return the installed tracer")
	}
}

func TestSpanFromContext(t *testing.T) {
	if s := SpanFromContext(context.Background()); s != nil {
		t.Fatalf("SpanFromContext(empty) = %v, want nil", s)
	}
	tr := New()
	ctx, s := tr.Start(context.Background(), "root")
	if got := SpanFromContext(ctx); got != s {
		t.Fatalf("SpanFromContext = %v, want %v", got, s)
	}
	if s.Parent() != nil {
		t.Fatalf("root span has parent %v", s.Parent())
	}
}
