package layer

import (
	"bytes"
	"context"
	"io"
	"math"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/taosdata/taoslog/apis/field"
	"github.com/taosdata/taoslog/apis/qid"
	"github.com/taosdata/taoslog/apis/trace"
)

type testQid uint64

func (q testQid) Get() uint64 { return uint64(q) }

type testManager struct{}

func (testManager) Init() qid.Qid { return testQid(math.MaxInt64) }
func (testManager) From(v uint64) qid.Qid { return testQid(v) }

// captureFactory collects everything the layer writes.
type captureFactory struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (f *captureFactory) MakeWriter() io.Writer { return f }
func (f *captureFactory) MakeWriterFor(trace.Metadata) io.Writer { return f }

func (f *captureFactory) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.buf.Write(p)
}

func (f *captureFactory) String() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.buf.String()
}

func (f *captureFactory) Lines() []string {
	s := strings.TrimSuffix(f.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func newTestTracer(opts ...Option) (*trace.Tracer, *captureFactory) {
	out := &captureFactory{}
	return trace.New(New(testManager{}, out, opts...)), out
}

var linePattern = regexp.MustCompile(
	`^\d{2}/\d{2} \d{2}:\d{2}:\d{2}\.\d{6} \d{8} [A-Z]{4,5} +qid:0x[0-9a-f]{16} `)

func TestLayer_LineShape(t *testing.T) {
	tr, out := newTestTracer()

	ctx, _ := tr.Start(context.Background(), "outer", field.New("k", "kkk"))
	tr.Info(ctx, "hello world", field.New("n", 7))

	lines := out.Lines()
	if len(lines) != 1 {
		t.Fatalf("lines = %d, want 1: %q", len(lines), out.String())
	}
	line := lines[0]
	if !linePattern.MatchString(line) {
		t.Fatalf("line %q does not match the expected shape", line)
	}
	if !strings.Contains(line, "qid:0x7fffffffffffffff") {
		t.Fatalf("line %q missing seed qid", line)
	}
	if !strings.Contains(line, "k:kkk, n:7 hello world") {
		t.Fatalf("line %q missing fields/message", line)
	}
	if strings.Contains(line, "stack:") {
		t.Fatalf("info line %q carries a stack section", line)
	}
}

func TestLayer_QidInheritance(t *testing.T) {
	tr, out := newTestTracer()

	ctx, outer := tr.Start(context.Background(), "outer")
	if got := outer.Qid().Get(); got != uint64(math.MaxInt64) {
		t.Fatalf("root qid = %d, want seed", got)
	}
	outer.SetQid(testQid(999))

	ctx, inner := tr.Start(ctx, "inner")
	if got := inner.Qid().Get(); got != 999 {
		t.Fatalf("inherited qid = %d, want 999", got)
	}

	tr.Info(ctx, "nested")
	if !strings.Contains(out.String(), "qid:0x00000000000003e7") {
		t.Fatalf("output %q missing inherited qid", out.String())
	}
}

func TestLayer_StackForDebugAndTrace(t *testing.T) {
	tr, out := newTestTracer()

	ctx, _ := tr.Start(context.Background(), "outer")
	ctx, _ = tr.Start(ctx, "inner")

	tr.Debug(ctx, "dbg")
	tr.Trace(ctx, "trc")
	tr.Warn(ctx, "warned")
	tr.Error(ctx, "failed")

	lines := out.Lines()
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want 4", len(lines))
	}
	if !strings.Contains(lines[0], "stack:outer->inner") {
		t.Fatalf("debug line %q missing stack", lines[0])
	}
	if !strings.Contains(lines[1], "stack:outer->inner") {
		t.Fatalf("trace line %q missing stack", lines[1])
	}
	for _, line := range lines[2:] {
		if strings.Contains(line, "stack:") {
			t.Fatalf("line %q must not carry a stack section", line)
		}
	}
}

func TestLayer_SpanFieldsPrintOnce(t *testing.T) {
	tr, out := newTestTracer()

	ctx, _ := tr.Start(context.Background(), "job", field.New("k", "v"))
	tr.Info(ctx, "first")
	tr.Info(ctx, "second")

	lines := out.Lines()
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "k:v first") {
		t.Fatalf("first line %q missing span fields", lines[0])
	}
	if strings.Contains(lines[1], "k:v") {
		t.Fatalf("second line %q repeats span fields", lines[1])
	}
}

func TestLayer_QuotesSpacedValues(t *testing.T) {
	tr, out := newTestTracer()

	ctx, _ := tr.Start(context.Background(), "job")
	tr.Info(ctx, "done", field.New("sql", "select 1"))

	if !strings.Contains(out.String(), `sql:"select 1"`) {
		t.Fatalf("output %q does not quote the spaced value", out.String())
	}
}

func TestLayer_NoOutputOutsideSpan(t *testing.T) {
	tr, out := newTestTracer()

	tr.Info(context.Background(), "orphan")

	if out.String() != "" {
		t.Fatalf("event outside any span produced output: %q", out.String())
	}
}

func TestLayer_Location(t *testing.T) {
	tr, out := newTestTracer(WithLocation())

	ctx, _ := tr.Start(context.Background(), "job")
	tr.Info(ctx, "here")

	if !regexp.MustCompile(` at .*layer_test\.go:\d+\n$`).MatchString(out.String()) {
		t.Fatalf("output %q missing location section", out.String())
	}
}

func TestLayer_ANSI(t *testing.T) {
	tr, out := newTestTracer(WithANSI())

	ctx, _ := tr.Start(context.Background(), "job")
	tr.Info(ctx, "colored")

	if !strings.Contains(out.String(), "\x1b[92mINFO \x1b[0m") {
		t.Fatalf("output %q missing colored level", out.String())
	}
}
