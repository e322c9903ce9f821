package middleware

import (
	"bytes"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/taosdata/taoslog/apis/qid"
	"github.com/taosdata/taoslog/apis/trace"
	"github.com/taosdata/taoslog/runtime/layer"
	"github.com/taosdata/taoslog/runtime/qidmeta"
)

type testQid uint64

func (q testQid) Get() uint64 { return uint64(q) }

type testManager struct{}

func (testManager) Init() qid.Qid { return testQid(math.MaxInt64) }
func (testManager) From(v uint64) qid.Qid { return testQid(v) }

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

func TestAccessLog_EmitsRequestLines(t *testing.T) {
	out := &captureFactory{}
	tr := trace.New(layer.New(testManager{}, out))

	var sawSpan bool
	h := AccessLog(tr, testManager{}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawSpan = trace.SpanFromContext(r.Context()) != nil
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/metrics?full=1", nil)
	req.Header.Set("User-Agent", "curl/8")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if !sawSpan {
		t.Fatalf("handler did not run inside a span")
	}
	outStr := out.String()
	if !strings.Contains(outStr, `"GET /metrics?full=1 HTTP/1.1" curl/8`) {
		t.Fatalf("missing request-start line in %q", outStr)
	}
	if !strings.Contains(outStr, `"GET /metrics?full=1" status code: 418, body: 15`) {
		t.Fatalf("missing request-end line in %q", outStr)
	}
}

func TestAccessLog_AdoptsInboundQid(t *testing.T) {
	out := &captureFactory{}
	tr := trace.New(layer.New(testManager{}, out))

	var got uint64
	h := AccessLog(tr, testManager{}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if q, ok := qidmeta.Get(testManager{}, qidmeta.Span{Ctx: r.Context()}); ok {
			got = q.Get()
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("x-qid", "0x00000000000003e7")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if got != 999 {
		t.Fatalf("handler qid = %d, want 999", got)
	}
	if !strings.Contains(out.String(), "qid:0x00000000000003e7") {
		t.Fatalf("access lines %q not tagged with inbound qid", out.String())
	}
}
