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

package middleware

import (
	"fmt"
	"net/http"

	"github.com/taosdata/taoslog/apis/qid"
	"github.com/taosdata/taoslog/apis/trace"
	"github.com/taosdata/taoslog/runtime/qidmeta"
)

// AccessLog wraps an http.Handler so that every request runs inside a
// root span. An inbound x-qid header is adopted onto the span, binding
// the request's log lines to the caller's identifier; otherwise the span
// keeps the seed assigned at creation. One line is emitted when the
// request starts and one when it ends.
func AccessLog(tracer *trace.Tracer, manager qid.Manager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "request")

		if q, ok := qidmeta.Get(manager, qidmeta.Header(r.Header)); ok {
			span.SetQid(q)
		}

		target := r.URL.RequestURI()
		tracer.Info(ctx, fmt.Sprintf("%s \"%s %s %s\" %s",
			clientIP(r), r.Method, target, r.Proto, r.UserAgent()))

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(ctx))

		tracer.Info(ctx, fmt.Sprintf("\"%s %s\" status code: %d, body: %d",
			r.Method, target, rec.status, rec.written))
	})
}

// clientIP prefers the reverse-proxy header over the socket peer.
func clientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	return r.RemoteAddr
}

// statusRecorder captures the status code and body size for the
// request-end line.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	written int64
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	n, err := r.ResponseWriter.Write(p)
	r.written += int64(n)
	return n, err
}
