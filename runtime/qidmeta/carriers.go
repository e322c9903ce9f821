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

package qidmeta

import (
	"context"
	"net/http"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/taosdata/taoslog/apis/qid"
	"github.com/taosdata/taoslog/apis/trace"
)

// Span addresses the innermost active span of a context. Reads return the
// identifier attached to that span; writes replace it.
type Span struct {
	Ctx context.Context
}

func (c Span) qid(qid.Manager) (qid.Qid, bool) {
	s := trace.SpanFromContext(c.Ctx)
	if s == nil {
		return nil, false
	}
	q := s.Qid()
	return q, q != nil
}

func (c Span) setQid(q qid.Qid) {
	if s := trace.SpanFromContext(c.Ctx); s != nil {
		s.SetQid(q)
	}
}

// Header addresses an HTTP header map under the x-qid key.
type Header http.Header

func (c Header) qid(m qid.Manager) (qid.Qid, bool) {
	v, ok := ParseText(http.Header(c).Get(HeaderKey))
	if !ok {
		return nil, false
	}
	return m.From(v), true
}

func (c Header) setQid(q qid.Qid) {
	http.Header(c).Set(HeaderKey, Format(q))
}

// Schema addresses the key/value metadata of a columnar dataset schema
// under the x-qid key. Arrow schemas are immutable, so a write replaces
// the pointed-to schema with a copy carrying the updated metadata.
type Schema struct {
	Schema *arrow.Schema
}

func (c Schema) qid(m qid.Manager) (qid.Qid, bool) {
	md := c.Schema.Metadata()
	idx := md.FindKey(HeaderKey)
	if idx < 0 {
		return nil, false
	}
	v, ok := ParseText(md.Values()[idx])
	if !ok {
		return nil, false
	}
	return m.From(v), true
}

func (c Schema) setQid(q qid.Qid) {
	md := c.Schema.Metadata()
	keys := append([]string(nil), md.Keys()...)
	values := append([]string(nil), md.Values()...)
	if idx := md.FindKey(HeaderKey); idx >= 0 {
		values[idx] = Format(q)
	} else {
		keys = append(keys, HeaderKey)
		values = append(values, Format(q))
	}
	next := arrow.NewMetadata(keys, values)
	*c.Schema = *arrow.NewSchema(c.Schema.Fields(), &next)
}
