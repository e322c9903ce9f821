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

package health

import (
	"context"
	"time"
)

// Status is a normalized health state for a component.
//
// Keep the set small to make HTTP/gRPC mapping trivial.
type Status string

const (
	// StatusUnknown means the checker could not determine the health state.
	StatusUnknown Status = "unknown"

	// StatusHealthy means the component works as expected.
	StatusHealthy Status = "healthy"

	// StatusDegraded means the component works with reduced output.
	// For a log sink this is the state where only error events land.
	StatusDegraded Status = "degraded"

	// StatusUnhealthy means the component is not operational.
	// For a log sink this is the state where every event is dropped.
	StatusUnhealthy Status = "unhealthy"
)

// Result is a single checker result.
type Result struct {
	// Name is a stable, human-readable name of the check.
	Name string

	// Status is a normalized health state.
	Status Status

	// ObservedAt is the time when the check was executed.
	ObservedAt time.Time

	// Details is an optional, unstructured map for extra data
	// (free bytes, thresholds, current file, ...).
	Details map[string]any
}

// OK returns true if the result indicates a healthy state.
func (r Result) OK() bool {
	return r.Status == StatusHealthy
}

// Checker is the minimal contract for any health check.
//
// Implementations SHOULD be quick and non-blocking, or honor the context
// for timeouts/cancellation.
type Checker interface {
	Check(ctx context.Context) Result
}
