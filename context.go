// Copyright 2025 The Itemlog Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package itemlog

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// Semantic convention field names for trace correlation.
const (
	fieldTraceID = "trace_id"
	fieldSpanID  = "span_id"
)

// WithSpanContext returns the item with its trace and span identifiers
// copied from the OpenTelemetry span context carried by ctx.
//
// Why this exists:
//   - Distributed tracing requires trace/span IDs in logs to correlate requests
//   - Manually threading trace IDs through every log call is error-prone
//   - This extracts them automatically from OpenTelemetry context
//
// If ctx carries no valid span context, the item is returned unchanged.
func (i Item) WithSpanContext(ctx context.Context) Item {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return i
	}
	i.TraceID = sc.TraceID().String()
	i.SpanID = sc.SpanID().String()
	return i
}
