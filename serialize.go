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
	"fmt"
	"strings"
)

// Serializer renders an [Item] into a textual representation by appending
// to the supplied builder.
//
// Implementations must not mutate the item and must be safe to invoke
// concurrently from multiple goroutines (no shared mutable state).
// Formatting failures are handled best-effort: the malformed fragment is
// dropped and serialization continues, so a log call never fails.
type Serializer interface {
	Serialize(b *strings.Builder, item Item)
}

// SerializerFunc adapts a function to the [Serializer] interface.
type SerializerFunc func(b *strings.Builder, item Item)

// Serialize calls f(b, item).
func (f SerializerFunc) Serialize(b *strings.Builder, item Item) {
	f(b, item)
}

// appendFragment writes one formatted fragment, dropping it on failure.
// Logging must never abort the caller over a malformed field.
func appendFragment(b *strings.Builder, format string, args ...any) {
	_, _ = fmt.Fprintf(b, format, args...)
}

// LTSVSerializer returns a [Serializer] producing one LTSV record per item:
// a level field, the attributes (sorted by key, prefixed "attr."), the
// resource fields (sorted by key), the trace/span identifiers when present,
// and finally the message body.
//
//	level:info	attr.user:alice	service.name:svc	msg:ready
//
// The layout is a convention, not a wire contract; any [Serializer] may be
// substituted.
func LTSVSerializer() Serializer {
	return SerializerFunc(func(b *strings.Builder, item Item) {
		appendFragment(b, "level:%s", item.Severity)
		for _, key := range sortedKeys(item.Attributes) {
			appendFragment(b, "\tattr.%s:%s", key, item.Attributes[key])
		}
		for _, key := range sortedKeys(item.Resource) {
			appendFragment(b, "\t%s:%s", key, item.Resource[key])
		}
		if item.TraceID != "" {
			appendFragment(b, "\t%s:%s", fieldTraceID, item.TraceID)
		}
		if item.SpanID != "" {
			appendFragment(b, "\t%s:%s", fieldSpanID, item.SpanID)
		}
		appendFragment(b, "\tmsg:%s", item.Body)
	})
}
