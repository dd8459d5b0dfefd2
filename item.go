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
	"sort"
	"time"
)

// Item is one structured log event.
//
// An Item is a plain value. It is built by the caller, handed to one of the
// package-level dispatch functions (which overwrite Timestamp and Severity),
// and consumed exactly once by a [Logger] chain. Stages pass Items by value;
// no stage retains a reference past its own execution.
type Item struct {
	// Timestamp is stamped at dispatch time, overwriting whatever the
	// caller set.
	Timestamp time.Time

	// Severity is stamped by the per-severity dispatch function,
	// overwriting the construction default.
	Severity Severity

	// Body is the human-readable message.
	Body string

	// Attributes are caller-supplied structured fields. They are rendered
	// in sorted key order for deterministic output.
	Attributes map[string]string

	// Resource holds deployment metadata fields (service name, host, ...).
	// [Item.WithResourceKeys] declares the keys with empty placeholder
	// values; a resource proxy is expected to fill them in later.
	// Rendered in sorted key order.
	Resource map[string]string

	// TraceID and SpanID are opaque correlation identifiers.
	// Empty means absent.
	TraceID string
	SpanID  string
}

// NewItem creates an Item with the given body and attributes.
//
// The item starts at trace severity with an empty resource map and the
// current time as its timestamp; both severity and timestamp are overwritten
// when the item is dispatched.
func NewItem(body string, attrs map[string]string) Item {
	return Item{
		Timestamp:  time.Now(),
		Severity:   SeverityTrace,
		Body:       body,
		Attributes: attrs,
	}
}

// WithResourceKeys returns the item with its resource map replaced by the
// declared keys, each initialized to an empty placeholder value.
//
// A resource-substitution proxy (see [NewResourceProxy]) only fills keys
// that were declared here; it never adds keys of its own.
func (i Item) WithResourceKeys(keys ...string) Item {
	resource := make(map[string]string, len(keys))
	for _, key := range keys {
		resource[key] = ""
	}
	i.Resource = resource
	return i
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
