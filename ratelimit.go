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
	"sync"
	"time"
)

// RateLimitWriter wraps an inner [Writer] with a per-severity cooldown.
//
// A call is delegated only if no prior emission at that exact severity
// happened within the minimum interval, or no prior emission at that
// severity exists at all. Severities are independent: a burst of errors
// does not suppress the next info line.
//
// The last-emission timestamps are the only mutable state in a pipeline;
// they live behind one mutex per writer instance. The state for a severity
// is updated to "now" before delegating, so the cooldown covers the
// emission itself. Suppression is silent: no error ever reaches the caller.
//
// Thread-safe: safe for concurrent use by multiple goroutines.
type RateLimitWriter struct {
	inner Writer
	min   time.Duration

	mu   sync.Mutex
	last map[Severity]time.Time

	// now is swapped in tests for deterministic cooldowns.
	now func() time.Time
}

// NewRateLimitWriter wraps inner so that at most one line per severity is
// emitted every min interval.
//
// Reference composition per the package documentation: the rate limiter
// wraps the severity-gated writer, so the cheaper gate runs on delegation.
func NewRateLimitWriter(inner Writer, min time.Duration) *RateLimitWriter {
	return &RateLimitWriter{
		inner: inner,
		min:   min,
		last:  make(map[Severity]time.Time),
		now:   time.Now,
	}
}

// Write delegates to the inner writer unless the severity is still cooling
// down, in which case the call is a silent no-op.
func (w *RateLimitWriter) Write(serialized string, level Severity) {
	w.mu.Lock()
	now := w.now()
	if prev, ok := w.last[level]; ok && now.Sub(prev) < w.min {
		w.mu.Unlock()
		return
	}
	w.last[level] = now
	w.mu.Unlock()

	w.inner.Write(serialized, level)
}
