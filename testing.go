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
	"strings"
	"sync"
)

// CapturedWrite is one call recorded by a [CaptureWriter].
type CapturedWrite struct {
	Serialized string
	Level      Severity
}

// CaptureWriter is a [Writer] that records every call in memory, for
// asserting on pipeline output in tests.
//
// Thread-safe: safe for concurrent use by multiple goroutines.
type CaptureWriter struct {
	mu     sync.Mutex
	writes []CapturedWrite
}

// Write records the call.
func (w *CaptureWriter) Write(serialized string, level Severity) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.writes = append(w.writes, CapturedWrite{Serialized: serialized, Level: level})
}

// Writes returns a copy of the recorded calls in call order.
func (w *CaptureWriter) Writes() []CapturedWrite {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]CapturedWrite, len(w.writes))
	copy(out, w.writes)
	return out
}

// Len returns the number of recorded calls.
func (w *CaptureWriter) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.writes)
}

// Reset discards the recorded calls.
func (w *CaptureWriter) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.writes = nil
}

// NewTestLogger returns an ungated LTSV logger writing into a
// [CaptureWriter], for inspecting serialized output in tests.
func NewTestLogger() (Logger, *CaptureWriter) {
	capture := &CaptureWriter{}
	return NewLogger(LTSVSerializer(), capture), capture
}

// ParseLTSVLine splits one LTSV record into its fields. Values containing
// ':' keep everything after the first separator. Malformed fragments
// (no separator) are skipped.
func ParseLTSVLine(line string) map[string]string {
	fields := make(map[string]string)
	for _, part := range strings.Split(strings.TrimSuffix(line, "\n"), "\t") {
		key, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		fields[key] = value
	}
	return fields
}
