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

// The process-wide dispatch registry.
//
// The slot holds the one active [Logger]. It starts empty (dispatch is a
// silent no-op) and only ever moves to installed or replaced; there is no
// uninstall. The previous logger is never invoked again after replacement;
// no draining or flush is guaranteed.
//
// Lock discipline: one RWMutex guards the slot. Dispatch holds the read
// lock for read-pointer-and-invoke, so concurrent dispatchers never
// contend with each other; [SetLogger] takes the write lock for the swap
// only. No call blocks indefinitely or surfaces an error.
var registry struct {
	mu     sync.RWMutex
	logger Logger
}

// SetLogger installs l as the process-wide active logger, replacing any
// previous one. Installation is typically one-time at process start but is
// safe at any point. The registry keeps l for the remainder of the process
// (or until replaced).
func SetLogger(l Logger) {
	registry.mu.Lock()
	registry.logger = l
	registry.mu.Unlock()
}

// dispatch stamps the item's timestamp and forwards it to the installed
// logger. Without an installed logger the event is dropped silently:
// observability must never raise an observable failure to the caller.
func dispatch(item Item) {
	item.Timestamp = time.Now()

	registry.mu.RLock()
	defer registry.mu.RUnlock()
	if registry.logger == nil {
		return
	}
	registry.logger.Log(item)
}

// Trace logs the item as a trace-level event through the installed logger.
func Trace(item Item) {
	item.Severity = SeverityTrace
	dispatch(item)
}

// Debug logs the item as a debugging event through the installed logger.
func Debug(item Item) {
	item.Severity = SeverityDebug
	dispatch(item)
}

// Info logs the item as an informational event through the installed logger.
func Info(item Item) {
	item.Severity = SeverityInfo
	dispatch(item)
}

// Warn logs the item as a warning event through the installed logger.
func Warn(item Item) {
	item.Severity = SeverityWarn
	dispatch(item)
}

// Error logs the item as an error event through the installed logger.
func Error(item Item) {
	item.Severity = SeverityError
	dispatch(item)
}

// Fatal logs the item as a fatal event through the installed logger.
// Fatal classifies the caller's event; it does not terminate the process.
func Fatal(item Item) {
	item.Severity = SeverityFatal
	dispatch(item)
}
