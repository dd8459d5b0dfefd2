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
	"io"
	"os"
)

// Writer is the sink-facing stage of a pipeline. It consumes serialized
// text plus the item's severity and decides whether and where to emit it.
//
// Plain writers must be stateless or manage their own synchronization;
// the framework invokes them from multiple goroutines without external
// locking. Write errors are swallowed: logging never disrupts the caller.
type Writer interface {
	Write(serialized string, level Severity)
}

// WriterFunc adapts a function to the [Writer] interface.
type WriterFunc func(serialized string, level Severity)

// Write calls f(serialized, level).
func (f WriterFunc) Write(serialized string, level Severity) {
	f(serialized, level)
}

// NewFilterWriter wraps inner with a severity predicate. Calls whose
// severity is rejected are a no-op, not an error; accepted calls reach
// inner with the serialized text and severity unchanged.
func NewFilterWriter(inner Writer, allow func(Severity) bool) Writer {
	return WriterFunc(func(serialized string, level Severity) {
		if !allow(level) {
			return
		}
		inner.Write(serialized, level)
	})
}

// LowerBound returns a predicate accepting severities whose rank is at
// least the rank of min (an inclusive lower-bound filter).
func LowerBound(min Severity) func(Severity) bool {
	return func(level Severity) bool {
		return level.Rank() >= min.Rank()
	}
}

// NewConsoleWriter returns a [Writer] that routes trace, debug, and info
// lines to standard output and warn, error, and fatal lines to standard
// error, one newline-terminated line per call.
func NewConsoleWriter() Writer {
	return NewConsoleWriterTo(os.Stdout, os.Stderr)
}

// NewConsoleWriterTo is [NewConsoleWriter] with injectable streams.
// Useful in tests and when redirecting output.
func NewConsoleWriterTo(stdout, stderr io.Writer) Writer {
	return WriterFunc(func(serialized string, level Severity) {
		out := stdout
		if level.Rank() >= SeverityWarn.Rank() {
			out = stderr
		}
		_, _ = fmt.Fprintln(out, serialized)
	})
}

// NewStdWriter returns the reference console writer gated by an inclusive
// severity lower bound.
func NewStdWriter(min Severity) Writer {
	return NewFilterWriter(NewConsoleWriter(), LowerBound(min))
}
