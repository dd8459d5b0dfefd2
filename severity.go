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

import "fmt"

// Severity classifies the importance of a log event.
//
// The value of a Severity is its numeric rank. Ranks of the canonical
// variants are spaced four apart so that intermediate custom levels can be
// slotted between them, mirroring the OpenTelemetry severity-number layout.
// Ordering is numeric: Trace < Debug < Info < Warn < Error < Fatal.
type Severity uint8

const (
	// SeverityTrace is the lowest severity, for fine-grained diagnostics.
	SeverityTrace Severity = 1
	// SeverityDebug is for debugging events.
	SeverityDebug Severity = 5
	// SeverityInfo is for informational events.
	SeverityInfo Severity = 9
	// SeverityWarn is for warning events.
	SeverityWarn Severity = 13
	// SeverityError is for error events.
	SeverityError Severity = 17
	// SeverityFatal is the highest severity. It classifies the caller's
	// event; logging a fatal item does not terminate the process.
	SeverityFatal Severity = 21
)

// String returns the stable lowercase name of the severity, as used by
// serializers. Non-canonical ranks are named after their enclosing bucket.
func (s Severity) String() string {
	switch SeverityFromRank(uint8(s)) {
	case SeverityTrace:
		return "trace"
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return "fatal"
	}
}

// Rank returns the 8-bit numeric rank of the severity.
func (s Severity) Rank() uint8 {
	return uint8(s)
}

// SeverityFromRank reconstructs a canonical Severity from a numeric rank.
//
// Each canonical variant owns a bucket of four ranks (1-4 trace, 5-8 debug,
// 9-12 info, 13-16 warn, 17-20 error, 21-24 fatal). Ranks outside every
// bucket, including 0, collapse to SeverityFatal, the default and highest
// severity.
func SeverityFromRank(rank uint8) Severity {
	switch {
	case rank >= 1 && rank <= 4:
		return SeverityTrace
	case rank >= 5 && rank <= 8:
		return SeverityDebug
	case rank >= 9 && rank <= 12:
		return SeverityInfo
	case rank >= 13 && rank <= 16:
		return SeverityWarn
	case rank >= 17 && rank <= 20:
		return SeverityError
	default:
		return SeverityFatal
	}
}

// ParseSeverity parses a lowercase severity name as produced by
// [Severity.String].
//
// Useful for configuring a lower bound from the environment:
//
//	min, err := itemlog.ParseSeverity(os.Getenv("LOG_LEVEL"))
func ParseSeverity(s string) (Severity, error) {
	switch s {
	case "trace":
		return SeverityTrace, nil
	case "debug":
		return SeverityDebug, nil
	case "info":
		return SeverityInfo, nil
	case "warn":
		return SeverityWarn, nil
	case "error":
		return SeverityError, nil
	case "fatal":
		return SeverityFatal, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSeverity, s)
	}
}
