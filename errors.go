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

import "errors"

// Sentinel errors for the construction path.
//
// Errors exist only while assembling a pipeline with [New]; the logging
// path itself has no error channel (see the package documentation on
// silent degradation). Sentinels enable [errors.Is] checks:
//
//	if _, err := itemlog.New(itemlog.WithWriter(nil)); errors.Is(err, itemlog.ErrNilWriter) {
//	    // misassembled pipeline
//	}
var (
	// ErrNilSerializer indicates a nil serializer was supplied to
	// [WithSerializer]. Programmer error, caught at assembly.
	ErrNilSerializer = errors.New("serializer is nil")

	// ErrNilWriter indicates a nil writer was supplied to [WithWriter].
	ErrNilWriter = errors.New("writer is nil")

	// ErrNilProxy indicates a nil proxy or resource lookup was supplied
	// to [WithProxy] or [WithResourceLookup].
	ErrNilProxy = errors.New("proxy is nil")

	// ErrNegativeInterval indicates a negative cooldown was supplied to
	// [WithRateLimit].
	ErrNegativeInterval = errors.New("rate-limit interval is negative")

	// ErrUnknownSeverity indicates a name not produced by
	// [Severity.String] was passed to [ParseSeverity].
	ErrUnknownSeverity = errors.New("unknown severity name")
)
