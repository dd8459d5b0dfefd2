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
	"sync"
	"time"
)

// serializeBuilderPool provides reusable [strings.Builder] instances for
// rendering items. Builders are reset before reuse.
var serializeBuilderPool = sync.Pool{
	New: func() any {
		return &strings.Builder{}
	},
}

// Logger consumes one [Item] per call.
//
// The item is passed by value and must not be accessed by the caller
// afterwards. Loggers are safe to share across concurrent callers without
// caller-side locking; any internal state is self-synchronizing, as in
// [RateLimitWriter].
type Logger interface {
	Log(item Item)
}

// LoggerFunc adapts a function to the [Logger] interface.
type LoggerFunc func(item Item)

// Log calls f(item).
func (f LoggerFunc) Log(item Item) {
	f(item)
}

// NewLogger binds a [Serializer] and a [Writer]: each logged item is
// rendered to text and written with the item's severity.
func NewLogger(s Serializer, w Writer) Logger {
	return LoggerFunc(func(item Item) {
		b := serializeBuilderPool.Get().(*strings.Builder)
		b.Reset()
		defer serializeBuilderPool.Put(b)

		s.Serialize(b, item)
		w.Write(b.String(), item.Severity)
	})
}

// NewProxyLogger wraps inner with a [Proxy]: each logged item is first
// transformed, then the transformed item is delegated to inner.
func NewProxyLogger(inner Logger, p Proxy) Logger {
	return LoggerFunc(func(item Item) {
		inner.Log(p.Transform(item))
	})
}

// config collects the pieces of the reference pipeline assembled by [New].
type config struct {
	serializer Serializer
	writer     Writer
	gate       func(Severity) bool
	rateLimit  time.Duration
	hasLimit   bool
	proxies    []Proxy
	install    bool

	err error
}

// defaultConfig returns the reference pipeline configuration: LTSV
// serialization to the console, gated at info.
func defaultConfig() *config {
	return &config{
		serializer: LTSVSerializer(),
		writer:     NewConsoleWriter(),
		gate:       LowerBound(SeverityInfo),
	}
}

// validate checks the assembled configuration.
func (c *config) validate() error {
	if c.err != nil {
		return c.err
	}
	if c.serializer == nil {
		return ErrNilSerializer
	}
	if c.writer == nil {
		return ErrNilWriter
	}
	return nil
}

// New assembles the reference pipeline and returns it as a [Logger].
//
// With no options the logger serializes items as LTSV and writes them to
// the console with an inclusive info lower bound. Options substitute any
// stage or add rate limiting and proxies; see [Option].
//
// Composition order: proxies run first (in the order supplied), then the
// serializer, then the rate limiter (if any) wrapping the severity-gated
// writer.
func New(opts ...Option) (Logger, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	writer := cfg.writer
	if cfg.gate != nil {
		writer = NewFilterWriter(writer, cfg.gate)
	}
	if cfg.hasLimit {
		writer = NewRateLimitWriter(writer, cfg.rateLimit)
	}

	logger := NewLogger(cfg.serializer, writer)
	if len(cfg.proxies) > 0 {
		logger = NewProxyLogger(logger, Chain(cfg.proxies...))
	}

	if cfg.install {
		SetLogger(logger)
	}
	return logger, nil
}

// MustNew is [New] but panics on error. Intended for process start, where
// a misassembled pipeline is a programmer error.
func MustNew(opts ...Option) Logger {
	logger, err := New(opts...)
	if err != nil {
		panic("itemlog initialization failed: " + err.Error())
	}
	return logger
}
