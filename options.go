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
	"io"
	"time"
)

// Option is a functional option for assembling a pipeline with [New].
type Option func(*config)

// WithSerializer substitutes the serialization stage.
func WithSerializer(s Serializer) Option {
	return func(c *config) {
		if s == nil {
			c.err = ErrNilSerializer
			return
		}
		c.serializer = s
	}
}

// WithWriter substitutes the sink stage. The writer is still wrapped by
// the severity gate and, if configured, the rate limiter.
func WithWriter(w Writer) Option {
	return func(c *config) {
		if w == nil {
			c.err = ErrNilWriter
			return
		}
		c.writer = w
	}
}

// WithLowerBound sets the inclusive severity lower bound (default info).
func WithLowerBound(min Severity) Option {
	return func(c *config) {
		c.gate = LowerBound(min)
	}
}

// WithNoFilter removes the severity gate; every severity reaches the sink.
func WithNoFilter() Option {
	return func(c *config) {
		c.gate = nil
	}
}

// WithRateLimit wraps the sink with a per-severity cooldown of min.
func WithRateLimit(min time.Duration) Option {
	return func(c *config) {
		if min < 0 {
			c.err = ErrNegativeInterval
			return
		}
		c.rateLimit = min
		c.hasLimit = true
	}
}

// WithProxy appends a transform stage. Proxies run in the order supplied,
// before serialization.
func WithProxy(p Proxy) Option {
	return func(c *config) {
		if p == nil {
			c.err = ErrNilProxy
			return
		}
		c.proxies = append(c.proxies, p)
	}
}

// WithResourceLookup appends a resource-substitution proxy filling the
// declared resource placeholders of every item from the lookup.
func WithResourceLookup(lookup ResourceLookup) Option {
	return func(c *config) {
		if lookup == nil {
			c.err = ErrNilProxy
			return
		}
		c.proxies = append(c.proxies, NewResourceProxy(lookup))
	}
}

// WithResource is [WithResourceLookup] for a plain map.
func WithResource(resource map[string]string) Option {
	return WithResourceLookup(ResourceMap(resource))
}

// WithOutput redirects the default console writer's streams. It replaces
// the sink; if combined with [WithWriter], the last option supplied wins.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(c *config) {
		c.writer = NewConsoleWriterTo(stdout, stderr)
	}
}

// WithInstall registers the assembled logger as the process-wide logger
// (see [SetLogger]) once assembly succeeds.
func WithInstall() Option {
	return func(c *config) {
		c.install = true
	}
}
