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

// Proxy transforms an [Item] before it reaches a logger's serialize/write
// stage.
//
// The item is consumed and produced by value: the transform takes full
// ownership of its input, may freely mutate it, and returns a possibly
// different item. No stage aliases the item past its own execution.
// Proxies must be free of side effects on shared state, or synchronize
// internally; the framework invokes them from multiple goroutines.
type Proxy interface {
	Transform(item Item) Item
}

// ProxyFunc adapts a function to the [Proxy] interface.
type ProxyFunc func(item Item) Item

// Transform calls f(item).
func (f ProxyFunc) Transform(item Item) Item {
	return f(item)
}

// IdentityProxy returns a [Proxy] that passes every item through unchanged.
func IdentityProxy() Proxy {
	return ProxyFunc(func(item Item) Item {
		return item
	})
}

// Join sequences two proxies: p transforms the original item, q transforms
// p's output. Join is associative, so chains built left-to-right and
// right-to-left produce the same end-to-end transform.
func Join(p, q Proxy) Proxy {
	return ProxyFunc(func(item Item) Item {
		return q.Transform(p.Transform(item))
	})
}

// Chain folds any number of proxies into one, applied in argument order.
// An empty chain is the identity.
func Chain(proxies ...Proxy) Proxy {
	joined := IdentityProxy()
	for _, p := range proxies {
		joined = Join(joined, p)
	}
	return joined
}

// ResourceLookup provides replacement values for resource fields.
// The second return value reports whether a value exists for the name.
type ResourceLookup interface {
	Resource(name string) (string, bool)
}

// ResourceMap is a [ResourceLookup] backed by a plain map.
type ResourceMap map[string]string

// Resource returns the value for name, if present.
func (m ResourceMap) Resource(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// NewResourceProxy returns a [Proxy] that fills the item's declared
// resource placeholders from the lookup.
//
// For every key already present in the item's resource map, the value is
// overwritten when the lookup provides one; keys the lookup does not know
// keep their existing (typically empty) value. Keys not declared on the
// item are never added, even if the lookup defines them.
func NewResourceProxy(lookup ResourceLookup) Proxy {
	return ProxyFunc(func(item Item) Item {
		for key := range item.Resource {
			if v, ok := lookup.Resource(key); ok {
				item.Resource[key] = v
			}
		}
		return item
	})
}
