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

// Package itemlog is a minimal structured-logging facade.
//
// Application code builds an [Item] (message body plus string attributes),
// hands it to a per-severity dispatch function, and the installed [Logger]
// pipeline does the rest: an optional [Proxy] chain transforms the item, a
// [Serializer] renders it to text, and a [Writer] decides whether and where
// to emit the line. Each stage is a single-method capability, so pipelines
// are assembled from small composable values rather than subclassed.
//
// # Basic Usage
//
//	itemlog.MustNew(itemlog.WithInstall())
//
//	itemlog.Info(itemlog.NewItem("service started", map[string]string{
//	    "port": "8080",
//	}))
//
// # Resource Fields
//
// Items declare resource placeholders; a resource proxy fills them at log
// time, keeping deployment metadata out of call sites:
//
//	itemlog.MustNew(
//	    itemlog.WithResource(map[string]string{
//	        "service.name": "checkout",
//	        "host.name":    "instance-a",
//	    }),
//	    itemlog.WithInstall(),
//	)
//
//	itemlog.Info(itemlog.NewItem("ready", nil).
//	    WithResourceKeys("service.name", "host.name"))
//
// # Filtering and Rate Limiting
//
// The default pipeline routes trace/debug/info to stdout and warn/error/
// fatal to stderr with an inclusive info lower bound. Writers compose, so
// gating and per-severity cooldowns wrap any sink:
//
//	itemlog.MustNew(
//	    itemlog.WithLowerBound(itemlog.SeverityWarn),
//	    itemlog.WithRateLimit(time.Second),
//	    itemlog.WithInstall(),
//	)
//
// # Trace Correlation
//
// Items carry opaque trace and span identifiers, filled from an
// OpenTelemetry span context when available:
//
//	itemlog.Info(itemlog.NewItem("handled", nil).WithSpanContext(ctx))
//
// # Silent Degradation
//
// Logging never disrupts the caller. There is no error channel on the
// logging path: formatting failures drop the malformed fragment, a cooling
// severity drops the line, and dispatch without an installed logger is a
// no-op. Errors surface only while assembling a pipeline with [New].
package itemlog
