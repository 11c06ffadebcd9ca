// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

/*
Package middleware provides the HTTP middleware shared by every API route.

Key Components:

  - RequestID: assigns or propagates X-Request-ID and puts it in the logging
    context
  - AccessLog: one structured zerolog line per request
  - PrometheusMetrics: request count, latency and in-flight gauge, labeled by
    chi route pattern so path parameters do not explode cardinality

All three have the func(http.HandlerFunc) http.HandlerFunc shape; the api
package adapts them to chi with its chiMiddleware helper:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.AccessLog))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))

Status codes are captured with chi's WrapResponseWriter, which preserves the
optional http.Flusher and http.Hijacker interfaces of the underlying writer.
*/
package middleware
