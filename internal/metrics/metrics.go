// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

// Package metrics exposes Prometheus instrumentation for the API, the
// dataset store, the response cache and the CSV importer.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Store metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nycdatasets_db_query_duration_seconds",
			Help:    "Duration of dataset store queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nycdatasets_db_query_errors_total",
			Help: "Total number of failed dataset store queries",
		},
		[]string{"operation", "error_type"}, // "timeout", "canceled", "circuit_open", "query"
	)

	StoreUp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "nycdatasets_store_up",
			Help: "1 if the last store health check succeeded, 0 otherwise",
		},
	)

	DatasetsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "nycdatasets_datasets_total",
			Help: "Number of dataset records at the last health check",
		},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "nycdatasets_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	// Response cache metrics
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nycdatasets_cache_hits_total",
			Help: "Total number of response cache hits",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nycdatasets_cache_misses_total",
			Help: "Total number of response cache misses",
		},
	)

	CacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "nycdatasets_cache_entries",
			Help: "Current number of cached responses",
		},
	)

	// API metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nycdatasets_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nycdatasets_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "nycdatasets_api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nycdatasets_api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Importer metrics
	ImportRows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nycdatasets_import_rows_total",
			Help: "CSV rows processed by the importer",
		},
		[]string{"result"}, // "imported", "skipped"
	)

	ImportDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "nycdatasets_import_duration_seconds",
			Help:    "Duration of CSV imports in seconds",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 300},
		},
	)
)

// RecordDBQuery records one store query. errType is empty on success.
func RecordDBQuery(operation string, duration time.Duration, errType string) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if errType != "" {
		DBQueryErrors.WithLabelValues(operation, errType).Inc()
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordStoreHealth records the outcome of a store health check.
func RecordStoreHealth(up bool, datasets int64) {
	if !up {
		StoreUp.Set(0)
		return
	}
	StoreUp.Set(1)
	DatasetsTotal.Set(float64(datasets))
}

// RecordImport records the outcome of one CSV import run.
func RecordImport(imported, skipped int, duration time.Duration) {
	ImportRows.WithLabelValues("imported").Add(float64(imported))
	ImportRows.WithLabelValues("skipped").Add(float64(skipped))
	ImportDuration.Observe(duration.Seconds())
}
