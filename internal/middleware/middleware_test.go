// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/nycdatasets/internal/logging"
	"github.com/tomtom215/nycdatasets/internal/metrics"
)

func TestRequestID_GeneratesNewID(t *testing.T) {
	var seen string
	handler := RequestID(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/api/stats/overview", nil))

	if _, err := uuid.Parse(seen); err != nil {
		t.Errorf("Expected a UUID request ID, got %q", seen)
	}
	if got := rec.Header().Get(RequestIDHeader); got != seen {
		t.Errorf("Response header %q does not match context ID %q", got, seen)
	}
}

func TestRequestID_Upstream(t *testing.T) {
	tests := []struct {
		name     string
		upstream string
		keep     bool
	}{
		{"proxy id kept", "lb-7f3a9c", true},
		{"empty generated", "", false},
		{"spaces rejected", "a b", false},
		{"newline rejected", "abc\nforged=1", false},
		{"too long rejected", strings.Repeat("x", maxUpstreamIDLen+1), false},
		{"non-ascii rejected", "идентификатор", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			handler := RequestID(func(w http.ResponseWriter, r *http.Request) {
				seen = GetRequestID(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.upstream != "" {
				req.Header.Set(RequestIDHeader, tt.upstream)
			}
			handler(httptest.NewRecorder(), req)

			if tt.keep && seen != tt.upstream {
				t.Errorf("Expected upstream ID %q, got %q", tt.upstream, seen)
			}
			if !tt.keep && seen == tt.upstream {
				t.Errorf("Upstream ID %q should have been replaced", tt.upstream)
			}
			if seen == "" {
				t.Error("Request ID must never be empty")
			}
		})
	}
}

func TestPrometheusMetrics_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/datasets/{kind}", PrometheusMetrics(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	counter := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/api/datasets/{kind}", "418")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/datasets/top-viewed", nil))

	if rec.Code != http.StatusTeapot {
		t.Fatalf("Expected 418, got %d", rec.Code)
	}
	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("Expected counter to increase by 1, got %v", got)
	}
}

func TestPrometheusMetrics_ImplicitOK(t *testing.T) {
	handler := PrometheusMetrics(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("[]"))
	})

	counter := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/plain", "200")
	before := testutil.ToFloat64(counter)

	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/plain", nil))

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("Expected implicit 200 to be recorded, got delta %v", got)
	}
	if active := testutil.ToFloat64(metrics.APIActiveRequests); active != 0 {
		t.Errorf("Expected no in-flight requests after completion, got %v", active)
	}
}

func TestAccessLog_ServerErrorLogsWarn(t *testing.T) {
	var buf bytes.Buffer
	original := logging.Logger()
	logging.SetLogger(logging.NewTestLogger(&buf))
	t.Cleanup(func() { logging.SetLogger(original) })

	handler := RequestID(AccessLog(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/stats/overview?x=1", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	handler(httptest.NewRecorder(), req)

	out := buf.String()
	for _, want := range []string{`"level":"warn"`, `"status":500`, `"request_id":"req-123"`, `"path":"/api/stats/overview"`} {
		if !strings.Contains(out, want) {
			t.Errorf("Access log missing %s: %s", want, out)
		}
	}
}
