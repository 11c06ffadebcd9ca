// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tomtom215/nycdatasets/internal/config"
	"github.com/tomtom215/nycdatasets/internal/models"
)

func newRequest(t *testing.T, target string) *http.Request {
	t.Helper()
	return httptest.NewRequest(http.MethodGet, target, nil)
}

func TestHealth(t *testing.T) {
	router, _ := setupRouter(t, testConfig(), nil)

	rec := doGet(t, router, "/health")
	expectStatus(t, rec, http.StatusOK)

	health := decodeBody[models.HealthStatus](t, rec)
	if health.Status != "healthy" || !health.DatabaseConnected {
		t.Errorf("Expected healthy connected store, got %+v", health)
	}
	if health.Driver != config.DriverDuckDB {
		t.Errorf("Expected duckdb driver, got %q", health.Driver)
	}
	if health.Version != Version {
		t.Errorf("Expected version %q, got %q", Version, health.Version)
	}
	if health.Uptime < 0 {
		t.Errorf("Uptime must not be negative, got %v", health.Uptime)
	}
}

func TestHealth_DegradedAfterClose(t *testing.T) {
	router, db := setupRouter(t, testConfig(), nil)
	if err := db.Close(); err != nil {
		t.Fatalf("Failed to close store: %v", err)
	}

	rec := doGet(t, router, "/health")
	expectStatus(t, rec, http.StatusOK)
	if health := decodeBody[models.HealthStatus](t, rec); health.Status != "degraded" || health.DatabaseConnected {
		t.Errorf("Expected degraded status, got %+v", health)
	}

	ready := doGet(t, router, "/health/ready")
	expectStatus(t, ready, http.StatusServiceUnavailable)
	if body := decodeBody[map[string]interface{}](t, ready); body["status"] != "not_ready" {
		t.Errorf("Expected not_ready, got %v", body)
	}

	expectStatus(t, doGet(t, router, "/health/live"), http.StatusOK)
}

func TestHealthReady(t *testing.T) {
	router, _ := setupRouter(t, testConfig(), nil)

	rec := doGet(t, router, "/health/ready")
	expectStatus(t, rec, http.StatusOK)

	body := decodeBody[map[string]interface{}](t, rec)
	if body["status"] != "ready" || body["database_connected"] != true {
		t.Errorf("Expected ready, got %v", body)
	}
	if body["circuit_breaker"] != "disabled" {
		t.Errorf("Expected disabled breaker, got %v", body["circuit_breaker"])
	}
}

func TestHealthLive_NoDatabase(t *testing.T) {
	handler := NewHandler(nil, nil, nil)

	rec := httptest.NewRecorder()
	handler.HealthLive(rec, newRequest(t, "/health/live"))
	expectStatus(t, rec, http.StatusOK)

	if body := decodeBody[map[string]interface{}](t, rec); body["alive"] != true {
		t.Errorf("Expected alive, got %v", body)
	}
}
