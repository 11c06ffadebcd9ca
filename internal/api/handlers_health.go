// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/nycdatasets/internal/models"
)

// Health handles health check requests
//
// @Summary Get service health status
// @Description Returns health status including store connectivity, driver, version and uptime. Always 200; status is "degraded" when the store is unreachable.
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthStatus "Health status retrieved successfully"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	dbConnected := h.db != nil && h.db.Ping(r.Context()) == nil

	status := "healthy"
	if !dbConnected {
		status = "degraded"
	}

	driver := ""
	if h.db != nil {
		driver = h.db.Driver()
	}

	respondJSON(w, http.StatusOK, models.HealthStatus{
		Status:            status,
		Version:           Version,
		Driver:            driver,
		DatabaseConnected: dbConnected,
		Uptime:            time.Since(h.startTime).Seconds(),
	})
}

// HealthLive handles liveness check requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
//
// @Summary Kubernetes liveness check
// @Description Returns 200 OK if the process is alive, regardless of the store.
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness check requests (Kubernetes-style)
// Returns 200 OK only if the store answers a ping
//
// @Summary Kubernetes readiness check
// @Description Returns 200 OK when the store is reachable, 503 otherwise.
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is ready"
// @Failure 503 {object} map[string]interface{} "Service is not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	dbConnected := h.db != nil && h.db.Ping(r.Context()) == nil

	statusCode := http.StatusOK
	status := "ready"
	if !dbConnected {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	breaker := "disabled"
	if h.db != nil {
		breaker = h.db.BreakerState()
	}

	respondJSON(w, statusCode, map[string]interface{}{
		"status":             status,
		"database_connected": dbConnected,
		"circuit_breaker":    breaker,
	})
}
