// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

package models

// Greeting is the body of the root route.
type Greeting struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx API response.
//
//	{"error": {"code": "VALIDATION_ERROR", "message": "limit must be an integer"}}
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// APIError carries a machine-readable code and a human-readable message.
//
// Codes:
//   - VALIDATION_ERROR: malformed or out-of-range query parameter (400)
//   - DATABASE_ERROR: query execution failure (500)
//   - RATE_LIMIT_EXCEEDED: too many requests (429)
//   - NOT_FOUND: unknown route (404)
//   - METHOD_NOT_ALLOWED: non-GET request on a known route (405)
//   - INTERNAL_ERROR: response encoding failure (500)
//
// Example:
//
//	{
//	  "code": "VALIDATION_ERROR",
//	  "message": "limit must be less than or equal to 1000",
//	  "details": {"field": "limit", "tag": "lte", "value": 5000}
//	}
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is returned by /health.
type HealthStatus struct {
	Status            string  `json:"status"`
	Version           string  `json:"version"`
	Driver            string  `json:"driver"`
	DatabaseConnected bool    `json:"database_connected"`
	Uptime            float64 `json:"uptime_seconds"`
}
