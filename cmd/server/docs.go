// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

// Package main provides the NYC Datasets HTTP server
//
// @title NYC Datasets API
// @version 1.0
// @description Read-only analytics over the NYC Open Data catalog metadata.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit on /api: 100 requests per minute per IP address.
// @description
// @description ## Caching
// @description
// @description Responses are not cached by default. Set CACHE_ENABLED=true to cache them for CACHE_TTL. Repeated calls on unchanged data return byte-identical bodies and the same ETag either way.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "error": {
// @description     "code": "VALIDATION_ERROR",
// @description     "message": "limit must be an integer",
// @description     "details": {}
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/nycdatasets/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8000
// @BasePath /
// @schemes http https
//
// @tag.name Core
// @tag.description Service greeting
//
// @tag.name Stats
// @tag.description Catalog-wide totals
//
// @tag.name Datasets
// @tag.description Top lists and search over individual datasets
//
// @tag.name Analytics
// @tag.description Aggregations by agency, category and publication year
//
// @tag.name Filters
// @tag.description Distinct values for filter dropdowns
//
// @tag.name Health
// @tag.description Liveness and readiness checks
package main
