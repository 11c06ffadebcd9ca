// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

/*
Package main is the entry point for the NYC Datasets API server.

The server exposes read-only analytics over the NYC Open Data catalog
metadata table: overview statistics, top datasets, per-agency and
per-category rollups, a publication timeline, engagement metrics, search and
filter option lists. Data is loaded out of band with cmd/importer.

# Application Architecture

The server runs under a Suture v4 supervisor tree:

	RootSupervisor ("nycdatasets")
	├── DataSupervisor ("data-layer")
	│   ├── Store Monitor (store_up / datasets_total gauges)
	│   └── Cache Janitor (when the response cache is enabled)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Component initialization order:

 1. Configuration: Koanf v2 with defaults, config file and environment
 2. Logging: zerolog with JSON/console output modes
 3. Database: DuckDB (embedded) or PostgreSQL via pgx, behind a circuit breaker
 4. Response cache: TTL cache of serialized responses, when enabled
 5. Supervisor tree and HTTP server

# Configuration

Priority: Environment variables > Config file > Defaults

	# Server
	HTTP_PORT=8000
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

	# Store
	DUCKDB_PATH=/data/nycdatasets.duckdb
	DATABASE_URL=postgres://...  # selects the PostgreSQL driver

	# Cache (off by default) and rate limiting
	CACHE_ENABLED=false          # true serves repeated reads from memory
	CACHE_TTL=5m
	RATE_LIMIT_REQUESTS=100
	RATE_LIMIT_WINDOW=1m

# Endpoints

	GET /                                     greeting
	GET /api/stats/overview                   catalog totals
	GET /api/datasets/top-viewed?limit=       most viewed datasets
	GET /api/datasets/top-downloaded?limit=   most downloaded datasets
	GET /api/datasets/search?q=&category=&agency=&limit=
	GET /api/analytics/by-agency              top agencies by views
	GET /api/analytics/by-category            categories by views
	GET /api/analytics/publication-timeline   datasets published per year
	GET /api/analytics/engagement-metrics     most engaged datasets
	GET /api/filters/categories               distinct categories
	GET /api/filters/agencies                 distinct agencies
	GET /health, /health/live, /health/ready  health checks
	GET /metrics                              Prometheus
	GET /swagger/index.html                   API docs

# Signal Handling

SIGINT and SIGTERM cancel the supervisor context. The HTTP server drains
in-flight requests for up to 10 seconds, then the store is closed.

# Build

	go build -ldflags "-X github.com/tomtom215/nycdatasets/internal/api.Version=1.0.0" ./cmd/server
*/
package main
