// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

// Package testinfra provides shared test fixtures and container helpers.
//
// # Fixtures
//
// SampleDatasets is a small catalog with every nullable column missing in at
// least one row. NewSeededStore loads it into an in-memory DuckDB store:
//
//	func TestOverview(t *testing.T) {
//	    db := testinfra.NewSeededStore(t)
//	    stats, err := db.GetOverviewStats(context.Background())
//	    // ...
//	}
//
// # PostgreSQL Container
//
// Under the integration build tag, NewPostgresContainer starts a real
// PostgreSQL server through testcontainers-go. The parity test loads the same
// fixture into both backends and compares every query:
//
//	go test -tags integration ./internal/testinfra/...
//
// These tests require Docker and are skipped when it is unavailable. The
// first run downloads the image.
package testinfra
