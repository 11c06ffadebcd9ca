// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

// Package importer loads the NYC Open Data catalog CSV export into the
// dataset store.
//
// The API is read-only; this package is the only writer and runs from the
// importer CLI, never from an HTTP handler.
//
// # Pipeline
//
//	catalog.csv
//	     ↓
//	Mapper (header matching, per-field parsing)
//	     ↓
//	dedupe by id (last row wins)
//	     ↓
//	database.UpsertDatasets (one transaction per batch)
//
// # Header Matching
//
// Header names are lowercased, trimmed, and have spaces and dashes replaced by
// underscores before they are compared with table columns. The short names
// agency, category and tags map to dataset_information_agency,
// domain_category and domain_tags. Unknown columns are ignored and missing
// columns load as NULL.
//
// # Field Parsing
//
// Empty cells load as NULL. Timestamps go through ParseTimestamp and counters
// through ParseInt; values that do not parse load as NULL rather than failing
// the row. Rows without an id are skipped and counted.
package importer
