// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

// Package query builds the parameterized SELECT statements issued by the
// database package: filter, group, sort and limit over a single table.
//
// Clauses are written with "?" placeholders and rebound to PostgreSQL-style
// "$n" placeholders on Build, which both DuckDB and pgx accept.
package query
