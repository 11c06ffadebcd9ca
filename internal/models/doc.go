// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

// Package models defines the dataset record and the JSON shapes served by
// the API. Store rows carry `db` tags for sqlx; API shapes carry `json` tags
// and field order that fixes the serialized key order.
package models
