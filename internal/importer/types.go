// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

package importer

import (
	"time"
)

// DefaultBatchSize is the number of rows written per transaction.
const DefaultBatchSize = 500

// Options controls an import run.
type Options struct {
	// BatchSize is the number of rows per upsert transaction.
	// Default: 500
	BatchSize int `validate:"gte=0,lte=100000"`

	// DryRun parses and counts rows without writing them.
	DryRun bool
}

// Result summarizes an import run.
type Result struct {
	// Read is the number of data rows read from the file.
	Read int `json:"read"`

	// Imported is the number of distinct datasets written (or that would be
	// written in a dry run).
	Imported int `json:"imported"`

	// Skipped is the number of rows without an id.
	Skipped int `json:"skipped"`

	// Duplicates is the number of rows superseded by a later row with the
	// same id.
	Duplicates int `json:"duplicates"`

	DryRun    bool      `json:"dry_run"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// Duration returns how long the run took, or has taken so far.
func (r *Result) Duration() time.Duration {
	if r.EndTime.IsZero() {
		return time.Since(r.StartTime)
	}
	return r.EndTime.Sub(r.StartTime)
}

// RowsPerSecond returns the read rate.
func (r *Result) RowsPerSecond() float64 {
	seconds := r.Duration().Seconds()
	if seconds == 0 {
		return 0
	}
	return float64(r.Read) / seconds
}
