// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

package database

import (
	"context"
	"errors"
	"io"

	"github.com/tomtom215/nycdatasets/internal/logging"
)

var (
	// ErrUnknownDimension is returned for a grouping dimension outside the
	// fixed set (agency, category).
	ErrUnknownDimension = errors.New("unknown dimension")

	// ErrUnknownSortColumn is returned for an ordering column outside the
	// fixed set (page_views_total, download_count).
	ErrUnknownSortColumn = errors.New("unknown sort column")

	// ErrCircuitOpen is returned while the circuit breaker rejects queries.
	ErrCircuitOpen = errors.New("circuit breaker open")
)

// closeWithLog closes c and logs a failure. For defers where the close error
// is not actionable.
func closeWithLog(c io.Closer, what string) {
	if err := c.Close(); err != nil {
		logging.Warn().Err(err).Str("resource", what).Msg("Close failed")
	}
}

// closeQuietly closes c on an error path that already has an error to return.
func closeQuietly(c io.Closer) {
	_ = c.Close() //nolint:errcheck // already returning the primary error
}

// classifyError maps a query error to the error_type metric label.
func classifyError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, ErrCircuitOpen):
		return "circuit_open"
	default:
		return "query"
	}
}
