// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

package database

import "fmt"

// Dimension is a grouping or filtering attribute of a dataset. Only the
// constants below are valid; they are the only column names ever spliced
// into SQL text.
type Dimension string

const (
	DimensionAgency   Dimension = "agency"
	DimensionCategory Dimension = "category"
)

// Column returns the table column backing d.
func (d Dimension) Column() (string, error) {
	switch d {
	case DimensionAgency:
		return "dataset_information_agency", nil
	case DimensionCategory:
		return "domain_category", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDimension, string(d))
	}
}

// SortColumn is a counter the top-N lists can be ordered by.
type SortColumn string

const (
	SortByPageViews SortColumn = "page_views_total"
	SortByDownloads SortColumn = "download_count"
)

// Validate rejects anything outside the fixed set of sortable counters.
func (s SortColumn) Validate() error {
	switch s {
	case SortByPageViews, SortByDownloads:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSortColumn, string(s))
	}
}
