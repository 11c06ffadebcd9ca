// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

package importer

import (
	"strconv"
	"strings"
	"time"
)

// timestampLayouts are tried in order. Layouts without a zone are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTimestamp parses a catalog timestamp and normalizes it to UTC.
// Blank or unparseable input returns nil.
func ParseTimestamp(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

// ParseInt parses a non-negative counter. Blank, unparseable or negative
// input returns nil. A trailing ".0" from spreadsheet exports is accepted.
func ParseInt(s string) *int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, ".0")
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}

// parseText returns nil for an empty cell.
func parseText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// NormalizeHeader maps a CSV header to its table column name. The second
// result is false when the header names no known column.
func NormalizeHeader(h string) (string, bool) {
	h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
	h = strings.NewReplacer(" ", "_", "-", "_").Replace(h)

	if col, ok := headerAliases[h]; ok {
		return col, true
	}
	_, ok := knownColumns[h]
	return h, ok
}

var headerAliases = map[string]string{
	"agency":   "dataset_information_agency",
	"category": "domain_category",
	"tags":     "domain_tags",
}
