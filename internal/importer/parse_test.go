// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

package importer

import (
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *time.Time
	}{
		{"blank", "", nil},
		{"whitespace", "   ", nil},
		{"garbage", "last tuesday", nil},
		{"utc designator", "2019-03-01T12:00:00Z", utc(2019, 3, 1, 12, 0, 0, 0)},
		{"offset normalized to utc", "2019-03-01T12:00:00-05:00", utc(2019, 3, 1, 17, 0, 0, 0)},
		{"fractional seconds", "2019-03-01T12:00:00.123456Z", utc(2019, 3, 1, 12, 0, 0, 123456000)},
		{"naive datetime", "2020-06-15T08:30:00", utc(2020, 6, 15, 8, 30, 0, 0)},
		{"naive fractional", "2020-06-15T08:30:00.5", utc(2020, 6, 15, 8, 30, 0, 500000000)},
		{"space separated", "2020-06-15 08:30:00", utc(2020, 6, 15, 8, 30, 0, 0)},
		{"minute precision", "2021-11-02T09:45", utc(2021, 11, 2, 9, 45, 0, 0)},
		{"minute precision space separated", "2021-11-02 09:45", utc(2021, 11, 2, 9, 45, 0, 0)},
		{"date only", "2015-01-20", utc(2015, 1, 20, 0, 0, 0, 0)},
		{"surrounding whitespace", " 2015-01-20 ", utc(2015, 1, 20, 0, 0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTimestamp(tt.input)
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("ParseTimestamp(%q) = %v, want nil", tt.input, *got)
			case tt.want != nil && got == nil:
				t.Errorf("ParseTimestamp(%q) = nil, want %v", tt.input, *tt.want)
			case tt.want != nil && !got.Equal(*tt.want):
				t.Errorf("ParseTimestamp(%q) = %v, want %v", tt.input, *got, *tt.want)
			case got != nil && got.Location() != time.UTC:
				t.Errorf("ParseTimestamp(%q) location = %v, want UTC", tt.input, got.Location())
			}
		})
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		input string
		want  *int64
	}{
		{"", nil},
		{"  ", nil},
		{"abc", nil},
		{"-3", nil},
		{"1.5", nil},
		{"0", i64(0)},
		{"42", i64(42)},
		{" 42 ", i64(42)},
		{"1500.0", i64(1500)},
		{"9223372036854775807", i64(9223372036854775807)},
		{"9223372036854775808", nil},
	}

	for _, tt := range tests {
		got := ParseInt(tt.input)
		if (got == nil) != (tt.want == nil) || (got != nil && *got != *tt.want) {
			t.Errorf("ParseInt(%q) = %v, want %v", tt.input, deref(got), deref(tt.want))
		}
	}
}

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"id", "id", true},
		{"ID", "id", true},
		{" Name ", "name", true},
		{"Page Views Total", "page_views_total", true},
		{"download-count", "download_count", true},
		{"Agency", "dataset_information_agency", true},
		{"Dataset Information Agency", "dataset_information_agency", true},
		{"category", "domain_category", true},
		{"tags", "domain_tags", true},
		{"\ufeffid", "id", true},
		{"owner", "owner", false},
	}

	for _, tt := range tests {
		got, ok := NormalizeHeader(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("NormalizeHeader(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func utc(y int, m time.Month, d, h, mi, s, ns int) *time.Time {
	t := time.Date(y, m, d, h, mi, s, ns, time.UTC)
	return &t
}

func i64(n int64) *int64 { return &n }

func deref(p *int64) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
