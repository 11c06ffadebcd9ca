// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

package api

import (
	"fmt"
	"time"

	"github.com/tomtom215/nycdatasets/internal/models"
)

const (
	ellipsis = "..."

	// isoLayout matches an ISO-8601 local date-time without offset;
	// fractional seconds are appended only when present.
	isoLayout = "2006-01-02T15:04:05"
)

// truncate shortens s to max characters (runes, not bytes) and appends an
// ellipsis. Strings of max characters or fewer are returned unchanged.
func truncate(s string, max int) string {
	if max < 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + ellipsis
}

func truncatePtr(s *string, max int) *string {
	if s == nil {
		return nil
	}
	out := truncate(*s, max)
	return &out
}

// formatTimestamp renders ts in UTC as YYYY-MM-DDTHH:MM:SS, adding
// .ffffff microseconds when they are non-zero.
func formatTimestamp(ts *time.Time) *string {
	if ts == nil {
		return nil
	}
	utc := ts.UTC()
	out := utc.Format(isoLayout)
	if micros := utc.Nanosecond() / 1000; micros != 0 {
		out += fmt.Sprintf(".%06d", micros)
	}
	return &out
}

func orZero(n *int64) int64 {
	if n == nil {
		return 0
	}
	return *n
}

func toAgencyStats(groups []models.GroupStats) []models.AgencyStats {
	out := make([]models.AgencyStats, len(groups))
	for i, g := range groups {
		out[i] = models.AgencyStats{
			Agency:         g.Key,
			DatasetCount:   g.DatasetCount,
			TotalViews:     g.TotalViews,
			TotalDownloads: g.TotalDownloads,
		}
	}
	return out
}

func toCategoryStats(groups []models.GroupStats) []models.CategoryStats {
	out := make([]models.CategoryStats, len(groups))
	for i, g := range groups {
		out[i] = models.CategoryStats{
			Category:       g.Key,
			DatasetCount:   g.DatasetCount,
			TotalViews:     g.TotalViews,
			TotalDownloads: g.TotalDownloads,
		}
	}
	return out
}

func toEngagementMetrics(records []models.DatasetRecord, nameMax int) []models.EngagementMetric {
	out := make([]models.EngagementMetric, len(records))
	for i := range records {
		rec := &records[i]
		out[i] = models.EngagementMetric{
			Name:         truncatePtr(rec.Name, nameMax),
			WeeklyViews:  orZero(rec.PageViewsLastWeek),
			MonthlyViews: orZero(rec.PageViewsLastMonth),
			TotalViews:   orZero(rec.PageViewsTotal),
			Downloads:    orZero(rec.DownloadCount),
			Category:     rec.DomainCategory,
		}
	}
	return out
}

func toSearchResults(records []models.DatasetRecord, descriptionMax int) []models.SearchResult {
	out := make([]models.SearchResult, len(records))
	for i := range records {
		rec := &records[i]
		out[i] = models.SearchResult{
			ID:              rec.ID,
			Name:            rec.Name,
			Description:     truncatePtr(rec.Description, descriptionMax),
			Agency:          rec.Agency,
			Category:        rec.DomainCategory,
			PageViewsTotal:  rec.PageViewsTotal,
			DownloadCount:   rec.DownloadCount,
			PublicationDate: formatTimestamp(rec.PublicationDate),
			Link:            rec.Link,
		}
	}
	return out
}
