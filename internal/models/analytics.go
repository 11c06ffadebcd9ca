// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

package models

// OverviewStats is the catalog-wide summary. Sums count a missing counter as
// 0; the weekly average ignores missing values and is rounded to 2 decimals.
type OverviewStats struct {
	TotalDatasets  int64   `db:"total_datasets" json:"total_datasets"`
	TotalPageViews int64   `db:"total_page_views" json:"total_page_views"`
	TotalDownloads int64   `db:"total_downloads" json:"total_downloads"`
	AvgWeeklyViews float64 `db:"avg_weekly_views" json:"avg_weekly_views"`
}

// DatasetSummary is one row of the top-viewed and top-downloaded lists.
// Raw counters pass through as null when absent.
type DatasetSummary struct {
	ID             string  `db:"id" json:"id"`
	Name           *string `db:"name" json:"name"`
	PageViewsTotal *int64  `db:"page_views_total" json:"page_views_total"`
	DownloadCount  *int64  `db:"download_count" json:"download_count"`
	Agency         *string `db:"agency" json:"agency"`
	Category       *string `db:"category" json:"category"`
}

// GroupStats aggregates datasets sharing one value of a grouping dimension
// (agency or category).
type GroupStats struct {
	Key            string `db:"group_key"`
	DatasetCount   int64  `db:"dataset_count"`
	TotalViews     int64  `db:"total_views"`
	TotalDownloads int64  `db:"total_downloads"`
}

// AgencyStats is the JSON shape of one by-agency group.
type AgencyStats struct {
	Agency         string `json:"agency"`
	DatasetCount   int64  `json:"dataset_count"`
	TotalViews     int64  `json:"total_views"`
	TotalDownloads int64  `json:"total_downloads"`
}

// CategoryStats is the JSON shape of one by-category group.
type CategoryStats struct {
	Category       string `json:"category"`
	DatasetCount   int64  `json:"dataset_count"`
	TotalViews     int64  `json:"total_views"`
	TotalDownloads int64  `json:"total_downloads"`
}

// TimelinePoint counts datasets first published in a calendar year.
type TimelinePoint struct {
	Year  int   `db:"year" json:"year"`
	Count int64 `db:"count" json:"count"`
}

// EngagementMetric compares weekly, monthly and total views for one dataset.
// Counters are never null in this shape.
type EngagementMetric struct {
	Name         *string `json:"name"`
	WeeklyViews  int64   `json:"weekly_views"`
	MonthlyViews int64   `json:"monthly_views"`
	TotalViews   int64   `json:"total_views"`
	Downloads    int64   `json:"downloads"`
	Category     *string `json:"category"`
}

// SearchResult is one row of /api/datasets/search. PublicationDate is an
// ISO-8601 string or null.
type SearchResult struct {
	ID              string  `json:"id"`
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	Agency          *string `json:"agency"`
	Category        *string `json:"category"`
	PageViewsTotal  *int64  `json:"page_views_total"`
	DownloadCount   *int64  `json:"download_count"`
	PublicationDate *string `json:"publication_date"`
	Link            *string `json:"link"`
}

// SearchFilter narrows /api/datasets/search. Empty fields do not filter.
type SearchFilter struct {
	Query    string `json:"q"`
	Category string `json:"category"`
	Agency   string `json:"agency"`
}
