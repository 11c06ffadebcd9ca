// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

package database

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/tomtom215/nycdatasets/internal/models"
)

func summaryIDs(rows []models.DatasetSummary) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

func recordIDs(rows []models.DatasetRecord) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

func TestGetOverviewStats(t *testing.T) {
	db := setupSeededDB(t)

	stats, err := db.GetOverviewStats(context.Background())
	checkNoError(t, err)

	checkInt64Equal(t, "TotalDatasets", stats.TotalDatasets, 5)
	checkInt64Equal(t, "TotalPageViews", stats.TotalPageViews, 700)
	checkInt64Equal(t, "TotalDownloads", stats.TotalDownloads, 66)
	// (5 + 15 + 11) / 3 over the three rows with a weekly count
	if stats.AvgWeeklyViews != 10.33 {
		t.Errorf("AvgWeeklyViews: expected 10.33, got %v", stats.AvgWeeklyViews)
	}
}

func TestGetOverviewStats_RoundsHalfToEven(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	// weekly views 1,0,0,0,0,0,0,0 average to exactly 0.125
	weekly := []int64{1, 0, 0, 0, 0, 0, 0, 0}
	records := make([]models.DatasetRecord, len(weekly))
	for i, w := range weekly {
		records[i] = models.DatasetRecord{
			ID:                fmt.Sprintf("r%d", i),
			PageViewsLastWeek: int64Ptr(w),
		}
	}
	_, err := db.UpsertDatasets(ctx, records)
	checkNoError(t, err)

	stats, err := db.GetOverviewStats(ctx)
	checkNoError(t, err)

	checkInt64Equal(t, "TotalDatasets", stats.TotalDatasets, 8)
	if stats.AvgWeeklyViews != 0.12 {
		t.Errorf("AvgWeeklyViews: expected 0.12, got %v", stats.AvgWeeklyViews)
	}
}

func TestRoundTo2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.125, 0.12},
		{0.375, 0.38},
		{10.333333, 10.33},
		{8.5, 8.5},
		{0, 0},
	}

	for _, tt := range tests {
		if got := roundTo2(tt.in); got != tt.want {
			t.Errorf("roundTo2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGetOverviewStats_EmptyStore(t *testing.T) {
	db := setupTestDB(t)

	stats, err := db.GetOverviewStats(context.Background())
	checkNoError(t, err)

	want := models.OverviewStats{}
	if diff := cmp.Diff(want, *stats); diff != "" {
		t.Errorf("Empty store stats mismatch (-want +got):\n%s", diff)
	}
}

func TestGetTopDatasets(t *testing.T) {
	db := setupSeededDB(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		sortBy SortColumn
		limit  int
		want   []string
	}{
		{"views ties by id, null last", SortByPageViews, 10, []string{"a2", "a5", "a1", "a4", "a3"}},
		{"views limited", SortByPageViews, 2, []string{"a2", "a5"}},
		{"downloads null last", SortByDownloads, 10, []string{"a3", "a1", "a2", "a5", "a4"}},
		{"zero limit", SortByDownloads, 0, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := db.GetTopDatasets(ctx, tt.sortBy, tt.limit)
			checkNoError(t, err)
			if diff := cmp.Diff(tt.want, summaryIDs(rows)); diff != "" {
				t.Errorf("Order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGetTopDatasets_PassesNullsThrough(t *testing.T) {
	db := setupSeededDB(t)

	rows, err := db.GetTopDatasets(context.Background(), SortByPageViews, 10)
	checkNoError(t, err)
	checkLen(t, "rows", len(rows), 5)

	last := rows[4]
	checkStringEqual(t, "ID", last.ID, "a3")
	if last.PageViewsTotal != nil {
		t.Errorf("Expected null page views, got %d", *last.PageViewsTotal)
	}
	if last.Agency == nil || *last.Agency != "Parks" {
		t.Errorf("Expected agency Parks, got %v", last.Agency)
	}

	a4 := rows[3]
	if a4.Agency != nil {
		t.Errorf("Expected null agency, got %q", *a4.Agency)
	}
}

func TestGetTopDatasets_UnknownSortColumn(t *testing.T) {
	db := setupSeededDB(t)

	_, err := db.GetTopDatasets(context.Background(), SortColumn("name; DROP TABLE nyc_datasets"), 10)
	if !errors.Is(err, ErrUnknownSortColumn) {
		t.Fatalf("Expected ErrUnknownSortColumn, got %v", err)
	}
}

func TestGetGroupStats(t *testing.T) {
	db := setupSeededDB(t)
	ctx := context.Background()

	t.Run("agency", func(t *testing.T) {
		got, err := db.GetGroupStats(ctx, DimensionAgency, Unlimited)
		checkNoError(t, err)

		want := []models.GroupStats{
			{Key: "DOHMH", DatasetCount: 1, TotalViews: 300, TotalDownloads: 1},
			{Key: "MTA", DatasetCount: 1, TotalViews: 300, TotalDownloads: 5},
			{Key: "Parks", DatasetCount: 2, TotalViews: 100, TotalDownloads: 60},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Agency groups mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("category", func(t *testing.T) {
		got, err := db.GetGroupStats(ctx, DimensionCategory, Unlimited)
		checkNoError(t, err)

		want := []models.GroupStats{
			{Key: "Transportation", DatasetCount: 1, TotalViews: 300, TotalDownloads: 5},
			{Key: "Recreation", DatasetCount: 2, TotalViews: 100, TotalDownloads: 60},
			{Key: "Health", DatasetCount: 1, TotalViews: 0, TotalDownloads: 0},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Category groups mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("limited", func(t *testing.T) {
		got, err := db.GetGroupStats(ctx, DimensionAgency, 1)
		checkNoError(t, err)
		checkLen(t, "groups", len(got), 1)
		checkStringEqual(t, "Key", got[0].Key, "DOHMH")
	})

	t.Run("unknown dimension", func(t *testing.T) {
		_, err := db.GetGroupStats(ctx, Dimension("tags"), Unlimited)
		if !errors.Is(err, ErrUnknownDimension) {
			t.Fatalf("Expected ErrUnknownDimension, got %v", err)
		}
	})
}

func TestGetPublicationTimeline(t *testing.T) {
	db := setupSeededDB(t)
	ctx := context.Background()

	got, err := db.GetPublicationTimeline(ctx, 2000)
	checkNoError(t, err)
	want := []models.TimelinePoint{
		{Year: 2015, Count: 1},
		{Year: 2019, Count: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Timeline mismatch (-want +got):\n%s", diff)
	}

	all, err := db.GetPublicationTimeline(ctx, 0)
	checkNoError(t, err)
	checkLen(t, "timeline", len(all), 3)
	if all[0].Year != 1998 {
		t.Errorf("Expected earliest year 1998, got %d", all[0].Year)
	}
}

func TestGetEngagementMetrics(t *testing.T) {
	db := setupSeededDB(t)

	rows, err := db.GetEngagementMetrics(context.Background(), 10)
	checkNoError(t, err)

	// a4 has zero views and a3 none at all; both are excluded.
	if diff := cmp.Diff([]string{"a2", "a5", "a1"}, recordIDs(rows)); diff != "" {
		t.Errorf("Order mismatch (-want +got):\n%s", diff)
	}

	a5 := rows[1]
	if a5.PageViewsLastWeek != nil || a5.PageViewsLastMonth != nil {
		t.Error("Expected raw null weekly and monthly counters for a5")
	}
	if a5.DomainCategory != nil {
		t.Errorf("Expected null category, got %q", *a5.DomainCategory)
	}
}

func TestSearchDatasets(t *testing.T) {
	db := setupSeededDB(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		filter models.SearchFilter
		want   []string
	}{
		{"no filter", models.SearchFilter{}, []string{"a2", "a5", "a1", "a4", "a3"}},
		{"name case-insensitive", models.SearchFilter{Query: "PARK"}, []string{"a1"}},
		{"description not searched", models.SearchFilter{Query: "ridership"}, []string{}},
		{"underscore is literal", models.SearchFilter{Query: "_"}, []string{"a4"}},
		{"percent is literal", models.SearchFilter{Query: "100%"}, []string{"a2"}},
		{"category", models.SearchFilter{Category: "Recreation"}, []string{"a1", "a3"}},
		{"category is exact", models.SearchFilter{Category: "recreation"}, []string{}},
		{"agency and query", models.SearchFilter{Agency: "Parks", Query: "gamma"}, []string{"a3"}},
		{"no match", models.SearchFilter{Query: "zzz"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := db.SearchDatasets(ctx, tt.filter, 50)
			checkNoError(t, err)
			if diff := cmp.Diff(tt.want, recordIDs(rows)); diff != "" {
				t.Errorf("Results mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSearchDatasets_Limit(t *testing.T) {
	db := setupSeededDB(t)

	rows, err := db.SearchDatasets(context.Background(), models.SearchFilter{}, 2)
	checkNoError(t, err)
	checkLen(t, "results", len(rows), 2)
}

func TestSearchDatasets_ReturnsTimestampsInUTC(t *testing.T) {
	db := setupSeededDB(t)

	rows, err := db.SearchDatasets(context.Background(), models.SearchFilter{Query: "Beta"}, 1)
	checkNoError(t, err)
	checkLen(t, "results", len(rows), 1)

	got := rows[0].PublicationDate
	want := time.Date(2019, time.June, 15, 12, 30, 0, 0, time.UTC)
	if got == nil || !got.Equal(want) {
		t.Errorf("PublicationDate: expected %v, got %v", want, got)
	}
}

func TestGetDistinctValues(t *testing.T) {
	db := setupSeededDB(t)
	ctx := context.Background()

	// An empty-string value is not offered as a filter option.
	_, err := db.UpsertDatasets(ctx, []models.DatasetRecord{
		{ID: "blank", Agency: strPtr(""), DomainCategory: strPtr("")},
	})
	checkNoError(t, err)

	agencies, err := db.GetDistinctValues(ctx, DimensionAgency)
	checkNoError(t, err)
	if diff := cmp.Diff([]string{"DOHMH", "MTA", "Parks"}, agencies); diff != "" {
		t.Errorf("Agencies mismatch (-want +got):\n%s", diff)
	}

	categories, err := db.GetDistinctValues(ctx, DimensionCategory)
	checkNoError(t, err)
	if diff := cmp.Diff([]string{"Health", "Recreation", "Transportation"}, categories); diff != "" {
		t.Errorf("Categories mismatch (-want +got):\n%s", diff)
	}

	if _, err := db.GetDistinctValues(ctx, Dimension("")); !errors.Is(err, ErrUnknownDimension) {
		t.Errorf("Expected ErrUnknownDimension, got %v", err)
	}
}

func TestGetDistinctValues_EmptyStore(t *testing.T) {
	db := setupTestDB(t)

	values, err := db.GetDistinctValues(context.Background(), DimensionCategory)
	checkNoError(t, err)
	if values == nil || len(values) != 0 {
		t.Errorf("Expected empty non-nil slice, got %#v", values)
	}
}

func TestCountDatasets(t *testing.T) {
	db := setupSeededDB(t)

	n, err := db.CountDatasets(context.Background())
	checkNoError(t, err)
	checkInt64Equal(t, "count", n, 5)
}

func TestUpsertDatasets_OverwritesExisting(t *testing.T) {
	db := setupSeededDB(t)
	ctx := context.Background()

	n, err := db.UpsertDatasets(ctx, []models.DatasetRecord{
		{ID: "a1", Name: strPtr("Alpha Parks v2"), PageViewsTotal: int64Ptr(999)},
	})
	checkNoError(t, err)
	if n != 1 {
		t.Errorf("Expected 1 row written, got %d", n)
	}

	count, err := db.CountDatasets(ctx)
	checkNoError(t, err)
	checkInt64Equal(t, "count", count, 5)

	top, err := db.GetTopDatasets(ctx, SortByPageViews, 1)
	checkNoError(t, err)
	checkLen(t, "top", len(top), 1)
	checkStringEqual(t, "ID", top[0].ID, "a1")
	if top[0].Name == nil || *top[0].Name != "Alpha Parks v2" {
		t.Errorf("Expected updated name, got %v", top[0].Name)
	}
	// Columns absent from the new record are overwritten with NULL.
	if top[0].Agency != nil {
		t.Errorf("Expected agency cleared, got %q", *top[0].Agency)
	}
}

func TestUpsertDatasets_Empty(t *testing.T) {
	db := setupTestDB(t)

	n, err := db.UpsertDatasets(context.Background(), nil)
	checkNoError(t, err)
	if n != 0 {
		t.Errorf("Expected 0, got %d", n)
	}
}

func TestQueries_CanceledContext(t *testing.T) {
	db := setupSeededDB(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := db.GetOverviewStats(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
