// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

package database

import (
	"context"
	"fmt"
	"math"

	"github.com/tomtom215/nycdatasets/internal/database/query"
	"github.com/tomtom215/nycdatasets/internal/models"
)

// Unlimited passes no LIMIT to a list query.
const Unlimited = -1

// Every ordering ends in id ASC so ties (including NULL counters, which sort
// last) come back in a stable order.
const tieBreaker = "id ASC"

// GetOverviewStats returns the catalog-wide totals and the weekly-view
// average rounded to two decimals.
func (db *DB) GetOverviewStats(ctx context.Context) (*models.OverviewStats, error) {
	return run(ctx, db, "overview_stats", func(ctx context.Context) (*models.OverviewStats, error) {
		sql, args := query.Select(datasetsTable,
			"COUNT(*) AS total_datasets",
			sumOf("page_views_total")+" AS total_page_views",
			sumOf("download_count")+" AS total_downloads",
			avgOf("page_views_last_week")+" AS avg_weekly_views",
		).Build()

		var stats models.OverviewStats
		if err := db.conn.GetContext(ctx, &stats, sql, args...); err != nil {
			return nil, err
		}
		stats.AvgWeeklyViews = roundTo2(stats.AvgWeeklyViews)
		return &stats, nil
	})
}

// GetTopDatasets returns up to limit datasets ordered by the given counter,
// highest first. Datasets missing the counter come last.
func (db *DB) GetTopDatasets(ctx context.Context, sortBy SortColumn, limit int) ([]models.DatasetSummary, error) {
	if err := sortBy.Validate(); err != nil {
		return nil, err
	}

	return run(ctx, db, "top_"+string(sortBy), func(ctx context.Context) ([]models.DatasetSummary, error) {
		sql, args := query.Select(datasetsTable,
			"id",
			"name",
			"page_views_total",
			"download_count",
			"dataset_information_agency AS agency",
			"domain_category AS category",
		).
			OrderBy(string(sortBy)+" DESC NULLS LAST", tieBreaker).
			Limit(limit).
			Build()

		rows := []models.DatasetSummary{}
		if err := db.conn.SelectContext(ctx, &rows, sql, args...); err != nil {
			return nil, err
		}
		return rows, nil
	})
}

// GetGroupStats aggregates datasets by agency or category, ordered by total
// views descending. Datasets with no value for the dimension are excluded.
func (db *DB) GetGroupStats(ctx context.Context, dim Dimension, limit int) ([]models.GroupStats, error) {
	column, err := dim.Column()
	if err != nil {
		return nil, err
	}

	return run(ctx, db, "group_by_"+string(dim), func(ctx context.Context) ([]models.GroupStats, error) {
		where := query.NewWhereBuilder().AddClause(notNull(column))

		sql, args := query.Select(datasetsTable,
			column+" AS group_key",
			"COUNT(*) AS dataset_count",
			sumOf("page_views_total")+" AS total_views",
			sumOf("download_count")+" AS total_downloads",
		).
			Where(where).
			GroupBy(column).
			OrderBy("total_views DESC", "group_key ASC").
			Limit(limit).
			Build()

		rows := []models.GroupStats{}
		if err := db.conn.SelectContext(ctx, &rows, sql, args...); err != nil {
			return nil, err
		}
		return rows, nil
	})
}

// GetPublicationTimeline counts datasets per publication year from minYear
// on, ascending by year. Datasets without a publication date are excluded.
func (db *DB) GetPublicationTimeline(ctx context.Context, minYear int) ([]models.TimelinePoint, error) {
	return run(ctx, db, "publication_timeline", func(ctx context.Context) ([]models.TimelinePoint, error) {
		const yearExpr = "CAST(EXTRACT(YEAR FROM publication_date) AS INTEGER)"

		where := query.NewWhereBuilder().
			AddNotNull("publication_date").
			AddClause(yearExpr+" >= ?", minYear)

		sql, args := query.Select(datasetsTable,
			yearExpr+" AS year",
			"COUNT(*) AS count",
		).
			Where(where).
			GroupBy(yearExpr).
			OrderBy("year ASC").
			Build()

		rows := []models.TimelinePoint{}
		if err := db.conn.SelectContext(ctx, &rows, sql, args...); err != nil {
			return nil, err
		}
		return rows, nil
	})
}

// GetEngagementMetrics returns the counters of the most viewed datasets with
// at least one total view. Counters are returned raw; zero-filling is left
// to the caller.
func (db *DB) GetEngagementMetrics(ctx context.Context, limit int) ([]models.DatasetRecord, error) {
	return run(ctx, db, "engagement_metrics", func(ctx context.Context) ([]models.DatasetRecord, error) {
		where := query.NewWhereBuilder().AddClause("page_views_total > ?", 0)

		sql, args := query.Select(datasetsTable,
			"id",
			"name",
			"page_views_last_week",
			"page_views_last_month",
			"page_views_total",
			"download_count",
			"domain_category",
		).
			Where(where).
			OrderBy("page_views_total DESC", tieBreaker).
			Limit(limit).
			Build()

		rows := []models.DatasetRecord{}
		if err := db.conn.SelectContext(ctx, &rows, sql, args...); err != nil {
			return nil, err
		}
		return rows, nil
	})
}

// SearchDatasets returns datasets matching every non-empty field of filter,
// ordered by total views descending. Query is a case-insensitive literal
// substring match on the name; Category and Agency match exactly.
func (db *DB) SearchDatasets(ctx context.Context, filter models.SearchFilter, limit int) ([]models.DatasetRecord, error) {
	return run(ctx, db, "search_datasets", func(ctx context.Context) ([]models.DatasetRecord, error) {
		where := query.NewWhereBuilder()
		if filter.Query != "" {
			where.AddContainsFold("name", filter.Query)
		}
		where.AddEquals("domain_category", filter.Category)
		where.AddEquals("dataset_information_agency", filter.Agency)

		sql, args := query.Select(datasetsTable,
			"id",
			"name",
			"description",
			"dataset_information_agency",
			"domain_category",
			"page_views_total",
			"download_count",
			"publication_date",
			"link",
		).
			Where(where).
			OrderBy("page_views_total DESC NULLS LAST", tieBreaker).
			Limit(limit).
			Build()

		rows := []models.DatasetRecord{}
		if err := db.conn.SelectContext(ctx, &rows, sql, args...); err != nil {
			return nil, err
		}
		return rows, nil
	})
}

// GetDistinctValues lists every non-empty value of a dimension, ascending.
func (db *DB) GetDistinctValues(ctx context.Context, dim Dimension) ([]string, error) {
	column, err := dim.Column()
	if err != nil {
		return nil, err
	}

	return run(ctx, db, "distinct_"+string(dim), func(ctx context.Context) ([]string, error) {
		sql := fmt.Sprintf(
			"SELECT DISTINCT %[1]s FROM %[2]s WHERE %[1]s IS NOT NULL AND %[1]s <> '' ORDER BY %[1]s ASC",
			column, datasetsTable)

		values := []string{}
		if err := db.conn.SelectContext(ctx, &values, sql); err != nil {
			return nil, err
		}
		return values, nil
	})
}

// CountDatasets returns the number of rows in the store.
func (db *DB) CountDatasets(ctx context.Context) (int64, error) {
	return run(ctx, db, "count_datasets", func(ctx context.Context) (int64, error) {
		sql, args := query.Select(datasetsTable, "COUNT(*)").Build()

		var n int64
		if err := db.conn.GetContext(ctx, &n, sql, args...); err != nil {
			return 0, err
		}
		return n, nil
	})
}

func roundTo2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}
