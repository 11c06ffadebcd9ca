// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

package api

import (
	"context"
	"net/http"

	"github.com/tomtom215/nycdatasets/internal/database"
)

// ByAgency handles GET /api/analytics/by-agency
//
// @Summary Datasets grouped by agency
// @Description Dataset count, total views and total downloads per agency, ordered by total views. Only the top 15 agencies are returned; datasets without an agency are excluded.
// @Tags Analytics
// @Produce json
// @Success 200 {array} models.AgencyStats
// @Failure 500 {object} models.ErrorResponse "Database error"
// @Router /api/analytics/by-agency [get]
func (h *Handler) ByAgency(w http.ResponseWriter, r *http.Request) {
	limit := h.analytics().AgencyLimit
	NewAnalyticsQueryExecutor(h).Execute(w, r, "ByAgency", limit,
		func(ctx context.Context) (interface{}, error) {
			groups, err := h.db.GetGroupStats(ctx, database.DimensionAgency, limit)
			if err != nil {
				return nil, err
			}
			return toAgencyStats(groups), nil
		})
}

// ByCategory handles GET /api/analytics/by-category
//
// @Summary Datasets grouped by category
// @Description Dataset count, total views and total downloads for every category, ordered by total views. Datasets without a category are excluded.
// @Tags Analytics
// @Produce json
// @Success 200 {array} models.CategoryStats
// @Failure 500 {object} models.ErrorResponse "Database error"
// @Router /api/analytics/by-category [get]
func (h *Handler) ByCategory(w http.ResponseWriter, r *http.Request) {
	NewAnalyticsQueryExecutor(h).Execute(w, r, "ByCategory", nil,
		func(ctx context.Context) (interface{}, error) {
			groups, err := h.db.GetGroupStats(ctx, database.DimensionCategory, database.Unlimited)
			if err != nil {
				return nil, err
			}
			return toCategoryStats(groups), nil
		})
}

// PublicationTimeline handles GET /api/analytics/publication-timeline
//
// @Summary Datasets published per year
// @Description Number of datasets per publication year, ascending. Years before 2000 and datasets without a publication date are excluded.
// @Tags Analytics
// @Produce json
// @Success 200 {array} models.TimelinePoint
// @Failure 500 {object} models.ErrorResponse "Database error"
// @Router /api/analytics/publication-timeline [get]
func (h *Handler) PublicationTimeline(w http.ResponseWriter, r *http.Request) {
	minYear := h.analytics().TimelineMinYear
	NewAnalyticsQueryExecutor(h).Execute(w, r, "PublicationTimeline", minYear,
		func(ctx context.Context) (interface{}, error) {
			return h.db.GetPublicationTimeline(ctx, minYear)
		})
}

// EngagementMetrics handles GET /api/analytics/engagement-metrics
//
// @Summary Engagement counters of the most viewed datasets
// @Description Weekly, monthly and total views plus downloads for the 20 most viewed datasets with at least one view. Missing counters are reported as 0 and names longer than 50 characters are truncated with "...".
// @Tags Analytics
// @Produce json
// @Success 200 {array} models.EngagementMetric
// @Failure 500 {object} models.ErrorResponse "Database error"
// @Router /api/analytics/engagement-metrics [get]
func (h *Handler) EngagementMetrics(w http.ResponseWriter, r *http.Request) {
	limits := h.analytics()
	NewAnalyticsQueryExecutor(h).Execute(w, r, "EngagementMetrics", limits.EngagementLimit,
		func(ctx context.Context) (interface{}, error) {
			records, err := h.db.GetEngagementMetrics(ctx, limits.EngagementLimit)
			if err != nil {
				return nil, err
			}
			return toEngagementMetrics(records, limits.NameMaxChars), nil
		})
}
