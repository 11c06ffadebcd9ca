// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

package api

import (
	"context"
	"net/http"

	"github.com/tomtom215/nycdatasets/internal/models"
)

// greeting is the static body of GET /.
var greeting = models.Greeting{Message: "NYC Datasets Dashboard API"}

// Root returns a static greeting
//
// @Summary API greeting
// @Description Returns a static greeting identifying the service
// @Tags Core
// @Produce json
// @Success 200 {object} models.Greeting
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, greeting)
}

// Overview returns catalog-wide totals
//
// @Summary Catalog overview statistics
// @Description Dataset count, summed page views and downloads (missing counters count as 0), and the average weekly views over datasets that report them, rounded to 2 decimals
// @Tags Stats
// @Produce json
// @Success 200 {object} models.OverviewStats
// @Failure 500 {object} models.ErrorResponse "Database error"
// @Router /api/stats/overview [get]
func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	NewAnalyticsQueryExecutor(h).Execute(w, r, "Overview", nil,
		func(ctx context.Context) (interface{}, error) {
			return h.db.GetOverviewStats(ctx)
		})
}
