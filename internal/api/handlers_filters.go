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

// Categories lists the distinct dataset categories
//
// @Summary Category filter values
// @Description Every distinct non-empty category, ascending
// @Tags Filters
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} models.ErrorResponse "Database error"
// @Router /api/filters/categories [get]
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	h.distinct(w, r, "Categories", database.DimensionCategory)
}

// Agencies lists the distinct publishing agencies
//
// @Summary Agency filter values
// @Description Every distinct non-empty agency, ascending
// @Tags Filters
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} models.ErrorResponse "Database error"
// @Router /api/filters/agencies [get]
func (h *Handler) Agencies(w http.ResponseWriter, r *http.Request) {
	h.distinct(w, r, "Agencies", database.DimensionAgency)
}

func (h *Handler) distinct(w http.ResponseWriter, r *http.Request, name string, dim database.Dimension) {
	NewAnalyticsQueryExecutor(h).Execute(w, r, name, nil,
		func(ctx context.Context) (interface{}, error) {
			return h.db.GetDistinctValues(ctx, dim)
		})
}
