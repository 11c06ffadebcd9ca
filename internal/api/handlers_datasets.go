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

// TopViewed returns the most viewed datasets
//
// @Summary Most viewed datasets
// @Description Datasets ordered by total page views, highest first. Datasets without a view count come last.
// @Tags Datasets
// @Produce json
// @Param limit query int false "Maximum rows (default 10)" minimum(0)
// @Success 200 {array} models.DatasetSummary
// @Failure 400 {object} models.ErrorResponse "Invalid limit"
// @Failure 500 {object} models.ErrorResponse "Database error"
// @Router /api/datasets/top-viewed [get]
func (h *Handler) TopViewed(w http.ResponseWriter, r *http.Request) {
	h.top(w, r, "TopViewed", database.SortByPageViews)
}

// TopDownloaded returns the most downloaded datasets
//
// @Summary Most downloaded datasets
// @Description Datasets ordered by download count, highest first. Datasets without a download count come last.
// @Tags Datasets
// @Produce json
// @Param limit query int false "Maximum rows (default 10)" minimum(0)
// @Success 200 {array} models.DatasetSummary
// @Failure 400 {object} models.ErrorResponse "Invalid limit"
// @Failure 500 {object} models.ErrorResponse "Database error"
// @Router /api/datasets/top-downloaded [get]
func (h *Handler) TopDownloaded(w http.ResponseWriter, r *http.Request) {
	h.top(w, r, "TopDownloaded", database.SortByDownloads)
}

func (h *Handler) top(w http.ResponseWriter, r *http.Request, name string, sortBy database.SortColumn) {
	limits := h.analytics()
	limit, apiErr := parseLimit(r, limits.TopLimit, limits.MaxLimit)
	if apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	req := TopRequest{Limit: limit}
	NewAnalyticsQueryExecutor(h).Execute(w, r, name, req,
		func(ctx context.Context) (interface{}, error) {
			return h.db.GetTopDatasets(ctx, sortBy, req.Limit)
		})
}

// Search finds datasets by name, category and agency
//
// @Summary Search datasets
// @Description Datasets matching every non-empty filter, ordered by total page views. q is a case-insensitive substring of the name; category and agency match exactly. Descriptions longer than 200 characters are truncated with "...".
// @Tags Datasets
// @Produce json
// @Param q query string false "Substring of the dataset name" maxlength(256)
// @Param category query string false "Exact category" maxlength(256)
// @Param agency query string false "Exact agency" maxlength(256)
// @Param limit query int false "Maximum rows (default 50)" minimum(0)
// @Success 200 {array} models.SearchResult
// @Failure 400 {object} models.ErrorResponse "Invalid parameter"
// @Failure 500 {object} models.ErrorResponse "Database error"
// @Router /api/datasets/search [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	limits := h.analytics()
	req, apiErr := parseSearchRequest(r, limits.SearchLimit, limits.MaxLimit)
	if apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	NewAnalyticsQueryExecutor(h).Execute(w, r, "Search", req,
		func(ctx context.Context) (interface{}, error) {
			records, err := h.db.SearchDatasets(ctx, req.Filter(), req.Limit)
			if err != nil {
				return nil, err
			}
			return toSearchResults(records, limits.DescriptionMaxChars), nil
		})
}
