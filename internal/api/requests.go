// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

package api

import (
	"net/http"

	"github.com/tomtom215/nycdatasets/internal/models"
)

// TopRequest is the validated query of the top-N endpoints. It doubles as
// the cache key parameters.
type TopRequest struct {
	Limit int `query:"limit" json:"limit"`
}

// SearchRequest is the validated query of /api/datasets/search.
type SearchRequest struct {
	Query    string `query:"q" json:"q" validate:"max=256"`
	Category string `query:"category" json:"category" validate:"max=256"`
	Agency   string `query:"agency" json:"agency" validate:"max=256"`
	Limit    int    `query:"limit" json:"limit"`
}

// Filter returns the store filter for the request.
func (s SearchRequest) Filter() models.SearchFilter {
	return models.SearchFilter{
		Query:    s.Query,
		Category: s.Category,
		Agency:   s.Agency,
	}
}

// parseSearchRequest reads and validates the search query. Text parameters
// are used verbatim: an empty value disables that filter.
func parseSearchRequest(r *http.Request, defaultLimit, maxLimit int) (SearchRequest, *models.APIError) {
	limit, apiErr := parseLimit(r, defaultLimit, maxLimit)
	if apiErr != nil {
		return SearchRequest{}, apiErr
	}

	q := r.URL.Query()
	req := SearchRequest{
		Query:    q.Get("q"),
		Category: q.Get("category"),
		Agency:   q.Get("agency"),
		Limit:    limit,
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		return SearchRequest{}, apiErr
	}
	return req, nil
}
