// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/nycdatasets/internal/cache"
	"github.com/tomtom215/nycdatasets/internal/database"
	"github.com/tomtom215/nycdatasets/internal/logging"
)

// QueryFunc runs one store query and returns a JSON-serializable result.
type QueryFunc func(ctx context.Context) (interface{}, error)

// AnalyticsQueryExecutor is the cache-first flow shared by every data
// endpoint:
//
//  1. Derive a cache key from the endpoint name and its validated parameters
//  2. Serve the cached body on a hit
//  3. Run the query on a miss and serialize the result
//  4. Cache the serialized body and respond with it
//
// Caching the bytes rather than the result keeps repeated responses
// byte-identical.
//
// Example:
//
//	NewAnalyticsQueryExecutor(h).Execute(w, r, "Overview", nil,
//	    func(ctx context.Context) (interface{}, error) {
//	        return h.db.GetOverviewStats(ctx)
//	    })
type AnalyticsQueryExecutor struct {
	handler *Handler
}

// NewAnalyticsQueryExecutor creates an executor bound to h's store and cache.
func NewAnalyticsQueryExecutor(h *Handler) *AnalyticsQueryExecutor {
	return &AnalyticsQueryExecutor{handler: h}
}

// Execute serves name(params) from the cache or runs queryFunc.
func (e *AnalyticsQueryExecutor) Execute(
	w http.ResponseWriter,
	r *http.Request,
	name string,
	params interface{},
	queryFunc QueryFunc,
) {
	if e.handler.db == nil {
		respondError(w, r, http.StatusInternalServerError, codeDatabase, "Database not available", nil)
		return
	}

	respCache := e.handler.cache
	cacheKey := cache.GenerateKey(name, params)

	if respCache != nil {
		if body, found := respCache.Get(cacheKey); found {
			writeJSON(w, http.StatusOK, body)
			return
		}
	}

	start := time.Now()
	result, err := queryFunc(r.Context())
	if err != nil {
		respondQueryError(w, r, name, err)
		return
	}

	body, err := json.Marshal(result)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, codeInternalError, "Failed to encode response", err)
		return
	}

	if respCache != nil {
		respCache.Set(cacheKey, body)
	}

	logging.Ctx(r.Context()).Debug().
		Str("query", name).
		Dur("duration", time.Since(start)).
		Int("bytes", len(body)).
		Msg("Query executed")

	writeJSON(w, http.StatusOK, body)
}

// respondQueryError maps a store failure to a response. Every failure,
// including an open circuit, is a generic 500; only the log distinguishes
// them.
func respondQueryError(w http.ResponseWriter, r *http.Request, name string, err error) {
	message := "Failed to execute query: " + name
	if errors.Is(err, database.ErrCircuitOpen) {
		message = "Database temporarily unavailable"
	}
	respondError(w, r, http.StatusInternalServerError, codeDatabase, message, err)
}
