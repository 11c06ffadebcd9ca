// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

package api

import (
	"time"

	"github.com/tomtom215/nycdatasets/internal/cache"
	"github.com/tomtom215/nycdatasets/internal/config"
	"github.com/tomtom215/nycdatasets/internal/database"
)

// Version is reported by /health. Overridden at build time with
// -ldflags "-X github.com/tomtom215/nycdatasets/internal/api.Version=...".
var Version = "dev"

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers_core.go: greeting and overview statistics
//   - handlers_datasets.go: top lists and search
//   - handlers_analytics.go: grouped and per-year aggregates
//   - handlers_filters.go: distinct filter values
//   - handlers_health.go: health, liveness and readiness endpoints
type Handler struct {
	db        *database.DB
	config    *config.Config
	cache     *cache.Cache
	startTime time.Time
}

// NewHandler creates a handler. respCache may be nil, in which case every
// request goes to the store.
//
// Example:
//
//	handler := api.NewHandler(db, cfg, cache.New(cfg.Cache.TTL))
//	router := api.NewRouter(handler, cfg)
//	http.ListenAndServe(cfg.Server.Addr(), router.SetupChi())
func NewHandler(db *database.DB, cfg *config.Config, respCache *cache.Cache) *Handler {
	return &Handler{
		db:        db,
		config:    cfg,
		cache:     respCache,
		startTime: time.Now(),
	}
}

// analytics returns the configured limits, falling back to the built-in
// defaults when the handler was created without a config.
func (h *Handler) analytics() config.AnalyticsConfig {
	if h.config == nil {
		return config.DefaultAnalyticsConfig()
	}
	return h.config.Analytics
}
