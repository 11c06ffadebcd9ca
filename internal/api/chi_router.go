// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/nycdatasets/internal/config"
	"github.com/tomtom215/nycdatasets/internal/middleware"
	"github.com/tomtom215/nycdatasets/internal/models"
)

// compressionLevel is the gzip level used for JSON responses.
const compressionLevel = 5

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. cfg may be nil, in which case the default
// middleware configuration is used.
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	mc := DefaultChiMiddlewareConfig()
	if cfg != nil {
		mc = ChiMiddlewareConfigFrom(cfg.Security)
	}
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(mc),
	}
}

// chiMiddleware adapts func(http.HandlerFunc) http.HandlerFunc middleware
// to chi's r.Use().
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(chiMiddleware(middleware.AccessLog))
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // must be global to answer OPTIONS preflight
	r.Use(chimiddleware.Compress(compressionLevel, "application/json"))

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	r.Get("/", router.handler.Root)

	r.Route("/health", func(r chi.Router) {
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit("api"))
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Get("/stats/overview", router.handler.Overview)

		r.Route("/datasets", func(r chi.Router) {
			r.Get("/top-viewed", router.handler.TopViewed)
			r.Get("/top-downloaded", router.handler.TopDownloaded)
			r.Get("/search", router.handler.Search)
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/by-agency", router.handler.ByAgency)
			r.Get("/by-category", router.handler.ByCategory)
			r.Get("/publication-timeline", router.handler.PublicationTimeline)
			r.Get("/engagement-metrics", router.handler.EngagementMetrics)
		})

		r.Route("/filters", func(r chi.Router) {
			r.Get("/categories", router.handler.Categories)
			r.Get("/agencies", router.handler.Agencies)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}

func notFound(w http.ResponseWriter, r *http.Request) {
	respondAPIError(w, http.StatusNotFound, &models.APIError{
		Code:    codeNotFound,
		Message: "Route not found",
	})
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondAPIError(w, http.StatusMethodNotAllowed, &models.APIError{
		Code:    codeMethod,
		Message: "Method not allowed",
	})
}
