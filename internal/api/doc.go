// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

/*
Package api provides the HTTP/JSON layer of the dataset analytics service.

Every data endpoint is a read-only GET that runs exactly one aggregate query
against the dataset store and returns a bare JSON document: an object for
overview statistics, an array for everything else.

Routes:

  - GET /                                    static greeting
  - GET /api/stats/overview                  totals and average weekly views
  - GET /api/datasets/top-viewed?limit=      most viewed datasets
  - GET /api/datasets/top-downloaded?limit=  most downloaded datasets
  - GET /api/datasets/search?q=&category=&agency=&limit=
  - GET /api/analytics/by-agency             top agencies by total views
  - GET /api/analytics/by-category           every category by total views
  - GET /api/analytics/publication-timeline  datasets published per year
  - GET /api/analytics/engagement-metrics    counters of the most viewed datasets
  - GET /api/filters/categories              distinct categories
  - GET /api/filters/agencies                distinct agencies
  - GET /health, /health/live, /health/ready
  - GET /metrics, /swagger/*

Errors:

Client input errors return 400 with code VALIDATION_ERROR. Store failures,
including an open circuit breaker, return 500 with code DATABASE_ERROR. Both
use the body {"error":{"code":...,"message":...}}.

Caching:

When enabled, successful responses are cached as serialized bytes keyed by
route and parameters, so a repeated request returns an identical body until
the entry expires.
*/
package api
