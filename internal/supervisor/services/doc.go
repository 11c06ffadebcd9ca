// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

/*
Package services provides suture.Service wrappers for the server's
long-running components.

Each wrapper implements suture.Service and fmt.Stringer:

	type Service interface {
	    Serve(ctx context.Context) error
	}

HTTPServerService turns http.Server's blocking ListenAndServe into a
context-aware Serve with graceful shutdown.

StoreMonitor pings the dataset store on an interval, records the
nycdatasets_store_up and nycdatasets_datasets_total gauges, and logs when the
store becomes reachable or unreachable.

Serve returns ctx.Err() on a requested shutdown and a wrapped error on
failure, which tells the supervisor to restart the service.
*/
package services
