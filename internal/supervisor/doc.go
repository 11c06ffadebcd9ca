// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

/*
Package supervisor runs the long-lived services of the API server under a
suture v4 supervisor tree.

# Overview

Services are grouped into two layers so that a failing background task never
takes the HTTP listener down with it:

	RootSupervisor ("nycdatasets")
	├── DataSupervisor ("data-layer")
	│   ├── StoreMonitor (periodic ping, store health metrics)
	│   └── cache.Janitor (if the response cache is enabled)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A crashed service is restarted with suture's backoff. Supervisor events are
logged through sutureslog into the zerolog-backed slog adapter.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewStoreMonitor(db, time.Minute))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}
*/
package supervisor
