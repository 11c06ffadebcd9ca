// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

/*
Package cache provides the thread-safe TTL cache behind the analytics
endpoints.

The catalog is loaded in batches by the importer and is read-only while the
API runs, so every analytics answer can be reused until its TTL passes.
Entries hold the serialized JSON body of a response; a hit is written to the
client without touching the store or re-encoding.

Keys come from GenerateKey, which hashes the endpoint name and its request
parameters:

	key := cache.GenerateKey("top_viewed", map[string]int{"limit": 10})
	if body, ok := c.Get(key); ok {
	    w.Write(body)
	    return
	}

Expired entries are dropped lazily on Get and in bulk by the Janitor, a
supervised service that sweeps the map on an interval. Hits, misses and the
entry count are exported as Prometheus metrics.
*/
package cache
