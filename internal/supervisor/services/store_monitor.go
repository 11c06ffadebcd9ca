// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

package services

import (
	"context"
	"time"

	"github.com/tomtom215/nycdatasets/internal/logging"
	"github.com/tomtom215/nycdatasets/internal/metrics"
)

// DefaultMonitorInterval is how often the store is checked when no interval
// is given.
const DefaultMonitorInterval = time.Minute

// monitorCheckTimeout bounds a single ping-and-count round.
const monitorCheckTimeout = 10 * time.Second

// Store is what the monitor needs from the dataset store.
type Store interface {
	Ping(ctx context.Context) error
	CountDatasets(ctx context.Context) (int64, error)
	BreakerState() string
}

// StoreMonitor periodically checks the dataset store and publishes its
// reachability and row count as metrics. It logs only on transitions.
type StoreMonitor struct {
	store    Store
	interval time.Duration

	// lastUp is nil before the first check.
	lastUp *bool
}

// NewStoreMonitor creates a monitor for store. A non-positive interval uses
// DefaultMonitorInterval.
func NewStoreMonitor(store Store, interval time.Duration) *StoreMonitor {
	if interval <= 0 {
		interval = DefaultMonitorInterval
	}
	return &StoreMonitor{store: store, interval: interval}
}

// Serve implements suture.Service. The first check runs immediately.
func (m *StoreMonitor) Serve(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		m.Check(ctx)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Check runs one health round and reports whether the store answered.
func (m *StoreMonitor) Check(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, monitorCheckTimeout)
	defer cancel()

	var datasets int64
	err := m.store.Ping(ctx)
	if err == nil {
		datasets, err = m.store.CountDatasets(ctx)
	}
	up := err == nil

	metrics.RecordStoreHealth(up, datasets)

	if m.lastUp == nil || *m.lastUp != up {
		if up {
			logging.Info().Int64("datasets", datasets).Msg("Dataset store reachable")
		} else {
			logging.Error().Err(err).
				Str("circuit_breaker", m.store.BreakerState()).
				Msg("Dataset store unreachable")
		}
	}
	m.lastUp = &up
	return up
}

// String implements fmt.Stringer for suture logging.
func (m *StoreMonitor) String() string {
	return "store-monitor"
}
