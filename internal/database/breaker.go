// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/tomtom215/nycdatasets/internal/config"
	"github.com/tomtom215/nycdatasets/internal/logging"
	"github.com/tomtom215/nycdatasets/internal/metrics"
)

const breakerName = "dataset-store"

// EnableCircuitBreaker puts every subsequent store query behind a circuit
// breaker. Call it once, before serving traffic.
func (db *DB) EnableCircuitBreaker(cfg config.BreakerConfig) {
	if !cfg.Enabled {
		return
	}

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}

	db.breaker = gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: cfg.MaxRequests,
		Interval:    time.Minute,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},

		// A caller giving up is not a store failure.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("[CIRCUIT BREAKER] State transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})
}

// BreakerState reports the breaker state, or "disabled".
func (db *DB) BreakerState() string {
	if db.breaker == nil {
		return "disabled"
	}
	return db.breaker.State().String()
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

// run executes one store operation with the query timeout, the circuit
// breaker (when enabled) and the query metrics applied.
func run[T any](ctx context.Context, db *DB, operation string, fn func(ctx context.Context) (T, error)) (T, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()

	var (
		result T
		err    error
	)
	if db.breaker == nil {
		result, err = fn(ctx)
	} else {
		var v interface{}
		v, err = db.breaker.Execute(func() (interface{}, error) {
			return fn(ctx)
		})
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			err = ErrCircuitOpen
		} else if err == nil {
			result = v.(T) //nolint:forcetypeassert // fn always returns T
		}
	}

	metrics.RecordDBQuery(operation, time.Since(start), classifyError(err))
	if err != nil {
		return result, fmt.Errorf("%s: %w", operation, err)
	}
	return result, nil
}
