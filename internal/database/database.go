// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

// Package database is the read-only dataset store behind the analytics API.
//
// The store owns a single table, nyc_datasets, and answers every analytics
// question with one aggregate or filtered query. Two backends are supported
// through database/sql: an embedded DuckDB file (the default) and a
// PostgreSQL server reached through pgx. All SQL in this package uses "$n"
// placeholders and types both engines accept, so the same query text runs
// against either.
//
// Store queries optionally run behind a circuit breaker; when it is open the
// operation fails fast with ErrCircuitOpen instead of queuing on a dead
// connection.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sony/gobreaker/v2"

	"github.com/tomtom215/nycdatasets/internal/config"
	"github.com/tomtom215/nycdatasets/internal/logging"
)

// datasetsTable is the only table the store reads.
const datasetsTable = "nyc_datasets"

// defaultQueryTimeout bounds a query whose context carries no deadline.
const defaultQueryTimeout = 30 * time.Second

// DB wraps the connection pool and the optional circuit breaker.
type DB struct {
	conn    *sqlx.DB
	cfg     *config.DatabaseConfig
	breaker *gobreaker.CircuitBreaker[interface{}]
}

// New opens the configured backend, applies pool settings and makes sure the
// table exists.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	if cfg == nil {
		return nil, fmt.Errorf("database config is nil")
	}

	conn, err := openConnection(cfg)
	if err != nil {
		return nil, err
	}

	db := &DB{
		conn: conn,
		cfg:  cfg,
	}

	if err := db.initialize(); err != nil {
		closeQuietly(conn)
		return nil, err
	}

	logging.Info().
		Str("driver", cfg.Driver).
		Bool("indexes", !cfg.SkipIndexes).
		Msg("Dataset store ready")

	return db, nil
}

// initialize creates the schema. It runs at startup, before any request.
func (db *DB) initialize() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultQueryTimeout)
	defer cancel()

	if err := db.createTables(ctx); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	if !db.cfg.SkipIndexes {
		if err := db.createIndexes(ctx); err != nil {
			return fmt.Errorf("failed to create indexes: %w", err)
		}
	}
	return db.Checkpoint(ctx)
}

// Conn returns the underlying pool. Tests use it to seed rows directly.
func (db *DB) Conn() *sqlx.DB {
	return db.conn
}

// Driver returns the active backend name (duckdb or postgres).
func (db *DB) Driver() string {
	return db.cfg.Driver
}

// Ping checks that the store answers.
func (db *DB) Ping(ctx context.Context) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	return db.conn.PingContext(ctx)
}

// Close flushes the DuckDB WAL and closes the pool.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.Checkpoint(ctx); err != nil {
		logging.Warn().Err(err).Msg("Checkpoint before close failed")
	}

	if err := db.conn.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
