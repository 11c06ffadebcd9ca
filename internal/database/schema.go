// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

package database

import (
	"context"
	"fmt"
)

// createTableSQL declares nyc_datasets with types both DuckDB and PostgreSQL
// accept. Only id is required; every other column may be NULL.
const createTableSQL = `
CREATE TABLE IF NOT EXISTS nyc_datasets (
	id TEXT PRIMARY KEY,
	name TEXT,
	description TEXT,
	attribution TEXT,
	type TEXT,
	data_updated_at TIMESTAMP,
	page_views_last_week BIGINT,
	page_views_last_month BIGINT,
	page_views_total BIGINT,
	download_count BIGINT,
	publication_date TIMESTAMP,
	domain_category TEXT,
	domain_tags TEXT,
	dataset_information_agency TEXT,
	link TEXT
)`

// indexDefinitions back the grouping and ordering columns.
var indexDefinitions = []struct {
	name   string
	column string
}{
	{"idx_nyc_datasets_category", "domain_category"},
	{"idx_nyc_datasets_agency", "dataset_information_agency"},
	{"idx_nyc_datasets_page_views", "page_views_total"},
	{"idx_nyc_datasets_downloads", "download_count"},
}

// SchemaStatements returns the DDL the store runs at startup, in order.
func SchemaStatements(withIndexes bool) []string {
	stmts := []string{createTableSQL}
	if withIndexes {
		for _, idx := range indexDefinitions {
			stmts = append(stmts, fmt.Sprintf(
				"CREATE INDEX IF NOT EXISTS %s ON %s (%s)", idx.name, datasetsTable, idx.column))
		}
	}
	return stmts
}

func (db *DB) createTables(ctx context.Context) error {
	if _, err := db.conn.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("create %s: %w", datasetsTable, err)
	}
	return nil
}

func (db *DB) createIndexes(ctx context.Context) error {
	for _, stmt := range SchemaStatements(true)[1:] {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%s: %w", stmt, err)
		}
	}
	return nil
}
