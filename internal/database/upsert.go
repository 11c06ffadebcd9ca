// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/tomtom215/nycdatasets/internal/models"
)

// upsertSQL inserts one dataset or overwrites every column of the existing
// row with the same id.
var upsertSQL = buildUpsertSQL()

func buildUpsertSQL() string {
	placeholders := make([]string, len(models.DatasetColumns))
	updates := make([]string, 0, len(models.DatasetColumns)-1)
	for i, col := range models.DatasetColumns {
		placeholders[i] = "?"
		if col != "id" {
			updates = append(updates, fmt.Sprintf("%s = excluded.%s", col, col))
		}
	}

	sql := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (id) DO UPDATE SET %s",
		datasetsTable,
		strings.Join(models.DatasetColumns, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(updates, ", "),
	)
	return sqlx.Rebind(sqlx.DOLLAR, sql)
}

// UpsertDatasets writes records in a single transaction and returns how many
// were written. This is the load path used by the importer; the API never
// writes.
func (db *DB) UpsertDatasets(ctx context.Context, records []models.DatasetRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	return run(ctx, db, "upsert_datasets", func(ctx context.Context) (int, error) {
		tx, err := db.conn.BeginTxx(ctx, nil)
		if err != nil {
			return 0, fmt.Errorf("begin transaction: %w", err)
		}

		stmt, err := tx.PreparexContext(ctx, upsertSQL)
		if err != nil {
			_ = tx.Rollback() //nolint:errcheck // returning the prepare error
			return 0, fmt.Errorf("prepare upsert: %w", err)
		}
		defer closeWithLog(stmt, "upsert statement")

		for i := range records {
			if _, err := stmt.ExecContext(ctx, records[i].Args()...); err != nil {
				_ = tx.Rollback() //nolint:errcheck // returning the exec error
				return 0, fmt.Errorf("upsert dataset %s: %w", records[i].ID, err)
			}
		}

		if err := tx.Commit(); err != nil {
			return 0, fmt.Errorf("commit: %w", err)
		}
		return len(records), nil
	})
}
