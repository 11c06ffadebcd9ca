// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

package database

import "fmt"

// Null policy for the nullable counter and dimension columns.
//
// A missing counter adds 0 to a sum. An average is taken over present values
// only and is 0 for an empty set. A row whose grouping value is NULL belongs
// to no group. Every aggregate in this package is built from these templates.
//
// Sums are cast to BIGINT because DuckDB widens SUM(BIGINT) to HUGEINT and
// PostgreSQL to NUMERIC, neither of which scans into int64 on both drivers.
const (
	SumNullAsZero  = "CAST(COALESCE(SUM(%s), 0) AS BIGINT)"
	AvgSkipsNull   = "CAST(COALESCE(AVG(%s), 0) AS FLOAT8)"
	GroupSkipsNull = "%s IS NOT NULL"
)

func sumOf(column string) string {
	return fmt.Sprintf(SumNullAsZero, column)
}

func avgOf(column string) string {
	return fmt.Sprintf(AvgSkipsNull, column)
}

func notNull(column string) string {
	return fmt.Sprintf(GroupSkipsNull, column)
}
