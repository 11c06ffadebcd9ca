// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

package query

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// SelectBuilder assembles one SELECT over a single table.
//
//	sql, args := query.Select("nyc_datasets", "id", "name").
//	    Where(wb).
//	    OrderBy("page_views_total DESC NULLS LAST", "id ASC").
//	    Limit(10).
//	    Build()
type SelectBuilder struct {
	table   string
	columns []string
	where   *WhereBuilder
	groupBy []string
	orderBy []string
	limit   int
}

// Select starts a SELECT of columns from table.
func Select(table string, columns ...string) *SelectBuilder {
	return &SelectBuilder{
		table:   table,
		columns: columns,
		where:   NewWhereBuilder(),
		limit:   -1,
	}
}

// Where replaces the WHERE conditions.
func (b *SelectBuilder) Where(wb *WhereBuilder) *SelectBuilder {
	if wb != nil {
		b.where = wb
	}
	return b
}

// GroupBy sets the GROUP BY expressions.
func (b *SelectBuilder) GroupBy(exprs ...string) *SelectBuilder {
	b.groupBy = exprs
	return b
}

// OrderBy sets the ORDER BY terms, most significant first.
func (b *SelectBuilder) OrderBy(terms ...string) *SelectBuilder {
	b.orderBy = terms
	return b
}

// Limit caps the number of rows. A negative n means no LIMIT; zero is a
// valid LIMIT 0.
func (b *SelectBuilder) Limit(n int) *SelectBuilder {
	b.limit = n
	return b
}

// Build returns the SQL with "$n" placeholders and the bound arguments in order.
func (b *SelectBuilder) Build() (string, []interface{}) {
	var sb strings.Builder
	args := make([]interface{}, 0, len(b.where.args))

	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(b.columns, ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(b.table)

	if !b.where.IsEmpty() {
		clause, whereArgs := b.where.Build()
		sb.WriteString(" WHERE ")
		sb.WriteString(clause)
		args = append(args, whereArgs...)
	}
	if len(b.groupBy) > 0 {
		sb.WriteString(" GROUP BY ")
		sb.WriteString(strings.Join(b.groupBy, ", "))
	}
	if len(b.orderBy) > 0 {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(b.orderBy, ", "))
	}
	if b.limit >= 0 {
		fmt.Fprintf(&sb, " LIMIT %d", b.limit)
	}

	return sqlx.Rebind(sqlx.DOLLAR, sb.String()), args
}
