// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

package query

import (
	"strings"
)

// WhereBuilder collects AND-joined WHERE conditions with their arguments.
//
//	wb := query.NewWhereBuilder()
//	wb.AddNotNull("domain_category")
//	wb.AddEquals("dataset_information_agency", agency)
//	where, args := wb.Build()
//	// domain_category IS NOT NULL AND dataset_information_agency = ?
type WhereBuilder struct {
	clauses []string
	args    []interface{}
}

// NewWhereBuilder creates a new WhereBuilder instance.
func NewWhereBuilder() *WhereBuilder {
	return &WhereBuilder{
		clauses: []string{},
		args:    []interface{}{},
	}
}

// AddClause adds a raw condition using "?" placeholders.
func (wb *WhereBuilder) AddClause(clause string, args ...interface{}) *WhereBuilder {
	wb.clauses = append(wb.clauses, clause)
	wb.args = append(wb.args, args...)
	return wb
}

// AddEquals adds "column = ?" unless value is empty.
func (wb *WhereBuilder) AddEquals(column, value string) *WhereBuilder {
	if value == "" {
		return wb
	}
	return wb.AddClause(column+" = ?", value)
}

// AddContainsFold adds a case-insensitive substring match unless needle is
// empty. LIKE wildcards in needle match literally.
func (wb *WhereBuilder) AddContainsFold(column, needle string) *WhereBuilder {
	if needle == "" {
		return wb
	}
	return wb.AddClause(column+` ILIKE ? ESCAPE '\'`, "%"+EscapeLike(needle)+"%")
}

// AddNotNull adds "column IS NOT NULL".
func (wb *WhereBuilder) AddNotNull(column string) *WhereBuilder {
	return wb.AddClause(column + " IS NOT NULL")
}

// Build joins the clauses with AND. Returns ("1=1", []) when empty.
func (wb *WhereBuilder) Build() (string, []interface{}) {
	if len(wb.clauses) == 0 {
		return "1=1", []interface{}{}
	}
	return strings.Join(wb.clauses, " AND "), wb.args
}

// Count returns the number of clauses added to the builder.
func (wb *WhereBuilder) Count() int {
	return len(wb.clauses)
}

// IsEmpty returns true if no clauses have been added.
func (wb *WhereBuilder) IsEmpty() bool {
	return len(wb.clauses) == 0
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE metacharacters with a backslash.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}
