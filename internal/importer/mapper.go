// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

package importer

import (
	"strings"

	"github.com/tomtom215/nycdatasets/internal/models"
)

var knownColumns = func() map[string]struct{} {
	m := make(map[string]struct{}, len(models.DatasetColumns))
	for _, col := range models.DatasetColumns {
		m[col] = struct{}{}
	}
	return m
}()

// Mapper converts CSV rows to DatasetRecords using a header captured once per
// file.
type Mapper struct {
	// index maps a table column to its position in the row.
	index map[string]int

	// ignored lists headers that matched no column, for logging.
	ignored []string
}

// NewMapper builds a mapper from the header row. When two headers normalize
// to the same column the first one wins.
func NewMapper(header []string) *Mapper {
	m := &Mapper{index: make(map[string]int, len(header))}
	for i, h := range header {
		col, ok := NormalizeHeader(h)
		if !ok {
			m.ignored = append(m.ignored, h)
			continue
		}
		if _, dup := m.index[col]; !dup {
			m.index[col] = i
		}
	}
	return m
}

// HasID reports whether the header contains an id column.
func (m *Mapper) HasID() bool {
	_, ok := m.index["id"]
	return ok
}

// Ignored returns the headers that matched no table column.
func (m *Mapper) Ignored() []string {
	return m.ignored
}

// ToRecord converts one row. The second result is false when the row has no
// id, in which case the row must be skipped.
func (m *Mapper) ToRecord(row []string) (models.DatasetRecord, bool) {
	rec := models.DatasetRecord{
		ID: strings.TrimSpace(m.field(row, "id")),
	}
	if rec.ID == "" {
		return rec, false
	}

	rec.Name = parseText(m.field(row, "name"))
	rec.Description = parseText(m.field(row, "description"))
	rec.Attribution = parseText(m.field(row, "attribution"))
	rec.Type = parseText(m.field(row, "type"))
	rec.DataUpdatedAt = ParseTimestamp(m.field(row, "data_updated_at"))
	rec.PageViewsLastWeek = ParseInt(m.field(row, "page_views_last_week"))
	rec.PageViewsLastMonth = ParseInt(m.field(row, "page_views_last_month"))
	rec.PageViewsTotal = ParseInt(m.field(row, "page_views_total"))
	rec.DownloadCount = ParseInt(m.field(row, "download_count"))
	rec.PublicationDate = ParseTimestamp(m.field(row, "publication_date"))
	rec.DomainCategory = parseText(m.field(row, "domain_category"))
	rec.DomainTags = parseText(m.field(row, "domain_tags"))
	rec.Agency = parseText(m.field(row, "dataset_information_agency"))
	rec.Link = parseText(m.field(row, "link"))

	return rec, true
}

// field returns the cell for column, or "" when the column or cell is absent.
func (m *Mapper) field(row []string, column string) string {
	i, ok := m.index[column]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}
