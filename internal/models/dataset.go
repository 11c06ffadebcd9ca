// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

package models

import "time"

// DatasetRecord is one row of the nyc_datasets table: a published open-data
// catalog entry with its engagement counters.
//
// Every column except ID is nullable and mapped to a pointer so that a
// missing value stays distinguishable from zero. Counters are non-negative
// when present.
type DatasetRecord struct {
	ID                 string     `db:"id" json:"id"`
	Name               *string    `db:"name" json:"name"`
	Description        *string    `db:"description" json:"description"`
	Attribution        *string    `db:"attribution" json:"attribution"`
	Type               *string    `db:"type" json:"type"`
	DataUpdatedAt      *time.Time `db:"data_updated_at" json:"data_updated_at"`
	PageViewsLastWeek  *int64     `db:"page_views_last_week" json:"page_views_last_week"`
	PageViewsLastMonth *int64     `db:"page_views_last_month" json:"page_views_last_month"`
	PageViewsTotal     *int64     `db:"page_views_total" json:"page_views_total"`
	DownloadCount      *int64     `db:"download_count" json:"download_count"`
	PublicationDate    *time.Time `db:"publication_date" json:"publication_date"`
	DomainCategory     *string    `db:"domain_category" json:"domain_category"`
	DomainTags         *string    `db:"domain_tags" json:"domain_tags"`
	Agency             *string    `db:"dataset_information_agency" json:"dataset_information_agency"`
	Link               *string    `db:"link" json:"link"`
}

// DatasetColumns lists the table columns in declaration order.
var DatasetColumns = []string{
	"id",
	"name",
	"description",
	"attribution",
	"type",
	"data_updated_at",
	"page_views_last_week",
	"page_views_last_month",
	"page_views_total",
	"download_count",
	"publication_date",
	"domain_category",
	"domain_tags",
	"dataset_information_agency",
	"link",
}

// Args returns the record's values in DatasetColumns order, for inserts.
// Nil pointers become untyped nil so every driver binds them as NULL.
func (d *DatasetRecord) Args() []interface{} {
	return []interface{}{
		d.ID,
		nullable(d.Name),
		nullable(d.Description),
		nullable(d.Attribution),
		nullable(d.Type),
		nullable(d.DataUpdatedAt),
		nullable(d.PageViewsLastWeek),
		nullable(d.PageViewsLastMonth),
		nullable(d.PageViewsTotal),
		nullable(d.DownloadCount),
		nullable(d.PublicationDate),
		nullable(d.DomainCategory),
		nullable(d.DomainTags),
		nullable(d.Agency),
		nullable(d.Link),
	}
}

func nullable[T any](p *T) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
