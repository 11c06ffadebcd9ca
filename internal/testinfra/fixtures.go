// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

package testinfra

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/nycdatasets/internal/config"
	"github.com/tomtom215/nycdatasets/internal/database"
	"github.com/tomtom215/nycdatasets/internal/models"
)

// duckDBSemaphore serializes in-memory DuckDB stores created through this
// package. It is held for the whole test, since concurrent CGO calls from
// several in-memory databases can hang under CI resource pressure.
var duckDBSemaphore = make(chan struct{}, 1)

// LongName and LongDescription exceed the truncation lengths of the
// engagement and search endpoints.
var (
	LongName        = "Zeta " + strings.Repeat("z", 55)
	LongDescription = strings.Repeat("d", 250)
)

// SampleDatasets is a small catalog covering every null case:
//
//	id  views  downloads  weekly  agency  category        published
//	a1  100    10         5       Parks   Recreation      2015-03-01
//	a2  300    5          15      MTA     Transportation  2019-06-15 12:30
//	a3  NULL   50         NULL    Parks   Recreation      1998-01-01
//	a4  0      NULL       11      NULL    Health          NULL
//	a5  300    1          NULL    DOHMH   NULL            2019-01-01
//	a6  50     2          3       Parks   Recreation      2021-07-04 10:20:30.123456
//
// a6 carries LongName and LongDescription.
func SampleDatasets() []models.DatasetRecord {
	return []models.DatasetRecord{
		{
			ID:                 "a1",
			Name:               str("Alpha Parks"),
			Description:        str("Park inventory"),
			PageViewsLastWeek:  i64(5),
			PageViewsLastMonth: i64(20),
			PageViewsTotal:     i64(100),
			DownloadCount:      i64(10),
			PublicationDate:    ts(time.Date(2015, time.March, 1, 0, 0, 0, 0, time.UTC)),
			DomainCategory:     str("Recreation"),
			Agency:             str("Parks"),
			Link:               str("https://data.cityofnewyork.us/d/a1"),
		},
		{
			ID:                 "a2",
			Name:               str("Beta Transit 100%"),
			Description:        str("Subway ridership"),
			PageViewsLastWeek:  i64(15),
			PageViewsLastMonth: i64(60),
			PageViewsTotal:     i64(300),
			DownloadCount:      i64(5),
			PublicationDate:    ts(time.Date(2019, time.June, 15, 12, 30, 0, 0, time.UTC)),
			DomainCategory:     str("Transportation"),
			Agency:             str("MTA"),
		},
		{
			ID:              "a3",
			Name:            str("Gamma"),
			DownloadCount:   i64(50),
			PublicationDate: ts(time.Date(1998, time.January, 1, 0, 0, 0, 0, time.UTC)),
			DomainCategory:  str("Recreation"),
			Agency:          str("Parks"),
		},
		{
			ID:                "a4",
			Name:              str("Delta_Health"),
			PageViewsLastWeek: i64(11),
			PageViewsTotal:    i64(0),
			DomainCategory:    str("Health"),
		},
		{
			ID:              "a5",
			Name:            str("Epsilon"),
			PageViewsTotal:  i64(300),
			DownloadCount:   i64(1),
			PublicationDate: ts(time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC)),
			Agency:          str("DOHMH"),
		},
		{
			ID:                 "a6",
			Name:               str(LongName),
			Description:        str(LongDescription),
			PageViewsLastWeek:  i64(3),
			PageViewsLastMonth: i64(9),
			PageViewsTotal:     i64(50),
			DownloadCount:      i64(2),
			PublicationDate:    ts(time.Date(2021, time.July, 4, 10, 20, 30, 123456000, time.UTC)),
			DomainCategory:     str("Recreation"),
			Agency:             str("Parks"),
		},
	}
}

// NewMemoryStore opens an in-memory DuckDB store without secondary indexes
// and closes it when the test ends.
func NewMemoryStore(t *testing.T) *database.DB {
	t.Helper()

	duckDBSemaphore <- struct{}{}
	t.Cleanup(func() {
		<-duckDBSemaphore
	})

	db, err := database.New(&config.DatabaseConfig{
		Driver:      config.DriverDuckDB,
		Path:        ":memory:",
		MaxMemory:   "512MB",
		Threads:     2,
		SkipIndexes: true,
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Failed to close test database: %v", err)
		}
	})
	return db
}

// NewSeededStore returns NewMemoryStore loaded with SampleDatasets.
func NewSeededStore(t *testing.T) *database.DB {
	t.Helper()

	db := NewMemoryStore(t)
	Seed(t, db)
	return db
}

// Seed upserts SampleDatasets into db.
func Seed(t *testing.T, db *database.DB) {
	t.Helper()

	records := SampleDatasets()
	n, err := db.UpsertDatasets(context.Background(), records)
	if err != nil {
		t.Fatalf("Failed to seed datasets: %v", err)
	}
	if n != len(records) {
		t.Fatalf("Seeded %d datasets, want %d", n, len(records))
	}
}

func str(s string) *string { return &s }

func i64(n int64) *int64 { return &n }

func ts(t time.Time) *time.Time { return &t }
