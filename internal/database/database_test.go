// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

package database

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/nycdatasets/internal/config"
	"github.com/tomtom215/nycdatasets/internal/models"
)

// testDBSemaphore serializes DuckDB usage across tests in this package.
// The semaphore is held for the whole test, not just creation, because
// concurrent CGO calls from several in-memory databases can hang under CI
// resource pressure.
var testDBSemaphore = make(chan struct{}, 1)

// setupTestDB creates an empty in-memory store without secondary indexes.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() {
		<-testDBSemaphore
	})

	db, err := New(&config.DatabaseConfig{
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

// setupSeededDB creates a store holding testDatasets().
func setupSeededDB(t *testing.T) *DB {
	t.Helper()

	db := setupTestDB(t)
	n, err := db.UpsertDatasets(context.Background(), testDatasets())
	if err != nil {
		t.Fatalf("Failed to seed datasets: %v", err)
	}
	if n != len(testDatasets()) {
		t.Fatalf("Seeded %d datasets, want %d", n, len(testDatasets()))
	}
	return db
}

func strPtr(s string) *string { return &s }

func int64Ptr(n int64) *int64 { return &n }

func timePtr(year int, month time.Month, day, hour, minute int) *time.Time {
	ts := time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
	return &ts
}

// testDatasets is a small catalog exercising every null case:
//
//	id  views  downloads  weekly  agency  category        published
//	a1  100    10         5       Parks   Recreation      2015
//	a2  300    5          15      MTA     Transportation  2019
//	a3  NULL   50         NULL    Parks   Recreation      1998
//	a4  0      NULL       11      NULL    Health          NULL
//	a5  300    1          NULL    DOHMH   NULL            2019
func testDatasets() []models.DatasetRecord {
	return []models.DatasetRecord{
		{
			ID:                 "a1",
			Name:               strPtr("Alpha Parks"),
			Description:        strPtr("Park inventory"),
			PageViewsLastWeek:  int64Ptr(5),
			PageViewsLastMonth: int64Ptr(20),
			PageViewsTotal:     int64Ptr(100),
			DownloadCount:      int64Ptr(10),
			PublicationDate:    timePtr(2015, time.March, 1, 0, 0),
			DomainCategory:     strPtr("Recreation"),
			Agency:             strPtr("Parks"),
			Link:               strPtr("https://data.cityofnewyork.us/d/a1"),
		},
		{
			ID:                 "a2",
			Name:               strPtr("Beta Transit 100%"),
			Description:        strPtr("Subway ridership"),
			PageViewsLastWeek:  int64Ptr(15),
			PageViewsLastMonth: int64Ptr(60),
			PageViewsTotal:     int64Ptr(300),
			DownloadCount:      int64Ptr(5),
			PublicationDate:    timePtr(2019, time.June, 15, 12, 30),
			DomainCategory:     strPtr("Transportation"),
			Agency:             strPtr("MTA"),
		},
		{
			ID:              "a3",
			Name:            strPtr("Gamma"),
			DownloadCount:   int64Ptr(50),
			PublicationDate: timePtr(1998, time.January, 1, 0, 0),
			DomainCategory:  strPtr("Recreation"),
			Agency:          strPtr("Parks"),
		},
		{
			ID:                "a4",
			Name:              strPtr("Delta_Health"),
			PageViewsLastWeek: int64Ptr(11),
			PageViewsTotal:    int64Ptr(0),
			DomainCategory:    strPtr("Health"),
		},
		{
			ID:              "a5",
			Name:            strPtr("Epsilon"),
			PageViewsTotal:  int64Ptr(300),
			DownloadCount:   int64Ptr(1),
			PublicationDate: timePtr(2019, time.January, 1, 0, 0),
			Agency:          strPtr("DOHMH"),
		},
	}
}

func TestNew_NilConfig(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("Expected error for nil config")
	}
}

func TestNew_UnsupportedDriver(t *testing.T) {
	_, err := New(&config.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	if err == nil {
		t.Fatal("Expected error for unsupported driver")
	}
	if !strings.Contains(err.Error(), "sqlite") {
		t.Errorf("Error should name the driver, got %v", err)
	}
}

func TestNew_WithIndexes(t *testing.T) {
	testDBSemaphore <- struct{}{}
	defer func() { <-testDBSemaphore }()

	db, err := New(&config.DatabaseConfig{
		Driver:    config.DriverDuckDB,
		Path:      ":memory:",
		MaxMemory: "512MB",
	})
	checkNoError(t, err)
	defer db.Close()

	var indexes int
	err = db.Conn().Get(&indexes, "SELECT COUNT(*) FROM duckdb_indexes() WHERE table_name = 'nyc_datasets'")
	checkNoError(t, err)
	if indexes != len(indexDefinitions) {
		t.Errorf("Expected %d indexes, got %d", len(indexDefinitions), indexes)
	}
}

func TestSchemaStatements(t *testing.T) {
	if got := len(SchemaStatements(false)); got != 1 {
		t.Errorf("Expected 1 statement without indexes, got %d", got)
	}
	withIndexes := SchemaStatements(true)
	if len(withIndexes) != 1+len(indexDefinitions) {
		t.Fatalf("Expected %d statements, got %d", 1+len(indexDefinitions), len(withIndexes))
	}
	for _, stmt := range withIndexes[1:] {
		if !strings.HasPrefix(stmt, "CREATE INDEX IF NOT EXISTS") {
			t.Errorf("Unexpected index statement %q", stmt)
		}
	}
}

func TestDuckDBConnectionString(t *testing.T) {
	dsn := duckDBConnectionString(&config.DatabaseConfig{
		Path:      "/data/nyc.duckdb",
		Threads:   4,
		MaxMemory: "2GB",
	})

	for _, want := range []string{
		"/data/nyc.duckdb?",
		"threads=4",
		"max_memory=2GB",
		"autoload_known_extensions=false",
	} {
		if !strings.Contains(dsn, want) {
			t.Errorf("DSN %q missing %q", dsn, want)
		}
	}

	noMemory := duckDBConnectionString(&config.DatabaseConfig{Path: ":memory:", Threads: 1})
	if strings.Contains(noMemory, "max_memory") {
		t.Errorf("DSN should omit max_memory when unset, got %q", noMemory)
	}
}

func TestPingAndDriver(t *testing.T) {
	db := setupTestDB(t)

	checkNoError(t, db.Ping(context.Background()))
	checkStringEqual(t, "Driver", db.Driver(), config.DriverDuckDB)
}

func TestEnsureContext(t *testing.T) {
	db := setupTestDB(t)

	t.Run("adds deadline", func(t *testing.T) {
		ctx, cancel := db.ensureContext(context.Background())
		defer cancel()
		if _, ok := ctx.Deadline(); !ok {
			t.Error("Expected a deadline")
		}
	})

	t.Run("keeps caller deadline", func(t *testing.T) {
		want := time.Now().Add(time.Minute)
		parent, parentCancel := context.WithDeadline(context.Background(), want)
		defer parentCancel()

		ctx, cancel := db.ensureContext(parent)
		defer cancel()
		got, _ := ctx.Deadline()
		if !got.Equal(want) {
			t.Errorf("Deadline changed: want %v, got %v", want, got)
		}
	})
}

func TestClose_Idempotent(t *testing.T) {
	db := setupTestDB(t)

	checkNoError(t, db.Close())
	checkNoError(t, db.Close())
}
