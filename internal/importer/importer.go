// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/tomtom215/nycdatasets/internal/logging"
	"github.com/tomtom215/nycdatasets/internal/metrics"
	"github.com/tomtom215/nycdatasets/internal/models"
	"github.com/tomtom215/nycdatasets/internal/validation"
)

// ErrNoIDColumn is returned when the CSV header has no id column.
var ErrNoIDColumn = errors.New("csv header has no id column")

// Store is the write side of the dataset store.
type Store interface {
	UpsertDatasets(ctx context.Context, records []models.DatasetRecord) (int, error)
}

// Importer loads catalog CSV files into a Store.
type Importer struct {
	store Store
	opts  Options
}

// NewImporter creates an importer. store may be nil for dry runs.
func NewImporter(store Store, opts Options) (*Importer, error) {
	if verr := validation.ValidateStruct(&opts); verr != nil {
		return nil, verr
	}
	if opts.BatchSize == 0 {
		opts.BatchSize = DefaultBatchSize
	}
	if store == nil && !opts.DryRun {
		return nil, errors.New("importer: store is required unless dry run")
	}
	return &Importer{store: store, opts: opts}, nil
}

// ImportFile opens path and imports it.
func (i *Importer) ImportFile(ctx context.Context, path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			logging.Warn().Err(closeErr).Str("path", path).Msg("Error closing CSV file")
		}
	}()

	return i.Import(ctx, f)
}

// Import reads a catalog CSV from r and upserts its rows. Rows sharing an id
// collapse to the last one in the file. On a write error the returned result
// counts only the batches committed before it.
func (i *Importer) Import(ctx context.Context, r io.Reader) (*Result, error) {
	result := &Result{StartTime: time.Now(), DryRun: i.opts.DryRun}
	defer func() { result.EndTime = time.Now() }()

	records, err := i.readAll(r, result)
	if err != nil {
		return result, err
	}

	logging.Info().
		Int("read", result.Read).
		Int("distinct", len(records)).
		Int("skipped", result.Skipped).
		Bool("dry_run", i.opts.DryRun).
		Msg("Parsed catalog CSV")

	if i.opts.DryRun {
		result.Imported = len(records)
		i.finish(result)
		return result, nil
	}

	for start := 0; start < len(records); start += i.opts.BatchSize {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		end := min(start+i.opts.BatchSize, len(records))
		n, err := i.store.UpsertDatasets(ctx, records[start:end])
		if err != nil {
			return result, fmt.Errorf("write batch at row %d: %w", start, err)
		}
		result.Imported += n

		logging.Debug().
			Int("imported", result.Imported).
			Int("total", len(records)).
			Msg("Import progress")
	}

	i.finish(result)
	return result, nil
}

// readAll parses every row, skipping those without an id and keeping the
// last row for each id in first-seen order.
func (i *Importer) readAll(r io.Reader, result *Result) ([]models.DatasetRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	mapper := NewMapper(header)
	if !mapper.HasID() {
		return nil, ErrNoIDColumn
	}
	if ignored := mapper.Ignored(); len(ignored) > 0 {
		logging.Warn().Strs("columns", ignored).Msg("Ignoring unknown CSV columns")
	}

	var records []models.DatasetRecord
	position := make(map[string]int)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", result.Read+1, err)
		}
		result.Read++

		rec, ok := mapper.ToRecord(row)
		if !ok {
			result.Skipped++
			continue
		}
		if idx, seen := position[rec.ID]; seen {
			records[idx] = rec
			result.Duplicates++
			continue
		}
		position[rec.ID] = len(records)
		records = append(records, rec)
	}

	return records, nil
}

func (i *Importer) finish(result *Result) {
	result.EndTime = time.Now()
	metrics.RecordImport(result.Imported, result.Skipped, result.Duration())

	logging.Info().
		Int("read", result.Read).
		Int("imported", result.Imported).
		Int("skipped", result.Skipped).
		Int("duplicates", result.Duplicates).
		Dur("duration", result.Duration()).
		Float64("rows_per_second", result.RowsPerSecond()).
		Msg("Import completed")
}
