// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

// Package main is the offline loader for the dataset store.
//
// Usage:
//
//	importer schema
//	importer load --file catalog.csv [--batch-size 500] [--dry-run]
//
// Store and logging settings come from the same configuration as the server
// (config.yaml, DUCKDB_PATH, DATABASE_URL, LOG_LEVEL, ...).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/nycdatasets/internal/config"
	"github.com/tomtom215/nycdatasets/internal/database"
	"github.com/tomtom215/nycdatasets/internal/importer"
	"github.com/tomtom215/nycdatasets/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "importer",
		Short:         "Load the NYC Open Data catalog into the dataset store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSchemaCmd(), newLoadCmd())
	return root
}

func newSchemaCmd() *cobra.Command {
	var printOnly bool

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Create the datasets table and indexes if missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if printOnly {
				for _, stmt := range database.SchemaStatements(true) {
					fmt.Fprintf(cmd.OutOrStdout(), "%s;\n", stmt)
				}
				return nil
			}

			db, err := openStore()
			if err != nil {
				return err
			}
			defer closeStore(db)

			logging.Info().Str("driver", db.Driver()).Msg("Schema ready")
			return nil
		},
	}
	cmd.Flags().BoolVar(&printOnly, "print", false, "print the DDL instead of applying it")
	return cmd
}

func newLoadCmd() *cobra.Command {
	var (
		file string
		opts importer.Options
	)

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Upsert datasets from a catalog CSV export",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var store importer.Store
			if !opts.DryRun {
				db, err := openStore()
				if err != nil {
					return err
				}
				defer closeStore(db)
				store = db
			} else {
				initLogging()
			}

			imp, err := importer.NewImporter(store, opts)
			if err != nil {
				return err
			}

			result, err := imp.ImportFile(cmd.Context(), file)
			if err != nil {
				return fmt.Errorf("import %s: %w", file, err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "catalog CSV file (required)")
	cmd.Flags().IntVar(&opts.BatchSize, "batch-size", importer.DefaultBatchSize, "rows per transaction")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "parse and count rows without writing")
	_ = cmd.MarkFlagRequired("file") //nolint:errcheck // flag is defined above
	return cmd
}

// openStore loads configuration, initializes logging and opens the store,
// creating the schema if it does not exist.
func openStore() (*database.DB, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	db, err := database.New(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return db, nil
}

func initLogging() {
	if _, err := loadConfig(); err != nil {
		logging.Warn().Err(err).Msg("Using default logging configuration")
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})
	return cfg, nil
}

func closeStore(db *database.DB) {
	if err := db.Close(); err != nil {
		logging.Error().Err(err).Msg("Error closing database")
	}
}
