// NYC Datasets - Open Data Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nycdatasets

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/nycdatasets/internal/importer"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSchemaPrint(t *testing.T) {
	out, err := runCmd(t, "schema", "--print")
	if err != nil {
		t.Fatalf("schema --print: %v", err)
	}
	if !strings.Contains(out, "CREATE TABLE IF NOT EXISTS nyc_datasets") {
		t.Errorf("expected table DDL, got:\n%s", out)
	}
	if !strings.Contains(out, "CREATE INDEX") {
		t.Errorf("expected index DDL, got:\n%s", out)
	}
}

func TestLoadDryRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	csv := "id,name,page_views_total\na1,One,10\na2,Two,\n,Nameless,3\n"
	if err := os.WriteFile(path, []byte(csv), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	out, err := runCmd(t, "load", "--file", path, "--dry-run")
	if err != nil {
		t.Fatalf("load --dry-run: %v", err)
	}

	var result importer.Result
	if err := json.Unmarshal([]byte(out[strings.Index(out, "{"):]), &result); err != nil {
		t.Fatalf("decode result: %v\n%s", err, out)
	}
	if result.Read != 3 || result.Imported != 2 || result.Skipped != 1 || !result.DryRun {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestLoadRequiresFile(t *testing.T) {
	if _, err := runCmd(t, "load", "--dry-run"); err == nil {
		t.Error("expected an error without --file")
	}
}
