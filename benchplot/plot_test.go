// Copyright 2025 The Corobench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/corobench/corobench/benchcmp"
	"github.com/corobench/corobench/benchfmt"
)

func testReport(t *testing.T) *benchcmp.Report {
	t.Helper()
	rep, err := benchcmp.Compare(
		benchfmt.MeasurementSet{Mean: 45, Min: 40, Max: 52},
		benchfmt.MeasurementSet{Mean: 180, Min: 170, Max: 195},
	)
	if err != nil {
		t.Fatal(err)
	}
	return rep
}

func TestComparison(t *testing.T) {
	pl, err := Comparison(testReport(t), "stackless", "ucontext")
	if err != nil {
		t.Fatalf("Comparison failed: %v", err)
	}
	if !strings.Contains(pl.Title.Text, "4.00×") {
		t.Errorf("title %q does not show the speedup", pl.Title.Text)
	}
}

func TestWritePNG(t *testing.T) {
	rep := testReport(t)
	dir := t.TempDir()

	comparison, err := Comparison(rep, "stackless", "ucontext")
	if err != nil {
		t.Fatal(err)
	}
	ranges, err := Ranges(rep, "stackless", "ucontext")
	if err != nil {
		t.Fatal(err)
	}

	comparisonPath := filepath.Join(dir, "comparison.png")
	rangesPath := filepath.Join(dir, "ranges.png")
	if err := WritePNG(comparison, comparisonPath); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}
	if err := WritePNG(ranges, rangesPath); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	for _, path := range []string{comparisonPath, rangesPath} {
		fi, err := os.Stat(path)
		if err != nil {
			t.Fatalf("chart not written: %v", err)
		}
		if fi.Size() == 0 {
			t.Errorf("%s is empty", path)
		}
	}
}
