// Copyright 2025 The Corobench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name string
		data string
		want MeasurementSet
	}{
		{"basic", "mean=45.2\nmin=40.1\nmax=52.8\n", MeasurementSet{45.2, 40.1, 52.8}},
		{"anyOrder", "max=52.8\nmean=45.2\nmin=40.1\n", MeasurementSet{45.2, 40.1, 52.8}},
		{"blankLines", "\nmean=45.2\n\nmin=40.1\n\n\nmax=52.8\n", MeasurementSet{45.2, 40.1, 52.8}},
		{"comment", "# context-switch results\nmean=1\nmin=1\nmax=1\n", MeasurementSet{1, 1, 1}},
		{"unknownKeys", "mean=45.2\nsamples=10\nmin=40.1\nfoo=bar\nmax=52.8\n", MeasurementSet{45.2, 40.1, 52.8}},
		{"surroundingSpace", "  mean=45.2  \n\tmin=40.1\t\nmax=52.8", MeasurementSet{45.2, 40.1, 52.8}},
		{"noFinalNewline", "mean=45.2\nmin=40.1\nmax=52.8", MeasurementSet{45.2, 40.1, 52.8}},
		{"firstEquals", "mean=45.2\nmin=40.1\nmax=52.8\nnote=a=b\n", MeasurementSet{45.2, 40.1, 52.8}},
		{"lastWins", "mean=1\nmean=45.2\nmin=40.1\nmax=52.8\n", MeasurementSet{45.2, 40.1, 52.8}},
		{"fullPrecision", "mean=45.1234567891234\nmin=0.1\nmax=1e9\n", MeasurementSet{45.1234567891234, 0.1, 1e9}},
		{"zeroes", "mean=0\nmin=0\nmax=0\n", MeasurementSet{0, 0, 0}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Read(strings.NewReader(test.data), "test")
			if err != nil {
				t.Fatalf("Read failed: %v", err)
			}
			if !reflect.DeepEqual(got, test.want) {
				t.Errorf("got %+v, want %+v", got, test.want)
			}
		})
	}
}

func TestReadMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
		key  string
		line int
	}{
		{"nonNumeric", "mean=abc\nmin=1\nmax=2\n", "mean", 1},
		{"emptyValue", "mean=\nmin=1\nmax=2\n", "mean", 1},
		{"inf", "mean=1\nmin=Inf\nmax=2\n", "min", 2},
		{"negInf", "mean=1\nmin=-inf\nmax=2\n", "min", 2},
		{"nan", "mean=1\nmin=0\nmax=NaN\n", "max", 3},
		{"trailingJunk", "mean=1 ns\nmin=1\nmax=2\n", "mean", 1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(test.data), "test")
			var verr *ValueError
			if !errors.As(err, &verr) {
				t.Fatalf("got error %v, want *ValueError", err)
			}
			if verr.Key != test.key || verr.Line != test.line {
				t.Errorf("got key %q at line %d, want key %q at line %d", verr.Key, verr.Line, test.key, test.line)
			}
			if verr.Path != "test" {
				t.Errorf("got path %q, want %q", verr.Path, "test")
			}
		})
	}
}

func TestReadIncomplete(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		missing []string
	}{
		{"missingMax", "mean=10\nmin=5\n", []string{"max"}},
		{"missingMeanMin", "max=10\n", []string{"mean", "min"}},
		{"empty", "", []string{"mean", "min", "max"}},
		{"onlyUnknown", "foo=1\nbar=2\n", []string{"mean", "min", "max"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(test.data), "test")
			var ierr *IncompleteError
			if !errors.As(err, &ierr) {
				t.Fatalf("got error %v, want *IncompleteError", err)
			}
			if !reflect.DeepEqual(ierr.Missing, test.missing) {
				t.Errorf("got missing %v, want %v", ierr.Missing, test.missing)
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "stackless_results.txt")
	if err := os.WriteFile(path, []byte("mean=45.2\nmin=40.1\nmax=52.8\n"), 0666); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if want := (MeasurementSet{45.2, 40.1, 52.8}); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	_, err = ReadFile(filepath.Join(dir, "absent.txt"))
	var serr *SourceError
	if !errors.As(err, &serr) {
		t.Fatalf("got error %v, want *SourceError", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error %v does not wrap fs.ErrNotExist", err)
	}
	if !strings.Contains(serr.Path, "absent.txt") {
		t.Errorf("error path %q does not name the missing file", serr.Path)
	}
}

func TestParseInput(t *testing.T) {
	tests := []struct {
		arg  string
		want Input
	}{
		{"results.txt", Input{"results.txt", "results.txt"}},
		{"stackless=out/stackless_results.txt", Input{"out/stackless_results.txt", "stackless"}},
		{"ucontext=u.txt", Input{"u.txt", "ucontext"}},
	}
	for _, test := range tests {
		if got := ParseInput(test.arg); got != test.want {
			t.Errorf("ParseInput(%q) = %+v, want %+v", test.arg, got, test.want)
		}
	}
}
