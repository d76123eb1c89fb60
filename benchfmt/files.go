// Copyright 2025 The Corobench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"fmt"
	"os"
	"strings"
)

// A SourceError reports a record source that could not be opened or
// read. It wraps the underlying I/O error.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// ReadFile parses the measurement record in the named file. The file
// is held open only for the duration of the parse and is closed on
// all paths. If the file cannot be opened, ReadFile returns a
// *SourceError naming it.
func ReadFile(path string) (MeasurementSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return MeasurementSet{}, &SourceError{path, err}
	}
	defer f.Close()
	return Read(f, path)
}

// An Input is a labeled measurement record source, as given on a
// command line.
type Input struct {
	Path  string
	Label string
}

// ParseInput parses a command-line argument of the form path or
// label=path. The label names the candidate in reports; a bare path
// labels the candidate with the path itself.
func ParseInput(arg string) Input {
	if i := strings.Index(arg, "="); i >= 0 {
		return Input{Path: arg[i+1:], Label: arg[:i]}
	}
	return Input{Path: arg, Label: arg}
}

// Read parses the input's record file. See ReadFile.
func (in Input) Read() (MeasurementSet, error) {
	return ReadFile(in.Path)
}
