// Copyright 2025 The Corobench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// keys are the recognized record keys, in the order used for error
// reporting. The parser does a lookup against this fixed set rather
// than any generic mapping; everything else is ignored.
var keys = [...]string{"mean", "min", "max"}

// A ValueError reports a recognized key whose value could not be
// parsed as a finite decimal number. It carries the offending line.
type ValueError struct {
	Path  string // source the record was read from; diagnostic only
	Line  int    // 1-based line number
	Key   string
	Input string // offending line content, after trimming
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s:%d: malformed value for %q: %q", e.Path, e.Line, e.Key, e.Input)
}

// An IncompleteError reports a record that ended without supplying
// every required key. The record format has no defaults, so a partial
// record is an error rather than a zeroed set.
type IncompleteError struct {
	Path    string
	Missing []string // missing keys, in mean, min, max order
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("%s: incomplete record: missing %s", e.Path, strings.Join(e.Missing, ", "))
}

// Read parses a measurement record from r and returns the resulting
// MeasurementSet. path is used in error messages; it is purely
// diagnostic.
//
// Each line is trimmed of surrounding whitespace and split on its
// first "=". Lines with no "=" are skipped, as are keys other than
// "mean", "min", and "max". If a key repeats, the last value wins.
// Reading is one sequential pass over r; the same input always yields
// the same set, and no partially filled set escapes on error.
func Read(r io.Reader, path string) (MeasurementSet, error) {
	var set MeasurementSet
	dest := map[string]*float64{
		"mean": &set.Mean,
		"min":  &set.Min,
		"max":  &set.Max,
	}
	seen := make(map[string]bool)

	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		text := strings.TrimSpace(s.Text())
		key, val, ok := strings.Cut(text, "=")
		if !ok {
			// Blank line or comment.
			continue
		}
		p, ok := dest[key]
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(val, 64)
		if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
			return MeasurementSet{}, &ValueError{path, line, key, text}
		}
		*p = v
		seen[key] = true
	}
	if err := s.Err(); err != nil {
		return MeasurementSet{}, &SourceError{path, err}
	}

	var missing []string
	for _, key := range keys {
		if !seen[key] {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return MeasurementSet{}, &IncompleteError{path, missing}
	}
	return set, nil
}
