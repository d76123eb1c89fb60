// Copyright 2025 The Corobench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchfmt reads and writes coroutine benchmark measurement
// records.
//
// A measurement record is a flat key=value text file written by a
// benchmark harness, one record per source:
//
//	mean=45.2
//	min=40.1
//	max=52.8
//
// All values are durations in nanoseconds. Lines may appear in any
// order. Blank lines and lines without an "=" are skipped, and
// unrecognized keys are ignored so harnesses can add fields without
// breaking old readers.
package benchfmt

// A MeasurementSet is one candidate's aggregated benchmark outcome:
// the mean, minimum, and maximum measured duration in nanoseconds.
//
// A MeasurementSet is immutable once constructed and is passed by
// value. The parser does not enforce the Min <= Mean <= Max ordering
// because upstream data may be malformed; consumers that derive
// metrics from a set must check it (see package benchcmp).
type MeasurementSet struct {
	Mean float64
	Min  float64
	Max  float64
}
