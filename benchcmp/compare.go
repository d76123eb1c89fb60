// Copyright 2025 The Corobench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchcmp compares two benchmark measurement sets and
// derives a comparative performance report.
//
// Comparison is a pure function of its inputs: no state is shared
// between calls, so callers running a batch of comparisons may
// parallelize them trivially.
package benchcmp

import (
	"errors"
	"fmt"

	"github.com/corobench/corobench/benchfmt"
)

// ErrZeroBaseline is returned by Compare when candidate A's mean is
// zero, which leaves the speedup ratio undefined.
var ErrZeroBaseline = errors.New("baseline mean is zero: speedup is undefined")

// An InvalidSetError reports a measurement set whose internal
// ordering invariant (Min <= Mean <= Max) does not hold. Compare
// refuses such a set before deriving any metric so corrupt inputs
// cannot produce a misleading report.
type InvalidSetError struct {
	Label     string // which argument: "A" or "B"
	Set       benchfmt.MeasurementSet
	Violation string // the violated inequality, e.g. "min > mean"
}

func (e *InvalidSetError) Error() string {
	return fmt.Sprintf("measurement set %s: %s (min=%v mean=%v max=%v)",
		e.Label, e.Violation, e.Set.Min, e.Set.Mean, e.Set.Max)
}

// A Report is the derived, read-only result of comparing two
// measurement sets A and B. By convention A is the presumed-faster
// candidate, but Compare makes no assumption about which candidate
// actually wins; see ASlower.
//
// All durations are in nanoseconds. Values are exact; rounding is a
// presentation concern.
type Report struct {
	A, B benchfmt.MeasurementSet // the compared sets

	RangeA, RangeB float64 // max - min per set

	// Speedup is B's mean over A's mean: how many times faster A
	// is than B.
	Speedup float64

	AbsOverhead    float64 // meanB - meanA, in nanoseconds
	RelOverheadPct float64 // (Speedup - 1) * 100

	Tier Tier
}

// Compare derives a fresh Report from measurement sets a and b.
//
// It fails with an *InvalidSetError if either set violates
// Min <= Mean <= Max (a is checked first), and with ErrZeroBaseline
// if a's mean is zero. It never returns an infinite or NaN speedup,
// and it never returns a partial report.
func Compare(a, b benchfmt.MeasurementSet) (*Report, error) {
	if err := check("A", a); err != nil {
		return nil, err
	}
	if err := check("B", b); err != nil {
		return nil, err
	}
	if a.Mean == 0 {
		return nil, ErrZeroBaseline
	}

	speedup := b.Mean / a.Mean
	return &Report{
		A:              a,
		B:              b,
		RangeA:         a.Max - a.Min,
		RangeB:         b.Max - b.Min,
		Speedup:        speedup,
		AbsOverhead:    b.Mean - a.Mean,
		RelOverheadPct: (speedup - 1) * 100,
		Tier:           classify(speedup),
	}, nil
}

func check(label string, set benchfmt.MeasurementSet) error {
	switch {
	case set.Min > set.Mean:
		return &InvalidSetError{label, set, "min > mean"}
	case set.Mean > set.Max:
		return &InvalidSetError{label, set, "mean > max"}
	}
	return nil
}
