// Copyright 2025 The Corobench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchmath aggregates raw benchmark samples into measurement
// summaries.
//
// A benchmark harness runs its workload several times and records one
// duration per run. This package reduces those runs to the
// mean/min/max summary that the record format carries (see package
// benchfmt).
package benchmath

import (
	"errors"
	"sort"

	"github.com/aclements/go-moremath/stats"

	"github.com/corobench/corobench/benchfmt"
)

// ErrEmptySample is returned by NewSample when there are no values to
// summarize.
var ErrEmptySample = errors.New("sample has no values")

// A Sample is a set of repeated duration measurements of one
// candidate, in nanoseconds, one value per benchmark run.
type Sample struct {
	// Values are the measured durations, in ascending order.
	Values []float64
}

// NewSample constructs a Sample from a set of measurements. The
// values are copied, so the caller may reuse the slice.
func NewSample(values []float64) (*Sample, error) {
	if len(values) == 0 {
		return nil, ErrEmptySample
	}
	// Sort values for fast order statistics.
	xs := append([]float64(nil), values...)
	sort.Float64s(xs)
	return &Sample{xs}, nil
}

func (s *Sample) sample() stats.Sample {
	return stats.Sample{Xs: s.Values, Sorted: true}
}

// Summary reduces the sample to its mean/min/max measurement set.
// This is the record a harness writes out after its sampling runs,
// and what the comparison engine consumes.
func (s *Sample) Summary() benchfmt.MeasurementSet {
	sample := s.sample()
	min, max := sample.Bounds()
	return benchfmt.MeasurementSet{
		Mean: sample.Mean(),
		Min:  min,
		Max:  max,
	}
}
