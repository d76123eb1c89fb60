// Copyright 2025 The Corobench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchunit formats nanosecond durations for display.
//
// The comparison core works in raw nanoseconds and never rounds;
// this package scales durations into a readable time unit (ns, µs,
// ms, or s) for text and chart output.
package benchunit

import (
	"fmt"
	"math"
	"strconv"
)

// A Scaler represents a scaling factor for a nanosecond duration and
// its display unit.
type Scaler struct {
	Prec   int     // Digits after the decimal point
	Factor float64 // Nanoseconds per displayed unit (e.g., 1 ms => 1e6)
	Unit   string  // Display unit ("ns", "µs", "ms", "s")
}

// Format formats the nanosecond duration val and appends the display
// unit according to the given scale. For example, a millisecond-range
// Scaler formats 1234567 as "1.235ms".
func (s Scaler) Format(val float64) string {
	buf := make([]byte, 0, 20)
	buf = strconv.AppendFloat(buf, val/s.Factor, 'f', s.Prec, 64)
	buf = append(buf, s.Unit...)
	return string(buf)
}

// NoOpScaler is a Scaler that formats durations as raw nanosecond
// counts with the smallest number of digits necessary to capture the
// exact value. This is intended for when the output will be consumed
// by another program.
var NoOpScaler = Scaler{-1, 1, "ns"}

type factor struct {
	factor float64
	unit   string
	// Thresholds for 100.0, 10.00, 1.000.
	t100, t10, t1 float64
}

var timeFactors = mkTimeFactors()
var sigfigs, sigfigsBase = mkSigfigs()

func mkTimeFactors() []factor {
	// To ensure that the thresholds for printing values with
	// various factors exactly match how printing itself will
	// round, we construct the thresholds by parsing the printed
	// representation.
	var factors []factor
	exp := 9
	for _, u := range []string{"s", "ms", "µs", "ns"} {
		t100, _ := strconv.ParseFloat(fmt.Sprintf("99.995e%d", exp), 64)
		t10, _ := strconv.ParseFloat(fmt.Sprintf("9.9995e%d", exp), 64)
		t1, _ := strconv.ParseFloat(fmt.Sprintf(".99995e%d", exp), 64)
		factors = append(factors, factor{math.Pow(10, float64(exp)), u, t100, t10, t1})
		exp -= 3
	}
	return factors
}

func mkSigfigs() ([]float64, int) {
	var sigfigs []float64
	// Print up to 10 digits after the decimal place.
	for exp := -1; exp > -9; exp-- {
		thresh, _ := strconv.ParseFloat(fmt.Sprintf("9.9995e%d", exp), 64)
		sigfigs = append(sigfigs, thresh)
	}
	// sigfigs[0] is the threshold for 3 digits after the decimal.
	return sigfigs, 3
}

// Scale formats the nanosecond duration val using at least three
// significant digits and a time unit. See Scaler.Format for details.
func Scale(val float64) string {
	return CommonScale([]float64{val}).Format(val)
}

// CommonScale returns a common Scaler to apply to all durations in
// vals. This scale will show at least three significant digits for
// every value.
func CommonScale(vals []float64) Scaler {
	// The common scale is determined by the non-zero value
	// closest to zero.
	var min float64
	for _, v := range vals {
		v = math.Abs(v)
		if v != 0 && (min == 0 || v < min) {
			min = v
		}
	}
	if min == 0 {
		return Scaler{3, 1, "ns"}
	}

	for _, factor := range timeFactors {
		switch {
		case min >= factor.t100:
			return Scaler{1, factor.factor, factor.unit}
		case min >= factor.t10:
			return Scaler{2, factor.factor, factor.unit}
		case min >= factor.t1:
			return Scaler{3, factor.factor, factor.unit}
		}
	}

	// The duration is sub-nanosecond. Print it in nanoseconds with
	// more precision to achieve the desired sigfigs.
	factor := timeFactors[len(timeFactors)-1]
	val := min / factor.factor
	for i, thresh := range sigfigs {
		if val >= thresh || i == len(sigfigs)-1 {
			return Scaler{i + sigfigsBase, factor.factor, factor.unit}
		}
	}

	panic("not reachable")
}
