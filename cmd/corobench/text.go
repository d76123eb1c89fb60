// Copyright 2025 The Corobench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/corobench/corobench/benchcmp"
	"github.com/corobench/corobench/benchunit"
)

// FormatText appends a fixed-width text rendering of the report to
// buf.
func FormatText(buf *bytes.Buffer, rep *benchcmp.Report, labelA, labelB string) {
	// One scale for every statistic so the columns read against
	// each other.
	scaler := benchunit.CommonScale([]float64{
		rep.A.Mean, rep.A.Min, rep.A.Max,
		rep.B.Mean, rep.B.Min, rep.B.Max,
	})

	rows := [][]string{
		{"", "mean", "min", "max", "range"},
		{labelA, scaler.Format(rep.A.Mean), scaler.Format(rep.A.Min), scaler.Format(rep.A.Max), scaler.Format(rep.RangeA)},
		{labelB, scaler.Format(rep.B.Mean), scaler.Format(rep.B.Min), scaler.Format(rep.B.Max), scaler.Format(rep.RangeB)},
	}

	var max []int
	for _, row := range rows {
		for len(max) < len(row) {
			max = append(max, 0)
		}
		for i, s := range row {
			if n := utf8.RuneCountInString(s); max[i] < n {
				max[i] = n
			}
		}
	}

	for _, row := range rows {
		for i, s := range row {
			switch i {
			case 0:
				fmt.Fprintf(buf, "%-*s", max[i], s)
			default:
				fmt.Fprintf(buf, "  %-*s", max[i], s)
			case len(row) - 1:
				fmt.Fprintf(buf, "  %s\n", s)
			}
		}
	}

	fmt.Fprintf(buf, "\nspeedup %.2f× (%s)\n", rep.Speedup, interpret(rep.Tier, labelA, labelB))
	fmt.Fprintf(buf, "absolute overhead %s\n", benchunit.Scale(rep.AbsOverhead))
	fmt.Fprintf(buf, "relative overhead %+.1f%%\n", rep.RelOverheadPct)
}

// interpret phrases a tier using the candidate labels.
func interpret(tier benchcmp.Tier, labelA, labelB string) string {
	switch tier {
	case benchcmp.SignificantAdvantage:
		return fmt.Sprintf("%s has a significant advantage over %s", labelA, labelB)
	case benchcmp.ModerateAdvantage:
		return fmt.Sprintf("%s has a moderate advantage over %s", labelA, labelB)
	case benchcmp.NoDifference:
		return "no measurable difference"
	case benchcmp.ASlower:
		return fmt.Sprintf("%s is slower than %s", labelA, labelB)
	}
	return tier.String()
}
