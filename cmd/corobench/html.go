// Copyright 2025 The Corobench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"html/template"

	"github.com/corobench/corobench/benchcmp"
	"github.com/corobench/corobench/benchunit"
)

var htmlTemplate = template.Must(template.New("").Parse(`
<table class='corobench'>
<tbody>
<tr><th>candidate<th>mean<th>min<th>max<th>range
{{range .Rows -}}
<tr><td>{{.Label}}<td>{{.Mean}}<td>{{.Min}}<td>{{.Max}}<td>{{.Range}}
{{end -}}
</tbody>
</table>
<p class='corobench-summary'>
speedup {{printf "%.2f" .Speedup}}&times; ({{.Interpretation}});
absolute overhead {{.AbsOverhead}};
relative overhead {{printf "%+.1f" .RelOverheadPct}}%
</p>
`))

type htmlRow struct {
	Label, Mean, Min, Max, Range string
}

type htmlReport struct {
	Rows           []htmlRow
	Speedup        float64
	Interpretation string
	AbsOverhead    string
	RelOverheadPct float64
}

// FormatHTML appends an HTML rendering of the report to buf.
func FormatHTML(buf *bytes.Buffer, rep *benchcmp.Report, labelA, labelB string) {
	scaler := benchunit.CommonScale([]float64{
		rep.A.Mean, rep.A.Min, rep.A.Max,
		rep.B.Mean, rep.B.Min, rep.B.Max,
	})
	data := htmlReport{
		Rows: []htmlRow{
			{labelA, scaler.Format(rep.A.Mean), scaler.Format(rep.A.Min), scaler.Format(rep.A.Max), scaler.Format(rep.RangeA)},
			{labelB, scaler.Format(rep.B.Mean), scaler.Format(rep.B.Min), scaler.Format(rep.B.Max), scaler.Format(rep.RangeB)},
		},
		Speedup:        rep.Speedup,
		Interpretation: interpret(rep.Tier, labelA, labelB),
		AbsOverhead:    benchunit.Scale(rep.AbsOverhead),
		RelOverheadPct: rep.RelOverheadPct,
	}
	if err := htmlTemplate.Execute(buf, data); err != nil {
		// Only possible errors here are the template not matching
		// the data structure. Don't make the caller check - it's
		// our fault.
		panic(err)
	}
}
