// Copyright 2025 The Corobench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Corobench compares two coroutine benchmark measurement records and
// reports how the candidates perform against each other.
//
// Usage:
//
//	corobench [-html] [-plot dir] fast-file slow-file
//
// Each argument names a measurement record file in the key=value
// format written by the benchmark harness:
//
//	mean=45.2
//	min=40.1
//	max=52.8
//
// An argument may take the form label=path to name the candidate in
// the output, for example:
//
//	corobench stackless=stackless_results.txt ucontext=ucontext_results.txt
//
// The first file is the baseline candidate A; the speedup reported is
// the second candidate's mean over the first's. If the first
// candidate turns out to be the slower one, corobench still prints
// the report, with a negative overhead.
//
// By default corobench prints a fixed-width text report:
//
//	           mean      min       max       range
//	stackless  45.00ns   40.00ns   52.00ns   12.00ns
//	ucontext   180.00ns  170.00ns  195.00ns  25.00ns
//
//	speedup 4.00× (stackless has a significant advantage over ucontext)
//	absolute overhead 135.0ns
//	relative overhead +300.0%
//
// The -html flag prints the report as an HTML table instead. The
// -plot flag additionally writes comparison.png and ranges.png chart
// images to the given directory.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/corobench/corobench/benchcmp"
	"github.com/corobench/corobench/benchfmt"
	"github.com/corobench/corobench/benchplot"
)

func main() {
	if err := corobench(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "corobench: %v\n", err)
		os.Exit(1)
	}
}

func corobench(w io.Writer, args []string) error {
	flags := flag.NewFlagSet("corobench", flag.ExitOnError)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: corobench [flags] fast-file slow-file\n")
		fmt.Fprintf(flags.Output(), "Arguments may take the form label=path.\n")
		flags.PrintDefaults()
	}
	flagHTML := flags.Bool("html", false, "print the report as an HTML table")
	flagPlot := flags.String("plot", "", "write comparison charts as PNG files to `dir`")
	flags.Parse(args)
	if flags.NArg() != 2 {
		flags.Usage()
		os.Exit(2)
	}

	inA := benchfmt.ParseInput(flags.Arg(0))
	inB := benchfmt.ParseInput(flags.Arg(1))
	a, err := inA.Read()
	if err != nil {
		return err
	}
	b, err := inB.Read()
	if err != nil {
		return err
	}

	rep, err := benchcmp.Compare(a, b)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if *flagHTML {
		FormatHTML(&buf, rep, inA.Label, inB.Label)
	} else {
		FormatText(&buf, rep, inA.Label, inB.Label)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return err
	}

	if *flagPlot != "" {
		return writeCharts(rep, inA.Label, inB.Label, *flagPlot)
	}
	return nil
}

func writeCharts(rep *benchcmp.Report, labelA, labelB, dir string) error {
	comparison, err := benchplot.Comparison(rep, labelA, labelB)
	if err != nil {
		return err
	}
	if err := benchplot.WritePNG(comparison, filepath.Join(dir, "comparison.png")); err != nil {
		return err
	}
	ranges, err := benchplot.Ranges(rep, labelA, labelB)
	if err != nil {
		return err
	}
	return benchplot.WritePNG(ranges, filepath.Join(dir, "ranges.png"))
}
