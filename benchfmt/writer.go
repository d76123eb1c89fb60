// Copyright 2025 The Corobench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"bytes"
	"io"
	"strconv"
)

// A Writer writes measurement records in the key=value record format.
//
// The encoding mirrors the input format and preserves full float64
// precision, so a written record reads back as the identical
// MeasurementSet.
type Writer struct {
	w   io.Writer
	buf bytes.Buffer
}

// NewWriter returns a writer that writes measurement records to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write writes the record for set to w.
func (w *Writer) Write(set MeasurementSet) error {
	w.buf.Reset()
	writeField(&w.buf, "mean", set.Mean)
	writeField(&w.buf, "min", set.Min)
	writeField(&w.buf, "max", set.Max)

	// Writes to the buffer can't fail, so we only have to check if
	// this fails.
	_, err := w.w.Write(w.buf.Bytes())
	return err
}

func writeField(buf *bytes.Buffer, key string, val float64) {
	buf.WriteString(key)
	buf.WriteByte('=')
	buf.WriteString(strconv.FormatFloat(val, 'g', -1, 64))
	buf.WriteByte('\n')
}
