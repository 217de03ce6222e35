// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset reads a column of numbers from a CSV, TSV, or XLSX
// file.
package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gwenn/yacr"
	"github.com/xuri/excelize/v2"
)

var (
	// ErrNoValues is returned when a column has no numeric cells.
	ErrNoValues = errors.New("no numeric values")
	// ErrUnknownFormat is returned for unrecognized file
	// extensions.
	ErrUnknownFormat = errors.New("unknown data format")
	// ErrBadColumn is returned for column numbers less than 1.
	ErrBadColumn = errors.New("bad column")
)

// Load returns the numeric cells of the given column of the named
// file. Columns are numbered from 1. Cells that are not numbers, such
// as a header, are skipped.
//
// The format is chosen by extension: ".csv", ".tsv", or ".xlsx".
func Load(name string, column int) ([]float64, error) {
	if column < 1 {
		return nil, fmt.Errorf("%w %d", ErrBadColumn, column)
	}
	var vals []float64
	var err error
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".csv", ".tsv":
		sep := byte(',')
		if ext == ".tsv" {
			sep = '\t'
		}
		var f *os.File
		f, err = os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		vals, err = ReadDelimited(f, sep, column)
	case ".xlsx":
		vals, err = loadXLSX(name, column)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return vals, nil
}

// ReadDelimited returns the numeric cells of the given column of
// delimited text read from r.
func ReadDelimited(r io.Reader, sep byte, column int) ([]float64, error) {
	if column < 1 {
		return nil, fmt.Errorf("%w %d", ErrBadColumn, column)
	}
	rd := yacr.NewReader(r, sep, true, false)
	rd.Trim = true

	var vals []float64
	field := 1
	for rd.Scan() {
		if field == column {
			var v float64
			if rd.Value(&v) == nil {
				vals = append(vals, v)
			}
		}
		if rd.EndOfRecord() {
			field = 1
		} else {
			field++
		}
	}
	if err := rd.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", rd.LineNumber(), err)
	}
	if len(vals) == 0 {
		return nil, fmt.Errorf("column %d: %w", column, ErrNoValues)
	}
	return vals, nil
}

// loadXLSX reads a column of the first sheet of a workbook.
func loadXLSX(name string, column int) ([]float64, error) {
	f, err := excelize.OpenFile(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoValues
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("sheet %s: %w", sheets[0], err)
	}

	var vals []float64
	for _, row := range rows {
		if column > len(row) {
			continue
		}
		if v, err := strconv.ParseFloat(strings.TrimSpace(row[column-1]), 64); err == nil {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return nil, fmt.Errorf("sheet %s column %d: %w", sheets[0], column, ErrNoValues)
	}
	return vals, nil
}
