// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aclements/go-axis/ticks"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorDim   = lipgloss.Color("240")

	styleKey     = lipgloss.NewStyle().Foreground(colorDim).Width(10)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleError   = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
)

// result is the printed form of a tick set.
type result struct {
	Min      float64   `json:"min"`
	Max      float64   `json:"max"`
	Interval float64   `json:"interval"`
	Decimals int       `json:"decimals"`
	Entries  []float64 `json:"entries"`
	Centered []float64 `json:"centered,omitempty"`
	Labels   []string  `json:"labels"`
}

func newResult(min, max float64, s ticks.Set, f ticks.Formatter) result {
	return result{
		Min:      min,
		Max:      max,
		Interval: s.Interval,
		Decimals: s.Decimals,
		Entries:  s.Entries,
		Centered: s.Centered,
		Labels:   s.Labels(f),
	}
}

func (r result) write(w io.Writer, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	var b strings.Builder
	row := func(key string, vals ...string) {
		b.WriteString(styleKey.Render(key))
		b.WriteString(styleNumber.Render(strings.Join(vals, "  ")))
		b.WriteByte('\n')
	}
	row("range", ticks.DefaultFormatter{}.Format(r.Min, r.Decimals+1), ticks.DefaultFormatter{}.Format(r.Max, r.Decimals+1))
	row("interval", fmt.Sprint(r.Interval))
	row("decimals", fmt.Sprint(r.Decimals))
	row("entries", floats(r.Entries)...)
	if r.Centered != nil {
		row("centered", floats(r.Centered)...)
	}
	row("labels", r.Labels...)
	_, err := io.WriteString(w, b.String())
	return err
}

func floats(xs []float64) []string {
	ss := make([]string, len(xs))
	for i, x := range xs {
		ss[i] = fmt.Sprint(x)
	}
	return ss
}

func printSuccess(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, styleSuccess.Render("✓"), fmt.Sprintf(format, args...))
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, styleError.Render("error:"), err)
}
