// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// A Formatter turns a tick value into label text. decimals is the
// number of fractional digits suggested by Set.Decimals.
type Formatter interface {
	Format(v float64, decimals int) string
}

// FormatterFunc adapts an ordinary function to a Formatter.
type FormatterFunc func(v float64, decimals int) string

func (f FormatterFunc) Format(v float64, decimals int) string {
	return f(v, decimals)
}

// DefaultFormatter formats values with thousands separators and
// exactly decimals fractional digits, such as "1,234.50".
type DefaultFormatter struct{}

// maxGroupedDecimals is the most fractional digits humanize.FormatFloat
// can render.
const maxGroupedDecimals = 9

func (DefaultFormatter) Format(v float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	if decimals > maxGroupedDecimals || math.Abs(v) >= 1e15 || math.IsNaN(v) || math.IsInf(v, 0) {
		// FormatFloat goes through int64.
		return strconv.FormatFloat(v, 'f', decimals, 64)
	}
	return humanize.FormatFloat("#,###."+strings.Repeat("#", decimals), v)
}

// SIFormatter formats values with an SI prefix, such as "2.5 k".
type SIFormatter struct {
	Unit string
}

func (f SIFormatter) Format(v float64, decimals int) string {
	return strings.TrimSpace(humanize.SI(v, f.Unit))
}

// ClockFormatter formats values as a time of day. Unit is the
// duration of one axis unit; values are taken modulo 24 hours.
// Labels include seconds only if Unit is less than a minute.
//
// ClockFormatter pairs with SnapMinutes (Unit = time.Minute) and
// SnapSeconds (Unit = time.Second).
type ClockFormatter struct {
	Unit time.Duration
}

func (f ClockFormatter) Format(v float64, decimals int) string {
	unit := f.Unit
	if unit <= 0 {
		unit = time.Minute
	}
	const day = 24 * time.Hour
	ns := math.Mod(v*float64(unit), float64(day))
	if math.IsNaN(ns) {
		return ""
	}
	// |ns| < day here, so the conversion cannot overflow.
	d := time.Duration(math.Round(ns)) % day
	if d < 0 {
		d += day
	}
	t := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC).Add(d)
	if unit < time.Minute {
		return t.Format("15:04:05")
	}
	return t.Format("15:04")
}

// Labels formats every entry of s with f, or with DefaultFormatter if
// f is nil. Centered labels carry the text of their entry.
func (s Set) Labels(f Formatter) []string {
	if f == nil {
		f = DefaultFormatter{}
	}
	labels := make([]string, len(s.Entries))
	for i, v := range s.Entries {
		labels[i] = f.Format(v, s.Decimals)
	}
	return labels
}
