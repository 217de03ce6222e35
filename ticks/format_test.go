// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultFormatter(t *testing.T) {
	tests := []struct {
		v        float64
		decimals int
		want     string
	}{
		{0, 0, "0"},
		{20, 0, "20"},
		{1234.5, 1, "1,234.5"},
		{-1500, 0, "-1,500"},
		{0.5, 2, "0.50"},
		{1e6, 0, "1,000,000"},
		{0.5, -1, "1"},
		{1e-12, 12, "0.000000000001"},
	}
	var f DefaultFormatter
	for _, tt := range tests {
		assert.Equal(t, tt.want, f.Format(tt.v, tt.decimals), "Format(%v, %d)", tt.v, tt.decimals)
	}
}

func TestSIFormatter(t *testing.T) {
	assert.Equal(t, "2 k", SIFormatter{}.Format(2000, 0))
	assert.Equal(t, "1.5 M", SIFormatter{}.Format(1.5e6, 0))
	assert.Equal(t, "2 kB", SIFormatter{Unit: "B"}.Format(2000, 0))
}

func TestClockFormatter(t *testing.T) {
	minutes := ClockFormatter{Unit: time.Minute}
	assert.Equal(t, "00:00", minutes.Format(0, 0))
	assert.Equal(t, "01:30", minutes.Format(90, 0))
	assert.Equal(t, "00:15", minutes.Format(24*60+15, 0))
	assert.Equal(t, "23:30", minutes.Format(-30, 0))

	seconds := ClockFormatter{Unit: time.Second}
	assert.Equal(t, "01:02:05", seconds.Format(3725, 0))

	assert.Equal(t, "12:00", ClockFormatter{}.Format(720, 0))

	// Values far beyond the range of time.Duration still wrap by day.
	assert.Equal(t, "10:40", minutes.Format(1e12, 0))
	assert.Equal(t, "13:20", minutes.Format(-1e12, 0))
	assert.Equal(t, "", minutes.Format(1e300, 0))
	assert.Equal(t, "", minutes.Format(math.NaN(), 0))
}

func TestLabels(t *testing.T) {
	s := Solve(0, 2, Options{Count: 5, Policy: SnapDecimal})
	assert.Equal(t, []string{"0.0", "0.5", "1.0", "1.5", "2.0"}, s.Labels(nil))

	s = Solve(0, 35, Options{Count: 5, Policy: SnapMinutes, Center: true})
	assert.Equal(t, []string{"23:45", "00:00", "00:15", "00:30", "00:45"}, s.Labels(ClockFormatter{Unit: time.Minute}))

	custom := FormatterFunc(func(v float64, decimals int) string {
		return strconv.Itoa(int(v)) + "%"
	})
	s = Solve(0, 100, Options{Count: 2})
	assert.Equal(t, []string{"0%", "50%", "100%"}, s.Labels(custom))

	assert.Empty(t, Set{}.Labels(nil))
}
