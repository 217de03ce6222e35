// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var significantTests = []struct {
	in, out float64
}{
	{19.4, 20},
	{0.5, 0.5},
	{7, 7},
	{13, 10},
	{95, 100},
	{1234, 1000},
	{0.0123, 0.01},
	{0.00049, 0.0005},
	{-19.4, -20},
	{-0.7, -0.7},
	{2.2e-10, 2e-10},
	{4.9e10, 5e10},
}

func TestRoundToNextSignificant(t *testing.T) {
	for _, tt := range significantTests {
		got := RoundToNextSignificant(tt.in)
		assert.InDelta(t, tt.out, got, 1e-9*math.Abs(tt.out), "RoundToNextSignificant(%v)", tt.in)
	}

	assert.Equal(t, 0.0, RoundToNextSignificant(0))
	assert.True(t, math.IsNaN(RoundToNextSignificant(math.NaN())))
	assert.True(t, math.IsInf(RoundToNextSignificant(math.Inf(1)), 1))
	assert.True(t, math.IsInf(RoundToNextSignificant(math.Inf(-1)), -1))
}

func TestDecimals(t *testing.T) {
	tests := []struct {
		interval float64
		want     int
	}{
		{0.5, 1},
		{0.25, 1},
		{0.05, 2},
		{0.002, 3},
		{1, 0},
		{20, 0},
		{0, 0},
		{math.Inf(1), 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Decimals(tt.interval), "Decimals(%v)", tt.interval)
	}
}

func TestNextUp(t *testing.T) {
	for _, x := range []float64{0, 1, -1, 80, 1e300} {
		up := nextUp(x)
		assert.Greater(t, up, x)
		assert.Equal(t, x, math.Nextafter(up, math.Inf(-1)))
	}
}
