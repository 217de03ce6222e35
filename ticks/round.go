// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import "math"

// RoundToNextSignificant rounds x to one significant digit, with
// halves rounded away from zero. For example, 19.4 rounds to 20 and
// 0.0123 rounds to 0.01. Zero, NaN, and infinities are returned
// unchanged.
func RoundToNextSignificant(x float64) float64 {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	d := math.Ceil(math.Log10(math.Abs(x)))
	magnitude := math.Pow(10, 1-d)
	return math.Round(x*magnitude) / magnitude
}

// Decimals returns the number of fractional digits needed to tell
// apart labels spaced interval apart.
func Decimals(interval float64) int {
	if interval < 1 && interval > 0 && !math.IsInf(interval, 0) {
		return int(math.Ceil(-math.Log10(interval)))
	}
	return 0
}

// nextUp returns the smallest float64 greater than x.
func nextUp(x float64) float64 {
	return math.Nextafter(x, math.Inf(1))
}
