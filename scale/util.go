// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// Extent returns the minimum and maximum finite values in xs. ok is
// false if xs has no finite values.
func Extent(xs []float64) (min, max float64, ok bool) {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		if !ok {
			min, max, ok = x, x, true
			continue
		}
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return
}

func clamp(x, lo, hi float64) float64 {
	return math.Min(math.Max(x, lo), hi)
}
