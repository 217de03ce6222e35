// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// A ClipMode says what Clip.Of does with coordinates outside
// [Min, Max].
type ClipMode int

const (
	// Crop rejects coordinates outside the range.
	Crop ClipMode = iota
	// Unclamped accepts every coordinate as is.
	Unclamped
	// Clamp moves coordinates outside the range to the nearest
	// bound.
	Clamp
)

// Clip restricts pixel coordinates to the span between two bounds,
// such as the top and bottom of a chart's content area.
type Clip struct {
	Min, Max float64
	Mode     ClipMode
}

// NewClip returns a cropping Clip between a and b, which may be given
// in either order.
func NewClip(a, b float64) Clip {
	return Clip{math.Min(a, b), math.Max(a, b), Crop}
}

// Of returns x restricted according to c's mode. ok is false if c
// crops and x is out of range or NaN.
//
// Coordinates are compared at 1/100th of a pixel so that values that
// land on a bound after rounding error still count as inside.
func (c Clip) Of(x float64) (y float64, ok bool) {
	if math.IsNaN(x) {
		return x, c.Mode == Unclamped
	}
	r := math.Round(x*100) / 100
	switch c.Mode {
	case Crop:
		if r < c.Min || r > c.Max {
			return 0, false
		}
	case Clamp:
		if r < c.Min {
			x = c.Min
		} else if r > c.Max {
			x = c.Max
		}
	}
	return x, true
}

// Filter returns the elements of xs that c accepts, after
// restriction, along with their indexes in xs.
func (c Clip) Filter(xs []float64) (ys []float64, idx []int) {
	for i, x := range xs {
		if y, ok := c.Of(x); ok {
			ys = append(ys, y)
			idx = append(idx, i)
		}
	}
	return
}
