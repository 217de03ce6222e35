// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale maps data values to chart pixels.
//
// A Viewport describes the chart surface: its size, the content
// rectangle inside the offsets, and the current zoom and pan. A
// Transformer maps data coordinates through a Viewport to pixels and
// back.
package scale // import "github.com/aclements/go-axis/scale"

import "math"

// Viewport is a chart surface with a content rectangle and a zoom/pan
// state. The zero value is not usable; use NewViewport.
//
// The touch matrix is expressed in content coordinates: (0, 0) is the
// top-left corner of the content rectangle and y grows downward.
type Viewport struct {
	width, height float64

	left, top, right, bottom float64

	touch Affine

	minScaleX, maxScaleX float64
	minScaleY, maxScaleY float64
}

// NewViewport returns an unzoomed viewport of the given size with no
// offsets.
func NewViewport(width, height float64) *Viewport {
	return &Viewport{
		width:     width,
		height:    height,
		touch:     Identity,
		minScaleX: 1,
		maxScaleX: math.MaxFloat64,
		minScaleY: 1,
		maxScaleY: math.MaxFloat64,
	}
}

// SetSize changes the chart size, keeping the offsets.
func (v *Viewport) SetSize(width, height float64) {
	v.width, v.height = width, height
	v.limit()
}

// SetOffsets sets the space between each chart edge and the content
// rectangle.
func (v *Viewport) SetOffsets(left, top, right, bottom float64) {
	v.left, v.top, v.right, v.bottom = left, top, right, bottom
	v.limit()
}

func (v *Viewport) Width() float64  { return v.width }
func (v *Viewport) Height() float64 { return v.height }

func (v *Viewport) ContentLeft() float64   { return v.left }
func (v *Viewport) ContentTop() float64    { return v.top }
func (v *Viewport) ContentRight() float64  { return v.width - v.right }
func (v *Viewport) ContentBottom() float64 { return v.height - v.bottom }
func (v *Viewport) ContentWidth() float64  { return v.ContentRight() - v.left }
func (v *Viewport) ContentHeight() float64 { return v.ContentBottom() - v.top }

// ScaleX returns the current horizontal zoom factor.
func (v *Viewport) ScaleX() float64 { return v.touch.A }

// ScaleY returns the current vertical zoom factor.
func (v *Viewport) ScaleY() float64 { return v.touch.D }

// TransX returns the current horizontal pan in pixels.
func (v *Viewport) TransX() float64 { return v.touch.E }

// TransY returns the current vertical pan in pixels.
func (v *Viewport) TransY() float64 { return v.touch.F }

// Touch returns the zoom/pan matrix in content coordinates.
func (v *Viewport) Touch() Affine { return v.touch }

// SetScaleLimits bounds the zoom factors. Limits that are not
// positive are ignored.
func (v *Viewport) SetScaleLimits(minX, maxX, minY, maxY float64) {
	if minX > 0 {
		v.minScaleX = minX
	}
	if maxX > 0 {
		v.maxScaleX = maxX
	}
	if minY > 0 {
		v.minScaleY = minY
	}
	if maxY > 0 {
		v.maxScaleY = maxY
	}
	v.limit()
}

// FullyZoomedOutX reports whether the X axis shows its whole range.
func (v *Viewport) FullyZoomedOutX() bool {
	return !(v.ScaleX() > v.minScaleX || v.minScaleX > 1)
}

// FullyZoomedOutY reports whether the Y axis shows its whole range.
func (v *Viewport) FullyZoomedOutY() bool {
	return !(v.ScaleY() > v.minScaleY || v.minScaleY > 1)
}

// Zoom multiplies the zoom factors by sx and sy, keeping the content
// point (cx, cy) fixed.
func (v *Viewport) Zoom(sx, sy, cx, cy float64) {
	m := Translate(-cx, -cy).Then(Scale(sx, sy)).Then(Translate(cx, cy))
	v.touch = v.touch.Then(m)
	v.limit()
}

// Translate pans the content by (dx, dy) pixels.
func (v *Viewport) Translate(dx, dy float64) {
	v.touch = v.touch.Then(Translate(dx, dy))
	v.limit()
}

// Reset clears any zoom and pan.
func (v *Viewport) Reset() {
	v.touch = Identity
	v.limit()
}

// limit keeps the zoom factors within their bounds and the
// translation such that the content rectangle stays covered.
func (v *Viewport) limit() {
	m := v.touch
	m.A = clamp(m.A, v.minScaleX, v.maxScaleX)
	m.D = clamp(m.D, v.minScaleY, v.maxScaleY)
	m.E = clamp(m.E, -v.ContentWidth()*(m.A-1), 0)
	m.F = clamp(m.F, -v.ContentHeight()*(m.D-1), 0)
	v.touch = m
}
