// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws chart axes.
//
// Drawing goes through a Canvas, which has an SVG implementation and
// an image implementation. AxisRenderer draws the grid lines, labels,
// axis line, zero line, and limit lines of an axis.Axis.
package render // import "github.com/aclements/go-axis/render"

import "image/color"

// Align is the horizontal alignment of text relative to its anchor
// point.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Canvas is a drawing surface. Coordinates are pixels with the origin
// at the top left. Text is vertically centered on its anchor point.
//
// Stroke, fill, line width, and dash apply to everything drawn after
// they are set. A nil color disables stroking or filling.
type Canvas interface {
	SetStroke(c color.Color)
	SetFill(c color.Color)
	SetLineWidth(w float64)
	// SetDash sets the on/off lengths of dashed lines. An empty
	// dash draws solid lines.
	SetDash(dash []float64)

	Line(x1, y1, x2, y2 float64)
	FillRect(x, y, w, h float64)
	Text(x, y float64, align Align, s string)
}
