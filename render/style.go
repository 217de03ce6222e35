// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import "image/color"

// Style controls what parts of an axis are drawn and how.
type Style struct {
	DrawGridLines  bool
	DrawLabels     bool
	DrawAxisLine   bool
	DrawZeroLine   bool
	DrawLimitLines bool

	GridColor color.Color
	GridWidth float64
	GridDash  []float64

	AxisColor color.Color
	AxisWidth float64

	ZeroLineColor color.Color
	ZeroLineWidth float64

	LimitLineColor color.Color
	LimitLineWidth float64
	LimitLineDash  []float64

	LabelColor color.Color
	FontSize   float64
	// LabelOffset is the gap in pixels between a label and the
	// line it belongs to.
	LabelOffset float64
}

// DefaultStyle returns a Style that draws everything except the zero
// line in shades of gray.
func DefaultStyle() Style {
	return Style{
		DrawGridLines:  true,
		DrawLabels:     true,
		DrawAxisLine:   true,
		DrawLimitLines: true,

		GridColor: color.Gray{0xe0},
		GridWidth: 0.5,

		AxisColor: color.Gray{0x80},
		AxisWidth: 1,

		ZeroLineColor: color.Gray{0x80},
		ZeroLineWidth: 1,

		LimitLineColor: color.RGBA{0xed, 0x5b, 0x5b, 0xff},
		LimitLineWidth: 2,

		LabelColor:  color.Black,
		FontSize:    10,
		LabelOffset: 5,
	}
}
