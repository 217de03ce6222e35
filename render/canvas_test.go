// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import "image/color"

var (
	_ Canvas = (*SVG)(nil)
	_ Canvas = (*Raster)(nil)
	_ Canvas = (*recorder)(nil)
)

type line struct {
	x1, y1, x2, y2 float64
	stroke         color.Color
	dash           []float64
}

type text struct {
	x, y  float64
	align Align
	s     string
}

// recorder is a Canvas that records what is drawn.
type recorder struct {
	stroke, fill color.Color
	width        float64
	dash         []float64

	lines []line
	texts []text
	rects int
}

func (r *recorder) SetStroke(c color.Color)     { r.stroke = c }
func (r *recorder) SetFill(c color.Color)       { r.fill = c }
func (r *recorder) SetLineWidth(w float64)      { r.width = w }
func (r *recorder) SetDash(dash []float64)      { r.dash = dash }
func (r *recorder) FillRect(x, y, w, h float64) { r.rects++ }

func (r *recorder) Line(x1, y1, x2, y2 float64) {
	r.lines = append(r.lines, line{x1, y1, x2, y2, r.stroke, r.dash})
}

func (r *recorder) Text(x, y float64, align Align, s string) {
	r.texts = append(r.texts, text{x, y, align, s})
}
