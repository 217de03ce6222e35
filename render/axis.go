// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"github.com/aclements/go-axis/axis"
	"github.com/aclements/go-axis/scale"
)

// AxisRenderer draws an axis whose ticks have been computed on a
// chart described by Viewport and Transformer.
//
// A vertical axis is drawn along the left edge of the content area
// and a horizontal axis along the bottom edge. Anything that falls
// outside the content area is not drawn.
type AxisRenderer struct {
	Axis        *axis.Axis
	Viewport    *scale.Viewport
	Transformer *scale.Transformer
	Style       Style
}

// NewAxisRenderer returns an AxisRenderer with the default style.
func NewAxisRenderer(a *axis.Axis, vp *scale.Viewport, tr *scale.Transformer) *AxisRenderer {
	return &AxisRenderer{a, vp, tr, DefaultStyle()}
}

func (r *AxisRenderer) vertical() bool {
	return r.Axis.Orientation == axis.Vertical
}

// pixels returns the pixel coordinate of each value along the axis.
func (r *AxisRenderer) pixels(values []float64) []float64 {
	if r.vertical() {
		return r.Transformer.PixelsY(values)
	}
	return r.Transformer.PixelsX(values)
}

// clip returns the span of pixels along the axis that lies inside
// the content area.
func (r *AxisRenderer) clip() scale.Clip {
	vp := r.Viewport
	if r.vertical() {
		return scale.NewClip(vp.ContentTop(), vp.ContentBottom())
	}
	return scale.NewClip(vp.ContentLeft(), vp.ContentRight())
}

// across draws a line across the content area at pixel p along the
// axis.
func (r *AxisRenderer) across(c Canvas, p float64) {
	vp := r.Viewport
	if r.vertical() {
		c.Line(vp.ContentLeft(), p, vp.ContentRight(), p)
	} else {
		c.Line(p, vp.ContentTop(), p, vp.ContentBottom())
	}
}

// RenderGridLines draws a line across the content area at each
// entry.
func (r *AxisRenderer) RenderGridLines(c Canvas) {
	st := r.Style
	if !st.DrawGridLines || st.GridColor == nil {
		return
	}
	c.SetStroke(st.GridColor)
	c.SetLineWidth(st.GridWidth)
	c.SetDash(st.GridDash)
	ps, _ := r.clip().Filter(r.pixels(r.Axis.Ticks.Entries))
	for _, p := range ps {
		r.across(c, p)
	}
	c.SetDash(nil)
}

// RenderLabels draws the label of each entry. If labels are
// centered, they are drawn at the centered positions. The label of
// the last entry is drawn only if the axis has DrawTopLabel set.
func (r *AxisRenderer) RenderLabels(c Canvas) {
	st := r.Style
	if !st.DrawLabels || st.LabelColor == nil {
		return
	}
	set := r.Axis.Ticks
	pos := set.Entries
	if r.Axis.Spec.CenterLabels && len(set.Centered) == len(set.Entries) {
		pos = set.Centered
	}
	n := len(pos)
	if !r.Axis.DrawTopLabel {
		n--
	}
	if n <= 0 {
		return
	}

	c.SetFill(st.LabelColor)
	vp := r.Viewport
	ps, idx := r.clip().Filter(r.pixels(pos[:n]))
	for i, p := range ps {
		label := r.Axis.Label(idx[i])
		if r.vertical() {
			c.Text(vp.ContentLeft()-st.LabelOffset, p, AlignRight, label)
		} else {
			c.Text(p, vp.ContentBottom()+st.LabelOffset+st.FontSize/2, AlignCenter, label)
		}
	}
}

// RenderAxisLine draws the axis line along the edge of the content
// area.
func (r *AxisRenderer) RenderAxisLine(c Canvas) {
	st := r.Style
	if !st.DrawAxisLine || st.AxisColor == nil {
		return
	}
	c.SetStroke(st.AxisColor)
	c.SetLineWidth(st.AxisWidth)
	vp := r.Viewport
	if r.vertical() {
		c.Line(vp.ContentLeft(), vp.ContentTop(), vp.ContentLeft(), vp.ContentBottom())
	} else {
		c.Line(vp.ContentLeft(), vp.ContentBottom(), vp.ContentRight(), vp.ContentBottom())
	}
}

// RenderZeroLine draws a line across the content area at zero, if
// zero is visible.
func (r *AxisRenderer) RenderZeroLine(c Canvas) {
	st := r.Style
	if !st.DrawZeroLine || st.ZeroLineColor == nil {
		return
	}
	p, ok := r.clip().Of(r.pixels([]float64{0})[0])
	if !ok {
		return
	}
	c.SetStroke(st.ZeroLineColor)
	c.SetLineWidth(st.ZeroLineWidth)
	r.across(c, p)
}

// RenderLimitLines draws each enabled limit line that is visible,
// with its label.
func (r *AxisRenderer) RenderLimitLines(c Canvas) {
	st := r.Style
	if !st.DrawLimitLines || st.LimitLineColor == nil {
		return
	}
	clip := r.clip()
	for _, l := range r.Axis.LimitLines {
		if !l.Enabled {
			continue
		}
		p, ok := clip.Of(r.pixels([]float64{l.Value})[0])
		if !ok {
			continue
		}
		c.SetStroke(st.LimitLineColor)
		c.SetLineWidth(st.LimitLineWidth)
		c.SetDash(st.LimitLineDash)
		r.across(c, p)
		c.SetDash(nil)

		if l.Label != "" && st.LabelColor != nil {
			c.SetFill(st.LabelColor)
			x, y, align := r.limitLabel(l.Position, p)
			c.Text(x, y, align, l.Label)
		}
	}
}

// limitLabel returns where to draw the label of a limit line at
// pixel p.
func (r *AxisRenderer) limitLabel(pos axis.LabelPosition, p float64) (x, y float64, align Align) {
	vp := r.Viewport
	off := r.Style.LabelOffset + r.Style.LimitLineWidth/2
	half := r.Style.FontSize / 2
	right := pos == axis.RightTop || pos == axis.RightBottom
	top := pos == axis.RightTop || pos == axis.LeftTop

	if r.vertical() {
		// Horizontal line at y = p.
		x, align = vp.ContentLeft()+r.Style.LabelOffset, AlignLeft
		if right {
			x, align = vp.ContentRight()-r.Style.LabelOffset, AlignRight
		}
		y = p + off + half
		if top {
			y = p - off - half
		}
		return
	}

	// Vertical line at x = p.
	x, align = p-off, AlignRight
	if right {
		x, align = p+off, AlignLeft
	}
	y = vp.ContentBottom() - r.Style.LabelOffset - half
	if top {
		y = vp.ContentTop() + r.Style.LabelOffset + half
	}
	return
}

// Render draws every part of the axis enabled in the style.
func (r *AxisRenderer) Render(c Canvas) {
	r.RenderGridLines(c)
	r.RenderZeroLine(c)
	r.RenderLimitLines(c)
	r.RenderAxisLine(c)
	r.RenderLabels(c)
}
