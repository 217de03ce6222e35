// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/aclements/go-axis/axis"
	"github.com/aclements/go-axis/render"
	"github.com/aclements/go-axis/scale"
	"github.com/aclements/go-axis/ticks"
)

// ParseColor parses a "#rgb" or "#rrggbb" hex triplet. "none" and ""
// give a nil color.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") {
		return nil, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("%w %q", ErrInvalidColor, s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 0xff}, nil
}

// RenderStyle converts s to a render.Style.
func (s Style) RenderStyle() (render.Style, error) {
	st := render.Style{
		DrawGridLines:  s.DrawGridLines,
		DrawLabels:     s.DrawLabels,
		DrawAxisLine:   s.DrawAxisLine,
		DrawZeroLine:   s.DrawZeroLine,
		DrawLimitLines: s.DrawLimitLines,

		GridWidth:      s.GridWidth,
		GridDash:       s.GridDash,
		AxisWidth:      s.AxisWidth,
		ZeroLineWidth:  s.ZeroLineWidth,
		LimitLineWidth: s.LimitLineWidth,
		LimitLineDash:  s.LimitLineDash,
		FontSize:       s.FontSize,
		LabelOffset:    s.LabelOffset,
	}
	for _, c := range []struct {
		name string
		s    string
		dst  *color.Color
	}{
		{"grid_color", s.GridColor, &st.GridColor},
		{"axis_color", s.AxisColor, &st.AxisColor},
		{"zero_line_color", s.ZeroLineColor, &st.ZeroLineColor},
		{"limit_line_color", s.LimitLineColor, &st.LimitLineColor},
		{"label_color", s.LabelColor, &st.LabelColor},
	} {
		col, err := ParseColor(c.s)
		if err != nil {
			return render.Style{}, fmt.Errorf("style.%s: %w", c.name, err)
		}
		*c.dst = col
	}
	return st, nil
}

// NewFormatter returns the label formatter named by a.Formatter.
func (a Axis) NewFormatter() (ticks.Formatter, error) {
	switch a.Formatter {
	case "", "default":
		return ticks.DefaultFormatter{}, nil
	case "si":
		return ticks.SIFormatter{Unit: a.Unit}, nil
	case "clock":
		f := ticks.ClockFormatter{Unit: time.Minute}
		if a.Policy == ticks.SnapSeconds {
			f.Unit = time.Second
		}
		if a.Unit != "" {
			d, err := time.ParseDuration(a.Unit)
			if err != nil {
				return nil, fmt.Errorf("axis.unit: %w", err)
			}
			f.Unit = d
		}
		return f, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownFormatter, a.Formatter)
}

// Spec returns the tick specification of a.
func (a Axis) Spec() axis.Spec {
	return axis.Spec{
		LabelCount:         a.LabelCount,
		GranularityEnabled: a.GranularityEnabled,
		Granularity:        a.Granularity,
		CenterLabels:       a.CenterLabels,
		ForceLabelCount:    a.ForceLabelCount,
		MinMaxOnly:         a.MinMaxOnly,
		Policy:             a.Policy,
	}
}

// NewAxis returns an axis configured by c, with its limit lines.
func (c *Config) NewAxis() (*axis.Axis, error) {
	f, err := c.Axis.NewFormatter()
	if err != nil {
		return nil, err
	}
	a := axis.New(c.Axis.Orientation)
	a.Spec = c.Axis.Spec()
	a.Inverted = c.Axis.Inverted
	a.Formatter = f
	a.DrawTopLabel = c.Axis.DrawTopLabel
	for _, l := range c.LimitLines {
		a.AddLimitLine(&axis.LimitLine{
			Value:    l.Value,
			Label:    l.Label,
			Position: l.Position,
			Enabled:  !l.Disabled,
		})
	}
	return a, nil
}

// Range returns the configured data range, falling back to [min, max]
// for bounds that are not set.
func (a Axis) Range(min, max float64) (float64, float64) {
	if a.Min != nil {
		min = *a.Min
	}
	if a.Max != nil {
		max = *a.Max
	}
	return min, max
}

// NewViewport returns the viewport of the chart, zoomed and panned
// along orientation o.
func (ch Chart) NewViewport(o axis.Orientation) *scale.Viewport {
	vp := scale.NewViewport(float64(ch.Width), float64(ch.Height))
	off := ch.Offsets
	vp.SetOffsets(off.Left, off.Top, off.Right, off.Bottom)
	zoom := ch.Zoom
	if !(zoom > 0) {
		zoom = 1
	}
	cx, cy := vp.ContentWidth()/2, vp.ContentHeight()/2
	if o == axis.Horizontal {
		vp.Zoom(zoom, 1, cx, cy)
		vp.Translate(ch.Pan, 0)
	} else {
		vp.Zoom(1, zoom, cx, cy)
		vp.Translate(0, ch.Pan)
	}
	return vp
}

// NewTransformer returns a transformer that shows [min, max] along the
// configured axis on vp. The other dimension spans [0, 1].
func (c *Config) NewTransformer(vp *scale.Viewport, min, max float64) *scale.Transformer {
	if c.Axis.Orientation == axis.Horizontal {
		if c.Axis.Inverted {
			// Larger values on the left.
			min, max = max, min
		}
		return scale.NewTransformer(vp, min, max, 0, 1)
	}
	tr := scale.NewTransformer(vp, 0, 1, min, max)
	tr.Inverted = c.Axis.Inverted
	return tr
}
