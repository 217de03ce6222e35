// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config reads chart descriptions from TOML.
//
// A description has a [chart] table for the surface, an [axis] table
// for tick placement and labels, a [style] table for colors and line
// widths, and any number of [[limit_line]] tables. Keys that are
// missing keep the values of Default.
package config // import "github.com/aclements/go-axis/config"

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/aclements/go-axis/axis"
	"github.com/aclements/go-axis/ticks"
)

var (
	// ErrInvalidColor is returned for colors that are neither
	// "none" nor hex triplets.
	ErrInvalidColor = errors.New("invalid color")
	// ErrInvalidSize is returned for charts with no content area.
	ErrInvalidSize = errors.New("invalid chart size")
	// ErrUnknownFormatter is returned for unknown label formatters.
	ErrUnknownFormatter = errors.New("unknown formatter")
	// ErrInvalidDash is returned for dash patterns with entries
	// shorter than MinDash or not finite.
	ErrInvalidDash = errors.New("invalid dash pattern")
)

// MinDash is the shortest dash or gap, in pixels, a pattern may use.
const MinDash = 0.1

type Config struct {
	Chart      Chart       `toml:"chart"`
	Axis       Axis        `toml:"axis"`
	Style      Style       `toml:"style"`
	LimitLines []LimitLine `toml:"limit_line"`

	// Unknown lists the keys of the input that were not used.
	Unknown []string `toml:"-"`
}

// Chart describes the drawing surface.
type Chart struct {
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	Offsets    Offsets `toml:"offsets"`
	Background string  `toml:"background"`

	// Zoom is the zoom factor along the axis, about the center of
	// the content area. Pan moves the zoomed content by that many
	// pixels along the axis.
	Zoom float64 `toml:"zoom"`
	Pan  float64 `toml:"pan"`
}

// Offsets is the space between each edge of the chart and its
// content area.
type Offsets struct {
	Left   float64 `toml:"left"`
	Top    float64 `toml:"top"`
	Right  float64 `toml:"right"`
	Bottom float64 `toml:"bottom"`
}

// Axis describes the axis being drawn and how its ticks are placed.
type Axis struct {
	Orientation axis.Orientation `toml:"orientation"`
	Inverted    bool             `toml:"inverted"`

	LabelCount         int              `toml:"label_count"`
	ForceLabelCount    bool             `toml:"force_label_count"`
	GranularityEnabled bool             `toml:"granularity_enabled"`
	Granularity        float64          `toml:"granularity"`
	CenterLabels       bool             `toml:"center_labels"`
	MinMaxOnly         bool             `toml:"min_max_only"`
	Policy             ticks.SnapPolicy `toml:"policy"`

	// Formatter is "default", "si", or "clock". Unit is the SI
	// unit suffix or the clock duration of one axis unit, such as
	// "1m".
	Formatter    string `toml:"formatter"`
	Unit         string `toml:"unit"`
	DrawTopLabel bool   `toml:"draw_top_label"`

	// Min and Max fix the data range. If unset, the range comes
	// from the data.
	Min *float64 `toml:"min,omitempty"`
	Max *float64 `toml:"max,omitempty"`
}

// Style holds colors as "#rgb" or "#rrggbb" hex triplets, or "none".
type Style struct {
	DrawGridLines  bool `toml:"draw_grid_lines"`
	DrawLabels     bool `toml:"draw_labels"`
	DrawAxisLine   bool `toml:"draw_axis_line"`
	DrawZeroLine   bool `toml:"draw_zero_line"`
	DrawLimitLines bool `toml:"draw_limit_lines"`

	GridColor string    `toml:"grid_color"`
	GridWidth float64   `toml:"grid_width"`
	GridDash  []float64 `toml:"grid_dash"`

	AxisColor string  `toml:"axis_color"`
	AxisWidth float64 `toml:"axis_width"`

	ZeroLineColor string  `toml:"zero_line_color"`
	ZeroLineWidth float64 `toml:"zero_line_width"`

	LimitLineColor string    `toml:"limit_line_color"`
	LimitLineWidth float64   `toml:"limit_line_width"`
	LimitLineDash  []float64 `toml:"limit_line_dash"`

	LabelColor  string  `toml:"label_color"`
	FontSize    float64 `toml:"font_size"`
	LabelOffset float64 `toml:"label_offset"`
}

type LimitLine struct {
	Value    float64            `toml:"value"`
	Label    string             `toml:"label"`
	Position axis.LabelPosition `toml:"position"`
	Disabled bool               `toml:"disabled"`
}

// Default returns the configuration of a 640x400 chart with a
// vertical axis.
func Default() *Config {
	spec := axis.DefaultSpec()
	return &Config{
		Chart: Chart{
			Width:      640,
			Height:     400,
			Offsets:    Offsets{Left: 50, Top: 20, Right: 20, Bottom: 40},
			Background: "#ffffff",
			Zoom:       1,
		},
		Axis: Axis{
			Orientation:  axis.Vertical,
			LabelCount:   spec.LabelCount,
			Granularity:  spec.Granularity,
			Policy:       spec.Policy,
			Formatter:    "default",
			DrawTopLabel: true,
		},
		Style: Style{
			DrawGridLines:  true,
			DrawLabels:     true,
			DrawAxisLine:   true,
			DrawLimitLines: true,

			GridColor:      "#e0e0e0",
			GridWidth:      0.5,
			AxisColor:      "#808080",
			AxisWidth:      1,
			ZeroLineColor:  "#808080",
			ZeroLineWidth:  1,
			LimitLineColor: "#ed5b5b",
			LimitLineWidth: 2,
			LabelColor:     "#000000",
			FontSize:       10,
			LabelOffset:    5,
		},
	}
}

// Parse decodes a TOML chart description on top of Default.
func Parse(data string) (*Config, error) {
	c := Default()
	md, err := toml.Decode(data, c)
	if err != nil {
		return nil, err
	}
	return c.finish(md)
}

// Load reads a TOML chart description from the named file.
func Load(name string) (*Config, error) {
	c := Default()
	md, err := toml.DecodeFile(name, c)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return c.finish(md)
}

func (c *Config) finish(md toml.MetaData) (*Config, error) {
	for _, k := range md.Undecoded() {
		c.Unknown = append(c.Unknown, k.String())
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that c describes a drawable chart.
func (c *Config) Validate() error {
	ch := c.Chart
	if ch.Width <= 0 || ch.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, ch.Width, ch.Height)
	}
	o := ch.Offsets
	if !(o.Left+o.Right < float64(ch.Width)) || !(o.Top+o.Bottom < float64(ch.Height)) {
		return fmt.Errorf("%w: offsets %+v leave no content in %dx%d", ErrInvalidSize, o, ch.Width, ch.Height)
	}
	if _, err := c.Axis.NewFormatter(); err != nil {
		return err
	}
	if err := checkDash("style.grid_dash", c.Style.GridDash); err != nil {
		return err
	}
	if err := checkDash("style.limit_line_dash", c.Style.LimitLineDash); err != nil {
		return err
	}
	_, err := c.Style.RenderStyle()
	return err
}

func checkDash(key string, dash []float64) error {
	for _, d := range dash {
		if !(d >= MinDash) || math.IsInf(d, 0) {
			return fmt.Errorf("%s: %w %v", key, ErrInvalidDash, dash)
		}
	}
	return nil
}

// Write encodes c as TOML.
func (c *Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
