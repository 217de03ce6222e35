// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aclements/go-axis/config"
	"github.com/aclements/go-axis/internal/dataset"
	"github.com/aclements/go-axis/render"
	"github.com/aclements/go-axis/scale"
)

var errNoRange = errors.New("no data range: use --data, or --min and --max")

func newRenderCmd() *cobra.Command {
	var (
		configPath string
		dataPath   string
		column     int
		output     string
		min, max   float64
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw an axis to SVG or PNG",
		Long: `Render draws the grid lines, labels, axis line, zero line, and limit
lines of one axis. The chart is described by a TOML file (see
"axisticks config"). The data range comes from --min and --max, the
axis.min and axis.max settings, or a column of a CSV, TSV, or XLSX
file, in that order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg := config.Default()
			if configPath != "" {
				var err error
				if cfg, err = config.Load(configPath); err != nil {
					return err
				}
				for _, k := range cfg.Unknown {
					logger.Warn("unknown config key", "file", configPath, "key", k)
				}
			}
			if cmd.Flags().Changed("min") {
				cfg.Axis.Min = &min
			}
			if cmd.Flags().Changed("max") {
				cfg.Axis.Max = &max
			}

			lo, hi, ok := 0.0, 0.0, false
			if dataPath != "" {
				vals, err := dataset.Load(dataPath, column)
				if err != nil {
					return err
				}
				lo, hi, ok = scale.Extent(vals)
				logger.Debug("loaded data", "file", dataPath, "values", len(vals), "min", lo, "max", hi)
			}
			if !ok && (cfg.Axis.Min == nil || cfg.Axis.Max == nil) {
				return errNoRange
			}
			lo, hi = cfg.Axis.Range(lo, hi)

			var n int
			err := writeFile(output, func(w io.Writer) (err error) {
				n, err = draw(w, strings.ToLower(filepath.Ext(output)), cfg, lo, hi)
				return err
			})
			if err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "wrote %s (%d ticks)", output, n)
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "chart description `file` (TOML)")
	cmd.Flags().StringVar(&dataPath, "data", "", "read the data range from `file` (.csv, .tsv, or .xlsx)")
	cmd.Flags().IntVar(&column, "column", 1, "data column, counting from 1")
	cmd.Flags().StringVarP(&output, "output", "o", "axis.svg", "output `file` (.svg or .png)")
	cmd.Flags().Float64Var(&min, "min", 0, "axis minimum")
	cmd.Flags().Float64Var(&max, "max", 0, "axis maximum")
	return cmd
}

// draw renders the axis described by cfg for [min, max] to w in the
// format given by ext. It returns the number of ticks.
func draw(w io.Writer, ext string, cfg *config.Config, min, max float64) (int, error) {
	vp := cfg.Chart.NewViewport(cfg.Axis.Orientation)
	tr := cfg.NewTransformer(vp, min, max)
	a, err := cfg.NewAxis()
	if err != nil {
		return 0, err
	}
	a.Compute(min, max, vp, tr)

	r := render.NewAxisRenderer(a, vp, tr)
	if r.Style, err = cfg.Style.RenderStyle(); err != nil {
		return 0, err
	}
	bg, err := config.ParseColor(cfg.Chart.Background)
	if err != nil {
		return 0, fmt.Errorf("chart.background: %w", err)
	}

	width, height := cfg.Chart.Width, cfg.Chart.Height
	paint := func(c render.Canvas) {
		if bg != nil {
			c.SetFill(bg)
			c.FillRect(0, 0, float64(width), float64(height))
		}
		r.Render(c)
	}

	switch ext {
	case ".svg":
		svg := render.NewSVG(w, width, height, r.Style.FontSize)
		paint(svg)
		err = svg.Done()
	case ".png":
		var img *render.Raster
		if img, err = render.NewRaster(width, height, r.Style.FontSize); err != nil {
			return 0, err
		}
		paint(img)
		if err = img.Err(); err == nil {
			err = img.EncodePNG(w)
		}
	default:
		return 0, fmt.Errorf("unknown output format %q", ext)
	}
	return a.Ticks.Len(), err
}

// writeFile calls fn with the named file, creating it. The file is
// removed if fn fails.
func writeFile(name string, fn func(w io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		os.Remove(name)
		return err
	}
	return f.Close()
}
