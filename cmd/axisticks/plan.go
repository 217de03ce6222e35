// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"

	"github.com/aclements/go-axis/axis"
	"github.com/aclements/go-axis/config"
)

func newPlanCmd() *cobra.Command {
	var (
		f           tickFlags
		orientation string
		width       int
		height      int
		zoom        float64
		pan         float64
		inverted    bool
	)
	def := config.Default().Chart
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the ticks of a zoomed and panned chart axis",
		Long: `Plan lays out a chart, zooms it about the center of the content
area along the axis, pans it, and prints the visible range and its ticks.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg := config.Default()
			if err := cfg.Axis.Orientation.UnmarshalText([]byte(orientation)); err != nil {
				return err
			}
			ac := f.axisConfig()
			ac.Orientation = cfg.Axis.Orientation
			ac.Inverted = inverted
			cfg.Axis = ac
			cfg.Chart.Width, cfg.Chart.Height = width, height
			cfg.Chart.Zoom, cfg.Chart.Pan = zoom, pan
			if err := cfg.Validate(); err != nil {
				return err
			}

			vp := cfg.Chart.NewViewport(ac.Orientation)
			tr := cfg.NewTransformer(vp, f.min, f.max)
			a, err := cfg.NewAxis()
			if err != nil {
				return err
			}
			min, max := axis.Range(f.min, f.max, a.Inverted, vp, tr, a.Orientation)
			logger.Debug("visible range", "min", min, "max", max, "scaleX", vp.ScaleX(), "scaleY", vp.ScaleY())
			a.Compute(f.min, f.max, vp, tr)
			return newResult(min, max, a.Ticks, a.Formatter).write(cmd.OutOrStdout(), f.json)
		},
	}
	f.register(cmd.Flags())
	cmd.Flags().StringVar(&orientation, "orientation", "vertical", "axis orientation: vertical or horizontal")
	cmd.Flags().IntVar(&width, "width", def.Width, "chart width in pixels")
	cmd.Flags().IntVar(&height, "height", def.Height, "chart height in pixels")
	cmd.Flags().Float64Var(&zoom, "zoom", 1, "zoom factor along the axis")
	cmd.Flags().Float64Var(&pan, "pan", 0, "pan along the axis in pixels")
	cmd.Flags().BoolVar(&inverted, "inverted", false, "invert the axis")
	return cmd
}
