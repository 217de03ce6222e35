// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/aclements/go-axis/axis"
	"github.com/aclements/go-axis/config"
	"github.com/aclements/go-axis/ticks"
)

// tickFlags are the flags that control tick placement.
type tickFlags struct {
	min, max    float64
	count       int
	policy      ticks.SnapPolicy
	granularity float64
	force       bool
	center      bool
	minMax      bool
	format      string
	unit        string
	json        bool
}

func (f *tickFlags) register(fs *pflag.FlagSet) {
	fs.Float64Var(&f.min, "min", 0, "axis minimum")
	fs.Float64Var(&f.max, "max", 100, "axis maximum")
	fs.IntVarP(&f.count, "count", "n", axis.DefaultSpec().LabelCount, "target number of labels")
	fs.Var(&f.policy, "policy", "interval snapping: none, decimal, minutes, seconds, or off")
	fs.Float64Var(&f.granularity, "granularity", 0, "minimum interval between ticks (0 for none)")
	fs.BoolVar(&f.force, "force", false, "place exactly --count evenly spaced ticks")
	fs.BoolVar(&f.center, "center", false, "center labels between ticks")
	fs.BoolVar(&f.minMax, "minmax", false, "place ticks only at the minimum and maximum")
	fs.StringVar(&f.format, "format", "default", "label format: default, si, or clock")
	fs.StringVar(&f.unit, "unit", "", "SI unit suffix, or clock duration of one axis unit")
	fs.BoolVar(&f.json, "json", false, "print JSON")
}

// axisConfig returns the axis configuration described by f.
func (f *tickFlags) axisConfig() config.Axis {
	return config.Axis{
		LabelCount:         f.count,
		ForceLabelCount:    f.force,
		GranularityEnabled: f.granularity > 0,
		Granularity:        f.granularity,
		CenterLabels:       f.center,
		MinMaxOnly:         f.minMax,
		Policy:             f.policy,
		Formatter:          f.format,
		Unit:               f.unit,
		DrawTopLabel:       true,
	}
}

func newSolveCmd() *cobra.Command {
	var f tickFlags
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Print the ticks for a range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			ac := f.axisConfig()
			fmtr, err := ac.NewFormatter()
			if err != nil {
				return err
			}
			o := ac.Spec().Options()
			logger.Debug("solving", "min", f.min, "max", f.max, "options", o)
			s := ticks.Solve(f.min, f.max, o)
			if s.Empty() {
				logger.Warn("no ticks", "min", f.min, "max", f.max, "count", f.count)
			}
			return newResult(f.min, f.max, s, fmtr).write(cmd.OutOrStdout(), f.json)
		},
	}
	f.register(cmd.Flags())
	return cmd
}
