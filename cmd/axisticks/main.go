// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command axisticks computes "nice" tick positions for a chart axis
// and draws axes to SVG or PNG.
//
// To print the ticks for a range:
//
//	axisticks solve --min 0 --max 97 --count 5
//
// To see how zooming changes the ticks of a vertical axis:
//
//	axisticks plan --min 0 --max 1000 --zoom 4 --pan 200
//
// To draw an axis for a column of a CSV or XLSX file:
//
//	axisticks render -c chart.toml --data latency.csv --column 2 -o axis.svg
//
// "axisticks config" prints the default chart description, which is
// a starting point for chart.toml.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Set by -ldflags "-X main.version=... -X main.commit=...".
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "axisticks",
		Short:         "Compute and draw chart axis ticks",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(stderr, level)))
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate(fmt.Sprintf("axisticks %s (%s)\n", version, commit))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newPlanCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newConfigCmd())
	return root
}
