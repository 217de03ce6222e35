// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ticks chooses "nice" tick positions for a chart axis.
//
// Solve takes a data range and a desired label count and returns a
// Set of evenly spaced tick values, snapped to human-friendly
// intervals. The interval is first rounded to a single significant
// digit and then remapped through the bands of a SnapPolicy, which
// selects between plain decimal intervals and time-of-day intervals
// measured in minutes or seconds.
//
// Solve is a pure function. It is cheap enough to call on every frame
// of a pan or zoom, and identical inputs always produce identical
// output. Degenerate input (an empty, infinite, or NaN range, or a
// non-positive label count) yields an empty Set rather than an error.
package ticks // import "github.com/aclements/go-axis/ticks"
