// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"math"

	"github.com/aclements/go-moremath/vec"
)

// Options controls how Solve lays out ticks.
type Options struct {
	// Count is the desired number of labels. The actual number of
	// ticks is only guaranteed to equal Count if ForceCount is set.
	Count int

	// If GranularityEnabled, the interval is never smaller than
	// Granularity. This avoids repeated labels once values are
	// rounded for display.
	GranularityEnabled bool
	Granularity        float64

	// Policy selects the intervals the tick spacing snaps to.
	Policy SnapPolicy

	// ForceCount lays out exactly Count evenly spaced ticks from
	// min to max, ignoring nice rounding and Policy.
	ForceCount bool

	// Center shifts labels to sit halfway between ticks, as for
	// category axes. The centered positions are returned in
	// Set.Centered.
	Center bool

	// MinMaxOnly places ticks at only min and max. It has no
	// effect if ForceCount is set.
	MinMaxOnly bool
}

// A Set is the result of laying out an axis.
type Set struct {
	// Entries are the tick values in ascending order, starting
	// at or above the low end of the range. Forced layouts are
	// the exception: see Solve.
	Entries []float64

	// Centered are the label positions between ticks. It is
	// non-nil only if Options.Center was set, and is parallel to
	// Entries.
	Centered []float64

	// Decimals is the suggested number of fractional digits for
	// formatting labels.
	Decimals int

	// Interval is the spacing between consecutive entries.
	Interval float64
}

// Len returns the number of entries in s.
func (s Set) Len() int {
	return len(s.Entries)
}

// Empty reports whether s has no entries.
func (s Set) Empty() bool {
	return len(s.Entries) == 0
}

// Solve lays out ticks covering the range between min and max.
//
// min and max may be given in either order. If o.Count is not
// positive or the range is empty, infinite, or NaN, Solve returns an
// empty Set.
//
// With o.ForceCount, entries always start at min and step upward by
// |max-min|/(Count-1). If min > max they therefore run from min to
// 2*min-max, past the data range: Solve(10, 0, ...) with Count 5
// gives 10, 12.5, 15, 17.5, 20.
func Solve(min, max float64, o Options) Set {
	rng := math.Abs(max - min)
	if o.Count <= 0 || !(rng > 0) || math.IsInf(rng, 0) {
		return Set{}
	}

	if o.MinMaxOnly && !o.ForceCount {
		return Set{
			Entries:  []float64{math.Min(min, max), math.Max(min, max)},
			Decimals: Decimals(rng),
			Interval: rng,
		}
	}

	interval := Interval(rng, o)

	var s Set
	if o.ForceCount {
		s = forced(min, rng, o.Count)
	} else {
		s = stepped(min, max, interval, o.Center)
	}
	s.Decimals = Decimals(s.Interval)

	if o.Center {
		offset := s.Interval / 2
		s.Centered = make([]float64, len(s.Entries))
		for i, v := range s.Entries {
			s.Centered[i] = v + offset
		}
	}
	return s
}

// Interval returns the snapped tick interval Solve uses for a range of
// length rng, before any forced label count is applied.
func Interval(rng float64, o Options) float64 {
	if o.Count <= 0 || !(rng > 0) || math.IsInf(rng, 0) {
		return 0
	}

	raw := rng / float64(o.Count)
	interval := RoundToNextSignificant(raw)

	if o.GranularityEnabled && interval < o.Granularity {
		interval = o.Granularity
	}

	// Use one order of magnitude higher to avoid intervals like
	// 0.9 or 90.
	magnitude := RoundToNextSignificant(math.Pow(10, math.Floor(math.Log10(interval))))
	if sig := math.Floor(interval / magnitude); sig > 5 {
		interval = math.Floor(10 * magnitude)
		if interval == 0 {
			// magnitude is below 0.1. Every policy except
			// SnapOff floors this anyway.
			interval = 10 * magnitude
		}
	}

	return o.Policy.Snap(interval)
}

// forced lays out exactly count ticks from min, spaced rng/(count-1)
// apart.
func forced(min, rng float64, count int) Set {
	if count == 1 {
		return Set{Entries: []float64{min}, Interval: rng}
	}
	return Set{
		Entries:  vec.Linspace(min, min+rng, count),
		Interval: rng / float64(count-1),
	}
}

// stepped lays out ticks at multiples of interval between min and
// max.
func stepped(min, max, interval float64, center bool) Set {
	var first, last float64
	if interval != 0 {
		first = math.Ceil(min/interval) * interval
		// Nudge last up so rounding error in the division
		// doesn't drop the final tick.
		last = nextUp(math.Floor(max/interval) * interval)
	}
	if center {
		first -= interval
	}

	n := 0
	if center {
		n = 1
	}
	if interval != 0 && last != first {
		for i := 0; first+float64(i)*interval <= last; i++ {
			n++
		}
	}

	entries := make([]float64, n)
	for i := range entries {
		v := first + float64(i)*interval
		if v == 0 {
			// Normalize -0 to +0.
			v = 0
		}
		entries[i] = v
	}
	return Set{Entries: entries, Interval: interval}
}
