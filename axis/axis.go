// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import "github.com/aclements/go-axis/ticks"

// Axis is the state of one chart axis across frames.
type Axis struct {
	Spec        Spec
	Orientation Orientation
	Inverted    bool

	// Ticks is the result of the most recent Compute. It is
	// replaced, never modified.
	Ticks ticks.Set

	// Formatter formats labels. If nil, ticks.DefaultFormatter is
	// used.
	Formatter ticks.Formatter

	// DrawTopLabel draws the label of the last entry.
	DrawTopLabel bool

	LimitLines []*LimitLine
}

// New returns an axis with the default Spec.
func New(o Orientation) *Axis {
	return &Axis{Spec: DefaultSpec(), Orientation: o, DrawTopLabel: true}
}

// Compute replaces a.Ticks with the ticks for [min, max] as seen
// through vp and tr, which may be nil.
func (a *Axis) Compute(min, max float64, vp Viewport, tr Transformer) {
	a.Ticks = Plan(min, max, a.Inverted, vp, tr, a.Orientation, a.Spec)
}

func (a *Axis) formatter() ticks.Formatter {
	if a.Formatter == nil {
		return ticks.DefaultFormatter{}
	}
	return a.Formatter
}

// Label returns the label of entry i, or "" if i is out of range.
func (a *Axis) Label(i int) string {
	if i < 0 || i >= len(a.Ticks.Entries) {
		return ""
	}
	return a.formatter().Format(a.Ticks.Entries[i], a.Ticks.Decimals)
}

// Labels returns the labels of all entries.
func (a *Axis) Labels() []string {
	return a.Ticks.Labels(a.formatter())
}

// LongestLabel returns the widest label by rune count.
func (a *Axis) LongestLabel() string {
	longest := ""
	for _, l := range a.Labels() {
		if len([]rune(l)) > len([]rune(longest)) {
			longest = l
		}
	}
	return longest
}

// AddLimitLine adds l to the axis.
func (a *Axis) AddLimitLine(l *LimitLine) {
	a.LimitLines = append(a.LimitLines, l)
}

// RemoveLimitLine removes l from the axis. It reports whether l was
// present.
func (a *Axis) RemoveLimitLine(l *LimitLine) bool {
	for i, x := range a.LimitLines {
		if x == l {
			a.LimitLines = append(a.LimitLines[:i:i], a.LimitLines[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveAllLimitLines removes every limit line.
func (a *Axis) RemoveAllLimitLines() {
	a.LimitLines = nil
}
