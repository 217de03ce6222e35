// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package axis plans the ticks of a chart axis.
//
// Plan narrows the data range to the part of the chart that is
// visible under the current zoom and pan, and then solves for tick
// positions in that range. Axis keeps the configuration and the most
// recent ticks of one axis across frames.
package axis // import "github.com/aclements/go-axis/axis"

import (
	"errors"
	"fmt"

	"github.com/aclements/go-axis/ticks"
)

// MinContentExtent is the content width, in pixels, at or below
// which Plan does not remap the data range.
const MinContentExtent = 10

// Viewport is the part of a chart surface that Plan consults.
type Viewport interface {
	ContentLeft() float64
	ContentTop() float64
	ContentRight() float64
	ContentBottom() float64
	ContentWidth() float64

	FullyZoomedOutX() bool
	FullyZoomedOutY() bool
}

// Transformer maps a pixel back to the data point drawn there.
type Transformer interface {
	ValueAt(px, py float64) (x, y float64)
}

// Orientation is the direction in which an axis runs.
type Orientation int

const (
	// Vertical is a Y axis.
	Vertical Orientation = iota
	// Horizontal is an X axis.
	Horizontal
)

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// ErrUnknownOrientation is returned when parsing an unknown
// orientation.
var ErrUnknownOrientation = errors.New("unknown orientation")

// MarshalText implements encoding.TextMarshaler.
func (o Orientation) MarshalText() ([]byte, error) {
	if o != Vertical && o != Horizontal {
		return nil, fmt.Errorf("%w %d", ErrUnknownOrientation, int(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts
// "vertical" or "y", and "horizontal" or "x".
func (o *Orientation) UnmarshalText(text []byte) error {
	switch string(text) {
	case "vertical", "y":
		*o = Vertical
	case "horizontal", "x":
		*o = Horizontal
	default:
		return fmt.Errorf("%w %q", ErrUnknownOrientation, text)
	}
	return nil
}

// Limits on the label count accepted by Spec.SetLabelCount.
const (
	MinLabels = 2
	MaxLabels = 25
)

// Spec configures how the ticks of an axis are chosen.
type Spec struct {
	// LabelCount is the target number of labels.
	LabelCount int

	// If GranularityEnabled, the interval between ticks is never
	// smaller than Granularity.
	GranularityEnabled bool
	Granularity        float64

	// CenterLabels places labels between ticks rather than on them.
	CenterLabels bool

	// ForceLabelCount spaces exactly LabelCount ticks evenly from
	// min to max.
	ForceLabelCount bool

	// MinMaxOnly places ticks only at min and max.
	MinMaxOnly bool

	Policy ticks.SnapPolicy
}

// DefaultSpec returns the Spec of a newly created axis.
func DefaultSpec() Spec {
	return Spec{LabelCount: 6, Granularity: 1}
}

// SetLabelCount sets the label count, limited to [MinLabels,
// MaxLabels], and whether it is forced.
func (s *Spec) SetLabelCount(n int, force bool) {
	if n < MinLabels {
		n = MinLabels
	} else if n > MaxLabels {
		n = MaxLabels
	}
	s.LabelCount = n
	s.ForceLabelCount = force
}

// Options returns the solver options equivalent to s.
func (s Spec) Options() ticks.Options {
	return ticks.Options{
		Count:              s.LabelCount,
		GranularityEnabled: s.GranularityEnabled,
		Granularity:        s.Granularity,
		Policy:             s.Policy,
		ForceCount:         s.ForceLabelCount,
		Center:             s.CenterLabels,
		MinMaxOnly:         s.MinMaxOnly,
	}
}

// Range returns the data range to place ticks in.
//
// If vp and tr are non-nil, the content area is wider than
// MinContentExtent, and vp is zoomed in along o, the range is the
// span of data values at the edges of the content area. Otherwise it
// is [dataMin, dataMax].
func Range(dataMin, dataMax float64, inverted bool, vp Viewport, tr Transformer, o Orientation) (min, max float64) {
	min, max = dataMin, dataMax
	if vp == nil || tr == nil || !(vp.ContentWidth() > MinContentExtent) {
		return
	}
	switch o {
	case Horizontal:
		if vp.FullyZoomedOutX() {
			return
		}
		left, _ := tr.ValueAt(vp.ContentLeft(), vp.ContentTop())
		right, _ := tr.ValueAt(vp.ContentRight(), vp.ContentTop())
		if inverted {
			return right, left
		}
		return left, right
	default:
		if vp.FullyZoomedOutY() {
			return
		}
		_, top := tr.ValueAt(vp.ContentLeft(), vp.ContentTop())
		_, bottom := tr.ValueAt(vp.ContentLeft(), vp.ContentBottom())
		if inverted {
			return top, bottom
		}
		return bottom, top
	}
}

// Plan returns the ticks for an axis showing [dataMin, dataMax],
// narrowed to the visible range as described by Range.
func Plan(dataMin, dataMax float64, inverted bool, vp Viewport, tr Transformer, o Orientation, spec Spec) ticks.Set {
	min, max := Range(dataMin, dataMax, inverted, vp, tr, o)
	return ticks.Solve(min, max, spec.Options())
}
