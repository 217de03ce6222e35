// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"errors"
	"fmt"
)

// LabelPosition says where a limit line's label is drawn relative to
// the line.
type LabelPosition int

const (
	RightTop LabelPosition = iota
	RightBottom
	LeftTop
	LeftBottom
)

// ErrUnknownPosition is returned when parsing an unknown label
// position.
var ErrUnknownPosition = errors.New("unknown label position")

var positionNames = []string{
	RightTop:    "right-top",
	RightBottom: "right-bottom",
	LeftTop:     "left-top",
	LeftBottom:  "left-bottom",
}

func (p LabelPosition) String() string {
	if p < 0 || int(p) >= len(positionNames) {
		return fmt.Sprintf("LabelPosition(%d)", int(p))
	}
	return positionNames[p]
}

// MarshalText implements encoding.TextMarshaler.
func (p LabelPosition) MarshalText() ([]byte, error) {
	if p < 0 || int(p) >= len(positionNames) {
		return nil, fmt.Errorf("%w %d", ErrUnknownPosition, int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *LabelPosition) UnmarshalText(text []byte) error {
	for i, name := range positionNames {
		if name == string(text) {
			*p = LabelPosition(i)
			return nil
		}
	}
	return fmt.Errorf("%w %q", ErrUnknownPosition, text)
}

// LimitLine is a line drawn across the chart at a fixed value, such
// as a threshold.
type LimitLine struct {
	Value    float64
	Label    string
	Position LabelPosition
	Enabled  bool
}

// NewLimitLine returns an enabled limit line at value.
func NewLimitLine(value float64, label string) *LimitLine {
	return &LimitLine{Value: value, Label: label, Enabled: true}
}
