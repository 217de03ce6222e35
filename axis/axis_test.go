// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/go-axis/ticks"
)

func TestAxisCompute(t *testing.T) {
	a := New(Vertical)
	assert.Equal(t, 6, a.Spec.LabelCount)

	a.Spec.LabelCount = 5
	a.Compute(0, 97, nil, nil)
	require.Equal(t, []float64{0, 20, 40, 60, 80}, a.Ticks.Entries)
	assert.Equal(t, []string{"0", "20", "40", "60", "80"}, a.Labels())
	assert.Equal(t, "40", a.Label(2))
	assert.Equal(t, "", a.Label(-1))
	assert.Equal(t, "", a.Label(5))

	prev := a.Ticks
	a.Compute(0, 10, nil, nil)
	assert.Equal(t, []float64{0, 20, 40, 60, 80}, prev.Entries, "Compute modified the previous set")
	assert.Equal(t, []float64{0, 5, 10}, a.Ticks.Entries)
}

func TestAxisFormatter(t *testing.T) {
	a := New(Horizontal)
	a.Spec.LabelCount = 5
	a.Spec.Policy = ticks.SnapDecimal
	a.Formatter = ticks.FormatterFunc(func(v float64, decimals int) string {
		return fmt.Sprintf("%.*f%%", decimals, v)
	})
	a.Compute(0, 1, nil, nil)
	assert.Equal(t, []string{"0.0%", "0.5%", "1.0%"}, a.Labels())
	assert.Equal(t, "0.5%", a.Label(1))

	a.Compute(-1000, 10, nil, nil)
	assert.Equal(t, "-1000%", a.LongestLabel())
}

func TestAxisLimitLines(t *testing.T) {
	a := New(Vertical)
	hi := NewLimitLine(90, "max")
	lo := NewLimitLine(10, "min")
	a.AddLimitLine(hi)
	a.AddLimitLine(lo)
	assert.Equal(t, []*LimitLine{hi, lo}, a.LimitLines)

	assert.True(t, a.RemoveLimitLine(hi))
	assert.False(t, a.RemoveLimitLine(hi))
	assert.Equal(t, []*LimitLine{lo}, a.LimitLines)

	a.RemoveAllLimitLines()
	assert.Empty(t, a.LimitLines)
}

func TestLabelPositionText(t *testing.T) {
	for _, p := range []LabelPosition{RightTop, RightBottom, LeftTop, LeftBottom} {
		text, err := p.MarshalText()
		require.NoError(t, err)
		var got LabelPosition
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, p, got)
	}

	var p LabelPosition
	assert.ErrorIs(t, p.UnmarshalText([]byte("middle")), ErrUnknownPosition)
	assert.Equal(t, "LabelPosition(9)", LabelPosition(9).String())
	_, err := LabelPosition(9).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownPosition)
}

func TestOrientationText(t *testing.T) {
	tests := []struct {
		text string
		want Orientation
	}{
		{"vertical", Vertical},
		{"y", Vertical},
		{"horizontal", Horizontal},
		{"x", Horizontal},
	}
	for _, tt := range tests {
		var o Orientation
		require.NoError(t, o.UnmarshalText([]byte(tt.text)))
		assert.Equal(t, tt.want, o)
	}

	var o Orientation
	assert.ErrorIs(t, o.UnmarshalText([]byte("diagonal")), ErrUnknownOrientation)
	text, err := Horizontal.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "horizontal", string(text))
	assert.Equal(t, "Orientation(7)", Orientation(7).String())
	_, err = Orientation(7).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownOrientation)
}
