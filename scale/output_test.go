// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClip(t *testing.T) {
	crop := NewClip(85, 5)
	clampc := Clip{5, 85, Clamp}
	none := Clip{5, 85, Unclamped}

	tests := []struct {
		name string
		c    Clip
		x    float64
		y    float64
		ok   bool
	}{
		{"crop inside", crop, 40, 40, true},
		{"crop bound", crop, 4.999, 4.999, true},
		{"crop below", crop, 4, 0, false},
		{"crop above", crop, 86, 0, false},
		{"crop nan", crop, math.NaN(), math.NaN(), false},
		{"clamp below", clampc, -3, 5, true},
		{"clamp above", clampc, 100, 85, true},
		{"unclamped", none, 100, 100, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, ok := tt.c.Of(tt.x)
			assert.Equal(t, tt.ok, ok)
			if !ok || math.IsNaN(tt.y) {
				return
			}
			assert.Equal(t, tt.y, y)
		})
	}
}

func TestClipFilter(t *testing.T) {
	ys, idx := NewClip(0, 10).Filter([]float64{-1, 0, 5, 11, 10})
	assert.Equal(t, []float64{0, 5, 10}, ys)
	assert.Equal(t, []int{1, 2, 4}, idx)
}

func TestExtent(t *testing.T) {
	min, max, ok := Extent([]float64{3, math.NaN(), -1, math.Inf(1), 7})
	assert.True(t, ok)
	assert.Equal(t, -1.0, min)
	assert.Equal(t, 7.0, max)

	_, _, ok = Extent([]float64{math.NaN()})
	assert.False(t, ok)
	_, _, ok = Extent(nil)
	assert.False(t, ok)
}
