// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAffineApply(t *testing.T) {
	tests := []struct {
		name   string
		m      Affine
		x, y   float64
		wx, wy float64
	}{
		{"identity", Identity, 3, 4, 3, 4},
		{"translate", Translate(10, -5), 3, 4, 13, -1},
		{"scale", Scale(2, 3), 3, 4, 6, 12},
		{"scale then translate", Scale(2, 3).Then(Translate(1, 1)), 3, 4, 7, 13},
		{"translate then scale", Translate(1, 1).Then(Scale(2, 3)), 3, 4, 8, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := tt.m.Apply(tt.x, tt.y)
			assert.InDelta(t, tt.wx, x, 1e-12)
			assert.InDelta(t, tt.wy, y, 1e-12)
		})
	}
}

func TestAffineInvert(t *testing.T) {
	m := Translate(-7, 3).Then(Scale(4, 0.5)).Then(Translate(20, 1))
	inv, ok := m.Invert()
	require.True(t, ok)

	for _, p := range [][2]float64{{0, 0}, {1, 2}, {-15, 42.5}} {
		x, y := inv.Apply(m.Apply(p[0], p[1]))
		assert.InDelta(t, p[0], x, 1e-9)
		assert.InDelta(t, p[1], y, 1e-9)
	}

	_, ok = Scale(0, 1).Invert()
	assert.False(t, ok)
}
