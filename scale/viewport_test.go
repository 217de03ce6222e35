// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestViewport() *Viewport {
	vp := NewViewport(200, 100)
	vp.SetOffsets(10, 5, 10, 15)
	return vp
}

func TestViewportContent(t *testing.T) {
	vp := newTestViewport()
	assert.Equal(t, 10.0, vp.ContentLeft())
	assert.Equal(t, 5.0, vp.ContentTop())
	assert.Equal(t, 190.0, vp.ContentRight())
	assert.Equal(t, 85.0, vp.ContentBottom())
	assert.Equal(t, 180.0, vp.ContentWidth())
	assert.Equal(t, 80.0, vp.ContentHeight())
	assert.True(t, vp.FullyZoomedOutX())
	assert.True(t, vp.FullyZoomedOutY())
}

func TestViewportZoom(t *testing.T) {
	vp := newTestViewport()

	vp.Zoom(2, 1, 90, 0)
	assert.Equal(t, 2.0, vp.ScaleX())
	assert.Equal(t, 1.0, vp.ScaleY())
	assert.Equal(t, -90.0, vp.TransX())
	assert.False(t, vp.FullyZoomedOutX())
	assert.True(t, vp.FullyZoomedOutY())

	// Zooming out past the minimum scale stops at 1.
	vp.Zoom(0.1, 0.1, 0, 0)
	assert.Equal(t, 1.0, vp.ScaleX())
	assert.Equal(t, 0.0, vp.TransX())
	assert.True(t, vp.FullyZoomedOutX())
}

func TestViewportTranslate(t *testing.T) {
	vp := newTestViewport()
	vp.Zoom(2, 2, 0, 0)

	tests := []struct {
		name   string
		dx, dy float64
		tx, ty float64
	}{
		{"inside", -50, -20, -50, -20},
		{"past far edge", -1000, -1000, -180, -80},
		{"past origin", 5000, 5000, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp.Translate(tt.dx, tt.dy)
			assert.Equal(t, tt.tx, vp.TransX())
			assert.Equal(t, tt.ty, vp.TransY())
		})
	}
}

func TestViewportScaleLimits(t *testing.T) {
	vp := newTestViewport()
	vp.SetScaleLimits(1, 4, 2, 0)
	assert.Equal(t, 2.0, vp.ScaleY(), "min Y scale applied to the current matrix")
	assert.False(t, vp.FullyZoomedOutY())

	vp.Zoom(10, 1, 0, 0)
	assert.Equal(t, 4.0, vp.ScaleX())

	vp.Reset()
	assert.Equal(t, 1.0, vp.ScaleX())
	assert.Equal(t, 2.0, vp.ScaleY())
}
