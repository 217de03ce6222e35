// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRaster(t *testing.T) *Raster {
	r, err := NewRaster(50, 50, 12)
	require.NoError(t, err)
	r.SetFill(color.White)
	r.FillRect(0, 0, 50, 50)
	return r
}

func countInk(img *image.RGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) != (color.RGBA{0xff, 0xff, 0xff, 0xff}) {
				n++
			}
		}
	}
	return n
}

func TestRasterLine(t *testing.T) {
	r := newTestRaster(t)
	r.SetStroke(color.RGBA{0xff, 0, 0, 0xff})
	r.SetLineWidth(2)
	r.Line(0, 25, 50, 25)

	c := r.Image().RGBAAt(25, 25)
	assert.Greater(t, c.R, uint8(200))
	assert.Less(t, c.G, uint8(50))
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, r.Image().RGBAAt(25, 10))

	r.SetStroke(nil)
	r.Line(0, 10, 50, 10)
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, r.Image().RGBAAt(25, 10))
}

func TestRasterDash(t *testing.T) {
	r := newTestRaster(t)
	r.SetLineWidth(2)
	r.SetDash([]float64{10, 10})
	r.Line(0, 25, 50, 25)

	assert.NotEqual(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, r.Image().RGBAAt(5, 25))
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, r.Image().RGBAAt(15, 25))
}

func TestRasterText(t *testing.T) {
	r := newTestRaster(t)
	r.SetFill(color.Black)
	r.Text(25, 25, AlignCenter, "88")
	require.NoError(t, r.Err())
	assert.Greater(t, countInk(r.Image()), 0)

	var buf bytes.Buffer
	require.NoError(t, r.EncodePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 50, 50), img.Bounds())
}

func TestDashes(t *testing.T) {
	tests := []struct {
		name string
		dash []float64
		want [][4]float64
	}{
		{"solid", nil, [][4]float64{{0, 0, 10, 0}}},
		{"negative", []float64{2, -1}, [][4]float64{{0, 0, 10, 0}}},
		{"zero", []float64{0, 0}, [][4]float64{{0, 0, 10, 0}}},
		{"even", []float64{2, 3}, [][4]float64{{0, 0, 2, 0}, {5, 0, 7, 0}}},
		{"odd", []float64{2}, [][4]float64{{0, 0, 2, 0}, {4, 0, 6, 0}, {8, 0, 10, 0}}},
		{"too fine", []float64{1e-6, 1e-6}, [][4]float64{{0, 0, 10, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dashes(0, 0, 10, 0, tt.dash))
		})
	}
}

func TestDashesLongLine(t *testing.T) {
	segs := dashes(0, 0, 800, 0, []float64{1e-6, 1e-6})
	assert.Equal(t, [][4]float64{{0, 0, 800, 0}}, segs)

	segs = dashes(0, 0, 800, 0, []float64{0.5, 0.5})
	assert.Len(t, segs, 800)
}
