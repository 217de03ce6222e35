// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	mscale "github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/vec"
)

// Transformer maps data coordinates to pixels of a Viewport's content
// rectangle and back.
//
// X and Y map the visible data domain to [0, 1]. Y is flipped so that
// larger values are drawn higher, unless Inverted is set.
type Transformer struct {
	X, Y     mscale.Linear
	Inverted bool

	vp *Viewport
}

// NewTransformer returns a Transformer that shows [xmin, xmax] by
// [ymin, ymax] on vp.
func NewTransformer(vp *Viewport, xmin, xmax, ymin, ymax float64) *Transformer {
	return &Transformer{
		X:  mscale.Linear{Min: xmin, Max: xmax},
		Y:  mscale.Linear{Min: ymin, Max: ymax},
		vp: vp,
	}
}

// Viewport returns the viewport t draws on.
func (t *Transformer) Viewport() *Viewport {
	return t.vp
}

// PixelFor returns the pixel at which the data point (x, y) is drawn.
func (t *Transformer) PixelFor(x, y float64) (px, py float64) {
	ux, uy := t.X.Map(x), t.Y.Map(y)
	if !t.Inverted {
		uy = 1 - uy
	}
	px, py = t.vp.touch.Apply(ux*t.vp.ContentWidth(), uy*t.vp.ContentHeight())
	return px + t.vp.ContentLeft(), py + t.vp.ContentTop()
}

// ValueAt returns the data point drawn at pixel (px, py).
func (t *Transformer) ValueAt(px, py float64) (x, y float64) {
	inv, _ := t.vp.touch.Invert()
	cx, cy := inv.Apply(px-t.vp.ContentLeft(), py-t.vp.ContentTop())
	ux := cx / t.vp.ContentWidth()
	uy := cy / t.vp.ContentHeight()
	if !t.Inverted {
		uy = 1 - uy
	}
	return t.X.Unmap(ux), t.Y.Unmap(uy)
}

// PixelsX returns the horizontal pixel of each x value.
func (t *Transformer) PixelsX(xs []float64) []float64 {
	return vec.Map(func(x float64) float64 {
		px, _ := t.PixelFor(x, t.Y.Min)
		return px
	}, xs)
}

// PixelsY returns the vertical pixel of each y value.
func (t *Transformer) PixelsY(ys []float64) []float64 {
	return vec.Map(func(y float64) float64 {
		_, py := t.PixelFor(t.X.Min, y)
		return py
	}, ys)
}
