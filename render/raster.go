// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/golang/freetype"
	"github.com/golang/freetype/raster"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// Raster is a Canvas that draws anti-aliased into an RGBA image.
// Text is set in Go Regular.
type Raster struct {
	img     *image.RGBA
	ras     *raster.Rasterizer
	painter *raster.RGBAPainter
	text    *freetype.Context
	face    font.Face
	err     error

	stroke, fill color.Color
	lineWidth    float64
	dash         []float64
}

// NewRaster returns a transparent width x height canvas that draws
// text at fontSize pixels.
func NewRaster(width, height int, fontSize float64) (*Raster, error) {
	ft, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	r := &Raster{
		img:       img,
		ras:       raster.NewRasterizer(width, height),
		painter:   raster.NewRGBAPainter(img),
		text:      freetype.NewContext(),
		face:      truetype.NewFace(ft, &truetype.Options{Size: fontSize, DPI: 72}),
		lineWidth: 1,
	}
	r.text.SetDPI(72)
	r.text.SetFont(ft)
	r.text.SetFontSize(fontSize)
	r.text.SetDst(img)
	r.text.SetClip(img.Bounds())
	r.SetStroke(color.Black)
	r.SetFill(color.Black)
	return r, nil
}

// Image returns the image r draws into.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// EncodePNG writes the image as a PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	return png.Encode(w, r.img)
}

// Err returns the first error encountered while drawing text.
func (r *Raster) Err() error {
	return r.err
}

func (r *Raster) SetStroke(c color.Color) { r.stroke = c }

func (r *Raster) SetFill(c color.Color) {
	r.fill = c
	if c != nil {
		r.text.SetSrc(image.NewUniform(c))
	}
}

func (r *Raster) SetLineWidth(w float64) { r.lineWidth = w }

func (r *Raster) SetDash(dash []float64) {
	r.dash = append([]float64(nil), dash...)
}

func fix(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func pt(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fix(x), Y: fix(y)}
}

func (r *Raster) Line(x1, y1, x2, y2 float64) {
	if r.stroke == nil || !(r.lineWidth > 0) {
		return
	}
	r.ras.Clear()
	for _, s := range dashes(x1, y1, x2, y2, r.dash) {
		var p raster.Path
		p.Start(pt(s[0], s[1]))
		p.Add1(pt(s[2], s[3]))
		r.ras.AddStroke(p, fix(r.lineWidth), raster.ButtCapper, raster.BevelJoiner)
	}
	r.painter.SetColor(r.stroke)
	r.ras.Rasterize(r.painter)
}

func (r *Raster) FillRect(x, y, w, h float64) {
	if r.fill == nil {
		return
	}
	rect := image.Rect(int(math.Round(x)), int(math.Round(y)), int(math.Round(x+w)), int(math.Round(y+h)))
	draw.Draw(r.img, rect, image.NewUniform(r.fill), image.Point{}, draw.Over)
}

func (r *Raster) Text(x, y float64, align Align, s string) {
	if r.fill == nil || r.err != nil {
		return
	}
	w := float64(font.MeasureString(r.face, s)) / 64
	switch align {
	case AlignCenter:
		x -= w / 2
	case AlignRight:
		x -= w
	}
	// Move from the vertical center to the baseline.
	m := r.face.Metrics()
	y += float64(m.Ascent-m.Descent) / 64 / 2
	if _, err := r.text.DrawString(s, pt(x, y)); err != nil {
		r.err = err
	}
}

// maxDashPeriods bounds how many times a dash pattern repeats along
// one line. Finer patterns are drawn solid.
const maxDashPeriods = 1e4

// dashes splits the line from (x1, y1) to (x2, y2) into the "on"
// segments of dash. An empty or invalid dash gives the whole line.
func dashes(x1, y1, x2, y2 float64, dash []float64) [][4]float64 {
	whole := [][4]float64{{x1, y1, x2, y2}}
	length := math.Hypot(x2-x1, y2-y1)
	total := 0.0
	for _, d := range dash {
		if d < 0 {
			return whole
		}
		total += d
	}
	if !(total > 0) || length == 0 || length/total > maxDashPeriods {
		return whole
	}
	if len(dash)%2 == 1 {
		dash = append(dash[:len(dash):len(dash)], dash...)
	}

	dx, dy := (x2-x1)/length, (y2-y1)/length
	var segs [][4]float64
	for pos, i := 0.0, 0; pos < length; i = (i + 1) % len(dash) {
		end := math.Min(pos+dash[i], length)
		if i%2 == 0 && end > pos {
			segs = append(segs, [4]float64{x1 + dx*pos, y1 + dy*pos, x1 + dx*end, y1 + dy*end})
		}
		pos = end
	}
	return segs
}
