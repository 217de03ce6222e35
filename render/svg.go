// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"
)

// SVG is a Canvas that streams SVG to a writer.
//
// The first write error is kept. Later drawing calls do nothing, and
// Err and Done return the error.
type SVG struct {
	w   io.Writer
	err error

	fill, stroke string
	lineWidth    string
	dash         string
	fontSize     float64
}

// NewSVG starts an SVG document of the given size on w. Text is drawn
// at fontSize pixels.
func NewSVG(w io.Writer, width, height int, fontSize float64) *SVG {
	s := &SVG{w: w, fontSize: fontSize}
	s.fprintf("<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" font-family=\"sans-serif\">\n", width, height)
	s.SetStroke(color.Black)
	s.SetFill(color.Black)
	s.SetLineWidth(1)
	return s
}

type svglen float64

func (v svglen) String() string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

func colorToCSS(c color.Color) string {
	cc := color.NRGBAModel.Convert(c).(color.NRGBA)
	if cc.A == 0xff {
		return fmt.Sprintf("rgb(%d,%d,%d)", cc.R, cc.G, cc.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%f)", cc.R, cc.G, cc.B, float64(cc.A)/0xff)
}

func (s *SVG) fprintf(format string, a ...interface{}) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, a...)
}

func (s *SVG) SetFill(c color.Color) {
	if c == nil {
		s.fill = "fill:none"
	} else {
		s.fill = "fill:" + colorToCSS(c)
	}
}

func (s *SVG) SetStroke(c color.Color) {
	if c == nil {
		s.stroke = "stroke:none"
	} else {
		s.stroke = "stroke:" + colorToCSS(c)
	}
}

func (s *SVG) SetLineWidth(lw float64) {
	s.lineWidth = fmt.Sprintf("stroke-width:%v", svglen(lw))
}

func (s *SVG) SetDash(dash []float64) {
	if len(dash) == 0 {
		s.dash = ""
		return
	}
	parts := make([]string, len(dash))
	for i, d := range dash {
		parts[i] = svglen(d).String()
	}
	s.dash = "stroke-dasharray:" + strings.Join(parts, ",")
}

func (s *SVG) style(parts ...string) string {
	val, sep := "", ""
	for _, part := range parts {
		if part != "" {
			val += sep + part
			sep = ";"
		}
	}
	if val != "" {
		return " style=\"" + val + "\""
	} else {
		return ""
	}
}

func (s *SVG) Line(x1, y1, x2, y2 float64) {
	s.fprintf("<path d=\"M%v %vL%v %v\"%s/>\n", svglen(x1), svglen(y1), svglen(x2), svglen(y2), s.style(s.stroke, s.lineWidth, s.dash))
}

func (s *SVG) FillRect(x, y, w, h float64) {
	s.fprintf("<rect x=\"%v\" y=\"%v\" width=\"%v\" height=\"%v\"%s/>\n", svglen(x), svglen(y), svglen(w), svglen(h), s.style(s.fill))
}

func (s *SVG) Text(x, y float64, align Align, text string) {
	astr := map[Align]string{
		AlignLeft:   "",
		AlignCenter: " text-anchor=\"middle\"",
		AlignRight:  " text-anchor=\"end\"",
	}[align]
	fstr := ""
	if s.fontSize != 0 {
		fstr = fmt.Sprintf(" font-size=\"%v\"", svglen(s.fontSize))
	}
	s.fprintf("<text x=\"%v\" y=\"%v\"%s dominant-baseline=\"middle\"%s%s>", svglen(x), svglen(y), astr, fstr, s.style(s.fill))
	if s.err == nil {
		s.err = xml.EscapeText(s.w, []byte(text))
	}
	s.fprintf("</text>\n")
}

// Err returns the first error encountered while writing.
func (s *SVG) Err() error {
	return s.err
}

// Done ends the document and returns the first error encountered
// while writing.
func (s *SVG) Done() error {
	s.fprintf("</svg>\n")
	return s.err
}
