// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// Affine is a 2-D affine transform. It maps (x, y) to
//
//	(A*x + C*y + E, B*x + D*y + F).
type Affine struct {
	A, B, C, D, E, F float64
}

// Identity is the identity transform.
var Identity = Affine{A: 1, D: 1}

// Translate returns a transform that moves points by (tx, ty).
func Translate(tx, ty float64) Affine {
	return Affine{A: 1, D: 1, E: tx, F: ty}
}

// Scale returns a transform that scales points about the origin.
func Scale(sx, sy float64) Affine {
	return Affine{A: sx, D: sy}
}

// Apply returns m applied to (x, y).
func (m Affine) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// Then returns the transform that applies m and then n.
func (m Affine) Then(n Affine) Affine {
	return Affine{
		A: n.A*m.A + n.C*m.B,
		B: n.B*m.A + n.D*m.B,
		C: n.A*m.C + n.C*m.D,
		D: n.B*m.C + n.D*m.D,
		E: n.A*m.E + n.C*m.F + n.E,
		F: n.B*m.E + n.D*m.F + n.F,
	}
}

// Invert returns the inverse of m. If m is singular, it returns
// Identity, false.
func (m Affine) Invert() (Affine, bool) {
	det := m.A*m.D - m.B*m.C
	if det == 0 {
		return Identity, false
	}
	return Affine{
		A: m.D / det,
		B: -m.B / det,
		C: -m.C / det,
		D: m.A / det,
		E: (m.C*m.F - m.D*m.E) / det,
		F: (m.B*m.E - m.A*m.F) / det,
	}, true
}
