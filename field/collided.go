// Copyright 2016 The Gofem-LBM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gofem-lbm/lattice"
)

// CollidedField holds the population after BGK-style relaxation toward a
// learnable local equilibrium. It keeps both the relaxed population f and
// the equilibrium feq it relaxed towards, since feq is itself a testable
// quantity in its own right.
type CollidedField struct {
	Row, Col int
	margin   int
	F, Feq   *lattice.Tensor
	Verbose  bool
}

// NewCollided allocates a CollidedField of the given shape and margin, with every
// tensor set to NaN outside the interior and to zero inside it.
func NewCollided(row, col, margin int) *CollidedField {
	o := &CollidedField{
		Row: row, Col: col, margin: margin,
		F:   lattice.NewTensor(row, col),
		Feq: lattice.NewTensor(row, col),
	}
	o.F.FillInterior(margin, row-margin, margin, col-margin, 0)
	o.Feq.FillInterior(margin, row-margin, margin, col-margin, 0)
	return o
}

// Shape implements Previous.
func (o *CollidedField) Shape() (row, col int) { return o.Row, o.Col }

// Margin implements Previous.
func (o *CollidedField) Margin() int { return o.margin }

// PopulationAt implements Previous: a StreamedField streams from the
// relaxed population f, not the equilibrium feq.
func (o *CollidedField) PopulationAt(dr, dc, r, c int) float64 {
	return o.F.At(dr, dc, r, c)
}

// Collide relaxes streamed's population towards a learnable local
// equilibrium parameterized by cw:
//
//	u_prod = u_vert*dr + u_hori*dc
//	feq = 1
//	feq += (w3*u_prod + w1)*u_prod
//	feq += w2*(dr*u_hori - dc*u_vert)
//	feq += w4*(u_vert^2 + u_hori^2)
//	feq *= C(dr,dc) * rho
//	f = (feq + streamed.f) / 2
//
// requiring o.Margin() == streamed.Margin() == cw.Margin().
func (o *CollidedField) Collide(streamed *StreamedField, cw CollidingWeights) error {
	if err := lattice.CheckShape("CollidedField.Collide(streamed)", streamed.Row, streamed.Col, o.Row, o.Col); err != nil {
		return err
	}
	if err := lattice.CheckMargin("CollidedField.Collide(streamed)", streamed.margin, o.margin); err != nil {
		return err
	}
	wrow, wcol := cw.Shape()
	if err := lattice.CheckShape("CollidedField.Collide(weight)", wrow, wcol, o.Row, o.Col); err != nil {
		return err
	}
	if err := lattice.CheckMargin("CollidedField.Collide(weight)", cw.Margin(), o.margin); err != nil {
		return err
	}

	if o.Verbose {
		io.Pforan("CollidedField.Collide: row=%d col=%d margin=%d\n", o.Row, o.Col, o.margin)
	}

	lo0, hi0 := o.margin, o.Row-o.margin
	lo1, hi1 := o.margin, o.Col-o.margin

	for _, d := range lattice.Dirs {
		dr, dc := d.Dr, d.Dc
		drf, dcf := float64(dr), float64(dc)
		cval := lattice.C(dr, dc)
		lattice.ForEachInterior(lo0, hi0, lo1, hi1, func(r, c int) {
			u, v, rho := streamed.UVert[r][c], streamed.UHori[r][c], streamed.Rho[r][c]
			w1, w2, w3, w4 := cw.W1(dr, dc, r, c), cw.W2(dr, dc, r, c), cw.W3(dr, dc, r, c), cw.W4(dr, dc, r, c)

			uProd := u*drf + v*dcf
			feq := 1.0
			feq += (w3*uProd + w1) * uProd
			feq += w2 * (drf*v - dcf*u)
			feq += w4 * (u*u + v*v)
			feq *= cval * rho

			o.Feq.Set(dr, dc, r, c, feq)
			o.F.Set(dr, dc, r, c, (feq+streamed.F.At(dr, dc, r, c))/2)
		})
	}
	return nil
}
