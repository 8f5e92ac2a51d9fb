// Copyright 2016 The Gofem-LBM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gofem-lbm/lattice"
)

// StreamedField holds the population (and derived macroscopic) tensors
// after one streaming transport. Its margin equals the StreamingWeight's
// margin that produced it.
type StreamedField struct {
	Row, Col     int
	margin       int
	F            *lattice.Tensor
	UVert, UHori [][]float64
	Rho          [][]float64
	Verbose      bool
}

// NewStreamed allocates a StreamedField of the given shape and margin, with every
// tensor set to NaN outside the interior and to zero inside it.
func NewStreamed(row, col, margin int) *StreamedField {
	o := &StreamedField{
		Row: row, Col: col, margin: margin,
		F:     lattice.NewTensor(row, col),
		UVert: lattice.NewMat2(row, col),
		UHori: lattice.NewMat2(row, col),
		Rho:   lattice.NewMat2(row, col),
	}
	lo0, hi0 := margin, row-margin
	lo1, hi1 := margin, col-margin
	o.F.FillInterior(lo0, hi0, lo1, hi1, 0)
	lattice.FillInterior2(o.UVert, lo0, hi0, lo1, hi1, 0)
	lattice.FillInterior2(o.UHori, lo0, hi0, lo1, hi1, 0)
	lattice.FillInterior2(o.Rho, lo0, hi0, lo1, hi1, 0)
	return o
}

// Shape implements Previous.
func (o *StreamedField) Shape() (row, col int) { return o.Row, o.Col }

// Margin implements Previous.
func (o *StreamedField) Margin() int { return o.margin }

// PopulationAt implements Previous so a StreamedField, like an InputField or
// CollidedField, can feed StreamingWeight.PropagateFromOutput's f_prev read.
func (o *StreamedField) PopulationAt(dr, dc, r, c int) float64 {
	return o.F.At(dr, dc, r, c)
}

// StreamFrom advects populations one lattice step from previous (an
// InputField or a CollidedField) using the given StreamingWeight, per
// one lattice step:
//
//	f(r,c,dr,dc) = w0(r,c,dr,dc) + w1(r,c,dr,dc) * previous.f(r-dr, c-dc, dr, dc)
//	u_vert += dr*f; u_hori += dc*f; rho += f    (accumulated over all 9 directions)
//	u_vert /= rho; u_hori /= rho                (after all directions)
//
// o's margin must equal previous.Margin()+1 (the two
// margin rules collapse to this one check, since InputField always reports
// margin 0), and sw's margin must equal o.Margin.
func (o *StreamedField) StreamFrom(previous Previous, sw StreamingWeights) error {
	prow, pcol := previous.Shape()
	if err := lattice.CheckShape("StreamedField.StreamFrom(previous)", prow, pcol, o.Row, o.Col); err != nil {
		return err
	}
	if err := lattice.CheckMargin("StreamedField.StreamFrom(previous)", o.margin, previous.Margin()+1); err != nil {
		return err
	}
	wrow, wcol := sw.Shape()
	if err := lattice.CheckShape("StreamedField.StreamFrom(weight)", wrow, wcol, o.Row, o.Col); err != nil {
		return err
	}
	if err := lattice.CheckMargin("StreamedField.StreamFrom(weight)", sw.Margin(), o.margin); err != nil {
		return err
	}

	if o.Verbose {
		io.Pforan("StreamedField.StreamFrom: row=%d col=%d margin=%d\n", o.Row, o.Col, o.margin)
	}

	lo0, hi0 := o.margin, o.Row-o.margin
	lo1, hi1 := o.margin, o.Col-o.margin
	lattice.FillInterior2(o.UVert, lo0, hi0, lo1, hi1, 0)
	lattice.FillInterior2(o.UHori, lo0, hi0, lo1, hi1, 0)
	lattice.FillInterior2(o.Rho, lo0, hi0, lo1, hi1, 0)

	for _, d := range lattice.Dirs {
		dr, dc := d.Dr, d.Dc
		drf, dcf := float64(dr), float64(dc)
		lattice.ForEachInterior(lo0, hi0, lo1, hi1, func(r, c int) {
			prevVal := previous.PopulationAt(dr, dc, r-dr, c-dc)
			f := sw.W0(dr, dc, r, c) + sw.W1(dr, dc, r, c)*prevVal
			o.F.Set(dr, dc, r, c, f)
			o.UVert[r][c] += drf * f
			o.UHori[r][c] += dcf * f
			o.Rho[r][c] += f
		})
	}

	lattice.ForEachInterior(lo0, hi0, lo1, hi1, func(r, c int) {
		rho := o.Rho[r][c]
		if chk.Verbose && rho == 0 {
			chk.Panic("StreamedField.StreamFrom: zero interior density at (%d,%d); caller must guarantee strictly positive density", r, c)
		}
		o.UVert[r][c] /= rho
		o.UHori[r][c] /= rho
	})
	return nil
}
