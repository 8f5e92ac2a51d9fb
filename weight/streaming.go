// Copyright 2016 The Gofem-LBM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package weight implements the two learnable parameter models of the
// kernel: StreamingWeight (affine transport, trained by
// PropagateFromOutput/Update) and CollidingWeight (quadratic-form local
// equilibrium, no backward rule defined). This mirrors gofem's mdl/*
// material-model packages: a model holds its own parameters and an
// Update/Init round trip, while the field entities in package field hold the
// tensors the models are applied to.
package weight

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gofem-lbm/field"
	"github.com/cpmech/gofem-lbm/lattice"
)

// StreamingWeight holds the learnable affine streaming parameters (w0, w1)
// and their gradient accumulators (dw0, dw1), plus a per-direction delta
// buffer that PropagateFromOutput fills with the per-direction sensitivity
// from which dw0 and dw1 are derived.
type StreamingWeight struct {
	Row, Col int
	margin   int

	w0, w1 *lattice.Tensor // read-only views: W0(), W1()
	dw0    *lattice.Tensor
	dw1    *lattice.Tensor
	delta  *lattice.Tensor // per-direction sensitivity written by PropagateFromOutput

	Verbose bool
}

// NewStreaming allocates a StreamingWeight of the given shape and margin. The
// interior starts at w0=0, w1=1 — a pure copy from the offset neighbor, i.e.
// exact classical streaming — with dw0=dw1=delta=0.
func NewStreaming(row, col, margin int) *StreamingWeight {
	o := &StreamingWeight{
		Row: row, Col: col, margin: margin,
		w0:    lattice.NewTensor(row, col),
		w1:    lattice.NewTensor(row, col),
		dw0:   lattice.NewTensor(row, col),
		dw1:   lattice.NewTensor(row, col),
		delta: lattice.NewTensor(row, col),
	}
	lo0, hi0 := margin, row-margin
	lo1, hi1 := margin, col-margin
	o.w0.FillInterior(lo0, hi0, lo1, hi1, 0)
	o.w1.FillInterior(lo0, hi0, lo1, hi1, 1)
	o.dw0.FillInterior(lo0, hi0, lo1, hi1, 0)
	o.dw1.FillInterior(lo0, hi0, lo1, hi1, 0)
	o.delta.FillInterior(lo0, hi0, lo1, hi1, 0)
	return o
}

// Shape implements field.StreamingWeights.
func (o *StreamingWeight) Shape() (row, col int) { return o.Row, o.Col }

// Margin implements field.StreamingWeights.
func (o *StreamingWeight) Margin() int { return o.margin }

// W0 is the read-only view of the affine intercept, per direction per cell.
func (o *StreamingWeight) W0(dr, dc, r, c int) float64 { return o.w0.At(dr, dc, r, c) }

// W1 is the read-only view of the affine slope, per direction per cell.
func (o *StreamingWeight) W1(dr, dc, r, c int) float64 { return o.w1.At(dr, dc, r, c) }

// SetW0 and SetW1 load a single interior entry of w0/w1 directly, the
// mutating counterpart to the W0/W1 read-only views. This is how a training
// driver restores weights from a checkpoint (checkpointing serializes the
// interior of each weight tensor) rather than replaying Update() from
// scratch.
func (o *StreamingWeight) SetW0(dr, dc, r, c int, v float64) { o.w0.Set(dr, dc, r, c, v) }
func (o *StreamingWeight) SetW1(dr, dc, r, c int, v float64) { o.w1.Set(dr, dc, r, c, v) }

// PropagateFromOutput computes weight deltas from a target macroscopic
// velocity. fieldNow is the StreamedField this weight
// produced; fieldPrev is the field it read from (an InputField or a
// CollidedField); uVertTarget/uHoriTarget are row x col matrices, meaningful
// only where a training signal exists (NaN elsewhere).
//
// Per interior cell and direction:
//
//	invRho = 1 / fieldNow.Rho
//	delta  = invRho * [ (u_vert_now-u_vert_target)*(dr-u_vert_now) + (u_hori_now-u_hori_target)*(dc-u_hori_now) ]
//	dw0    = -eta * delta
//	dw1    = dw0 * f_prev(r-dr, c-dc, dr, dc)
//
// holding rho constant with respect to f.
func (o *StreamingWeight) PropagateFromOutput(eta float64, fieldNow *field.StreamedField, fieldPrev field.Previous, uVertTarget, uHoriTarget [][]float64) error {
	if err := lattice.CheckShape("StreamingWeight.PropagateFromOutput(fieldNow)", fieldNow.Row, fieldNow.Col, o.Row, o.Col); err != nil {
		return err
	}
	if err := lattice.CheckMargin("StreamingWeight.PropagateFromOutput(fieldNow)", fieldNow.Margin(), o.margin); err != nil {
		return err
	}
	prow, pcol := fieldPrev.Shape()
	if err := lattice.CheckShape("StreamingWeight.PropagateFromOutput(fieldPrev)", prow, pcol, o.Row, o.Col); err != nil {
		return err
	}
	if err := lattice.CheckMargin("StreamingWeight.PropagateFromOutput(fieldPrev)", fieldNow.Margin(), fieldPrev.Margin()+1); err != nil {
		return err
	}
	targetShapes := [][2]int{
		{len(uVertTarget), matCols(uVertTarget)},
		{len(uHoriTarget), matCols(uHoriTarget)},
	}
	if err := lattice.CheckShapes("StreamingWeight.PropagateFromOutput(u_vert_target,u_hori_target)", targetShapes, o.Row, o.Col); err != nil {
		return err
	}

	if o.Verbose {
		io.Pforan("StreamingWeight.PropagateFromOutput: eta=%g row=%d col=%d\n", eta, o.Row, o.Col)
	}

	lo0, hi0 := o.margin, o.Row-o.margin
	lo1, hi1 := o.margin, o.Col-o.margin

	for _, d := range lattice.Dirs {
		dr, dc := d.Dr, d.Dc
		drf, dcf := float64(dr), float64(dc)
		lattice.ForEachInterior(lo0, hi0, lo1, hi1, func(r, c int) {
			uNow, vNow, rho := fieldNow.UVert[r][c], fieldNow.UHori[r][c], fieldNow.Rho[r][c]
			if chk.Verbose && rho == 0 {
				chk.Panic("StreamingWeight.PropagateFromOutput: zero interior density at (%d,%d); caller must guarantee strictly positive density", r, c)
			}
			invRho := 1 / rho
			uTgt, vTgt := uVertTarget[r][c], uHoriTarget[r][c]

			delta := invRho * ((uNow-uTgt)*(drf-uNow) + (vNow-vTgt)*(dcf-vNow))
			dw0 := -eta * delta
			fPrev := fieldPrev.PopulationAt(dr, dc, r-dr, c-dc)
			dw1 := dw0 * fPrev

			o.delta.Set(dr, dc, r, c, delta)
			o.dw0.Set(dr, dc, r, c, dw0)
			o.dw1.Set(dr, dc, r, c, dw1)
		})
	}
	return nil
}

// Update adds the accumulated dw0, dw1 into w0, w1 over the interior, then
// zeroes the deltas.
func (o *StreamingWeight) Update() {
	if o.Verbose {
		io.Pforan("StreamingWeight.Update: row=%d col=%d\n", o.Row, o.Col)
	}
	lo0, hi0 := o.margin, o.Row-o.margin
	lo1, hi1 := o.margin, o.Col-o.margin
	for _, d := range lattice.Dirs {
		dr, dc := d.Dr, d.Dc
		lattice.ForEachInterior(lo0, hi0, lo1, hi1, func(r, c int) {
			o.w0.Set(dr, dc, r, c, o.w0.At(dr, dc, r, c)+o.dw0.At(dr, dc, r, c))
			o.w1.Set(dr, dc, r, c, o.w1.At(dr, dc, r, c)+o.dw1.At(dr, dc, r, c))
			o.dw0.Set(dr, dc, r, c, 0)
			o.dw1.Set(dr, dc, r, c, 0)
		})
	}
}

// matCols returns the column count of a [][]float64, 0 for an empty matrix.
func matCols(m [][]float64) int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}
