// Copyright 2016 The Gofem-LBM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package weight

import (
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gofem-lbm/lattice"
)

// CollidingWeight holds the four learnable quadratic-form parameters
// (w1, w2, w3, w4) that parameterize the local equilibrium CollidedField
// relaxes towards, plus their gradient accumulators and a per-direction
// delta buffer. Its interior initialization (w1=3, w2=0, w3=4.5, w4=-1.5)
// makes the equilibrium exactly the classical BGK form.
//
// No backward pass is specified for CollidingWeight (an open question left
// unresolved): Dw1..Dw4 and Delta exist so a training driver can
// accumulate into them, but this package does not invent a
// PropagateFromOutput for them.
type CollidingWeight struct {
	Row, Col int
	margin   int

	w1, w2, w3, w4     *lattice.Tensor
	Dw1, Dw2, Dw3, Dw4 *lattice.Tensor
	Delta              *lattice.Tensor

	Verbose bool
}

// NewColliding allocates a CollidingWeight of the given shape and margin, with the
// interior set to the classical BGK constants.
func NewColliding(row, col, margin int) *CollidingWeight {
	o := &CollidingWeight{
		Row: row, Col: col, margin: margin,
		w1: lattice.NewTensor(row, col), w2: lattice.NewTensor(row, col),
		w3: lattice.NewTensor(row, col), w4: lattice.NewTensor(row, col),
		Dw1: lattice.NewTensor(row, col), Dw2: lattice.NewTensor(row, col),
		Dw3: lattice.NewTensor(row, col), Dw4: lattice.NewTensor(row, col),
		Delta: lattice.NewTensor(row, col),
	}
	lo0, hi0 := margin, row-margin
	lo1, hi1 := margin, col-margin
	o.w1.FillInterior(lo0, hi0, lo1, hi1, 3)
	o.w2.FillInterior(lo0, hi0, lo1, hi1, 0)
	o.w3.FillInterior(lo0, hi0, lo1, hi1, 4.5)
	o.w4.FillInterior(lo0, hi0, lo1, hi1, -1.5)
	for _, t := range []*lattice.Tensor{o.Dw1, o.Dw2, o.Dw3, o.Dw4, o.Delta} {
		t.FillInterior(lo0, hi0, lo1, hi1, 0)
	}
	return o
}

// Shape implements field.CollidingWeights.
func (o *CollidingWeight) Shape() (row, col int) { return o.Row, o.Col }

// Margin implements field.CollidingWeights.
func (o *CollidingWeight) Margin() int { return o.margin }

// W1..W4 are the read-only views of the quadratic-form equilibrium
// parameters, per direction per cell.
func (o *CollidingWeight) W1(dr, dc, r, c int) float64 { return o.w1.At(dr, dc, r, c) }
func (o *CollidingWeight) W2(dr, dc, r, c int) float64 { return o.w2.At(dr, dc, r, c) }
func (o *CollidingWeight) W3(dr, dc, r, c int) float64 { return o.w3.At(dr, dc, r, c) }
func (o *CollidingWeight) W4(dr, dc, r, c int) float64 { return o.w4.At(dr, dc, r, c) }

// SetW1..SetW4 load a single interior entry directly, the mutating
// counterpart to the W1..W4 read-only views, for checkpoint restore
// (see StreamingWeight.SetW0/SetW1).
func (o *CollidingWeight) SetW1(dr, dc, r, c int, v float64) { o.w1.Set(dr, dc, r, c, v) }
func (o *CollidingWeight) SetW2(dr, dc, r, c int, v float64) { o.w2.Set(dr, dc, r, c, v) }
func (o *CollidingWeight) SetW3(dr, dc, r, c int, v float64) { o.w3.Set(dr, dc, r, c, v) }
func (o *CollidingWeight) SetW4(dr, dc, r, c int, v float64) { o.w4.Set(dr, dc, r, c, v) }

// Update adds the accumulated Dw1..Dw4 into w1..w4 over the interior, then
// zeroes the deltas, mirroring StreamingWeight.Update.
func (o *CollidingWeight) Update() {
	if o.Verbose {
		io.Pforan("CollidingWeight.Update: row=%d col=%d\n", o.Row, o.Col)
	}
	lo0, hi0 := o.margin, o.Row-o.margin
	lo1, hi1 := o.margin, o.Col-o.margin
	for _, d := range lattice.Dirs {
		dr, dc := d.Dr, d.Dc
		lattice.ForEachInterior(lo0, hi0, lo1, hi1, func(r, c int) {
			o.w1.Set(dr, dc, r, c, o.w1.At(dr, dc, r, c)+o.Dw1.At(dr, dc, r, c))
			o.w2.Set(dr, dc, r, c, o.w2.At(dr, dc, r, c)+o.Dw2.At(dr, dc, r, c))
			o.w3.Set(dr, dc, r, c, o.w3.At(dr, dc, r, c)+o.Dw3.At(dr, dc, r, c))
			o.w4.Set(dr, dc, r, c, o.w4.At(dr, dc, r, c)+o.Dw4.At(dr, dc, r, c))
			o.Dw1.Set(dr, dc, r, c, 0)
			o.Dw2.Set(dr, dc, r, c, 0)
			o.Dw3.Set(dr, dc, r, c, 0)
			o.Dw4.Set(dr, dc, r, c, 0)
		})
	}
}
