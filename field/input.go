// Copyright 2016 The Gofem-LBM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/gofem-lbm/lattice"
)

// InputField seeds a kinetic field from macroscopic velocity and density via
// the D2Q9 equilibrium distribution. It has no halo: the entire row x col
// grid is defined after Set, matching the "no halo concept" row of the
// entity table.
type InputField struct {
	Row, Col     int
	F            *lattice.Tensor
	UVert, UHori [][]float64
	Rho          [][]float64
	Verbose      bool // gate optional io.Pf* tracing in Set
}

// NewInput allocates an InputField of the given shape. Every tensor starts at
// zero: an InputField has no halo concept.
func NewInput(row, col int) *InputField {
	o := &InputField{
		Row: row, Col: col,
		F:     lattice.NewTensor(row, col),
		UVert: la.MatAlloc(row, col),
		UHori: la.MatAlloc(row, col),
		Rho:   la.MatAlloc(row, col),
	}
	o.F.FillInterior(0, row, 0, col, 0)
	return o
}

// Shape implements Previous.
func (o *InputField) Shape() (row, col int) { return o.Row, o.Col }

// Margin implements Previous: InputField has no halo, so its margin is
// always 0 (the whole grid is "interior").
func (o *InputField) Margin() int { return 0 }

// PopulationAt implements Previous.
func (o *InputField) PopulationAt(dr, dc, r, c int) float64 {
	return o.F.At(dr, dc, r, c)
}

// Set stores (u_vert, u_hori, rho) as the current macroscopics and writes
// the D2Q9 equilibrium population into every cell and direction, per
// the D2Q9 equilibrium distribution:
//
//	f(r,c,dr,dc) = C(dr,dc) * rho(r,c) * (1 + (3 + 4.5*u_prod)*u_prod - 1.5*u2)
//	u_prod = u_vert*dr + u_hori*dc
//	u2     = u_vert^2 + u_hori^2
func (o *InputField) Set(uVert, uHori, rho [][]float64) error {
	shapes := [][2]int{
		{len(uVert), matCols(uVert)},
		{len(uHori), matCols(uHori)},
		{len(rho), matCols(rho)},
	}
	if err := lattice.CheckShapes("InputField.Set(u_vert,u_hori,rho)", shapes, o.Row, o.Col); err != nil {
		return err
	}

	if o.Verbose {
		io.Pforan("InputField.Set: row=%d col=%d\n", o.Row, o.Col)
	}

	o.UVert = uVert
	o.UHori = uHori
	o.Rho = rho

	for _, d := range lattice.Dirs {
		dr, dc := float64(d.Dr), float64(d.Dc)
		cval := lattice.C(d.Dr, d.Dc)
		lattice.ForEachInterior(0, o.Row, 0, o.Col, func(r, c int) {
			u, v, rh := uVert[r][c], uHori[r][c], rho[r][c]
			u2 := u*u + v*v
			uProd := u*dr + v*dc
			o.F.Set(d.Dr, d.Dc, r, c, cval*rh*(1+(3+4.5*uProd)*uProd-1.5*u2))
		})
	}
	return nil
}

// matCols returns the column count of a [][]float64, 0 for an empty matrix.
func matCols(m [][]float64) int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}
