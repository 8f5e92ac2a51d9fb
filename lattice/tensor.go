// Copyright 2016 The Gofem-LBM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattice

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// Tensor holds one double-precision scalar per cell per D2Q9 direction: nine
// row x col matrices, one per (dr+1, dc+1) inner-block index. gosl/la has no
// rank-4 tensor, so Tensor is the one piece of this package not grounded
// directly on an existing gosl type; it is built from nine la.MatAlloc'd
// matrices, keeping the same [][]float64 storage the rest of the module
// reads and writes via gosl/la helpers.
type Tensor struct {
	Row, Col int
	V        [3][3][][]float64 // V[dr+1][dc+1][r][c]
}

// NewTensor allocates a Tensor with every entry set to NaN (the halo
// sentinel). Callers fill the interior explicitly afterwards.
func NewTensor(row, col int) *Tensor {
	t := &Tensor{Row: row, Col: col}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m := la.MatAlloc(row, col)
			la.MatFill(m, math.NaN())
			t.V[i][j] = m
		}
	}
	return t
}

// At returns the value stored for direction (dr,dc) at cell (r,c).
func (t *Tensor) At(dr, dc, r, c int) float64 {
	return t.V[dr+1][dc+1][r][c]
}

// Set stores a value for direction (dr,dc) at cell (r,c).
func (t *Tensor) Set(dr, dc, r, c int, v float64) {
	t.V[dr+1][dc+1][r][c] = v
}

// FillInterior sets every direction's value to v over the interior rectangle
// [rowLo,rowHi) x [colLo,colHi), leaving everything else (the halo) alone.
func (t *Tensor) FillInterior(rowLo, rowHi, colLo, colHi int, v float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m := t.V[i][j]
			for r := rowLo; r < rowHi; r++ {
				row := m[r]
				for c := colLo; c < colHi; c++ {
					row[c] = v
				}
			}
		}
	}
}

// NewMat2 allocates a row x col matrix filled with NaN, the halo sentinel for
// the plain 2-D macroscopic fields (u_vert, u_hori, rho).
func NewMat2(row, col int) [][]float64 {
	m := la.MatAlloc(row, col)
	la.MatFill(m, math.NaN())
	return m
}

// FillInterior2 sets every cell of the interior rectangle
// [rowLo,rowHi) x [colLo,colHi) of m to v.
func FillInterior2(m [][]float64, rowLo, rowHi, colLo, colHi int, v float64) {
	for r := rowLo; r < rowHi; r++ {
		row := m[r]
		for c := colLo; c < colHi; c++ {
			row[c] = v
		}
	}
}
