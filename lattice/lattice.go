// Copyright 2016 The Gofem-LBM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package lattice implements the D2Q9 stencil shared by every field and
// weight entity: the nine discrete directions, the classical lattice
// constants, and the halo/margin bookkeeping that keeps undefined regions
// marked with NaN and out of reach of the interior sweeps.
package lattice

// Dir holds one of the nine D2Q9 discrete velocities as a row/column offset.
type Dir struct {
	Dr, Dc int // offset in {-1,0,1}; row is "vertical" (down positive), col is "horizontal" (right positive)
}

// I returns the first index of the 3x3 inner block, dr+1.
func (d Dir) I() int { return d.Dr + 1 }

// J returns the second index of the 3x3 inner block, dc+1.
func (d Dir) J() int { return d.Dc + 1 }

// Dirs lists the nine D2Q9 directions in row-major (dr,dc) order, matching
// the (dr+1,dc+1) inner-block indexing used throughout this module.
var Dirs = [9]Dir{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 0}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// cWeights holds the D2Q9 lattice constants indexed by (dr+1, dc+1):
// 1/36 at corners, 1/9 on axes, 4/9 at the rest direction.
var cWeights = [3][3]float64{
	{1.0 / 36.0, 1.0 / 9.0, 1.0 / 36.0},
	{1.0 / 9.0, 4.0 / 9.0, 1.0 / 9.0},
	{1.0 / 36.0, 1.0 / 9.0, 1.0 / 36.0},
}

// C returns the D2Q9 lattice constant for direction (dr,dc).
func C(dr, dc int) float64 {
	return cWeights[dr+1][dc+1]
}
