// Copyright 2016 The Gofem-LBM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattice

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// CheckShape fails fast with a shape-mismatch error if (row,col) disagree
// with (wantRow,wantCol). who identifies the offending argument in the
// error message, the way gofem's chk.Err calls name the failing model.
func CheckShape(who string, row, col, wantRow, wantCol int) error {
	if row != wantRow || col != wantCol {
		return chk.Err("%s: shape mismatch: got (%d,%d), want (%d,%d)", who, row, col, wantRow, wantCol)
	}
	return nil
}

// CheckMargin fails fast with a margin-mismatch error if got != want.
func CheckMargin(who string, got, want int) error {
	if got != want {
		return chk.Err("%s: margin mismatch: got %d, want %d", who, got, want)
	}
	return nil
}

// CheckShapes validates several (row,col) pairs against one wanted shape in
// a single pass, the way gofem's mdl/diffusion.M1.Init checks several
// connected parameters were all found with one utl.BoolAllTrue.
func CheckShapes(who string, shapes [][2]int, wantRow, wantCol int) error {
	ok := make([]bool, len(shapes))
	for i, s := range shapes {
		ok[i] = s[0] == wantRow && s[1] == wantCol
	}
	if !utl.BoolAllTrue(ok) {
		return chk.Err("%s: shape mismatch among %d matrices; want (%d,%d)", who, len(shapes), wantRow, wantCol)
	}
	return nil
}
