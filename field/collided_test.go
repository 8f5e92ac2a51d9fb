// Copyright 2016 The Gofem-LBM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field_test

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gofem-lbm/field"
	"github.com/cpmech/gofem-lbm/lattice"
	"github.com/cpmech/gofem-lbm/weight"
)

// Test_collide_classical checks that, with a
// freshly constructed CollidingWeight (w1=3, w2=0, w3=4.5, w4=-1.5), feq
// equals the textbook D2Q9 equilibrium
//
//	feq = C(dr,dc) * rho * (1 + 3*u.e + 4.5*(u.e)^2 - 1.5*u^2)
//
// A literal worked numeric example is not reproduced here: it would depend on
// a custom CollidingWeight table this implementation has no record of (see
// DESIGN.md).
func Test_collide_classical(tst *testing.T) {

	chk.PrintTitle("collide_classical")

	row, col, margin := 3, 3, 1
	uVert, uHori, rho := 0.4, 4.0/90.0, 45.0

	streamed := field.NewStreamed(row, col, margin)
	lattice.FillInterior2(streamed.UVert, margin, row-margin, margin, col-margin, uVert)
	lattice.FillInterior2(streamed.UHori, margin, row-margin, margin, col-margin, uHori)
	lattice.FillInterior2(streamed.Rho, margin, row-margin, margin, col-margin, rho)
	streamed.F.FillInterior(margin, row-margin, margin, col-margin, 0)

	cw := weight.NewColliding(row, col, margin)
	out := field.NewCollided(row, col, margin)
	if err := out.Collide(streamed, cw); err != nil {
		tst.Fatalf("Collide failed: %v", err)
	}

	const tol = 1e-11
	u2 := uVert*uVert + uHori*uHori
	for _, d := range lattice.Dirs {
		uProd := uVert*float64(d.Dr) + uHori*float64(d.Dc)
		want := lattice.C(d.Dr, d.Dc) * rho * (1 + 3*uProd + 4.5*uProd*uProd - 1.5*u2)
		got := out.Feq.At(d.Dr, d.Dc, 1, 1)
		chk.Scalar(tst, "feq", tol, got, want)

		wantF := (want + 0) / 2 // streamed.f was filled with 0 above
		gotF := out.F.At(d.Dr, d.Dc, 1, 1)
		chk.Scalar(tst, "f", tol, gotF, wantF)
	}
}

func Test_collide_halo(tst *testing.T) {

	chk.PrintTitle("collide_halo")

	row, col, margin := 3, 3, 1
	streamed := field.NewStreamed(row, col, margin)
	lattice.FillInterior2(streamed.UVert, margin, row-margin, margin, col-margin, 0.1)
	lattice.FillInterior2(streamed.UHori, margin, row-margin, margin, col-margin, 0.1)
	lattice.FillInterior2(streamed.Rho, margin, row-margin, margin, col-margin, 1)
	streamed.F.FillInterior(margin, row-margin, margin, col-margin, 0)

	cw := weight.NewColliding(row, col, margin)
	out := field.NewCollided(row, col, margin)
	if err := out.Collide(streamed, cw); err != nil {
		tst.Fatalf("Collide failed: %v", err)
	}

	for r := 0; r < row; r++ {
		for c := 0; c < col; c++ {
			if r == 1 && c == 1 {
				continue
			}
			for _, d := range lattice.Dirs {
				if !math.IsNaN(out.F.At(d.Dr, d.Dc, r, c)) || !math.IsNaN(out.Feq.At(d.Dr, d.Dc, r, c)) {
					tst.Fatalf("expected NaN at exterior cell (%d,%d) dir (%d,%d)", r, c, d.Dr, d.Dc)
				}
			}
		}
	}
}

func Test_collide_shape_mismatch(tst *testing.T) {

	chk.PrintTitle("collide_shape_mismatch")

	streamed := field.NewStreamed(3, 3, 1)
	cw := weight.NewColliding(4, 4, 1)
	out := field.NewCollided(3, 3, 1)
	if err := out.Collide(streamed, cw); err == nil {
		tst.Fatalf("expected shape-mismatch error")
	}
}
