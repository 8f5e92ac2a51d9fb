// Copyright 2016 The Gofem-LBM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package field implements the three field entities of the kernel
// (InputField, StreamedField, CollidedField): the grid tensors that flow
// through the streaming and collision operators.
package field

// Previous is the set of fields a StreamedField needs from whatever it
// streams from, satisfied by both InputField (margin always 0, entire grid
// defined) and CollidedField (margin = consumer's margin - 1). Keeping this
// as a narrow interface, rather than a concrete union type, is what makes
// StreamFrom source-agnostic: it can advect from either kind.
type Previous interface {
	Shape() (row, col int)
	Margin() int
	PopulationAt(dr, dc, r, c int) float64
}

// StreamingWeights is the view StreamedField.StreamFrom needs of a
// StreamingWeight, satisfied structurally by weight.StreamingWeight without
// this package importing the weight package (which itself depends on field
// for StreamedField and Previous), avoiding an import cycle.
type StreamingWeights interface {
	Shape() (row, col int)
	Margin() int
	W0(dr, dc, r, c int) float64
	W1(dr, dc, r, c int) float64
}

// CollidingWeights is the view CollidedField.Collide needs of a
// CollidingWeight, satisfied structurally by weight.CollidingWeight for the
// same reason as StreamingWeights above.
type CollidingWeights interface {
	Shape() (row, col int)
	Margin() int
	W1(dr, dc, r, c int) float64
	W2(dr, dc, r, c int) float64
	W3(dr, dc, r, c int) float64
	W4(dr, dc, r, c int) float64
}
