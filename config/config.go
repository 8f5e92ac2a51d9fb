// Copyright 2016 The Gofem-LBM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package config holds the run-time knobs a training driver sets up front:
// grid shape, margin, the streaming learning rate, and the collision
// relaxation factor. It follows gofem's material-parameter convention
// (mdl/diffusion.M1, mdl/porous) of round-tripping a struct through a
// fun.Prms database, so a driver can load/save these the same way the
// teacher's models load material parameters from a database file.
package config

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Config holds the kernel's run-time parameters. Row, Col and Margin define
// the grid shared by every entity in one simulation run; Eta is the
// streaming-weight learning rate passed to StreamingWeight.PropagateFromOutput.
// Tau records the BGK relaxation factor for checkpointing purposes; its
// value is always 1 because CollidedField.Collide implements the fixed
// half-step relaxation (feq+f)/2 rather than taking a variable relaxation
// factor (see DESIGN.md).
type Config struct {
	Row    int
	Col    int
	Margin int
	Eta    float64
	Tau    float64
}

// New returns a Config with Tau set to the source's hard-coded half-step
// relaxation factor and Row, Col, Margin from its arguments. Eta must still
// be set by the caller (or via Init from a fun.Prms database).
func New(row, col, margin int) *Config {
	return &Config{Row: row, Col: col, Margin: margin, Tau: 1.0}
}

// GetPrms returns the parameter database for this configuration. When
// example is true, the returned values are the documented defaults
// (Eta=0.1, Tau=1) rather than the receiver's own Eta/Tau, mirroring
// mdl/diffusion.M1's GetPrms(example bool) convention.
func (o *Config) GetPrms(example bool) fun.Prms {
	eta, tau := o.Eta, o.Tau
	if example {
		eta, tau = 0.1, 1.0
	}
	return fun.Prms{
		&fun.P{N: "eta", V: eta},
		&fun.P{N: "tau", V: tau},
	}
}

// Init connects Eta and Tau to the "eta" and "tau" entries of prms, the same
// Connect round trip gofem's material models use in their own Init.
func (o *Config) Init(prms fun.Prms) (err error) {
	prms.Connect(&o.Eta, "eta", "streaming-weight learning rate")
	prms.Connect(&o.Tau, "tau", "BGK relaxation factor")
	if o.Row <= 0 || o.Col <= 0 {
		return chk.Err("config: Row and Col must be set and positive before Init; got (%d,%d)", o.Row, o.Col)
	}
	if o.Margin < 0 {
		return chk.Err("config: Margin must be non-negative; got %d", o.Margin)
	}
	return nil
}
