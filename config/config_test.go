// Copyright 2016 The Gofem-LBM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_config_roundtrip(tst *testing.T) {

	chk.PrintTitle("config_roundtrip")

	cfg := New(16, 16, 1)
	prms := cfg.GetPrms(true)
	err := cfg.Init(prms)
	if err != nil {
		tst.Fatalf("Init failed: %v", err)
	}
	chk.Scalar(tst, "eta", 1e-15, cfg.Eta, 0.1)
	chk.Scalar(tst, "tau", 1e-15, cfg.Tau, 1.0)
}

func Test_config_bad_shape(tst *testing.T) {

	chk.PrintTitle("config_bad_shape")

	cfg := &Config{Row: 0, Col: 4}
	if err := cfg.Init(cfg.GetPrms(true)); err == nil {
		tst.Fatalf("expected error for zero Row")
	}
}
