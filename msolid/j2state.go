// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import "github.com/cpmech/gosolid/tsr"

// FiniteJ2State holds the finite-strain J2 core's state buffer (spec
// §4.E.1): the plastic deformation gradient Fp (9 doubles) and the
// isotropic hardening variable alphaP (1 double) — exactly the ten
// numbers the external interface (§6.1) calls "state buffer of the
// required size".
type FiniteJ2State struct {
	Fp     tsr.Mat3
	AlphaP float64
}

// NewFiniteJ2State builds a state buffer at its reference configuration:
// Fp=I, alphaP=0 (spec §6.1 "initialize").
func NewFiniteJ2State() *FiniteJ2State {
	return &FiniteJ2State{Fp: tsr.I, AlphaP: 0}
}

// Set copies other into o (both must be non-nil)
func (o *FiniteJ2State) Set(other *FiniteJ2State) {
	o.Fp = other.Fp
	o.AlphaP = other.AlphaP
}

// GetCopy returns an independent copy of o
func (o *FiniteJ2State) GetCopy() *FiniteJ2State {
	return &FiniteJ2State{Fp: o.Fp, AlphaP: o.AlphaP}
}

// NumStateVars returns the number of doubles the state buffer packs into
// (9 for Fp + 1 for alphaP), the external-interface accessor of §6.1.
func (o *FiniteJ2State) NumStateVars() int { return 10 }

// Pack flattens the state into a 10-vector (Fp row-major, then alphaP),
// for callers that want the raw buffer representation described in §4.E.1.
func (o *FiniteJ2State) Pack() []float64 {
	v := make([]float64, 10)
	k := 0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v[k] = o.Fp[i][j]
			k++
		}
	}
	v[9] = o.AlphaP
	return v
}

// Unpack restores o from a 10-vector produced by Pack
func (o *FiniteJ2State) Unpack(v []float64) {
	k := 0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			o.Fp[i][j] = v[k]
			k++
		}
	}
	o.AlphaP = v[9]
}
