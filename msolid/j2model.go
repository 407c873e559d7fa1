// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"fmt"

	"github.com/cpmech/gosolid/cmech"
	"github.com/cpmech/gosolid/fun"
	"github.com/cpmech/gosolid/tsr"
)

// FiniteStrain is the external interface a finite-strain material exposes
// (spec §6.1): number of state variables, state initialization, and the
// stress/tangent evaluation that advances the state buffer in place.
type FiniteStrain interface {
	NumStateVars() int
	InitState(state []float64)
	ComputeStress(F tsr.Mat3, t, dt float64, state []float64) (tau tsr.Mat3, psi, rho float64, dTaudF tsr.Ten4, err error)
}

// FiniteStrainJ2 implements the finite-strain elasto-plastic core of
// spec §4.E: Pence-Gou B hyperelasticity plus J2 plasticity with isotropic
// saturation hardening, integrated by exponential-map return mapping.
type FiniteStrainJ2 struct {
	Label                string
	K, G                 float64 // Pence-Gou B bulk/shear moduli
	Fy, FyInf, Eta, H    float64 // hardening law parameters (spec §4.E.2)
	Rho0                 float64 // reference density
	Algorithm            int     // dR/dX method selector, 1-4 (spec §4.E.7)
	ExpAbsTol, ExpRelTol float64 // tensor-exponential stopping tolerances
}

// NewFiniteStrainJ2 constructs a FiniteStrainJ2 from a parameter array and
// a label (spec §6.1 "construct"), mirroring the teacher's
// VonMises/DruckerPrager Init-by-name parameter parsing.
func NewFiniteStrainJ2(prms fun.Prms, label string) (*FiniteStrainJ2, error) {
	o := &FiniteStrainJ2{
		Label:     label,
		Algorithm: 1,
		ExpAbsTol: 1e-13,
		ExpRelTol: 1e-13,
	}
	for _, p := range prms {
		switch p.N {
		case "K":
			o.K = p.V
		case "G":
			o.G = p.V
		case "fy":
			o.Fy = p.V
		case "fyInf":
			o.FyInf = p.V
		case "eta":
			o.Eta = p.V
		case "H":
			o.H = p.V
		case "rho":
			o.Rho0 = p.V
		case "algorithm":
			o.Algorithm = int(p.V)
		case "expAbsTol":
			o.ExpAbsTol = p.V
		case "expRelTol":
			o.ExpRelTol = p.V
		default:
			return nil, &InvalidArgumentError{Msg: fmt.Sprintf("j2finite: unknown parameter %q", p.N)}
		}
	}
	if o.Fy <= 0 {
		return nil, &InvalidArgumentError{Msg: "j2finite: fy must be positive"}
	}
	if o.Algorithm < 1 || o.Algorithm > 4 {
		return nil, &InvalidArgumentError{Msg: fmt.Sprintf("j2finite: algorithm must be 1-4, got %d", o.Algorithm)}
	}
	return o, nil
}

// NumStateVars returns the state-buffer size (spec §6.1): 9 for Fp, 1 for alphaP.
func (o *FiniteStrainJ2) NumStateVars() int { return NewFiniteJ2State().NumStateVars() }

// InitState sets the state buffer to its reference values, Fp=I, alphaP=0
// (spec §6.1 "initialize").
func (o *FiniteStrainJ2) InitState(state []float64) {
	copy(state, NewFiniteJ2State().Pack())
}

// ComputeStress evaluates the Kirchhoff stress, elastic energy density,
// density and algorithmic tangent at F, updating the state buffer in place
// (spec §4.E.1, §4.E.5, §4.E.6, §6.1).
func (o *FiniteStrainJ2) ComputeStress(F tsr.Mat3, t, dt float64, state []float64) (tau tsr.Mat3, psi, rho float64, dTaudF tsr.Ten4, err error) {
	var st FiniteJ2State
	st.Unpack(state)

	FpnInv, ierr := tsr.Inverse(st.Fp)
	if ierr != nil {
		err = &SingularTangentError{Inner: ierr}
		return
	}
	Fetrial := tsr.MatMul(F, FpnInv)

	p := j2residualParams{
		Fetrial:   Fetrial,
		AlphaPn:   st.AlphaP,
		K:         o.K,
		G:         o.G,
		Fy:        o.Fy,
		FyInf:     o.FyInf,
		Eta:       o.Eta,
		H:         o.H,
		ExpAbsTol: o.ExpAbsTol,
		ExpRelTol: o.ExpRelTol,
	}

	result, rerr := j2ReturnMap(o.Algorithm, Fetrial, st.AlphaP, p)
	if rerr != nil {
		err = rerr
		return
	}

	if result.Plastic {
		st.Fp = tsr.MatMul(result.DeltaFp, st.Fp)
		st.AlphaP = result.AlphaP
		dTaudF, err = j2PlasticTangent(o.Algorithm, result.X, p, FpnInv)
		if err != nil {
			return
		}
	} else {
		dTaudF = j2ElasticTangent(result.Fe, FpnInv, o.K, o.G)
	}

	Ce := cmech.RightCauchyGreen(result.Fe)
	S := cmech.SecondPK(cmech.GradB(Ce, o.K, o.G))
	tau = cmech.Kirchhoff(result.Fe, S)
	psi = cmech.PsiB(Ce, o.K, o.G)
	rho = o.Rho0 / tsr.Det(F)

	copy(state, st.Pack())
	return
}
