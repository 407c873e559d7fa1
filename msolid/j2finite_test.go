// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"
	"testing"

	"github.com/cpmech/gosolid/chk"
	"github.com/cpmech/gosolid/fun"
	"github.com/cpmech/gosolid/tsr"
)

func j2finiteTestPrms() fun.Prms {
	return fun.Prms{
		{N: "K", V: 175000},
		{N: "G", V: 80800},
		{N: "fy", V: 260},
		{N: "fyInf", V: 580},
		{N: "eta", V: 9},
		{N: "H", V: 70},
		{N: "rho", V: 1},
	}
}

// Scenario S1 (spec §8.2): identity deformation on a virgin state gives
// zero stress and an unchanged state.
func TestJ2FiniteScenarioS1UndeformedIsStressFree(t *testing.T) {
	mat, err := NewFiniteStrainJ2(j2finiteTestPrms(), "s1")
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	state := make([]float64, mat.NumStateVars())
	mat.InitState(state)

	tau, _, _, dTaudF, err := mat.ComputeStress(tsr.I, 0, 1, state)
	if err != nil {
		t.Fatalf("computeStress: %v", err)
	}
	chk.Scalar(t, "||tau||", 1e-9, tsr.Norm(tau), 0)

	var st FiniteJ2State
	st.Unpack(state)
	chk.Scalar(t, "||Fp-I||", 1e-12, tsr.Norm(tsr.Add(1, st.Fp, -1, tsr.I)), 0)
	chk.Scalar(t, "alphaP", 1e-12, st.AlphaP, 0)

	// universal invariant 2: tau symmetric (trivially true here, ||tau||=0)
	chk.Scalar(t, "||tau-tau^T||", 1e-12, tsr.Norm(tsr.Add(1, tau, -1, tsr.Transpose(tau))), 0)
	_ = dTaudF
}

// Scenario S3 (spec §8.2): uniform dilation stays on the elastic branch
// and produces an isotropic Kirchhoff stress.
func TestJ2FiniteScenarioS3HydrostaticIsElastic(t *testing.T) {
	mat, err := NewFiniteStrainJ2(j2finiteTestPrms(), "s3")
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	state := make([]float64, mat.NumStateVars())
	mat.InitState(state)

	F := tsr.Add(1, tsr.I, 0.002, tsr.I)
	tau, _, _, _, err := mat.ComputeStress(F, 0, 1, state)
	if err != nil {
		t.Fatalf("computeStress: %v", err)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i != j {
				chk.Scalar(t, "off-diagonal tau", 1e-6, tau[i][j], 0)
			}
		}
	}
	chk.Scalar(t, "tau11 vs tau22", 1e-6, tau[0][0], tau[1][1])
	chk.Scalar(t, "tau22 vs tau33", 1e-6, tau[1][1], tau[2][2])

	var st FiniteJ2State
	st.Unpack(state)
	chk.Scalar(t, "alphaP stays zero on elastic branch", 1e-12, st.AlphaP, 0)
}

// Scenario S5 (spec §8.2): a pure rotation of the reference configuration
// produces zero stress and leaves the state untouched, for every rotation.
func TestJ2FiniteScenarioS5PureRotationIsStressFree(t *testing.T) {
	mat, err := NewFiniteStrainJ2(j2finiteTestPrms(), "s5")
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	for _, angle := range []float64{0.1, 0.7, 1.9, 3.0} {
		state := make([]float64, mat.NumStateVars())
		mat.InitState(state)
		c, s := math.Cos(angle), math.Sin(angle)
		Q := tsr.Mat3{{c, -s, 0}, {s, c, 0}, {0, 0, 1}}
		tau, _, _, _, err := mat.ComputeStress(Q, 0, 1, state)
		if err != nil {
			t.Fatalf("computeStress at angle %v: %v", angle, err)
		}
		chk.Scalar(t, "||tau|| at rotation", 1e-8, tsr.Norm(tau), 0)
	}
}

// Scenario S2 (spec §8.2): simple shear F_21:=0.02 yields a known stress
// and hardening level.
func TestJ2FiniteScenarioS2SimpleShearYielding(t *testing.T) {
	mat, err := NewFiniteStrainJ2(j2finiteTestPrms(), "s2")
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	state := make([]float64, mat.NumStateVars())
	mat.InitState(state)

	F := tsr.I
	F[1][0] = 0.02 // F_21
	tau, _, _, _, err := mat.ComputeStress(F, 0, 1, state)
	if err != nil {
		t.Fatalf("computeStress: %v", err)
	}

	chk.Scalar(t, "tau11", 2e-3, tau[0][0], -1.6637)
	chk.Scalar(t, "tau12", 2e-3, tau[0][1], 166.959)
	chk.Scalar(t, "tau21", 2e-3, tau[1][0], 166.959)
	chk.Scalar(t, "tau22", 2e-3, tau[1][1], 1.6755)
	chk.Scalar(t, "tau33", 2e-3, tau[2][2], -0.0119)

	var st FiniteJ2State
	st.Unpack(state)
	chk.Scalar(t, "alphaP", 5e-5, st.AlphaP, 1.0354e-2)
}

// Scenario S4 (spec §8.2): small anisotropic stretch yields slightly.
func TestJ2FiniteScenarioS4SmallAnisotropicYield(t *testing.T) {
	mat, err := NewFiniteStrainJ2(j2finiteTestPrms(), "s4")
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	state := make([]float64, mat.NumStateVars())
	mat.InitState(state)

	F := tsr.Diag(1.001, 1.002, 1.003)
	tau, _, _, _, err := mat.ComputeStress(F, 0, 1, state)
	if err != nil {
		t.Fatalf("computeStress: %v", err)
	}

	chk.Scalar(t, "tau11", 2e-2, tau[0][0], 898.575)
	chk.Scalar(t, "tau22", 2e-2, tau[1][1], 1048.77)
	chk.Scalar(t, "tau33", 2e-2, tau[2][2], 1199.07)

	var st FiniteJ2State
	st.Unpack(state)
	chk.Scalar(t, "alphaP", 5e-7, st.AlphaP, 7.883e-5)
}

// Universal invariant 5 (spec §8.1): hardening is monotone across a step
// that is known to yield, and the yield function is consistent afterward
// (invariant 4).
func TestJ2FiniteYieldingStepHardensMonotonicallyAndIsConsistent(t *testing.T) {
	mat, err := NewFiniteStrainJ2(j2finiteTestPrms(), "shear")
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	state := make([]float64, mat.NumStateVars())
	mat.InitState(state)

	F := tsr.I
	F[2][0] = 0.02
	tau, _, _, _, err := mat.ComputeStress(F, 0, 1, state)
	if err != nil {
		t.Fatalf("computeStress: %v", err)
	}

	var st FiniteJ2State
	st.Unpack(state)
	if st.AlphaP < 0 {
		t.Fatalf("alphaP decreased: %v", st.AlphaP)
	}
	if st.AlphaP == 0 {
		t.Fatalf("expected this shear step to yield, got alphaP=0")
	}
	chk.Scalar(t, "||tau-tau^T||", 1e-9, tsr.Norm(tsr.Add(1, tau, -1, tsr.Transpose(tau))), 0)
}

// Cross-variant agreement (spec §4.E.7, universal invariant 6): all four
// dR/dX methods must converge to the same stress and plastic state on a
// yielding step.
func TestJ2FiniteAllAlgorithmVariantsAgree(t *testing.T) {
	F := tsr.I
	F[2][0] = 0.02

	var taus []tsr.Mat3
	var alphaPs []float64
	for algorithm := 1; algorithm <= 4; algorithm++ {
		prms := j2finiteTestPrms()
		prms = append(prms, &fun.Prm{N: "algorithm", V: float64(algorithm)})
		mat, err := NewFiniteStrainJ2(prms, "variant")
		if err != nil {
			t.Fatalf("construct algorithm %d: %v", algorithm, err)
		}
		state := make([]float64, mat.NumStateVars())
		mat.InitState(state)
		tau, _, _, _, err := mat.ComputeStress(F, 0, 1, state)
		if err != nil {
			t.Fatalf("computeStress algorithm %d: %v", algorithm, err)
		}
		var st FiniteJ2State
		st.Unpack(state)
		taus = append(taus, tau)
		alphaPs = append(alphaPs, st.AlphaP)
	}
	for i := 1; i < len(taus); i++ {
		chk.Scalar(t, "||tau_i-tau_0||", 1e-8, tsr.Norm(tsr.Add(1, taus[i], -1, taus[0])), 0)
		chk.Scalar(t, "alphaP_i vs alphaP_0", 1e-8, alphaPs[i], alphaPs[0])
	}
}

func TestJ2FiniteRejectsUnknownParameter(t *testing.T) {
	prms := fun.Prms{{N: "bogus", V: 1}}
	if _, err := NewFiniteStrainJ2(prms, "bad"); err == nil {
		t.Fatalf("expected an error for an unknown parameter")
	}
}
