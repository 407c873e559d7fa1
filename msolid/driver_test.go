// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cpmech/gosolid/chk"
	"github.com/cpmech/gosolid/fun"
	"github.com/cpmech/gosolid/tsr"
	"github.com/cpmech/gosolid/tsr/voigt"
)

func s6Material() (*SmallStrainElastic, error) {
	return NewSmallStrainElastic(fun.Prms{{N: "E", V: 210000}, {N: "nu", V: 0.3}}, "s6")
}

// Scenario S6 (spec §8.2): a mixed strain/stress step against the linear
// elastic collaborator converges onto tau11=300 with zero shear.
func TestSmallStrainDriverScenarioS6MixedControl(t *testing.T) {
	mat, err := s6Material()
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	driver := NewSmallStrainDriver(mat, DefaultSolverOptions())

	step := Step{
		Control: []ControlKind{StressControlled, StrainControlled, StrainControlled, StrainControlled, StrainControlled, StrainControlled},
		Target:  []float64{300, 0, 0, 0, 0, 0},
		TStart:  0,
		TEnd:    1,
	}
	if err := driver.RunStep(step); err != nil {
		t.Fatalf("RunStep: %v", err)
	}
	if len(driver.History) != 1 {
		t.Fatalf("expected one committed increment, got %d", len(driver.History))
	}
	last := driver.History[0]
	chk.Scalar(t, "tau11", 1e-8, last.Stress[0], 300)
	for i := 3; i < 6; i++ {
		chk.Scalar(t, "shear stress", 1e-10, last.Stress[i], 0)
	}
	for i := 1; i < 6; i++ {
		chk.Scalar(t, "pinned strain", 1e-12, last.Strain[i], 0)
	}
}

func TestSmallStrainDriverWriteHistoryCSV(t *testing.T) {
	mat, err := s6Material()
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	driver := NewSmallStrainDriver(mat, DefaultSolverOptions())
	step := Step{
		Control: []ControlKind{StrainControlled, StrainControlled, StrainControlled, StrainControlled, StrainControlled, StrainControlled},
		Target:  []float64{0.001, 0, 0, 0, 0, 0},
		TStart:  0,
		TEnd:    1,
	}
	if err := driver.RunStep(step); err != nil {
		t.Fatalf("RunStep: %v", err)
	}
	var buf bytes.Buffer
	if err := driver.WriteHistoryCSV(&buf); err != nil {
		t.Fatalf("WriteHistoryCSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected a header and one data line, got %d lines", len(lines))
	}
	if lines[0] != "#Time,Stress_11,Stress_22,Stress_33,Stress_12,Stress_13,Stress_23,Strain_11,Strain_22,Strain_33,Strain_12,Strain_13,Strain_23" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
}

// The finite-strain J2 collaborator carries state vars (Fp, alphap), so its
// CSV must gain trailing statevar columns (spec §6.4).
func TestFiniteStrainDriverWriteHistoryCSVIncludesStateVars(t *testing.T) {
	prms := j2finiteTestPrms()
	model, err := NewFiniteStrainJ2(prms, "csv")
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	driver := NewFiniteStrainDriver(model, DefaultSolverOptions())
	control := make([]ControlKind, 9)
	F := tsr.I
	F[2][0] = 0.02
	step := Step{Control: control, Target: flattenMat3(tsr.Add(1, F, -1, tsr.I)), TStart: 0, TEnd: 1}
	if err := driver.RunStep(step); err != nil {
		t.Fatalf("RunStep: %v", err)
	}
	var buf bytes.Buffer
	if err := driver.WriteHistoryCSV(&buf); err != nil {
		t.Fatalf("WriteHistoryCSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if !strings.HasPrefix(lines[0], "#Time,Stress_11,Stress_22,Stress_33,Stress_12,Stress_13,Stress_23,Strain_11,Strain_22,Strain_33,Strain_12,Strain_13,Strain_23,StateVar_1,") {
		t.Fatalf("header missing statevar columns: %q", lines[0])
	}
	nCols := len(strings.Split(lines[0], ","))
	wantCols := 13 + model.NumStateVars()
	if nCols != wantCols {
		t.Fatalf("expected %d columns, got %d: %q", wantCols, nCols, lines[0])
	}
	dataCols := len(strings.Split(lines[1], ","))
	if dataCols != wantCols {
		t.Fatalf("expected %d data columns, got %d", wantCols, dataCols)
	}
}

// A fully strain-controlled finite-strain driver step must reproduce the
// same result as a direct ComputeStress call (spec §4.F.3): with every
// component strain-controlled the mixed-control Newton solves in one
// iteration at the prescribed target.
func TestFiniteStrainDriverFullyStrainControlledMatchesDirectCall(t *testing.T) {
	prms := j2finiteTestPrms()
	direct, err := NewFiniteStrainJ2(prms, "direct")
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	stateDirect := make([]float64, direct.NumStateVars())
	direct.InitState(stateDirect)
	F := tsr.I
	F[2][0] = 0.02
	tauDirect, _, _, _, err := direct.ComputeStress(F, 0, 1, stateDirect)
	if err != nil {
		t.Fatalf("direct computeStress: %v", err)
	}

	viaDriver, err := NewFiniteStrainJ2(prms, "viaDriver")
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	driver := NewFiniteStrainDriver(viaDriver, DefaultSolverOptions())
	control := make([]ControlKind, 9)
	target := flattenMat3(tsr.Add(1, F, -1, tsr.I))
	step := Step{Control: control, Target: target, TStart: 0, TEnd: 1}
	if err := driver.RunStep(step); err != nil {
		t.Fatalf("RunStep: %v", err)
	}
	if len(driver.History) != 1 {
		t.Fatalf("expected one committed increment, got %d", len(driver.History))
	}
	chk.Scalar(t, "||F-I|| after step", 1e-12, tsr.Norm(tsr.Add(1, driver.F, -1, F)), 0)

	tauDirectVoigt := voigt.ToVoigtStress(tauDirect)
	for i := 0; i < 6; i++ {
		chk.Scalar(t, "tauViaDriver vs tauDirect", 1e-8, driver.History[0].Stress[i], tauDirectVoigt[i])
	}
}

// Universal invariant 10 (spec §8.1, §4.F.4): Turbokreisel passes for a
// linear-elastic material under pure-strain steps.
func TestTurbokreiselPassesForLinearElastic(t *testing.T) {
	newModel := func() (SmallStrain, error) { return s6Material() }
	step := Step{
		Control: []ControlKind{StrainControlled, StrainControlled, StrainControlled, StrainControlled, StrainControlled, StrainControlled},
		Target:  []float64{0.01, -0.002, -0.002, 0.003, 0.001, -0.0015},
		TStart:  0,
		TEnd:    1,
	}
	results, err := RunTurbokreisel(newModel, []Step{step}, 100, 1e-10, 1e-8)
	if err != nil {
		t.Fatalf("RunTurbokreisel: %v", err)
	}
	if len(results) != 100 {
		t.Fatalf("expected 100 orientations, got %d", len(results))
	}
	for _, r := range results {
		if !r.Passed {
			t.Fatalf("orientation failed frame-indifference: stressResidual=%e tangentResidual=%e", r.StressResidual, r.TangentResidual)
		}
	}
}
