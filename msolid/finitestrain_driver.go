// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"io"
	"math"

	"github.com/cpmech/gosolid/journal"
	"github.com/cpmech/gosolid/tsr"
	"github.com/cpmech/gosolid/tsr/voigt"
)

// FiniteStrainDriver steps a FiniteStrain model through a list of mixed
// deformation-gradient/Kirchhoff-stress Steps (spec §4.F), the 9-unknown
// analogue of SmallStrainDriver: the control vector addresses the 9
// components of F (row-major, index i*3+j) instead of the 6 Voigt strain
// components.
type FiniteStrainDriver struct {
	Model   FiniteStrain
	Opts    SolverOptions
	F       tsr.Mat3
	State   []float64
	History []HistoryEntry
	Log     *journal.Sink
}

// NewFiniteStrainDriver constructs a driver at F=I, the model's reference
// state (spec §4.F.1 "construct").
func NewFiniteStrainDriver(model FiniteStrain, opts SolverOptions) *FiniteStrainDriver {
	d := &FiniteStrainDriver{Model: model, Opts: opts, F: tsr.I, Log: journal.Discard}
	d.State = make([]float64, model.NumStateVars())
	model.InitState(d.State)
	return d
}

func flattenMat3(T tsr.Mat3) []float64 {
	v := make([]float64, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v[i*3+j] = T[i][j]
		}
	}
	return v
}

func unflattenMat3(v []float64) (T tsr.Mat3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			T[i][j] = v[i*3+j]
		}
	}
	return
}

func flattenTen4Rows(D tsr.Ten4) [][]float64 {
	rows := make([][]float64, 9)
	for I := 0; I < 3; I++ {
		for J := 0; J < 3; J++ {
			row := make([]float64, 9)
			for m := 0; m < 3; m++ {
				for M := 0; M < 3; M++ {
					row[m*3+M] = D[I][J][m][M]
				}
			}
			rows[I*3+J] = row
		}
	}
	return rows
}

// RunStep advances the driver through step, substepping on non-convergence
// down to opts.DtMin and growing the substep afterward (spec §4.F.2).
func (d *FiniteStrainDriver) RunStep(step Step) error {
	if err := validateStep(step, 9); err != nil {
		return err
	}
	span := step.TEnd - step.TStart
	t := step.TStart
	dt := math.Min(d.Opts.DtStart, span)

	for math.Abs(t-step.TEnd) > 1e-12 {
		if t+dt > step.TEnd {
			dt = step.TEnd - t
		}
		frac := dt / span

		strainTargetInc := make([]float64, 9)
		stressTargetInc := make([]float64, 9)
		for i := 0; i < 9; i++ {
			if step.Control[i] == StrainControlled {
				strainTargetInc[i] = frac * step.Target[i]
			} else {
				stressTargetInc[i] = frac * step.Target[i]
			}
		}

		baseF := d.F
		baseFv := flattenMat3(baseF)
		baseState := append([]float64(nil), d.State...)
		baseTau, _, _, _, berr := d.Model.ComputeStress(baseF, t, dt, append([]float64(nil), baseState...))
		if berr != nil {
			return berr
		}
		baseTauv := flattenMat3(baseTau)

		stateWork := make([]float64, len(baseState))
		eval := func(delta []float64) ([]float64, [][]float64, error) {
			trialFv := make([]float64, 9)
			for i := 0; i < 9; i++ {
				trialFv[i] = baseFv[i] + delta[i]
			}
			trialF := unflattenMat3(trialFv)
			copy(stateWork, baseState)
			tau, _, _, dTaudF, cerr := d.Model.ComputeStress(trialF, t+dt, dt, stateWork)
			if cerr != nil {
				return nil, nil, cerr
			}
			tauv := flattenMat3(tau)
			inc := make([]float64, 9)
			for i := 0; i < 9; i++ {
				inc[i] = tauv[i] - baseTauv[i]
			}
			return inc, flattenTen4Rows(dTaudF), nil
		}

		delta, err := newtonMixedControl(9, step.Control, strainTargetInc, stressTargetInc, d.Opts, eval)
		if err != nil {
			d.Log.Warnf("finite-strain increment cut at t=%v (dt=%v): %v", t, dt, err)
			dt *= 0.5
			if dt < d.Opts.DtMin {
				return &MinStepError{DtMin: d.Opts.DtMin, DtAttempted: dt}
			}
			continue
		}

		newFv := make([]float64, 9)
		for i := 0; i < 9; i++ {
			newFv[i] = baseFv[i] + delta[i]
		}
		newF := unflattenMat3(newFv)
		finalTau, _, _, finalDTaudF, ferr := d.Model.ComputeStress(newF, t+dt, dt, stateWork)
		if ferr != nil {
			return ferr
		}

		t += dt
		d.F = newF
		d.State = append([]float64(nil), stateWork...)

		C := tsr.MatMulTA(newF, newF)
		E := tsr.Scale(0.5, tsr.Add(1, C, -1, tsr.I))
		d.History = append(d.History, HistoryEntry{
			Time:      t,
			Stress:    voigt.ToVoigtStress(finalTau),
			Strain:    voigt.ToVoigtStrain(E),
			F:         newF,
			Tangent:   flattenTen4Rows(finalDTaudF),
			StateVars: append([]float64(nil), d.State...),
		})
		dt = math.Min(dt*1.5, d.Opts.DtMax)
	}
	return nil
}

// WriteHistoryCSV exports the committed path in the column layout of
// spec §6.4, with strain reported as Green-Lagrange E = (F^T F - I)/2.
func (d *FiniteStrainDriver) WriteHistoryCSV(w io.Writer) error {
	return writeHistoryCSV(d.History, w)
}
