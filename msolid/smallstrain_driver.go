// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"io"
	"math"

	"github.com/cpmech/gosolid/journal"
	"github.com/cpmech/gosolid/tsr"
)

// SmallStrainDriver steps a SmallStrain model through a list of mixed
// strain/stress Steps (spec §4.F): it owns the accumulated strain and
// state, performs the substep/mixed-control Newton solve of §4.F.2-3,
// and records the committed path as History.
type SmallStrainDriver struct {
	Model   SmallStrain
	Opts    SolverOptions
	Strain  [6]float64
	State   []float64
	History []HistoryEntry
	Log     *journal.Sink
}

// NewSmallStrainDriver constructs a driver at the model's reference
// state (spec §4.F.1 "construct").
func NewSmallStrainDriver(model SmallStrain, opts SolverOptions) *SmallStrainDriver {
	d := &SmallStrainDriver{Model: model, Opts: opts, Log: journal.Discard}
	d.State = make([]float64, model.NumStateVars())
	model.InitState(d.State)
	return d
}

// RunStep advances the driver through step, substepping on non-convergence
// down to opts.DtMin and growing the substep afterward (spec §4.F.2).
func (d *SmallStrainDriver) RunStep(step Step) error {
	if err := validateStep(step, 6); err != nil {
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

		var strainTargetInc, stressTargetInc [6]float64
		for i := 0; i < 6; i++ {
			if step.Control[i] == StrainControlled {
				strainTargetInc[i] = frac * step.Target[i]
			} else {
				stressTargetInc[i] = frac * step.Target[i]
			}
		}

		baseStrain := d.Strain
		baseState := append([]float64(nil), d.State...)
		baseStress, _, berr := d.Model.ComputeStress(baseStrain, t, dt, append([]float64(nil), baseState...))
		if berr != nil {
			return berr
		}

		stateWork := make([]float64, len(baseState))
		eval := func(delta []float64) ([]float64, [][]float64, error) {
			var trial [6]float64
			for i := 0; i < 6; i++ {
				trial[i] = baseStrain[i] + delta[i]
			}
			copy(stateWork, baseState)
			stress, D, cerr := d.Model.ComputeStress(trial, t+dt, dt, stateWork)
			if cerr != nil {
				return nil, nil, cerr
			}
			inc := make([]float64, 6)
			for i := 0; i < 6; i++ {
				inc[i] = stress[i] - baseStress[i]
			}
			tangent := make([][]float64, 6)
			for i := 0; i < 6; i++ {
				tangent[i] = append([]float64(nil), D[i][:]...)
			}
			return inc, tangent, nil
		}

		delta, err := newtonMixedControl(6, step.Control, strainTargetInc[:], stressTargetInc[:], d.Opts, eval)
		if err != nil {
			d.Log.Warnf("small-strain increment cut at t=%v (dt=%v): %v", t, dt, err)
			dt *= 0.5
			if dt < d.Opts.DtMin {
				return &MinStepError{DtMin: d.Opts.DtMin, DtAttempted: dt}
			}
			continue
		}

		var newStrain [6]float64
		for i := 0; i < 6; i++ {
			newStrain[i] = baseStrain[i] + delta[i]
		}
		finalStress, finalD, ferr := d.Model.ComputeStress(newStrain, t+dt, dt, stateWork)
		if ferr != nil {
			return ferr
		}

		t += dt
		d.Strain = newStrain
		d.State = append([]float64(nil), stateWork...)
		d.History = append(d.History, HistoryEntry{
			Time:      t,
			Stress:    finalStress,
			Strain:    newStrain,
			F:         tsr.I,
			Tangent:   flatten6x6Rows(finalD),
			StateVars: append([]float64(nil), d.State...),
		})
		dt = math.Min(dt*1.5, d.Opts.DtMax)
	}
	return nil
}

// WriteHistoryCSV exports the committed path in the column layout of
// spec §6.4: time, the six Voigt stress components, the six Voigt
// strain components.
func (d *SmallStrainDriver) WriteHistoryCSV(w io.Writer) error {
	return writeHistoryCSV(d.History, w)
}
