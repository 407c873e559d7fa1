// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cpmech/gosolid/tsr"
	"github.com/cpmech/gosolid/utl"
)

// ControlKind marks one component of a driver Step as strain- or
// stress-controlled (spec §4.F.1, §4.F.3).
type ControlKind int

const (
	StrainControlled ControlKind = iota
	StressControlled
)

// MarshalJSON renders a ControlKind as "strain" or "stress", so a Path
// JSON file reads the way spec §4.F.1 describes a step list.
func (c ControlKind) MarshalJSON() ([]byte, error) {
	if c == StressControlled {
		return []byte(`"stress"`), nil
	}
	return []byte(`"strain"`), nil
}

// UnmarshalJSON accepts "strain" or "stress".
func (c *ControlKind) UnmarshalJSON(b []byte) error {
	switch string(b) {
	case `"stress"`:
		*c = StressControlled
	case `"strain"`:
		*c = StrainControlled
	default:
		return fmt.Errorf("msolid: invalid control kind %s", b)
	}
	return nil
}

// Step describes one piecewise-linear target trajectory in pseudo-time
// (spec §4.F.1 "step list"): exactly one control kind per component, and
// the component's TOTAL target change over [TStart,TEnd].
type Step struct {
	Control []ControlKind `json:"control"`
	Target  []float64     `json:"target"`
	TStart  float64       `json:"tStart"`
	TEnd    float64       `json:"tEnd"`
}

// Path is an ordered list of Steps loadable from JSON (spec §4.F.1),
// mirroring the teacher repository's msolid/path.go ReadJson convention.
type Path struct {
	Steps []Step `json:"steps"`
}

// ReadPathJSON reads and parses a Path JSON file.
func ReadPathJSON(fn string) (*Path, error) {
	b, err := utl.ReadFile(fn)
	if err != nil {
		return nil, utl.Err("msolid: cannot open path file %q: %v", fn, err)
	}
	var p Path
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, utl.Err("msolid: cannot parse path file %q: %v", fn, err)
	}
	return &p, nil
}

// SolverOptions collects the driver's solver knobs (spec §4.F.1).
type SolverOptions struct {
	MaxIterations       int
	ResidualTolerance   float64
	CorrectionTolerance float64
	DtStart, DtMin, DtMax float64
}

// DefaultSolverOptions returns the defaults spec §4.F.1 names.
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		MaxIterations:       25,
		ResidualTolerance:   1e-10,
		CorrectionTolerance: 1e-10,
		DtStart:             1,
		DtMin:               1e-6,
		DtMax:               1,
	}
}

// HistoryEntry is one recorded increment (spec §3.5 "(t, tau, F, dtau/dF,
// state snapshot)", §4.F.2 "commit ... history"). Stress/Strain are the
// Voigt-packed (spec §6.3) tau/strain; F is the deformation gradient
// (identity for the small-strain driver, which has no F of its own);
// Tangent is the response tangent in the driver's native dimension: 6x6
// for the small-strain driver, or the 9x9 row-major flattening of
// dtau/dF for the finite-strain driver.
type HistoryEntry struct {
	Time      float64
	Stress    [6]float64
	Strain    [6]float64
	F         tsr.Mat3
	Tangent   [][]float64
	StateVars []float64
}

// flatten6x6Rows copies a fixed 6x6 tangent into row slices, the
// small-strain analogue of flattenTen4Rows.
func flatten6x6Rows(D [6][6]float64) [][]float64 {
	rows := make([][]float64, 6)
	for i := 0; i < 6; i++ {
		rows[i] = append([]float64(nil), D[i][:]...)
	}
	return rows
}

// validateStep checks exactly one control flag per component and a
// non-degenerate time span (spec §7 InvalidArgument).
func validateStep(step Step, n int) error {
	if len(step.Control) != n || len(step.Target) != n {
		return &InvalidArgumentError{Msg: "step control/target length must match the model's control dimension"}
	}
	if step.TEnd <= step.TStart {
		return &InvalidArgumentError{Msg: "step TEnd must exceed TStart"}
	}
	return nil
}

// writeHistoryCSV exports history in the column layout of spec §6.4: a
// "#"-prefixed header, then time, the six Voigt stress components, the
// six Voigt strain components (§6.3 order 11,22,33,12,13,23), and the
// state-var columns, one per HistoryEntry.StateVars slot. Shared by the
// small- and finite-strain drivers.
func writeHistoryCSV(history []HistoryEntry, w io.Writer) error {
	nState := 0
	if len(history) > 0 {
		nState = len(history[0].StateVars)
	}
	header := "#Time,Stress_11,Stress_22,Stress_33,Stress_12,Stress_13,Stress_23," +
		"Strain_11,Strain_22,Strain_33,Strain_12,Strain_13,Strain_23"
	for i := 1; i <= nState; i++ {
		header += fmt.Sprintf(",StateVar_%d", i)
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	for _, h := range history {
		_, err := fmt.Fprintf(w, "%.8e,%.8e,%.8e,%.8e,%.8e,%.8e,%.8e,%.8e,%.8e,%.8e,%.8e,%.8e,%.8e",
			h.Time,
			h.Stress[0], h.Stress[1], h.Stress[2], h.Stress[3], h.Stress[4], h.Stress[5],
			h.Strain[0], h.Strain[1], h.Strain[2], h.Strain[3], h.Strain[4], h.Strain[5])
		if err != nil {
			return err
		}
		for _, sv := range h.StateVars {
			if _, err := fmt.Fprintf(w, ",%.8e", sv); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
