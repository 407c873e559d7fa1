// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import "github.com/cpmech/gosolid/la"

// mixedControlEval is called by newtonMixedControl with a candidate
// unknown-increment vector delta (length n) and must return the
// corresponding response-increment vector and its tangent rows with
// respect to delta (spec §4.F.3 steps 1-3).
type mixedControlEval func(delta []float64) (responseInc []float64, tangent [][]float64, err error)

// newtonMixedControl solves the n-unknown mixed strain/stress increment
// of spec §4.F.3: for strain-controlled rows the unknown is pinned
// directly at its target (row replaced by the identity equation), for
// stress-controlled rows the residual is the response-increment error.
// Shared by the small- and finite-strain drivers, which differ only in
// the meaning of n (6 Voigt components, or 9 deformation-gradient
// components) and in how eval turns a trial delta into a stress/
// Kirchhoff response.
func newtonMixedControl(n int, control []ControlKind, strainTargetInc, stressTargetInc []float64, opts SolverOptions, eval mixedControlEval) (delta []float64, err error) {
	delta = make([]float64, n)
	for i := 0; i < n; i++ {
		if control[i] == StrainControlled {
			delta[i] = strainTargetInc[i]
		}
	}

	var R []float64
	for iter := 0; iter < opts.MaxIterations; iter++ {
		responseInc, tangent, everr := eval(delta)
		if everr != nil {
			return nil, everr
		}

		R = make([]float64, n)
		A := la.MatAlloc(n, n)
		for i := 0; i < n; i++ {
			if control[i] == StrainControlled {
				R[i] = delta[i] - strainTargetInc[i]
				A[i][i] = 1
			} else {
				R[i] = responseInc[i] - stressTargetInc[i]
				copy(A[i], tangent[i])
			}
		}

		negR := make([]float64, n)
		for i := range negR {
			negR[i] = -R[i]
		}
		corr, serr := la.LUSolveFullPivot(A, negR)
		if serr != nil {
			return nil, &SingularTangentError{Inner: serr}
		}
		for i := 0; i < n; i++ {
			delta[i] += corr[i]
		}

		if la.VecNorm(R) < opts.ResidualTolerance && la.VecNorm(corr) < opts.CorrectionTolerance {
			return delta, nil
		}
	}
	return nil, &NonConvergentIncrementError{Iterations: opts.MaxIterations, ResidNorm: la.VecNorm(R)}
}
