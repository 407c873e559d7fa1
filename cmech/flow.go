// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmech

import "github.com/cpmech/gosolid/tsr"

// FlowIntegration selects which plastic-flow increment integrator turns a
// "plastic velocity" tensor deltaGp into a plastic deformation-gradient
// increment (spec §4.D.4).
type FlowIntegration int

const (
	// ExponentialMap produces deltaFp = (exp(deltaGp))^T
	ExponentialMap FlowIntegration = iota
	// ExplicitIntegration produces deltaFp = (I+deltaGp)^T with constant Jacobian
	ExplicitIntegration
)

// ExpMapFlow returns deltaFp = (exp(deltaGp))^T and its derivative
// d(deltaFp)_ij/d(deltaGp)_kl, obtained from tsr.ExpDeriv by the index swap
// the transpose introduces. The transpose is intentional (spec §4.D.4): the
// flow is written in the intermediate configuration, and Fp follows a
// right-to-left accumulation convention, Fp_{n+1} = deltaFp . Fp_n (applied
// in msolid's FiniteStrainJ2.ComputeStress).
func ExpMapFlow(deltaGp tsr.Mat3, absTol, relTol float64) (deltaFp tsr.Mat3, deriv tsr.Ten4) {
	E := tsr.Exp(deltaGp, absTol, relTol)
	deltaFp = tsr.Transpose(E)
	ED := tsr.ExpDeriv(deltaGp, absTol, relTol)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					deriv[i][j][k][l] = ED[j][i][k][l]
				}
			}
		}
	}
	return
}

// ExplicitFlow returns deltaFp = (I+deltaGp)^T and its constant Jacobian
// d(deltaFp)_ij/d(deltaGp)_kl = delta_jk delta_il (spec §4.D.4).
func ExplicitFlow(deltaGp tsr.Mat3) (deltaFp tsr.Mat3, deriv tsr.Ten4) {
	deltaFp = tsr.Transpose(tsr.Add(1, tsr.I, 1, deltaGp))
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					var djk, dil float64
					if j == k {
						djk = 1
					}
					if i == l {
						dil = 1
					}
					deriv[i][j][k][l] = djk * dil
				}
			}
		}
	}
	return
}

// IntegrateFlow dispatches to ExpMapFlow or ExplicitFlow per kind.
func IntegrateFlow(kind FlowIntegration, deltaGp tsr.Mat3, absTol, relTol float64) (tsr.Mat3, tsr.Ten4) {
	switch kind {
	case ExplicitIntegration:
		return ExplicitFlow(deltaGp)
	default:
		return ExpMapFlow(deltaGp, absTol, relTol)
	}
}
