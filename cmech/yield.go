// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmech

import (
	"math"

	"github.com/cpmech/gosolid/tsr"
)

// YieldFloor regularizes the deviatoric-Mandel-stress norm in the yield
// function against division by (near) zero (spec §4.E.3, "if it falls
// below 1e-15 it is clamped to that floor before division"). A smoother
// Koiter-style regularization is a deliberately unimplemented improvement:
// the flat floor is what the spec specifies.
const YieldFloor = 1e-15

// sqrt2Over3 is sqrt(2/3), the hardening-to-yield-norm conversion factor
var sqrt2Over3 = math.Sqrt(2.0 / 3.0)

// HardeningBeta evaluates the isotropic saturation hardening law (spec
// §4.E.2):
//
//	beta_p(alpha_p) = fyInf + (fy - fyInf) exp(-eta alpha_p) + H alpha_p
func HardeningBeta(alphaP, fy, fyInf, eta, H float64) float64 {
	return fyInf + (fy-fyInf)*math.Exp(-eta*alphaP) + H*alphaP
}

// HardeningBetaDeriv evaluates beta_p'(alpha_p) = -eta(fy-fyInf)exp(-eta alpha_p) + H
func HardeningBetaDeriv(alphaP, fy, fyInf, eta, H float64) float64 {
	return -eta*(fy-fyInf)*math.Exp(-eta*alphaP) + H
}

// Mandel returns M = Ce . S, the Mandel stress conjugate to the elastic
// right Cauchy-Green tensor (spec §4.E.4), given the already-computed
// second Piola-Kirchhoff stress S = 2 dPsi/dCe.
func Mandel(Ce, S tsr.Mat3) tsr.Mat3 {
	return tsr.MatMul(Ce, S)
}

// YieldFunction evaluates f(M,beta_p) = (1/fy) ( ||dev M|| - sqrt(2/3) beta_p )
// with the norm floored at YieldFloor before any division (spec §4.E.3).
func YieldFunction(M tsr.Mat3, betaP, fy float64) float64 {
	n := devNorm(M)
	return (n - sqrt2Over3*betaP) / fy
}

// devNorm returns the Frobenius norm of dev(M), floored at YieldFloor
func devNorm(M tsr.Mat3) float64 {
	n := tsr.Norm(tsr.Dev(M))
	if n < YieldFloor {
		return YieldFloor
	}
	return n
}

// YieldGradM returns df/dM = (1/(fy ||dev M||)) dev M
func YieldGradM(M tsr.Mat3, fy float64) tsr.Mat3 {
	n := devNorm(M)
	return tsr.Scale(1.0/(fy*n), tsr.Dev(M))
}

// YieldHessMM returns d2f/dMdM analytically from the deviatoric projector
// and the outer product of dev(M) with itself (spec §4.E.3):
//
//	d2f/dMdM = (1/(fy ||dev M||)) Dproj  -  (1/(fy ||dev M||^3)) (devM x devM)
func YieldHessMM(M tsr.Mat3, fy float64) tsr.Ten4 {
	n := devNorm(M)
	devM := tsr.Dev(M)
	a := 1.0 / (fy * n)
	b := 1.0 / (fy * n * n * n)
	return tsr.Ten4Add(a, tsr.Dproj, -b, tsr.Outer(devM, devM))
}

// YieldGradBeta returns df/dbeta_p = -sqrt(2/3)/fy, a constant
func YieldGradBeta(fy float64) float64 {
	return -sqrt2Over3 / fy
}
