// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosolid/cmech"
	"github.com/cpmech/gosolid/tsr"
)

// j2nUnknowns is the fixed layout spec §4.E.5 specifies for the
// return-mapping unknowns X = (vec(Fe), alphaP, deltaLambda): rows 0-8 are
// Fe (row-major), row 9 is alphaP, row 10 is deltaLambda.
const j2nUnknowns = 11

func j2Pack(Fe tsr.Mat3, alphaP, deltaLambda float64) []float64 {
	x := make([]float64, j2nUnknowns)
	k := 0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			x[k] = Fe[i][j]
			k++
		}
	}
	x[9] = alphaP
	x[10] = deltaLambda
	return x
}

func j2Unpack(x []float64) (Fe tsr.Mat3, alphaP, deltaLambda float64) {
	k := 0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			Fe[i][j] = x[k]
			k++
		}
	}
	alphaP = x[9]
	deltaLambda = x[10]
	return
}

// j2residualParams collects everything the residual needs besides X itself
type j2residualParams struct {
	Fetrial              tsr.Mat3
	AlphaPn              float64
	K, G                 float64
	Fy, FyInf, Eta, H    float64
	ExpAbsTol, ExpRelTol float64
}

// j2Residual evaluates R(X) per spec §4.E.5:
//
//	rows 0-8:  Fe.(exp(deltaLambda df/dM))^T - Fetrial = 0
//	row 9:     alphaP + deltaLambda df/dbeta - alphaPn = 0
//	row 10:    f(M(Fe), beta(alphaP)) = 0
func j2Residual(x []float64, p j2residualParams) []float64 {
	Fe, alphaP, deltaLambda := j2Unpack(x)
	Ce := cmech.RightCauchyGreen(Fe)
	S := cmech.SecondPK(cmech.GradB(Ce, p.K, p.G))
	M := cmech.Mandel(Ce, S)
	betaP := cmech.HardeningBeta(alphaP, p.Fy, p.FyInf, p.Eta, p.H)
	gradM := cmech.YieldGradM(M, p.Fy)
	dGp := tsr.Scale(deltaLambda, gradM)
	deltaFp, _ := cmech.ExpMapFlow(dGp, p.ExpAbsTol, p.ExpRelTol)
	lhs := tsr.MatMul(Fe, deltaFp)

	R := make([]float64, j2nUnknowns)
	k := 0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			R[k] = lhs[i][j] - p.Fetrial[i][j]
			k++
		}
	}
	dfdbeta := cmech.YieldGradBeta(p.Fy)
	R[9] = alphaP + deltaLambda*dfdbeta - p.AlphaPn
	R[10] = cmech.YieldFunction(M, betaP, p.Fy)
	return R
}

// j2ResidualComplex is the complex128-analytic-continuation analogue of
// j2Residual, used by the complex-step Jacobian variant (spec §4.E.7
// selector 4): any unknown in xc may carry a complex-step perturbation in
// its imaginary part, which must propagate through every stage (Ce, S, M,
// betaP, the flow direction, and the exponential map) without being
// collapsed back to a real number along the way.
func j2ResidualComplex(xc []complex128, p j2residualParams) []complex128 {
	var Fe cmech.Mat3C
	k := 0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			Fe[i][j] = xc[k]
			k++
		}
	}
	alphaP := xc[9]
	deltaLambda := xc[10]

	Ce := cmech.MatMulTAC(Fe, Fe)
	S := cmech.ScaleC(2, cmech.GradBc(Ce, p.K, p.G))
	M := cmech.MandelC(Ce, S)
	betaP := cmech.HardeningBetaC(alphaP, p.Fy, p.FyInf, p.Eta, p.H)
	gradM := cmech.YieldGradMC(M, p.Fy)
	dGp := cmech.ScaleC2(deltaLambda, gradM)
	deltaFp := cmech.TransposeC(cmech.ExpC(dGp))
	lhs := cmech.MatMulC(Fe, deltaFp)

	var Fetrial cmech.Mat3C
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			Fetrial[i][j] = complex(p.Fetrial[i][j], 0)
		}
	}

	Rc := make([]complex128, j2nUnknowns)
	k = 0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			Rc[k] = lhs[i][j] - Fetrial[i][j]
			k++
		}
	}
	dfdbeta := complex(cmech.YieldGradBeta(p.Fy), 0)
	alphaPn := complex(p.AlphaPn, 0)
	Rc[9] = alphaP + deltaLambda*dfdbeta - alphaPn
	Rc[10] = cmech.YieldFunctionC(M, betaP, p.Fy)
	return Rc
}
