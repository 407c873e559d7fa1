// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosolid/cmech"
	"github.com/cpmech/gosolid/la"
	"github.com/cpmech/gosolid/tsr"
)

// j2MaxNewtonIter is the return-mapping iteration cap (spec §4.E.5 step 5:
// "fail after 10 iterations").
const j2MaxNewtonIter = 10

// j2ResidualTol and j2CorrectionTol are the dual stopping criteria of
// spec §4.E.5 step 4.
const (
	j2ResidualTol   = 1e-12
	j2CorrectionTol = 1e-12
)

// j2ReturnMapResult carries everything ComputeStress needs out of a
// return-mapping solve: the updated elastic deformation gradient, the
// plastic deformation-gradient increment, the updated hardening variable,
// and whether the step actually yielded.
type j2ReturnMapResult struct {
	Fe      tsr.Mat3
	DeltaFp tsr.Mat3
	AlphaP  float64
	Plastic bool
	X       []float64 // converged unknown vector (nil on the elastic branch)
}

// j2ReturnMap performs the trial step and, if it yields, the 11-unknown
// Newton return mapping of spec §4.E.5.
func j2ReturnMap(algorithm int, Fetrial tsr.Mat3, alphaPn float64, p j2residualParams) (j2ReturnMapResult, error) {
	betaPn := cmech.HardeningBeta(alphaPn, p.Fy, p.FyInf, p.Eta, p.H)
	Ce := cmech.RightCauchyGreen(Fetrial)
	S := cmech.SecondPK(cmech.GradB(Ce, p.K, p.G))
	M := cmech.Mandel(Ce, S)
	ftr := cmech.YieldFunction(M, betaPn, p.Fy)

	if ftr <= 0 {
		return j2ReturnMapResult{Fe: Fetrial, DeltaFp: tsr.I, AlphaP: alphaPn, Plastic: false}, nil
	}

	x := j2Pack(Fetrial, alphaPn, 0)
	var R []float64
	converged := false
	for iter := 0; iter < j2MaxNewtonIter; iter++ {
		R = j2Residual(x, p)
		Jm := j2Jacobian(algorithm, x, p)
		negR := make([]float64, j2nUnknowns)
		for i := range negR {
			negR[i] = -R[i]
		}
		deltaX, err := la.QRSolveColPivot(Jm, negR)
		if err != nil {
			return j2ReturnMapResult{}, &SingularTangentError{Inner: err}
		}
		la.VecAdd2(x, 1, x, 1, deltaX)
		if la.VecNorm(R) < j2ResidualTol && la.VecNorm(deltaX) < j2CorrectionTol {
			converged = true
			break
		}
	}
	if !converged {
		return j2ReturnMapResult{}, &ReturnMappingError{Iterations: j2MaxNewtonIter, ResidNorm: la.VecNorm(R)}
	}

	Fe, alphaP, _ := j2Unpack(x)
	FeInv, err := tsr.Inverse(Fe)
	if err != nil {
		return j2ReturnMapResult{}, &SingularTangentError{Inner: err}
	}
	deltaFp := tsr.MatMul(FeInv, Fetrial)
	return j2ReturnMapResult{Fe: Fe, DeltaFp: deltaFp, AlphaP: alphaP, Plastic: true, X: x}, nil
}

// j2ElasticTangent returns dtau/dF on the elastic branch (spec §4.E.6,
// second paragraph): dFe/dF = I x (Fpn)^-T directly, composed with the
// hyperelastic stress derivative at Fe.
func j2ElasticTangent(Fe, FpnInv tsr.Mat3, K, G float64) tsr.Ten4 {
	Ce := cmech.RightCauchyGreen(Fe)
	S := cmech.SecondPK(cmech.GradB(Ce, K, G))
	_, hessPsi := cmech.HessianB(Ce, K, G)
	dSdC := cmech.MaterialTangentFromHessian(hessPsi)
	dCdFe := cmech.RightCauchyGreenDeriv(Fe)
	dSdFe := tsr.Ten4Compose(dSdC, dCdFe)
	dTaudFe := cmech.KirchhoffDerivF(Fe, S, dSdFe)
	dFedF := cmech.ElasticGradientFromPlasticInverse(FpnInv)
	return tsr.Ten4Compose(dTaudFe, dFedF)
}

// j2PlasticTangent returns dtau/dF on the plastic branch via the
// implicit-function theorem (spec §4.E.6, first paragraph): dX/dF =
// -(dR/dX)^-1 dR/dF, with the only non-zero block of dR/dF being
// -dFetrial/dF in the Fe rows.
func j2PlasticTangent(algorithm int, x []float64, p j2residualParams, FpnInv tsr.Mat3) (tsr.Ten4, error) {
	Fe, _, _ := j2Unpack(x)
	Jm := j2Jacobian(algorithm, x, p)
	dFetrialdF := cmech.ElasticGradientFromPlasticInverse(FpnInv)

	// dR/dF as an 11 x 9 matrix: rows 0-8 hold -dFetrial/dF, rows 9-10 zero.
	RF := la.MatAlloc(j2nUnknowns, 9)
	for I := 0; I < 3; I++ {
		for J := 0; J < 3; J++ {
			row := I*3 + J
			for m := 0; m < 3; m++ {
				for M := 0; M < 3; M++ {
					col := m*3 + M
					RF[row][col] = -dFetrialdF[I][J][m][M]
				}
			}
		}
	}

	dXdF := la.MatAlloc(j2nUnknowns, 9)
	for col := 0; col < 9; col++ {
		b := make([]float64, j2nUnknowns)
		for row := 0; row < j2nUnknowns; row++ {
			b[row] = -RF[row][col]
		}
		y, err := la.QRSolveColPivot(Jm, b)
		if err != nil {
			return tsr.Ten4{}, &SingularTangentError{Inner: err}
		}
		for row := 0; row < j2nUnknowns; row++ {
			dXdF[row][col] = y[row]
		}
	}

	var dFedF tsr.Ten4
	for I := 0; I < 3; I++ {
		for J := 0; J < 3; J++ {
			row := I*3 + J
			for m := 0; m < 3; m++ {
				for M := 0; M < 3; M++ {
					col := m*3 + M
					dFedF[I][J][m][M] = dXdF[row][col]
				}
			}
		}
	}

	Ce := cmech.RightCauchyGreen(Fe)
	S := cmech.SecondPK(cmech.GradB(Ce, p.K, p.G))
	_, hessPsi := cmech.HessianB(Ce, p.K, p.G)
	dSdC := cmech.MaterialTangentFromHessian(hessPsi)
	dCdFe := cmech.RightCauchyGreenDeriv(Fe)
	dSdFe := tsr.Ten4Compose(dSdC, dCdFe)
	dTaudFe := cmech.KirchhoffDerivF(Fe, S, dSdFe)
	return tsr.Ten4Compose(dTaudFe, dFedF), nil
}
