// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosolid/cmech"
	"github.com/cpmech/gosolid/dual"
	"github.com/cpmech/gosolid/tsr"
)

// j2ResidualDual is the Dual-arithmetic analogue of j2Residual, used by
// j2JacobianAD (spec §4.E.7 selector 1) to obtain dR/dX by forward-mode
// automatic differentiation instead of a hand-derived closed form.
func j2ResidualDual(xd []dual.Dual, p j2residualParams) []dual.Dual {
	order := xd[0].Order()
	var Fe dual.Mat3D
	k := 0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			Fe[i][j] = xd[k]
			k++
		}
	}
	alphaP := xd[9]
	deltaLambda := xd[10]

	Ce := dual.MatMulTAD(Fe, Fe)
	S := dual.ScaleD(2, cmech.GradBDual(Ce, p.K, p.G))
	M := dual.MatMulD(Ce, S)
	betaP := j2HardeningBetaDual(alphaP, p.Fy, p.FyInf, p.Eta, p.H)
	gradM := j2YieldGradMDual(M, p.Fy)
	dGp := dual.ScaleD2(deltaLambda, gradM)
	deltaFp := dual.TransposeD(dual.ExpD(dGp, tsr.MaxExpTerms))
	lhs := dual.MatMulD(Fe, deltaFp)

	Rd := make([]dual.Dual, j2nUnknowns)
	k = 0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			Rd[k] = dual.Sub(lhs[i][j], dual.Const(p.Fetrial[i][j], order))
			k++
		}
	}
	dfdbeta := dual.Const(cmech.YieldGradBeta(p.Fy), order)
	Rd[9] = dual.Sub(dual.Add(alphaP, dual.Mul(deltaLambda, dfdbeta)), dual.Const(p.AlphaPn, order))
	Rd[10] = j2YieldFunctionDual(M, betaP, p.Fy)
	return Rd
}

func j2HardeningBetaDual(alphaP dual.Dual, fy, fyInf, eta, H float64) dual.Dual {
	order := alphaP.Order()
	decay := dual.Exp(dual.Scale(-eta, alphaP))
	return dual.Add(
		dual.Add(dual.Const(fyInf, order), dual.Scale(fy-fyInf, decay)),
		dual.Scale(H, alphaP),
	)
}

func j2YieldGradMDual(M dual.Mat3D, fy float64) dual.Mat3D {
	devM := dual.DevD(M)
	n2 := dual.DoubleDotD(devM, devM)
	n := dual.Sqrt(n2)
	if n.Value() < cmech.YieldFloor {
		n = dual.Const(cmech.YieldFloor, n.Order())
	}
	return dual.ScaleD2(dual.Inv(dual.Scale(fy, n)), devM)
}

func j2YieldFunctionDual(M dual.Mat3D, betaP dual.Dual, fy float64) dual.Dual {
	order := betaP.Order()
	devM := dual.DevD(M)
	n2 := dual.DoubleDotD(devM, devM)
	n := dual.Sqrt(n2)
	if n.Value() < cmech.YieldFloor {
		n = dual.Const(cmech.YieldFloor, n.Order())
	}
	sqrt2Over3 := dual.Const(0.816496580927726, order)
	return dual.Scale(1.0/fy, dual.Sub(n, dual.Mul(sqrt2Over3, betaP)))
}
