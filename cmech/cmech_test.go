// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmech

import (
	"testing"

	"github.com/cpmech/gosolid/chk"
	"github.com/cpmech/gosolid/num"
	"github.com/cpmech/gosolid/tsr"
)

func TestPsiBZeroAtIdentity(tst *testing.T) {
	chk.PrintTitle("PsiBZeroAtIdentity")
	// spec §8.1.7: Psi=0 and dPsi/dC=0 at C=I (stress-free reference)
	psi := PsiB(tsr.I, 1000.0, 500.0)
	chk.Scalar(tst, "PsiB(I)", 1e-12, psi, 0.0)
	g := GradB(tsr.I, 1000.0, 500.0)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			chk.Scalar(tst, "GradB(I)", 1e-10, g[i][j], 0.0)
		}
	}
}

func TestGradBMatchesAD(tst *testing.T) {
	chk.PrintTitle("GradBMatchesAD")
	C := tsr.Mat3{{1.2, 0.1, 0.0}, {0.1, 1.1, 0.05}, {0.0, 0.05, 0.9}}
	K, G := 1500.0, 600.0
	ana := GradB(C, K, G)
	gradAD, _ := HessianB(C, K, G)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			chk.Scalar(tst, "GradB analytic vs AD", 1e-8, ana[i][j], gradAD[i][j])
		}
	}
}

func TestHessianBAgreesWithNumeric(tst *testing.T) {
	chk.PrintTitle("HessianBAgreesWithNumeric")
	C := tsr.Mat3{{1.3, 0.05, 0.02}, {0.05, 1.0, 0.0}, {0.02, 0.0, 0.95}}
	K, G := 2000.0, 800.0
	_, hessAna := HessianB(C, K, G)
	hessNum := num.TensorToTensorCen(func(X tsr.Mat3) tsr.Mat3 { return GradB(X, K, G) }, C)
	maxDiff, ok := num.CompareJacobians(hessAna, hessNum, 1e-4)
	if !ok {
		tst.Errorf("Hessian mismatch: maxDiff=%e", maxDiff)
	}
}

func TestExpMapFlowIdentityAtZero(tst *testing.T) {
	chk.PrintTitle("ExpMapFlowIdentityAtZero")
	dFp, _ := ExpMapFlow(tsr.Mat3{}, 1e-14, 1e-14)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			chk.Scalar(tst, "expmap(0)", 1e-12, dFp[i][j], want)
		}
	}
}

func TestExplicitFlowMatchesExpMapAtSmallStep(tst *testing.T) {
	chk.PrintTitle("ExplicitFlowMatchesExpMapAtSmallStep")
	dGp := tsr.Mat3{{0.001, 0.0002, 0}, {0.0002, -0.0005, 0}, {0, 0, -0.0005}}
	dFpExp, _ := ExpMapFlow(dGp, 1e-16, 1e-16)
	dFpLin, _ := ExplicitFlow(dGp)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			chk.Scalar(tst, "expmap vs explicit (small step)", 1e-6, dFpExp[i][j], dFpLin[i][j])
		}
	}
}

func TestYieldFunctionHardeningConsistency(tst *testing.T) {
	chk.PrintTitle("YieldFunctionHardeningConsistency")
	fy, fyInf, eta, H := 250.0, 400.0, 5.0, 100.0
	beta0 := HardeningBeta(0, fy, fyInf, eta, H)
	chk.Scalar(tst, "beta(0)=fy", 1e-12, beta0, fy)
	M := tsr.Diag(300, 0, -150)
	f := YieldFunction(M, beta0, fy)
	gradM := YieldGradM(M, fy)
	fd := num.TensorToScalarCen(func(X tsr.Mat3) float64 { return YieldFunction(X, beta0, fy) }, M)
	var diff float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			d := gradM[i][j] - fd[i][j]
			diff += d * d
		}
	}
	if diff > 1e-6 {
		tst.Errorf("df/dM mismatch, sq-diff=%e", diff)
	}
	_ = f
}

func TestKelvinChainRelaxesToInstantaneous(tst *testing.T) {
	chk.PrintTitle("KelvinChainRelaxesToInstantaneous")
	kc := NewKelvinChain(1000, []KelvinUnit{{G: 500, Tau: 1.0}, {G: 300, Tau: 10.0}})
	ds, tang := kc.Update(0.01, 1e-6)
	want := 1800 * 0.01 // at dt->0, tangent -> sum of all G (undamped instantaneous response)
	chk.Scalar(tst, "instantaneous stress", 1e-2, ds, want)
	chk.Scalar(tst, "instantaneous tangent", 1e-2, tang, 1800.0)
}

func TestComplexStepPsiBMatchesReal(tst *testing.T) {
	chk.PrintTitle("ComplexStepPsiBMatchesReal")
	K, G := 1200.0, 500.0
	C := tsr.Mat3{{1.1, 0.05, 0}, {0.05, 1.05, 0}, {0, 0, 0.98}}
	var Cc Mat3C
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			Cc[i][j] = complex(C[i][j], 0)
		}
	}
	got := real(PsiBc(Cc, K, G))
	want := PsiB(C, K, G)
	chk.Scalar(tst, "PsiBc real part", 1e-10, got, want)
}

