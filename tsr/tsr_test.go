// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsr

import (
	"testing"

	"github.com/cpmech/gosolid/chk"
)

func TestInverseRoundTrip(tst *testing.T) {
	chk.PrintTitle("InverseRoundTrip")
	T := Mat3{{2, 1, 0}, {1, 3, 1}, {0, 1, 4}}
	Ti, err := Inverse(T)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	R := MatMul(T, Ti)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			chk.Scalar(tst, "T.Tinv", 1e-12, R[i][j], want)
		}
	}
}

func TestInverseSingularFails(tst *testing.T) {
	chk.PrintTitle("InverseSingularFails")
	T := Mat3{{1, 2, 3}, {2, 4, 6}, {1, 1, 1}} // rank-deficient
	_, err := Inverse(T)
	if err == nil {
		tst.Fatalf("expected error for singular tensor, got nil")
	}
}

func TestDevTraceIsZero(tst *testing.T) {
	chk.PrintTitle("DevTraceIsZero")
	T := Mat3{{5, 1, 2}, {1, -3, 0}, {2, 0, 7}}
	D := Dev(T)
	chk.Scalar(tst, "tr(dev(T))", 1e-12, Trace(D), 0.0)
}

func TestDprojIsIdempotent(tst *testing.T) {
	chk.PrintTitle("DprojIsIdempotent")
	// Dproj : Dproj should equal Dproj (idempotent projector)
	D2 := Ten4Compose(Dproj, Dproj)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					chk.Scalar(tst, "Dproj o Dproj", 1e-12, D2[i][j][k][l], Dproj[i][j][k][l])
				}
			}
		}
	}
}

func TestExpOfZeroIsIdentity(tst *testing.T) {
	chk.PrintTitle("ExpOfZeroIsIdentity")
	R := Exp(Mat3{}, 1e-14, 1e-14)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			chk.Scalar(tst, "exp(0)", 1e-13, R[i][j], want)
		}
	}
}

func TestExpMatchesScalarOnDiagonal(tst *testing.T) {
	chk.PrintTitle("ExpMatchesScalarOnDiagonal")
	T := Diag(0.1, -0.2, 0.05)
	R := Exp(T, 1e-15, 1e-15)
	want := Diag(expf(0.1), expf(-0.2), expf(0.05))
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			chk.Scalar(tst, "exp(diag)", 1e-12, R[i][j], want[i][j])
		}
	}
}

func expf(x float64) float64 {
	// local truncated series check independent of tsr.Exp's own loop,
	// just to cross-validate against a trivially different accumulation order
	s, term := 1.0, 1.0
	for k := 1; k <= 20; k++ {
		term *= x / float64(k)
		s += term
	}
	return s
}

func TestEinsumMatMulMatchesMatMul(tst *testing.T) {
	chk.PrintTitle("EinsumMatMulMatchesMatMul")
	A := Mat3{{1, 2, 3}, {0, 1, 4}, {5, 6, 0}}
	B := Mat3{{7, 0, 1}, {2, 3, 0}, {1, 1, 1}}
	want := MatMul(A, B)
	got := Einsum("ik", []string{"ij", "jk"}, FromMat3(A), FromMat3(B)).ToMat3()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			chk.Scalar(tst, "einsum vs MatMul", 1e-12, got[i][j], want[i][j])
		}
	}
}

func TestEinsumTraceMatchesTrace(tst *testing.T) {
	chk.PrintTitle("EinsumTraceMatchesTrace")
	A := Mat3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	got := Einsum("", []string{"ii"}, FromMat3(A)).At()
	chk.Scalar(tst, "einsum trace", 1e-12, got, Trace(A))
}
