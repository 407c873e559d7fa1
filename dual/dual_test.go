// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dual

import (
	"math"
	"testing"

	"github.com/cpmech/gosolid/chk"
	"github.com/cpmech/gosolid/tsr"
)

func TestDualExpDerivatives(tst *testing.T) {
	chk.PrintTitle("DualExpDerivatives")
	x := Var(1.3, 4)
	y := Exp(x)
	// exp is its own derivative to all orders at every point
	want := math.Exp(1.3)
	for j := 0; j <= 4; j++ {
		chk.Scalar(tst, "d^jexp/dx^j", 1e-10, y.Deriv(j), want)
	}
}

func TestDualLogIsInverseOfExp(tst *testing.T) {
	chk.PrintTitle("DualLogIsInverseOfExp")
	x := Var(0.7, 3)
	y := Log(Exp(x))
	chk.Scalar(tst, "value", 1e-10, y.Value(), 0.7)
	chk.Scalar(tst, "d/dx", 1e-9, y.Deriv(1), 1.0)
	chk.Scalar(tst, "d2/dx2", 1e-8, y.Deriv(2), 0.0)
}

func TestDualSinCosPythagoras(tst *testing.T) {
	chk.PrintTitle("DualSinCosPythagoras")
	x := Var(0.45, 3)
	s, c := SinCos(x)
	sq := Add(Mul(s, s), Mul(c, c))
	for j := 0; j <= 3; j++ {
		want := 0.0
		if j == 0 {
			want = 1.0
		}
		chk.Scalar(tst, "sin^2+cos^2 deriv", 1e-9, sq.Deriv(j), want)
	}
}

func TestDualSqrtSquareRoundTrip(tst *testing.T) {
	chk.PrintTitle("DualSqrtSquareRoundTrip")
	x := Var(2.0, 3)
	y := Mul(Sqrt(x), Sqrt(x))
	chk.Scalar(tst, "value", 1e-10, y.Value(), 2.0)
	chk.Scalar(tst, "d/dx", 1e-9, y.Deriv(1), 1.0)
	chk.Scalar(tst, "d2/dx2", 1e-8, y.Deriv(2), 0.0)
}

func TestDualPowMatchesExpLog(tst *testing.T) {
	chk.PrintTitle("DualPowMatchesExpLog")
	x := Var(1.8, 3)
	a := Pow(x, 2.5)
	b := Exp(Scale(2.5, Log(x)))
	for j := 0; j <= 3; j++ {
		chk.Scalar(tst, "pow vs exp(p log)", 1e-8, a.Deriv(j), b.Deriv(j))
	}
}

func TestDualAcosCosRoundTrip(tst *testing.T) {
	chk.PrintTitle("DualAcosCosRoundTrip")
	x := Var(0.3, 3)
	z := Acos(x)
	w := Cos(z)
	chk.Scalar(tst, "cos(acos(x)) value", 1e-10, w.Value(), 0.3)
	chk.Scalar(tst, "cos(acos(x)) d/dx", 1e-8, w.Deriv(1), 1.0)
}

func TestD1GradientOfTrace(tst *testing.T) {
	chk.PrintTitle("D1GradientOfTrace")
	f := func(T [3][3]Dual) Dual { return TraceD(T) }
	T0 := [3][3]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	grad := D1Gradient(f, T0)
	want := [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			chk.Scalar(tst, "d(tr)/dT", 1e-10, grad[i][j], want[i][j])
		}
	}
}

func TestD2HessianOfQuadraticForm(tst *testing.T) {
	chk.PrintTitle("D2HessianOfQuadraticForm")
	// f(T) = 1/2 T:T  =>  grad = T, Hessian = I4 (identity on index pairs)
	f := func(T [3][3]Dual) Dual { return Scale(0.5, DoubleDotD(T, T)) }
	T0 := [3][3]float64{{1, 2, 0}, {2, -1, 3}, {0, 3, 4}}
	grad, hess := D2GradientHessian(f, T0)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			chk.Scalar(tst, "grad", 1e-8, grad[i][j], T0[i][j])
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					want := 0.0
					if i == k && j == l {
						want = 1.0
					}
					chk.Scalar(tst, "hess", 1e-6, hess[i][j][k][l], want)
				}
			}
		}
	}
}

func TestIncreaseDecreaseOrderRoundTrip(tst *testing.T) {
	chk.PrintTitle("IncreaseDecreaseOrderRoundTrip")
	x := Var(2.0, 3)
	y := Exp(x)
	grown := IncreaseOrder(y)
	if grown.Order() != y.Order()+1 {
		tst.Fatalf("expected order %d, got %d", y.Order()+1, grown.Order())
	}
	for j := 0; j <= y.Order(); j++ {
		chk.Scalar(tst, "grown coefficient", 1e-14, grown.Coeff(j), y.Coeff(j))
	}
	chk.Scalar(tst, "grown top slot", 1e-14, grown.Coeff(grown.Order()), 0.0)

	back := DecreaseOrder(grown)
	if back.Order() != y.Order() {
		tst.Fatalf("expected order %d, got %d", y.Order(), back.Order())
	}
	for j := 0; j <= y.Order(); j++ {
		chk.Scalar(tst, "round-tripped coefficient", 1e-14, back.Coeff(j), y.Coeff(j))
	}
}

// TestD3ThirdDerivativeOfTraceCubed checks driver D3 against the analytic
// third derivative of f(T)=tr(T)^3: d3f/dTij dTkl dTmn = 6 delta_ij delta_kl
// delta_mn, following invariant 9's round-trip pattern (spec §8.1).
func TestD3ThirdDerivativeOfTraceCubed(tst *testing.T) {
	chk.PrintTitle("D3ThirdDerivativeOfTraceCubed")
	f := func(T [3][3]Dual) Dual {
		s := TraceD(T)
		return Mul(Mul(s, s), s)
	}
	T0 := tsr.Mat3{{2, 1, 0}, {1, 3, -1}, {0, -1, 4}}
	grad, hess, third := D3GradientHessianThird(f, T0)
	s := T0[0][0] + T0[1][1] + T0[2][2]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			wantGrad := 0.0
			if i == j {
				wantGrad = 3 * s * s
			}
			chk.Scalar(tst, "grad", 1e-6, grad[i][j], wantGrad)
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					wantHess := 0.0
					if i == j && k == l {
						wantHess = 6 * s
					}
					chk.Scalar(tst, "hess", 1e-6, hess[i][j][k][l], wantHess)
					for m := 0; m < 3; m++ {
						for n := 0; n < 3; n++ {
							wantThird := 0.0
							if i == j && k == l && m == n {
								wantThird = 6
							}
							chk.Scalar(tst, "third", 1e-5, third[i][j][k][l][m][n], wantThird)
						}
					}
				}
			}
		}
	}
}

// TestD4JacobianOfMatrixSquare checks driver D4 against the analytic
// Jacobian of g(T)=T*T: dg_ij/dT_kl = delta_ik T_lj + T_ik delta_jl.
func TestD4JacobianOfMatrixSquare(tst *testing.T) {
	chk.PrintTitle("D4JacobianOfMatrixSquare")
	g := func(T [3][3]Dual) [3][3]Dual { return MatMulD(T, T) }
	T0 := tsr.Mat3{{2, 1, 0}, {1, 3, -1}, {0, -1, 4}}
	J := D4Jacobian(g, T0)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					var want float64
					if i == k {
						want += T0[l][j]
					}
					if j == l {
						want += T0[i][k]
					}
					chk.Scalar(tst, "D4 jacobian", 1e-8, J[i][j][k][l], want)
				}
			}
		}
	}
}
