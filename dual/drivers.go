// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dual

import "github.com/cpmech/gosolid/tsr"

// ScalarField is a scalar-valued function of a second-rank tensor written
// in terms of Dual arithmetic, the shape every driver below lifts. Callers
// write the Pence-Gou potentials, the yield function, etc. once against
// this signature and get gradients/Hessians/Jacobians for free.
type ScalarField func(T [3][3]Dual) Dual

// TensorField is a second-rank-tensor-valued function of a second-rank
// tensor, written in Dual arithmetic, lifted by the Jacobian driver (D4).
type TensorField func(T [3][3]Dual) [3][3]Dual

// seed returns a [3][3]Dual copy of T0 with every component a Const of the
// given order, except component (p,q) which additionally carries a unit
// first-order direction (i.e. is a Var along the (p,q) axis).
func seed(T0 tsr.Mat3, order, p, q int) [3][3]Dual {
	var TD [3][3]Dual
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == p && j == q {
				TD[i][j] = Var(T0[i][j], order)
			} else {
				TD[i][j] = Const(T0[i][j], order)
			}
		}
	}
	return TD
}

// seedDir is like seed but the unit direction is spread over an arbitrary
// direction tensor dir instead of a single basis component: component (i,j)
// is seeded with value T0[i][j] and first-order coefficient dir[i][j].
func seedDir(T0, dir tsr.Mat3, order int) [3][3]Dual {
	var TD [3][3]Dual
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			d := New(order)
			d.c[0] = T0[i][j]
			if order >= 1 {
				d.c[1] = dir[i][j]
			}
			TD[i][j] = d
		}
	}
	return TD
}

// D1Gradient evaluates the gradient df/dT at T0 by perturbing one
// component of T at a time with an order-1 Dual (spec §4.B driver D1).
func D1Gradient(f ScalarField, T0 tsr.Mat3) tsr.Mat3 {
	var grad tsr.Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			TD := seed(T0, 1, i, j)
			y := f(TD)
			grad[i][j] = y.Deriv(1)
		}
	}
	return grad
}

// D2GradientHessian evaluates both the gradient and the Hessian d2f/dT2 at
// T0 (spec §4.B driver D2). The gradient reuses the diagonal first
// derivatives; the Hessian's off-diagonal blocks are recovered by
// polarization of the directional second derivative along e_ij + e_kl:
//
//	H(e_ij, e_kl) = 1/2 [ f''(e_ij+e_kl) - f''(e_ij) - f''(e_kl) ]
//
// which holds for any bilinear form, in particular the second differential
// of a smooth scalar field.
func D2GradientHessian(f ScalarField, T0 tsr.Mat3) (grad tsr.Mat3, hess tsr.Ten4) {
	// diagonal second derivatives f''(e_ij) for every basis direction,
	// and the gradient, in one pass per component
	var fppDiag [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			TD := seed(T0, 2, i, j)
			y := f(TD)
			grad[i][j] = y.Deriv(1)
			fppDiag[i][j] = y.Deriv(2)
			hess[i][j][i][j] = fppDiag[i][j]
		}
	}
	// off-diagonal blocks via polarization
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					if i == k && j == l {
						continue
					}
					var dir tsr.Mat3
					dir[i][j] += 1
					dir[k][l] += 1
					TD := seedDir(T0, dir, 2)
					y := f(TD)
					fppCombo := y.Deriv(2)
					hess[i][j][k][l] = 0.5 * (fppCombo - fppDiag[i][j] - fppDiag[k][l])
				}
			}
		}
	}
	return
}

// D3GradientHessianThird evaluates the gradient, Hessian, and full rank-6
// third derivative d3f/dTdTdT at T0 (spec §4.B driver D3). The rank-6
// tensor is recovered from directional third derivatives f3(dir) =
// d3/dt3 f(T0+t*dir)|_{t=0} by the degree-3 polarization identity for a
// symmetric trilinear form T(u,v,w):
//
//	T(u,v,w) = 1/6 [ f3(u+v+w) - f3(u+v) - f3(v+w) - f3(u+w) + f3(u) + f3(v) + f3(w) ]
//
// applied with u, v, w ranging over the nine basis directions e_ij.
func D3GradientHessianThird(f ScalarField, T0 tsr.Mat3) (grad tsr.Mat3, hess tsr.Ten4, third tsr.Ten6) {
	grad, hess = D2GradientHessian(f, T0)

	var basis [3][3]tsr.Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			basis[i][j][i][j] = 1
		}
	}
	f3 := func(dir tsr.Mat3) float64 {
		return f(seedDir(T0, dir, 3)).Deriv(3)
	}

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			u := basis[i][j]
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					v := basis[k][l]
					for m := 0; m < 3; m++ {
						for n := 0; n < 3; n++ {
							w := basis[m][n]
							uvw := tsr.Add(1, tsr.Add(1, u, 1, v), 1, w)
							uv := tsr.Add(1, u, 1, v)
							vw := tsr.Add(1, v, 1, w)
							uw := tsr.Add(1, u, 1, w)
							third[i][j][k][l][m][n] = (f3(uvw) - f3(uv) - f3(vw) - f3(uw) + f3(u) + f3(v) + f3(w)) / 6
						}
					}
				}
			}
		}
	}
	return
}

// D4Jacobian evaluates the rank-4 Jacobian dg_ij/dT_kl of a tensor-valued
// field g at T0 (spec §4.B driver D4), by perturbing one component of T at
// a time and reading off the first derivative of every output component.
func D4Jacobian(g TensorField, T0 tsr.Mat3) tsr.Ten4 {
	var J tsr.Ten4
	for k := 0; k < 3; k++ {
		for l := 0; l < 3; l++ {
			TD := seed(T0, 1, k, l)
			GD := g(TD)
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					J[i][j][k][l] = GD[i][j].Deriv(1)
				}
			}
		}
	}
	return J
}

// LiftConst lifts a plain Mat3 to a [3][3]Dual of constants, for building
// ScalarField/TensorField bodies that mix perturbed and fixed tensors (e.g.
// evaluating a potential of F that depends on both the trial F and a fixed
// plastic correction).
func LiftConst(T tsr.Mat3, order int) [3][3]Dual {
	var TD [3][3]Dual
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			TD[i][j] = Const(T[i][j], order)
		}
	}
	return TD
}

// ReadValue lowers a [3][3]Dual back to a plain Mat3 of values, discarding
// derivative information.
func ReadValue(TD [3][3]Dual) (T tsr.Mat3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			T[i][j] = TD[i][j].Value()
		}
	}
	return
}
