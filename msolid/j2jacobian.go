// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosolid/dual"
	"github.com/cpmech/gosolid/la"
	"github.com/cpmech/gosolid/num"
)

// j2Jacobian evaluates dR/dX at x by the method spec §4.E.7 selects for
// the given algorithm number (1: analytic/AD, 2: forward FD, 3: central
// FD, 4: complex step). "Analytic" is obtained from the order-1
// dual-number AD substrate (package dual) rather than a hand-derived
// closed form: an 11x11 system differentiated by hand is exactly the kind
// of derivation the AD substrate exists to replace, and forward-mode AD
// is exact to machine precision, matching what a closed-form derivative
// would give.
func j2Jacobian(algorithm int, x []float64, p j2residualParams) [][]float64 {
	switch algorithm {
	case 1:
		return j2JacobianAD(x, p)
	case 2:
		return j2JacobianFD(x, p, num.DerivFwd)
	case 3:
		return j2JacobianFD(x, p, num.DerivCen)
	case 4:
		return j2JacobianComplexStep(x, p)
	default:
		return j2JacobianAD(x, p)
	}
}

// j2JacobianFD builds dR/dX by perturbing one component of x at a time and
// applying the given scalar differencing rule to every residual row.
func j2JacobianFD(x []float64, p j2residualParams, diff func(func(float64) float64, float64) float64) [][]float64 {
	n := j2nUnknowns
	J := la.MatAlloc(n, n)
	for col := 0; col < n; col++ {
		for row := 0; row < n; row++ {
			xc := make([]float64, n)
			copy(xc, x)
			J[row][col] = diff(func(v float64) float64 {
				xc[col] = v
				return j2Residual(xc, p)[row]
			}, x[col])
		}
	}
	return J
}

// j2JacobianComplexStep builds dR/dX via the complex-step residual:
// perturbing column `col` by i*h and reading the imaginary part of every
// output row, scaled by 1/h.
func j2JacobianComplexStep(x []float64, p j2residualParams) [][]float64 {
	const h = 1e-20
	n := j2nUnknowns
	J := la.MatAlloc(n, n)
	xc := make([]complex128, n)
	for col := 0; col < n; col++ {
		for i := range x {
			xc[i] = complex(x[i], 0)
		}
		xc[col] = complex(x[col], h)
		Rc := j2ResidualComplex(xc, p)
		for row := 0; row < n; row++ {
			J[row][col] = imag(Rc[row]) / h
		}
	}
	return J
}

// j2JacobianAD builds dR/dX via order-1 forward-mode dual numbers: for
// each column, seed x[col] as the independent variable and read the first
// derivative of every residual row.
func j2JacobianAD(x []float64, p j2residualParams) [][]float64 {
	n := j2nUnknowns
	J := la.MatAlloc(n, n)
	for col := 0; col < n; col++ {
		xd := make([]dual.Dual, n)
		for i := 0; i < n; i++ {
			if i == col {
				xd[i] = dual.Var(x[i], 1)
			} else {
				xd[i] = dual.Const(x[i], 1)
			}
		}
		Rd := j2ResidualDual(xd, p)
		for row := 0; row < n; row++ {
			J[row][col] = Rd[row].Deriv(1)
		}
	}
	return J
}
