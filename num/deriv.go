// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package num implements the numerical-differentiation fallback required
// alongside automatic differentiation (spec §4.B.3): forward difference,
// central difference, and complex-step, each usable both as a validation
// tool (as the teacher's driver.CheckD compares D against num.DerivCen)
// and as one of the four §4.E.7 return-mapping Jacobian strategies.
package num

import (
	"math"

	"github.com/cpmech/gosolid/tsr"
)

const machineEps = 2.220446049250313e-16

// DerivFwd returns the forward-difference derivative of f at x,
// step h = max(1,|x|)*sqrt(machineEps).
func DerivFwd(f func(x float64) float64, x float64) float64 {
	h := math.Max(1, math.Abs(x)) * math.Sqrt(machineEps)
	return (f(x+h) - f(x)) / h
}

// DerivCen returns the central-difference derivative of f at x,
// step h = max(1,|x|)*cbrt(machineEps).
func DerivCen(f func(x float64) float64, x float64) float64 {
	h := math.Max(1, math.Abs(x)) * math.Cbrt(machineEps)
	return (f(x+h) - f(x-h)) / (2 * h)
}

// complexStepH is the imaginary perturbation magnitude used by DerivComplex.
const complexStepH = 1e-20

// DerivComplex returns the complex-step derivative of f at x: evaluates f
// at x+ih and divides the imaginary part of the result by h. Accurate to
// machine precision for analytic f, with no subtractive cancellation.
func DerivComplex(f func(x complex128) complex128, x float64) float64 {
	return imag(f(complex(x, complexStepH))) / complexStepH
}

// TensorFwd applies DerivFwd componentwise: f maps a 3x3 tensor to a
// scalar, and TensorFwd returns its gradient (rank-2) by perturbing one
// component of T at a time.
func TensorFwd(f func(T tsr.Mat3) float64, T tsr.Mat3) tsr.Mat3 {
	return tensorDeriv(f, T, DerivFwd)
}

// TensorCen is the central-difference analogue of TensorFwd.
func TensorCen(f func(T tsr.Mat3) float64, T tsr.Mat3) tsr.Mat3 {
	return tensorDeriv(f, T, DerivCen)
}

func tensorDeriv(f func(T tsr.Mat3) float64, T tsr.Mat3, d func(func(float64) float64, float64) float64) (grad tsr.Mat3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			grad[i][j] = d(func(x float64) float64 {
				Tp := T
				Tp[i][j] = x
				return f(Tp)
			}, T[i][j])
		}
	}
	return
}

// TensorToScalarCen is an alias for TensorCen kept for call-site clarity
// where a rank-4 (tensor-to-tensor) counterpart is used alongside it.
func TensorToScalarCen(f func(T tsr.Mat3) float64, T tsr.Mat3) tsr.Mat3 {
	return TensorCen(f, T)
}

// TensorComplex applies DerivComplex componentwise, lifting the real
// tensor T to complex128 once per perturbed component.
func TensorComplex(f func(T [3][3]complex128) complex128, T tsr.Mat3) (grad tsr.Mat3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			grad[i][j] = DerivComplex(func(x complex128) complex128 {
				var Tc [3][3]complex128
				for a := 0; a < 3; a++ {
					for b := 0; b < 3; b++ {
						Tc[a][b] = complex(T[a][b], 0)
					}
				}
				Tc[i][j] = x
				return f(Tc)
			}, T[i][j])
		}
	}
	return
}

// TensorToTensorFwd returns the rank-4 Jacobian dF/dT of a tensor-valued
// function of a tensor, by forward differences on each component.
func TensorToTensorFwd(F func(T tsr.Mat3) tsr.Mat3, T tsr.Mat3) tsr.Ten4 {
	return tensorToTensorDeriv(F, T, DerivFwd)
}

// TensorToTensorCen is the central-difference analogue.
func TensorToTensorCen(F func(T tsr.Mat3) tsr.Mat3, T tsr.Mat3) tsr.Ten4 {
	return tensorToTensorDeriv(F, T, DerivCen)
}

func tensorToTensorDeriv(F func(T tsr.Mat3) tsr.Mat3, T tsr.Mat3, d func(func(float64) float64, float64) float64) (J tsr.Ten4) {
	for k := 0; k < 3; k++ {
		for l := 0; l < 3; l++ {
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					ii, jj := i, j
					J[ii][jj][k][l] = d(func(x float64) float64 {
						Tp := T
						Tp[k][l] = x
						return F(Tp)[ii][jj]
					}, T[k][l])
				}
			}
		}
	}
	return
}

// CompareJacobians reports whether an analytic rank-4 Jacobian and a
// numerical one (e.g. from TensorToTensorCen) agree within tol
// componentwise, mirroring the teacher's ana-vs-num test idiom
// (driver.go's utl.AnaNum loop) generalized to rank-4 tensors.
func CompareJacobians(ana, num tsr.Ten4, tol float64) (maxDiff float64, ok bool) {
	ok = true
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					diff := math.Abs(ana[i][j][k][l] - num[i][j][k][l])
					if diff > maxDiff {
						maxDiff = diff
					}
					if diff > tol {
						ok = false
					}
				}
			}
		}
	}
	return
}
