// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tsr implements the fixed-size tensor algebra the rest of the
// core stands on (spec §4.A): rank-1..4 tensors over a 3-dimensional
// spatial index, their named constants, contractions ("einsum"),
// transposition, inverse, determinant, trace, the symmetric/deviatoric/
// hydrostatic projectors, Levi-Civita, and the tensor exponential with
// its analytical derivative. It plays the role the teacher repository's
// gosl/tsr package played for Voigt-form small-strain algebra, widened
// here to full second- and fourth-rank tensors because the finite-strain
// core needs them directly (not just their Voigt-condensed form).
package tsr

// Vec3 is a 3-vector
type Vec3 [3]float64

// Mat3 is a second-rank 3x3 tensor
type Mat3 [3][3]float64

// Ten3 is a third-rank 3x3x3 tensor (used for Levi-Civita)
type Ten3 [3][3][3]float64

// Ten4 is a fourth-rank 3x3x3x3 tensor
type Ten4 [3][3][3][3]float64

// Ten6 is a sixth-rank 3^6 tensor, the shape of a third derivative of a
// scalar field with respect to a second-rank tensor (spec §4.B.2 driver D3).
type Ten6 [3][3][3][3][3][3]float64

// Eps is the machine tolerance Inverse uses to reject near-singular
// operands (spec §4.A); la's pivoted solvers use their own floor.
const Eps = 1e-15

// ZeroMat3 returns the zero second-rank tensor
func ZeroMat3() Mat3 { return Mat3{} }

// Diag builds a diagonal tensor from three values
func Diag(a, b, c float64) Mat3 {
	return Mat3{{a, 0, 0}, {0, b, 0}, {0, 0, c}}
}
