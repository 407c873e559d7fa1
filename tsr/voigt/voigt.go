// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package voigt provides the Voigt notation conventions used by the
// small-strain collaborator models (spec §6.3): the 6-component packing of
// a symmetric second-rank tensor, with off-diagonal stress components
// stored unweighted and off-diagonal strains as engineering shears
// (gamma = 2 eps), so that the plain dot product of a Voigt stress and a
// Voigt strain reproduces the tensors' double-dot product. The Mandel form,
// with sqrt(2) on the off-diagonals, is reached via ToMandelStress.
package voigt

import (
	"math"

	"github.com/cpmech/gosolid/tsr"
)

// SQ2 is sqrt(2), the Mandel off-diagonal weight
var SQ2 = math.Sqrt2

// Im is the Voigt-packed identity (Kronecker delta), used to project
// volumetric quantities: tr(T) = Im . ToVoigt(T)
var Im = [6]float64{1, 1, 1, 0, 0, 0}

// Psd is the Voigt-packed deviatoric projector, Psd = Isym - (1/3) Im(x)Im
var Psd = buildPsd()

func buildPsd() (P [6][6]float64) {
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			var isym float64
			if i == j {
				isym = 1
			}
			P[i][j] = isym - Im[i]*Im[j]/3.0
		}
	}
	return
}

// ToVoigtStress packs a symmetric stress-like tensor into 6 Voigt
// components [11,22,33,12,13,23] (spec §6.3) without the sqrt(2)
// engineering factor (stress convention: off-diagonal components carry
// no extra weight).
func ToVoigtStress(T tsr.Mat3) [6]float64 {
	return [6]float64{T[0][0], T[1][1], T[2][2], T[0][1], T[0][2], T[1][2]}
}

// ToVoigtStrain packs a symmetric strain-like tensor into 6 Voigt
// components [11,22,33,12,13,23] (spec §6.3) with the engineering shear
// convention: gamma_ij = 2 eps_ij.
func ToVoigtStrain(T tsr.Mat3) [6]float64 {
	return [6]float64{T[0][0], T[1][1], T[2][2], 2 * T[0][1], 2 * T[0][2], 2 * T[1][2]}
}

// FromVoigtStress unpacks 6 Voigt stress components [11,22,33,12,13,23]
// back to a symmetric Mat3
func FromVoigtStress(v [6]float64) (T tsr.Mat3) {
	T[0][0], T[1][1], T[2][2] = v[0], v[1], v[2]
	T[0][1], T[1][0] = v[3], v[3]
	T[0][2], T[2][0] = v[4], v[4]
	T[1][2], T[2][1] = v[5], v[5]
	return
}

// FromVoigtStrain unpacks 6 Voigt engineering-strain components
// [11,22,33,12,13,23] (with the gamma = 2 eps shear convention) back to a
// symmetric Mat3
func FromVoigtStrain(v [6]float64) (T tsr.Mat3) {
	T[0][0], T[1][1], T[2][2] = v[0], v[1], v[2]
	T[0][1], T[1][0] = v[3]/2, v[3]/2
	T[0][2], T[2][0] = v[4]/2, v[4]/2
	T[1][2], T[2][1] = v[5]/2, v[5]/2
	return
}

// EngineeringFactor returns the diagonal Mandel weight P_a applied to Voigt
// component a so that Mandel_a = P_a * Voigt_a reproduces the tensor inner
// product as a plain Euclidean dot product over the 6 Mandel components.
func EngineeringFactor(a int) float64 {
	if a < 3 {
		return 1
	}
	return SQ2
}

// InverseFactor returns 1/EngineeringFactor(a)
func InverseFactor(a int) float64 {
	return 1.0 / EngineeringFactor(a)
}

// ToMandelStress converts 6 plain-Voigt stress components to Mandel form
func ToMandelStress(v [6]float64) (m [6]float64) {
	for a := 0; a < 6; a++ {
		m[a] = v[a] * EngineeringFactor(a)
	}
	return
}

// FromMandelStress converts 6 Mandel stress components back to plain Voigt
func FromMandelStress(m [6]float64) (v [6]float64) {
	for a := 0; a < 6; a++ {
		v[a] = m[a] * InverseFactor(a)
	}
	return
}

// voigtPairs maps each Voigt index 0..5 to the (row,col) pair of the
// underlying tensor components, in the [11,22,33,12,13,23] order.
var voigtPairs = [6][2]int{{0, 0}, {1, 1}, {2, 2}, {0, 1}, {0, 2}, {1, 2}}

// ToTen4 expands a 6x6 Voigt tangent D (sigma = D . engineeringStrain) into
// its rank-4 tensor form C, filled with the minor symmetries
// C_ijkl=C_jikl=C_ijlk=C_jilk.
func ToTen4(D [6][6]float64) (C tsr.Ten4) {
	for I := 0; I < 6; I++ {
		i, j := voigtPairs[I][0], voigtPairs[I][1]
		for J := 0; J < 6; J++ {
			k, l := voigtPairs[J][0], voigtPairs[J][1]
			C[i][j][k][l] = D[I][J]
			C[j][i][k][l] = D[I][J]
			C[i][j][l][k] = D[I][J]
			C[j][i][l][k] = D[I][J]
		}
	}
	return
}

// FromTen4 contracts a rank-4 tensor C back down to its 6x6 Voigt form.
func FromTen4(C tsr.Ten4) (D [6][6]float64) {
	for I := 0; I < 6; I++ {
		i, j := voigtPairs[I][0], voigtPairs[I][1]
		for J := 0; J < 6; J++ {
			k, l := voigtPairs[J][0], voigtPairs[J][1]
			D[I][J] = C[i][j][k][l]
		}
	}
	return
}
