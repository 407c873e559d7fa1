// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmech implements the continuum-mechanics kit the finite-strain
// J2 core stands on (spec §4.D): deformation measures, the Pence-Gou
// hyperelastic potentials and their derivatives, Kirchhoff stress, and the
// exponential-map / explicit plastic-flow integrators. It plays the role
// the teacher repository's msolid package played for small-strain models,
// one layer further down: msolid's finite-strain core calls into cmech the
// way msolid's own small-strain models called straight into gosl/tsr.
package cmech

import "github.com/cpmech/gosolid/tsr"

// RightCauchyGreen returns C = F^T F
func RightCauchyGreen(F tsr.Mat3) tsr.Mat3 {
	return tsr.MatMulTA(F, F)
}

// RightCauchyGreenDeriv returns dC_IJ/dF_kK = delta_IK F_kJ + F_kI delta_JK,
// the rank-4 tensor D such that D[I][J][k][K] holds that component.
func RightCauchyGreenDeriv(F tsr.Mat3) tsr.Ten4 {
	var D tsr.Ten4
	for I := 0; I < 3; I++ {
		for J := 0; J < 3; J++ {
			for k := 0; k < 3; k++ {
				for K := 0; K < 3; K++ {
					var dIK, dJK float64
					if I == K {
						dIK = 1
					}
					if J == K {
						dJK = 1
					}
					D[I][J][k][K] = dIK*F[k][J] + F[k][I]*dJK
				}
			}
		}
	}
	return D
}

// LeftCauchyGreen returns b = F F^T
func LeftCauchyGreen(F tsr.Mat3) tsr.Mat3 {
	return tsr.MatMulTB(F, F)
}

// LeftCauchyGreenDeriv returns db_ij/dF_kK = delta_ik F_jK + F_iK delta_jk,
// the rank-4 tensor analogous to RightCauchyGreenDeriv.
func LeftCauchyGreenDeriv(F tsr.Mat3) tsr.Ten4 {
	var D tsr.Ten4
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for K := 0; K < 3; K++ {
					var dik, djk float64
					if i == k {
						dik = 1
					}
					if j == k {
						djk = 1
					}
					D[i][j][k][K] = dik*F[j][K] + F[i][K]*djk
				}
			}
		}
	}
	return D
}

// InverseF returns F^-1, failing the way tsr.Inverse fails on a singular
// deformation gradient.
func InverseF(F tsr.Mat3) (tsr.Mat3, error) {
	return tsr.Inverse(F)
}

// InverseFDeriv returns d(F^-1)_IJ/dF_kK = -F^-1_Ik F^-1_KJ given the
// already-computed inverse Finv, the standard derivative of a matrix
// inverse.
func InverseFDeriv(Finv tsr.Mat3) tsr.Ten4 {
	var D tsr.Ten4
	for I := 0; I < 3; I++ {
		for J := 0; J < 3; J++ {
			for k := 0; k < 3; k++ {
				for K := 0; K < 3; K++ {
					D[I][J][k][K] = -Finv[I][k] * Finv[K][J]
				}
			}
		}
	}
	return D
}

// ElasticGradientFromPlasticInverse returns dFe_IJ/dF_mM = delta_Im
// FpnInv_MJ, the constant rank-4 tensor relating a trial elastic
// deformation gradient Fe=F.Fpn^-1 to the total deformation gradient F at
// fixed plastic state (spec §4.E.6, "I x (Fp_n)^-T"). It is used both for
// the elastic branch's tangent directly and to build the dR/dF block that
// feeds the plastic branch's implicit-function-theorem tangent.
func ElasticGradientFromPlasticInverse(FpnInv tsr.Mat3) (D tsr.Ten4) {
	for I := 0; I < 3; I++ {
		for J := 0; J < 3; J++ {
			for m := 0; m < 3; m++ {
				if I != m {
					continue
				}
				for M := 0; M < 3; M++ {
					D[I][J][m][M] = FpnInv[M][J]
				}
			}
		}
	}
	return
}

// DeformedNormal applies Nanson's formula n dA = J F^-T N dA0, returning the
// (unnormalized) deformed area vector n*dA/dA0 given a reference unit
// normal N and the deformation gradient F. Exported for surface/contact
// kernels built on top of this core, per spec §4.D.1.
func DeformedNormal(F tsr.Mat3, N tsr.Vec3) (tsr.Vec3, error) {
	Finv, err := tsr.Inverse(F)
	if err != nil {
		return tsr.Vec3{}, err
	}
	J := tsr.Det(F)
	FinvT := tsr.Transpose(Finv)
	var n tsr.Vec3
	for i := 0; i < 3; i++ {
		var s float64
		for K := 0; K < 3; K++ {
			s += FinvT[i][K] * N[K]
		}
		n[i] = J * s
	}
	return n, nil
}
