// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmech

import "github.com/cpmech/gosolid/tsr"

// Kirchhoff returns the Kirchhoff stress tau = F S F^T built from the
// second Piola-Kirchhoff stress S (spec §4.D.3).
func Kirchhoff(F, S tsr.Mat3) tsr.Mat3 {
	return tsr.MatMul(F, tsr.MatMulTB(S, F))
}

// KirchhoffDerivS returns d(tau)_ij/dS_KL = F_iK F_jL
func KirchhoffDerivS(F tsr.Mat3) tsr.Ten4 {
	var D tsr.Ten4
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for K := 0; K < 3; K++ {
				for L := 0; L < 3; L++ {
					D[i][j][K][L] = F[i][K] * F[j][L]
				}
			}
		}
	}
	return D
}

// KirchhoffDerivF returns d(tau)_ij/dF_mM via the product rule applied to
// tau_ij = F_iK S_KL F_jL, given dSdF_KL/mM (the chain rule contribution
// from S depending on F through C(F)). The F-only terms are:
//
//	delta_im (S F^T)_Mj + delta_jm (F S)_iM
//
// plus the chained term F_iK dS_KL/dF_mM F_jL.
func KirchhoffDerivF(F, S tsr.Mat3, dSdF tsr.Ten4) tsr.Ten4 {
	SFt := tsr.MatMulTB(S, F) // (S F^T)_ML = sum_L' S_ML' F_LL'... computed as S . F^T
	FS := tsr.MatMul(F, S)
	var D tsr.Ten4
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for m := 0; m < 3; m++ {
				for M := 0; M < 3; M++ {
					var term1, term3 float64
					if i == m {
						term1 = SFt[M][j]
					}
					if j == m {
						term3 = FS[i][M]
					}
					var term2 float64
					for K := 0; K < 3; K++ {
						for L := 0; L < 3; L++ {
							term2 += F[i][K] * dSdF[K][L][m][M] * F[j][L]
						}
					}
					D[i][j][m][M] = term1 + term2 + term3
				}
			}
		}
	}
	return D
}

// SecondPK returns S = 2 dPsi/dC evaluated via a caller-supplied gradient
// function (GradA/GradB/GradC), the 2nd Piola-Kirchhoff stress conjugate
// to C.
func SecondPK(gradPsi tsr.Mat3) tsr.Mat3 {
	return tsr.Scale(2, gradPsi)
}

// MaterialTangentFromHessian returns dS/dC = 4 d2Psi/dCdC, the material
// tangent in C, from the Hessian returned by HessianA/B/C.
func MaterialTangentFromHessian(hessPsi tsr.Ten4) tsr.Ten4 {
	return tsr.Ten4Add(4, hessPsi, 0, tsr.Ten4{})
}
