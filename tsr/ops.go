// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsr

import (
	"math"

	"github.com/cpmech/gosolid/chk"
)

// Trace returns tr(T)
func Trace(T Mat3) float64 { return T[0][0] + T[1][1] + T[2][2] }

// Det returns det(T) via the analytic 3x3 cofactor expansion
func Det(T Mat3) float64 {
	return T[0][0]*(T[1][1]*T[2][2]-T[1][2]*T[2][1]) -
		T[0][1]*(T[1][0]*T[2][2]-T[1][2]*T[2][0]) +
		T[0][2]*(T[1][0]*T[2][1]-T[1][1]*T[2][0])
}

// Transpose returns T^T
func Transpose(T Mat3) (R Mat3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			R[i][j] = T[j][i]
		}
	}
	return
}

// Sym returns the symmetric part 1/2(T + T^T)
func Sym(T Mat3) (R Mat3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			R[i][j] = 0.5 * (T[i][j] + T[j][i])
		}
	}
	return
}

// Dev returns the deviatoric part T - 1/3 tr(T) I
func Dev(T Mat3) (R Mat3) {
	p := Trace(T) / 3.0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			R[i][j] = T[i][j]
		}
		R[i][i] -= p
	}
	return
}

// Add returns alpha*A + beta*B
func Add(alpha float64, A Mat3, beta float64, B Mat3) (R Mat3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			R[i][j] = alpha*A[i][j] + beta*B[i][j]
		}
	}
	return
}

// Scale returns alpha*T
func Scale(alpha float64, T Mat3) (R Mat3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			R[i][j] = alpha * T[i][j]
		}
	}
	return
}

// DoubleDot returns the Frobenius inner product A:B = A_ij B_ij
func DoubleDot(A, B Mat3) (s float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			s += A[i][j] * B[i][j]
		}
	}
	return
}

// Norm returns the Frobenius norm of T
func Norm(T Mat3) float64 {
	s := DoubleDot(T, T)
	if s < 0 {
		s = 0
	}
	return math.Sqrt(s)
}

// MatMul returns A.B
func MatMul(A, B Mat3) (R Mat3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var s float64
			for k := 0; k < 3; k++ {
				s += A[i][k] * B[k][j]
			}
			R[i][j] = s
		}
	}
	return
}

// MatMulTA returns A^T.B
func MatMulTA(A, B Mat3) (R Mat3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var s float64
			for k := 0; k < 3; k++ {
				s += A[k][i] * B[k][j]
			}
			R[i][j] = s
		}
	}
	return
}

// MatMulTB returns A.B^T
func MatMulTB(A, B Mat3) (R Mat3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var s float64
			for k := 0; k < 3; k++ {
				s += A[i][k] * B[j][k]
			}
			R[i][j] = s
		}
	}
	return
}

// Inverse returns the analytic 3x3 inverse of T, failing (spec §4.A) when
// |det T| underflows below Eps.
func Inverse(T Mat3) (Mat3, error) {
	d := Det(T)
	if absf(d) < Eps {
		return Mat3{}, chk.Err("tsr: Inverse: |det|=%e underflowed below Eps=%e", d, Eps)
	}
	var R Mat3
	R[0][0] = (T[1][1]*T[2][2] - T[1][2]*T[2][1]) / d
	R[0][1] = (T[0][2]*T[2][1] - T[0][1]*T[2][2]) / d
	R[0][2] = (T[0][1]*T[1][2] - T[0][2]*T[1][1]) / d
	R[1][0] = (T[1][2]*T[2][0] - T[1][0]*T[2][2]) / d
	R[1][1] = (T[0][0]*T[2][2] - T[0][2]*T[2][0]) / d
	R[1][2] = (T[0][2]*T[1][0] - T[0][0]*T[1][2]) / d
	R[2][0] = (T[1][0]*T[2][1] - T[1][1]*T[2][0]) / d
	R[2][1] = (T[0][1]*T[2][0] - T[0][0]*T[2][1]) / d
	R[2][2] = (T[0][0]*T[1][1] - T[0][1]*T[1][0]) / d
	return R, nil
}

// Ten4ContractMat3 returns (C : T)_ij = C_ijkl T_kl
func Ten4ContractMat3(C Ten4, T Mat3) (R Mat3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var s float64
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					s += C[i][j][k][l] * T[k][l]
				}
			}
			R[i][j] = s
		}
	}
	return
}

// Outer returns the rank-4 outer product (A x B)_ijkl = A_ij B_kl
func Outer(A, B Mat3) (C Ten4) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					C[i][j][k][l] = A[i][j] * B[k][l]
				}
			}
		}
	}
	return
}

// Ten4Add returns alpha*A + beta*B
func Ten4Add(alpha float64, A Ten4, beta float64, B Ten4) (C Ten4) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					C[i][j][k][l] = alpha*A[i][j][k][l] + beta*B[i][j][k][l]
				}
			}
		}
	}
	return
}

// Ten4Compose returns (A o B)_ijkl = A_ijmn B_mnkl, the rank-4 "matrix
// product" under double contraction of the middle index pair.
func Ten4Compose(A, B Ten4) (C Ten4) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					var s float64
					for m := 0; m < 3; m++ {
						for n := 0; n < 3; n++ {
							s += A[i][j][m][n] * B[m][n][k][l]
						}
					}
					C[i][j][k][l] = s
				}
			}
		}
	}
	return
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
