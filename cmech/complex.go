// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmech

import "math/cmplx"

// Mat3C is a complex128-valued second-rank 3x3 tensor, the operand type
// the complex-step algorithm variant (spec §4.E.7, selector 4) evaluates
// the return-mapping residual against. A generic ~float64|complex128
// implementation was considered and rejected: without a compiler to
// validate operator-constrained generic code across every call site in
// this core, a duplicated, explicitly-typed implementation is the safer
// choice. These mirror the real-valued tsr/cmech primitives one-for-one.
type Mat3C [3][3]complex128

// IdentityC is the complex-valued identity tensor
var IdentityC = Mat3C{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// TraceC returns tr(T)
func TraceC(T Mat3C) complex128 { return T[0][0] + T[1][1] + T[2][2] }

// DetC returns det(T) via cofactor expansion
func DetC(T Mat3C) complex128 {
	return T[0][0]*(T[1][1]*T[2][2]-T[1][2]*T[2][1]) -
		T[0][1]*(T[1][0]*T[2][2]-T[1][2]*T[2][0]) +
		T[0][2]*(T[1][0]*T[2][1]-T[1][1]*T[2][0])
}

// TransposeC returns T^T
func TransposeC(T Mat3C) (R Mat3C) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			R[i][j] = T[j][i]
		}
	}
	return
}

// AddC returns alpha*A + beta*B for real scalars alpha,beta
func AddC(alpha float64, A Mat3C, beta float64, B Mat3C) (R Mat3C) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			R[i][j] = complex(alpha, 0)*A[i][j] + complex(beta, 0)*B[i][j]
		}
	}
	return
}

// ScaleC returns alpha*T for a real scalar alpha
func ScaleC(alpha float64, T Mat3C) (R Mat3C) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			R[i][j] = complex(alpha, 0) * T[i][j]
		}
	}
	return
}

// MatMulC returns A.B
func MatMulC(A, B Mat3C) (R Mat3C) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var s complex128
			for k := 0; k < 3; k++ {
				s += A[i][k] * B[k][j]
			}
			R[i][j] = s
		}
	}
	return
}

// MatMulTAC returns A^T.B
func MatMulTAC(A, B Mat3C) (R Mat3C) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var s complex128
			for k := 0; k < 3; k++ {
				s += A[k][i] * B[k][j]
			}
			R[i][j] = s
		}
	}
	return
}

// InverseC returns the analytic complex 3x3 inverse of T
func InverseC(T Mat3C) Mat3C {
	d := DetC(T)
	var R Mat3C
	R[0][0] = (T[1][1]*T[2][2] - T[1][2]*T[2][1]) / d
	R[0][1] = (T[0][2]*T[2][1] - T[0][1]*T[2][2]) / d
	R[0][2] = (T[0][1]*T[1][2] - T[0][2]*T[1][1]) / d
	R[1][0] = (T[1][2]*T[2][0] - T[1][0]*T[2][2]) / d
	R[1][1] = (T[0][0]*T[2][2] - T[0][2]*T[2][0]) / d
	R[1][2] = (T[0][2]*T[1][0] - T[0][0]*T[1][2]) / d
	R[2][0] = (T[1][0]*T[2][1] - T[1][1]*T[2][0]) / d
	R[2][1] = (T[0][1]*T[2][0] - T[0][0]*T[2][1]) / d
	R[2][2] = (T[0][0]*T[1][1] - T[0][1]*T[1][0]) / d
	return R
}

// DoubleDotC returns A:B = A_ij B_ij (no conjugation, matching the
// complex-step convention where the imaginary part carries the
// derivative information and must not be conjugated away)
func DoubleDotC(A, B Mat3C) (s complex128) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			s += A[i][j] * B[i][j]
		}
	}
	return
}

// DevC returns the deviatoric part T - 1/3 tr(T) I
func DevC(T Mat3C) (R Mat3C) {
	p := TraceC(T) / 3.0
	R = T
	for i := 0; i < 3; i++ {
		R[i][i] -= p
	}
	return
}

// SqrtC returns the principal complex square root
func SqrtC(z complex128) complex128 { return cmplx.Sqrt(z) }

// PowC returns z^p for a real exponent p
func PowC(z complex128, p float64) complex128 { return cmplx.Pow(z, complex(p, 0)) }

// LogC returns the principal complex logarithm
func LogC(z complex128) complex128 { return cmplx.Log(z) }

// ExpC evaluates the truncated matrix exponential exp(T), the complex
// analogue of tsr.Exp used when the residual itself is evaluated at a
// complex-perturbed argument (spec §4.E.7 selector 4). It runs to
// MaxExpTerms rather than using a tolerance-based stop: the imaginary part
// introduced by the complex step is infinitesimal, so comparing its norm
// against an absolute tolerance would stop the series prematurely.
func ExpC(T Mat3C) Mat3C {
	sum := IdentityC
	term := IdentityC
	for k := 1; k <= 15; k++ {
		term = ScaleC(1.0/float64(k), MatMulC(term, T))
		sum = AddC(1, sum, 1, term)
	}
	return sum
}

// PsiBc evaluates the Pence-Gou B potential with a complex argument,
// analytically continued term by term (spec §4.D.2, complex-step path).
func PsiBc(C Mat3C, K, G float64) complex128 {
	I1 := TraceC(C)
	J := SqrtC(DetC(C))
	Jinv := 1 / J
	diff := J - Jinv
	Jm23 := PowC(J, -2.0/3.0)
	return complex(0.125*K, 0)*diff*diff + complex(0.5*G, 0)*(I1*Jm23-3)
}

// GradBc evaluates dPsiB/dC at a complex C via the same closed-form
// expression as GradB, analytically continued (used to build Mandel
// stress inside the complex-step residual without re-differentiating).
func GradBc(C Mat3C, K, G float64) Mat3C {
	Cinv := InverseC(C)
	I1 := TraceC(C)
	J := SqrtC(DetC(C))
	Jinv := 1 / J
	dJdC := ScaleC2(J/2, Cinv)
	a := complex(0.25*K, 0) * (J - Jinv) * (1 + Jinv*Jinv)
	term1 := ScaleC2(a, dJdC)
	term2 := ScaleC2(complex(0.5*G, 0)*PowC(J, -2.0/3.0), IdentityC)
	term3 := ScaleC2(complex(-(G/3.0), 0)*I1*PowC(J, -5.0/3.0), dJdC)
	return AddC3(term1, term2, term3)
}

// ScaleC2 scales a Mat3C by a complex scalar
func ScaleC2(alpha complex128, T Mat3C) (R Mat3C) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			R[i][j] = alpha * T[i][j]
		}
	}
	return
}

// AddC3 sums three Mat3C
func AddC3(A, B, D Mat3C) (R Mat3C) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			R[i][j] = A[i][j] + B[i][j] + D[i][j]
		}
	}
	return
}

// MandelC returns M = Ce . S for complex operands
func MandelC(Ce, S Mat3C) Mat3C { return MatMulC(Ce, S) }

// YieldC evaluates f(M,beta_p) at a complex Mandel stress, the floor
// regularization applied to the real part of the norm only (the imaginary
// part carries the derivative and must not perturb the branch decision).
func YieldC(M Mat3C, betaP, fy float64) complex128 {
	return YieldFunctionC(M, complex(betaP, 0), fy)
}

// YieldFunctionC evaluates f(M,beta_p) = (||dev M|| - sqrt(2/3) beta_p)/fy
// with beta_p itself complex, so a perturbation of alpha_p (which beta_p
// depends on) propagates through row 10 of the complex-step residual.
func YieldFunctionC(M Mat3C, betaP complex128, fy float64) complex128 {
	devM := DevC(M)
	n2 := DoubleDotC(devM, devM)
	n := SqrtC(n2)
	if real(n) < YieldFloor {
		n = complex(YieldFloor, imag(n))
	}
	return (n - complex(sqrt2Over3, 0)*betaP) / complex(fy, 0)
}

// YieldGradMC is the complex analogue of YieldGradM
func YieldGradMC(M Mat3C, fy float64) Mat3C {
	devM := DevC(M)
	n2 := DoubleDotC(devM, devM)
	n := SqrtC(n2)
	if real(n) < YieldFloor {
		n = complex(YieldFloor, imag(n))
	}
	return ScaleC2(1/(complex(fy, 0)*n), devM)
}

// HardeningBetaC is the complex analogue of HardeningBeta, used when
// alpha_p itself carries a complex-step perturbation.
func HardeningBetaC(alphaP complex128, fy, fyInf, eta, H float64) complex128 {
	return complex(fyInf, 0) + complex(fy-fyInf, 0)*cmplx.Exp(complex(-eta, 0)*alphaP) + complex(H, 0)*alphaP
}
