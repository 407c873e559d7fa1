// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmech

import (
	"math"

	"github.com/cpmech/gosolid/dual"
	"github.com/cpmech/gosolid/tsr"
)

// PsiA evaluates the Pence-Gou A potential, Psi(C;K,G) =
// G/2 (I1-3) + (K/2 - G/3)(J-1)^2 - G ln J, with J=sqrt(det C), I1=tr C.
func PsiA(C tsr.Mat3, K, G float64) float64 {
	I1 := tsr.Trace(C)
	J := math.Sqrt(tsr.Det(C))
	return 0.5*G*(I1-3) + (0.5*K-G/3.0)*(J-1)*(J-1) - G*math.Log(J)
}

// PsiB evaluates the Pence-Gou B potential, Psi(C;K,G) =
// K/8 (J-J^-1)^2 + G/2 (I1 J^(-2/3) - 3).
func PsiB(C tsr.Mat3, K, G float64) float64 {
	I1 := tsr.Trace(C)
	J := math.Sqrt(tsr.Det(C))
	return 0.125*K*(J-1/J)*(J-1/J) + 0.5*G*(I1*math.Pow(J, -2.0/3.0)-3)
}

// PsiC evaluates the Pence-Gou C potential, Psi(C;K,G) =
// G/2 (I1-3) + 3G^2/(3K-2G) (J^(2/3-K/G) - 1).
func PsiC(C tsr.Mat3, K, G float64) float64 {
	I1 := tsr.Trace(C)
	J := math.Sqrt(tsr.Det(C))
	p := 2.0/3.0 - K/G
	return 0.5*G*(I1-3) + 3*G*G/(3*K-2*G)*(math.Pow(J, p)-1)
}

// GradA returns the analytic gradient dPsiA/dC
func GradA(C tsr.Mat3, K, G float64) tsr.Mat3 {
	Cinv, err := tsr.Inverse(C)
	if err != nil {
		panic(err)
	}
	J := math.Sqrt(tsr.Det(C))
	dJdC := tsr.Scale(0.5*J, Cinv)
	coeff := (K-2.0*G/3.0)*(J-1) - G/J
	return tsr.Add(0.5*G, tsr.I, coeff, dJdC)
}

// GradB returns the analytic gradient dPsiB/dC
func GradB(C tsr.Mat3, K, G float64) tsr.Mat3 {
	Cinv, err := tsr.Inverse(C)
	if err != nil {
		panic(err)
	}
	I1 := tsr.Trace(C)
	J := math.Sqrt(tsr.Det(C))
	dJdC := tsr.Scale(0.5*J, tsr.Transpose(Cinv))
	a := 0.25 * K * (J - 1/J) * (1 + 1/(J*J))
	term1 := tsr.Scale(a, dJdC)
	term2 := tsr.Scale(0.5*G*math.Pow(J, -2.0/3.0), tsr.I)
	term3 := tsr.Scale(-(G/3.0)*I1*math.Pow(J, -5.0/3.0), dJdC)
	return tsr.Add(1, tsr.Add(1, term1, 1, term2), 1, term3)
}

// GradC returns the analytic gradient dPsiC/dC
func GradC(C tsr.Mat3, K, G float64) tsr.Mat3 {
	Cinv, err := tsr.Inverse(C)
	if err != nil {
		panic(err)
	}
	J := math.Sqrt(tsr.Det(C))
	dJdC := tsr.Scale(0.5*J, Cinv)
	p := 2.0/3.0 - K/G
	coeff := 3 * G * G / (3*K - 2*G) * p * math.Pow(J, p-1)
	return tsr.Add(0.5*G, tsr.I, coeff, dJdC)
}

// PsiBDual evaluates the Pence-Gou B potential with Dual-valued arithmetic,
// the AD path used to cross-check GradB and to compute the Hessian
// d2PsiB/dCdC via dual.D2GradientHessian (spec §4.D.2: "derivatives ...
// available either analytically or via AD drivers; the two paths must
// agree").
func PsiBDual(K, G float64) dual.ScalarField {
	return func(C [3][3]dual.Dual) dual.Dual {
		order := C[0][0].Order()
		I1 := dual.TraceD(C)
		detC := dual.DetD(C)
		J := dual.Sqrt(detC)
		Jinv := dual.Inv(J)
		diff := dual.Sub(J, Jinv)
		term1 := dual.Scale(0.125*K, dual.Mul(diff, diff))
		Jm23 := dual.Pow(J, -2.0/3.0)
		term2 := dual.Scale(0.5*G, dual.Sub(dual.Mul(I1, Jm23), dual.Const(3, order)))
		return dual.Add(term1, term2)
	}
}

// PsiADual is the Dual-arithmetic form of PsiA
func PsiADual(K, G float64) dual.ScalarField {
	return func(C [3][3]dual.Dual) dual.Dual {
		order := C[0][0].Order()
		I1 := dual.TraceD(C)
		detC := dual.DetD(C)
		J := dual.Sqrt(detC)
		t1 := dual.Scale(0.5*G, dual.Sub(I1, dual.Const(3, order)))
		Jm1 := dual.AddConst(J, -1)
		t2 := dual.Scale(0.5*K-G/3.0, dual.Mul(Jm1, Jm1))
		t3 := dual.Scale(G, dual.Log(J))
		return dual.Sub(dual.Add(t1, t2), t3)
	}
}

// PsiCDual is the Dual-arithmetic form of PsiC
func PsiCDual(K, G float64) dual.ScalarField {
	return func(C [3][3]dual.Dual) dual.Dual {
		order := C[0][0].Order()
		I1 := dual.TraceD(C)
		detC := dual.DetD(C)
		J := dual.Sqrt(detC)
		p := 2.0/3.0 - K/G
		t1 := dual.Scale(0.5*G, dual.Sub(I1, dual.Const(3, order)))
		Jp := dual.Pow(J, p)
		t2 := dual.Scale(3*G*G/(3*K-2*G), dual.AddConst(Jp, -1))
		return dual.Add(t1, t2)
	}
}

// GradBDual evaluates dPsiB/dC at a Dual-valued C via the same closed-form
// expression as GradB, lifted to Dual arithmetic (used inside the
// return-mapping residual's own AD path, j2ResidualDual, where the
// gradient itself must carry derivative information with respect to the
// outer unknowns — a second, nested application of dual.D2GradientHessian
// would work but is unnecessary when the closed form is this direct).
func GradBDual(C dual.Mat3D, K, G float64) dual.Mat3D {
	order := C[0][0].Order()
	Cinv := dualInverse(C)
	I1 := dual.TraceD(C)
	J := dual.Sqrt(dual.DetD(C))
	Jinv := dual.Inv(J)
	dJdC := dual.ScaleD2(dual.Scale(0.5, J), Cinv)
	one := dual.Const(1, order)
	a := dual.Mul(dual.Scale(0.25*K, dual.Sub(J, Jinv)), dual.Add(one, dual.Mul(Jinv, Jinv)))
	term1 := dual.ScaleD2(a, dJdC)
	term2 := dual.ScaleD2(dual.Scale(0.5*G, dual.Pow(J, -2.0/3.0)), dual.IdentityD(order))
	term3 := dual.ScaleD2(dual.Scale(-G/3.0, dual.Mul(I1, dual.Pow(J, -5.0/3.0))), dJdC)
	return dual.AddD(dual.AddD(term1, term2), term3)
}

// dualInverse returns the analytic 3x3 inverse of a Dual-valued tensor via
// the cofactor expansion, lifted to Dual arithmetic.
func dualInverse(T dual.Mat3D) dual.Mat3D {
	d := dual.DetD(T)
	dinv := dual.Inv(d)
	cof := func(a, b, c, e dual.Dual) dual.Dual {
		return dual.Sub(dual.Mul(a, b), dual.Mul(c, e))
	}
	var R dual.Mat3D
	R[0][0] = dual.Mul(cof(T[1][1], T[2][2], T[1][2], T[2][1]), dinv)
	R[0][1] = dual.Mul(cof(T[0][2], T[2][1], T[0][1], T[2][2]), dinv)
	R[0][2] = dual.Mul(cof(T[0][1], T[1][2], T[0][2], T[1][1]), dinv)
	R[1][0] = dual.Mul(cof(T[1][2], T[2][0], T[1][0], T[2][2]), dinv)
	R[1][1] = dual.Mul(cof(T[0][0], T[2][2], T[0][2], T[2][0]), dinv)
	R[1][2] = dual.Mul(cof(T[0][2], T[1][0], T[0][0], T[1][2]), dinv)
	R[2][0] = dual.Mul(cof(T[1][0], T[2][1], T[1][1], T[2][0]), dinv)
	R[2][1] = dual.Mul(cof(T[0][1], T[2][0], T[0][0], T[2][1]), dinv)
	R[2][2] = dual.Mul(cof(T[0][0], T[1][1], T[0][1], T[1][0]), dinv)
	return R
}

// HessianB returns the gradient and Hessian of PsiB at C via the AD driver
// D2, the path specified for second derivatives (spec §4.D.2).
func HessianB(C tsr.Mat3, K, G float64) (grad tsr.Mat3, hess tsr.Ten4) {
	return dual.D2GradientHessian(PsiBDual(K, G), C)
}

// HessianA returns the gradient and Hessian of PsiA at C via AD
func HessianA(C tsr.Mat3, K, G float64) (grad tsr.Mat3, hess tsr.Ten4) {
	return dual.D2GradientHessian(PsiADual(K, G), C)
}

// HessianC returns the gradient and Hessian of PsiC at C via AD
func HessianC(C tsr.Mat3, K, G float64) (grad tsr.Mat3, hess tsr.Ten4) {
	return dual.D2GradientHessian(PsiCDual(K, G), C)
}
