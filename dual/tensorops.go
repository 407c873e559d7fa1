// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dual

// Mat3D is a second-rank tensor of Duals, the operand type ScalarField and
// TensorField bodies are written against.
type Mat3D = [3][3]Dual

// TraceD returns tr(T) for a Dual-valued tensor
func TraceD(T Mat3D) Dual {
	return Add(Add(T[0][0], T[1][1]), T[2][2])
}

// TransposeD returns T^T
func TransposeD(T Mat3D) (R Mat3D) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			R[i][j] = T[j][i]
		}
	}
	return
}

// AddD returns A + B
func AddD(A, B Mat3D) (R Mat3D) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			R[i][j] = Add(A[i][j], B[i][j])
		}
	}
	return
}

// SubD returns A - B
func SubD(A, B Mat3D) (R Mat3D) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			R[i][j] = Sub(A[i][j], B[i][j])
		}
	}
	return
}

// ScaleD returns alpha*T for a constant scalar alpha
func ScaleD(alpha float64, T Mat3D) (R Mat3D) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			R[i][j] = Scale(alpha, T[i][j])
		}
	}
	return
}

// ScaleD2 returns alpha*T for a Dual scalar alpha, used where the scaling
// factor itself carries derivative information (e.g. deltaLambda in the
// return-mapping residual's own AD path) rather than being held constant.
func ScaleD2(alpha Dual, T Mat3D) (R Mat3D) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			R[i][j] = Mul(alpha, T[i][j])
		}
	}
	return
}

// MatMulD returns A.B (ordinary matrix product over Dual entries)
func MatMulD(A, B Mat3D) (R Mat3D) {
	order := A[0][0].Order()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			s := New(order)
			for k := 0; k < 3; k++ {
				s = Add(s, Mul(A[i][k], B[k][j]))
			}
			R[i][j] = s
		}
	}
	return
}

// MatMulTAD returns A^T.B
func MatMulTAD(A, B Mat3D) Mat3D {
	return MatMulD(TransposeD(A), B)
}

// DoubleDotD returns A:B = A_ij B_ij
func DoubleDotD(A, B Mat3D) Dual {
	order := A[0][0].Order()
	s := New(order)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			s = Add(s, Mul(A[i][j], B[i][j]))
		}
	}
	return s
}

// DetD returns det(T) via cofactor expansion over Dual entries
func DetD(T Mat3D) Dual {
	a := Mul(T[0][0], Sub(Mul(T[1][1], T[2][2]), Mul(T[1][2], T[2][1])))
	b := Mul(T[0][1], Sub(Mul(T[1][0], T[2][2]), Mul(T[1][2], T[2][0])))
	c := Mul(T[0][2], Sub(Mul(T[1][0], T[2][1]), Mul(T[1][1], T[2][0])))
	return Sub(Add(a, c), b)
}

// IdentityD returns the Dual-valued identity tensor at the given order
func IdentityD(order int) (I Mat3D) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				I[i][j] = Const(1, order)
			} else {
				I[i][j] = Const(0, order)
			}
		}
	}
	return
}

// DevD returns the deviatoric part T - 1/3 tr(T) I
func DevD(T Mat3D) Mat3D {
	order := T[0][0].Order()
	p := Scale(1.0/3.0, TraceD(T))
	R := T
	for i := 0; i < 3; i++ {
		R[i][i] = Sub(T[i][i], p)
	}
	_ = order
	return R
}

// ExpD evaluates the truncated matrix exponential exp(T) (the Dual
// analogue of tsr.Exp/cmech.ExpC) by running the same series to a fixed
// term count rather than a tolerance-based stop, since a Dual's higher
// coefficients carry derivative information whose magnitude says nothing
// about convergence of the value itself.
func ExpD(T Mat3D, maxTerms int) Mat3D {
	order := T[0][0].Order()
	sum := IdentityD(order)
	term := IdentityD(order)
	for k := 1; k <= maxTerms; k++ {
		term = ScaleD(1.0/float64(k), MatMulD(term, T))
		sum = AddD(sum, term)
	}
	return sum
}
