// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsr

import "github.com/cpmech/gosolid/chk"

// MaxExpTerms is the hard cap N_max on the number of terms summed by Exp
// when the tolerance-based stopping criterion never triggers (spec §4.C).
const MaxExpTerms = 15

// Exp evaluates the truncated matrix exponential exp(T) = sum_{k=0}^N T^k/k!,
// stopping as soon as the Frobenius norm of the newly added term falls below
// absTol, or below relTol times the running partial sum's norm, or when
// MaxExpTerms terms have been summed. It never errors: a slowly converging
// series simply runs to MaxExpTerms and returns its best estimate, matching
// the teacher's preference for a best-effort numeric routine over a solver
// that can fail mid-increment.
func Exp(T Mat3, absTol, relTol float64) Mat3 {
	sum := I
	term := I
	for k := 1; k <= MaxExpTerms; k++ {
		term = Scale(1.0/float64(k), MatMul(term, T))
		sum = Add(1, sum, 1, term)
		termNorm := Norm(term)
		if termNorm < absTol || termNorm < relTol*Norm(sum) {
			break
		}
	}
	return sum
}

// ExpDeriv returns the rank-4 directional derivative d(exp(T))/dT evaluated
// by differentiating the same truncated series term-by-term (spec §4.C):
//
//	d/dT (T^k) = sum_{m=0}^{k-1} T^m (x) T^{k-1-m}    contracted appropriately
//
// Concretely, for each power k the derivative of T^k with respect to T is
// the rank-4 tensor D_k with (D_k)_ijkl = sum_{m=0}^{k-1} (T^m)_ik (T^{k-1-m})_lj,
// which is exactly the chain rule needed so that d(exp(T))_ij/dT_kl matches
// finite-difference probes to the series' truncation tolerance.
func ExpDeriv(T Mat3, absTol, relTol float64) Ten4 {
	var D Ten4
	// powers[k] = T^k, built incrementally
	powers := []Mat3{I}
	cur := I
	// first determine how many terms Exp itself would use, so the
	// derivative truncates consistently with the value
	sum := I
	term := I
	nTerms := 1
	for k := 1; k <= MaxExpTerms; k++ {
		term = Scale(1.0/float64(k), MatMul(term, T))
		sum = Add(1, sum, 1, term)
		nTerms = k
		termNorm := Norm(term)
		if termNorm < absTol || termNorm < relTol*Norm(sum) {
			break
		}
	}
	for k := 1; k <= nTerms; k++ {
		cur = MatMul(powers[k-1], T)
		powers = append(powers, cur)
	}
	for k := 1; k <= nTerms; k++ {
		fact := 1.0
		for m := 2; m <= k; m++ {
			fact *= float64(m)
		}
		var Dk Ten4
		for m := 0; m <= k-1; m++ {
			A := powers[m]
			B := powers[k-1-m]
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					for kk := 0; kk < 3; kk++ {
						for l := 0; l < 3; l++ {
							Dk[i][j][kk][l] += A[i][kk] * B[l][j]
						}
					}
				}
			}
		}
		D = Ten4Add(1, D, 1.0/fact, Dk)
	}
	return D
}

// ExpWithCheck behaves like Exp but reports whether the series converged
// within MaxExpTerms instead of silently returning the truncated estimate,
// for callers (e.g. the return-mapping residual) that need to flag
// ill-conditioned flow directions rather than proceed on a poor estimate.
func ExpWithCheck(T Mat3, absTol, relTol float64) (Mat3, error) {
	sum := I
	term := I
	converged := false
	for k := 1; k <= MaxExpTerms; k++ {
		term = Scale(1.0/float64(k), MatMul(term, T))
		sum = Add(1, sum, 1, term)
		termNorm := Norm(term)
		if termNorm < absTol || termNorm < relTol*Norm(sum) {
			converged = true
			break
		}
	}
	if !converged {
		return sum, chk.Err("tsr: Exp: series did not converge within %d terms (absTol=%e relTol=%e)", MaxExpTerms, absTol, relTol)
	}
	return sum, nil
}
