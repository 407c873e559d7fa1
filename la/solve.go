// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import (
	"math"

	"github.com/cpmech/gosolid/chk"
)

// QRSolveColPivot solves A x = b for a square n x n A by Householder QR
// with column pivoting, as required by the return-mapping Newton solve
// (spec §4.E.5 step 3). A is not modified. Returns an error if a
// pivot column norm or a diagonal entry of R falls below singularTol.
func QRSolveColPivot(A [][]float64, b []float64) (x []float64, err error) {
	n := len(A)
	R := MatAlloc(n, n)
	MatCopy(R, 1, A)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	rhs := make([]float64, n)
	copy(rhs, b)

	colNorm := func(j, from int) float64 {
		var s float64
		for i := from; i < n; i++ {
			s += R[i][j] * R[i][j]
		}
		return s
	}

	for k := 0; k < n; k++ {
		// pivot: choose remaining column with largest trailing norm
		best, bestNorm := k, colNorm(k, k)
		for j := k + 1; j < n; j++ {
			nrm := colNorm(j, k)
			if nrm > bestNorm {
				best, bestNorm = j, nrm
			}
		}
		if best != k {
			for i := 0; i < n; i++ {
				R[i][k], R[i][best] = R[i][best], R[i][k]
			}
			perm[k], perm[best] = perm[best], perm[k]
		}

		// Householder reflector zeroing R[k+1:,k]
		var normx float64
		for i := k; i < n; i++ {
			normx += R[i][k] * R[i][k]
		}
		normx = math.Sqrt(normx)
		if normx < singularTol {
			return nil, chk.Err("SingularTangent: QR pivot column %d underflowed (norm=%e)", k, normx)
		}
		alpha := -normx
		if R[k][k] < 0 {
			alpha = normx
		}
		v := make([]float64, n-k)
		v[0] = R[k][k] - alpha
		for i := k + 1; i < n; i++ {
			v[i-k] = R[i][k]
		}
		var vnorm float64
		for _, vi := range v {
			vnorm += vi * vi
		}
		if vnorm < singularTol*singularTol {
			// column already aligned with e_k; nothing to reflect
			continue
		}
		applyHouseholder := func(col []float64) {
			var dot float64
			for i := k; i < n; i++ {
				dot += v[i-k] * col[i]
			}
			factor := 2 * dot / vnorm
			for i := k; i < n; i++ {
				col[i] -= factor * v[i-k]
			}
		}
		for j := k; j < n; j++ {
			col := make([]float64, n)
			for i := 0; i < n; i++ {
				col[i] = R[i][j]
			}
			applyHouseholder(col)
			for i := 0; i < n; i++ {
				R[i][j] = col[i]
			}
		}
		applyHouseholder(rhs)
	}

	// back-substitution on the upper-triangular R (in permuted column order)
	y := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		if math.Abs(R[i][i]) < singularTol {
			return nil, chk.Err("SingularTangent: QR diagonal entry %d underflowed", i)
		}
		s := rhs[i]
		for j := i + 1; j < n; j++ {
			s -= R[i][j] * y[j]
		}
		y[i] = s / R[i][i]
	}

	// undo column permutation: x[perm[i]] = y[i]
	x = make([]float64, n)
	for i := 0; i < n; i++ {
		x[perm[i]] = y[i]
	}
	return x, nil
}

// LUSolveFullPivot solves A x = b for a square n x n A by Gaussian
// elimination with full (row and column) pivoting, as required by the
// mixed strain/stress increment correction (spec §4.F.3 step 4). A is
// not modified.
func LUSolveFullPivot(A [][]float64, b []float64) (x []float64, err error) {
	n := len(A)
	M := MatAlloc(n, n)
	MatCopy(M, 1, A)
	rhs := make([]float64, n)
	copy(rhs, b)
	rowPerm := make([]int, n)
	colPerm := make([]int, n)
	for i := range rowPerm {
		rowPerm[i] = i
		colPerm[i] = i
	}

	for k := 0; k < n; k++ {
		// full pivot: largest magnitude entry in the trailing submatrix
		pr, pc, best := k, k, math.Abs(M[k][k])
		for i := k; i < n; i++ {
			for j := k; j < n; j++ {
				if v := math.Abs(M[i][j]); v > best {
					pr, pc, best = i, j, v
				}
			}
		}
		if best < singularTol {
			return nil, chk.Err("SingularTangent: LU pivot %d underflowed (max=%e)", k, best)
		}
		if pr != k {
			M[k], M[pr] = M[pr], M[k]
			rhs[k], rhs[pr] = rhs[pr], rhs[k]
			rowPerm[k], rowPerm[pr] = rowPerm[pr], rowPerm[k]
		}
		if pc != k {
			for i := 0; i < n; i++ {
				M[i][k], M[i][pc] = M[i][pc], M[i][k]
			}
			colPerm[k], colPerm[pc] = colPerm[pc], colPerm[k]
		}
		for i := k + 1; i < n; i++ {
			factor := M[i][k] / M[k][k]
			if factor == 0 {
				continue
			}
			for j := k; j < n; j++ {
				M[i][j] -= factor * M[k][j]
			}
			rhs[i] -= factor * rhs[k]
		}
	}

	y := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		s := rhs[i]
		for j := i + 1; j < n; j++ {
			s -= M[i][j] * y[j]
		}
		y[i] = s / M[i][i]
	}

	x = make([]float64, n)
	for i := 0; i < n; i++ {
		x[colPerm[i]] = y[i]
	}
	return x, nil
}

// singularTol is the pivot-magnitude floor shared by this package's pivoted
// solvers (spec §7 SingularTangent); tsr.Inverse uses its own tsr.Eps.
const singularTol = 1e-13
