// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package la provides the small dense-matrix plumbing the core needs:
// allocation/copy helpers in the shape of the teacher repository's
// gosl/la package, plus the two dense solvers the constitutive and
// driver Newton loops are specified against: a column-pivot QR solve
// for the 11-unknown return-mapping system, and a full-pivot LU solve
// for the mixed strain/stress increment correction.
package la

import "math"

// MatAlloc allocates an m x n matrix of zeros
func MatAlloc(m, n int) [][]float64 {
	mat := make([][]float64, m)
	data := make([]float64, m*n)
	for i := range mat {
		mat[i] = data[i*n : (i+1)*n]
	}
	return mat
}

// VecAlloc allocates a vector of zeros of length n
func VecAlloc(n int) []float64 { return make([]float64, n) }

// MatFill sets every entry of m to v
func MatFill(m [][]float64, v float64) {
	for i := range m {
		for j := range m[i] {
			m[i][j] = v
		}
	}
}

// MatCopy sets dst := alpha*src
func MatCopy(dst [][]float64, alpha float64, src [][]float64) {
	for i := range dst {
		for j := range dst[i] {
			dst[i][j] = alpha * src[i][j]
		}
	}
}

// VecAdd sets v := alpha*v + beta*w in place, returning v
func VecAdd(v []float64, alpha float64, beta float64, w []float64) []float64 {
	for i := range v {
		v[i] = alpha*v[i] + beta*w[i]
	}
	return v
}

// VecAdd2 sets dst := alpha*a + beta*b
func VecAdd2(dst []float64, alpha float64, a []float64, beta float64, b []float64) {
	for i := range dst {
		dst[i] = alpha*a[i] + beta*b[i]
	}
}

// VecNorm returns the Euclidean norm of v
func VecNorm(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += x * x
	}
	return math.Sqrt(s)
}
