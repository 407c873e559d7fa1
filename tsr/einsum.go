// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsr

import "github.com/cpmech/gosolid/chk"

// Tensor is a dynamic-rank tensor on 3-dimensional indices, the
// representation backing the generic Einsum reduction (spec §4.A).
// Fixed-rank callers convert to/from Tensor at the boundary via
// FromMat3/ToMat3 and FromTen4/ToTen4; the rest of the core works with
// the named Mat3/Ten4 types directly for clarity and speed.
type Tensor struct {
	rank int
	data []float64 // flat, row-major over the rank indices, each of extent 3
}

// NewTensor allocates a zero tensor of the given rank (0..4)
func NewTensor(rank int) *Tensor {
	n := 1
	for i := 0; i < rank; i++ {
		n *= 3
	}
	return &Tensor{rank: rank, data: make([]float64, n)}
}

func (t *Tensor) index(idx []int) int {
	off := 0
	for _, i := range idx {
		off = off*3 + i
	}
	return off
}

// At returns the component at idx (len(idx) must equal t.rank)
func (t *Tensor) At(idx ...int) float64 { return t.data[t.index(idx)] }

// Set assigns the component at idx
func (t *Tensor) Set(v float64, idx ...int) { t.data[t.index(idx)] = v }

// FromMat3 lifts a Mat3 to a rank-2 Tensor
func FromMat3(T Mat3) *Tensor {
	t := NewTensor(2)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t.Set(T[i][j], i, j)
		}
	}
	return t
}

// ToMat3 lowers a rank-2 Tensor to a Mat3
func (t *Tensor) ToMat3() (T Mat3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			T[i][j] = t.At(i, j)
		}
	}
	return
}

// FromTen4 lifts a Ten4 to a rank-4 Tensor
func FromTen4(C Ten4) *Tensor {
	t := NewTensor(4)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					t.Set(C[i][j][k][l], i, j, k, l)
				}
			}
		}
	}
	return t
}

// ToTen4 lowers a rank-4 Tensor to a Ten4
func (t *Tensor) ToTen4() (C Ten4) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					C[i][j][k][l] = t.At(i, j, k, l)
				}
			}
		}
	}
	return
}

// Einsum evaluates a generic contraction: inputIdx[n] names the index
// letters of operand n (e.g. "ij"), outputIdx names the free indices of
// the result (e.g. "ik" for a matrix product "ij,jk->ik"). Every letter
// repeated across operands (or appearing in an operand but not the
// output) is summed 0..2; letters only in the output are free. Summation
// order is fixed (distinct letters in first-seen order) so results are
// deterministic, per spec §4.A.
func Einsum(outputIdx string, inputIdx []string, operands ...*Tensor) *Tensor {
	if len(inputIdx) != len(operands) {
		panic(chk.Err("tsr: Einsum: %d input index strings for %d operands", len(inputIdx), len(operands)))
	}
	// collect distinct letters in a fixed (first-seen) order
	var letters []byte
	seen := map[byte]bool{}
	add := func(s string) {
		for i := 0; i < len(s); i++ {
			if !seen[s[i]] {
				seen[s[i]] = true
				letters = append(letters, s[i])
			}
		}
	}
	for _, s := range inputIdx {
		add(s)
	}
	add(outputIdx)

	out := NewTensor(len(outputIdx))
	assign := make(map[byte]int, len(letters))

	var loop func(pos int)
	loop = func(pos int) {
		if pos == len(letters) {
			// evaluate product of operands at this index assignment
			prod := 1.0
			for n, spec := range inputIdx {
				idx := make([]int, len(spec))
				for k := 0; k < len(spec); k++ {
					idx[k] = assign[spec[k]]
				}
				prod *= operands[n].At(idx...)
			}
			outIdx := make([]int, len(outputIdx))
			for k := 0; k < len(outputIdx); k++ {
				outIdx[k] = assign[outputIdx[k]]
			}
			out.Set(out.At(outIdx...)+prod, outIdx...)
			return
		}
		for v := 0; v < 3; v++ {
			assign[letters[pos]] = v
			loop(pos + 1)
		}
	}
	loop(0)
	return out
}
