// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chk provides small error-construction and numeric-assertion
// helpers shared across the core, in the style the teacher repository
// used its own gosl/chk package.
package chk

import (
	"fmt"
	"math"
	"testing"
)

// Err formats and returns a new error, the way gosl/chk.Err does
func Err(msg string, prm ...interface{}) error {
	return fmt.Errorf(msg, prm...)
}

// IntAssert panics if a != b; used to guard internal invariants cheaply
func IntAssert(a, b int) {
	if a != b {
		panic(fmt.Sprintf("IntAssert failed: %d != %d", a, b))
	}
}

// PrintTitle prints a test section title
func PrintTitle(title string) {
	fmt.Printf("\n=== %s =========================================\n", title)
}

// Scalar asserts a scalar is within tol of correct, failing tst otherwise
func Scalar(tst *testing.T, msg string, tol, val, correct float64) {
	if math.Abs(val-correct) > tol {
		tst.Errorf("%s failed: %v != %v (tol=%v, diff=%v)", msg, val, correct, tol, math.Abs(val-correct))
	}
}

// Vector asserts val and correct agree componentwise within tol
func Vector(tst *testing.T, msg string, tol float64, val, correct []float64) {
	if len(val) != len(correct) {
		tst.Errorf("%s failed: length mismatch %d != %d", msg, len(val), len(correct))
		return
	}
	for i := range val {
		if math.Abs(val[i]-correct[i]) > tol {
			tst.Errorf("%s[%d] failed: %v != %v (tol=%v)", msg, i, val[i], correct[i], tol)
		}
	}
}

// Matrix asserts val and correct agree componentwise within tol
func Matrix(tst *testing.T, msg string, tol float64, val, correct [][]float64) {
	if len(val) != len(correct) {
		tst.Errorf("%s failed: row count mismatch %d != %d", msg, len(val), len(correct))
		return
	}
	for i := range val {
		Vector(tst, fmt.Sprintf("%s[%d]", msg, i), tol, val[i], correct[i])
	}
}
