// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package utl collects small printing, formatting and numeric-assertion
// helpers used throughout the core, reimplementing the shape of the
// teacher repository's gosl/utl package.
package utl

import (
	"fmt"
	"math"
	"os"
	"testing"
)

// Tsilent turns off the colored diagnostic printing below when true (the
// default); cmd/materialpoint clears it so its messages are shown.
var Tsilent = true

// Sf is a shorthand for fmt.Sprintf
func Sf(msg string, prm ...interface{}) string { return fmt.Sprintf(msg, prm...) }

// Err formats and returns a new error
func Err(msg string, prm ...interface{}) error { return fmt.Errorf(msg, prm...) }

// Pf prints to stdout unless Tsilent is set
func Pf(msg string, prm ...interface{}) {
	if !Tsilent {
		fmt.Printf(msg, prm...)
	}
}

// Pfred prints in red unless Tsilent is set
func Pfred(msg string, prm ...interface{}) { colorPf("31", msg, prm...) }

// Pfyel prints in yellow unless Tsilent is set
func Pfyel(msg string, prm ...interface{}) { colorPf("33", msg, prm...) }

// Pfpink prints in magenta unless Tsilent is set
func Pfpink(msg string, prm ...interface{}) { colorPf("35", msg, prm...) }

// Pforan prints in orange unless Tsilent is set
func Pforan(msg string, prm ...interface{}) { colorPf("33;1", msg, prm...) }

func colorPf(code, msg string, prm ...interface{}) {
	if !Tsilent {
		fmt.Fprintf(os.Stdout, "\x1b[0;"+code+"m"+msg+"\x1b[0m", prm...)
	}
}

// TTitle prints a test section title
func TTitle(title string) { fmt.Printf("\n=== %s =========================================\n", title) }

// IntAssert panics if a != b
func IntAssert(a, b int) {
	if a != b {
		panic(Sf("IntAssert failed: %d != %d", a, b))
	}
}

// IntVals returns a slice of n copies of v
func IntVals(n, v int) []int {
	r := make([]int, n)
	for i := range r {
		r[i] = v
	}
	return r
}

// CheckScalar asserts a scalar is within tol of correct
func CheckScalar(tst *testing.T, msg string, tol, val, correct float64) {
	if math.Abs(val-correct) > tol {
		tst.Errorf("%s failed: %v != %v (tol=%v)", msg, val, correct, tol)
	}
}

// CheckMatrix asserts val and correct agree componentwise within tol
func CheckMatrix(tst *testing.T, msg string, tol float64, val, correct [][]float64) {
	if len(val) != len(correct) {
		tst.Errorf("%s failed: row count mismatch %d != %d", msg, len(val), len(correct))
		return
	}
	for i := range val {
		for j := range val[i] {
			if math.Abs(val[i][j]-correct[i][j]) > tol {
				tst.Errorf("%s[%d][%d] failed: %v != %v (tol=%v)", msg, i, j, val[i][j], correct[i][j], tol)
			}
		}
	}
}

// AnaNum compares an analytical value to a numerical one, erroring past tol
func AnaNum(msg string, tol, ana, num float64, verbose bool) error {
	diff := math.Abs(ana - num)
	if verbose {
		Pf("%s: ana=%v num=%v diff=%v\n", msg, ana, num, diff)
	}
	if diff > tol {
		return Err("%s: analytical and numerical values differ: %v != %v (diff=%v, tol=%v)", msg, ana, num, diff, tol)
	}
	return nil
}

// ReadFile reads an entire file into memory
func ReadFile(fn string) ([]byte, error) { return os.ReadFile(fn) }
