// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voigt

import (
	"testing"

	"github.com/cpmech/gosolid/chk"
	"github.com/cpmech/gosolid/tsr"
)

func TestStressRoundTrip(tst *testing.T) {
	chk.PrintTitle("StressRoundTrip")
	T := tsr.Mat3{{1, 2, 3}, {2, 4, 5}, {3, 5, 6}}
	v := ToVoigtStress(T)
	R := FromVoigtStress(v)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			chk.Scalar(tst, "stress round trip", 1e-14, R[i][j], T[i][j])
		}
	}
}

func TestStrainRoundTrip(tst *testing.T) {
	chk.PrintTitle("StrainRoundTrip")
	T := tsr.Mat3{{1, 0.5, 0.1}, {0.5, 2, 0.2}, {0.1, 0.2, 3}}
	v := ToVoigtStrain(T)
	R := FromVoigtStrain(v)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			chk.Scalar(tst, "strain round trip", 1e-14, R[i][j], T[i][j])
		}
	}
}

func TestMandelPreservesInnerProduct(tst *testing.T) {
	chk.PrintTitle("MandelPreservesInnerProduct")
	A := tsr.Mat3{{1, 2, 3}, {2, -1, 1}, {3, 1, 2}}
	B := tsr.Mat3{{2, 0, 1}, {0, 1, -1}, {1, -1, 3}}
	want := tsr.DoubleDot(A, B)
	va := ToMandelStress(ToVoigtStress(A))
	vb := ToMandelStress(ToVoigtStress(B))
	var got float64
	for a := 0; a < 6; a++ {
		got += va[a] * vb[a]
	}
	chk.Scalar(tst, "mandel inner product", 1e-12, got, want)
}

func TestPsdIsDeviatoricProjector(tst *testing.T) {
	chk.PrintTitle("PsdIsDeviatoricProjector")
	v := Im
	var r [6]float64
	for i := 0; i < 6; i++ {
		var s float64
		for j := 0; j < 6; j++ {
			s += Psd[i][j] * v[j]
		}
		r[i] = s
	}
	for i := 0; i < 6; i++ {
		chk.Scalar(tst, "Psd.Im", 1e-12, r[i], 0.0)
	}
}

// TestVoigtComponentOrder pins the component order to spec §6.3's literal
// convention (T_11,T_22,T_33,T_12,T_13,T_23), i.e. [12,13,23] and not
// [12,23,13], using a tensor with distinct off-diagonal entries so a
// transposed order would be caught.
func TestVoigtComponentOrder(tst *testing.T) {
	chk.PrintTitle("VoigtComponentOrder")
	T := tsr.Mat3{{11, 12, 13}, {12, 22, 23}, {13, 23, 33}}
	vStress := ToVoigtStress(T)
	wantStress := [6]float64{11, 22, 33, 12, 13, 23}
	for a := 0; a < 6; a++ {
		chk.Scalar(tst, "stress component order", 1e-14, vStress[a], wantStress[a])
	}
	vStrain := ToVoigtStrain(T)
	wantStrain := [6]float64{11, 22, 33, 24, 26, 46}
	for a := 0; a < 6; a++ {
		chk.Scalar(tst, "strain component order", 1e-14, vStrain[a], wantStrain[a])
	}
}
