// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsr

// delta is the Kronecker delta on {0,1,2}
func delta(i, j int) float64 {
	if i == j {
		return 1
	}
	return 0
}

// I is the second-rank identity, I_ij = delta_ij
var I = Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// LeviCivita is the rank-3 permutation tensor, epsilon_123 = +1
var LeviCivita = buildLeviCivita()

func buildLeviCivita() Ten3 {
	var e Ten3
	perms := [][3]int{{0, 1, 2}, {1, 2, 0}, {2, 0, 1}}
	for _, p := range perms {
		e[p[0]][p[1]][p[2]] = 1
	}
	negperms := [][3]int{{2, 1, 0}, {0, 2, 1}, {1, 0, 2}}
	for _, p := range negperms {
		e[p[0]][p[1]][p[2]] = -1
	}
	return e
}

// Isym is the symmetrizing rank-4 projector: 1/2(delta_ik delta_jl + delta_il delta_jk)
var Isym = buildIsym()

func buildIsym() Ten4 {
	var c Ten4
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					c[i][j][k][l] = 0.5 * (delta(i, k)*delta(j, l) + delta(i, l)*delta(j, k))
				}
			}
		}
	}
	return c
}

// Iskw is the skew-symmetrizing rank-4 projector: 1/2(delta_ik delta_jl - delta_il delta_jk)
var Iskw = buildIskw()

func buildIskw() Ten4 {
	var c Ten4
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					c[i][j][k][l] = 0.5 * (delta(i, k)*delta(j, l) - delta(i, l)*delta(j, k))
				}
			}
		}
	}
	return c
}

// I4 is delta_ik delta_jl
var I4 = buildI4()

func buildI4() Ten4 {
	var c Ten4
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					c[i][j][k][l] = delta(i, k) * delta(j, l)
				}
			}
		}
	}
	return c
}

// I4T is delta_il delta_jk
var I4T = buildI4T()

func buildI4T() Ten4 {
	var c Ten4
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					c[i][j][k][l] = delta(i, l) * delta(j, k)
				}
			}
		}
	}
	return c
}

// Ihyd is I (x) I, i.e. delta_ij delta_kl
var Ihyd = buildIhyd()

func buildIhyd() Ten4 {
	var c Ten4
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					c[i][j][k][l] = delta(i, j) * delta(k, l)
				}
			}
		}
	}
	return c
}

// Dproj is the deviatoric projector, I4 - (1/3) Ihyd
var Dproj = buildDproj()

func buildDproj() Ten4 {
	var c Ten4
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					c[i][j][k][l] = I4[i][j][k][l] - Ihyd[i][j][k][l]/3.0
				}
			}
		}
	}
	return c
}
