// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosolid/fun"
	"github.com/cpmech/gosolid/tsr/voigt"
)

// SmallStrain is the external interface a small-strain material exposes
// (spec §6.2): the total (accumulated) strain in Voigt form in,
// Cauchy/engineering stress and its 6x6 tangent out. The drivers pass the
// accumulated strain, not a strain increment.
type SmallStrain interface {
	NumStateVars() int
	InitState(state []float64)
	ComputeStress(strain [6]float64, t, dt float64, state []float64) (stress [6]float64, D [6][6]float64, err error)
}

// SmallStrainElastic implements the small-strain (hypo-elastic) collaborator
// of spec §6.2/§8.2 Scenario S6: a linear-elastic material expressed in
// Voigt form, any one of the equivalent constant pairs {E,nu}, {l,G},
// {K,G}, {K,nu} (mirroring the teacher's SmallElasticity.Init).
type SmallStrainElastic struct {
	Label string
	E, Nu float64 // Young's modulus and Poisson ratio
	L, G  float64 // Lame's lambda and shear modulus
	K     float64 // bulk modulus
}

// NewSmallStrainElastic parses one of the four equivalent elastic-constant
// pairs from prms (spec §6.2, construct).
func NewSmallStrainElastic(prms fun.Prms, label string) (*SmallStrainElastic, error) {
	o := &SmallStrainElastic{Label: label}
	var hasE, hasNu, hasL, hasG, hasK bool
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E, hasE = p.V, true
		case "nu":
			o.Nu, hasNu = p.V, true
		case "l":
			o.L, hasL = p.V, true
		case "G":
			o.G, hasG = p.V, true
		case "K":
			o.K, hasK = p.V, true
		default:
			return nil, &InvalidArgumentError{Msg: "elast: unknown parameter " + p.N}
		}
	}
	switch {
	case hasE && hasNu:
		o.L = Calc_l_from_Enu(o.E, o.Nu)
		o.G = Calc_G_from_Enu(o.E, o.Nu)
		o.K = Calc_K_from_Enu(o.E, o.Nu)
	case hasL && hasG:
		o.E = Calc_E_from_lG(o.L, o.G)
		o.Nu = Calc_nu_from_lG(o.L, o.G)
		o.K = Calc_K_from_lG(o.L, o.G)
	case hasK && hasG:
		o.E = Calc_E_from_KG(o.K, o.G)
		o.Nu = Calc_nu_from_KG(o.K, o.G)
		o.L = Calc_l_from_KG(o.K, o.G)
	case hasK && hasNu:
		o.E = Calc_E_from_Knu(o.K, o.Nu)
		o.G = Calc_G_from_Knu(o.K, o.Nu)
		o.L = Calc_l_from_Knu(o.K, o.Nu)
	default:
		return nil, &InvalidArgumentError{Msg: "elast: need one of {E,nu}, {l,G}, {K,G}, {K,nu}"}
	}
	return o, nil
}

// NumStateVars returns 0: this model carries no internal state.
func (o *SmallStrainElastic) NumStateVars() int { return 0 }

// InitState is a no-op: there is no state to initialize.
func (o *SmallStrainElastic) InitState(state []float64) {}

// engineeringToTensorFactor converts the raw/engineering Voigt strain
// convention of spec §6.3 (P=(1,1,1,2,2,2)) back to a plain tensor
// component: 1 for the normal rows, 1/2 for the engineering-shear rows.
func engineeringToTensorFactor(i int) float64 {
	if i < 3 {
		return 1
	}
	return 0.5
}

// ComputeStress returns Cauchy stress = D:strain and the constant
// stiffness D in the raw/engineering Voigt convention of spec §6.3,
// satisfying the SmallStrain interface (spec §6.2).
func (o *SmallStrainElastic) ComputeStress(strain [6]float64, t, dt float64, state []float64) (stress [6]float64, D [6][6]float64, err error) {
	tr := strain[0] + strain[1] + strain[2]
	for i := 0; i < 6; i++ {
		stress[i] = o.L*tr*voigt.Im[i] + 2*o.G*engineeringToTensorFactor(i)*strain[i]
	}
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			D[i][j] = o.L * voigt.Im[i] * voigt.Im[j]
		}
		D[i][i] += 2 * o.G * engineeringToTensorFactor(i)
	}
	return
}

// converters, grounded on the teacher's own elastic-constant relations //

// Calc_l_from_Enu returns l given E and nu
func Calc_l_from_Enu(E, nu float64) float64 {
	return E * nu / ((1.0 + nu) * (1.0 - 2.0*nu))
}

// Calc_G_from_Enu returns G given E and nu
func Calc_G_from_Enu(E, nu float64) float64 {
	return E / (2.0 * (1.0 + nu))
}

// Calc_K_from_Enu returns K given E and nu
func Calc_K_from_Enu(E, nu float64) float64 {
	return E / (3.0 * (1.0 - 2.0*nu))
}

// Calc_E_from_lG returns E given l and G
func Calc_E_from_lG(l, G float64) float64 {
	return G * (3.0*l + 2.0*G) / (l + G)
}

// Calc_nu_from_lG returns nu given l and G
func Calc_nu_from_lG(l, G float64) float64 {
	return 0.5 * l / (l + G)
}

// Calc_K_from_lG returns K given l and G
func Calc_K_from_lG(l, G float64) float64 {
	return l + 2.0*G/3.0
}

// Calc_E_from_KG returns E given K and G
func Calc_E_from_KG(K, G float64) float64 {
	return 9.0 * K * G / (3.0*K + G)
}

// Calc_nu_from_KG returns nu given K and G
func Calc_nu_from_KG(K, G float64) float64 {
	return (3.0*K - 2.0*G) / (2.0 * (3.0*K + G))
}

// Calc_l_from_KG returns l given K and G
func Calc_l_from_KG(K, G float64) float64 {
	return K - 2.0*G/3.0
}

// Calc_E_from_Knu returns E given K and nu
func Calc_E_from_Knu(K, nu float64) float64 {
	return 3.0 * K * (1.0 - 2.0*nu)
}

// Calc_G_from_Knu returns G given K and nu
func Calc_G_from_Knu(K, nu float64) float64 {
	return 3.0 * K * (1.0 - 2.0*nu) / (2.0 * (1.0 + nu))
}

// Calc_l_from_Knu returns l given K and nu
func Calc_l_from_Knu(K, nu float64) float64 {
	return 3.0 * K * nu / (1.0 + nu)
}
