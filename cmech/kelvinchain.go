// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmech

import "math"

// KelvinUnit is one spring-dashpot unit of a Kelvin (Kelvin-Voigt) chain:
// stiffness modulus G and relaxation time tau (dashpot viscosity / G).
type KelvinUnit struct {
	G   float64
	Tau float64
}

// KelvinChain is a Prony-series viscoelastic substrate (spec §2, layer A/D
// share; supplemented from the Marmot viscoelasticity module): a series of
// Kelvin units plus an instantaneous elastic modulus G0, each unit carrying
// a scalar internal (hidden-strain) state gamma_i that is recursively
// updated, not recomputed from the whole strain history. Exposed as a
// reusable building block rather than wired to a specific material.
type KelvinChain struct {
	G0    float64
	Units []KelvinUnit
	Gamma []float64 // per-unit internal state, len(Gamma) == len(Units)
}

// NewKelvinChain builds a chain with all internal states at zero
func NewKelvinChain(G0 float64, units []KelvinUnit) *KelvinChain {
	return &KelvinChain{G0: G0, Units: units, Gamma: make([]float64, len(units))}
}

// RelaxationModulus returns the chain's instantaneous relaxation modulus
// at elapsed time t: G(t) = G0 + sum_i G_i exp(-t/tau_i)
func (o *KelvinChain) RelaxationModulus(t float64) float64 {
	g := o.G0
	for _, u := range o.Units {
		g += u.G * math.Exp(-t/u.Tau)
	}
	return g
}

// Update advances every unit's internal state by one strain increment
// deltaEps over a time step dt, using the standard exponential recursive
// algorithm for a Prony series (avoids storing the full strain history):
//
//	lambda_i = exp(-dt/tau_i)
//	beta_i   = (1-lambda_i) * tau_i/dt              (dt -> 0 limit: beta_i -> 1)
//	gamma_i(t+dt) = lambda_i*gamma_i(t) + beta_i*deltaEps
//
// and returns the incremental stress response G0*deltaEps + sum_i G_i*(gamma_i_new-gamma_i_old)
// together with the algorithmic (consistent) tangent modulus for this step.
func (o *KelvinChain) Update(deltaEps, dt float64) (deltaSigma, tangent float64) {
	tangent = o.G0
	deltaSigma = o.G0 * deltaEps
	for i, u := range o.Units {
		lambda := math.Exp(-dt / u.Tau)
		var beta float64
		if dt > 1e-300 {
			beta = (1 - lambda) * u.Tau / dt
		} else {
			beta = 1
		}
		gammaNew := lambda*o.Gamma[i] + beta*deltaEps
		deltaSigma += u.G * (gammaNew - o.Gamma[i])
		tangent += u.G * beta
		o.Gamma[i] = gammaNew
	}
	return
}

// Reset clears every unit's internal state to zero
func (o *KelvinChain) Reset() {
	for i := range o.Gamma {
		o.Gamma[i] = 0
	}
}
