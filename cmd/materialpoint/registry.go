// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command materialpoint drives a single-material-point simulation from a
// config.Material and a msolid.Path (spec §4.F, §9.1): this is the closed
// set model registry the core deliberately omits, mapping a material's
// "model" string to a live msolid.FiniteStrain or msolid.SmallStrain
// instance.
package main

import (
	"github.com/cpmech/gosolid/fun"
	"github.com/cpmech/gosolid/msolid"
)

// finiteFactory builds a msolid.FiniteStrain model from its parameters.
type finiteFactory func(prms fun.Prms, label string) (msolid.FiniteStrain, error)

// smallFactory builds a msolid.SmallStrain model from its parameters.
type smallFactory func(prms fun.Prms, label string) (msolid.SmallStrain, error)

var finiteModels = map[string]finiteFactory{
	"j2finite": func(prms fun.Prms, label string) (msolid.FiniteStrain, error) {
		return msolid.NewFiniteStrainJ2(prms, label)
	},
}

var smallModels = map[string]smallFactory{
	"elast": func(prms fun.Prms, label string) (msolid.SmallStrain, error) {
		return msolid.NewSmallStrainElastic(prms, label)
	},
}

// knownModels lists every registry key, for a descriptive error message.
func knownModels() []string {
	names := make([]string, 0, len(finiteModels)+len(smallModels))
	for k := range finiteModels {
		names = append(names, k)
	}
	for k := range smallModels {
		names = append(names, k)
	}
	return names
}
