// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"os"

	"github.com/cpmech/gosolid/config"
	"github.com/cpmech/gosolid/msolid"
	"github.com/cpmech/gosolid/utl"
)

func main() {
	utl.Tsilent = false
	defer func() {
		if err := recover(); err != nil {
			utl.Pfred("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	utl.Pf("materialpoint -- single material-point driver\n")

	matFile := flag.String("mat", "", "materials JSON file")
	matName := flag.String("name", "", "material name within the materials file")
	pathFile := flag.String("path", "", "path JSON file (a msolid.Path)")
	outFile := flag.String("out", "", "CSV output file (default: stdout)")
	turbokreisel := flag.Int("turbokreisel", 0, "if > 0, run a Turbokreisel frame-indifference check with this many orientations instead of exporting history (small-strain models only)")
	stressTol := flag.Float64("stressTol", 1e-10, "Turbokreisel stress-residual tolerance (spec §8.1 invariant 10)")
	tangentTol := flag.Float64("tangentTol", 1e-8, "Turbokreisel tangent-residual tolerance (spec §8.1 invariant 10)")
	flag.Parse()

	if *matFile == "" || *matName == "" || *pathFile == "" {
		utl.Pfred("usage: materialpoint -mat=<file> -name=<material> -path=<file> [-out=<file>] [-turbokreisel=N] [-stressTol=1e-10] [-tangentTol=1e-8]\n")
		utl.Pfred("known models: %v\n", knownModels())
		os.Exit(1)
	}

	db, err := config.ReadMaterialDB(*matFile)
	if err != nil {
		utl.Pfred("%v\n", err)
		os.Exit(1)
	}
	mat := db.Get(*matName)
	if mat == nil {
		utl.Pfred("material %q not found in %q\n", *matName, *matFile)
		os.Exit(1)
	}

	path, err := msolid.ReadPathJSON(*pathFile)
	if err != nil {
		utl.Pfred("%v\n", err)
		os.Exit(1)
	}

	var out *os.File
	if *outFile == "" {
		out = os.Stdout
	} else {
		out, err = os.Create(*outFile)
		if err != nil {
			utl.Pfred("%v\n", err)
			os.Exit(1)
		}
		defer out.Close()
	}

	if finite, ok := finiteModels[mat.Model]; ok {
		model, ferr := finite(mat.Prms, mat.Name)
		if ferr != nil {
			utl.Pfred("%v\n", ferr)
			os.Exit(1)
		}
		driver := msolid.NewFiniteStrainDriver(model, msolid.DefaultSolverOptions())
		for _, step := range path.Steps {
			if rerr := driver.RunStep(step); rerr != nil {
				utl.Pfred("%v\n", rerr)
				os.Exit(1)
			}
		}
		if cerr := driver.WriteHistoryCSV(out); cerr != nil {
			utl.Pfred("%v\n", cerr)
			os.Exit(1)
		}
		return
	}

	if small, ok := smallModels[mat.Model]; ok {
		if *turbokreisel > 0 {
			newModel := func() (msolid.SmallStrain, error) { return small(mat.Prms, mat.Name) }
			results, terr := msolid.RunTurbokreisel(newModel, path.Steps, *turbokreisel, *stressTol, *tangentTol)
			if terr != nil {
				utl.Pfred("%v\n", terr)
				os.Exit(1)
			}
			worstStress, worstTangent := 0.0, 0.0
			allPassed := true
			for _, r := range results {
				if r.StressResidual > worstStress {
					worstStress = r.StressResidual
				}
				if r.TangentResidual > worstTangent {
					worstTangent = r.TangentResidual
				}
				allPassed = allPassed && r.Passed
			}
			utl.Pf("turbokreisel: %d orientations, worst stress residual = %e (tol=%e), worst tangent residual = %e (tol=%e)\n",
				len(results), worstStress, *stressTol, worstTangent, *tangentTol)
			if !allPassed {
				os.Exit(1)
			}
			return
		}
		model, serr := small(mat.Prms, mat.Name)
		if serr != nil {
			utl.Pfred("%v\n", serr)
			os.Exit(1)
		}
		driver := msolid.NewSmallStrainDriver(model, msolid.DefaultSolverOptions())
		for _, step := range path.Steps {
			if rerr := driver.RunStep(step); rerr != nil {
				utl.Pfred("%v\n", rerr)
				os.Exit(1)
			}
		}
		if cerr := driver.WriteHistoryCSV(out); cerr != nil {
			utl.Pfred("%v\n", cerr)
			os.Exit(1)
		}
		return
	}

	utl.Pfred("unknown model %q; known models: %v\n", mat.Model, knownModels())
	os.Exit(1)
}
