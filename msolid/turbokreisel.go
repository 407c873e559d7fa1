// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosolid/tsr"
	"github.com/cpmech/gosolid/tsr/voigt"
)

// goldenAngle is the Fibonacci-lattice step angle used by FibonacciOrientations.
var goldenAngle = math.Pi * (3 - math.Sqrt(5))

// FibonacciOrientations returns n rotation matrices whose third column
// points along a near-uniform Fibonacci-lattice covering of the lower
// (z <= 0) hemisphere (spec §6.5): theta_i = acos(-(i-1)/n), phi_i = (i-1)*goldenAngle,
// with the remaining two columns completed by Gram-Schmidt against the
// global x-axis.
func FibonacciOrientations(n int) []tsr.Mat3 {
	Qs := make([]tsr.Mat3, n)
	for i := 1; i <= n; i++ {
		theta := math.Acos(-(float64(i-1)) / float64(n))
		phi := float64(i-1) * goldenAngle
		axis := tsr.Vec3{
			math.Sin(theta) * math.Cos(phi),
			math.Sin(theta) * math.Sin(phi),
			math.Cos(theta),
		}
		Qs[i-1] = orthonormalFrame(axis)
	}
	return Qs
}

// orthonormalFrame builds a right-handed rotation matrix whose third
// column is axis (already unit length), completed by Gram-Schmidt against
// the global x-axis (or y-axis, if axis is nearly parallel to x).
func orthonormalFrame(axis tsr.Vec3) tsr.Mat3 {
	ref := tsr.Vec3{1, 0, 0}
	if math.Abs(axis[0]) > 0.9 {
		ref = tsr.Vec3{0, 1, 0}
	}
	e1 := normalize3(cross3(ref, axis))
	e2 := cross3(axis, e1)
	var Q tsr.Mat3
	for i := 0; i < 3; i++ {
		Q[i][0] = e1[i]
		Q[i][1] = e2[i]
		Q[i][2] = axis[i]
	}
	return Q
}

func cross3(a, b tsr.Vec3) tsr.Vec3 {
	return tsr.Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func normalize3(a tsr.Vec3) tsr.Vec3 {
	n := math.Sqrt(a[0]*a[0] + a[1]*a[1] + a[2]*a[2])
	return tsr.Vec3{a[0] / n, a[1] / n, a[2] / n}
}

// rotateTensor returns Q T Q^T, the push-forward of T by rotation Q.
func rotateTensor(Q, T tsr.Mat3) tsr.Mat3 {
	return tsr.MatMul(tsr.MatMul(Q, T), tsr.Transpose(Q))
}

// TurbokreiselResult is one orientation's frame-indifference check (spec
// §4.F.4, §6.5): both the stress and the tangent, transformed back by Q,
// must reproduce the reference-frame response.
type TurbokreiselResult struct {
	Q               tsr.Mat3
	StressResidual  float64 // ||Q^T tau' Q - tauRef||
	TangentResidual float64 // ||Q^T (Q D' Q^T) Q - Dref|| as a rank-4 tensor, rotated on all four indices
	Passed          bool    // StressResidual < stressTol && TangentResidual < tangentTol
}

// toTangent6 copies a driver's row-major [][]float64 tangent (spec
// §3.5's Tangent field) into a fixed [6][6]float64 for voigt.ToTen4.
func toTangent6(rows [][]float64) (D [6][6]float64) {
	for i := 0; i < 6; i++ {
		copy(D[i][:], rows[i])
	}
	return
}

// rotateTen4 returns the push-forward of C by rotation Q on all four
// indices: R_ijkl = Q_im Q_jn Q_ko Q_lp C_mnop.
func rotateTen4(Q tsr.Mat3, C tsr.Ten4) (R tsr.Ten4) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					var sum float64
					for m := 0; m < 3; m++ {
						for n := 0; n < 3; n++ {
							for o := 0; o < 3; o++ {
								for p := 0; p < 3; p++ {
									sum += Q[i][m] * Q[j][n] * Q[k][o] * Q[l][p] * C[m][n][o][p]
								}
							}
						}
					}
					R[i][j][k][l] = sum
				}
			}
		}
	}
	return
}

// ten4Norm returns the Frobenius norm of a rank-4 tensor.
func ten4Norm(C tsr.Ten4) float64 {
	var s float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					s += C[i][j][k][l] * C[i][j][k][l]
				}
			}
		}
	}
	return math.Sqrt(s)
}

// RunTurbokreisel replays steps (which must be fully strain-controlled, a
// precondition of spec §6.5) through fresh instances of newModel, once in
// the reference frame and once per orientation returned by
// FibonacciOrientations(n), and checks that the rotated-back stress AND
// tangent reproduce the reference-frame response (universal invariant 10,
// spec §8.1: stress within stressTol, tangent within tangentTol, and
// §4.F.4: "every physically reasonable small-strain model must pass this
// check").
func RunTurbokreisel(newModel func() (SmallStrain, error), steps []Step, n int, stressTol, tangentTol float64) ([]TurbokreiselResult, error) {
	for _, step := range steps {
		for _, c := range step.Control {
			if c != StrainControlled {
				return nil, &InvalidArgumentError{Msg: "turbokreisel requires fully strain-controlled steps"}
			}
		}
	}

	refModel, err := newModel()
	if err != nil {
		return nil, err
	}
	refDriver := NewSmallStrainDriver(refModel, DefaultSolverOptions())
	for _, step := range steps {
		if err := refDriver.RunStep(step); err != nil {
			return nil, err
		}
	}
	if len(refDriver.History) == 0 {
		return nil, &InvalidArgumentError{Msg: "turbokreisel needs at least one committed increment"}
	}
	refEntry := refDriver.History[len(refDriver.History)-1]
	tauRef := voigt.FromVoigtStress(refEntry.Stress)
	Dref := voigt.ToTen4(toTangent6(refEntry.Tangent))

	orientations := FibonacciOrientations(n)
	results := make([]TurbokreiselResult, len(orientations))
	for k, Q := range orientations {
		rotatedSteps := make([]Step, len(steps))
		for i, step := range steps {
			var targetArr [6]float64
			copy(targetArr[:], step.Target)
			E := voigt.FromVoigtStrain(targetArr)
			Erot := rotateTensor(Q, E)
			rotatedTarget := voigt.ToVoigtStrain(Erot)
			rotatedSteps[i] = Step{
				Control: step.Control,
				Target:  rotatedTarget[:],
				TStart:  step.TStart,
				TEnd:    step.TEnd,
			}
		}

		model, merr := newModel()
		if merr != nil {
			return nil, merr
		}
		driver := NewSmallStrainDriver(model, DefaultSolverOptions())
		for _, step := range rotatedSteps {
			if err := driver.RunStep(step); err != nil {
				return nil, err
			}
		}
		rotEntry := driver.History[len(driver.History)-1]
		tauRot := voigt.FromVoigtStress(rotEntry.Stress)
		tauBack := rotateTensor(tsr.Transpose(Q), tauRot)
		stressResidual := tsr.Norm(tsr.Add(1, tauBack, -1, tauRef))

		Drot := voigt.ToTen4(toTangent6(rotEntry.Tangent))
		Dback := rotateTen4(tsr.Transpose(Q), Drot)
		tangentResidual := ten4Norm(tsr.Ten4Add(1, Dback, -1, Dref))

		results[k] = TurbokreiselResult{
			Q:               Q,
			StressResidual:  stressResidual,
			TangentResidual: tangentResidual,
			Passed:          stressResidual < stressTol && tangentResidual < tangentTol,
		}
	}
	return results, nil
}
