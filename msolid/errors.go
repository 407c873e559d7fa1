// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import "fmt"

// ReturnMappingError signals that the return-mapping Newton iteration
// (spec §4.E.5) exceeded its iteration cap without satisfying both the
// residual and the correction tolerances.
type ReturnMappingError struct {
	Iterations int
	ResidNorm  float64
}

func (e *ReturnMappingError) Error() string {
	return fmt.Sprintf("msolid: return mapping diverged after %d iterations (||R||=%e)", e.Iterations, e.ResidNorm)
}

// SingularTangentError signals a pivot underflow in one of the core's
// dense solvers (spec §7); it is always treated by the caller the same
// way a ReturnMappingError is treated.
type SingularTangentError struct {
	Inner error
}

func (e *SingularTangentError) Error() string {
	return fmt.Sprintf("msolid: singular tangent: %v", e.Inner)
}

func (e *SingularTangentError) Unwrap() error { return e.Inner }

// NonConvergentIncrementError signals that the driver's mixed-control
// Newton iteration (spec §4.F.3) exceeded maxIterations.
type NonConvergentIncrementError struct {
	Iterations int
	ResidNorm  float64
}

func (e *NonConvergentIncrementError) Error() string {
	return fmt.Sprintf("msolid: increment did not converge after %d iterations (||R||=%e)", e.Iterations, e.ResidNorm)
}

// MinStepError signals that the step manager halved the substep below
// its configured minimum (spec §4.F.2, §7); it always propagates to the
// caller rather than being recovered from.
type MinStepError struct {
	DtMin, DtAttempted float64
}

func (e *MinStepError) Error() string {
	return fmt.Sprintf("msolid: substep %e below minimum %e", e.DtAttempted, e.DtMin)
}

// InvalidArgumentError signals inconsistent control flags or wrong tensor
// dimensions caught at setup (spec §7).
type InvalidArgumentError struct {
	Msg string
}

func (e *InvalidArgumentError) Error() string { return "msolid: invalid argument: " + e.Msg }
