package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for analysis operations.
var (
	// ErrNoSolver indicates a continuous orbit was requested without a solver.
	ErrNoSolver = errors.New("phaseline: solver function not supplied")

	// ErrBadIterations indicates a non-positive iteration count.
	ErrBadIterations = errors.New("phaseline: iteration count must be at least 1")

	// ErrBadRadius indicates a non-positive perturbation radius.
	ErrBadRadius = errors.New("phaseline: perturbation radius must be positive")

	// ErrBadTolerance indicates a non-positive convergence tolerance.
	ErrBadTolerance = errors.New("phaseline: tolerance must be positive")

	// ErrBadStep indicates a non-positive solver step size.
	ErrBadStep = errors.New("phaseline: step size must be positive")

	// ErrBadPeriod indicates an oscillation period search bound below 1.
	ErrBadPeriod = errors.New("phaseline: period must be at least 1")

	// ErrNoConvergence indicates the fixed-point search exhausted its
	// iteration budget without meeting tolerance.
	ErrNoConvergence = errors.New("phaseline: fixed-point iteration did not converge")
)

// ConvergenceError reports a fixed-point search that exhausted MaxIter
// iterations. Last holds the final estimate (one element for the scalar
// search, one per component for the vector search).
type ConvergenceError struct {
	MaxIter int
	Last    Vec
}

func (e *ConvergenceError) Error() string {
	if len(e.Last) == 1 {
		return fmt.Sprintf("failed to converge after %d iterations, value is %v", e.MaxIter, e.Last[0])
	}
	return fmt.Sprintf("failed to converge after %d iterations, value is %v", e.MaxIter, []float64(e.Last))
}

func (e *ConvergenceError) Unwrap() error {
	return ErrNoConvergence
}
