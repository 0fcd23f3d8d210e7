// Package continuous generates orbits for continuous systems dx/dt = f(x, t)
// advanced by a caller-supplied solver.
//
// The package is step-method-agnostic: a solver is any function satisfying
// the [dynamo.Solver] increment contract, returning the state change dx and
// elapsed time dt for one step. See the solvers package for stock steppers.
package continuous

import "github.com/san-kum/phaseline/internal/dynamo"

// Iterate advances x0 for steps solver increments and returns the orbit
// (length steps+1 including the seed) together with the total elapsed time.
//
// Time starts at zero. Each step calls solve(d, x, t) for an increment
// (dx, dt), appends x+dx to the orbit and advances t by dt. A nil solver is
// a caller error.
func Iterate(d dynamo.Deriv, x0 float64, steps int, solve dynamo.Solver) (dynamo.Orbit, float64, error) {
	if solve == nil {
		return nil, 0, dynamo.ErrNoSolver
	}
	if steps < 1 {
		return nil, 0, dynamo.ErrBadIterations
	}

	t := 0.0
	orbit := make(dynamo.Orbit, 0, steps+1)
	orbit = append(orbit, x0)

	for i := 0; i < steps; i++ {
		dx, dt := solve(d, orbit[i], t)
		orbit = append(orbit, orbit[i]+dx)
		t += dt
	}

	return orbit, t, nil
}
