package discrete

import "github.com/san-kum/phaseline/internal/dynamo"

// Iterate applies f repeatedly starting from x0 and returns the orbit
// x0, f(x0), f(f(x0)), ... of length exactly steps.
func Iterate(f dynamo.Map, x0 float64, steps int) (dynamo.Orbit, error) {
	if steps < 1 {
		return nil, dynamo.ErrBadIterations
	}

	orbit := make(dynamo.Orbit, 0, steps)
	orbit = append(orbit, x0)

	for t := 1; t < steps; t++ {
		orbit = append(orbit, f(orbit[t-1]))
	}

	return orbit, nil
}

// IterateAhead is the lookahead variant of Iterate: the orbit is seeded with
// x0 followed by f(x0), so the second element is already advanced one step.
// The result has length steps+1. Callers that slice the orbit tail after a
// known number of advances (the stability classifiers do) need this mode.
func IterateAhead(f dynamo.Map, x0 float64, steps int) (dynamo.Orbit, error) {
	if steps < 1 {
		return nil, dynamo.ErrBadIterations
	}

	orbit := make(dynamo.Orbit, 0, steps+1)
	orbit = append(orbit, x0, f(x0))

	for t := 2; t <= steps; t++ {
		orbit = append(orbit, f(orbit[t-1]))
	}

	return orbit, nil
}
