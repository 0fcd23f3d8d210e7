package discrete

import (
	"math"

	"github.com/san-kum/phaseline/internal/dynamo"
)

// IsOscillator reports whether the orbit seeded at x0 settles into a
// repeating cycle of length at most period, and the smallest such length.
//
// An orbit of maxIter steps is generated and only its trailing 2*period-1
// states are kept, enough to observe up to period repetitions after the
// transient. The first retained state is compared against the state lag steps
// later for lag = 1..period; the smallest lag within xtol wins. When no lag
// matches, the result is (false, 0).
//
// This is a heuristic lag-matching test, not a rigorous period-detection
// algorithm: it can under- or over-detect when xtol is loose or tight
// relative to the transient length. maxIter must be at least 2*period so the
// retained window covers every tested lag.
func IsOscillator(f dynamo.Map, x0 float64, period int, xtol float64, maxIter int) (bool, int, error) {
	if period < 1 {
		return false, 0, dynamo.ErrBadPeriod
	}
	if xtol <= 0 {
		return false, 0, dynamo.ErrBadTolerance
	}
	if maxIter < 2*period {
		return false, 0, dynamo.ErrBadIterations
	}

	orbit, err := Iterate(f, x0, maxIter)
	if err != nil {
		return false, 0, err
	}
	// The window must cover index period; 2*period-1 does except when
	// period == 1.
	window := 2*period - 1
	if window <= period {
		window = period + 1
	}
	tail := orbit.Tail(window)

	for lag := 1; lag <= period; lag++ {
		if math.Abs(tail[0]-tail[lag]) < xtol {
			return true, lag, nil
		}
	}

	return false, 0, nil
}
