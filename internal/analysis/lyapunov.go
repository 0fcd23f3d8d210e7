package analysis

import (
	"math"

	"github.com/san-kum/phaseline/internal/dynamo"
)

// Lyapunov estimates the largest Lyapunov exponent of a 1D map by iterating
// two orbits separated by d0 = 1e-9 and averaging the per-step log stretch,
// renormalizing the separation back to d0 after every step so it never
// saturates. A positive value indicates chaos, a negative one a stable
// attractor.
//
// transient steps are discarded before accumulation begins; n steps are
// accumulated. Steps where the orbits coincide exactly contribute nothing.
func Lyapunov(f dynamo.Map, x0 float64, transient, n int) float64 {
	const d0 = 1e-9

	x := x0
	for i := 0; i < transient; i++ {
		x = f(x)
	}
	xp := x + d0

	sumLog := 0.0
	count := 0

	for i := 0; i < n; i++ {
		x = f(x)
		xp = f(xp)

		sep := math.Abs(xp - x)
		if sep > 0 {
			sumLog += math.Log(sep / d0)
			count++
		}

		// Renormalize so the separation stays infinitesimal.
		if xp > x {
			xp = x + d0
		} else {
			xp = x - d0
		}
	}

	if count == 0 {
		return 0
	}
	return sumLog / float64(count)
}
