package discrete

import (
	"math"

	"github.com/san-kum/phaseline/internal/dynamo"
)

// DefaultStabilityTol is the looser tolerance used by the empirical
// stability and oscillation tests.
const DefaultStabilityTol = 1e-4

// IsStable classifies the local stability of the fixed point xfix by
// sampling orbits seeded on both sides of it.
//
// Perturbation magnitudes are sampled from 0.01 up to (but excluding) ep in
// strides of ep/10. For each magnitude an orbit of maxIter steps is run from
// xfix+mag and from xfix-mag, keeping only the final state. A side is stable
// only when every sampled final state on that side lies within xtol of xfix.
//
// This is an empirical approximation of local asymptotic stability, not an
// analytic derivative test, and it is deliberately conservative: one
// non-converging sample fails the whole side. The 0.01 lower bound is fixed;
// for ep <= 0.01 the sample range is empty and both sides classify stable
// vacuously.
func IsStable(f dynamo.Map, xfix, ep, xtol float64, maxIter int) (dynamo.Stability, error) {
	if ep <= 0 {
		return dynamo.Stability{}, dynamo.ErrBadRadius
	}
	if xtol <= 0 {
		return dynamo.Stability{}, dynamo.ErrBadTolerance
	}
	if maxIter < 1 {
		return dynamo.Stability{}, dynamo.ErrBadIterations
	}

	st := dynamo.Stability{Plus: true, Minus: true}
	for mag := 0.01; mag < ep; mag += ep / 10 {
		up, err := Iterate(f, xfix+mag, maxIter)
		if err != nil {
			return dynamo.Stability{}, err
		}
		down, err := Iterate(f, xfix-mag, maxIter)
		if err != nil {
			return dynamo.Stability{}, err
		}

		if math.Abs(up.Last()-xfix) >= xtol {
			st.Plus = false
		}
		if math.Abs(down.Last()-xfix) >= xtol {
			st.Minus = false
		}
	}

	return st, nil
}

// IsStableAt is the cheap single-perturbation variant of IsStable: one orbit
// from xfix+dx and one from xfix-dx, each judged by the absolute difference
// between its final state and xfix.
func IsStableAt(f dynamo.Map, xfix, dx, xtol float64, maxIter int) (dynamo.Stability, error) {
	if dx <= 0 {
		return dynamo.Stability{}, dynamo.ErrBadRadius
	}
	if xtol <= 0 {
		return dynamo.Stability{}, dynamo.ErrBadTolerance
	}
	if maxIter < 1 {
		return dynamo.Stability{}, dynamo.ErrBadIterations
	}

	up, err := Iterate(f, xfix+dx, maxIter)
	if err != nil {
		return dynamo.Stability{}, err
	}
	down, err := Iterate(f, xfix-dx, maxIter)
	if err != nil {
		return dynamo.Stability{}, err
	}

	return dynamo.Stability{
		Plus:  math.Abs(up.Last()-xfix) < xtol,
		Minus: math.Abs(down.Last()-xfix) < xtol,
	}, nil
}
