package discrete

import (
	"math"

	"github.com/san-kum/phaseline/internal/dynamo"
)

// Defaults for the fixed-point search, shared by the CLI and config layers.
const (
	DefaultXTol    = 1e-8
	DefaultMaxIter = 500
)

// FixedPoint finds x* with f(x*) == x* using Steffensen's method with
// Aitken's Del^2 convergence acceleration (Burden & Faires, "Numerical
// Analysis", 5th ed., pg. 80).
//
// Each round evaluates p1 = f(p0) and p2 = f(p1) and extrapolates
// p = p0 - (p1-p0)^2 / (p2 - 2*p1 + p0). A zero denominator means the
// sequence has stabilized (or the iteration is degenerate) and p2 is
// returned as converged. Convergence is judged on the relative error
// (p-p0)/p0, or on p itself when p0 == 0.
//
// When maxIter rounds pass without meeting xtol, a *dynamo.ConvergenceError
// carrying the budget and the last estimate is returned; an unconverged value
// is never returned silently.
func FixedPoint(f dynamo.Map, x0, xtol float64, maxIter int) (float64, error) {
	if xtol <= 0 {
		return 0, dynamo.ErrBadTolerance
	}
	if maxIter < 1 {
		return 0, dynamo.ErrBadIterations
	}

	p0 := x0
	var p float64
	for i := 0; i < maxIter; i++ {
		p1 := f(p0)
		p2 := f(p1)
		d := p2 - 2.0*p1 + p0
		if d == 0.0 {
			return p2, nil
		}
		p = p0 - (p1-p0)*(p1-p0)/d

		relerr := p
		if p0 != 0 {
			relerr = (p - p0) / p0
		}
		if math.Abs(relerr) < xtol {
			return p, nil
		}
		p0 = p
	}

	return 0, &dynamo.ConvergenceError{MaxIter: maxIter, Last: dynamo.Vec{p}}
}

// FixedPointVec is the element-wise counterpart of FixedPoint for
// vector-valued seeds. Every operation is applied per component; a zero
// Aitken denominator selects p2 for that component only. The search returns
// only once every component meets xtol in the same round.
func FixedPointVec(f dynamo.VecMap, x0 dynamo.Vec, xtol float64, maxIter int) (dynamo.Vec, error) {
	if xtol <= 0 {
		return nil, dynamo.ErrBadTolerance
	}
	if maxIter < 1 {
		return nil, dynamo.ErrBadIterations
	}

	p0 := x0.Clone()
	p := make(dynamo.Vec, len(x0))
	for i := 0; i < maxIter; i++ {
		p1 := f(p0)
		p2 := f(p1)

		done := true
		for j := range p0 {
			d := p2[j] - 2.0*p1[j] + p0[j]
			if d == 0.0 {
				p[j] = p2[j]
			} else {
				p[j] = p0[j] - (p1[j]-p0[j])*(p1[j]-p0[j])/d
			}

			relerr := p[j]
			if p0[j] != 0 {
				relerr = (p[j] - p0[j]) / p0[j]
			}
			if math.Abs(relerr) >= xtol {
				done = false
			}
		}
		if done {
			return p.Clone(), nil
		}
		copy(p0, p)
	}

	return nil, &dynamo.ConvergenceError{MaxIter: maxIter, Last: p.Clone()}
}
