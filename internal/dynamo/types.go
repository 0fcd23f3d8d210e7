package dynamo

import "math"

// Map advances a discrete system one step: x_{t+1} = f(x_t).
// Parameterized map families close over their parameters, e.g.
// maps.Logistic(r) returns a Map with r already bound.
type Map func(x float64) float64

// Deriv evaluates dx/dt at state x and time t. Autonomous systems are free to
// ignore t; it is always supplied.
type Deriv func(x, t float64) float64

// VecMap is the element-wise counterpart of Map used by the vector
// fixed-point search. It must return a vector of the same length.
type VecMap func(x Vec) Vec

// Solver produces a single integration increment for a continuous system:
// the state change dx and the elapsed time dt for one step. Solver internals
// (Euler, midpoint, RK4, ...) are opaque to the orbit generator.
type Solver func(d Deriv, x, t float64) (dx, dt float64)

// Orbit is a time-ordered sequence of scalar states. Insertion order is time
// order. An orbit is immutable once produced; callers own the slice.
type Orbit []float64

// Last returns the final state of the orbit.
func (o Orbit) Last() float64 {
	return o[len(o)-1]
}

// Tail returns the trailing n states, or the whole orbit when n exceeds its
// length.
func (o Orbit) Tail(n int) Orbit {
	if n >= len(o) {
		return o
	}
	return o[len(o)-n:]
}

// IsValid reports whether the orbit contains no NaN or Inf states.
func (o Orbit) IsValid() bool {
	for _, v := range o {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the orbit.
func (o Orbit) Clone() Orbit {
	c := make(Orbit, len(o))
	copy(c, o)
	return c
}

// Vec is an element-wise numeric vector used by the generic fixed-point path.
type Vec []float64

// Clone returns an independent copy of the vector.
func (v Vec) Clone() Vec {
	c := make(Vec, len(v))
	copy(c, v)
	return c
}

// Stability is the two-sided local stability classification of a fixed point:
// whether nearby orbits converge back to it from above (Plus) and from below
// (Minus).
type Stability struct {
	Plus  bool
	Minus bool
}
