// Package dynamo provides core primitives for one-dimensional dynamical systems.
//
// The package defines the fundamental function and sequence types shared by the
// analysis packages:
//
//   - [Map]: discrete map x_{t+1} = f(x_t)
//   - [Deriv]: continuous derivative dx/dt = f(x, t)
//   - [Solver]: numerical stepping rule producing a (dx, dt) increment
//   - [Orbit]: time-ordered sequence of states
//
// # Example
//
//	f := maps.Logistic(2.5)
//	orbit, _ := discrete.Iterate(f, 0.0001, 20)
//	last := orbit.Last() // ~0.6
//
// Maps and derivatives are caller-supplied function values. Parameterized
// families close over their parameters at construction time, so every call in
// a chain sees the same fixed parameters.
//
// # Thread Safety
//
// All types are plain values and the analysis functions built on them are
// pure; concurrent use is safe as long as the caller-supplied functions are.
package dynamo
