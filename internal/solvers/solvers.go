// Package solvers provides stock fixed-step solvers satisfying the
// [dynamo.Solver] increment contract: given a derivative, the current state
// and time, return the state change dx and the elapsed time dt for one step.
package solvers

import (
	"fmt"

	"github.com/san-kum/phaseline/internal/dynamo"
)

// Euler returns a forward-Euler solver with fixed step h:
// dx = h * f(x, t).
func Euler(h float64) (dynamo.Solver, error) {
	if h <= 0 {
		return nil, dynamo.ErrBadStep
	}
	return func(d dynamo.Deriv, x, t float64) (float64, float64) {
		return h * d(x, t), h
	}, nil
}

// Midpoint returns a second-order midpoint (RK2) solver with fixed step h.
func Midpoint(h float64) (dynamo.Solver, error) {
	if h <= 0 {
		return nil, dynamo.ErrBadStep
	}
	return func(d dynamo.Deriv, x, t float64) (float64, float64) {
		k1 := d(x, t)
		k2 := d(x+0.5*h*k1, t+0.5*h)
		return h * k2, h
	}, nil
}

// RK4 returns a classic fourth-order Runge-Kutta solver with fixed step h.
func RK4(h float64) (dynamo.Solver, error) {
	if h <= 0 {
		return nil, dynamo.ErrBadStep
	}
	return func(d dynamo.Deriv, x, t float64) (float64, float64) {
		k1 := d(x, t)
		k2 := d(x+0.5*h*k1, t+0.5*h)
		k3 := d(x+0.5*h*k2, t+0.5*h)
		k4 := d(x+h*k3, t+h)
		return h / 6.0 * (k1 + 2*k2 + 2*k3 + k4), h
	}, nil
}

// ByName resolves a solver by its CLI/config name.
func ByName(name string, h float64) (dynamo.Solver, error) {
	switch name {
	case "euler":
		return Euler(h)
	case "midpoint":
		return Midpoint(h)
	case "rk4":
		return RK4(h)
	default:
		return nil, fmt.Errorf("unknown solver: %s (available: euler, midpoint, rk4)", name)
	}
}
