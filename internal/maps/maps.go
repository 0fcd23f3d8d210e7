// Package maps catalogs classic one-parameter families of 1D discrete maps.
//
// Each constructor binds its parameter and returns a [dynamo.Map], so the
// parameter is fixed for every call in a chain. The registry exposes the
// families by name for the CLI and config layers.
package maps

import (
	"math"

	"github.com/san-kum/phaseline/internal/dynamo"
)

// Logistic returns the logistic map f(x) = r*x*(1-x).
func Logistic(r float64) dynamo.Map {
	return func(x float64) float64 {
		return r * x * (1 - x)
	}
}

// Tent returns the tent map f(x) = mu*min(x, 1-x).
func Tent(mu float64) dynamo.Map {
	return func(x float64) float64 {
		return mu * math.Min(x, 1-x)
	}
}

// Sine returns the sine map f(x) = r*sin(pi*x).
func Sine(r float64) dynamo.Map {
	return func(x float64) float64 {
		return r * math.Sin(math.Pi*x)
	}
}

// Cubic returns the cubic map f(x) = a*x^3 + (1-a)*x.
func Cubic(a float64) dynamo.Map {
	return func(x float64) float64 {
		return a*x*x*x + (1-a)*x
	}
}

// Ricker returns the Ricker map f(x) = x*exp(r*(1-x)), a common population
// model with the same fixed-point structure as the logistic family.
func Ricker(r float64) dynamo.Map {
	return func(x float64) float64 {
		return x * math.Exp(r*(1-x))
	}
}

// LogisticFamily exposes the logistic map with the parameter free, for
// bifurcation sweeps.
func LogisticFamily(r, x float64) float64 {
	return r * x * (1 - x)
}
