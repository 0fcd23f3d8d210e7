package maps

import (
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/phaseline/internal/dynamo"
)

// Decay returns the exponential decay derivative dx/dt = -k*x.
func Decay(k float64) dynamo.Deriv {
	return func(x, t float64) float64 {
		return -k * x
	}
}

// LogisticGrowth returns the continuous logistic growth derivative
// dx/dt = r*x*(1-x).
func LogisticGrowth(r float64) dynamo.Deriv {
	return func(x, t float64) float64 {
		return r * x * (1 - x)
	}
}

// Forced returns the driven relaxation derivative dx/dt = a*sin(t) - x,
// a time-dependent system.
func Forced(a float64) dynamo.Deriv {
	return func(x, t float64) float64 {
		return a*math.Sin(t) - x
	}
}

// DerivEntry describes a registered continuous derivative family.
type DerivEntry struct {
	Name         string
	Desc         string
	DefaultParam float64
	DefaultSeed  float64
	New          func(param float64) dynamo.Deriv
}

var derivRegistry = map[string]DerivEntry{
	"decay": {
		Name:         "decay",
		Desc:         "exponential decay -k*x",
		DefaultParam: 1.0,
		DefaultSeed:  1.0,
		New:          Decay,
	},
	"growth": {
		Name:         "growth",
		Desc:         "logistic growth r*x*(1-x)",
		DefaultParam: 1.0,
		DefaultSeed:  0.1,
		New:          LogisticGrowth,
	},
	"forced": {
		Name:         "forced",
		Desc:         "driven relaxation a*sin(t) - x",
		DefaultParam: 1.0,
		DefaultSeed:  0.0,
		New:          Forced,
	},
}

// DerivLookup returns the derivative registry entry for name.
func DerivLookup(name string) (DerivEntry, error) {
	e, ok := derivRegistry[name]
	if !ok {
		return DerivEntry{}, fmt.Errorf("unknown derivative: %s (available: %v)", name, DerivNames())
	}
	return e, nil
}

// DerivNames lists the registered derivative family names, sorted.
func DerivNames() []string {
	names := make([]string, 0, len(derivRegistry))
	for name := range derivRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
