package maps

import (
	"fmt"
	"sort"

	"github.com/san-kum/phaseline/internal/dynamo"
)

// Entry describes a registered map family.
type Entry struct {
	Name         string
	Desc         string
	DefaultParam float64
	DefaultSeed  float64
	New          func(param float64) dynamo.Map
	// Family exposes the map with the parameter free, for sweeps. Nil when
	// the family has no meaningful bifurcation parameter.
	Family func(param, x float64) float64
}

var registry = map[string]Entry{
	"logistic": {
		Name:         "logistic",
		Desc:         "logistic map r*x*(1-x)",
		DefaultParam: 2.5,
		DefaultSeed:  0.1,
		New:          Logistic,
		Family:       LogisticFamily,
	},
	"tent": {
		Name:         "tent",
		Desc:         "tent map mu*min(x, 1-x)",
		DefaultParam: 1.5,
		DefaultSeed:  0.1,
		New:          Tent,
		Family:       func(mu, x float64) float64 { return Tent(mu)(x) },
	},
	"sine": {
		Name:         "sine",
		Desc:         "sine map r*sin(pi*x)",
		DefaultParam: 0.7,
		DefaultSeed:  0.1,
		New:          Sine,
		Family:       func(r, x float64) float64 { return Sine(r)(x) },
	},
	"cubic": {
		Name:         "cubic",
		Desc:         "cubic map a*x^3 + (1-a)*x",
		DefaultParam: -2.0,
		DefaultSeed:  0.5,
		New:          Cubic,
	},
	"ricker": {
		Name:         "ricker",
		Desc:         "Ricker map x*exp(r*(1-x))",
		DefaultParam: 1.5,
		DefaultSeed:  0.1,
		New:          Ricker,
		Family:       func(r, x float64) float64 { return Ricker(r)(x) },
	},
}

// Lookup returns the registry entry for name.
func Lookup(name string) (Entry, error) {
	e, ok := registry[name]
	if !ok {
		return Entry{}, fmt.Errorf("unknown map: %s (available: %v)", name, Names())
	}
	return e, nil
}

// Names lists the registered family names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
