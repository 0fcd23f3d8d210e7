package continuous

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/phaseline/internal/dynamo"
	"github.com/san-kum/phaseline/internal/solvers"
)

func decay(x, t float64) float64 { return -x }

func TestIterate_EulerDecay(t *testing.T) {
	solve, err := solvers.Euler(0.01)
	if err != nil {
		t.Fatal(err)
	}

	orbit, elapsed, err := Iterate(decay, 1.0, 100, solve)
	if err != nil {
		t.Fatal(err)
	}

	if len(orbit) != 101 {
		t.Errorf("orbit length = %d, want 101", len(orbit))
	}
	if orbit[0] != 1.0 {
		t.Errorf("orbit[0] = %v, want seed", orbit[0])
	}
	if math.Abs(elapsed-1.0) > 1e-9 {
		t.Errorf("elapsed = %v, want 1.0", elapsed)
	}

	// Forward Euler on dx/dt = -x gives (1-h)^n exactly.
	want := math.Pow(0.99, 100)
	if math.Abs(orbit.Last()-want) > 1e-9 {
		t.Errorf("final state = %v, want %v", orbit.Last(), want)
	}
}

func TestIterate_RK4Decay(t *testing.T) {
	solve, err := solvers.RK4(0.01)
	if err != nil {
		t.Fatal(err)
	}

	orbit, _, err := Iterate(decay, 1.0, 100, solve)
	if err != nil {
		t.Fatal(err)
	}

	want := math.Exp(-1.0)
	if math.Abs(orbit.Last()-want) > 1e-8 {
		t.Errorf("final state = %v, want e^-1 = %v", orbit.Last(), want)
	}
}

func TestIterate_TimeDependentDerivative(t *testing.T) {
	// dx/dt = t integrated by Euler sums h*t over the grid.
	ramp := func(x, tm float64) float64 { return tm }

	solve, err := solvers.Euler(0.1)
	if err != nil {
		t.Fatal(err)
	}

	orbit, elapsed, err := Iterate(ramp, 0.0, 10, solve)
	if err != nil {
		t.Fatal(err)
	}

	// 0.1 * (0.0 + 0.1 + ... + 0.9) = 0.45
	if math.Abs(orbit.Last()-0.45) > 1e-9 {
		t.Errorf("final state = %v, want 0.45", orbit.Last())
	}
	if math.Abs(elapsed-1.0) > 1e-9 {
		t.Errorf("elapsed = %v, want 1.0", elapsed)
	}
}

func TestIterate_NoSolver(t *testing.T) {
	if _, _, err := Iterate(decay, 1.0, 10, nil); !errors.Is(err, dynamo.ErrNoSolver) {
		t.Errorf("error = %v, want ErrNoSolver", err)
	}
}

func TestIterate_BadSteps(t *testing.T) {
	solve, err := solvers.Euler(0.01)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := Iterate(decay, 1.0, 0, solve); !errors.Is(err, dynamo.ErrBadIterations) {
		t.Errorf("error = %v, want ErrBadIterations", err)
	}
}
