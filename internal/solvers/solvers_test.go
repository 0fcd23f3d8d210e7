package solvers

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/phaseline/internal/dynamo"
)

func TestEuler_Step(t *testing.T) {
	solve, err := Euler(0.1)
	if err != nil {
		t.Fatal(err)
	}

	grow := func(x, tm float64) float64 { return x }
	dx, dt := solve(grow, 1.0, 0)

	if dx != 0.1 {
		t.Errorf("dx = %v, want 0.1", dx)
	}
	if dt != 0.1 {
		t.Errorf("dt = %v, want 0.1", dt)
	}
}

func TestRK4_Accuracy(t *testing.T) {
	solve, err := RK4(0.1)
	if err != nil {
		t.Fatal(err)
	}

	// One RK4 step on dx/dt = x from 1 approximates e^0.1 - 1.
	grow := func(x, tm float64) float64 { return x }
	dx, dt := solve(grow, 1.0, 0)

	want := math.Exp(0.1) - 1
	if math.Abs(dx-want) > 1e-6 {
		t.Errorf("dx = %v, want %v", dx, want)
	}
	if dt != 0.1 {
		t.Errorf("dt = %v, want 0.1", dt)
	}
}

func TestMidpoint_BetterThanEuler(t *testing.T) {
	euler, err := Euler(0.1)
	if err != nil {
		t.Fatal(err)
	}
	mid, err := Midpoint(0.1)
	if err != nil {
		t.Fatal(err)
	}

	grow := func(x, tm float64) float64 { return x }
	want := math.Exp(0.1) - 1

	edx, _ := euler(grow, 1.0, 0)
	mdx, _ := mid(grow, 1.0, 0)

	if math.Abs(mdx-want) >= math.Abs(edx-want) {
		t.Errorf("midpoint error %v should beat euler error %v",
			math.Abs(mdx-want), math.Abs(edx-want))
	}
}

func TestBadStep(t *testing.T) {
	for _, h := range []float64{0, -0.1} {
		if _, err := Euler(h); !errors.Is(err, dynamo.ErrBadStep) {
			t.Errorf("Euler(%v) error = %v, want ErrBadStep", h, err)
		}
		if _, err := Midpoint(h); !errors.Is(err, dynamo.ErrBadStep) {
			t.Errorf("Midpoint(%v) error = %v, want ErrBadStep", h, err)
		}
		if _, err := RK4(h); !errors.Is(err, dynamo.ErrBadStep) {
			t.Errorf("RK4(%v) error = %v, want ErrBadStep", h, err)
		}
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"euler", "midpoint", "rk4"} {
		if _, err := ByName(name, 0.01); err != nil {
			t.Errorf("ByName(%q): %v", name, err)
		}
	}
	if _, err := ByName("rk45", 0.01); err == nil {
		t.Error("ByName should reject unknown solvers")
	}
}
