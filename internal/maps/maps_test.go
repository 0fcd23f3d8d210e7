package maps

import (
	"math"
	"testing"
)

func TestLogistic(t *testing.T) {
	f := Logistic(2.5)

	if got := f(0.0); got != 0.0 {
		t.Errorf("f(0) = %v, want 0", got)
	}
	if got := f(0.6); math.Abs(got-0.6) > 1e-12 {
		t.Errorf("f(0.6) = %v, want 0.6 (fixed point)", got)
	}
	if got := f(0.2); math.Abs(got-0.4) > 1e-12 {
		t.Errorf("f(0.2) = %v, want 0.4", got)
	}
}

func TestTent(t *testing.T) {
	f := Tent(1.5)

	if got := f(0.25); math.Abs(got-0.375) > 1e-12 {
		t.Errorf("f(0.25) = %v, want 0.375", got)
	}
	if got := f(0.75); math.Abs(got-0.375) > 1e-12 {
		t.Errorf("f(0.75) = %v, want 0.375", got)
	}
}

func TestRicker_FixedPoint(t *testing.T) {
	// x=1 is a fixed point of the Ricker map for every r.
	for _, r := range []float64{0.5, 1.5, 3.0} {
		if got := Ricker(r)(1.0); got != 1.0 {
			t.Errorf("Ricker(%v)(1) = %v, want 1", r, got)
		}
	}
}

func TestLookup(t *testing.T) {
	e, err := Lookup("logistic")
	if err != nil {
		t.Fatal(err)
	}
	if e.Name != "logistic" || e.New == nil || e.Family == nil {
		t.Errorf("incomplete entry: %+v", e)
	}

	f := e.New(2.5)
	if got, want := f(0.2), e.Family(2.5, 0.2); got != want {
		t.Errorf("New and Family disagree: %v vs %v", got, want)
	}

	if _, err := Lookup("henon"); err == nil {
		t.Error("Lookup should reject unknown maps")
	}
}

func TestNames_Sorted(t *testing.T) {
	names := Names()
	if len(names) < 4 {
		t.Fatalf("expected several registered maps, got %v", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted: %v", names)
		}
	}
}

func TestDerivLookup(t *testing.T) {
	e, err := DerivLookup("decay")
	if err != nil {
		t.Fatal(err)
	}

	d := e.New(2.0)
	if got := d(3.0, 0); got != -6.0 {
		t.Errorf("decay deriv = %v, want -6", got)
	}

	if _, err := DerivLookup("lorenz"); err == nil {
		t.Error("DerivLookup should reject unknown derivatives")
	}
}

func TestForced_TimeDependent(t *testing.T) {
	d := Forced(2.0)

	at0 := d(0.5, 0)
	atPi2 := d(0.5, math.Pi/2)

	if at0 != -0.5 {
		t.Errorf("d(0.5, 0) = %v, want -0.5", at0)
	}
	if math.Abs(atPi2-1.5) > 1e-12 {
		t.Errorf("d(0.5, pi/2) = %v, want 1.5", atPi2)
	}
}
