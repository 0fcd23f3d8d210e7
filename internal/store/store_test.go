package store

import (
	"math"
	"testing"

	"github.com/san-kum/phaseline/internal/dynamo"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	orbit := dynamo.Orbit{0.1, 0.225, 0.4359375, 0.6}
	runID, err := st.Save(RunMetadata{
		Map:   "logistic",
		Param: 2.5,
		X0:    0.1,
		Steps: len(orbit),
		Results: map[string]float64{
			"final_x": orbit.Last(),
		},
	}, orbit)
	if err != nil {
		t.Fatal(err)
	}
	if runID == "" {
		t.Fatal("expected a run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatal(err)
	}
	if meta.Map != "logistic" || meta.Param != 2.5 || meta.Steps != 4 {
		t.Errorf("metadata mismatch: %+v", meta)
	}
	if meta.ID != runID {
		t.Errorf("metadata id = %s, want %s", meta.ID, runID)
	}

	got, err := st.LoadOrbit(runID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(orbit) {
		t.Fatalf("orbit length = %d, want %d", len(got), len(orbit))
	}
	for i := range orbit {
		if math.Abs(got[i]-orbit[i]) > 1e-15 {
			t.Errorf("orbit[%d] = %v, want %v", i, got[i], orbit[i])
		}
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	if _, err := st.Save(RunMetadata{Map: "logistic"}, dynamo.Orbit{0.1}); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Save(RunMetadata{Map: "tent"}, dynamo.Orbit{0.2}); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Timestamp.Before(runs[1].Timestamp) {
		t.Error("runs should list newest first")
	}
}

func TestList_EmptyDir(t *testing.T) {
	st := New(t.TempDir())
	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestLoad_Missing(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("absent_123"); err == nil {
		t.Error("expected error for missing run")
	}
}
