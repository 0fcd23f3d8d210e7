package phase

import (
	"errors"
	"strings"
	"testing"

	"github.com/san-kum/phaseline/internal/dynamo"
)

func TestDiagram_SingleStablePoint(t *testing.T) {
	out, err := Diagram([]float64{0.6}, []dynamo.Stability{{Plus: true, Minus: true}}, 60, 12)
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected marker and annotation lines, got %d", len(lines))
	}

	line := lines[0]
	if len(line) != 60 {
		t.Errorf("marker line length = %d, want 60", len(line))
	}
	if line[12] != '*' {
		t.Errorf("marker at column 12 = %q, want '*'", line[12])
	}
	if strings.Count(line, "*") != 1 {
		t.Errorf("marker line has %d stars, want 1: %q", strings.Count(line, "*"), line)
	}

	// Both sides stable: arrows at offset +- offset/2 point at the fixed
	// point.
	if line[6] != '>' {
		t.Errorf("column 6 = %q, want '>'", line[6])
	}
	if line[18] != '<' {
		t.Errorf("column 18 = %q, want '<'", line[18])
	}

	if !strings.Contains(lines[1], "0.6") {
		t.Errorf("annotation %q should carry the fixed-point value", lines[1])
	}
}

func TestDiagram_SingleUnstablePoint(t *testing.T) {
	out, err := Diagram([]float64{0.0}, []dynamo.Stability{{}}, 60, 12)
	if err != nil {
		t.Fatal(err)
	}

	line := strings.Split(out, "\n")[0]
	if line[6] != '<' {
		t.Errorf("column 6 = %q, want '<' (repelled downward)", line[6])
	}
	if line[18] != '>' {
		t.Errorf("column 18 = %q, want '>' (repelled upward)", line[18])
	}
}

func TestDiagram_TwoPoints(t *testing.T) {
	points := []float64{0.0, 0.6}
	stability := []dynamo.Stability{
		{Plus: false, Minus: false},
		{Plus: true, Minus: true},
	}

	out, err := Diagram(points, stability, 60, 12)
	if err != nil {
		t.Fatal(err)
	}

	line := strings.Split(out, "\n")[0]

	// Stride (60-24)/2 = 18: markers at 12 and 30.
	if line[12] != '*' || line[30] != '*' {
		t.Errorf("markers misplaced: %q", line)
	}
	// Repeller at 12: outward arrow below, none above (its upper side faces
	// the attractor's basin).
	if line[6] != '<' {
		t.Errorf("column 6 = %q, want '<'", line[6])
	}
	if line[18] != '-' {
		t.Errorf("column 18 = %q, want '-'", line[18])
	}
	// Attractor at 30: inward arrows both sides.
	if line[24] != '>' || line[36] != '<' {
		t.Errorf("attractor arrows misplaced: %q", line)
	}
}

func TestDiagram_NoPoints(t *testing.T) {
	out, err := Diagram(nil, nil, 60, 12)
	if err != nil {
		t.Fatal(err)
	}
	if out != NoFixedPoints {
		t.Errorf("output = %q, want %q", out, NoFixedPoints)
	}
}

func TestDiagram_Geometry(t *testing.T) {
	one := []float64{0.5}
	st := []dynamo.Stability{{}}

	tests := []struct {
		name   string
		size   int
		offset int
		want   error
	}{
		{"size too small", 20, 4, ErrBadSize},
		{"offset below 10 percent", 60, 5, ErrOffsetLow},
		{"offset above 25 percent", 60, 16, ErrOffsetHigh},
		{"offset below one", 30, 0, ErrOffsetMin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Diagram(one, st, tt.size, tt.offset); !errors.Is(err, tt.want) {
				t.Errorf("Diagram(size=%d, offset=%d) error = %v, want %v",
					tt.size, tt.offset, err, tt.want)
			}
		})
	}
}

func TestDiagram_LengthMismatch(t *testing.T) {
	_, err := Diagram([]float64{0.5}, nil, 60, 12)
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("error = %v, want ErrLengthMismatch", err)
	}
}

func TestDiagram_TooManyPoints(t *testing.T) {
	points := make([]float64, 40)
	stability := make([]dynamo.Stability, 40)
	if _, err := Diagram(points, stability, 60, 12); !errors.Is(err, ErrTooManyPoints) {
		t.Errorf("error = %v, want ErrTooManyPoints", err)
	}
}

func TestPoints(t *testing.T) {
	out, err := Points([]float64{0.25, 0.75}, 60, 12)
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(out, "\n")
	if strings.Count(lines[0], "*") != 2 {
		t.Errorf("marker line should carry two stars: %q", lines[0])
	}
	if strings.ContainsAny(lines[0], "<>") {
		t.Errorf("marker-only diagram should have no arrows: %q", lines[0])
	}
}
