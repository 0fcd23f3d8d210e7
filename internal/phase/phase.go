// Package phase renders compact textual phase-line diagrams from fixed
// points and their stability classifications.
//
// A diagram is two fixed-width lines: a marker line with '*' at each fixed
// point, '-' elsewhere and '<'/'>' arrows showing attraction or repulsion on
// each side, plus a parallel annotation line carrying the fixed-point values.
package phase

import (
	"errors"
	"strconv"
	"strings"

	"github.com/san-kum/phaseline/internal/dynamo"
)

// Renderer geometry errors.
var (
	ErrBadSize        = errors.New("phaseline: size must be greater than 20")
	ErrOffsetLow      = errors.New("phaseline: offset must be at least 10 percent of size")
	ErrOffsetHigh     = errors.New("phaseline: offset must be at most 25 percent of size")
	ErrOffsetMin      = errors.New("phaseline: offset must be at least 1")
	ErrLengthMismatch = errors.New("phaseline: fixed points and stability tuples must match in length")
	ErrTooManyPoints  = errors.New("phaseline: too many fixed points for the given size and offset")
)

// NoFixedPoints is the diagram produced for an empty fixed-point set.
const NoFixedPoints = "no fixed points"

// Diagram renders the phase line for the given fixed points and their
// stability tuples. Fixed points are spread between offset and size-offset;
// arrows sit offset/2 columns on either side of each point. A stable side
// gets an arrow pointing at the fixed point; an unstable side gets an
// outward arrow, suppressed between two points that would repel into each
// other's basin.
func Diagram(points []float64, stability []dynamo.Stability, size, offset int) (string, error) {
	if len(points) != len(stability) {
		return "", ErrLengthMismatch
	}
	if len(points) == 0 {
		return NoFixedPoints, nil
	}
	steps, err := layout(len(points), size, offset)
	if err != nil {
		return "", err
	}

	line := fill(size, '-')
	annote := fill(size, ' ')

	for i, s := range steps {
		line[s] = '*'
		splice(annote, s, strconv.FormatFloat(points[i], 'g', -1, 64))
	}

	for i, st := range stability {
		s := steps[i]
		downside := s - offset/2
		upside := s + offset/2

		// Plus side.
		if st.Plus {
			line[downside] = '>'
		} else if i == 0 || !stability[i-1].Minus {
			line[downside] = '<'
		}

		// Minus side.
		if st.Minus {
			line[upside] = '<'
		} else if i == len(stability)-1 {
			line[upside] = '>'
		}
	}

	return string(line) + "\n" + strings.TrimRight(string(annote), " "), nil
}

// Points renders the marker and annotation lines without stability arrows.
func Points(points []float64, size, offset int) (string, error) {
	if len(points) == 0 {
		return NoFixedPoints, nil
	}
	steps, err := layout(len(points), size, offset)
	if err != nil {
		return "", err
	}

	line := fill(size, '-')
	annote := fill(size, ' ')

	for i, s := range steps {
		line[s] = '*'
		splice(annote, s, strconv.FormatFloat(points[i], 'g', -1, 64))
	}

	return string(line) + "\n" + strings.TrimRight(string(annote), " "), nil
}

// layout validates the geometry and returns the marker column for each of n
// fixed points: offset, offset+stride, ... with integer stride
// (size-2*offset)/n.
func layout(n, size, offset int) ([]int, error) {
	if size <= 20 {
		return nil, ErrBadSize
	}
	if offset < 1 {
		return nil, ErrOffsetMin
	}
	if float64(offset)/float64(size) < 0.1 {
		return nil, ErrOffsetLow
	}
	if float64(offset)/float64(size) > 0.25 {
		return nil, ErrOffsetHigh
	}

	stride := (size - 2*offset) / n
	if stride < 1 {
		return nil, ErrTooManyPoints
	}

	steps := make([]int, n)
	for i := range steps {
		steps[i] = offset + i*stride
	}
	return steps, nil
}

func fill(n int, c byte) []byte {
	row := make([]byte, n)
	for i := range row {
		row[i] = c
	}
	return row
}

// splice copies s into row starting at col, truncating at the row edge.
func splice(row []byte, col int, s string) {
	for i := 0; i < len(s) && col+i < len(row); i++ {
		row[col+i] = s[i]
	}
}
