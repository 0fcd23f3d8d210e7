package analysis

import "strings"

// BifurcationPoint records the settled values of a map at one parameter
// value.
type BifurcationPoint struct {
	Param  float64
	Values []float64
}

// Bifurcation sweeps the family parameter from pmin to pmax in strides of dp
// and records the distinct values the orbit visits after a transient. The
// sweep restarts from x0 at every parameter value.
//
// Distinct values are found by quantizing to 1e-3, which is coarse enough to
// collapse a settled cycle to its period and fine enough to fill the chaotic
// bands.
func Bifurcation(family func(param, x float64) float64, pmin, pmax, dp, x0 float64, transient, keep int) []BifurcationPoint {
	if dp <= 0 || pmax < pmin {
		return nil
	}

	results := make([]BifurcationPoint, 0, int((pmax-pmin)/dp)+1)

	for p := pmin; p <= pmax; p += dp {
		x := x0
		for i := 0; i < transient; i++ {
			x = family(p, x)
		}

		values := make([]float64, 0, keep)
		seen := make(map[int]bool)
		for i := 0; i < keep; i++ {
			x = family(p, x)
			key := int(x * 1000)
			if !seen[key] {
				seen[key] = true
				values = append(values, x)
			}
		}

		results = append(results, BifurcationPoint{Param: p, Values: values})
	}

	return results
}

// BifurcationASCII renders a sweep as a width x height dot grid, parameter on
// the horizontal axis and state on the vertical.
func BifurcationASCII(data []BifurcationPoint, width, height int) string {
	if len(data) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	var minVal, maxVal float64
	foundFirst := false
	for _, p := range data {
		for _, v := range p.Values {
			if !foundFirst {
				minVal, maxVal = v, v
				foundFirst = true
				continue
			}
			if v < minVal {
				minVal = v
			}
			if v > maxVal {
				maxVal = v
			}
		}
	}
	if !foundFirst {
		return ""
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for i, p := range data {
		col := i * width / len(data)
		if col >= width {
			col = width - 1
		}
		for _, v := range p.Values {
			row := height - 1 - int((v-minVal)/(maxVal-minVal)*float64(height-1))
			if row >= 0 && row < height {
				canvas[row][col] = '.'
			}
		}
	}

	var b strings.Builder
	for _, row := range canvas {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}
