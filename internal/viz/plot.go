// Package viz renders orbits and analysis reports for the terminal.
package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/phaseline/internal/dynamo"
)

// PlotOrbit renders an orbit as an ASCII line chart.
func PlotOrbit(orbit dynamo.Orbit, caption string, width, height int) string {
	return asciigraph.Plot(orbit,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
