// Package analysis provides parameter-sweep and chaos characterization tools
// for 1D discrete maps.
//
//   - [Bifurcation]: sweep a map family's parameter and record settled values
//   - [BifurcationASCII]: dot-grid plot of a sweep
//   - [Lyapunov]: largest Lyapunov exponent via two-orbit separation
//
// A positive Lyapunov exponent indicates chaotic dynamics:
//
//	lambda := analysis.Lyapunov(maps.Logistic(4.0), 0.1, 200, 1000)
//	if lambda > 0 {
//	    // orbit is chaotic
//	}
package analysis
