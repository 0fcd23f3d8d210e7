// Package discrete analyzes discrete maps x_{t+1} = f(x_t).
//
// It provides orbit generation ([Iterate], [IterateAhead]), Steffensen's
// accelerated fixed-point search ([FixedPoint], [FixedPointVec]), empirical
// two-sided stability classification ([IsStable], [IsStableAt]) and
// lag-matching oscillation detection ([IsOscillator]).
//
// The stability and oscillation routines are sampling heuristics, not proofs:
// they iterate finitely many orbits and compare final states against a
// tolerance. A transient longer than the iteration budget, or a tolerance
// mismatched to the map's contraction rate, can misclassify. See the caveats
// on the individual functions.
package discrete
