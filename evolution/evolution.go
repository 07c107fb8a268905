// Package evolution - construction and validation of the simulation grid.
//
// This file declares the Description value, its eager-validating constructor
// New, and the read-only accessors over the derived per-step structures.
//
// Design principles:
//   - Deterministic, side-effect free construction.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - All inputs are copied; a Description never aliases caller memory.
package evolution

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Description captures the time discretization of one market-model simulation:
// the rate times T_0 < T_1 < ... < T_n whose spans [T_i, T_i+1) carry the n
// forward rates, the evolution times at which the whole rate vector is
// advanced jointly, and the derived per-step structures that drift and
// covariance computations consume on every path.
//
// A Description is immutable after New returns. Accessors expose internal
// slices without copying; callers must treat the returned values as read-only.
type Description struct {
	rateTimes      []float64   // n+1 entries, strictly increasing, rateTimes[0] >= 0
	evolutionTimes []float64   // m entries, strictly increasing, capped by rateTimes[n]
	relevanceRates []RateRange // m entries, half-open rate scope per step
	rateTenors     []float64   // n entries, rateTimes[i+1]-rateTimes[i]
	effStopTime    *mat.Dense  // m x n, min(evolutionTimes[j], rateTimes[i])
	firstAliveRate []int       // m entries, monotone non-decreasing, values in [0..n]
}

// New builds a Description from the rate-time grid and validates every input
// eagerly, so that all later accessors and measure derivations are total.
//
// Contract:
//   - rateTimes needs at least two entries, rateTimes[0] >= 0, strictly increasing.
//   - WithEvolutionTimes, if given, must be strictly increasing and must not
//     extend past the last rate time. Omitted, it defaults to every rate time
//     except the last: the grid that fixes each rate exactly once.
//   - WithRelevanceRates, if given, must carry one range per evolution step.
//
// Validation order is fixed: rate times first, then evolution times, then
// relevance ranges; the first violation wins.
//
// Complexity: O(m*n) time and memory (the effective-stop-time table
// dominates; every other pass is O(m+n)).
func New(rateTimes []float64, opts ...Option) (*Description, error) {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	// Stage 1: rate times. n is the number of forward rates.
	if len(rateTimes) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientRateTimes, len(rateTimes))
	}
	if rateTimes[0] < 0 {
		return nil, fmt.Errorf("%w: rateTimes[0] = %g", ErrNegativeFirstRateTime, rateTimes[0])
	}
	var i int
	for i = 1; i < len(rateTimes); i++ {
		if rateTimes[i] <= rateTimes[i-1] {
			return nil, fmt.Errorf("%w: rateTimes[%d] = %g, rateTimes[%d] = %g",
				ErrNonIncreasingRateTimes, i-1, rateTimes[i-1], i, rateTimes[i])
		}
	}
	n := len(rateTimes) - 1

	// Stage 2: evolution times. The default grid stops one step short of the
	// horizon because the last rate has fixed by then and nothing is left to
	// evolve.
	var evolutionTimes []float64
	if s.evolutionTimes == nil {
		evolutionTimes = append([]float64(nil), rateTimes[:n]...)
	} else {
		evolutionTimes = append([]float64(nil), s.evolutionTimes...)
	}
	m := len(evolutionTimes)
	if m < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientEvolutionTimes, m)
	}
	for i = 1; i < m; i++ {
		if evolutionTimes[i] <= evolutionTimes[i-1] {
			return nil, fmt.Errorf("%w: evolutionTimes[%d] = %g, evolutionTimes[%d] = %g",
				ErrNonIncreasingEvolutionTimes, i-1, evolutionTimes[i-1], i, evolutionTimes[i])
		}
	}
	if evolutionTimes[m-1] > rateTimes[n] {
		return nil, fmt.Errorf("%w: evolutionTimes[%d] = %g, rateTimes[%d] = %g",
			ErrEvolutionPastRateHorizon, m-1, evolutionTimes[m-1], n, rateTimes[n])
	}

	// Stage 3: relevance ranges. Omitted ranges mean every rate matters at
	// every step.
	var relevance []RateRange
	if s.relevanceRates == nil {
		relevance = make([]RateRange, m)
		for i = range relevance {
			relevance[i] = RateRange{Lo: 0, Hi: n}
		}
	} else {
		if len(s.relevanceRates) != m {
			return nil, fmt.Errorf("%w: %d ranges for %d evolution times",
				ErrRelevanceSizeMismatch, len(s.relevanceRates), m)
		}
		relevance = append([]RateRange(nil), s.relevanceRates...)
	}

	// Stage 4: derived structures.
	d := &Description{
		rateTimes:      append([]float64(nil), rateTimes...),
		evolutionTimes: evolutionTimes,
		relevanceRates: relevance,
		rateTenors:     make([]float64, n),
		effStopTime:    mat.NewDense(m, n, nil),
		firstAliveRate: make([]int, m),
	}
	for i = 0; i < n; i++ {
		d.rateTenors[i] = rateTimes[i+1] - rateTimes[i]
	}
	var j int
	for j = 0; j < m; j++ {
		for i = 0; i < n; i++ {
			d.effStopTime.Set(j, i, math.Min(evolutionTimes[j], rateTimes[i]))
		}
	}

	// First-alive merge scan. The boundary preceding step j is
	// evolutionTimes[j-1] (zero before the first step), so it is recorded
	// only after the step is scanned. Every boundary the scan consumes stays
	// strictly below rateTimes[n] (the last one used is evolutionTimes[m-2],
	// and the horizon check above caps evolutionTimes[m-1]), hence the cursor
	// cannot run off the rate grid.
	var (
		boundary float64 // evolution boundary preceding the current step
		cursor   int     // first rate index not yet fixed at the boundary
	)
	for j = 0; j < m; j++ {
		cursor = rateCursorAfter(rateTimes, cursor, boundary, true)
		d.firstAliveRate[j] = cursor
		boundary = evolutionTimes[j]
	}

	return d, nil
}

// rateCursorAfter advances cur over rateTimes until rateTimes[cur] lies past
// bound. With skipEqual the scan also passes entries equal to bound (a rate
// fixing exactly at the boundary counts as fixed); without it equality stops
// the scan (a numeraire maturing exactly at the step is still usable).
//
// The cursor never moves backwards, which turns repeated calls over an
// ascending sequence of bounds into a single O(m+n) merge instead of m
// independent searches. Callers guarantee bound < rateTimes[len-1] when
// skipEqual is set and bound <= rateTimes[len-1] otherwise, so the scan
// always terminates in range.
//
// Complexity: O(total advance) amortized across one ascending sweep.
func rateCursorAfter(rateTimes []float64, cur int, bound float64, skipEqual bool) int {
	if skipEqual {
		for rateTimes[cur] <= bound {
			cur++
		}

		return cur
	}
	for rateTimes[cur] < bound {
		cur++
	}

	return cur
}

// NumberOfRates returns n, the count of forward rates on the grid.
func (d *Description) NumberOfRates() int { return len(d.rateTimes) - 1 }

// NumberOfSteps returns m, the count of evolution steps.
func (d *Description) NumberOfSteps() int { return len(d.evolutionTimes) }

// RateTimes returns the n+1 fixing/maturity times backing the rate grid.
// Read-only: the slice is owned by the Description.
func (d *Description) RateTimes() []float64 { return d.rateTimes }

// RateTenors returns the n accrual spans rateTimes[i+1]-rateTimes[i].
// Read-only: the slice is owned by the Description.
func (d *Description) RateTenors() []float64 { return d.rateTenors }

// EvolutionTimes returns the m times at which the rate vector is advanced.
// Read-only: the slice is owned by the Description.
func (d *Description) EvolutionTimes() []float64 { return d.evolutionTimes }

// EffectiveStopTime returns the m x n table whose (j, i) entry is
// min(evolutionTimes[j], rateTimes[i]): how far rate i actually diffuses
// during the j-th step horizon. Covariance integration reads this table on
// every step. Read-only: the matrix is owned by the Description.
func (d *Description) EffectiveStopTime() *mat.Dense { return d.effStopTime }

// FirstAliveRate returns, per evolution step, the index of the first rate
// whose fixing time has not yet passed when the step begins. Drift loops
// start at this index and skip the dead prefix. Read-only: the slice is
// owned by the Description.
func (d *Description) FirstAliveRate() []int { return d.firstAliveRate }

// RelevanceRates returns the per-step half-open ranges of rates the step
// actually moves. Read-only: the slice is owned by the Description.
func (d *Description) RelevanceRates() []RateRange { return d.relevanceRates }

// String renders a compact one-line summary for logs and debugging.
func (d *Description) String() string {
	return fmt.Sprintf("evolution.Description{rates: %d, steps: %d, rateTimes: %v, evolutionTimes: %v}",
		d.NumberOfRates(), d.NumberOfSteps(), d.rateTimes, d.evolutionTimes)
}
