// Package timegrid - primitives for assembling and vetting time sequences.
//
// Design principles:
//   - Deterministic, side-effect free functions over plain []float64.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - Inputs are never mutated; results are freshly allocated.
package timegrid

import "fmt"

// CheckStrictlyIncreasing verifies that times is non-empty and strictly
// ascending. A single-entry sequence is vacuously increasing.
//
// Complexity: O(len(times)).
func CheckStrictlyIncreasing(times []float64) error {
	if len(times) == 0 {
		return ErrEmptyTimes
	}
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			return fmt.Errorf("%w: times[%d] = %g, times[%d] = %g",
				ErrNonIncreasingTimes, i-1, times[i-1], i, times[i])
		}
	}

	return nil
}

// Taus returns the adjacent spans times[i+1]-times[i] of a strictly
// increasing sequence. All spans are positive by construction.
//
// Complexity: O(len(times)).
func Taus(times []float64) ([]float64, error) {
	if len(times) == 0 {
		return nil, ErrEmptyTimes
	}
	if len(times) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewTimes, len(times))
	}
	if err := CheckStrictlyIncreasing(times); err != nil {
		return nil, err
	}

	taus := make([]float64, len(times)-1)
	for i := range taus {
		taus[i] = times[i+1] - times[i]
	}

	return taus, nil
}

// Merge folds several strictly increasing sequences into one strictly
// increasing sequence, deduplicating entries shared between inputs. Empty
// input sequences are skipped; at least one entry must survive overall or
// Merge reports ErrEmptyTimes. Typical use is assembling an evolution grid
// from per-product event times (fixings, exercises, payments).
//
// Equality is exact: entries coincide only when the inputs carry the same
// float64 value, which holds whenever the sequences come from one shared
// schedule rather than from independent arithmetic.
//
// Complexity: O(k*N) time where k is the number of sequences and N the total
// entry count; O(N) memory.
func Merge(seqs ...[]float64) ([]float64, error) {
	var merged []float64
	for idx, seq := range seqs {
		if len(seq) == 0 {
			continue
		}
		if err := CheckStrictlyIncreasing(seq); err != nil {
			return nil, fmt.Errorf("sequence %d: %w", idx, err)
		}
		merged = mergeTwo(merged, seq)
	}
	if len(merged) == 0 {
		return nil, ErrEmptyTimes
	}

	return merged, nil
}

// mergeTwo merges two strictly increasing sequences, keeping one copy of
// entries present in both. Either input may be empty.
func mergeTwo(a, b []float64) []float64 {
	merged := make([]float64, 0, len(a)+len(b))
	var i, j int
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			merged = append(merged, a[i])
			i++
		case a[i] > b[j]:
			merged = append(merged, b[j])
			j++
		default:
			merged = append(merged, a[i]) // shared entry kept once
			i++
			j++
		}
	}
	merged = append(merged, a[i:]...)
	merged = append(merged, b[j:]...)

	return merged
}

// Membership reports, for every entry of times, whether it occurs in grid.
// Both sequences must be strictly increasing, which lets a single forward
// scan answer all queries. Equality is exact, as in Merge.
//
// Complexity: O(len(times)+len(grid)).
func Membership(times, grid []float64) ([]bool, error) {
	if err := CheckStrictlyIncreasing(times); err != nil {
		return nil, err
	}
	if err := CheckStrictlyIncreasing(grid); err != nil {
		return nil, err
	}

	present := make([]bool, len(times))
	var j int
	for i, t := range times {
		for j < len(grid) && grid[j] < t {
			j++
		}
		present[i] = j < len(grid) && grid[j] == t
	}

	return present, nil
}
