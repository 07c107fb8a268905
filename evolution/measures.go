// Package evolution - numeraire assignments under the standard pricing measures.
//
// A numeraire assignment gives, for every evolution step, the index of the
// zero-coupon bond used as the unit of account while the rates diffuse across
// that step. Index k stands for the bond maturing at rateTimes[k]; index n
// (NumberOfRates) is the terminal bond. The builders below derive the three
// assignments used in practice, and the IsIn* predicates classify an
// externally supplied one.
package evolution

import "fmt"

// TerminalMeasure returns the assignment that deflates every step by the bond
// maturing at the last rate time. It never rolls, so discounting is the same
// on every step, at the price of larger drift terms early in the simulation.
//
// Complexity: O(m).
func TerminalMeasure(d *Description) []int {
	n := d.NumberOfRates()
	numeraires := make([]int, d.NumberOfSteps())
	for i := range numeraires {
		numeraires[i] = n
	}

	return numeraires
}

// MoneyMarketMeasure returns the discretely rolled money-market assignment:
// at each step the numeraire is the first bond that has not yet matured, i.e.
// the balance keeps rolling into the shortest bond still alive.
//
// Complexity: O(m+n) for the whole grid (single merge scan).
func MoneyMarketMeasure(d *Description) []int {
	numeraires, _ := MoneyMarketPlusMeasure(d, 0) // offset 0 never fails
	return numeraires
}

// MoneyMarketPlusMeasure returns the rolled assignment that holds each bond
// offset accrual spans beyond the first one alive, clamped at the terminal
// bond. Offset 0 is the plain money-market measure; offset n degenerates into
// the terminal measure. Offsets outside [0..NumberOfRates] yield
// ErrOffsetOutOfRange.
//
// Complexity: O(m+n) for the whole grid (single merge scan).
func MoneyMarketPlusMeasure(d *Description, offset int) ([]int, error) {
	n := d.NumberOfRates()
	if offset < 0 || offset > n {
		return nil, fmt.Errorf("%w: offset %d with %d rates", ErrOffsetOutOfRange, offset, n)
	}

	// The cursor tracks the first bond maturing at or after the current
	// evolution time. A bond maturing exactly at the step is still usable as
	// numeraire, so the scan keeps entries equal to the bound (skipEqual
	// false). The horizon check in New guarantees the scan stays in range.
	numeraires := make([]int, d.NumberOfSteps())
	var cursor int
	for i, t := range d.evolutionTimes {
		cursor = rateCursorAfter(d.rateTimes, cursor, t, false)
		k := cursor + offset
		if k > n {
			k = n // clamp at the terminal bond
		}
		numeraires[i] = k
	}

	return numeraires, nil
}

// IsInTerminalMeasure reports whether the assignment discounts every step
// with the terminal bond. Because n is the largest admissible index, checking
// min(numeraires) == n is equivalent to checking all entries at once. An
// empty assignment is not in the measure.
//
// Complexity: O(len(numeraires)).
func IsInTerminalMeasure(d *Description, numeraires []int) bool {
	if len(numeraires) == 0 {
		return false
	}
	lowest := numeraires[0]
	for _, k := range numeraires[1:] {
		if k < lowest {
			lowest = k
		}
	}

	return lowest == d.NumberOfRates()
}

// IsInMoneyMarketMeasure reports whether the assignment is exactly the
// discretely rolled money-market one for this grid.
//
// Complexity: O(m+n).
func IsInMoneyMarketMeasure(d *Description, numeraires []int) bool {
	ok, _ := IsInMoneyMarketPlusMeasure(d, numeraires, 0) // offset 0 never fails
	return ok
}

// IsInMoneyMarketPlusMeasure reports whether the assignment matches the
// money-market-plus convention at the given offset. The offset is validated
// first (ErrOffsetOutOfRange, as in MoneyMarketPlusMeasure); a validated call
// with an assignment of the wrong length reports false rather than an error.
//
// Complexity: O(m+n).
func IsInMoneyMarketPlusMeasure(d *Description, numeraires []int, offset int) (bool, error) {
	expected, err := MoneyMarketPlusMeasure(d, offset)
	if err != nil {
		return false, err
	}
	if len(numeraires) != len(expected) {
		return false, nil
	}
	for i, k := range expected {
		if numeraires[i] != k {
			return false, nil
		}
	}

	return true, nil
}
