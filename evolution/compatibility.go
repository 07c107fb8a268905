// Package evolution - compatibility checking of external numeraire assignments.
//
// Measure builders always produce valid assignments; this file validates the
// ones supplied from outside (calibration files, user configuration) before a
// simulation is allowed to run with them.
package evolution

import (
	"fmt"
	"strconv"
)

// CheckCompatibility reports whether a numeraire assignment can discount every
// step of the grid. It requires one numeraire per evolution step, every index
// within [0..NumberOfRates], and, for every step except the last, a numeraire
// bond that has not matured before the step's evolution time. The final step
// is exempt because no rate diffuses past it, so even an already-matured bond
// deflates it consistently.
//
// The first violation wins: size mismatch, then index range, then expiry in
// step order.
//
// Complexity: O(m).
func CheckCompatibility(d *Description, numeraires []int) error {
	m := d.NumberOfSteps()
	if len(numeraires) != m {
		return fmt.Errorf("%w: %d numeraires for %d evolution times",
			ErrNumeraireSizeMismatch, len(numeraires), m)
	}
	n := d.NumberOfRates()
	for i, k := range numeraires {
		if k < 0 || k > n {
			return fmt.Errorf("%w: numeraires[%d] = %d with %d rates",
				ErrNumeraireIndexOutOfRange, i, k, n)
		}
	}
	for i := 0; i < m-1; i++ {
		if d.rateTimes[numeraires[i]] < d.evolutionTimes[i] {
			return fmt.Errorf("%w: %s step, evolution time %g: numeraire %d, corresponding to rate time %g, is expired",
				ErrNumeraireExpired, ordinal(i), d.evolutionTimes[i], numeraires[i], d.rateTimes[numeraires[i]])
		}
	}

	return nil
}

// ordinal renders a step index as an English ordinal ("0th", "1st", "2nd",
// "3rd", "11th", "21st", ...) for diagnostics.
func ordinal(i int) string {
	suffix := "th"
	switch {
	case i%100 >= 11 && i%100 <= 13:
		// the teens always take "th"
	case i%10 == 1:
		suffix = "st"
	case i%10 == 2:
		suffix = "nd"
	case i%10 == 3:
		suffix = "rd"
	}

	return strconv.Itoa(i) + suffix
}
