// Package evolution describes the time discretization of a LIBOR market-model
// simulation and the numeraire bookkeeping attached to it.
//
// What:
//
//   - Description couples the rate-time grid T_0 < ... < T_n (whose n spans
//     carry the forward rates) with the evolution times at which a Monte-Carlo
//     engine advances the whole rate vector.
//   - Construction derives everything a per-step engine loop needs: accrual
//     tenors, the effective-stop-time table min(evolutionTimes[j], rateTimes[i]),
//     the first-alive-rate index per step, and per-step relevance ranges.
//   - TerminalMeasure, MoneyMarketMeasure, and MoneyMarketPlusMeasure build
//     the standard numeraire assignments; the IsIn* predicates classify an
//     existing assignment; CheckCompatibility vets an external one.
//
// Why:
//
//   - Drift and covariance computations run once per step per path, so every
//     quantity derivable from the grid alone is precomputed here, eagerly
//     validated, and then shared read-only across the simulation.
//   - The choice of numeraire per step decides which drift terms appear;
//     keeping the assignment logic next to the grid keeps engine code free of
//     time arithmetic.
//
// Complexity:
//
//   - New:                     O(m*n) time and memory (effective-stop table).
//   - Measure builders:        O(m+n) per call, one allocation for the result.
//   - Predicates, CheckCompatibility: O(m+n) worst case, allocation free
//     except IsInMoneyMarketPlusMeasure, which materializes the expected
//     assignment.
//
// Options:
//
//   - WithEvolutionTimes: explicit step grid (default: every rate time except
//     the last).
//   - WithRelevanceRates: per-step [Lo, Hi) rate scope (default: all rates).
//
// Errors:
//
//   - Construction: ErrInsufficientRateTimes, ErrNegativeFirstRateTime,
//     ErrNonIncreasingRateTimes, ErrInsufficientEvolutionTimes,
//     ErrNonIncreasingEvolutionTimes, ErrEvolutionPastRateHorizon,
//     ErrRelevanceSizeMismatch.
//   - Measures: ErrOffsetOutOfRange.
//   - Compatibility: ErrNumeraireSizeMismatch, ErrNumeraireIndexOutOfRange,
//     ErrNumeraireExpired.
//
// Concurrency:
//
//   - A Description is immutable after New; any number of goroutines may call
//     accessors, measure builders, and predicates on a shared value without
//     locking.
package evolution
