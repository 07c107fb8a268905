// Package timegrid assembles and vets the strictly increasing time sequences
// that drive market-model simulations.
//
// What:
//
//   - CheckStrictlyIncreasing validates the one ordering invariant every grid
//     in this module relies on.
//   - Taus turns a sequence into its adjacent spans (accrual year fractions).
//   - Merge folds per-product event times (fixings, exercises, payments) into
//     one deduplicated evolution grid.
//   - Membership marks which entries of one sequence occur in another, e.g.
//     which evolution times coincide with rate fixings.
//
// Why:
//
//   - Evolution grids are rarely written by hand; they are merged from the
//     event times of the products being priced, then handed to
//     evolution.New. Keeping the assembly primitives here keeps engine and
//     product code free of slice plumbing.
//
// Complexity:
//
//   - All operations are linear scans: O(N) time over the total input size
//     (Merge pays O(k*N) across k sequences), O(N) memory for results.
//
// Errors:
//
//   - ErrEmptyTimes: a sequence (or a whole merge) carries no entries.
//   - ErrTooFewTimes: spans need at least two times.
//   - ErrNonIncreasingTimes: adjacent entries out of strict ascending order.
//
// Equality between sequences is exact float64 equality: the primitives are
// meant for times drawn from one shared schedule, not for values produced by
// independent arithmetic.
package timegrid
