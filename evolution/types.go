// Package evolution defines core types, options, and sentinel errors
// for the evolution subpackage of github.com/katalvlaran/evogrid.
package evolution

import (
	"errors"
)

// Sentinel errors for grid construction, measure derivation, and numeraire
// compatibility checks. Call sites wrap them with fmt.Errorf("%w: ...") so the
// offending index and values travel with the error while errors.Is still
// matches the sentinel.
var (
	// ErrInsufficientRateTimes indicates fewer than two rate times (no span to evolve).
	ErrInsufficientRateTimes = errors.New("evolution: at least two rate times are required")
	// ErrNegativeFirstRateTime indicates a rate grid starting before time zero.
	ErrNegativeFirstRateTime = errors.New("evolution: first rate time must be non-negative")
	// ErrNonIncreasingRateTimes indicates adjacent rate times out of strict ascending order.
	ErrNonIncreasingRateTimes = errors.New("evolution: rate times must be strictly increasing")
	// ErrInsufficientEvolutionTimes indicates an empty evolution-time grid.
	ErrInsufficientEvolutionTimes = errors.New("evolution: at least one evolution time is required")
	// ErrNonIncreasingEvolutionTimes indicates adjacent evolution times out of strict ascending order.
	ErrNonIncreasingEvolutionTimes = errors.New("evolution: evolution times must be strictly increasing")
	// ErrEvolutionPastRateHorizon indicates an evolution time beyond the last rate time.
	ErrEvolutionPastRateHorizon = errors.New("evolution: last evolution time is past the last rate time")
	// ErrRelevanceSizeMismatch indicates len(relevance ranges) != len(evolution times).
	ErrRelevanceSizeMismatch = errors.New("evolution: relevance ranges must match evolution times")

	// ErrOffsetOutOfRange indicates a money-market-plus offset larger than the number of rates.
	ErrOffsetOutOfRange = errors.New("evolution: money-market offset out of range")

	// ErrNumeraireSizeMismatch indicates len(numeraires) != len(evolution times).
	ErrNumeraireSizeMismatch = errors.New("evolution: numeraires must match evolution times")
	// ErrNumeraireIndexOutOfRange indicates a numeraire index outside [0..NumberOfRates].
	ErrNumeraireIndexOutOfRange = errors.New("evolution: numeraire index out of range")
	// ErrNumeraireExpired indicates a numeraire whose rate time precedes its evolution step.
	ErrNumeraireExpired = errors.New("evolution: numeraire expired before its evolution step")
)

// RateRange is a half-open index interval [Lo, Hi) over the forward rates,
// marking which rates a given evolution step actually moves. The default range
// [0, NumberOfRates) declares every rate relevant.
type RateRange struct {
	Lo int // first relevant rate index (inclusive)
	Hi int // one past the last relevant rate index (exclusive)
}

// settings collects the optional constructor inputs before validation.
// Zero value means "derive the defaults from the rate times".
type settings struct {
	evolutionTimes []float64
	relevanceRates []RateRange
}

// Option customizes Description construction. Options only record inputs;
// all validation happens inside New so that misuse surfaces as a sentinel
// error, never as a panic.
type Option func(*settings)

// WithEvolutionTimes supplies an explicit evolution-time grid instead of the
// default one (every rate time except the last). Passing nil is the same as
// omitting the option; passing an empty non-nil slice is rejected by New with
// ErrInsufficientEvolutionTimes. The slice is copied by New; the caller keeps
// ownership of its argument.
func WithEvolutionTimes(times []float64) Option {
	return func(s *settings) { s.evolutionTimes = times }
}

// WithRelevanceRates supplies per-step relevance ranges instead of the default
// all-rates-relevant assignment. len(ranges) must equal the number of
// evolution steps; New rejects any other length with ErrRelevanceSizeMismatch.
// Passing nil is the same as omitting the option. The slice is copied by New;
// the caller keeps ownership of its argument.
func WithRelevanceRates(ranges []RateRange) Option {
	return func(s *settings) { s.relevanceRates = ranges }
}
