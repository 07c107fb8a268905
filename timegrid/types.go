// Package timegrid defines sentinel errors for the timegrid subpackage of
// github.com/katalvlaran/evogrid.
package timegrid

import (
	"errors"
)

// Sentinel errors for time-sequence validation and assembly.
var (
	// ErrEmptyTimes indicates an empty time sequence where at least one entry is required.
	ErrEmptyTimes = errors.New("timegrid: time sequence must not be empty")
	// ErrTooFewTimes indicates a sequence too short to carry spans.
	ErrTooFewTimes = errors.New("timegrid: at least two times are required")
	// ErrNonIncreasingTimes indicates adjacent times out of strict ascending order.
	ErrNonIncreasingTimes = errors.New("timegrid: times must be strictly increasing")
)
