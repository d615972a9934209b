package mtrand

import "errors"

// Errors returned for invalid caller input. They are checked before any
// word is drawn, so a failed call leaves the stream untouched.
var (
	// ErrInvalidRange is returned when min > max.
	ErrInvalidRange = errors.New("mtrand: invalid range")
	// ErrInvalidProbability is returned for a probability outside [0, 1].
	ErrInvalidProbability = errors.New("mtrand: invalid probability")
	// ErrInvalidParameter is returned for an out-of-domain distribution parameter.
	ErrInvalidParameter = errors.New("mtrand: invalid parameter")
	// ErrEmptyCollection is returned when an operation needs at least one item.
	ErrEmptyCollection = errors.New("mtrand: empty collection")
	// ErrNonPositiveWeightSum is returned when weights do not sum to a positive value.
	ErrNonPositiveWeightSum = errors.New("mtrand: non-positive weight sum")
	// ErrInvalidState is returned when restoring a malformed state snapshot.
	ErrInvalidState = errors.New("mtrand: invalid state")
)
