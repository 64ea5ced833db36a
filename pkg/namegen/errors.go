package namegen

import "errors"

var (
	// ErrInvalidWeights is returned when a weight set cannot be sampled from:
	// a weight is negative, a weight is NaN or infinite, or the weights sum
	// to zero. The weight set must be corrected by the caller; nothing is
	// retried internally.
	ErrInvalidWeights = errors.New("weights must be finite, non-negative, and sum to a positive value")

	// ErrLengthMismatch is returned when a NameList is constructed from
	// parallel name and weight sequences of differing lengths.
	ErrLengthMismatch = errors.New("names and weights differ in length")

	// ErrEmptyList is returned when sampling from a list with no entries.
	// There is no valid outcome to return, so this is always a caller bug.
	ErrEmptyList = errors.New("cannot sample from an empty list")
)
