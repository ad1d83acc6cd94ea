package rmq

import "errors"

// Sentinel errors returned by the index. Match them with errors.Is.
var (
	// ErrEmptyInput is returned when building from an array with no values.
	ErrEmptyInput = errors.New("input array must not be empty")

	// ErrInvalidRange is returned when a query range is reversed or
	// reaches outside [0, Len()).
	ErrInvalidRange = errors.New("invalid query range")

	// ErrUnorderedValue is returned when the array holds a value that has
	// no total order against the others (NaN).
	ErrUnorderedValue = errors.New("value is not totally ordered")

	// ErrInputTooLarge is returned when the Euler tour of the array would
	// not fit in 32-bit positions.
	ErrInputTooLarge = errors.New("input array exceeds maximum size")

	// ErrCorrupted is returned by Validate when a structural invariant
	// does not hold.
	ErrCorrupted = errors.New("index invariant violated")

	// ErrUnknownFormat is returned for an unsupported value encoding.
	ErrUnknownFormat = errors.New("unknown value format")
)
