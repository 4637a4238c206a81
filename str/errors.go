package str

import "errors"

// Sentinel errors returned by string operations.
var (
	// ErrInvalidLength is returned when Truncate is called with length <= 0.
	ErrInvalidLength = errors.New("str: length must be greater than 0")

	// ErrSuffixTooLong is returned when Truncate is given a suffix that is
	// longer than the requested length, which would make the bound
	// unsatisfiable.
	ErrSuffixTooLong = errors.New("str: suffix longer than the requested length")
)
