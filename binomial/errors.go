package binomial

import "errors"

// Sentinel errors for binomial package operations.
var (
	// ErrDimensionMismatch indicates two binomials (or a binomial and a
	// destination buffer) have different lengths.
	ErrDimensionMismatch = errors.New("binomial: dimension mismatch")

	// ErrZeroVector indicates a construction or result would be the all-zero
	// vector where a nonzero binomial is required.
	ErrZeroVector = errors.New("binomial: zero vector is not a valid binomial")

	// ErrOverflow indicates an arithmetic operation exceeded the 64-bit
	// signed integer range (spec.md §7, Overflow error kind).
	ErrOverflow = errors.New("binomial: integer overflow")

	// ErrOutOfRange indicates a support-domain length (nonnegLen/boundedLen)
	// exceeds the element's own length.
	ErrOutOfRange = errors.New("binomial: support domain out of range")
)
