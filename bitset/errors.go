package bitset

import "errors"

// Sentinel errors for bitset package operations.
var (
	// ErrOutOfRange indicates a bit index outside [0, capacity).
	ErrOutOfRange = errors.New("bitset: index out of range")

	// ErrCapacityMismatch indicates two bitsets of different capacities were
	// combined in an operation that requires equal capacity.
	ErrCapacityMismatch = errors.New("bitset: capacity mismatch")
)
