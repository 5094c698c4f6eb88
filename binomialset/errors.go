package binomialset

import "errors"

// Sentinel errors for binomialset package operations.
var (
	// ErrOutOfRange indicates an index passed to At/DeleteAt is outside [0, Len()).
	ErrOutOfRange = errors.New("binomialset: index out of range")

	// ErrNotOriented indicates a binomial pushed onto the set was not
	// 0 <_M g oriented under the set's order (spec.md §3 invariant).
	ErrNotOriented = errors.New("binomialset: binomial is not oriented under the set's order")
)
