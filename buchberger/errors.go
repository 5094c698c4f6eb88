package buchberger

import "errors"

// Sentinel errors for buchberger package operations.
var (
	// ErrNilOrder indicates Complete was called with a nil order.Order.
	ErrNilOrder = errors.New("buchberger: nil order")

	// ErrEmptySeed indicates Complete was called with no seed binomials.
	ErrEmptySeed = errors.New("buchberger: empty seed set")
)
