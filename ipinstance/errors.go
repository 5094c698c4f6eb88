package ipinstance

import "errors"

// Sentinel errors for ipinstance package operations, checked in the order
// shape -> index -> structural violation (grounded on matrix/errors.go's
// priority convention).
var (
	// ErrDimensionMismatch indicates A, b, C, u, nonneg, or relations
	// disagree in length.
	ErrDimensionMismatch = errors.New("ipinstance: dimension mismatch")

	// ErrOutOfRange indicates a variable index outside [0, NumVars()).
	// ToOriginal and ToPermuted take whole vectors and report a wrong
	// length as ErrDimensionMismatch instead.
	ErrOutOfRange = errors.New("ipinstance: index out of range")

	// ErrInfeasible indicates the LP relaxation of the normalized instance
	// has no feasible point.
	ErrInfeasible = errors.New("ipinstance: LP relaxation is infeasible")
)
