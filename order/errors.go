package order

import "errors"

// Sentinel errors for order package operations.
var (
	// ErrEmptyCostMatrix indicates the caller supplied zero cost rows.
	ErrEmptyCostMatrix = errors.New("order: cost matrix has no rows")

	// ErrDimensionMismatch indicates a cost-matrix row, or a vector passed
	// to Cmp/IsInverted/Cost, has the wrong length.
	ErrDimensionMismatch = errors.New("order: dimension mismatch")

	// ErrNeedsLPOracle indicates the primary cost row has a negative entry
	// but no LPOracle was supplied to compute the positivity shift.
	ErrNeedsLPOracle = errors.New("order: primary cost row has a negative entry and requires an LPOracle to repair")

	// ErrDegenerate indicates every row produced zero on a nonzero vector;
	// the constructor's positivity shift and tiebreak append are supposed
	// to prevent this (spec.md §4.3, "Failure mode"). New also returns it
	// when the LPOracle's row-span vector has an entry that is not positive.
	ErrDegenerate = errors.New("order: degenerate order (all rows vanish on a nonzero vector)")
)
