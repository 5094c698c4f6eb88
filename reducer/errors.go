package reducer

import "errors"

// Sentinel errors for reducer package operations.
var (
	// ErrNoReductionFactor indicates no k >= 1 satisfies k*r+ <= g+
	// coordinate-wise, i.e. r does not actually divide g under the
	// requested convention.
	ErrNoReductionFactor = errors.New("reducer: no valid reduction factor")

	// ErrDimensionMismatch indicates g and r were built over different
	// numbers of variables.
	ErrDimensionMismatch = errors.New("reducer: dimension mismatch")

	// ErrGradedNeedsMatrix indicates Graded mode was selected without
	// supplying the constraint matrix A needed for the degree bound.
	ErrGradedNeedsMatrix = errors.New("reducer: graded mode requires a non-nil constraint matrix")
)
