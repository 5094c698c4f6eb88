package refsolver

import "errors"

// Sentinel errors for refsolver package operations.
var (
	// ErrDimensionMismatch indicates inconsistent matrix/vector dimensions.
	ErrDimensionMismatch = errors.New("refsolver: dimension mismatch")

	// ErrUnsolved indicates Solve/IsFeasible was queried on a model that
	// has never been solved.
	ErrUnsolved = errors.New("refsolver: model has not been solved")

	// ErrUnknownModel indicates a Model handle not produced by this
	// package was passed back into it.
	ErrUnknownModel = errors.New("refsolver: unrecognized model handle")
)
