package truncator

import "errors"

// Sentinel errors for truncator package operations.
var (
	// ErrDimensionMismatch indicates A, b, u, or bounded disagree in length.
	ErrDimensionMismatch = errors.New("truncator: dimension mismatch")

	// ErrNeedsModel indicates Model mode was selected without supplying a
	// model and LPOracle.
	ErrNeedsModel = errors.New("truncator: model mode requires a non-nil oracle.Model and oracle.LPOracle")
)
