package oracle

import "errors"

// Sentinel errors for oracle package operations. Any unexpected status from
// a concrete LPOracle/HermiteOracle implementation should be wrapped so that
// callers can match it with errors.Is against ErrOracleFailure (spec.md §7).
var (
	// ErrOracleFailure indicates the external LP/HNF oracle returned an
	// unexpected status (spec.md §7, OracleFailure error kind).
	ErrOracleFailure = errors.New("oracle: unexpected oracle failure")

	// ErrInfeasible indicates the queried model has no feasible point.
	ErrInfeasible = errors.New("oracle: model is infeasible")

	// ErrDimensionMismatch indicates matrix/vector shapes disagree.
	ErrDimensionMismatch = errors.New("oracle: dimension mismatch")

	// ErrUnknownModel indicates a Model handle did not originate from the
	// same oracle implementation it was passed back into.
	ErrUnknownModel = errors.New("oracle: model handle not recognized by this oracle")
)
