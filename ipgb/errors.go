package ipgb

import (
	"errors"
	"fmt"

	"github.com/gmlangeloh/ipgb/binomial"
	"github.com/gmlangeloh/ipgb/binomialset"
	"github.com/gmlangeloh/ipgb/buchberger"
	"github.com/gmlangeloh/ipgb/ipinstance"
	"github.com/gmlangeloh/ipgb/oracle"
	"github.com/gmlangeloh/ipgb/order"
	"github.com/gmlangeloh/ipgb/projectlift"
	"github.com/gmlangeloh/ipgb/reducer"
	"github.com/gmlangeloh/ipgb/truncator"
)

// Top-level error kinds every public entry point can return (spec.md §7).
// DO NOT %w wrap these when returning one directly with no further
// context; wrap with fmt.Errorf("%w: ...", ErrX) only where the leaf
// error's own text is useful extra context, per the teacher's
// matrix/errors.go convention. Callers always match with errors.Is.
var (
	// ErrInputInvalid indicates a matrix/vector shape disagreement, or a
	// declared variable type or algorithm selection this module doesn't
	// support.
	ErrInputInvalid = errors.New("ipgb: invalid input")

	// ErrUnbounded indicates project-and-lift's solve-while-lift variant
	// lifted every variable without ever finding a finite optimum: no
	// ray-based witness covered the objective direction at any iteration,
	// which happens exactly when the instance's objective is unbounded
	// over its feasible lattice points.
	ErrUnbounded = errors.New("ipgb: objective is unbounded over the feasible lattice")

	// ErrOverflow indicates arithmetic on problem integers exceeded the
	// 64-bit signed range.
	ErrOverflow = errors.New("ipgb: integer overflow")

	// ErrOracleFailure indicates the external LP/HNF oracle returned an
	// unexpected status; the in-progress completion state is discarded.
	ErrOracleFailure = errors.New("ipgb: oracle failure")

	// ErrInfeasiblePolytope indicates the instance's LP relaxation (or, in
	// enumerate_solutions, its feasible region) has no feasible point.
	ErrInfeasiblePolytope = errors.New("ipgb: infeasible polytope")
)

// wrap maps a leaf-package sentinel into one of the five top-level kinds,
// attaching the leaf error as context. An error this function doesn't
// recognize is returned unchanged (still errors.Is-comparable against
// whatever sentinel it already wraps).
func wrap(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ipinstance.ErrInfeasible), errors.Is(err, oracle.ErrInfeasible):
		return fmt.Errorf("%w: %v", ErrInfeasiblePolytope, err)

	case errors.Is(err, binomial.ErrOverflow):
		return fmt.Errorf("%w: %v", ErrOverflow, err)

	case errors.Is(err, oracle.ErrOracleFailure),
		errors.Is(err, oracle.ErrUnknownModel):
		return fmt.Errorf("%w: %v", ErrOracleFailure, err)

	case errors.Is(err, ipinstance.ErrDimensionMismatch),
		errors.Is(err, ipinstance.ErrOutOfRange),
		errors.Is(err, oracle.ErrDimensionMismatch),
		errors.Is(err, order.ErrEmptyCostMatrix),
		errors.Is(err, order.ErrDimensionMismatch),
		errors.Is(err, order.ErrNeedsLPOracle),
		errors.Is(err, order.ErrDegenerate),
		errors.Is(err, reducer.ErrDimensionMismatch),
		errors.Is(err, reducer.ErrGradedNeedsMatrix),
		errors.Is(err, reducer.ErrNoReductionFactor),
		errors.Is(err, truncator.ErrDimensionMismatch),
		errors.Is(err, truncator.ErrNeedsModel),
		errors.Is(err, binomial.ErrDimensionMismatch),
		errors.Is(err, binomial.ErrZeroVector),
		errors.Is(err, binomial.ErrOutOfRange),
		errors.Is(err, binomialset.ErrOutOfRange),
		errors.Is(err, binomialset.ErrNotOriented),
		errors.Is(err, buchberger.ErrNilOrder),
		errors.Is(err, buchberger.ErrEmptySeed),
		errors.Is(err, projectlift.ErrNilInstance),
		errors.Is(err, projectlift.ErrNilOracle),
		errors.Is(err, projectlift.ErrNoUnliftedVariable):
		return fmt.Errorf("%w: %v", ErrInputInvalid, err)

	default:
		return err
	}
}
