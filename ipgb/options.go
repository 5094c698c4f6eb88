package ipgb

import (
	"github.com/rs/zerolog"

	"github.com/gmlangeloh/ipgb/buchberger"
	"github.com/gmlangeloh/ipgb/oracle"
	"github.com/gmlangeloh/ipgb/order"
	"github.com/gmlangeloh/ipgb/reducer"
	"github.com/gmlangeloh/ipgb/refsolver"
	"github.com/gmlangeloh/ipgb/truncator"
)

// Algorithm selects which Markov-basis construction strategy MarkovBasis
// uses (spec.md §6.5's algorithm ∈ {Any, Simple, ProjectAndLift}, renamed
// with an Algorithm prefix since this package already exports a
// ProjectAndLift function).
type Algorithm int

const (
	// AlgorithmAny lets MarkovBasis pick: AlgorithmSimple when the
	// instance has no unbounded non-negative variable (no relaxation is
	// ever needed), AlgorithmProjectAndLift otherwise.
	AlgorithmAny Algorithm = iota
	// AlgorithmSimple completes the instance's HNF lattice basis directly
	// under its own cost order, with no project-and-lift relaxation. Only
	// valid when every non-negative variable is already bounded.
	AlgorithmSimple
	// AlgorithmProjectAndLift always runs full project-and-lift.
	AlgorithmProjectAndLift
)

// DefaultOracles returns the reference LPOracle and HermiteOracle
// implementations (refsolver.NewLPSolver/NewHNFSolver) used whenever a
// caller leaves an Options' LP/HNF field nil.
func DefaultOracles() (oracle.LPOracle, oracle.HermiteOracle) {
	return refsolver.NewLPSolver(0), refsolver.NewHNFSolver()
}

// ComputeGBOptions configures ComputeGB (spec.md §6.5).
type ComputeGBOptions struct {
	// Markov, if non-nil, seeds completion instead of the instance's HNF
	// lattice basis. Expressed in the caller's original column order, the
	// same order used to build the Instance.
	Markov [][]int64

	// Truncation selects the Truncator mode; truncator.None disables it.
	Truncation truncator.Mode

	// ReducerMode selects the divisibility convention used during
	// completion.
	ReducerMode reducer.Mode

	// AutoReduceMode and AutoReduceFrequency configure periodic
	// inter-reduction during completion.
	AutoReduceMode      buchberger.AutoReduceMode
	AutoReduceFrequency int

	// ReducedBasis, if true, runs the final reduced-basis post-processing
	// pass.
	ReducedBasis bool

	// LP is used by the ModelLP and ModelIP truncation modes, and by the
	// monomial order's positivity shift when the primary cost row has a
	// negative entry. Nil uses DefaultOracles' LPOracle.
	LP oracle.LPOracle

	// Logger receives per-pair and per-pass debug events. Nil uses
	// zerolog.Nop().
	Logger *zerolog.Logger
}

// DefaultComputeGBOptions returns the instance's own HNF basis as seed,
// simple truncation, general divisibility, no mid-loop auto-reduction, and
// a final reduced-basis pass.
func DefaultComputeGBOptions() ComputeGBOptions {
	return ComputeGBOptions{
		Truncation:   truncator.Simple,
		ReducerMode:  reducer.General,
		ReducedBasis: true,
	}
}

// ProjectAndLiftOptions configures ProjectAndLift (spec.md §6.5).
type ProjectAndLiftOptions struct {
	// Truncation selects the Truncator mode used during every lift
	// iteration's completion call.
	Truncation truncator.Mode

	// Optimize, if true, interleaves an optimization attempt after every
	// lift (spec.md §4.10's solve-while-lift variant).
	Optimize bool

	// InitialSolution, if non-nil, is a caller-supplied feasible point in
	// the instance's original (pre-permutation) column order (spec.md
	// §6.5's optional initial_solution). It seeds the project-and-lift
	// state's dual_solution/primal_solutions instead of leaving them nil.
	InitialSolution []int64

	// LP and HNF are required collaborators. Nil uses DefaultOracles.
	LP  oracle.LPOracle
	HNF oracle.HermiteOracle

	// Logger receives per-lift-iteration debug events. Nil uses
	// zerolog.Nop().
	Logger *zerolog.Logger
}

// DefaultProjectAndLiftOptions returns simple truncation and no
// solve-while-lift.
func DefaultProjectAndLiftOptions() ProjectAndLiftOptions {
	return ProjectAndLiftOptions{Truncation: truncator.Simple}
}

// MarkovBasisOptions configures MarkovBasis (spec.md §6.5).
type MarkovBasisOptions struct {
	// Algorithm selects the construction strategy.
	Algorithm Algorithm

	// Truncation selects the Truncator mode.
	Truncation truncator.Mode

	// LP and HNF are required collaborators. Nil uses DefaultOracles.
	LP  oracle.LPOracle
	HNF oracle.HermiteOracle

	// Logger receives per-iteration debug events. Nil uses zerolog.Nop().
	Logger *zerolog.Logger
}

// DefaultMarkovBasisOptions returns AlgorithmAny and simple truncation.
func DefaultMarkovBasisOptions() MarkovBasisOptions {
	return MarkovBasisOptions{Truncation: truncator.Simple}
}

// OptimizeOptions configures OptimizeWith (spec.md §6.5).
type OptimizeOptions struct {
	// Order is the monomial order the basis was completed under.
	Order *order.Order

	// ReducerMode selects the divisibility convention; must match the
	// mode the basis was itself reduced under.
	ReducerMode reducer.Mode

	// Matrix is consulted only when ReducerMode is reducer.Graded.
	Matrix [][]int64

	// NonnegLen and BoundedLen are the instance's NonnegativeEnd() and
	// BoundedEnd(), needed to wrap solution as a Binomial.
	NonnegLen  int
	BoundedLen int
}
