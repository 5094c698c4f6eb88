package oracle

import "math/big"

// VarType distinguishes a model's variable domain (spec.md §6.1).
type VarType int

const (
	// Real marks a continuous LP-relaxation variable.
	Real VarType = iota
	// Integer marks an integer-constrained variable.
	Integer
)

// Model is an opaque handle to a built LP/IP model. Concrete LPOracle
// implementations define their own backing type; callers never inspect it,
// only pass it back into the same oracle that produced it.
type Model interface{}

// LPOracle is the external collaborator of spec.md §6.1. Every call receives
// its matrices explicitly; no cross-call state is retained by the core
// (spec.md §5).
type LPOracle interface {
	// PositiveRowSpan solves max Σxⱼ s.t. Ax=b, x≥0 and returns Aᵀ·dual, a
	// strictly-positive-on-the-feasible-lattice row-span vector used by
	// order.New to repair a cost row with negative entries (spec.md §4.3).
	PositiveRowSpan(A [][]int64, b []int64) ([]*big.Rat, error)

	// JumpModel builds an LP/IP feasibility (or optimization) problem over
	// A x {=,≤} b with bounds u, the given non-negativity pattern, and a
	// per-variable VarType.
	JumpModel(A [][]int64, b []int64, C [][]int64, u []int64, nonneg []bool, varType []VarType) (Model, error)

	// IsFeasible reports whether m currently has a feasible point.
	IsFeasible(m Model) (bool, error)

	// IsBounded reports whether maximizing variable over m is bounded from
	// above.
	IsBounded(m Model, variable int) (bool, error)

	// SetNormalizedRHS mutates m's right-hand side in place, letting
	// Truncator's Model mode reuse one prebuilt feasibility model across
	// many queries (spec.md §4.8).
	SetNormalizedRHS(m Model, newRHS []int64) error

	// UnboundednessIPModel builds the ray-search IP: find u ∈ ker(A),
	// uᵢ ≥ 1, u_j ≥ 0 for j ∈ nonneg, j ≠ i (spec.md §4.10 step 2).
	UnboundednessIPModel(A [][]int64, nonneg []bool, i int) (Model, error)

	// OptimalBasis reports, after solving m, which variables are basic.
	OptimalBasis(m Model) ([]bool, error)

	// Solve returns an integer witness vector for m (the ray or optimal
	// point the model was built to certify), or ok=false if infeasible.
	// This supplies the vector half of IsFeasible's boolean half, needed by
	// project-and-lift to read back the actual ray (spec.md §4.10 step 2-3).
	Solve(m Model) (x []int64, ok bool, err error)
}

// HermiteOracle is the external collaborator of spec.md §6.2.
type HermiteOracle interface {
	// HNFLatticeBasis returns a row basis of ker(A) in upper Hermite normal
	// form, and the rank of that basis.
	HNFLatticeBasis(A [][]int64) (basis [][]int64, rank int, err error)

	// NormalizeHNF makes entries above each pivot non-positive and strictly
	// smaller in magnitude than the pivot, in place, also returning H for
	// call-site chaining.
	NormalizeHNF(H [][]int64) [][]int64

	// Solve returns an integer x with A x = b, if one exists.
	Solve(A [][]int64, b []int64) (x []int64, ok bool, err error)
}
