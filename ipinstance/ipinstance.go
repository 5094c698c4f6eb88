package ipinstance

import (
	"math"

	"github.com/gmlangeloh/ipgb/oracle"
)

// Unbounded is the u[] sentinel meaning "no explicit upper bound".
const Unbounded = int64(math.MaxInt64)

// Relation distinguishes an equality row from one requiring a slack.
type Relation int

const (
	// Eq marks a row already in A x = b form.
	Eq Relation = iota
	// Le marks a row in A x <= b form, needing a slack variable.
	Le
)

// Instance is the normalized IPInstance of spec.md §3.
type Instance struct {
	A      [][]int64
	b      []int64
	C      [][]int64
	u      []int64
	nonneg []bool

	bounded []bool

	permutation []int // permutation[newIndex] = originalIndex (both over all NumVars() variables, slacks included)
	inverse     []int

	boundedEnd     int
	nonnegativeEnd int

	hnfBasis      [][]int64
	rank          int
	fiberSolution []int64
}

// New normalizes (A, b, C, u, nonneg) into an Instance (spec.md §4.11).
// relations classifies each row of A; nil means every row is already an
// equality. flipObjective negates every row of C, for when the caller's
// optimization direction disagrees with the instance's.
func New(A [][]int64, b []int64, C [][]int64, u []int64, nonneg []bool, relations []Relation, flipObjective bool, lp oracle.LPOracle, hnf oracle.HermiteOracle) (*Instance, error) {
	m := len(A)
	n := 0
	if m > 0 {
		n = len(A[0])
	}
	for _, row := range A {
		if len(row) != n {
			return nil, ErrDimensionMismatch
		}
	}
	if len(b) != m {
		return nil, ErrDimensionMismatch
	}
	if len(u) != 0 && len(u) != n {
		return nil, ErrDimensionMismatch
	}
	if len(nonneg) != 0 && len(nonneg) != n {
		return nil, ErrDimensionMismatch
	}
	if relations != nil && len(relations) != m {
		return nil, ErrDimensionMismatch
	}
	for _, row := range C {
		if len(row) != n {
			return nil, ErrDimensionMismatch
		}
	}

	origA, origB, origC, origU, origNonneg := cloneInputs(A, b, C, u, nonneg, n)

	// Step 1: slack rows for every Le relation.
	for r := 0; r < m; r++ {
		if relations != nil && relations[r] != Le {
			continue
		}
		col := len(origA[0])
		for i := range origA {
			origA[i] = append(origA[i], 0)
		}
		origA[r][col] = 1
		for i := range origC {
			origC[i] = append(origC[i], 0)
		}
		origU = append(origU, Unbounded)
		origNonneg = append(origNonneg, true)
	}

	// Step 2: equality rows for finite upper bounds, over the ORIGINAL
	// (pre-slack) variable indices only; slacks introduced in step 1 are
	// always unbounded and skip this step.
	for j := 0; j < n; j++ {
		if origU[j] == Unbounded {
			continue
		}
		newRow := make([]int64, len(origA[0])+1)
		newRow[j] = 1
		newCol := len(newRow) - 1
		newRow[newCol] = 1
		for i := range origA {
			origA[i] = append(origA[i], 0)
		}
		origA = append(origA, newRow)
		origB = append(origB, origU[j])
		for i := range origC {
			origC[i] = append(origC[i], 0)
		}
		origU = append(origU, Unbounded)
		origNonneg = append(origNonneg, true)
	}

	// Step 3: objective direction.
	if flipObjective {
		for i := range origC {
			for j := range origC[i] {
				origC[i][j] = -origC[i][j]
			}
		}
	}

	totalVars := len(origA[0])

	// Step 4: LP relaxation feasibility and per-variable boundedness.
	varType := make([]oracle.VarType, totalVars)
	for i := range varType {
		varType[i] = oracle.Real
	}
	model, err := lp.JumpModel(origA, origB, origC, origU, origNonneg, varType)
	if err != nil {
		return nil, err
	}
	feasible, err := lp.IsFeasible(model)
	if err != nil {
		return nil, err
	}
	if !feasible {
		return nil, ErrInfeasible
	}
	bounded := make([]bool, totalVars)
	for j := 0; j < totalVars; j++ {
		bounded[j], err = lp.IsBounded(model, j)
		if err != nil {
			return nil, err
		}
	}

	// Step 5: stable permutation by (bounded&&nonneg, !bounded&&nonneg, !nonneg).
	category := func(j int) int {
		switch {
		case bounded[j] && origNonneg[j]:
			return 0
		case !bounded[j] && origNonneg[j]:
			return 1
		default:
			return 2
		}
	}
	permutation := make([]int, 0, totalVars)
	for cat := 0; cat < 3; cat++ {
		for j := 0; j < totalVars; j++ {
			if category(j) == cat {
				permutation = append(permutation, j)
			}
		}
	}
	inverse := make([]int, totalVars)
	for newIdx, origIdx := range permutation {
		inverse[origIdx] = newIdx
	}

	permA := make([][]int64, len(origA))
	for r := range origA {
		permA[r] = make([]int64, totalVars)
		for newIdx, origIdx := range permutation {
			permA[r][newIdx] = origA[r][origIdx]
		}
	}
	permC := make([][]int64, len(origC))
	for r := range origC {
		permC[r] = make([]int64, totalVars)
		for newIdx, origIdx := range permutation {
			permC[r][newIdx] = origC[r][origIdx]
		}
	}
	permU := make([]int64, totalVars)
	permNonneg := make([]bool, totalVars)
	permBounded := make([]bool, totalVars)
	for newIdx, origIdx := range permutation {
		permU[newIdx] = origU[origIdx]
		permNonneg[newIdx] = origNonneg[origIdx]
		permBounded[newIdx] = bounded[origIdx]
	}

	boundedEnd, nonnegativeEnd := 0, 0
	for _, origIdx := range permutation {
		switch category(origIdx) {
		case 0:
			boundedEnd++
			nonnegativeEnd++
		case 1:
			nonnegativeEnd++
		}
	}

	// Step 6: HNF basis of ker(A_permuted), integer fiber solution.
	hnfBasis, rank, err := hnf.HNFLatticeBasis(permA)
	if err != nil {
		return nil, err
	}
	fiberSolution, ok, err := hnf.Solve(permA, origB)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInfeasible
	}

	return &Instance{
		A:              permA,
		b:              origB,
		C:              permC,
		u:              permU,
		nonneg:         permNonneg,
		bounded:        permBounded,
		permutation:    permutation,
		inverse:        inverse,
		boundedEnd:     boundedEnd,
		nonnegativeEnd: nonnegativeEnd,
		hnfBasis:       hnfBasis,
		rank:           rank,
		fiberSolution:  fiberSolution,
	}, nil
}

func cloneInputs(A [][]int64, b []int64, C [][]int64, u []int64, nonneg []bool, n int) ([][]int64, []int64, [][]int64, []int64, []bool) {
	outA := make([][]int64, len(A))
	for i, row := range A {
		outA[i] = append([]int64(nil), row...)
	}
	outB := append([]int64(nil), b...)
	outC := make([][]int64, len(C))
	for i, row := range C {
		outC[i] = append([]int64(nil), row...)
	}
	outU := make([]int64, n)
	for i := range outU {
		outU[i] = Unbounded
	}
	copy(outU, u)
	outNonneg := make([]bool, n)
	for i := range outNonneg {
		outNonneg[i] = true
	}
	copy(outNonneg, nonneg)
	return outA, outB, outC, outU, outNonneg
}

// NumVars returns the number of variables after normalization.
func (inst *Instance) NumVars() int { return len(inst.permutation) }

// BoundedEnd returns the exclusive end of the bounded-nonneg region.
func (inst *Instance) BoundedEnd() int { return inst.boundedEnd }

// NonnegativeEnd returns the exclusive end of the nonneg region (bounded + unbounded nonneg).
func (inst *Instance) NonnegativeEnd() int { return inst.nonnegativeEnd }

// Matrix returns the normalized, permuted constraint matrix.
func (inst *Instance) Matrix() [][]int64 { return inst.A }

// RHS returns the normalized right-hand side.
func (inst *Instance) RHS() []int64 { return inst.b }

// Cost returns the normalized, permuted objective rows.
func (inst *Instance) Cost() [][]int64 { return inst.C }

// UpperBounds returns the normalized, permuted upper bounds.
func (inst *Instance) UpperBounds() []int64 { return inst.u }

// Nonnegative returns the normalized, permuted non-negativity pattern.
func (inst *Instance) Nonnegative() []bool { return inst.nonneg }

// Bounded returns the normalized, permuted boundedness flags.
func (inst *Instance) Bounded() []bool { return inst.bounded }

// HNFBasis returns the row basis of ker(A) computed during normalization.
func (inst *Instance) HNFBasis() [][]int64 { return inst.hnfBasis }

// Rank returns the rank of the HNF basis (its row count, i.e. the nullity of A).
func (inst *Instance) Rank() int { return inst.rank }

// FiberSolution returns the cached integer solution to A x = b.
func (inst *Instance) FiberSolution() []int64 { return inst.fiberSolution }

// ToPermuted maps an original-index vector into the normalized, permuted
// coordinate space.
func (inst *Instance) ToPermuted(v []int64) ([]int64, error) {
	if len(v) != len(inst.inverse) {
		return nil, ErrDimensionMismatch
	}
	out := make([]int64, len(v))
	for origIdx, newIdx := range inst.inverse {
		out[newIdx] = v[origIdx]
	}
	return out, nil
}

// ToOriginal maps a normalized, permuted vector back to original-index order.
func (inst *Instance) ToOriginal(v []int64) ([]int64, error) {
	if len(v) != len(inst.permutation) {
		return nil, ErrDimensionMismatch
	}
	out := make([]int64, len(v))
	for newIdx, origIdx := range inst.permutation {
		out[origIdx] = v[newIdx]
	}
	return out, nil
}
