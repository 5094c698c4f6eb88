package ipinstance_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmlangeloh/ipgb/ipinstance"
	"github.com/gmlangeloh/ipgb/oracle"
)

// fakeLP reports every variable with index < boundedUpTo as bounded, and is
// always feasible.
type fakeLP struct {
	boundedUpTo int
}

func (f *fakeLP) PositiveRowSpan(A [][]int64, b []int64) ([]*big.Rat, error) { return nil, nil }
func (f *fakeLP) JumpModel(A [][]int64, b []int64, C [][]int64, u []int64, nonneg []bool, varType []oracle.VarType) (oracle.Model, error) {
	return len(A[0]), nil
}
func (f *fakeLP) IsFeasible(m oracle.Model) (bool, error) { return true, nil }
func (f *fakeLP) IsBounded(m oracle.Model, variable int) (bool, error) {
	return variable < f.boundedUpTo, nil
}
func (f *fakeLP) SetNormalizedRHS(m oracle.Model, newRHS []int64) error { return nil }
func (f *fakeLP) UnboundednessIPModel(A [][]int64, nonneg []bool, i int) (oracle.Model, error) {
	return nil, nil
}
func (f *fakeLP) OptimalBasis(m oracle.Model) ([]bool, error)          { return nil, nil }
func (f *fakeLP) Solve(m oracle.Model) ([]int64, bool, error)          { return nil, true, nil }

type infeasibleLP struct{ fakeLP }

func (f *infeasibleLP) IsFeasible(m oracle.Model) (bool, error) { return false, nil }

type fakeHNF struct{}

func (h *fakeHNF) HNFLatticeBasis(A [][]int64) ([][]int64, int, error) {
	n := 0
	if len(A) > 0 {
		n = len(A[0])
	}
	basis := [][]int64{make([]int64, n)}
	return basis, 1, nil
}
func (h *fakeHNF) NormalizeHNF(H [][]int64) [][]int64 { return H }
func (h *fakeHNF) Solve(A [][]int64, b []int64) ([]int64, bool, error) {
	n := 0
	if len(A) > 0 {
		n = len(A[0])
	}
	return make([]int64, n), true, nil
}

func TestNewNormalizesUpperBoundAndSlack(t *testing.T) {
	A := [][]int64{{1, 1}}
	b := []int64{5}
	u := []int64{3, ipinstance.Unbounded}
	nonneg := []bool{true, true}
	lp := &fakeLP{boundedUpTo: 1}
	inst, err := ipinstance.New(A, b, nil, u, nonneg, []ipinstance.Relation{ipinstance.Le}, false, lp, &fakeHNF{})
	require.NoError(t, err)
	// original 2 vars + 1 slack (step 1) + 1 bound-slack for x0 (step 2) = 4.
	assert.Equal(t, 4, inst.NumVars())
	assert.LessOrEqual(t, inst.BoundedEnd(), inst.NonnegativeEnd())
	assert.LessOrEqual(t, inst.NonnegativeEnd(), inst.NumVars())
}

func TestNewRoundTripsPermutation(t *testing.T) {
	A := [][]int64{{1, 1, 0}}
	b := []int64{2}
	nonneg := []bool{true, false, true}
	lp := &fakeLP{boundedUpTo: 0}
	inst, err := ipinstance.New(A, b, nil, nil, nonneg, nil, false, lp, &fakeHNF{})
	require.NoError(t, err)
	orig := []int64{7, -3, 9}
	permuted, err := inst.ToPermuted(orig)
	require.NoError(t, err)
	back, err := inst.ToOriginal(permuted)
	require.NoError(t, err)
	assert.Equal(t, orig, back)
}

func TestNewRejectsInfeasibleRelaxation(t *testing.T) {
	A := [][]int64{{1}}
	b := []int64{1}
	_, err := ipinstance.New(A, b, nil, nil, nil, nil, false, &infeasibleLP{}, &fakeHNF{})
	assert.ErrorIs(t, err, ipinstance.ErrInfeasible)
}

func TestNewRejectsDimensionMismatch(t *testing.T) {
	A := [][]int64{{1, 1}}
	b := []int64{1, 2}
	_, err := ipinstance.New(A, b, nil, nil, nil, nil, false, &fakeLP{}, &fakeHNF{})
	assert.ErrorIs(t, err, ipinstance.ErrDimensionMismatch)
}

func TestNewFlipsObjectiveDirection(t *testing.T) {
	A := [][]int64{{1, 1}}
	b := []int64{2}
	C := [][]int64{{3, -4}}
	inst, err := ipinstance.New(A, b, C, nil, nil, nil, true, &fakeLP{}, &fakeHNF{})
	require.NoError(t, err)
	got := inst.Cost()
	require.Len(t, got, 1)
	// identity permutation since both vars share the same category here
	assert.ElementsMatch(t, []int64{-3, 4}, got[0])
}
