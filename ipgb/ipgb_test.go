package ipgb_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmlangeloh/ipgb/ipgb"
	"github.com/gmlangeloh/ipgb/ipinstance"
	"github.com/gmlangeloh/ipgb/oracle"
	"github.com/gmlangeloh/ipgb/order"
	"github.com/gmlangeloh/ipgb/reducer"
	"github.com/gmlangeloh/ipgb/truncator"
)

// oneHotLP always reports every variable unbounded, resolving an
// unboundedness query for index m with the one-hot ray e_m. Mirrors
// projectlift_test.go's fake of the same name.
type oneHotLP struct{ n int }

func (f *oneHotLP) PositiveRowSpan(A [][]int64, b []int64) ([]*big.Rat, error) { return nil, nil }
func (f *oneHotLP) JumpModel(A [][]int64, b []int64, C [][]int64, u []int64, nonneg []bool, varType []oracle.VarType) (oracle.Model, error) {
	return "model", nil
}
func (f *oneHotLP) IsFeasible(m oracle.Model) (bool, error)              { return true, nil }
func (f *oneHotLP) IsBounded(m oracle.Model, variable int) (bool, error) { return false, nil }
func (f *oneHotLP) SetNormalizedRHS(m oracle.Model, newRHS []int64) error { return nil }
func (f *oneHotLP) UnboundednessIPModel(A [][]int64, nonneg []bool, i int) (oracle.Model, error) {
	return i, nil
}
func (f *oneHotLP) OptimalBasis(m oracle.Model) ([]bool, error) { return nil, nil }
func (f *oneHotLP) Solve(m oracle.Model) ([]int64, bool, error) {
	ray := make([]int64, f.n)
	ray[m.(int)] = 1
	return ray, true, nil
}

// alwaysBoundedLP reports every variable bounded, so an instance built with
// it never needs project-and-lift's relaxation.
type alwaysBoundedLP struct{}

func (f *alwaysBoundedLP) PositiveRowSpan(A [][]int64, b []int64) ([]*big.Rat, error) { return nil, nil }
func (f *alwaysBoundedLP) JumpModel(A [][]int64, b []int64, C [][]int64, u []int64, nonneg []bool, varType []oracle.VarType) (oracle.Model, error) {
	return "model", nil
}
func (f *alwaysBoundedLP) IsFeasible(m oracle.Model) (bool, error)              { return true, nil }
func (f *alwaysBoundedLP) IsBounded(m oracle.Model, variable int) (bool, error) { return true, nil }
func (f *alwaysBoundedLP) SetNormalizedRHS(m oracle.Model, newRHS []int64) error { return nil }
func (f *alwaysBoundedLP) UnboundednessIPModel(A [][]int64, nonneg []bool, i int) (oracle.Model, error) {
	return nil, nil
}
func (f *alwaysBoundedLP) OptimalBasis(m oracle.Model) ([]bool, error) { return nil, nil }
func (f *alwaysBoundedLP) Solve(m oracle.Model) ([]int64, bool, error) {
	return nil, false, nil
}

// fixedHNF reports a caller-supplied basis and rank regardless of A.
type fixedHNF struct {
	basis [][]int64
	rank  int
}

func (h *fixedHNF) HNFLatticeBasis(A [][]int64) ([][]int64, int, error) {
	out := make([][]int64, len(h.basis))
	for i, row := range h.basis {
		out[i] = append([]int64(nil), row...)
	}
	return out, h.rank, nil
}
func (h *fixedHNF) NormalizeHNF(H [][]int64) [][]int64 { return H }
func (h *fixedHNF) Solve(A [][]int64, b []int64) ([]int64, bool, error) {
	n := 0
	if len(A) > 0 {
		n = len(A[0])
	}
	return make([]int64, n), true, nil
}

func elements(rows [][]int64) [][]int64 { return rows }

func TestComputeGBRejectsNilInstance(t *testing.T) {
	_, err := ipgb.ComputeGB(context.Background(), nil, ipgb.DefaultComputeGBOptions())
	assert.ErrorIs(t, err, ipgb.ErrInputInvalid)
}

func TestProjectAndLiftRejectsNilInstance(t *testing.T) {
	_, _, _, _, err := ipgb.ProjectAndLift(context.Background(), nil, ipgb.DefaultProjectAndLiftOptions())
	assert.ErrorIs(t, err, ipgb.ErrInputInvalid)
}

func TestMarkovBasisRejectsNilInstance(t *testing.T) {
	_, err := ipgb.MarkovBasis(context.Background(), nil, ipgb.DefaultMarkovBasisOptions())
	assert.ErrorIs(t, err, ipgb.ErrInputInvalid)
}

func TestOptimizeWithRejectsNilOrder(t *testing.T) {
	_, err := ipgb.OptimizeWith([]int64{1, 0}, nil, ipgb.OptimizeOptions{})
	assert.ErrorIs(t, err, ipgb.ErrInputInvalid)
}

func TestComputeGBRejectsCanceledContext(t *testing.T) {
	lp := &oneHotLP{n: 2}
	hnf := &fixedHNF{basis: [][]int64{{1, 1}}, rank: 1}
	instance, err := ipinstance.New([][]int64{{1, -1}}, []int64{0}, nil, nil, []bool{true, true}, nil, false, lp, hnf)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ipgb.ComputeGB(ctx, instance, ipgb.DefaultComputeGBOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProjectAndLiftLiftsEveryVariable(t *testing.T) {
	lp := &oneHotLP{n: 2}
	hnf := &fixedHNF{basis: [][]int64{{1, 1}}, rank: 1}
	instance, err := ipinstance.New([][]int64{{1, -1}}, []int64{0}, nil, nil, []bool{true, true}, nil, false, lp, hnf)
	require.NoError(t, err)

	opts := ipgb.DefaultProjectAndLiftOptions()
	opts.Truncation = truncator.None
	opts.LP, opts.HNF = lp, hnf

	markov, hasOptimum, _, _, err := ipgb.ProjectAndLift(context.Background(), instance, opts)
	require.NoError(t, err)
	assert.False(t, hasOptimum)
	assert.ElementsMatch(t, [][]int64{{1, 1}, {1, 0}, {0, 1}}, elements(markov))
}

func TestMarkovBasisProjectAndLiftMatchesProjectAndLift(t *testing.T) {
	lp := &oneHotLP{n: 2}
	hnf := &fixedHNF{basis: [][]int64{{1, 1}}, rank: 1}
	instance, err := ipinstance.New([][]int64{{1, -1}}, []int64{0}, nil, nil, []bool{true, true}, nil, false, lp, hnf)
	require.NoError(t, err)

	opts := ipgb.DefaultMarkovBasisOptions()
	opts.Algorithm = ipgb.AlgorithmProjectAndLift
	opts.Truncation = truncator.None
	opts.LP, opts.HNF = lp, hnf

	markov, err := ipgb.MarkovBasis(context.Background(), instance, opts)
	require.NoError(t, err)
	assert.ElementsMatch(t, [][]int64{{1, 1}, {1, 0}, {0, 1}}, elements(markov))
}

func TestMarkovBasisAnyChoosesProjectAndLiftWhenUnbounded(t *testing.T) {
	lp := &oneHotLP{n: 2}
	hnf := &fixedHNF{basis: [][]int64{{1, 1}}, rank: 1}
	instance, err := ipinstance.New([][]int64{{1, -1}}, []int64{0}, nil, nil, []bool{true, true}, nil, false, lp, hnf)
	require.NoError(t, err)

	opts := ipgb.DefaultMarkovBasisOptions()
	opts.Truncation = truncator.None
	opts.LP, opts.HNF = lp, hnf

	markov, err := ipgb.MarkovBasis(context.Background(), instance, opts)
	require.NoError(t, err)
	assert.ElementsMatch(t, [][]int64{{1, 1}, {1, 0}, {0, 1}}, elements(markov))
}

func TestComputeGBCompletesBoundedInstanceFromItsOwnHNFBasis(t *testing.T) {
	lp := &alwaysBoundedLP{}
	hnf := &fixedHNF{basis: [][]int64{{1, -1}}, rank: 1}
	instance, err := ipinstance.New([][]int64{{1, 1}}, []int64{2}, [][]int64{{1, 0}}, nil, []bool{true, true}, nil, false, lp, hnf)
	require.NoError(t, err)
	require.Equal(t, instance.NonnegativeEnd(), instance.BoundedEnd())

	gbOpts := ipgb.DefaultComputeGBOptions()
	gbOpts.LP = lp

	basis, err := ipgb.ComputeGB(context.Background(), instance, gbOpts)
	require.NoError(t, err)
	require.Len(t, basis, 1)
	assert.Equal(t, []int64{1, -1}, basis[0])
}

func TestMarkovBasisSimpleMatchesComputeGB(t *testing.T) {
	lp := &alwaysBoundedLP{}
	hnf := &fixedHNF{basis: [][]int64{{1, -1}}, rank: 1}
	instance, err := ipinstance.New([][]int64{{1, 1}}, []int64{2}, [][]int64{{1, 0}}, nil, []bool{true, true}, nil, false, lp, hnf)
	require.NoError(t, err)

	opts := ipgb.DefaultMarkovBasisOptions()
	opts.Algorithm = ipgb.AlgorithmSimple
	opts.LP = lp

	basis, err := ipgb.MarkovBasis(context.Background(), instance, opts)
	require.NoError(t, err)
	require.Len(t, basis, 1)
	assert.Equal(t, []int64{1, -1}, basis[0])
}

func TestMarkovBasisSimpleRejectsInstanceWithUnboundedNonnegativeVariable(t *testing.T) {
	lp := &oneHotLP{n: 2}
	hnf := &fixedHNF{basis: [][]int64{{1, 1}}, rank: 1}
	instance, err := ipinstance.New([][]int64{{1, -1}}, []int64{0}, nil, nil, []bool{true, true}, nil, false, lp, hnf)
	require.NoError(t, err)

	opts := ipgb.DefaultMarkovBasisOptions()
	opts.Algorithm = ipgb.AlgorithmSimple
	opts.LP = lp

	_, err = ipgb.MarkovBasis(context.Background(), instance, opts)
	assert.ErrorIs(t, err, ipgb.ErrInputInvalid)
}

func TestOptimizeWithReducesMonomialThroughGeneratorRepeatedly(t *testing.T) {
	ord, err := order.New([][]float64{{3, 2}}, 2, nil, nil, nil)
	require.NoError(t, err)

	opts := ipgb.OptimizeOptions{
		Order:       ord,
		ReducerMode: reducer.Simple,
		NonnegLen:   2,
		BoundedLen:  2,
	}

	// x1^5 x2^3 reduced by the relation x1 - x2 (direction (1,-1)): every
	// unit of x1 converts to a unit of x2, leaving x1^0 x2^8.
	got, err := ipgb.OptimizeWith([]int64{5, 3}, [][]int64{{1, -1}}, opts)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 8}, got)
}

func TestOptimizeWithLeavesSolutionUnchangedWhenBasisIsEmpty(t *testing.T) {
	ord, err := order.New([][]float64{{3, 2}}, 2, nil, nil, nil)
	require.NoError(t, err)

	opts := ipgb.OptimizeOptions{
		Order:       ord,
		ReducerMode: reducer.Simple,
		NonnegLen:   2,
		BoundedLen:  2,
	}

	got, err := ipgb.OptimizeWith([]int64{5, 3}, nil, opts)
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 3}, got)
}

func TestOptimizeWithReturnsZeroSolutionUnchanged(t *testing.T) {
	ord, err := order.New([][]float64{{3, 2}}, 2, nil, nil, nil)
	require.NoError(t, err)

	opts := ipgb.OptimizeOptions{Order: ord, ReducerMode: reducer.Simple, NonnegLen: 2, BoundedLen: 2}

	got, err := ipgb.OptimizeWith([]int64{0, 0}, [][]int64{{1, -1}}, opts)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0}, got)
}
