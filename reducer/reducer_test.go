package reducer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmlangeloh/ipgb/binomial"
	"github.com/gmlangeloh/ipgb/order"
	"github.com/gmlangeloh/ipgb/reducer"
	"github.com/gmlangeloh/ipgb/supporttree"
)

func mustBinomial(t *testing.T, elem []int64) *binomial.Binomial {
	t.Helper()
	b, err := binomial.New(elem, len(elem), len(elem))
	require.NoError(t, err)
	return b
}

func lexOrder(t *testing.T, n int) *order.Order {
	t.Helper()
	costs := make([]float64, n)
	for i := range costs {
		costs[i] = 1
	}
	o, err := order.New([][]float64{costs}, n, nil, nil, nil)
	require.NoError(t, err)
	return o
}

func TestDividesSimpleIgnoresTrailingCoordinates(t *testing.T) {
	r := mustBinomial(t, []int64{1, -5})
	g := mustBinomial(t, []int64{2, 1})
	ok, err := reducer.Divides(r, g, reducer.Simple, nil, false)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDividesGeneralRequiresTrailingMatch(t *testing.T) {
	r := mustBinomial(t, []int64{1, -5})
	g := mustBinomial(t, []int64{2, 1})
	ok, err := reducer.Divides(r, g, reducer.General, nil, false)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDividesGeneralAcceptsMatchingTrailing(t *testing.T) {
	r := mustBinomial(t, []int64{1, -5})
	g := mustBinomial(t, []int64{2, -10})
	ok, err := reducer.Divides(r, g, reducer.General, nil, false)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDividesNegativeTestsLeadingTermAgainstTrailingTerm(t *testing.T) {
	r := mustBinomial(t, []int64{1, -5})
	g := mustBinomial(t, []int64{2, -10})
	ok, err := reducer.Divides(r, g, reducer.Simple, nil, true)
	require.NoError(t, err)
	assert.False(t, ok, "r's leading term (index 0) should be compared to g's trailing term, which is zero there")

	g2 := mustBinomial(t, []int64{-3, 1})
	ok2, err := reducer.Divides(r, g2, reducer.Simple, nil, true)
	require.NoError(t, err)
	assert.True(t, ok2)
}

func TestDividesGradedNeedsMatrix(t *testing.T) {
	r := mustBinomial(t, []int64{1, -1})
	g := mustBinomial(t, []int64{2, -2})
	_, err := reducer.Divides(r, g, reducer.Graded, nil, false)
	assert.ErrorIs(t, err, reducer.ErrGradedNeedsMatrix)
}

func TestDividesGradedRejectsDegreeIncrease(t *testing.T) {
	r := mustBinomial(t, []int64{1, -1})
	g := mustBinomial(t, []int64{5, -5})
	A := [][]int64{{-1, 0}}
	ok, err := reducer.Divides(r, g, reducer.Graded, A, false)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReductionFactorPositive(t *testing.T) {
	g := mustBinomial(t, []int64{6, -1})
	r := mustBinomial(t, []int64{2, -1})
	k, err := reducer.ReductionFactor(g, r, false)
	require.NoError(t, err)
	assert.Equal(t, int64(3), k)
}

func TestReductionFactorNoneReturnsError(t *testing.T) {
	g := mustBinomial(t, []int64{0, -1})
	r := mustBinomial(t, []int64{2, -1})
	_, err := reducer.ReductionFactor(g, r, false)
	assert.ErrorIs(t, err, reducer.ErrNoReductionFactor)
}

func TestReduceStepToZero(t *testing.T) {
	g := mustBinomial(t, []int64{2, -2})
	r := mustBinomial(t, []int64{1, -1})
	zero, err := reducer.ReduceStep(g, r)
	require.NoError(t, err)
	assert.True(t, zero)
	assert.True(t, g.IsZero())
}

func TestReduceFullIrreducibleWhenTreeEmpty(t *testing.T) {
	ord := lexOrder(t, 2)
	tree := supporttree.New()
	g := mustBinomial(t, []int64{1, -1})
	done, err := reducer.ReduceFull(g, tree, ord, reducer.General, nil, nil)
	require.NoError(t, err)
	assert.True(t, done)
}

func TestReduceFullReducesToZero(t *testing.T) {
	ord := lexOrder(t, 2)
	tree := supporttree.New()
	r := mustBinomial(t, []int64{1, -1})
	tree.Add(r)
	g := mustBinomial(t, []int64{3, -3})
	done, err := reducer.ReduceFull(g, tree, ord, reducer.General, nil, nil)
	require.NoError(t, err)
	assert.True(t, done)
	assert.True(t, g.IsZero())
}

func TestReduceFullSkipsExcludedBinomial(t *testing.T) {
	ord := lexOrder(t, 2)
	tree := supporttree.New()
	g := mustBinomial(t, []int64{3, -3})
	tree.Add(g)
	done, err := reducer.ReduceFull(g, tree, ord, reducer.General, nil, g)
	require.NoError(t, err)
	assert.True(t, done)
	assert.False(t, g.IsZero())
}
