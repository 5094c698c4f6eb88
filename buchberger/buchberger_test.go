package buchberger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmlangeloh/ipgb/binomial"
	"github.com/gmlangeloh/ipgb/buchberger"
	"github.com/gmlangeloh/ipgb/order"
)

func mustBinomial(t *testing.T, elem []int64) *binomial.Binomial {
	t.Helper()
	b, err := binomial.New(elem, len(elem), len(elem))
	require.NoError(t, err)
	return b
}

func weightOrder(t *testing.T, weights ...float64) *order.Order {
	t.Helper()
	o, err := order.New([][]float64{weights}, len(weights), nil, nil, nil)
	require.NoError(t, err)
	return o
}

func elements(set interface{ All() []*binomial.Binomial }) [][]int64 {
	out := make([][]int64, 0)
	for _, b := range set.All() {
		out = append(out, append([]int64(nil), b.Element()...))
	}
	return out
}

func TestCompleteSingleGeneratorIsItsOwnBasis(t *testing.T) {
	ord := weightOrder(t, 3, 2)
	g := mustBinomial(t, []int64{1, -1})
	set, err := buchberger.Complete([]*binomial.Binomial{g}, ord, true, nil, buchberger.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 1, set.Len())
	got, err := set.At(0)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, -1}, got.Element())
}

func TestCompleteGCDCriterionKeepsDisjointSeedsUnmerged(t *testing.T) {
	ord := weightOrder(t, 4, 3, 2, 1)
	g1 := mustBinomial(t, []int64{1, 0, -1, 0})
	g2 := mustBinomial(t, []int64{0, 1, 0, -1})
	set, err := buchberger.Complete([]*binomial.Binomial{g1, g2}, ord, true, nil, buchberger.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())
	assert.ElementsMatch(t, [][]int64{{1, 0, -1, 0}, {0, 1, 0, -1}}, elements(set))
}

func TestCompleteProducesThirdGeneratorAndRemovesRedundantSeed(t *testing.T) {
	// g1 and g2 share leading variable 0, so the GCD criterion doesn't
	// apply to the seed pair; their S-binomial is (0,1,-1), which has no
	// reducer (neither g1 nor g2's leading term, both x0, divides it), so
	// it joins the basis. Both further pairs against it are then GCD-
	// discarded (disjoint leading supports). g1's leading term (x0) is
	// then a multiple of g2's identical leading term, so minimal-basis
	// post-processing removes g1.
	ord := weightOrder(t, 3, 2, 1)
	g1 := mustBinomial(t, []int64{1, -1, 0})
	g2 := mustBinomial(t, []int64{1, 0, -1})
	set, err := buchberger.Complete([]*binomial.Binomial{g1, g2}, ord, true, nil, buchberger.DefaultOptions())
	require.NoError(t, err)
	assert.ElementsMatch(t, [][]int64{{1, 0, -1}, {0, 1, -1}}, elements(set))
}

func TestCompleteRejectsNilOrder(t *testing.T) {
	g := mustBinomial(t, []int64{1, -1})
	_, err := buchberger.Complete([]*binomial.Binomial{g}, nil, true, nil, buchberger.DefaultOptions())
	assert.ErrorIs(t, err, buchberger.ErrNilOrder)
}

func TestCompleteRejectsEmptySeed(t *testing.T) {
	ord := weightOrder(t, 3, 2)
	_, err := buchberger.Complete(nil, ord, true, nil, buchberger.DefaultOptions())
	assert.ErrorIs(t, err, buchberger.ErrEmptySeed)
}
