package binomialset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmlangeloh/ipgb/binomial"
	"github.com/gmlangeloh/ipgb/binomialset"
	"github.com/gmlangeloh/ipgb/order"
)

func newOrder(t *testing.T, n int) *order.Order {
	t.Helper()
	costs := make([]float64, n)
	for i := range costs {
		costs[i] = 1
	}
	o, err := order.New([][]float64{costs}, n, nil, nil, nil)
	require.NoError(t, err)
	return o
}

func mustBinomial(t *testing.T, elem []int64) *binomial.Binomial {
	t.Helper()
	b, err := binomial.New(elem, len(elem), len(elem))
	require.NoError(t, err)
	return b
}

func TestPushRejectsUnorientedBinomial(t *testing.T) {
	o := newOrder(t, 2)
	s := binomialset.New(o, true)
	g := mustBinomial(t, []int64{-1, 0})
	err := s.Push(g)
	assert.ErrorIs(t, err, binomialset.ErrNotOriented)
}

func TestPushAndAt(t *testing.T) {
	o := newOrder(t, 2)
	s := binomialset.New(o, true)
	g := mustBinomial(t, []int64{1, -1})
	require.NoError(t, s.Push(g))
	assert.Equal(t, 1, s.Len())
	got, err := s.At(0)
	require.NoError(t, err)
	assert.Same(t, g, got)

	pos, err := s.PositiveSupportAt(0)
	require.NoError(t, err)
	assert.True(t, pos.Get(0))
}

func TestDeleteAtPreservesOrderAndTree(t *testing.T) {
	o := newOrder(t, 2)
	s := binomialset.New(o, true)
	g1 := mustBinomial(t, []int64{1, 0})
	g2 := mustBinomial(t, []int64{0, 1})
	require.NoError(t, s.Push(g1))
	require.NoError(t, s.Push(g2))

	require.NoError(t, s.DeleteAt(0))
	assert.Equal(t, 1, s.Len())
	got, err := s.At(0)
	require.NoError(t, err)
	assert.Same(t, g2, got)
}

func TestDeleteAtOutOfRange(t *testing.T) {
	o := newOrder(t, 2)
	s := binomialset.New(o, true)
	assert.ErrorIs(t, s.DeleteAt(0), binomialset.ErrOutOfRange)
}

func TestAllReturnsSnapshot(t *testing.T) {
	o := newOrder(t, 1)
	s := binomialset.New(o, true)
	g := mustBinomial(t, []int64{1})
	require.NoError(t, s.Push(g))
	all := s.All()
	require.Len(t, all, 1)
	assert.Same(t, g, all[0])
}
