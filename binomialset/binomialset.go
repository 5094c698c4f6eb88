package binomialset

import (
	"github.com/gmlangeloh/ipgb/binomial"
	"github.com/gmlangeloh/ipgb/bitset"
	"github.com/gmlangeloh/ipgb/order"
	"github.com/gmlangeloh/ipgb/supporttree"
)

// Set is the BinomialSet of spec.md §4.5.
type Set struct {
	items []*binomial.Binomial
	pos   []*bitset.Set
	neg   []*bitset.Set

	ord          *order.Order
	tree         *supporttree.Tree
	minimization bool
}

// New returns an empty Set sharing ord (by reference: the order may be
// mutated mid-lift to change the objective, spec.md §9) with the given
// orientation convention.
func New(ord *order.Order, minimization bool) *Set {
	return &Set{
		ord:          ord,
		tree:         supporttree.New(),
		minimization: minimization,
	}
}

// Order returns the shared MonomialOrder.
func (s *Set) Order() *order.Order { return s.ord }

// ReductionTree returns the co-owned SupportTree.
func (s *Set) ReductionTree() *supporttree.Tree { return s.tree }

// Minimization reports the orientation convention.
func (s *Set) Minimization() bool { return s.minimization }

// Len returns the number of binomials currently in the set.
func (s *Set) Len() int { return len(s.items) }

// At returns the i-th binomial.
func (s *Set) At(i int) (*binomial.Binomial, error) {
	if i < 0 || i >= len(s.items) {
		return nil, ErrOutOfRange
	}
	return s.items[i], nil
}

// PositiveSupportAt returns the cached positive support of the i-th binomial.
func (s *Set) PositiveSupportAt(i int) (*bitset.Set, error) {
	if i < 0 || i >= len(s.pos) {
		return nil, ErrOutOfRange
	}
	return s.pos[i], nil
}

// NegativeSupportAt returns the cached negative support of the i-th binomial.
func (s *Set) NegativeSupportAt(i int) (*bitset.Set, error) {
	if i < 0 || i >= len(s.neg) {
		return nil, ErrOutOfRange
	}
	return s.neg[i], nil
}

// Push appends g to the sequence, to the support tree, and snapshots its
// supports, verifying g is oriented under the set's order (spec.md §3).
func (s *Set) Push(g *binomial.Binomial) error {
	inverted, err := s.ord.IsInverted(g.Element())
	if err != nil {
		return err
	}
	if inverted {
		return ErrNotOriented
	}
	s.items = append(s.items, g)
	s.pos = append(s.pos, g.PositiveSupport())
	s.neg = append(s.neg, g.NegativeSupport())
	s.tree.Add(g)
	return nil
}

// DeleteAt removes the i-th binomial from the sequence, the support tree,
// and the cached support slices, preserving index correspondence by
// shifting every later element down by one.
func (s *Set) DeleteAt(i int) error {
	if i < 0 || i >= len(s.items) {
		return ErrOutOfRange
	}
	g := s.items[i]
	if err := s.tree.Remove(g); err != nil {
		return err
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	s.pos = append(s.pos[:i], s.pos[i+1:]...)
	s.neg = append(s.neg[:i], s.neg[i+1:]...)
	return nil
}

// All returns a snapshot slice of the current binomials, in order. The
// returned slice is a copy of the header (not the elements); mutating it
// does not affect the set.
func (s *Set) All() []*binomial.Binomial {
	out := make([]*binomial.Binomial, len(s.items))
	copy(out, s.items)
	return out
}
