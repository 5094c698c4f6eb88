package supporttree

import (
	"github.com/gmlangeloh/ipgb/binomial"
)

// DivideFunc reports whether r divides g, under whatever divisibility mode
// the caller has selected (general, simple, or graded — spec.md §4.7).
type DivideFunc func(r, g *binomial.Binomial) (bool, error)

type childEntry struct {
	idx int
	n   *node
}

// node is a trie node. children is kept in insertion order; childIdx maps a
// variable index to its position in children for O(1) descent during Add.
type node struct {
	children []*childEntry
	childIdx map[int]int
	res      []*binomial.Binomial
}

func newNode() *node {
	return &node{childIdx: make(map[int]int)}
}

func (n *node) child(idx int) (*node, bool) {
	if pos, ok := n.childIdx[idx]; ok {
		return n.children[pos].n, true
	}
	return nil, false
}

func (n *node) childOrCreate(idx int) *node {
	if c, ok := n.child(idx); ok {
		return c
	}
	c := newNode()
	n.childIdx[idx] = len(n.children)
	n.children = append(n.children, &childEntry{idx: idx, n: c})
	return c
}

// Tree is the rooted trie of spec.md §4.4.
type Tree struct {
	root *node
}

// New returns an empty Tree.
func New() *Tree {
	return &Tree{root: newNode()}
}

// Add inserts g at the node whose root path equals positive_support(g), in
// ascending index order (spec.md §4.4).
func (t *Tree) Add(g *binomial.Binomial) {
	cur := t.root
	for _, idx := range g.PositiveSupport().Indices() {
		cur = cur.childOrCreate(idx)
	}
	cur.res = append(cur.res, g)
}

// Remove deletes g from the node at its positive-support path, by pointer
// identity. It does not prune now-empty nodes: empty nodes are harmless
// tombstones and pruning would add complexity with no observable benefit,
// since Add always recreates the same path deterministically.
func (t *Tree) Remove(g *binomial.Binomial) error {
	cur := t.root
	for _, idx := range g.PositiveSupport().Indices() {
		next, ok := cur.child(idx)
		if !ok {
			return ErrNotFound
		}
		cur = next
	}
	for i, r := range cur.res {
		if r == g {
			cur.res = append(cur.res[:i], cur.res[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// FindReducer performs the depth-first search of spec.md §4.4: starting at
// the root, descend only into children whose labeling index i satisfies
// sign·g_i > 0 (sign = -1 when negative is true), testing every resident
// binomial at each visited node with divides until the first success.
// skip, if non-nil, is excluded from consideration, so a binomial that is
// itself in the tree does not reduce against itself.
func (t *Tree) FindReducer(g, skip *binomial.Binomial, negative bool, divides DivideFunc) (*binomial.Binomial, error) {
	return t.root.find(g, skip, negative, divides)
}

func (n *node) find(g, skip *binomial.Binomial, negative bool, divides DivideFunc) (*binomial.Binomial, error) {
	for _, r := range n.res {
		if r == skip {
			continue
		}
		ok, err := divides(r, g)
		if err != nil {
			return nil, err
		}
		if ok {
			return r, nil
		}
	}
	for _, ce := range n.children {
		gi := g.At(ce.idx)
		matches := gi > 0
		if negative {
			matches = gi < 0
		}
		if !matches {
			continue
		}
		found, err := ce.n.find(g, skip, negative, divides)
		if err != nil {
			return nil, err
		}
		if found != nil {
			return found, nil
		}
	}
	return nil, nil
}

// EnumerateReducers collects every binomial that divides g under the same
// descent rule as FindReducer, instead of stopping at the first success.
func (t *Tree) EnumerateReducers(g, skip *binomial.Binomial, negative bool, divides DivideFunc) ([]*binomial.Binomial, error) {
	var out []*binomial.Binomial
	err := t.root.enumerate(g, skip, negative, divides, &out)
	return out, err
}

func (n *node) enumerate(g, skip *binomial.Binomial, negative bool, divides DivideFunc, out *[]*binomial.Binomial) error {
	for _, r := range n.res {
		if r == skip {
			continue
		}
		ok, err := divides(r, g)
		if err != nil {
			return err
		}
		if ok {
			*out = append(*out, r)
		}
	}
	for _, ce := range n.children {
		gi := g.At(ce.idx)
		matches := gi > 0
		if negative {
			matches = gi < 0
		}
		if !matches {
			continue
		}
		if err := ce.n.enumerate(g, skip, negative, divides, out); err != nil {
			return err
		}
	}
	return nil
}
