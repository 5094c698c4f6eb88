package binomial

import (
	"math"

	"github.com/gmlangeloh/ipgb/bitset"
)

// Binomial is a nonzero vector g ∈ ℤⁿ representing g⁺ − g⁻, carrying a
// cached cost row (one value per objective) and lazily-computed supports.
//
// nonnegLen and boundedLen fix how far into the (permuted) coordinate space
// the positive and negative supports extend, per spec.md §3: positive
// support is restricted to non-negative variables, negative support to
// bounded variables. Both are prefixes of the coordinate space under
// ipinstance's variable permutation.
type Binomial struct {
	elem []int64
	cost []int64

	nonnegLen int
	boundedLen int

	posSupport *bitset.Set
	negSupport *bitset.Set
}

// New constructs a Binomial over elem (not copied: ownership transfers to
// the Binomial) with the given support domain lengths. elem must be nonzero.
func New(elem []int64, nonnegLen, boundedLen int) (*Binomial, error) {
	if allZero(elem) {
		return nil, ErrZeroVector
	}
	if nonnegLen > len(elem) || boundedLen > len(elem) {
		return nil, ErrOutOfRange
	}
	return &Binomial{elem: elem, nonnegLen: nonnegLen, boundedLen: boundedLen}, nil
}

func allZero(v []int64) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

// Len returns the dimension n of the ambient space.
func (b *Binomial) Len() int { return len(b.elem) }

// Element returns the backing vector. Callers must not mutate it directly;
// use Negate or a BinomialSet-mediated reduction step instead.
func (b *Binomial) Element() []int64 { return b.elem }

// At returns the i-th coordinate.
func (b *Binomial) At(i int) int64 { return b.elem[i] }

// Cost returns the cached cost-row values (primary objective first). It is
// nil until SetCost is called by the order package on construction/orientation.
func (b *Binomial) Cost() []int64 { return b.cost }

// SetCost caches the cost-row values for this binomial; called by order.Order
// whenever the binomial is created or re-oriented.
func (b *Binomial) SetCost(cost []int64) { b.cost = cost }

// PrimaryCost returns the first cost-row value, or 0 if no cost is cached.
func (b *Binomial) PrimaryCost() int64 {
	if len(b.cost) == 0 {
		return 0
	}
	return b.cost[0]
}

// NonnegativeSlice returns the prefix of elem over non-negative variables.
func (b *Binomial) NonnegativeSlice() []int64 { return b.elem[:b.nonnegLen] }

// BoundedSlice returns the prefix of elem over bounded variables.
func (b *Binomial) BoundedSlice() []int64 { return b.elem[:b.boundedLen] }

// FullForm returns the element with the cached cost row(s) appended at fixed
// offsets, per spec.md §4.2.
func (b *Binomial) FullForm() []int64 {
	out := make([]int64, 0, len(b.elem)+len(b.cost))
	out = append(out, b.elem...)
	out = append(out, b.cost...)
	return out
}

// PositiveSupport returns (computing and caching on first call) the set of
// indices i < nonnegLen with elem[i] > 0.
func (b *Binomial) PositiveSupport() *bitset.Set {
	if b.posSupport == nil {
		b.posSupport = supportOf(b.elem[:b.nonnegLen], b.nonnegLen, true)
	}
	return b.posSupport
}

// NegativeSupport returns (computing and caching on first call) the set of
// indices i < boundedLen with elem[i] < 0.
func (b *Binomial) NegativeSupport() *bitset.Set {
	if b.negSupport == nil {
		b.negSupport = supportOf(b.elem[:b.boundedLen], b.boundedLen, false)
	}
	return b.negSupport
}

func supportOf(domain []int64, n int, positive bool) *bitset.Set {
	s := bitset.New(uint(n))
	for i, v := range domain {
		if (positive && v > 0) || (!positive && v < 0) {
			s.Set(i, true)
		}
	}
	return s
}

// invalidateSupports clears cached supports; called by any mutator.
func (b *Binomial) invalidateSupports() {
	b.posSupport = nil
	b.negSupport = nil
}

// IsZero reports whether every coordinate is zero (the reduction loop's
// termination condition, spec.md §4.7).
func (b *Binomial) IsZero() bool { return allZero(b.elem) }

// Negate flips every coordinate (and the cached cost, and swaps the cached
// supports), realizing the "opposite" operation of spec.md §4.2. Minus (on
// its destination) and ReduceStep are the other in-place mutators.
func (b *Binomial) Negate() error {
	for i, v := range b.elem {
		nv, ok := checkedNeg(v)
		if !ok {
			return ErrOverflow
		}
		b.elem[i] = nv
	}
	for i, c := range b.cost {
		nc, ok := checkedNeg(c)
		if !ok {
			return ErrOverflow
		}
		b.cost[i] = nc
	}
	// Supports swap rather than simply invalidate: a fresh computation would
	// give the same result, but swapping when both are already cached avoids
	// wasted recomputation on the hot reorientation path.
	b.posSupport, b.negSupport = b.negSupport, b.posSupport
	return nil
}

// Clone returns a deep copy of b.
func (b *Binomial) Clone() *Binomial {
	elem := make([]int64, len(b.elem))
	copy(elem, b.elem)
	cost := make([]int64, len(b.cost))
	copy(cost, b.cost)
	c := &Binomial{elem: elem, cost: cost, nonnegLen: b.nonnegLen, boundedLen: b.boundedLen}
	if b.posSupport != nil {
		c.posSupport = b.posSupport.Clone()
	}
	if b.negSupport != nil {
		c.negSupport = b.negSupport.Clone()
	}
	return c
}

// Minus computes dst.Element() = g.Element() − h.Element() in place, without
// allocation beyond what dst already owns (spec.md §4.2, §5). dst, g, and h
// must share the same dimension and support domains; dst's caches are
// invalidated since its element changes.
func Minus(dst, g, h *Binomial) error {
	if dst.Len() != g.Len() || g.Len() != h.Len() {
		return ErrDimensionMismatch
	}
	for i := range dst.elem {
		v, ok := checkedSub(g.elem[i], h.elem[i])
		if !ok {
			return ErrOverflow
		}
		dst.elem[i] = v
	}
	dst.invalidateSupports()
	return nil
}

// ReduceStep applies g ← g − k·r in place (spec.md §4.7's reduce_step),
// returning whether the result is the zero vector. g's caches are
// invalidated, since its element changed.
func ReduceStep(g *Binomial, r *Binomial, k int64) (bool, error) {
	if g.Len() != r.Len() {
		return false, ErrDimensionMismatch
	}
	for i := range g.elem {
		kr, ok := checkedMul(k, r.elem[i])
		if !ok {
			return false, ErrOverflow
		}
		v, ok := checkedSub(g.elem[i], kr)
		if !ok {
			return false, ErrOverflow
		}
		g.elem[i] = v
	}
	g.invalidateSupports()
	return g.IsZero(), nil
}

func checkedNeg(a int64) (int64, bool) {
	if a == math.MinInt64 {
		return 0, false
	}
	return -a, true
}

func checkedSub(a, b int64) (int64, bool) {
	if b > 0 && a < math.MinInt64+b {
		return 0, false
	}
	if b < 0 && a > math.MaxInt64+b {
		return 0, false
	}
	return a - b, true
}

func checkedMul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	r := a * b
	if r/b != a {
		return 0, false
	}
	return r, true
}
