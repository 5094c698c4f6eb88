package reducer

import (
	"math"

	"github.com/gmlangeloh/ipgb/binomial"
	"github.com/gmlangeloh/ipgb/order"
	"github.com/gmlangeloh/ipgb/supporttree"
)

// Mode selects the divisibility convention used by Divides and ReduceFull
// (spec.md §4.7).
type Mode int

const (
	// General is the full-filter divisibility check: positive_support(r)
	// coordinates must match sign and dominate in magnitude, and every
	// negative_support(r) coordinate must too.
	General Mode = iota
	// Simple is the leading-term-only check: only positive_support(r)
	// coordinates are scanned, trailing coordinates of r are ignored.
	Simple
	// Graded layers a degree bound (A*r+ <= A*g+) on top of General.
	Graded
)

// Divides reports whether r divides g under mode. When negative is false
// (the normal case), r's leading term is tested against g's leading term
// (and, in General/Graded mode, r's trailing term against g's trailing
// term). When negative is true (reduced-basis trailing-term reduction,
// spec.md §4.9), r's leading term is instead tested against g's trailing
// term, mirroring the sign flip ReductionFactor(..., negative=true)
// applies. A is only consulted in Graded mode and may be nil otherwise.
func Divides(r, g *binomial.Binomial, mode Mode, A [][]int64, negative bool) (bool, error) {
	if r.Len() != g.Len() {
		return false, ErrDimensionMismatch
	}
	switch mode {
	case Simple:
		return dividesSimple(r, g, negative)
	case Graded:
		if A == nil {
			return false, ErrGradedNeedsMatrix
		}
		return dividesGraded(r, g, A, negative)
	default:
		return dividesGeneral(r, g, negative)
	}
}

// gTermAt returns the coordinate of g to compare against r's leading term
// at index i: g's own value normally, or its negated value when testing
// against g's trailing term.
func gTermAt(g *binomial.Binomial, i int, negative bool) int64 {
	if negative {
		return -g.At(i)
	}
	return g.At(i)
}

func dividesSimple(r, g *binomial.Binomial, negative bool) (bool, error) {
	for _, i := range r.PositiveSupport().Indices() {
		if gTermAt(g, i, negative) < r.At(i) {
			return false, nil
		}
	}
	return true, nil
}

func dividesGeneral(r, g *binomial.Binomial, negative bool) (bool, error) {
	for _, i := range r.PositiveSupport().Indices() {
		ri, gi := r.At(i), gTermAt(g, i, negative)
		if gi <= 0 || gi < ri {
			return false, nil
		}
	}
	for _, i := range r.NegativeSupport().Indices() {
		ri, gi := r.At(i), gTermAt(g, i, negative)
		if gi >= 0 || -gi < -ri {
			return false, nil
		}
	}
	return true, nil
}

func dividesGraded(r, g *binomial.Binomial, A [][]int64, negative bool) (bool, error) {
	ok, err := dividesGeneral(r, g, negative)
	if err != nil || !ok {
		return ok, err
	}
	rPlus := leadingTerm(r)
	gPlus := leadingTerm(g)
	if negative {
		gPlus = trailingTerm(g)
	}
	for _, row := range A {
		var dr, dg int64
		for j, a := range row {
			if j >= len(rPlus) {
				break
			}
			dr += a * rPlus[j]
			dg += a * gPlus[j]
		}
		if dr > dg {
			return false, nil
		}
	}
	return true, nil
}

// leadingTerm returns g+ = max(g_i, 0) over every coordinate (unrestricted
// by domain, unlike PositiveSupport's index set).
func leadingTerm(b *binomial.Binomial) []int64 {
	elem := b.Element()
	out := make([]int64, len(elem))
	for i, x := range elem {
		if x > 0 {
			out[i] = x
		}
	}
	return out
}

// trailingTerm returns g- = max(-g_i, 0) over every coordinate.
func trailingTerm(b *binomial.Binomial) []int64 {
	elem := b.Element()
	out := make([]int64, len(elem))
	for i, x := range elem {
		if x < 0 {
			out[i] = -x
		}
	}
	return out
}

// ReductionFactor returns the largest k >= 1 such that k*r+ <= g+
// coordinate-wise. When negative is true, it instead reduces g's trailing
// term (g-) against r's leading term and returns the result negated, for
// use when shrinking the trailing side of g during reduced-basis
// post-processing.
func ReductionFactor(g, r *binomial.Binomial, negative bool) (int64, error) {
	rPlus := leadingTerm(r)
	if !negative {
		return positiveFactor(leadingTerm(g), rPlus)
	}
	k, err := positiveFactor(trailingTerm(g), rPlus)
	if err != nil {
		return 0, err
	}
	return -k, nil
}

func positiveFactor(target, step []int64) (int64, error) {
	best := int64(math.MaxInt64)
	any := false
	for i := range step {
		if step[i] > 0 {
			any = true
			cand := target[i] / step[i]
			if cand < best {
				best = cand
			}
		}
	}
	if !any || best < 1 {
		return 0, ErrNoReductionFactor
	}
	return best, nil
}

// DivideFunc adapts Divides to supporttree.DivideFunc for a fixed mode and
// sign convention (see Divides's negative parameter).
func DivideFunc(mode Mode, A [][]int64, negative bool) supporttree.DivideFunc {
	return func(r, g *binomial.Binomial) (bool, error) {
		return Divides(r, g, mode, A, negative)
	}
}

// ReduceStep applies a single reduction step: g <- g - k*r where k is the
// reduction factor of r against g, returning whether g became the zero
// vector. It does not re-orient g; callers combining this with a
// supporttree traversal should prefer ReduceFull.
func ReduceStep(g, r *binomial.Binomial) (bool, error) {
	k, err := ReductionFactor(g, r, false)
	if err != nil {
		return false, err
	}
	return binomial.ReduceStep(g, r, k)
}

// ReduceFull repeatedly finds a reducer for g in tree under mode and
// applies it, re-orienting g under ord after every step, until no reducer
// remains or g becomes zero (spec.md §4.7's reduce_full). It reports
// whether g is now fully reduced (irreducible or zero); g is mutated in
// place. skip, if non-nil, is excluded from the search, so a g that is
// itself in tree does not reduce against itself.
func ReduceFull(g *binomial.Binomial, tree *supporttree.Tree, ord *order.Order, mode Mode, A [][]int64, skip *binomial.Binomial) (bool, error) {
	divides := DivideFunc(mode, A, false)
	if !g.IsZero() {
		inverted, err := ord.IsInverted(g.Element())
		if err != nil {
			return false, err
		}
		if inverted {
			if err := g.Negate(); err != nil {
				return false, err
			}
		}
	}
	for {
		if g.IsZero() {
			return true, nil
		}
		r, err := tree.FindReducer(g, skip, false, divides)
		if err != nil {
			return false, err
		}
		if r == nil {
			return true, nil
		}
		k, err := ReductionFactor(g, r, false)
		if err != nil {
			return false, err
		}
		zero, err := binomial.ReduceStep(g, r, k)
		if err != nil {
			return false, err
		}
		if zero {
			return true, nil
		}
		inverted, err := ord.IsInverted(g.Element())
		if err != nil {
			return false, err
		}
		if inverted {
			if err := g.Negate(); err != nil {
				return false, err
			}
		}
	}
}
