package binomialset_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/gmlangeloh/ipgb/binomial"
	"github.com/gmlangeloh/ipgb/binomialset"
)

// TestPushedBinomialsAreOrientedWithDisjointSupports checks spec.md §8's
// first two BinomialSet invariants: every element a Push accepts is
// oriented under the set's order, and its cached positive/negative
// supports are disjoint and together cover every nonzero coordinate.
func TestPushedBinomialsAreOrientedWithDisjointSupports(t *testing.T) {
	const n = 4
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("push orients and keeps supports disjoint", prop.ForAll(
		func(v []int64) bool {
			if allZero(v) {
				return true
			}
			o := newOrder(t, n)
			s := binomialset.New(o, true)

			g, err := binomial.New(append([]int64(nil), v...), n, n)
			if err != nil {
				return err == binomial.ErrZeroVector
			}

			if err := s.Push(g); err != nil {
				negated := g.Clone()
				if negErr := negated.Negate(); negErr != nil {
					return false
				}
				if pushErr := s.Push(negated); pushErr != nil {
					return false
				}
				g = negated
			}

			pos, err := s.PositiveSupportAt(0)
			if err != nil {
				return false
			}
			neg, err := s.NegativeSupportAt(0)
			if err != nil {
				return false
			}
			for i := 0; i < n; i++ {
				if pos.Get(i) && neg.Get(i) {
					return false
				}
				wantSupport := g.At(i) != 0
				gotSupport := pos.Get(i) || neg.Get(i)
				if wantSupport != gotSupport {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(n, gen.Int64Range(-5, 5)),
	))

	properties.TestingRun(t)
}

func allZero(v []int64) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}
