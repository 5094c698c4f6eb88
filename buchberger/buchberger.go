package buchberger

import (
	"github.com/rs/zerolog"

	"github.com/gmlangeloh/ipgb/binomial"
	"github.com/gmlangeloh/ipgb/binomialset"
	"github.com/gmlangeloh/ipgb/order"
	"github.com/gmlangeloh/ipgb/pairqueue"
	"github.com/gmlangeloh/ipgb/reducer"
	"github.com/gmlangeloh/ipgb/truncator"
)

// AutoReduceMode selects when Complete runs an inter-reduction pass during
// the main loop (spec.md §4.9 step 9).
type AutoReduceMode int

const (
	// AutoReduceNone never runs inter-reduction mid-loop (only the final
	// minimal/reduced basis post-processing applies).
	AutoReduceNone AutoReduceMode = iota
	// AutoReduceFixedIterations triggers at the first push after at least
	// Frequency pairs have been drawn since the last pass.
	AutoReduceFixedIterations
	// AutoReduceFixedElements triggers every Frequency elements pushed.
	AutoReduceFixedElements
	// AutoReduceFraction triggers once elements pushed since the last pass
	// reach ceil(basis_size / Frequency).
	AutoReduceFraction
)

// Options configures Complete (spec.md §4.9, Design Note 9 / SPEC_FULL.md
// §12.1: an explicit configuration struct rather than package globals).
type Options struct {
	// Queue is the critical-pair strategy. Nil defaults to pairqueue.NewFIFO().
	Queue pairqueue.Strategy

	// ReducerMode selects the divisibility convention used while reducing
	// S-binomials against the growing basis.
	ReducerMode reducer.Mode

	// Matrix is consulted only when ReducerMode is reducer.Graded.
	Matrix [][]int64

	// AutoReduceMode and AutoReduceFrequency configure periodic
	// inter-reduction during the main loop.
	AutoReduceMode      AutoReduceMode
	AutoReduceFrequency int

	// ReducedBasis, if true, runs the optional reduced-basis
	// post-processing pass after minimal-basis reduction.
	ReducedBasis bool

	// Logger receives per-pair and per-pass debug events. Nil uses
	// zerolog.Nop().
	Logger *zerolog.Logger
}

// DefaultOptions returns FIFO pair drawing, general divisibility, no
// mid-loop auto-reduction, and a final reduced-basis pass.
func DefaultOptions() Options {
	return Options{
		Queue:        pairqueue.NewFIFO(),
		ReducerMode:  reducer.General,
		ReducedBasis: true,
	}
}

// Complete runs Buchberger completion (spec.md §4.9) starting from seed,
// oriented under ord with the given minimization convention, optionally
// truncating every candidate via trunc (nil disables truncation). It
// returns the completed BinomialSet: a Gröbner basis of the ideal
// generated by seed, or its truncated test-set analogue when trunc is
// non-nil.
func Complete(seed []*binomial.Binomial, ord *order.Order, minimization bool, trunc *truncator.Truncator, opts Options) (*binomialset.Set, error) {
	if ord == nil {
		return nil, ErrNilOrder
	}
	if len(seed) == 0 {
		return nil, ErrEmptySeed
	}
	logger := opts.Logger
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	queue := opts.Queue
	if queue == nil {
		queue = pairqueue.NewFIFO()
	}

	set := binomialset.New(ord, minimization)

	for _, g := range seed {
		if err := orient(g, ord); err != nil {
			return nil, err
		}
		if trunc != nil {
			discard, err := trunc.Truncate(g)
			if err != nil {
				return nil, err
			}
			if discard {
				continue
			}
		}
		if err := set.Push(g); err != nil {
			return nil, err
		}
		if err := queue.Grew(set.Len()); err != nil {
			return nil, err
		}
	}

	var sinceIter, sinceElems, zeroReductions int
	for {
		pair, ok := queue.NextPair()
		if !ok {
			break
		}
		sinceIter++

		gi, err := set.At(pair.I)
		if err != nil {
			return nil, err
		}
		gj, err := set.At(pair.J)
		if err != nil {
			return nil, err
		}

		disjoint, err := gcdCriterion(set, pair.I, pair.J)
		if err != nil {
			return nil, err
		}
		if disjoint {
			logger.Debug().Int("i", pair.I).Int("j", pair.J).Msg("gcd criterion discarded pair")
			continue
		}

		s, err := sBinomial(gi, gj, ord)
		if err != nil {
			return nil, err
		}

		if trunc != nil {
			discard, err := trunc.Truncate(s)
			if err != nil {
				return nil, err
			}
			if discard {
				continue
			}
		}

		if _, err := reducer.ReduceFull(s, set.ReductionTree(), ord, opts.ReducerMode, opts.Matrix, nil); err != nil {
			return nil, err
		}

		if s.IsZero() {
			zeroReductions++
			continue
		}

		if err := set.Push(s); err != nil {
			return nil, err
		}
		sinceElems++
		if err := queue.Grew(set.Len()); err != nil {
			return nil, err
		}
		logger.Debug().
			Int("i", pair.I).Int("j", pair.J).Int("basis_size", set.Len()).
			Msg("pushed reduced S-binomial")

		if shouldAutoReduce(opts, sinceIter, sinceElems, set.Len()) {
			removed, err := interReduce(set, queue, ord, opts.ReducerMode, opts.Matrix)
			if err != nil {
				return nil, err
			}
			logger.Debug().Int("removed", removed).Int("basis_size", set.Len()).Msg("inter-reduction pass")
			sinceIter, sinceElems = 0, 0
		}
	}

	if err := minimalBasis(set); err != nil {
		return nil, err
	}
	if opts.ReducedBasis {
		if err := reduceBasis(set, ord, opts.ReducerMode, opts.Matrix); err != nil {
			return nil, err
		}
	}

	logger.Debug().Int("basis_size", set.Len()).Int("zero_reductions", zeroReductions).Msg("completion finished")
	return set, nil
}

// orient fixes g's sign under ord and caches its cost row(s), the
// construction-time half of spec.md §3's orientation invariant.
func orient(g *binomial.Binomial, ord *order.Order) error {
	inverted, err := ord.IsInverted(g.Element())
	if err != nil {
		return err
	}
	if inverted {
		if err := g.Negate(); err != nil {
			return err
		}
	}
	cost, err := ord.Cost(g.Element())
	if err != nil {
		return err
	}
	g.SetCost(cost)
	return nil
}

// gcdCriterion reports whether the pair (i, j) can be discarded because the
// participants' relevant supports are disjoint (spec.md §4.9 step 3): the
// positive supports under minimization, the negative supports under
// maximization (the convention is flipped along with every binomial's
// orientation, so the "leading term" side swaps too).
func gcdCriterion(set *binomialset.Set, i, j int) (bool, error) {
	if set.Minimization() {
		pi, err := set.PositiveSupportAt(i)
		if err != nil {
			return false, err
		}
		pj, err := set.PositiveSupportAt(j)
		if err != nil {
			return false, err
		}
		return pi.Disjoint(pj), nil
	}
	ni, err := set.NegativeSupportAt(i)
	if err != nil {
		return false, err
	}
	nj, err := set.NegativeSupportAt(j)
	if err != nil {
		return false, err
	}
	return ni.Disjoint(nj), nil
}

// sBinomial builds s = u - v where u, v is gi, gj reoriented so that
// ord.Cmp(u, v) >= 0 (spec.md §4.9 step 4: cost(u) >= cost(v), ties broken
// by the order's tiebreak on u — both already folded into ord.Cmp, since
// its matrix scans the cost rows before the tiebreak rows).
func sBinomial(gi, gj *binomial.Binomial, ord *order.Order) (*binomial.Binomial, error) {
	cmp, err := ord.Cmp(gi.Element(), gj.Element())
	if err != nil {
		return nil, err
	}
	u, v := gi, gj
	if cmp < 0 {
		u, v = gj, gi
	}
	s := u.Clone()
	if err := binomial.Minus(s, u, v); err != nil {
		return nil, err
	}
	cost, err := ord.Cost(s.Element())
	if err != nil {
		return nil, err
	}
	s.SetCost(cost)
	return s, nil
}

// shouldAutoReduce evaluates opts's auto-reduce policy against the counters
// accumulated since the last inter-reduction pass.
func shouldAutoReduce(opts Options, sinceIter, sinceElems, basisSize int) bool {
	if opts.AutoReduceFrequency <= 0 {
		return false
	}
	switch opts.AutoReduceMode {
	case AutoReduceFixedIterations:
		return sinceIter >= opts.AutoReduceFrequency
	case AutoReduceFixedElements:
		return sinceElems >= opts.AutoReduceFrequency
	case AutoReduceFraction:
		return sinceElems*opts.AutoReduceFrequency >= basisSize
	default:
		return false
	}
}

// interReduce runs one inter-reduction pass (spec.md §4.9 step 9): every
// element is removed from the set, reduced against the rest, and dropped
// (if it became zero, i.e. redundant) or re-pushed (otherwise). Removal
// before reduction is required because a shrinking leading term changes a
// binomial's SupportTree placement, which is keyed by positive support at
// insertion time (see doc.go). Iterating indices from the end down is
// safe because DeleteAt/Push only ever touch index k or the tail, never an
// index below the one currently being processed.
//
// Only elements that change are re-announced to queue via Grew, to avoid
// proposing pairs against an element that is, bit for bit, the same
// generator it always was. Net removals (zero outcomes) are reported via
// a single Shrunk(r, r) call: individual removed positions aren't tracked,
// the same accepted approximation documented in pairqueue/doc.go.
func interReduce(set *binomialset.Set, queue pairqueue.Strategy, ord *order.Order, mode reducer.Mode, A [][]int64) (int, error) {
	removed := 0
	for k := set.Len() - 1; k >= 0; k-- {
		gk, err := set.At(k)
		if err != nil {
			return removed, err
		}
		before := append([]int64(nil), gk.Element()...)
		if err := set.DeleteAt(k); err != nil {
			return removed, err
		}
		if _, err := reducer.ReduceFull(gk, set.ReductionTree(), ord, mode, A, nil); err != nil {
			return removed, err
		}
		if gk.IsZero() {
			removed++
			continue
		}
		if err := set.Push(gk); err != nil {
			return removed, err
		}
		if !equalVectors(before, gk.Element()) {
			if err := queue.Grew(set.Len()); err != nil {
				return removed, err
			}
		}
	}
	if removed > 0 {
		if err := queue.Shrunk(removed, removed); err != nil {
			return removed, err
		}
	}
	return removed, nil
}

func equalVectors(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// minimalBasis removes every element whose leading term is a (leading-term,
// Simple-mode) multiple of another surviving element's leading term (spec.md
// §4.9's completion post-processing). When two elements share an identical
// leading term, the higher-index one is kept: indices are processed in
// ascending order, so the lower index is marked first, and already-removed
// candidates are skipped as divisors, so exactly one of a tied pair is
// ever marked.
func minimalBasis(set *binomialset.Set) error {
	n := set.Len()
	remove := make([]bool, n)
	for k := 0; k < n; k++ {
		gk, err := set.At(k)
		if err != nil {
			return err
		}
		for l := 0; l < n; l++ {
			if l == k || remove[l] {
				continue
			}
			gl, err := set.At(l)
			if err != nil {
				return err
			}
			divides, err := reducer.Divides(gl, gk, reducer.Simple, nil, false)
			if err != nil {
				return err
			}
			if divides {
				remove[k] = true
				break
			}
		}
	}
	for k := n - 1; k >= 0; k-- {
		if remove[k] {
			if err := set.DeleteAt(k); err != nil {
				return err
			}
		}
	}
	return nil
}

// reduceBasis runs the optional reduced-basis pass: every element's
// trailing term is reduced against the rest using the negative=true
// divisibility convention (spec.md §4.9). Like interReduce, each element is
// removed before being reduced, so it never reduces against itself, and a
// nonzero result is pushed back afterwards: the SupportTree holds every
// other element, processed or not. The reverse index walk keeps earlier,
// unprocessed positions stable throughout.
func reduceBasis(set *binomialset.Set, ord *order.Order, mode reducer.Mode, A [][]int64) error {
	divides := reducer.DivideFunc(mode, A, true)
	for k := set.Len() - 1; k >= 0; k-- {
		gk, err := set.At(k)
		if err != nil {
			return err
		}
		if err := set.DeleteAt(k); err != nil {
			return err
		}
		for {
			r, err := set.ReductionTree().FindReducer(gk, nil, true, divides)
			if err != nil {
				return err
			}
			if r == nil {
				break
			}
			factor, err := reducer.ReductionFactor(gk, r, true)
			if err != nil {
				return err
			}
			if _, err := binomial.ReduceStep(gk, r, factor); err != nil {
				return err
			}
		}
		if gk.IsZero() {
			// A basis element whose trailing term reduction collapsed it
			// entirely is redundant (duplicate generator); drop it rather
			// than re-pushing a zero vector binomial.Binomial.New would reject.
			continue
		}
		inverted, err := ord.IsInverted(gk.Element())
		if err != nil {
			return err
		}
		if inverted {
			if err := gk.Negate(); err != nil {
				return err
			}
		}
		if err := set.Push(gk); err != nil {
			return err
		}
	}
	return nil
}
