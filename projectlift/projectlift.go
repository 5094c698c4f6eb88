package projectlift

import (
	"github.com/rs/zerolog"

	"github.com/gmlangeloh/ipgb/binomial"
	"github.com/gmlangeloh/ipgb/buchberger"
	"github.com/gmlangeloh/ipgb/ipinstance"
	"github.com/gmlangeloh/ipgb/oracle"
	"github.com/gmlangeloh/ipgb/order"
	"github.com/gmlangeloh/ipgb/reducer"
	"github.com/gmlangeloh/ipgb/truncator"
)

// Options configures a project-and-lift run (SPEC_FULL.md §12.1: an
// explicit configuration struct rather than package globals).
type Options struct {
	// SolveWhileLift, if true, interleaves an optimization attempt (§4.10's
	// solve-while-lift variant) after every iteration.
	SolveWhileLift bool

	// TruncatorMode selects the Truncator mode used for every Buchberger
	// completion run during lifting. truncator.None disables truncation.
	TruncatorMode truncator.Mode

	// BuchbergerOptions configures every Complete call made during lifting.
	BuchbergerOptions buchberger.Options

	// InitialSolution, if non-nil, is a caller-supplied feasible point in
	// working_instance's original (pre-permutation) coordinate space,
	// expressed in the full original column count (spec.md §6.5's optional
	// initial_solution). It seeds dual_solution and primal_solutions
	// (spec.md §4.10's "optional feasible points carried along") instead of
	// leaving them nil, giving pickLiftVariable's dual-coordinate strategy
	// and trySolve's reduction candidate a starting point before the first
	// ray is ever found.
	InitialSolution []int64

	// Logger receives per-iteration debug events. Nil uses zerolog.Nop().
	Logger *zerolog.Logger
}

// DefaultOptions returns no solve-while-lift, simple truncation, and
// buchberger.DefaultOptions for every completion run.
func DefaultOptions() Options {
	return Options{
		TruncatorMode:     truncator.Simple,
		BuchbergerOptions: buchberger.DefaultOptions(),
	}
}

// State is the ProjectAndLiftState of spec.md §4.10.
//
// working_instance never changes once built, so it is the one stable
// coordinate frame throughout a run: unlifted, nonnegative, markov,
// dual_solution, primal_solutions and optimal_solution are ALL kept in
// working's permuted space. relaxation is rebuilt (and typically
// repermuted) every iteration; values are translated into relaxation's
// space only transiently, right before an LP query or a Buchberger
// completion call, and translated straight back afterward. This avoids
// ever needing to translate a bare variable index (which a value-vector
// translate can't do directly) across a moving permutation.
type State struct {
	working    *ipinstance.Instance
	relaxation *ipinstance.Instance

	unlifted    []bool
	nonnegative []bool

	markov []*binomial.Binomial

	dualSolution       []int64
	primalSolutions    [][]int64
	optimalSolution    []int64
	hasOptimalSolution bool

	lp  oracle.LPOracle
	hnf oracle.HermiteOracle

	opts Options
	log  zerolog.Logger
}

// New builds the initial ProjectAndLiftState from an already-normalized
// working instance (spec.md §4.10 Initialization). Every variable in
// working's nonneg-eligible region ([0, working.NonnegativeEnd())) starts
// unlifted; the initial markov seed is the normalized HNF basis of
// ker(working.Matrix()), embedded at full length (see doc.go for why this
// differs from the literal first-rank-columns seeding).
func New(working *ipinstance.Instance, lp oracle.LPOracle, hnf oracle.HermiteOracle, opts Options) (*State, error) {
	if working == nil {
		return nil, ErrNilInstance
	}
	if lp == nil || hnf == nil {
		return nil, ErrNilOracle
	}

	n := working.NumVars()
	nend := working.NonnegativeEnd()

	nonneg := make([]bool, n)
	unlifted := make([]bool, n)
	for j := 0; j < nend; j++ {
		unlifted[j] = true
	}

	relaxation, err := ipinstance.New(working.Matrix(), working.RHS(), working.Cost(), working.UpperBounds(), nonneg, nil, false, lp, hnf)
	if err != nil {
		return nil, err
	}

	basis := hnf.NormalizeHNF(working.HNFBasis())
	seed := make([]*binomial.Binomial, 0, len(basis))
	for _, row := range basis {
		elem := make([]int64, n)
		copy(elem, row)
		b, err := binomial.New(elem, working.NonnegativeEnd(), working.BoundedEnd())
		if err != nil {
			if err == binomial.ErrZeroVector {
				continue
			}
			return nil, err
		}
		seed = append(seed, b)
	}

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	state := &State{
		working:     working,
		relaxation:  relaxation,
		unlifted:    unlifted,
		nonnegative: nonneg,
		markov:      seed,
		lp:          lp,
		hnf:         hnf,
		opts:        opts,
		log:         logger,
	}

	if opts.InitialSolution != nil {
		permuted, err := working.ToPermuted(opts.InitialSolution)
		if err != nil {
			return nil, err
		}
		state.dualSolution = permuted
		state.primalSolutions = [][]int64{append([]int64(nil), permuted...)}
	}

	return state, nil
}

// translate carries a vector from one Instance's permuted coordinate space
// to another sharing the same NumVars, by round-tripping through original
// (caller) coordinates.
func translate(v []int64, from, to *ipinstance.Instance) ([]int64, error) {
	if v == nil {
		return nil, nil
	}
	orig, err := from.ToOriginal(v)
	if err != nil {
		return nil, err
	}
	return to.ToPermuted(orig)
}

func translateRows(rows [][]int64, from, to *ipinstance.Instance) ([][]int64, error) {
	out := make([][]int64, len(rows))
	for i, row := range rows {
		t, err := translate(row, from, to)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

// translateBinomials carries a list of binomials between two Instances'
// coordinate spaces, dropping any that become the zero vector.
func translateBinomials(list []*binomial.Binomial, from, to *ipinstance.Instance) ([]*binomial.Binomial, error) {
	out := make([]*binomial.Binomial, 0, len(list))
	for _, g := range list {
		elem, err := translate(g.Element(), from, to)
		if err != nil {
			return nil, err
		}
		nb, err := binomial.New(elem, to.NonnegativeEnd(), to.BoundedEnd())
		if err != nil {
			if err == binomial.ErrZeroVector {
				continue
			}
			return nil, err
		}
		out = append(out, nb)
	}
	return out, nil
}

// relaxIndex maps working-space variable index i to its corresponding
// index in relaxation's current permuted space, via a one-hot translate
// (the permutation relating the two spaces is a pure coordinate
// relabeling, so a unit vector maps to another unit vector).
func (s *State) relaxIndex(i int) (int, error) {
	e := make([]int64, s.working.NumVars())
	e[i] = 1
	re, err := translate(e, s.working, s.relaxation)
	if err != nil {
		return -1, err
	}
	for j, v := range re {
		if v != 0 {
			return j, nil
		}
	}
	return -1, ErrIndexTranslation
}

// Done reports whether every variable has been lifted.
func (s *State) Done() bool {
	for _, u := range s.unlifted {
		if u {
			return false
		}
	}
	return true
}

// OptimalSolution returns the optimal solution found by the solve-while-lift
// variant, in working_instance's permuted coordinate space, and whether one
// has been found yet.
func (s *State) OptimalSolution() ([]int64, bool) {
	return s.optimalSolution, s.hasOptimalSolution
}

// Run drives the iterate-until-unlifted-empty loop (spec.md §4.10) to
// completion and returns the final Markov basis, translated into
// working_instance's original (pre-permutation) caller coordinate space.
func (s *State) Run() ([]*binomial.Binomial, error) {
	for !s.Done() {
		if s.opts.SolveWhileLift && s.hasOptimalSolution {
			break
		}
		i := s.pickLiftVariable()
		if i < 0 {
			return nil, ErrNoUnliftedVariable
		}
		if err := s.liftVariable(i); err != nil {
			return nil, err
		}
		if s.opts.SolveWhileLift {
			if err := s.trySolve(); err != nil {
				return nil, err
			}
		}
	}

	out := make([]*binomial.Binomial, 0, len(s.markov))
	for _, g := range s.markov {
		orig, err := s.working.ToOriginal(g.Element())
		if err != nil {
			return nil, err
		}
		nb, err := binomial.New(orig, s.working.NonnegativeEnd(), s.working.BoundedEnd())
		if err != nil {
			if err == binomial.ErrZeroVector {
				continue
			}
			return nil, err
		}
		out = append(out, nb)
	}
	return out, nil
}

// pickLiftVariable implements step 1: smallest unlifted index by default,
// or (when optimizing with a dual solution in hand) the most-negative
// dual_solution coordinate among the unlifted indices.
func (s *State) pickLiftVariable() int {
	best := -1
	if s.opts.SolveWhileLift && s.dualSolution != nil {
		var bestVal int64
		for j, u := range s.unlifted {
			if !u {
				continue
			}
			if best == -1 || s.dualSolution[j] < bestVal {
				best, bestVal = j, s.dualSolution[j]
			}
		}
		if best != -1 {
			return best
		}
	}
	for j, u := range s.unlifted {
		if u {
			return j
		}
	}
	return -1
}

// liftVariable runs one full outer iteration (steps 2-5 plus opportunistic
// lifting) for working-space variable i.
func (s *State) liftVariable(i int) error {
	ri, err := s.relaxIndex(i)
	if err != nil {
		return err
	}

	model, err := s.lp.UnboundednessIPModel(s.relaxation.Matrix(), s.relaxation.Nonnegative(), ri)
	if err != nil {
		return err
	}
	ray, ok, err := s.lp.Solve(model)
	if err != nil {
		return err
	}

	if ok {
		s.log.Debug().Int("variable", i).Msg("projectlift: unbounded branch, ray found")
		working, err := translate(ray, s.relaxation, s.working)
		if err != nil {
			return err
		}
		if err := s.appendRay(working); err != nil {
			return err
		}
	} else {
		s.log.Debug().Int("variable", i).Msg("projectlift: bounded branch, running completion")
		if err := s.completeForVariable(ri); err != nil {
			return err
		}
	}

	return s.finishLift(i)
}

// appendRay implements the unbounded branch (step 3). ray is already in
// working_instance's coordinate space.
func (s *State) appendRay(ray []int64) error {
	present := false
	for _, g := range s.markov {
		if equalVectors(g.Element(), ray) || equalVectors(negated(ray), g.Element()) {
			present = true
			break
		}
	}
	if !present {
		b, err := binomial.New(append([]int64(nil), ray...), s.working.NonnegativeEnd(), s.working.BoundedEnd())
		if err != nil {
			if err != binomial.ErrZeroVector {
				return err
			}
		} else {
			s.markov = append(s.markov, b)
		}
	}

	if s.dualSolution == nil {
		s.dualSolution = make([]int64, len(ray))
	}
	var count int64
	for j, rj := range ray {
		if rj > 0 && s.dualSolution[j] < 0 {
			need := (-s.dualSolution[j] + rj - 1) / rj
			if need > count {
				count = need
			}
		}
	}
	if count > 0 {
		for j, rj := range ray {
			s.dualSolution[j] += count * rj
		}
	}
	return nil
}

// completeForVariable implements the bounded branch (step 4): maximize the
// relaxation-space variable ri and run Buchberger completion on the
// current markov, translated into relaxation's space for the duration of
// the call and translated back afterward.
func (s *State) completeForVariable(ri int) error {
	costRow := make([]float64, s.relaxation.NumVars())
	costRow[ri] = 1
	ord, err := order.New([][]float64{costRow}, s.relaxation.NumVars(), nil, nil, nil)
	if err != nil {
		return err
	}
	trunc, err := s.buildTruncator()
	if err != nil {
		return err
	}
	seed, err := translateBinomials(s.markov, s.working, s.relaxation)
	if err != nil {
		return err
	}
	set, err := buchberger.Complete(seed, ord, true, trunc, s.opts.BuchbergerOptions)
	if err != nil {
		return err
	}
	result, err := translateBinomials(set.All(), s.relaxation, s.working)
	if err != nil {
		return err
	}
	s.markov = result
	return nil
}

// finishLift implements step 5 plus opportunistic lifting: mark i
// non-negative, rebuild relaxation, then lift any variable no markov
// element still needs relaxed.
func (s *State) finishLift(i int) error {
	s.unlifted[i] = false
	s.nonnegative[i] = true
	return s.rebuildRelaxation()
}

// rebuildRelaxation rebuilds relaxation from working_instance's fixed A, b,
// C, u with the current non-negativity pattern, then runs opportunistic
// lifting; since opportunistic lifting can itself change nonnegative, it
// loops to a fixpoint so relaxation's own nonneg pattern never lags the
// state's before the next LP query.
func (s *State) rebuildRelaxation() error {
	for {
		next, err := ipinstance.New(s.working.Matrix(), s.working.RHS(), s.working.Cost(), s.working.UpperBounds(), s.nonnegative, nil, false, s.lp, s.hnf)
		if err != nil {
			return err
		}
		s.relaxation = next

		changed := s.opportunisticLift()
		if !changed {
			return nil
		}
	}
}

// opportunisticLift lifts every still-unlifted variable that no current
// markov element has a strictly positive entry at, reporting whether any
// variable was lifted.
func (s *State) opportunisticLift() bool {
	changed := false
	for k, u := range s.unlifted {
		if !u {
			continue
		}
		needed := false
		for _, g := range s.markov {
			if g.At(k) > 0 {
				needed = true
				break
			}
		}
		if !needed {
			s.unlifted[k] = false
			s.nonnegative[k] = true
			changed = true
		}
	}
	return changed
}

// buildTruncator builds a Truncator over relaxation's current state per
// opts.TruncatorMode.
func (s *State) buildTruncator() (*truncator.Truncator, error) {
	switch s.opts.TruncatorMode {
	case truncator.None:
		return nil, nil
	case truncator.Simple:
		return truncator.New(truncator.Simple, s.relaxation.Matrix(), s.relaxation.RHS(), s.relaxation.UpperBounds(), s.relaxation.Bounded(), nil, nil)
	default:
		varType := make([]oracle.VarType, s.relaxation.NumVars())
		if s.opts.TruncatorMode == truncator.ModelIP {
			for i := range varType {
				varType[i] = oracle.Integer
			}
		}
		model, err := s.lp.JumpModel(s.relaxation.Matrix(), s.relaxation.RHS(), s.relaxation.Cost(), s.relaxation.UpperBounds(), s.relaxation.Nonnegative(), varType)
		if err != nil {
			return nil, err
		}
		return truncator.New(s.opts.TruncatorMode, s.relaxation.Matrix(), s.relaxation.RHS(), s.relaxation.UpperBounds(), s.relaxation.Bounded(), s.lp, model)
	}
}

// trySolve implements the solve-while-lift variant: complete against the
// original objective, reduce dual_solution's normal form against the
// result, and accept it as optimal if it lands feasible in working_instance.
func (s *State) trySolve() error {
	if s.dualSolution == nil {
		return nil
	}
	costRows := s.working.Cost()
	if len(costRows) == 0 {
		return nil
	}
	translatedCost, err := translateRows(costRows, s.working, s.relaxation)
	if err != nil {
		return err
	}
	floatCost := make([][]float64, len(translatedCost))
	for i, row := range translatedCost {
		fr := make([]float64, len(row))
		for j, v := range row {
			fr[j] = float64(v)
		}
		floatCost[i] = fr
	}
	ord, err := order.New(floatCost, s.relaxation.NumVars(), s.lp, s.relaxation.Matrix(), s.relaxation.RHS())
	if err != nil {
		return err
	}
	trunc, err := s.buildTruncator()
	if err != nil {
		return err
	}
	seed, err := translateBinomials(s.markov, s.working, s.relaxation)
	if err != nil {
		return err
	}
	set, err := buchberger.Complete(seed, ord, true, trunc, s.opts.BuchbergerOptions)
	if err != nil {
		return err
	}
	s.markov, err = translateBinomials(set.All(), s.relaxation, s.working)
	if err != nil {
		return err
	}

	dualRelax, err := translate(s.dualSolution, s.working, s.relaxation)
	if err != nil {
		return err
	}
	candidate, err := binomial.New(dualRelax, s.relaxation.NonnegativeEnd(), s.relaxation.BoundedEnd())
	if err != nil {
		if err == binomial.ErrZeroVector {
			return nil
		}
		return err
	}
	if _, err := reducer.ReduceFull(candidate, set.ReductionTree(), ord, s.opts.BuchbergerOptions.ReducerMode, s.opts.BuchbergerOptions.Matrix, nil); err != nil {
		return err
	}

	reducedWorking, err := translate(candidate.Element(), s.relaxation, s.working)
	if err != nil {
		return err
	}
	if !s.feasibleInWorking(reducedWorking) {
		return nil
	}
	s.optimalSolution = reducedWorking
	s.hasOptimalSolution = true
	return nil
}

// feasibleInWorking reports whether v, already in working_instance's
// permuted coordinate space, satisfies every non-negativity and
// upper-bound constraint.
func (s *State) feasibleInWorking(v []int64) bool {
	nonneg := s.working.Nonnegative()
	upper := s.working.UpperBounds()
	for j, x := range v {
		if nonneg[j] && x < 0 {
			return false
		}
		if upper[j] != ipinstance.Unbounded && x > upper[j] {
			return false
		}
	}
	return true
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

func negated(v []int64) []int64 {
	out := make([]int64, len(v))
	for i, x := range v {
		out[i] = -x
	}
	return out
}
