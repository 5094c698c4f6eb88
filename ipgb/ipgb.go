package ipgb

import (
	"context"

	"github.com/gmlangeloh/ipgb/binomial"
	"github.com/gmlangeloh/ipgb/buchberger"
	"github.com/gmlangeloh/ipgb/ipinstance"
	"github.com/gmlangeloh/ipgb/oracle"
	"github.com/gmlangeloh/ipgb/order"
	"github.com/gmlangeloh/ipgb/pairqueue"
	"github.com/gmlangeloh/ipgb/projectlift"
	"github.com/gmlangeloh/ipgb/reducer"
	"github.com/gmlangeloh/ipgb/supporttree"
	"github.com/gmlangeloh/ipgb/truncator"
)

// ComputeGB runs Buchberger completion over instance (spec.md §4.9, §6.5),
// returning a Gröbner basis (or, with Truncation set, its truncated
// test-set analogue) of the lattice ideal instance.HNFBasis() generates —
// or, when opts.Markov is supplied, of whatever sublattice that generates
// instead. Results are returned as row vectors in the caller's original
// column order.
func ComputeGB(ctx context.Context, instance *ipinstance.Instance, opts ComputeGBOptions) ([][]int64, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if instance == nil {
		return nil, ErrInputInvalid
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lp := opts.LP
	if lp == nil {
		lp, _ = DefaultOracles()
	}

	seedRows := opts.Markov
	if seedRows == nil {
		seedRows = instance.HNFBasis()
	} else {
		permuted, err := permuteRows(seedRows, instance)
		if err != nil {
			return nil, wrap(err)
		}
		seedRows = permuted
	}
	seed, err := binomialsFromRows(seedRows, instance)
	if err != nil {
		return nil, wrap(err)
	}

	costRows := instance.Cost()
	if len(costRows) == 0 {
		costRows = [][]int64{make([]int64, instance.NumVars())}
	}
	ord, err := order.New(floatRows(costRows), instance.NumVars(), lp, instance.Matrix(), instance.RHS())
	if err != nil {
		return nil, wrap(err)
	}

	trunc, err := buildTruncator(opts.Truncation, instance, lp)
	if err != nil {
		return nil, wrap(err)
	}

	logger := opts.Logger
	bopts := buchberger.Options{
		Queue:               pairqueue.NewFIFO(),
		ReducerMode:         opts.ReducerMode,
		Matrix:              instance.Matrix(),
		AutoReduceMode:      opts.AutoReduceMode,
		AutoReduceFrequency: opts.AutoReduceFrequency,
		ReducedBasis:        opts.ReducedBasis,
		Logger:              logger,
	}

	set, err := buchberger.Complete(seed, ord, true, trunc, bopts)
	if err != nil {
		return nil, wrap(err)
	}

	return rowsToOriginal(set.All(), instance)
}

// ProjectAndLift runs project-and-lift Markov basis construction over
// instance (spec.md §4.10, §6.5), optionally interleaving optimization
// attempts (opts.Optimize). Returns the Markov basis, whether a finite
// optimum was found, the optimum itself, and its objective value, all in
// the caller's original column order. hasOptimum is always false when
// opts.Optimize is false.
func ProjectAndLift(ctx context.Context, instance *ipinstance.Instance, opts ProjectAndLiftOptions) (markov [][]int64, hasOptimum bool, optimum []int64, optimumValue int64, err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if instance == nil {
		return nil, false, nil, 0, ErrInputInvalid
	}
	if err := ctx.Err(); err != nil {
		return nil, false, nil, 0, err
	}

	lp, hnf := opts.LP, opts.HNF
	if lp == nil || hnf == nil {
		dlp, dhnf := DefaultOracles()
		if lp == nil {
			lp = dlp
		}
		if hnf == nil {
			hnf = dhnf
		}
	}

	plOpts := projectlift.DefaultOptions()
	plOpts.TruncatorMode = opts.Truncation
	plOpts.SolveWhileLift = opts.Optimize
	plOpts.InitialSolution = opts.InitialSolution
	plOpts.Logger = opts.Logger

	state, perr := projectlift.New(instance, lp, hnf, plOpts)
	if perr != nil {
		return nil, false, nil, 0, wrap(perr)
	}

	basis, perr := state.Run()
	if perr != nil {
		return nil, false, nil, 0, wrap(perr)
	}

	// state.Run already translated basis into original column order.
	markov = make([][]int64, 0, len(basis))
	for _, g := range basis {
		markov = append(markov, append([]int64(nil), g.Element()...))
	}

	if !opts.Optimize {
		return markov, false, nil, 0, nil
	}

	solPermuted, ok := state.OptimalSolution()
	if !ok {
		return markov, false, nil, 0, ErrUnbounded
	}
	optimum, err = instance.ToOriginal(solPermuted)
	if err != nil {
		return nil, false, nil, 0, wrap(err)
	}
	optimumValue = dot(primaryCostRow(instance), solPermuted)
	return markov, true, optimum, optimumValue, nil
}

// MarkovBasis computes a Markov basis for instance using opts.Algorithm
// (spec.md §6.5), returned in the caller's original column order.
func MarkovBasis(ctx context.Context, instance *ipinstance.Instance, opts MarkovBasisOptions) ([][]int64, error) {
	if instance == nil {
		return nil, ErrInputInvalid
	}

	algorithm := opts.Algorithm
	if algorithm == AlgorithmAny {
		if canUseSimple(instance) {
			algorithm = AlgorithmSimple
		} else {
			algorithm = AlgorithmProjectAndLift
		}
	}

	switch algorithm {
	case AlgorithmSimple:
		if !canUseSimple(instance) {
			return nil, ErrInputInvalid
		}
		gbOpts := DefaultComputeGBOptions()
		gbOpts.Truncation = opts.Truncation
		gbOpts.LP = opts.LP
		gbOpts.Logger = opts.Logger
		return ComputeGB(ctx, instance, gbOpts)

	case AlgorithmProjectAndLift:
		plOpts := DefaultProjectAndLiftOptions()
		plOpts.Truncation = opts.Truncation
		plOpts.LP = opts.LP
		plOpts.HNF = opts.HNF
		plOpts.Logger = opts.Logger
		markov, _, _, _, err := ProjectAndLift(ctx, instance, plOpts)
		return markov, err

	default:
		return nil, ErrInputInvalid
	}
}

// canUseSimple reports whether instance has no non-negative-but-unbounded
// variable, i.e. every variable is either bounded-nonneg or unrestricted,
// so AlgorithmSimple's direct completion (no relaxation) already yields a
// valid Markov basis.
func canUseSimple(instance *ipinstance.Instance) bool {
	return instance.NonnegativeEnd() == instance.BoundedEnd()
}

// OptimizeWith reduces solution, treated as a pure monomial, against basis
// under opts.Order/opts.ReducerMode (spec.md §6.5), returning a
// locally-optimal lattice point reachable from solution. Both solution and
// the returned point are in the same coordinate space basis's elements
// are expressed in.
func OptimizeWith(solution []int64, basis [][]int64, opts OptimizeOptions) ([]int64, error) {
	if opts.Order == nil {
		return nil, ErrInputInvalid
	}

	candidate, err := binomial.New(append([]int64(nil), solution...), opts.NonnegLen, opts.BoundedLen)
	if err != nil {
		if err == binomial.ErrZeroVector {
			return append([]int64(nil), solution...), nil
		}
		return nil, wrap(err)
	}

	tree := supporttree.New()
	for _, row := range basis {
		g, err := binomial.New(append([]int64(nil), row...), opts.NonnegLen, opts.BoundedLen)
		if err != nil {
			if err == binomial.ErrZeroVector {
				continue
			}
			return nil, wrap(err)
		}
		tree.Add(g)
	}

	if _, err := reducer.ReduceFull(candidate, tree, opts.Order, opts.ReducerMode, opts.Matrix, nil); err != nil {
		return nil, wrap(err)
	}
	return candidate.Element(), nil
}

func permuteRows(rows [][]int64, instance *ipinstance.Instance) ([][]int64, error) {
	out := make([][]int64, len(rows))
	for i, row := range rows {
		p, err := instance.ToPermuted(row)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

func binomialsFromRows(rows [][]int64, instance *ipinstance.Instance) ([]*binomial.Binomial, error) {
	out := make([]*binomial.Binomial, 0, len(rows))
	for _, row := range rows {
		g, err := binomial.New(append([]int64(nil), row...), instance.NonnegativeEnd(), instance.BoundedEnd())
		if err != nil {
			if err == binomial.ErrZeroVector {
				continue
			}
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}

func rowsToOriginal(basis []*binomial.Binomial, instance *ipinstance.Instance) ([][]int64, error) {
	out := make([][]int64, 0, len(basis))
	for _, g := range basis {
		orig, err := instance.ToOriginal(g.Element())
		if err != nil {
			return nil, wrap(err)
		}
		out = append(out, orig)
	}
	return out, nil
}

func floatRows(rows [][]int64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		fr := make([]float64, len(row))
		for j, v := range row {
			fr[j] = float64(v)
		}
		out[i] = fr
	}
	return out
}

func buildTruncator(mode truncator.Mode, instance *ipinstance.Instance, lp oracle.LPOracle) (*truncator.Truncator, error) {
	switch mode {
	case truncator.None:
		return nil, nil
	case truncator.Simple:
		return truncator.New(truncator.Simple, instance.Matrix(), instance.RHS(), instance.UpperBounds(), instance.Bounded(), nil, nil)
	default:
		varType := make([]oracle.VarType, instance.NumVars())
		if mode == truncator.ModelIP {
			for i := range varType {
				varType[i] = oracle.Integer
			}
		}
		model, err := lp.JumpModel(instance.Matrix(), instance.RHS(), instance.Cost(), instance.UpperBounds(), instance.Nonnegative(), varType)
		if err != nil {
			return nil, err
		}
		return truncator.New(mode, instance.Matrix(), instance.RHS(), instance.UpperBounds(), instance.Bounded(), lp, model)
	}
}

func primaryCostRow(instance *ipinstance.Instance) []int64 {
	cost := instance.Cost()
	if len(cost) == 0 {
		return make([]int64, instance.NumVars())
	}
	return cost[0]
}

func dot(a, b []int64) int64 {
	var sum int64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
