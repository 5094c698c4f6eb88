package truncator

import (
	"github.com/gmlangeloh/ipgb/binomial"
	"github.com/gmlangeloh/ipgb/oracle"
)

// Mode selects how candidate binomials are filtered.
type Mode int

const (
	// None never truncates.
	None Mode = iota
	// Simple truncates using raw arithmetic over A, b, u.
	Simple
	// ModelLP truncates by querying a continuous-relaxation feasibility model.
	ModelLP
	// ModelIP truncates by querying an integer feasibility model.
	ModelIP
)

// Truncator filters binomials that cannot contribute to a feasible
// solution (spec.md §4.8).
type Truncator struct {
	mode    Mode
	A       [][]int64
	b       []int64
	u       []int64
	bounded []bool

	lp    oracle.LPOracle
	model oracle.Model
}

// New builds a Truncator. For Simple mode, lp and model may be nil. For
// ModelLP/ModelIP, lp and model must both be non-nil; model is the
// feasibility model preconstructed by the caller via lp.JumpModel with the
// instance's A, b, u and non-negativity pattern.
func New(mode Mode, A [][]int64, b []int64, u []int64, bounded []bool, lp oracle.LPOracle, model oracle.Model) (*Truncator, error) {
	if mode == Simple {
		if len(u) != len(bounded) {
			return nil, ErrDimensionMismatch
		}
		for _, row := range A {
			if len(row) != len(u) {
				return nil, ErrDimensionMismatch
			}
		}
	}
	if (mode == ModelLP || mode == ModelIP) && (lp == nil || model == nil) {
		return nil, ErrNeedsModel
	}
	return &Truncator{mode: mode, A: A, b: b, u: u, bounded: bounded, lp: lp, model: model}, nil
}

// Mode returns the truncator's mode.
func (t *Truncator) Mode() Mode { return t.mode }

// Truncate reports whether v should be discarded.
func (t *Truncator) Truncate(v *binomial.Binomial) (bool, error) {
	switch t.mode {
	case None:
		return false, nil
	case Simple:
		return t.truncateSimple(v)
	default:
		return t.truncateModel(v)
	}
}

func (t *Truncator) truncateSimple(v *binomial.Binomial) (bool, error) {
	plus := leadingTerm(v)
	minus := trailingTerm(v)
	for r, row := range t.A {
		var ap, am int64
		for j, a := range row {
			if j < len(plus) {
				ap += a * plus[j]
			}
			if j < len(minus) {
				am += a * minus[j]
			}
		}
		if ap > t.b[r] || am > t.b[r] {
			return true, nil
		}
	}
	for i, bound := range t.bounded {
		if !bound {
			continue
		}
		x := v.At(i)
		if x < 0 {
			x = -x
		}
		if x > t.u[i] {
			return true, nil
		}
	}
	return false, nil
}

func (t *Truncator) truncateModel(v *binomial.Binomial) (bool, error) {
	plus := leadingTerm(v)
	newRHS := make([]int64, len(t.b))
	for r, row := range t.A {
		var ap int64
		for j, a := range row {
			if j < len(plus) {
				ap += a * plus[j]
			}
		}
		newRHS[r] = t.b[r] - ap
	}
	if err := t.lp.SetNormalizedRHS(t.model, newRHS); err != nil {
		return false, err
	}
	feasible, err := t.lp.IsFeasible(t.model)
	if err != nil {
		return false, err
	}
	return !feasible, nil
}

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
