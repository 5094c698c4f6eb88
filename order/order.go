package order

import (
	"fmt"
	"math"

	"github.com/gmlangeloh/ipgb/oracle"
)

// epsilon is the tolerance for treating an accumulated row value as zero.
// The comparison matrix is built from a rational LP dual cast to float64
// (spec.md §4.3 step 2), so exact zero equality is not safe.
const epsilon = 1e-9

// Order is a MonomialOrder: a k×n matrix (k ≥ n), stored transposed so a
// sparse difference vector's evaluation touches contiguous per-coordinate
// rows rather than striding across a row-major matrix (spec.md §4.3 step 3).
type Order struct {
	n        int
	k        int
	matrixT  [][]float64 // matrixT[j] is column j, length k
	costRows int         // number of caller-supplied cost rows, before any appended tiebreak
}

// New builds an Order from a raw cost matrix C (costRows rows, each of
// length numVars) and the instance (A, b) used to repair a negative primary
// row, following spec.md §4.3's three construction steps in order. lp may be
// nil only if C's row 0 has no negative entry.
func New(costMatrix [][]float64, numVars int, lp oracle.LPOracle, A [][]int64, b []int64) (*Order, error) {
	if len(costMatrix) == 0 {
		return nil, ErrEmptyCostMatrix
	}
	for _, row := range costMatrix {
		if len(row) != numVars {
			return nil, ErrDimensionMismatch
		}
	}

	costRows := len(costMatrix)
	rows := make([][]float64, len(costMatrix))
	for i, r := range costMatrix {
		rows[i] = append([]float64(nil), r...)
	}

	// Step 1: append the reverse-lex identity tiebreaker if under-specified.
	for len(rows) < numVars {
		t := len(rows) - costRows
		row := make([]float64, numVars)
		if idx := numVars - 1 - t; idx >= 0 {
			row[idx] = -1
		}
		rows = append(rows, row)
	}

	// Step 2: repair a negative primary row via the LP dual's positive
	// row-span vector.
	if hasNegative(rows[0]) {
		if lp == nil {
			return nil, ErrNeedsLPOracle
		}
		d, err := lp.PositiveRowSpan(A, b)
		if err != nil {
			return nil, fmt.Errorf("order: positive row span: %w", err)
		}
		if len(d) != numVars {
			return nil, ErrDimensionMismatch
		}
		df := make([]float64, numVars)
		minD := math.Inf(1)
		for j, rat := range d {
			f, _ := rat.Float64()
			if f <= 0 {
				return nil, ErrDegenerate
			}
			df[j] = f
			if f < minD {
				minD = f
			}
		}
		maxNeg := 0.0
		for _, x := range rows[0] {
			if -x > maxNeg {
				maxNeg = -x
			}
		}
		scalar := maxNeg/minD + 1
		for j := range rows[0] {
			rows[0][j] += scalar * df[j]
		}
	}

	// Step 3: store transposed.
	k := len(rows)
	matrixT := make([][]float64, numVars)
	for j := 0; j < numVars; j++ {
		col := make([]float64, k)
		for i := 0; i < k; i++ {
			col[i] = rows[i][j]
		}
		matrixT[j] = col
	}

	return &Order{n: numVars, k: k, matrixT: matrixT, costRows: costRows}, nil
}

func hasNegative(row []float64) bool {
	for _, x := range row {
		if x < 0 {
			return true
		}
	}
	return false
}

// NumVars returns n.
func (o *Order) NumVars() int { return o.n }

// Rows returns k.
func (o *Order) Rows() int { return o.k }

// evalAll accumulates M·v into a length-k vector, one accumulator per row.
func (o *Order) evalAll(v []int64) ([]float64, error) {
	if len(v) != o.n {
		return nil, ErrDimensionMismatch
	}
	acc := make([]float64, o.k)
	for j, x := range v {
		if x == 0 {
			continue
		}
		fx := float64(x)
		col := o.matrixT[j]
		for i, m := range col {
			acc[i] += fx * m
		}
	}
	return acc, nil
}

// Cmp compares u and v: it returns -1, 0, or +1 as u <_M v, u =_M v, or
// u >_M v, accumulating Σⱼ M[i,j](uⱼ−vⱼ) row by row until the first nonzero
// row (spec.md §4.3).
func (o *Order) Cmp(u, v []int64) (int, error) {
	mu, err := o.evalAll(u)
	if err != nil {
		return 0, err
	}
	mv, err := o.evalAll(v)
	if err != nil {
		return 0, err
	}
	for i := 0; i < o.k; i++ {
		d := mu[i] - mv[i]
		if d > epsilon {
			return 1, nil
		}
		if d < -epsilon {
			return -1, nil
		}
	}
	return 0, nil
}

// IsInverted reports whether v is inverted under this order: v⁻ >_M v⁺,
// equivalently the weighted scan of v itself is negative at the first
// nonzero row (spec.md §4.3). A nonzero v producing an all-zero scan is a
// degenerate order and is reported as ErrDegenerate.
func (o *Order) IsInverted(v []int64) (bool, error) {
	mv, err := o.evalAll(v)
	if err != nil {
		return false, err
	}
	for _, x := range mv {
		if x > epsilon {
			return false, nil
		}
		if x < -epsilon {
			return true, nil
		}
	}
	if isZero(v) {
		// The zero vector is not a valid binomial; callers should never
		// reach here, but report false rather than a spurious degenerate error.
		return false, nil
	}
	return false, ErrDegenerate
}

func isZero(v []int64) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

// Cost returns the caller-supplied cost-row values (excluding any appended
// tiebreak rows) for v, i.e. the cached attribute binomial.Binomial.SetCost
// expects (spec.md §3, cost(g,C) = row 1 of C·g, generalized here to all
// costRows original rows for multi-objective use).
func (o *Order) Cost(v []int64) ([]int64, error) {
	mv, err := o.evalAll(v)
	if err != nil {
		return nil, err
	}
	out := make([]int64, o.costRows)
	for i := 0; i < o.costRows; i++ {
		out[i] = int64(math.Round(mv[i]))
	}
	return out, nil
}

// Orient returns v if it is not inverted, or its negation if it is, so the
// result always satisfies 0 <_M result (spec.md §3's Binomial orientation
// invariant). It does not mutate v.
func (o *Order) Orient(v []int64) ([]int64, bool, error) {
	inverted, err := o.IsInverted(v)
	if err != nil {
		return nil, false, err
	}
	if !inverted {
		return v, false, nil
	}
	out := make([]int64, len(v))
	for i, x := range v {
		out[i] = -x
	}
	return out, true, nil
}
