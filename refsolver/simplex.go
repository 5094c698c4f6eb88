package refsolver

import "math/big"

// simplexResult is the outcome of a two-phase simplex run over an
// equality system Aeq x = beq, x >= 0.
type simplexResult struct {
	feasible bool
	unbounded bool
	x         []*big.Rat // length n (structural columns only)
	basisOf   []int      // length n; row index currently basic, or -1
}

// runBigM solves max obj^T x s.t. Aeq x = beq, x >= 0 via a two-phase
// simplex (phase 1 drives artificial variables to zero; phase 2 optimizes
// the real objective over the remaining feasible basis). The name is
// historical (an earlier draft used the Big-M variant); two-phase is what
// ships, since it needs no data-dependent penalty constant.
func runBigM(Aeq [][]*big.Rat, beq []*big.Rat, obj []*big.Rat, n int) simplexResult {
	m := len(Aeq)
	if m == 0 {
		x := make([]*big.Rat, n)
		for j := range x {
			x[j] = big.NewRat(0, 1)
		}
		basisOf := make([]int, n)
		for j := range basisOf {
			basisOf[j] = -1
		}
		return simplexResult{feasible: true, x: x, basisOf: basisOf}
	}

	A := make([][]*big.Rat, m)
	b := make([]*big.Rat, m)
	for r := 0; r < m; r++ {
		row := make([]*big.Rat, n)
		for c := 0; c < n; c++ {
			row[c] = new(big.Rat).Set(Aeq[r][c])
		}
		rhs := new(big.Rat).Set(beq[r])
		if rhs.Sign() < 0 {
			for c := range row {
				row[c].Neg(row[c])
			}
			rhs.Neg(rhs)
		}
		A[r] = row
		b[r] = rhs
	}

	cols := n + m
	rhsCol := cols
	T := make([][]*big.Rat, m+1)
	basis := make([]int, m)
	for r := 0; r < m; r++ {
		row := make([]*big.Rat, cols+1)
		for c := 0; c < n; c++ {
			row[c] = new(big.Rat).Set(A[r][c])
		}
		for c := n; c < cols; c++ {
			if c-n == r {
				row[c] = big.NewRat(1, 1)
			} else {
				row[c] = big.NewRat(0, 1)
			}
		}
		row[rhsCol] = new(big.Rat).Set(b[r])
		T[r] = row
		basis[r] = n + r
	}

	phase1Obj := make([]*big.Rat, cols+1)
	for j := 0; j <= cols; j++ {
		phase1Obj[j] = big.NewRat(0, 1)
	}
	for j := 0; j < n; j++ {
		sum := big.NewRat(0, 1)
		for r := 0; r < m; r++ {
			sum.Add(sum, T[r][j])
		}
		phase1Obj[j] = sum
	}
	T[m] = phase1Obj

	simplexMaximize(T, basis, n+m, rhsCol)

	infeasible := big.NewRat(0, 1)
	for r := 0; r < m; r++ {
		if basis[r] >= n {
			infeasible.Add(infeasible, T[r][rhsCol])
		}
	}
	if infeasible.Sign() != 0 {
		return simplexResult{feasible: false}
	}

	phase2Obj := make([]*big.Rat, cols+1)
	for j := 0; j <= cols; j++ {
		phase2Obj[j] = big.NewRat(0, 1)
	}
	costOf := func(col int) *big.Rat {
		if col < n {
			return obj[col]
		}
		return big.NewRat(0, 1)
	}
	for j := 0; j < cols; j++ {
		z := big.NewRat(0, 1)
		for r := 0; r < m; r++ {
			z.Add(z, new(big.Rat).Mul(costOf(basis[r]), T[r][j]))
		}
		c := big.NewRat(0, 1)
		if j < n {
			c = new(big.Rat).Set(obj[j])
		}
		phase2Obj[j] = new(big.Rat).Sub(c, z)
	}
	T[m] = phase2Obj

	unbounded := simplexMaximize(T, basis, n, rhsCol)

	x := make([]*big.Rat, n)
	for j := range x {
		x[j] = big.NewRat(0, 1)
	}
	basisOf := make([]int, n)
	for j := range basisOf {
		basisOf[j] = -1
	}
	for r := 0; r < m; r++ {
		if basis[r] < n {
			x[basis[r]] = new(big.Rat).Set(T[r][rhsCol])
			basisOf[basis[r]] = r
		}
	}
	return simplexResult{feasible: true, unbounded: unbounded, x: x, basisOf: basisOf}
}

// simplexMaximize runs the primal simplex method with Bland's rule (entry
// and leaving ties broken by smallest index) to guarantee termination,
// considering only the first enterLimit columns as entering candidates.
// It returns whether the objective is unbounded.
func simplexMaximize(T [][]*big.Rat, basis []int, enterLimit, rhsCol int) bool {
	m := len(basis)
	objRow := len(T) - 1
	const maxIterations = 20000
	for iter := 0; iter < maxIterations; iter++ {
		entering := -1
		for j := 0; j < enterLimit; j++ {
			if T[objRow][j].Sign() > 0 {
				entering = j
				break
			}
		}
		if entering == -1 {
			return false
		}
		leaving := -1
		var bestRatio *big.Rat
		for r := 0; r < m; r++ {
			if T[r][entering].Sign() <= 0 {
				continue
			}
			ratio := new(big.Rat).Quo(T[r][rhsCol], T[r][entering])
			if leaving == -1 || ratio.Cmp(bestRatio) < 0 || (ratio.Cmp(bestRatio) == 0 && basis[r] < basis[leaving]) {
				leaving = r
				bestRatio = ratio
			}
		}
		if leaving == -1 {
			return true
		}
		pivot(T, leaving, entering, rhsCol)
		basis[leaving] = entering
	}
	return false
}

func pivot(T [][]*big.Rat, pr, pc, rhsCol int) {
	pv := T[pr][pc]
	for c := 0; c <= rhsCol; c++ {
		T[pr][c] = new(big.Rat).Quo(T[pr][c], pv)
	}
	for r := range T {
		if r == pr || T[r][pc].Sign() == 0 {
			continue
		}
		factor := new(big.Rat).Set(T[r][pc])
		for c := 0; c <= rhsCol; c++ {
			T[r][c] = new(big.Rat).Sub(T[r][c], new(big.Rat).Mul(factor, T[pr][c]))
		}
	}
}
