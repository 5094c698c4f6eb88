package refsolver

import (
	"math"
	"math/big"

	"github.com/gmlangeloh/ipgb/oracle"
)

// Unbounded is the u[] sentinel meaning "no upper bound on this variable".
const Unbounded = int64(math.MaxInt64)

// LPSolver implements oracle.LPOracle via an exact rational two-phase
// simplex with Bland's rule for termination, plus a bounded
// branch-and-bound layer for VarType Integer variables. It favors
// correctness and exactness over performance or global optimality on
// integer models: Solve on an integer model returns the first
// integer-feasible leaf found, not necessarily the optimum.
type LPSolver struct {
	maxBranchNodes int
}

// NewLPSolver returns an LPOracle reference implementation. maxBranchNodes
// bounds the branch-and-bound search tree for integer models; 0 selects a
// default of 2000.
func NewLPSolver(maxBranchNodes int) *LPSolver {
	if maxBranchNodes <= 0 {
		maxBranchNodes = 2000
	}
	return &LPSolver{maxBranchNodes: maxBranchNodes}
}

// lpModel is the concrete handle behind oracle.Model for this package.
type lpModel struct {
	Aeq      [][]*big.Rat
	beq      []*big.Rat
	origN    int
	colOrig  []int  // column -> original variable index, or -1 for a bound slack
	colSign  []int8 // +1 for the variable itself or its positive split, -1 for a free variable's negative split
	varType  []oracle.VarType
	nonneg   []bool
	objC     []int64 // original objective row (len origN), nil if none supplied
}

func (s *LPSolver) PositiveRowSpan(A [][]int64, b []int64) ([]*big.Rat, error) {
	m := len(A)
	n := 0
	if m > 0 {
		n = len(A[0])
	}
	for _, row := range A {
		if len(row) != n {
			return nil, ErrDimensionMismatch
		}
	}
	if len(b) != m {
		return nil, ErrDimensionMismatch
	}

	Aeq := toRatMatrix(A)
	beq := toRatVector(b)
	obj := make([]*big.Rat, n)
	for j := range obj {
		obj[j] = big.NewRat(1, 1)
	}

	res := runBigM(Aeq, beq, obj, n)
	if !res.feasible {
		return nil, oracle.ErrInfeasible
	}

	// y solves B^T y = c_B for the final basis B.
	mRows := len(Aeq)
	Bt := make([][]*big.Rat, mRows)
	cB := make([]*big.Rat, mRows)
	for r := 0; r < mRows; r++ {
		Bt[r] = make([]*big.Rat, mRows)
	}
	for col, basisRow := range res.basisOf {
		if basisRow < 0 || col >= n {
			continue
		}
		for r := 0; r < mRows; r++ {
			Bt[r][basisRow] = new(big.Rat).Set(Aeq[r][col])
		}
		cB[basisRow] = big.NewRat(1, 1)
	}
	for r := 0; r < mRows; r++ {
		for c := 0; c < mRows; c++ {
			if Bt[r][c] == nil {
				Bt[r][c] = big.NewRat(0, 1)
			}
		}
		if cB[r] == nil {
			cB[r] = big.NewRat(0, 1)
		}
	}
	y, ok := solveSquareRat(transposeRat(Bt), cB)
	if !ok {
		return nil, oracle.ErrOracleFailure
	}

	out := make([]*big.Rat, n)
	for j := 0; j < n; j++ {
		acc := big.NewRat(0, 1)
		for r := 0; r < m; r++ {
			acc.Add(acc, new(big.Rat).Mul(big.NewRat(A[r][j], 1), y[r]))
		}
		out[j] = acc
	}
	return out, nil
}

func (s *LPSolver) JumpModel(A [][]int64, b []int64, C [][]int64, u []int64, nonneg []bool, varType []oracle.VarType) (oracle.Model, error) {
	m := len(A)
	n := 0
	if m > 0 {
		n = len(A[0])
	}
	for _, row := range A {
		if len(row) != n {
			return nil, ErrDimensionMismatch
		}
	}
	if len(b) != m || (len(u) != 0 && len(u) != n) || (len(nonneg) != 0 && len(nonneg) != n) {
		return nil, ErrDimensionMismatch
	}

	model := &lpModel{origN: n, varType: varType, nonneg: nonneg}
	if len(C) > 0 {
		model.objC = C[0]
	}

	structCols := 0
	colOrig := []int{}
	colSign := []int8{}
	for j := 0; j < n; j++ {
		if nonneg == nil || nonneg[j] {
			colOrig = append(colOrig, j)
			colSign = append(colSign, 1)
			structCols++
		} else {
			colOrig = append(colOrig, j, j)
			colSign = append(colSign, 1, -1)
			structCols += 2
		}
	}

	Aeq := make([][]*big.Rat, m)
	for r := 0; r < m; r++ {
		Aeq[r] = make([]*big.Rat, structCols)
		col := 0
		for j := 0; j < n; j++ {
			if nonneg == nil || nonneg[j] {
				Aeq[r][col] = big.NewRat(A[r][j], 1)
				col++
			} else {
				Aeq[r][col] = big.NewRat(A[r][j], 1)
				Aeq[r][col+1] = new(big.Rat).Neg(Aeq[r][col])
				col += 2
			}
		}
	}
	beq := toRatVector(b)

	for j := 0; j < n; j++ {
		if len(u) == 0 || u[j] == Unbounded {
			continue
		}
		if nonneg != nil && !nonneg[j] {
			continue
		}
		varCol := -1
		for c, oi := range colOrig {
			if oi == j {
				varCol = c
				break
			}
		}
		newRow := make([]*big.Rat, len(Aeq[0])+1)
		for c := range newRow {
			newRow[c] = big.NewRat(0, 1)
		}
		newRow[varCol] = big.NewRat(1, 1)
		newRow[len(Aeq[0])] = big.NewRat(1, 1)
		for r := range Aeq {
			Aeq[r] = append(Aeq[r], big.NewRat(0, 1))
		}
		Aeq = append(Aeq, newRow)
		beq = append(beq, big.NewRat(u[j], 1))
		colOrig = append(colOrig, -1)
		colSign = append(colSign, 0)
	}

	model.Aeq = Aeq
	model.beq = beq
	model.colOrig = colOrig
	model.colSign = colSign
	return model, nil
}

func asModel(m oracle.Model) (*lpModel, error) {
	lm, ok := m.(*lpModel)
	if !ok {
		return nil, ErrUnknownModel
	}
	return lm, nil
}

func (s *LPSolver) hasIntegerVars(lm *lpModel) bool {
	for _, vt := range lm.varType {
		if vt == oracle.Integer {
			return true
		}
	}
	return false
}

func (s *LPSolver) IsFeasible(m oracle.Model) (bool, error) {
	lm, err := asModel(m)
	if err != nil {
		return false, err
	}
	if s.hasIntegerVars(lm) {
		_, ok, err := s.branchAndBound(lm, nil)
		return ok, err
	}
	obj := make([]*big.Rat, len(lm.Aeq[0]))
	for j := range obj {
		obj[j] = big.NewRat(0, 1)
	}
	res := runBigM(lm.Aeq, lm.beq, obj, len(obj))
	return res.feasible, nil
}

func (s *LPSolver) IsBounded(m oracle.Model, variable int) (bool, error) {
	lm, err := asModel(m)
	if err != nil {
		return false, err
	}
	if variable < 0 || variable >= lm.origN {
		return false, ErrDimensionMismatch
	}
	obj := make([]*big.Rat, len(lm.Aeq[0]))
	for j := range obj {
		obj[j] = big.NewRat(0, 1)
	}
	for c, oi := range lm.colOrig {
		if oi == variable {
			obj[c] = big.NewRat(int64(lm.colSign[c]), 1)
		}
	}
	res := runBigM(lm.Aeq, lm.beq, obj, len(obj))
	if !res.feasible {
		return true, nil
	}
	return !res.unbounded, nil
}

func (s *LPSolver) SetNormalizedRHS(m oracle.Model, newRHS []int64) error {
	lm, err := asModel(m)
	if err != nil {
		return err
	}
	if len(newRHS) > len(lm.beq) {
		return ErrDimensionMismatch
	}
	for i, v := range newRHS {
		lm.beq[i] = big.NewRat(v, 1)
	}
	return nil
}

func (s *LPSolver) UnboundednessIPModel(A [][]int64, nonneg []bool, i int) (oracle.Model, error) {
	m := len(A)
	n := 0
	if m > 0 {
		n = len(A[0])
	}
	if i < 0 || i >= n {
		return nil, ErrDimensionMismatch
	}
	// ker(A): A u = 0, u_i >= 1, u_j >= 0 for j in nonneg, j != i.
	b := make([]int64, m)
	u := make([]int64, n)
	for j := range u {
		u[j] = Unbounded
	}
	vt := make([]oracle.VarType, n)
	for j := range vt {
		vt[j] = oracle.Integer
	}
	model, err := s.JumpModel(A, b, nil, u, nonneg, vt)
	if err != nil {
		return nil, err
	}
	lm := model.(*lpModel)
	newRow := make([]*big.Rat, len(lm.Aeq[0])+1)
	for c := range newRow {
		newRow[c] = big.NewRat(0, 1)
	}
	for c, oi := range lm.colOrig {
		if oi == i {
			newRow[c] = big.NewRat(int64(lm.colSign[c]), 1)
		}
	}
	newRow[len(lm.Aeq[0])] = big.NewRat(-1, 1)
	for r := range lm.Aeq {
		lm.Aeq[r] = append(lm.Aeq[r], big.NewRat(0, 1))
	}
	lm.Aeq = append(lm.Aeq, newRow)
	lm.beq = append(lm.beq, big.NewRat(1, 1))
	lm.colOrig = append(lm.colOrig, -1)
	lm.colSign = append(lm.colSign, 0)
	return lm, nil
}

func (s *LPSolver) OptimalBasis(m oracle.Model) ([]bool, error) {
	lm, err := asModel(m)
	if err != nil {
		return nil, err
	}
	obj := make([]*big.Rat, len(lm.Aeq[0]))
	for j := range obj {
		obj[j] = big.NewRat(0, 1)
		if j < len(lm.colOrig) && lm.objC != nil && lm.colOrig[j] >= 0 && lm.colOrig[j] < len(lm.objC) {
			obj[j] = big.NewRat(int64(lm.colSign[j])*lm.objC[lm.colOrig[j]], 1)
		}
	}
	res := runBigM(lm.Aeq, lm.beq, obj, len(obj))
	if !res.feasible {
		return nil, oracle.ErrInfeasible
	}
	basic := make([]bool, lm.origN)
	for col, row := range res.basisOf {
		if row >= 0 && col < len(lm.colOrig) && lm.colOrig[col] >= 0 {
			basic[lm.colOrig[col]] = true
		}
	}
	return basic, nil
}

func (s *LPSolver) Solve(m oracle.Model) ([]int64, bool, error) {
	lm, err := asModel(m)
	if err != nil {
		return nil, false, err
	}
	if s.hasIntegerVars(lm) {
		return s.branchAndBound(lm, nil)
	}
	obj := make([]*big.Rat, len(lm.Aeq[0]))
	for j := range obj {
		obj[j] = big.NewRat(0, 1)
		if j < len(lm.colOrig) && lm.objC != nil && lm.colOrig[j] >= 0 && lm.colOrig[j] < len(lm.objC) {
			obj[j] = big.NewRat(int64(lm.colSign[j])*lm.objC[lm.colOrig[j]], 1)
		}
	}
	res := runBigM(lm.Aeq, lm.beq, obj, len(obj))
	if !res.feasible {
		return nil, false, nil
	}
	return collapseColumns(lm, res.x), true, nil
}

func collapseColumns(lm *lpModel, x []*big.Rat) []int64 {
	out := make([]int64, lm.origN)
	for c, oi := range lm.colOrig {
		if oi < 0 || c >= len(x) {
			continue
		}
		v := roundRat(x[c])
		out[oi] += int64(lm.colSign[c]) * v
	}
	return out
}

func roundRat(r *big.Rat) int64 {
	num := new(big.Int).Set(r.Num())
	den := new(big.Int).Set(r.Denom())
	q, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	if rem.Sign() != 0 {
		half := new(big.Int).Mul(big.NewInt(2), new(big.Int).Abs(rem))
		if half.Cmp(new(big.Int).Abs(den)) >= 0 {
			if (num.Sign() < 0) != (den.Sign() < 0) {
				q.Sub(q, big.NewInt(1))
			} else {
				q.Add(q, big.NewInt(1))
			}
		}
	}
	return q.Int64()
}

// branchAndBound performs feasibility-directed branch-and-bound over the
// variables flagged oracle.Integer in lm.varType, returning the first
// integer-feasible leaf found; the search ignores the objective, so that
// leaf is not necessarily optimal.
func (s *LPSolver) branchAndBound(lm *lpModel, extraBounds [][2]int64) ([]int64, bool, error) {
	type node struct {
		bounds map[int][2]int64 // origVarIndex -> [lo, hi], only for integer vars with a tightened bound
	}
	nodes := []node{{bounds: map[int][2]int64{}}}
	visited := 0
	for len(nodes) > 0 && visited < s.maxBranchNodes {
		visited++
		cur := nodes[len(nodes)-1]
		nodes = nodes[:len(nodes)-1]

		Aeq, beq := cloneRatSystem(lm.Aeq, lm.beq)
		for vi, bound := range cur.bounds {
			addBoundRows(lm, &Aeq, &beq, vi, bound[0], bound[1])
		}

		obj := make([]*big.Rat, len(Aeq[0]))
		for j := range obj {
			obj[j] = big.NewRat(0, 1)
		}
		res := runBigM(Aeq, beq, obj, len(obj))
		if !res.feasible {
			continue
		}
		x := collapseColumnsRat(lm, res.x)
		fracVar := -1
		for vi, vt := range lm.varType {
			if vt != oracle.Integer {
				continue
			}
			if !x[vi].IsInt() {
				fracVar = vi
				break
			}
		}
		if fracVar == -1 {
			out := make([]int64, lm.origN)
			for j, v := range x {
				out[j] = roundRat(v)
			}
			return out, true, nil
		}
		floorVal := new(big.Int).Div(x[fracVar].Num(), x[fracVar].Denom()).Int64()
		lo, hi := cur.bounds[fracVar][0], cur.bounds[fracVar][1]
		if lo == 0 && hi == 0 {
			hi = Unbounded
		}
		left := node{bounds: cloneBounds(cur.bounds)}
		left.bounds[fracVar] = [2]int64{lo, floorVal}
		right := node{bounds: cloneBounds(cur.bounds)}
		right.bounds[fracVar] = [2]int64{floorVal + 1, hi}
		nodes = append(nodes, left, right)
	}
	return nil, false, nil
}

func cloneBounds(b map[int][2]int64) map[int][2]int64 {
	out := make(map[int][2]int64, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

func cloneRatSystem(Aeq [][]*big.Rat, beq []*big.Rat) ([][]*big.Rat, []*big.Rat) {
	A2 := make([][]*big.Rat, len(Aeq))
	for r, row := range Aeq {
		A2[r] = make([]*big.Rat, len(row))
		for c, v := range row {
			A2[r][c] = new(big.Rat).Set(v)
		}
	}
	b2 := make([]*big.Rat, len(beq))
	for i, v := range beq {
		b2[i] = new(big.Rat).Set(v)
	}
	return A2, b2
}

func addBoundRows(lm *lpModel, Aeq *[][]*big.Rat, beq *[]*big.Rat, origVar int, lo, hi int64) {
	cols := findColumns(lm, origVar)
	width := len(edgeRow(*Aeq))
	if lo > 0 {
		row := zeroRow(width + 1)
		for _, c := range cols {
			row[c.col] = big.NewRat(int64(c.sign), 1)
		}
		row[width] = big.NewRat(-1, 1)
		appendColumn(Aeq)
		*Aeq = append(*Aeq, row)
		*beq = append(*beq, big.NewRat(lo, 1))
		width++
	}
	if hi != Unbounded {
		row := zeroRow(width + 1)
		for _, c := range cols {
			row[c.col] = big.NewRat(int64(c.sign), 1)
		}
		row[width] = big.NewRat(1, 1)
		appendColumn(Aeq)
		*Aeq = append(*Aeq, row)
		*beq = append(*beq, big.NewRat(hi, 1))
	}
}

type colRef struct {
	col  int
	sign int8
}

func findColumns(lm *lpModel, origVar int) []colRef {
	var out []colRef
	for c, oi := range lm.colOrig {
		if oi == origVar {
			out = append(out, colRef{col: c, sign: lm.colSign[c]})
		}
	}
	return out
}

func edgeRow(Aeq [][]*big.Rat) []*big.Rat {
	if len(Aeq) == 0 {
		return nil
	}
	return Aeq[0]
}

func zeroRow(n int) []*big.Rat {
	row := make([]*big.Rat, n)
	for i := range row {
		row[i] = big.NewRat(0, 1)
	}
	return row
}

func appendColumn(Aeq *[][]*big.Rat) {
	for r := range *Aeq {
		(*Aeq)[r] = append((*Aeq)[r], big.NewRat(0, 1))
	}
}

func collapseColumnsRat(lm *lpModel, x []*big.Rat) []*big.Rat {
	out := make([]*big.Rat, lm.origN)
	for j := range out {
		out[j] = big.NewRat(0, 1)
	}
	for c, oi := range lm.colOrig {
		if oi < 0 || c >= len(x) {
			continue
		}
		term := new(big.Rat).Mul(big.NewRat(int64(lm.colSign[c]), 1), x[c])
		out[oi].Add(out[oi], term)
	}
	return out
}

func toRatMatrix(A [][]int64) [][]*big.Rat {
	out := make([][]*big.Rat, len(A))
	for r, row := range A {
		out[r] = make([]*big.Rat, len(row))
		for c, v := range row {
			out[r][c] = big.NewRat(v, 1)
		}
	}
	return out
}

func toRatVector(v []int64) []*big.Rat {
	out := make([]*big.Rat, len(v))
	for i, x := range v {
		out[i] = big.NewRat(x, 1)
	}
	return out
}

func transposeRat(M [][]*big.Rat) [][]*big.Rat {
	if len(M) == 0 {
		return nil
	}
	rows, cols := len(M), len(M[0])
	out := make([][]*big.Rat, cols)
	for c := 0; c < cols; c++ {
		out[c] = make([]*big.Rat, rows)
		for r := 0; r < rows; r++ {
			out[c][r] = M[r][c]
		}
	}
	return out
}

// solveSquareRat solves M x = b for a square rational system via Gaussian
// elimination with partial pivoting.
func solveSquareRat(M [][]*big.Rat, b []*big.Rat) ([]*big.Rat, bool) {
	n := len(M)
	aug := make([][]*big.Rat, n)
	for r := 0; r < n; r++ {
		aug[r] = make([]*big.Rat, n+1)
		copy(aug[r], M[r])
		aug[r][n] = b[r]
	}
	for col := 0; col < n; col++ {
		pivot := -1
		for r := col; r < n; r++ {
			if aug[r][col].Sign() != 0 {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			return nil, false
		}
		aug[col], aug[pivot] = aug[pivot], aug[col]
		pv := aug[col][col]
		for r := 0; r < n; r++ {
			if r == col || aug[r][col].Sign() == 0 {
				continue
			}
			factor := new(big.Rat).Quo(aug[r][col], pv)
			for c := col; c <= n; c++ {
				aug[r][c] = new(big.Rat).Sub(aug[r][c], new(big.Rat).Mul(factor, aug[col][c]))
			}
		}
	}
	x := make([]*big.Rat, n)
	for r := 0; r < n; r++ {
		x[r] = new(big.Rat).Quo(aug[r][n], aug[r][r])
	}
	return x, true
}
