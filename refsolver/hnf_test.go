package refsolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmlangeloh/ipgb/refsolver"
)

func TestHNFLatticeBasisSimpleKernel(t *testing.T) {
	s := refsolver.NewHNFSolver()
	// A = [1 1 1], ker(A) is 2-dimensional.
	A := [][]int64{{1, 1, 1}}
	basis, rank, err := s.HNFLatticeBasis(A)
	require.NoError(t, err)
	assert.Equal(t, 2, rank)
	assert.Len(t, basis, 2)
	for _, row := range basis {
		var dot int64
		for j, v := range row {
			dot += A[0][j] * v
		}
		assert.Equal(t, int64(0), dot)
	}
}

func TestHNFLatticeBasisFullRankIsEmpty(t *testing.T) {
	s := refsolver.NewHNFSolver()
	A := [][]int64{{1, 0}, {0, 1}}
	basis, rank, err := s.HNFLatticeBasis(A)
	require.NoError(t, err)
	assert.Equal(t, 0, rank)
	assert.Empty(t, basis)
}

func TestNormalizeHNFReducesAboveEntries(t *testing.T) {
	s := refsolver.NewHNFSolver()
	H := [][]int64{
		{3, 7},
		{0, 2},
	}
	got := s.NormalizeHNF(H)
	assert.True(t, got[0][0] > 0)
	// Entry above the second row's pivot (column 1) must now be non-positive
	// and strictly smaller in magnitude than that pivot.
	assert.LessOrEqual(t, got[0][1], int64(0))
}

func TestSolveFindsIntegerSolution(t *testing.T) {
	s := refsolver.NewHNFSolver()
	A := [][]int64{{1, 1}}
	b := []int64{4}
	x, ok, err := s.Solve(A, b)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(4), x[0]+x[1])
}

func TestSolveReportsInfeasible(t *testing.T) {
	s := refsolver.NewHNFSolver()
	A := [][]int64{{2, 2}}
	b := []int64{3}
	_, ok, err := s.Solve(A, b)
	require.NoError(t, err)
	assert.False(t, ok)
}
