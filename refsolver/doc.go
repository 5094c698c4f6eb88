// Package refsolver provides reference implementations of oracle.LPOracle
// and oracle.HermiteOracle, built entirely on math/big for exact integer
// and rational arithmetic. They exist so the rest of this module is
// testable end to end without a real MIP solver: correctness over speed,
// the same tradeoff the teacher's refsolver-equivalent test helpers make
// (small, exact, unoptimized).
//
// HNFSolver implements integer kernel-basis extraction and linear
// Diophantine solving via classic row-style Hermite normal form reduction
// (Cohen, "A Course in Computational Algebraic Number Theory", Algorithm
// 2.4.9), generalized into a single reduceRows helper shared by both
// operations. LPSolver implements a two-phase rational simplex (Dantzig's
// original method, big.Rat tableau) with branch-and-bound layered on top
// for VarType Integer variables.
package refsolver
