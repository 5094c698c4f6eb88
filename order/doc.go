// Package order implements MonomialOrder (spec.md §4.3): a total order on
// ℤⁿ given by a cost matrix C ∈ ℝ^{k×n} (k ≥ n) plus an implicit tiebreak,
// with comparison defined by the first row on which two vectors differ.
//
// Construction repairs a cost row with negative entries by shifting it along
// a strictly-positive row-span vector obtained from oracle.LPOracle, and
// appends a reverse-lex identity tiebreak block when the caller supplies
// fewer than n rows, so the order is never degenerate on any nonzero vector
// of the feasible lattice (spec.md §4.3, "Failure mode").
//
// This package adopts the "plain" equal-cost tiebreak convention uniformly
// (see DESIGN.md, Open Question 1): both Cmp and IsInverted scan the same
// matrix rows, cost rows and tiebreak rows alike, so there is exactly one
// notion of "inverted" in the whole module.
package order
