// Package reducer implements the divisibility predicates and the
// reduce_step/reduce_full loop of spec.md §4.7.
//
// Interpretation of the general vs. simple divisibility modes (spec.md
// §4.7 is terse here; see DESIGN.md for the recorded reading): "simple"
// (leading-term-only) scans positive_support(r) and requires g_i ≥ r_i
// there, ignoring r's negative coordinates entirely. "General" (full-filter)
// is strictly stronger: it additionally requires every negative-support
// coordinate of r to match sign and magnitude in g, so a full-filter
// divisor constrains both the leading and the trailing term of r against g,
// not only the leading term. "Graded" layers an extra degree bound
// (A·r⁺ ≤ A·g⁺ coordinate-wise) on top of the general check.
//
// ReduceFull drives supporttree.Tree.FindReducer with the DivideFunc
// matching the selected mode, then calls binomial.ReduceStep and
// re-orients the remainder under the caller's order.Order — the tie-break
// convention is exactly order.Order's (DESIGN.md, Open Question 1).
package reducer
