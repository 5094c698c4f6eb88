// Package binomial implements the Binomial value type: an integer vector in
// ℤⁿ representing g⁺ − g⁻, together with its lazily-computed positive and
// negative supports and the in-place arithmetic the reduction hot path needs
// (spec.md §3, §4.2).
//
// A Binomial never mutates another Binomial's backing slice; Minus writes
// into a caller-supplied destination to let the completion loop reuse one
// scratch buffer across an entire run (spec.md §5, "Temporary buffers for
// minus(result, g, h) are preallocated").
//
// Supports are computed on first demand and refreshed by every in-place
// mutation (Negate swaps them; Minus and ReduceStep invalidate them); a
// Binomial living inside a
// binomialset.Set must never be mutated through any other reference
// (spec.md §5).
package binomial
