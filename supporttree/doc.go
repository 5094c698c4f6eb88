// Package supporttree implements SupportTree (spec.md §4.4): a trie over
// binomials, keyed by the sorted positive-support index path of each
// binomial, that answers "is there a divisor of g in the current basis?" by
// descending only the branches where g has the matching sign, rather than
// scanning the whole basis.
//
// The divisibility predicate itself belongs to the reducer package (spec.md
// §4.7); rather than importing reducer (which needs SupportTree to implement
// reduce_full, and a cycle would follow), FindReducer and EnumerateReducers
// take a DivideFunc supplied by the caller. reducer.Divides is the
// production argument; tests may supply a trivial stand-in.
//
// Sibling order is insertion order (spec.md §4.4, "no sibling reordering
// constraint beyond insertion order"); children are kept in a slice rather
// than a map so that, combined with the PairQueue's deterministic draw
// order, repeated completions over the same input are reproducible
// (spec.md §5).
package supporttree
