// Package binomialset implements BinomialSet (spec.md §4.5, §3): an ordered
// sequence of binomials, each oriented under a shared MonomialOrder, with
// parallel positive/negative support bitsets and a co-owned SupportTree kept
// in lockstep on every Push/DeleteAt.
//
// Per spec.md §9 ("Lazy supports are not needed if supports are always
// recomputed from the element on insertion... recompute eagerly on push"),
// Push snapshots each binomial's supports into the set's own parallel
// slices at insertion time rather than relying solely on the binomial's own
// lazy cache, so GCD-criterion disjointness checks never recompute.
//
// The SupportTree here is exclusively owned by the Set: no other entity may
// hold a long-lived reference to its nodes (spec.md §5).
package binomialset
