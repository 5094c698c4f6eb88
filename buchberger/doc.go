// Package buchberger implements Buchberger completion (spec.md §4.9): the
// main loop that grows a seed set of binomials into a Gröbner basis (or
// truncated test set) of the toric ideal, using SupportTree-backed
// reduction, a caller-selected PairQueue strategy, and an optional
// Truncator.
//
// Complete takes a seed slice plus an order.Order and a minimization flag,
// and builds the binomialset.Set itself, so it stays decoupled from
// ipinstance/projectlift: the unit-vector seed construction
// (eᵢ − slacks − r) is projectlift's job, not this package's.
//
// Inter-reduction (spec.md §4.9 step 9) is implemented by physically
// removing the candidate from the BinomialSet before reducing it against
// the rest (rather than only excluding it via reducer.ReduceFull's skip
// parameter), since a binomial's SupportTree placement is keyed by its
// positive support at insertion time and a reduction that shrinks the
// leading term invalidates that placement; a changed (or redundant)
// result is re-pushed (or dropped), which also lets the PairQueue
// naturally re-propose pairs against it. Because net PairQueue bookkeeping
// can't observe which individual indices were removed, Shrunk(r, k) is
// always called with k == r, the same accepted-approximation documented
// in pairqueue/doc.go.
package buchberger
