// Package pairqueue implements the PairQueue strategies of spec.md §4.6:
// generators of critical index pairs (i, j), i > j, for S-binomial
// construction during Buchberger completion.
//
// Strategy is deliberately decoupled from binomial/order/binomialset (no
// import of either): scoring for the priority-based strategies is supplied
// by the caller as a plain ScoreFunc/ProductiveFunc closure over whatever
// context (order, current solution vector) Buchberger has in hand. This
// mirrors the teacher's tsp/bb.go preference for "dependencies explicit,
// testing simpler" — a pairqueue.Strategy is unit-testable with bare ints,
// no binomial fixtures required.
//
// Every strategy implements Grew(n)/Shrunk(r, k) exactly as spec.md §4.6
// describes: Grew(n) is called once per push with n the basis size after
// the push; Shrunk(r, k) is called once per auto-reduction pass with r the
// total elements removed and k the count whose index was below the pair
// currently being drawn. FIFO remaps its cursor exactly from (r, k); the
// priority-heap strategies (PairPriority, BatchPriority) cannot recover the
// exact identity of removed indices from counts alone, so they drop any
// heap entry that can no longer be valid under the new, smaller basis size
// and accept that a few still-valid pairs may be dropped early — documented
// in DESIGN.md as an accepted approximation, since heap ordering is already
// a heuristic rather than the exhaustiveness guarantee FIFO provides.
package pairqueue
