// Package reftool implements the transient-file codec used to interchange
// problem data and bases with an external reference tool (spec.md §6.3,
// §6.4). Every file under a caller-chosen working directory and project
// prefix p follows the same convention: line 1 holds the dimensions as
// whitespace-separated integers, and every following line holds one dense
// integer matrix row. A vector is simply a one-row matrix under this
// convention.
//
// Known extensions:
//
//	p.mat   problem matrix
//	p.cost  objective matrix
//	p.sign  per-variable non-negativity flags (0 or 1)
//	p.zsol  an integer feasible point
//	p.feas  a feasible point for normal-form queries
//	p.mar   Markov basis
//	p.gro   Gröbner basis
//	p.gra   Graver basis
//	p.nf    normal form
//	p.min   optimal solution
//	p.err   stderr of the external process
//
// This package reads and writes these files; it never spawns or manages
// the external process itself, which is left to an out-of-scope CLI
// driver. Clean removes every known-extension file for a prefix, so a
// caller can reuse the same working directory across invocations without
// stale files leaking into the next one.
package reftool
