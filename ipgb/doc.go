// Package ipgb is the public façade over the toric-ideal Gröbner basis,
// Markov basis, and integer-program test-set machinery of this module
// (spec.md §6.5): ComputeGB, ProjectAndLift, MarkovBasis, and OptimizeWith.
//
// ComputeGB, ProjectAndLift and MarkovBasis take an already-normalized
// *ipinstance.Instance (built once by the caller via ipinstance.New,
// typically with the default oracles from DefaultOracles) and work with
// vectors expressed in the caller's ORIGINAL column order — the order the
// caller passed into ipinstance.New — never the instance's internal
// permuted order. Each of them translates into and out of the instance's
// permuted coordinate space internally, so a caller never has to reason
// about the bounded/nonneg-category permutation ipinstance.New computes.
// OptimizeWith takes no instance and translates nothing: it works in the
// coordinate space that its basis, solution and order share.
//
// Errors from every leaf package are wrapped into the five top-level kinds
// of spec.md §7 at this boundary (ErrInputInvalid, ErrUnbounded,
// ErrOverflow, ErrOracleFailure, ErrInfeasiblePolytope); callers match them
// with errors.Is, never by string comparison or by depending on a leaf
// package's own sentinels directly.
package ipgb
