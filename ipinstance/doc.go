// Package ipinstance implements IPInstance (spec.md §3, §4.11): the
// normalized form of an integer program min c·x s.t. Ax=b, l≤x≤u, x∈ℤⁿ
// that the rest of this module operates on.
//
// New performs the full normalization pipeline: slack rows for any
// inequality constraint, equality rows for finite upper bounds, optional
// objective-direction flip, an LP feasibility/boundedness pass via
// oracle.LPOracle, a stable permutation into
// [bounded-nonneg | unbounded-nonneg | unrestricted], and an HNF row
// basis of the permuted kernel plus a fiber solution via
// oracle.HermiteOracle.
//
// Grounded on the teacher's matrix package: the validate-then-build shape
// of matrix/impl_builder.go, and matrix/errors.go's priority ordering
// (shape, then index, then structural violation) reused here for New's
// error checks.
package ipinstance
