// Package projectlift implements project-and-lift Markov basis construction
// (spec.md §4.10): starting from every originally non-negative variable
// relaxed to free, it repeatedly either discovers an unboundedness ray (via
// LPOracle) and folds it straight into the generating set, or runs
// Buchberger completion (buchberger.Complete) against the relaxation with
// one more variable constrained non-negative, until every variable has been
// lifted.
//
// Initialization simplification: the literal algorithm seeds the first
// `rank` columns of the normalized HNF basis as an already-valid partial
// Markov basis on a corresponding subset of variables, starting only the
// complementary columns as unlifted. This package instead starts with every
// originally non-negative variable unlifted and seeds markov with the full
// (normalized) HNF basis, embedded at full length. This is still correct —
// any lattice basis is trivially a generating set once every variable is
// free — it just forgoes the column-subset optimization; see DESIGN.md for
// the full rationale.
//
// State tracks unlifted, nonnegative, markov, dual_solution and
// primal_solutions ALL in working_instance's fixed permuted coordinate
// space, since relaxation is rebuilt (and typically repermuted) every
// iteration: anything meant to persist stably across iterations lives in
// the one space that never changes. Values are translated into
// relaxation's current space, via Instance.ToOriginal/ToPermuted, only
// transiently around an LP query or a Buchberger completion call, and
// translated straight back afterward.
package projectlift
