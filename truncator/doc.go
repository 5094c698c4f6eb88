// Package truncator implements the Truncator of spec.md §4.8: a filter
// applied to every element the initial-generator routine produces and to
// every S-binomial before reduction, discarding vectors that cannot lead
// to a feasible solution.
//
// Simple mode is pure arithmetic over the instance's A, b, u. Model mode
// delegates to a preconstructed oracle.Model (continuous or integer,
// built by the caller via oracle.LPOracle.JumpModel) and asks the
// LPOracle whether it remains feasible once its RHS is shifted by the
// candidate's leading term — grounded on the same "push solving to an
// injected interface" shape as order.Order's LP repair step.
package truncator
