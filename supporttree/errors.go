package supporttree

import "errors"

// Sentinel errors for supporttree package operations.
var (
	// ErrNotFound indicates Remove was asked to remove a binomial whose
	// positive-support path (or residency at the path's terminal node) does
	// not match any binomial currently in the tree.
	ErrNotFound = errors.New("supporttree: binomial not found")
)
