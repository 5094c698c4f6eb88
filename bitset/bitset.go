package bitset

import (
	bbb "github.com/bits-and-blooms/bitset"
)

// Set is a fixed-capacity bitset over indices [0, n). It is a thin wrapper
// around *bbb.BitSet that fixes the capacity at construction time and adds
// the disjointness shortcut used on the completion hot path (spec.md §4.1).
type Set struct {
	bits *bbb.BitSet
	n    uint
}

// New returns an empty Set with capacity for indices [0, n).
// Complexity: O(n/64).
func New(n uint) *Set {
	return &Set{bits: bbb.New(n), n: n}
}

// NewFromIndices returns a Set of capacity n with every index in indices set.
// Indices outside [0, n) are ignored (construction never panics or errors on
// data the caller has already validated elsewhere).
// Complexity: O(n/64 + len(indices)).
func NewFromIndices(n uint, indices []int) *Set {
	s := New(n)
	for _, i := range indices {
		if i >= 0 && uint(i) < n {
			s.bits.Set(uint(i))
		}
	}
	return s
}

// Len returns the bitset's fixed capacity.
func (s *Set) Len() uint { return s.n }

// Get reports whether bit i is set. Out-of-range i reports false.
// Complexity: O(1).
func (s *Set) Get(i int) bool {
	if i < 0 || uint(i) >= s.n {
		return false
	}
	return s.bits.Test(uint(i))
}

// Set assigns bit i to b. Out-of-range i is a silent no-op: callers that
// already validated shapes upstream (binomialset, ipinstance) never pass one.
// Complexity: O(1).
func (s *Set) Set(i int, b bool) {
	if i < 0 || uint(i) >= s.n {
		return
	}
	if b {
		s.bits.Set(uint(i))
	} else {
		s.bits.Clear(uint(i))
	}
}

// IsEmpty reports whether no bit is set.
// Complexity: O(n/64).
func (s *Set) IsEmpty() bool {
	return s.bits.None()
}

// Disjoint reports whether s and other share no set bit. This is the only
// hot-path operation (spec.md §4.1): word-wise AND over every word (no early
// exit), delegated to the backing library's IntersectionCardinality.
// Complexity: O(n/64).
func (s *Set) Disjoint(other *Set) bool {
	if other == nil {
		return true
	}
	return s.bits.IntersectionCardinality(other.bits) == 0
}

// Indices returns the sorted list of set bit positions.
// Complexity: O(n/64 + popcount).
func (s *Set) Indices() []int {
	out := make([]int, 0, s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	return &Set{bits: s.bits.Clone(), n: s.n}
}

// Count returns the number of set bits.
func (s *Set) Count() int {
	return int(s.bits.Count())
}
