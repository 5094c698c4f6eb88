// Package bitset provides a fixed-capacity bitset with a single hot-path
// operation: set-wise disjointness between two bitsets of support indices.
//
// Set wraps github.com/bits-and-blooms/bitset, which already stores bits in
// 64-bit words and answers AND-cardinality queries without materializing the
// intersection, giving Disjoint its required word-wise, branch-free behavior
// on the single-word case for free.
//
// Complexity: Get/Set are O(1); Disjoint and IsEmpty are O(n/64).
package bitset
