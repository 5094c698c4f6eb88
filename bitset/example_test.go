package bitset_test

import (
	"fmt"

	"github.com/gmlangeloh/ipgb/bitset"
)

// ExampleSet demonstrates building a Set from indices and testing
// disjointness, the hot-path operation the GCD criterion relies on
// (spec.md §4.1).
func ExampleSet() {
	a := bitset.NewFromIndices(8, []int{1, 3, 5})
	b := bitset.NewFromIndices(8, []int{0, 2, 4})
	c := bitset.NewFromIndices(8, []int{3, 6})

	fmt.Println(a.Disjoint(b))
	fmt.Println(a.Disjoint(c))
	fmt.Println(a.Indices())
	fmt.Println(a.Count())
	// Output:
	// true
	// false
	// [1 3 5]
	// 3
}
