package pairqueue_test

import (
	"fmt"

	"github.com/gmlangeloh/ipgb/pairqueue"
)

// ExampleFIFO demonstrates FIFO's lexicographic pair order over a basis
// that grows to four elements before any pair is drawn.
func ExampleFIFO() {
	f := pairqueue.NewFIFO()
	if err := f.Grew(4); err != nil {
		fmt.Println("grew:", err)
		return
	}
	for {
		p, ok := f.NextPair()
		if !ok {
			break
		}
		fmt.Println(p.I, p.J)
	}
	// Output:
	// 1 0
	// 2 0
	// 2 1
	// 3 0
	// 3 1
	// 3 2
}
