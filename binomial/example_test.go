// Package binomial_test demonstrates the binomial heap through the shared
// pq.MinPQ contract.
package binomial_test

import (
	"fmt"

	"github.com/katalvlaran/meldheap/binomial"
)

// ExampleHeap inserts six keys and extracts them in order.
func ExampleHeap() {
	h := binomial.New()
	for i, k := range []int{5, 3, 8, 1, 9, 2} {
		h.Insert(k, i)
	}
	for !h.Empty() {
		k, _, _ := h.ExtractMin()
		fmt.Print(k, " ")
	}
	fmt.Println()
	// Output: 1 2 3 5 8 9
}

// ExampleHeap_DecreaseKey keeps a handle per payload, the way Dijkstra does.
func ExampleHeap_DecreaseKey() {
	h := binomial.New()
	a := h.Insert(40, 'a')
	h.Insert(20, 'b')
	h.Insert(30, 'c')

	applied, _ := h.DecreaseKey(a, 10)
	raised, _ := h.DecreaseKey(a, 99)
	k, p, _ := h.ExtractMin()
	fmt.Printf("applied=%v raised=%v min=%d payload=%c\n", applied, raised, k, p)
	// Output: applied=true raised=false min=10 payload=a
}

// ExampleHeap_Merge melds two heaps; the argument is left empty.
func ExampleHeap_Merge() {
	a, b := binomial.New(), binomial.New()
	a.Insert(2, 0)
	a.Insert(7, 0)
	b.Insert(1, 0)
	b.Insert(5, 0)
	a.Merge(b)

	fmt.Println("b empty:", b.Empty(), "degrees:", a.Degrees())
	for !a.Empty() {
		k, _, _ := a.ExtractMin()
		fmt.Print(k, " ")
	}
	fmt.Println()
	// Output:
	// b empty: true degrees: [2]
	// 1 2 5 7
}
