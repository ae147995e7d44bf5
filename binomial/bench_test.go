package binomial_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/meldheap/binomial"
	"github.com/katalvlaran/meldheap/pq"
)

// BenchmarkInsertExtract measures n inserts followed by n extractions.
func BenchmarkInsertExtract(b *testing.B) {
	const n = 10000
	r := rand.New(rand.NewSource(42))
	keys := make([]int, n)
	for i := range keys {
		keys[i] = r.Intn(1 << 20)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := binomial.New()
		for j, k := range keys {
			h.Insert(k, j)
		}
		for !h.Empty() {
			_, _, _ = h.ExtractMin()
		}
	}
}

// BenchmarkDecreaseKey measures a Dijkstra-like mix: every element is
// decreased once before the heap is drained.
func BenchmarkDecreaseKey(b *testing.B) {
	const n = 10000
	for i := 0; i < b.N; i++ {
		h := binomial.New()
		hs := make([]pq.Handle, n)
		for j := range hs {
			hs[j] = h.Insert(n+j, j)
		}
		for j := n - 1; j >= 0; j-- {
			_, _ = h.DecreaseKey(hs[j], j)
		}
		for !h.Empty() {
			_, _, _ = h.ExtractMin()
		}
	}
}
