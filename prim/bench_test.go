package prim_test

import (
	"testing"

	"github.com/katalvlaran/meldheap/builder"
	"github.com/katalvlaran/meldheap/prim"
)

// BenchmarkPrim measures both heaps on a random connected graph with 2000
// vertices and 10000 edges.
func BenchmarkPrim(b *testing.B) {
	g, err := builder.RandomConnected(2000, 10000, builder.WithSeed(0))
	if err != nil {
		b.Fatal(err)
	}
	for name, f := range queues {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = prim.Prim(g, prim.WithQueue(f))
			}
		})
	}
}
