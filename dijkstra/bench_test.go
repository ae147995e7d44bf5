package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/meldheap/builder"
	"github.com/katalvlaran/meldheap/dijkstra"
)

// BenchmarkDijkstra runs both heaps on the default bench scenario scaled
// down: 2000 vertices, 10000 random edges.
func BenchmarkDijkstra(b *testing.B) {
	g, err := builder.RandomEdges(2000, 10000, builder.WithSeed(0))
	if err != nil {
		b.Fatal(err)
	}
	for name, f := range queues {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = dijkstra.Dijkstra(g, dijkstra.WithQueue(f))
			}
		})
	}
}
