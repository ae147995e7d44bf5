// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/meldheap/dijkstra"
	"github.com/katalvlaran/meldheap/graph"
	"github.com/katalvlaran/meldheap/pairing"
)

// ExampleDijkstra demonstrates distances and path reconstruction on a
// small undirected graph.
func ExampleDijkstra() {
	// 1) Triangle 0-1-2 plus a tail 2-3.
	g := graph.New(4)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(0, 2, 5)
	_ = g.AddEdge(2, 3, 1)

	// 2) Run from vertex 0 with the default binomial heap.
	res, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Print distances and one path.
	path, _ := res.Path(3)
	fmt.Println("dist:", res.Dist)
	fmt.Println("path to 3:", path)
	// Output:
	// dist: [0 1 3 4]
	// path to 3: [0 1 2 3]
}

// ExampleWithQueue runs the same query on the pairing heap.
func ExampleWithQueue() {
	g := graph.New(3, graph.WithDirected())
	_ = g.AddEdge(0, 1, 4)
	_ = g.AddEdge(0, 2, 1)
	_ = g.AddEdge(2, 1, 2)

	res, err := dijkstra.Dijkstra(g, dijkstra.WithQueue(pairing.Factory()))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Dist[1], res.Prev[1])
	// Output: 3 2
}
