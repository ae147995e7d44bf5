// Package dijkstra implements Dijkstra's single-source shortest-path algorithm
// on graph.Graph with non-negative integer weights, driven by any mergeable
// priority queue through the pq.MinPQ contract.
//
// Overview:
//
//   - Every vertex is inserted into the queue exactly once: the source with key
//     0, every other vertex with key Infinity. The payload is the vertex id.
//   - The driver keeps one pq.Handle per vertex. Relaxing an edge lowers the
//     neighbour's key in place with DecreaseKey; no duplicate entries are ever
//     pushed and no stale entries are ever popped.
//   - ExtractMin returns the vertex id as payload, so no rescan is needed to
//     learn which vertex was settled.
//   - Extraction stops at the first Infinity key: every remaining vertex is
//     unreachable.
//
// The queue implementation is chosen with WithQueue (default: binomial heap).
// Pass pairing.Factory() to use the pairing heap, or wrap either with
// pqstats to collect operation statistics.
//
// Performance and complexity:
//
//   - Binomial heap: O((V + E) log V) worst case.
//   - Pairing heap: O(V log V + E) amortized in practice; decrease-key is O(1)
//     plus deferred work.
//   - Space: O(V) for distances, predecessors, handles and the queue.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:         nil *graph.Graph.
//   - ErrSourceOutOfRange: Source is not a vertex of the graph.
//   - ErrNegativeWeight:   alias of graph.ErrNegativeWeight; graph.AddEdge
//     refuses negative weights, so Dijkstra itself never returns it.
//   - ErrUnreachable:      Result.Path asked for a vertex the source cannot reach.
//   - ErrBadMaxDistance:   panic value of WithMaxDistance on a negative argument.
//
// Queue errors (which would indicate a bug in a heap) are wrapped with the
// vertex being processed and returned as-is.
//
// Example:
//
//	res, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithQueue(pairing.Factory()))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, _ := res.Path(7)
//	fmt.Println(res.Dist[7], path)
//
// Thread safety: Dijkstra only reads the graph. Each call creates its own
// queue, so concurrent calls on the same finished graph are safe.
package dijkstra
