// Package meldheap is a small library of mergeable min-priority queues and
// the graph algorithms that exercise them.
//
// What is inside?
//
//   - pq/        the MinPQ contract, Handle, sentinel errors and helpers
//   - binomial/  binomial heap: forest of binomial trees, O(log n) everything
//   - pairing/   pairing heap: O(1) insert/meld, two-pass extract-min
//   - pqstats/   decorator that counts and times heap operations, with
//     Prometheus export
//   - graph/     compact adjacency-list graph over int vertices
//   - builder/   seeded random graph generators
//   - dijkstra/  single-source shortest paths with decrease-key
//   - prim/      minimum spanning tree with decrease-key
//   - bench/     experiment runner comparing heap variants in parallel
//
// The heaps store (key, payload) pairs of ints. Insert returns a Handle that
// stays valid until its element is extracted, so callers can lower a key
// without searching:
//
//	q := binomial.New()
//	h := q.Insert(40, 7)
//	q.Insert(10, 3)
//	_, _ = q.DecreaseKey(h, 5)
//	key, payload, _ := q.ExtractMin() // 5, 7
//
// Heaps are not safe for concurrent use; run one heap per goroutine.
//
// The heapbench command (cmd/heapbench) generates random graphs, runs
// Dijkstra and Prim on every heap variant and reports timings and
// operation counts.
package meldheap
