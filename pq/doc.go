// Package pq defines the contract shared by the mergeable min-priority queues
// of meldheap: the MinPQ interface, opaque Handles and the sentinel errors.
//
// Overview:
//
//   - A MinPQ stores (key, payload) pairs ordered by key, smallest first.
//   - Insert returns a Handle. Keep it: DecreaseKey needs it to find the element
//     again, in O(1), without any search.
//   - ExtractMin always returns both the key and the payload, so a driver such
//     as Dijkstra learns which vertex was settled without scanning its tables.
//   - Meld destructively absorbs another queue of the same implementation.
//
// Implementations:
//
//   - binomial.Heap: forest of binomial trees, degree-ordered root list.
//   - pairing.Heap:  single multiway tree, two-pass pairing on extraction.
//
// Both honor identical semantics, so callers pick one through a Factory:
//
//	var newQueue pq.Factory = func() pq.MinPQ { return pairing.New() }
//
// Error handling (sentinel errors, match with errors.Is):
//
//   - ErrEmptyHeap:        Min or ExtractMin on an empty queue.
//   - ErrNilHandle:        DecreaseKey(nil, ...).
//   - ErrStaleHandle:      DecreaseKey on an element already extracted.
//   - ErrForeignHandle:    DecreaseKey with a handle minted by another queue.
//   - ErrIncompatibleHeap: Meld with a queue of another implementation.
//   - ErrCorrupt:          reported by Validate helpers (and internal bugs).
//
// A DecreaseKey whose new key is larger than the current key is not an error:
// it is an explicit no-op reported by a false return value.
//
// Thread safety:
//
//   - Queues are single-threaded. Concurrent calls on the same instance must be
//     synchronized by the caller.
package pq
