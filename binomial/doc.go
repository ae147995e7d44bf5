// Package binomial implements a mergeable min-priority queue as a binomial
// heap: a forest of binomial trees whose roots form a singly linked list
// ordered by degree.
//
// Overview:
//
//   - A binomial tree of degree d has exactly 2^d nodes; its root has d
//     children of degrees d-1, d-2, ..., 0 (leftmost first).
//   - After every public operation the root list holds at most one tree of
//     each degree, so a heap of n elements has at most ⌊log2 n⌋+1 roots.
//   - The heap caches the root with the smallest key, so Min is O(1).
//
// Operations and costs:
//
//   - Insert:      O(1) amortized (prepend a degree-0 tree, consolidate).
//   - Min:         O(1).
//   - ExtractMin:  O(log n) (detach, reverse children, merge, consolidate, rescan).
//   - DecreaseKey: O(log n) sift-up that swaps elements, never subtrees.
//   - Merge:       O(log n + log m) merge-by-degree followed by consolidation.
//
// Consolidation (linkSameDegreeTrees) is one left-to-right pass with a
// lookahead of two roots:
//
//	degrees differ                 → advance
//	next-next has the same degree  → advance (link the later pair instead)
//	exactly two of that degree     → link: smaller key becomes the parent
//
// Skipping the first of three equal-degree roots is what keeps the pass
// correct after a merge, where runs of three (two inputs plus one carry) occur.
//
// Handles:
//
//	Insert returns a pq.Handle pointing at the element, not at the tree node.
//	DecreaseKey moves elements between nodes while sifting up and rebinds
//	them, so a handle always follows its own (key, payload) pair.
//
// Thread safety:
//
//	A Heap is not safe for concurrent use. Synchronize externally.
package binomial
