// Package pairing implements a mergeable min-priority queue as a pairing heap:
// one multiway tree, heap-ordered, whose root is always the global minimum.
//
// Overview:
//
//   - Every structural change goes through a single primitive, meld, which
//     makes the larger of two roots the new leftmost child of the smaller.
//   - Children are kept in a singly linked sibling list; each node also
//     remembers its parent so DecreaseKey can cut it out.
//
// Operations and costs (amortized):
//
//   - Insert:      O(1)   meld a singleton with the root.
//   - Min:         O(1).
//   - ExtractMin:  O(log n) two-pass pairing of the root's children.
//   - DecreaseKey: o(log n) cut the subtree and meld it with the root.
//   - Join:        O(1)   meld two roots.
//
// Two-pass pairing (mergePairs):
//
//	pass 1, left to right:  meld children in pairs (c1,c2) (c3,c4) ...; an odd
//	                        last child is carried through as is.
//	pass 2, right to left:  fold the pair results into one tree, starting from
//	                        the last one.
//
// Folding the children left to right in a single pass is asymptotically worse
// and is not used.
//
// Thread safety:
//
//	A Heap is not safe for concurrent use. Synchronize externally.
package pairing
