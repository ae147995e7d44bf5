package binomial

import "github.com/katalvlaran/meldheap/pq"

// Merge moves every tree of other into h and leaves other empty.
//
// The two root lists are merged by degree, then consolidated, then min is
// rescanned, so h satisfies the one-tree-per-degree invariant on return.
// Handles minted by other remain valid and now refer to elements of h.
// Merging nil, an empty heap, or h itself is a no-op.
//
// Complexity: O(log n + log m).
func (h *Heap) Merge(other *Heap) {
	if other == nil || other == h || other.head == nil {
		return
	}

	other.tok().Link(h.tok())

	h.head = mergeRootLists(h.head, other.head)
	h.size += other.size

	// other is empty and gets a fresh identity; old handles resolve to h.
	other.head, other.min, other.size, other.token = nil, nil, 0, nil

	h.linkSameDegreeTrees()
	h.rescanMin()
}

// Meld implements pq.MinPQ by delegating to Merge.
// other must be a *binomial.Heap; a nil other is a no-op.
func (h *Heap) Meld(other pq.MinPQ) error {
	if other == nil {
		return nil
	}
	o, ok := other.(*Heap)
	if !ok {
		return pq.ErrIncompatibleHeap
	}
	h.Merge(o)

	return nil
}

// mergeRootLists interleaves two degree-ordered root lists into one,
// preserving order and taking from a first on equal degrees.
// It does not consolidate: the result may hold up to two trees per degree.
//
// Complexity: O(len(a) + len(b)).
func mergeRootLists(a, b *node) *node {
	var dummy node
	tail := &dummy
	for a != nil && b != nil {
		if a.degree <= b.degree {
			tail.next = a
			a = a.next
		} else {
			tail.next = b
			b = b.next
		}
		tail = tail.next
	}
	if a != nil {
		tail.next = a
	} else {
		tail.next = b
	}

	return dummy.next
}

// linkSameDegreeTrees makes one left-to-right pass over the root list and
// links adjacent roots of equal degree, so that afterwards every degree
// appears at most once. Input must be ordered by non-decreasing degree with
// runs of at most three equal degrees (what mergeRootLists produces from two
// consolidated lists, or a prepend onto one).
//
// Three cases per step, with curr and its successor next:
//  1. curr.degree != next.degree: advance.
//  2. next.next has the same degree too: advance, so the later two link and
//     the result stays in degree order.
//  3. exactly two share the degree: link them. The smaller key (curr on a tie)
//     becomes the parent and the pass continues from the merged root.
func (h *Heap) linkSameDegreeTrees() {
	if h.head == nil {
		return
	}

	var prev *node
	curr := h.head
	next := curr.next
	for next != nil {
		switch {
		case curr.degree != next.degree,
			next.next != nil && next.next.degree == curr.degree:
			prev = curr
			curr = next
		case curr.key() <= next.key():
			curr.next = next.next
			h.link(next, curr)
		default:
			if prev == nil {
				h.head = next
			} else {
				prev.next = next
			}
			h.link(curr, next)
			curr = next
		}
		next = curr.next
	}
}

// link makes child the new leftmost child of parent. Both must be roots of
// equal degree and parent.key() <= child.key().
func (h *Heap) link(child, parent *node) {
	child.parent = parent
	child.sibling = parent.firstChild
	child.next = nil
	parent.firstChild = child
	parent.degree++

	// A tie can bury the cached min under an equal key; keep min on a root.
	if h.min == child {
		h.min = parent
	}
}

// rescanMin walks the root list and caches the first root with the smallest key.
func (h *Heap) rescanMin() {
	h.min = nil
	for r := h.head; r != nil; r = r.next {
		if h.min == nil || r.key() < h.min.key() {
			h.min = r
		}
	}
}
