package pairing

import "github.com/katalvlaran/meldheap/pq"

// Join moves every element of other into h and leaves other empty.
// Handles minted by other stay valid and now belong to h.
// Joining nil, an empty heap, or h itself is a no-op. Complexity: O(1).
func (h *Heap) Join(other *Heap) {
	if other == nil || other == h || other.root == nil {
		return
	}

	other.tok().Link(h.tok())
	h.root = meld(h.root, other.root)
	h.size += other.size
	other.root, other.size, other.token = nil, 0, nil
}

// Meld implements pq.MinPQ by delegating to Join.
// other must be a *pairing.Heap; a nil other is a no-op.
func (h *Heap) Meld(other pq.MinPQ) error {
	if other == nil {
		return nil
	}
	o, ok := other.(*Heap)
	if !ok {
		return pq.ErrIncompatibleHeap
	}
	h.Join(o)

	return nil
}

// meld combines two heap-ordered trees and returns the new root.
// The root with the smaller key wins (a on ties) and takes the other as its
// leftmost child. Either side may be nil. Both inputs must be detached roots
// (no sibling).
func meld(a, b *node) *node {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if b.key < a.key {
		a, b = b, a
	}
	b.parent = a
	b.sibling = a.child
	a.child = b

	return a
}

// mergePairs rebuilds one tree from a sibling list with the two-pass rule.
//
// Pass 1 walks left to right, melding (c1,c2), (c3,c4), ... and pushing each
// winner onto a stack threaded through the sibling field; an odd last child
// is pushed unmerged. Pass 2 pops the stack, so it folds the pair results
// right to left: result = meld(t_i, result).
//
// The returned root's parent may still point at the extracted node; the
// caller clears it.
func mergePairs(first *node) *node {
	if first == nil {
		return nil
	}
	if first.sibling == nil {
		return first
	}

	var stack *node
	for first != nil {
		a := first
		b := a.sibling
		if b == nil {
			a.sibling = stack
			stack = a
			break
		}
		first = b.sibling
		a.sibling, b.sibling = nil, nil
		w := meld(a, b)
		w.sibling = stack
		stack = w
	}

	result := stack
	stack = stack.sibling
	result.sibling = nil
	for stack != nil {
		t := stack
		stack = t.sibling
		t.sibling = nil
		result = meld(t, result)
	}

	return result
}

// cut detaches n and its subtree from n's parent. The sibling chain is
// scanned linearly to find n's predecessor.
func cut(n *node) {
	p := n.parent
	if p == nil {
		return
	}
	if p.child == n {
		p.child = n.sibling
	} else {
		prev := p.child
		for prev.sibling != n {
			prev = prev.sibling
		}
		prev.sibling = n.sibling
	}
	n.parent = nil
	n.sibling = nil
}
