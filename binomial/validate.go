package binomial

import (
	"fmt"

	"github.com/katalvlaran/meldheap/pq"
)

// Degrees returns the degrees of the roots in root-list order.
// A healthy heap reports a strictly increasing sequence.
func (h *Heap) Degrees() []int {
	var out []int
	for r := h.head; r != nil; r = r.next {
		out = append(out, r.degree)
	}

	return out
}

// Validate walks the whole forest and reports the first broken invariant,
// wrapped around pq.ErrCorrupt. Intended for tests and debugging.
//
// Checked:
//   - root list strictly increasing in degree, roots have no parent;
//   - every tree is binomial: 2^d nodes, children of degree d-1..0;
//   - heap order: parent key <= child key;
//   - parent back-references and element/node bindings agree;
//   - min caches a root with the smallest root key;
//   - size matches the node count; elements are owned by h.
//
// Complexity: O(n).
func (h *Heap) Validate() error {
	if (h.head == nil) != (h.min == nil) {
		return fmt.Errorf("binomial: head/min emptiness mismatch: %w", pq.ErrCorrupt)
	}

	count := 0
	minSeen := false
	prevDegree := -1
	for r := h.head; r != nil; r = r.next {
		if r.parent != nil {
			return fmt.Errorf("binomial: root %d has a parent: %w", r.key(), pq.ErrCorrupt)
		}
		if r.degree <= prevDegree {
			return fmt.Errorf("binomial: root degrees %v not strictly increasing: %w", h.Degrees(), pq.ErrCorrupt)
		}
		prevDegree = r.degree
		if r == h.min {
			minSeen = true
		}
		if h.min != nil && r.key() < h.min.key() {
			return fmt.Errorf("binomial: root key %d below cached min %d: %w", r.key(), h.min.key(), pq.ErrCorrupt)
		}
		n, err := h.checkTree(r)
		if err != nil {
			return err
		}
		count += n
	}
	if h.min != nil && !minSeen {
		return fmt.Errorf("binomial: cached min is not in the root list: %w", pq.ErrCorrupt)
	}
	if count != h.size {
		return fmt.Errorf("binomial: size %d but %d nodes: %w", h.size, count, pq.ErrCorrupt)
	}

	return nil
}

// checkTree validates the subtree rooted at n and returns its node count.
func (h *Heap) checkTree(n *node) (int, error) {
	if n.elem == nil || n.elem.node != n {
		return 0, fmt.Errorf("binomial: element binding broken at degree-%d node: %w", n.degree, pq.ErrCorrupt)
	}
	if !h.tok().Owns(n.elem.owner) {
		return 0, fmt.Errorf("binomial: element %d owned by another heap: %w", n.key(), pq.ErrCorrupt)
	}

	count := 1
	want := n.degree - 1
	for c := n.firstChild; c != nil; c = c.sibling {
		if c.parent != n {
			return 0, fmt.Errorf("binomial: child %d has wrong parent: %w", c.key(), pq.ErrCorrupt)
		}
		if c.next != nil {
			return 0, fmt.Errorf("binomial: child %d still linked as a root: %w", c.key(), pq.ErrCorrupt)
		}
		if c.key() < n.key() {
			return 0, fmt.Errorf("binomial: heap order broken, child %d < parent %d: %w", c.key(), n.key(), pq.ErrCorrupt)
		}
		if c.degree != want {
			return 0, fmt.Errorf("binomial: child degree %d, want %d: %w", c.degree, want, pq.ErrCorrupt)
		}
		want--
		sub, err := h.checkTree(c)
		if err != nil {
			return 0, err
		}
		count += sub
	}
	if want != -1 {
		return 0, fmt.Errorf("binomial: degree-%d node is missing children: %w", n.degree, pq.ErrCorrupt)
	}
	if count != 1<<n.degree {
		return 0, fmt.Errorf("binomial: degree-%d tree has %d nodes: %w", n.degree, count, pq.ErrCorrupt)
	}

	return count, nil
}
