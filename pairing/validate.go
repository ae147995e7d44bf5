package pairing

import (
	"fmt"

	"github.com/katalvlaran/meldheap/pq"
)

// Validate walks the tree and reports the first broken invariant, wrapped
// around pq.ErrCorrupt: root detached, parent links consistent with the
// child/sibling encoding, heap order, live nodes owned by h, size.
//
// The walk is iterative; degenerate trees can be as deep as they are large.
// Complexity: O(n).
func (h *Heap) Validate() error {
	if h.root == nil {
		if h.size != 0 {
			return fmt.Errorf("pairing: empty root but size %d: %w", h.size, pq.ErrCorrupt)
		}
		return nil
	}
	if h.root.parent != nil || h.root.sibling != nil {
		return fmt.Errorf("pairing: root %d is not detached: %w", h.root.key, pq.ErrCorrupt)
	}

	count := 0
	stack := []*node{h.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++

		if n.dead {
			return fmt.Errorf("pairing: extracted node %d still linked: %w", n.key, pq.ErrCorrupt)
		}
		if !h.tok().Owns(n.owner) {
			return fmt.Errorf("pairing: node %d owned by another heap: %w", n.key, pq.ErrCorrupt)
		}
		for c := n.child; c != nil; c = c.sibling {
			if c.parent != n {
				return fmt.Errorf("pairing: child %d has wrong parent: %w", c.key, pq.ErrCorrupt)
			}
			if c.key < n.key {
				return fmt.Errorf("pairing: heap order broken, child %d < parent %d: %w", c.key, n.key, pq.ErrCorrupt)
			}
			stack = append(stack, c)
		}
		if count > h.size {
			return fmt.Errorf("pairing: more nodes than size %d (cycle?): %w", h.size, pq.ErrCorrupt)
		}
	}
	if count != h.size {
		return fmt.Errorf("pairing: size %d but %d nodes: %w", h.size, count, pq.ErrCorrupt)
	}

	return nil
}
