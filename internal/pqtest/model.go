// Package pqtest holds the conformance suite shared by every pq.MinPQ
// implementation: fixed scenarios for each contract rule plus randomized
// operation sequences checked against an ordered reference model.
//
// The reference model is a github.com/google/btree tree of (key, payload)
// pairs; payloads are unique per run, so the pair is an identity.
package pqtest

import (
	"github.com/google/btree"
)

// entry is one live element of the reference model.
type entry struct {
	key     int
	payload int
}

// Less orders by key, then payload.
func (e entry) Less(than btree.Item) bool {
	o := than.(entry)
	if e.key != o.key {
		return e.key < o.key
	}

	return e.payload < o.payload
}

// model mirrors the multiset a queue under test should hold.
type model struct {
	tree *btree.BTree
	keys map[int]int // payload → current key
}

func newModel() *model {
	return &model{tree: btree.New(8), keys: make(map[int]int)}
}

func (m *model) insert(key, payload int) {
	m.tree.ReplaceOrInsert(entry{key: key, payload: payload})
	m.keys[payload] = key
}

func (m *model) len() int { return m.tree.Len() }

// minKey returns the smallest key; ok is false when empty.
func (m *model) minKey() (int, bool) {
	it := m.tree.Min()
	if it == nil {
		return 0, false
	}

	return it.(entry).key, true
}

// remove deletes (key, payload) and reports whether it was present.
func (m *model) remove(key, payload int) bool {
	if m.tree.Delete(entry{key: key, payload: payload}) == nil {
		return false
	}
	delete(m.keys, payload)

	return true
}

// decrease applies the DecreaseKey rule and reports whether it applied.
func (m *model) decrease(payload, newKey int) bool {
	old, ok := m.keys[payload]
	if !ok || newKey > old {
		return false
	}
	m.tree.Delete(entry{key: old, payload: payload})
	m.insert(newKey, payload)

	return true
}

// sorted returns the live keys in ascending order.
func (m *model) sorted() []int {
	out := make([]int, 0, m.tree.Len())
	m.tree.Ascend(func(it btree.Item) bool {
		out = append(out, it.(entry).key)
		return true
	})

	return out
}
