package pqtest

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meldheap/pq"
)

// Validator is implemented by queues that can check their own structure.
type Validator interface {
	Validate() error
}

// RequireValid fails the test if q implements Validator and reports an error.
func RequireValid(t testing.TB, q pq.MinPQ) {
	t.Helper()
	if v, ok := q.(Validator); ok {
		require.NoError(t, v.Validate())
	}
}

// insertAll inserts keys with payload = index and returns the handles.
func insertAll(t testing.TB, q pq.MinPQ, keys ...int) []pq.Handle {
	t.Helper()
	hs := make([]pq.Handle, len(keys))
	for i, k := range keys {
		hs[i] = q.Insert(k, i)
		RequireValid(t, q)
	}

	return hs
}

// drainKeys extracts everything and returns the keys in extraction order.
func drainKeys(t testing.TB, q pq.MinPQ) []int {
	t.Helper()
	items, err := pq.Drain(q)
	require.NoError(t, err)

	return pq.Keys(items)
}

// RunConformance runs every contract scenario against queues from newQ.
func RunConformance(t *testing.T, newQ pq.Factory) {
	t.Run("SortViaHeap", func(t *testing.T) { testSortViaHeap(t, newQ) })
	t.Run("PayloadTravelsWithKey", func(t *testing.T) { testPayloadTravelsWithKey(t, newQ) })
	t.Run("MinDoesNotRemove", func(t *testing.T) { testMinDoesNotRemove(t, newQ) })
	t.Run("EmptyHeap", func(t *testing.T) { testEmptyHeap(t, newQ) })
	t.Run("DuplicateKeys", func(t *testing.T) { testDuplicateKeys(t, newQ) })
	t.Run("DecreaseKeyReorders", func(t *testing.T) { testDecreaseKeyReorders(t, newQ) })
	t.Run("DecreaseKeyIncreaseIsNoop", func(t *testing.T) { testDecreaseKeyIncreaseIsNoop(t, newQ) })
	t.Run("DecreaseKeyEqualKey", func(t *testing.T) { testDecreaseKeyEqualKey(t, newQ) })
	t.Run("StaleHandle", func(t *testing.T) { testStaleHandle(t, newQ) })
	t.Run("NilAndForeignHandles", func(t *testing.T) { testNilAndForeignHandles(t, newQ) })
	t.Run("MeldPreservesMultiset", func(t *testing.T) { testMeldPreservesMultiset(t, newQ) })
	t.Run("HandlesSurviveMeld", func(t *testing.T) { testHandlesSurviveMeld(t, newQ) })
	t.Run("MeldEdgeCases", func(t *testing.T) { testMeldEdgeCases(t, newQ) })
	t.Run("RandomOps", func(t *testing.T) {
		for _, seed := range []int64{1, 2, 3, 42, 2024} {
			RunRandomOps(t, newQ, Config{Seed: seed, Ops: 3000, KeyRange: 500})
		}
		// Narrow key range stresses ties.
		RunRandomOps(t, newQ, Config{Seed: 7, Ops: 2000, KeyRange: 4})
	})
}

func testSortViaHeap(t *testing.T, newQ pq.Factory) {
	q := newQ()
	insertAll(t, q, 5, 3, 8, 1, 9, 2)
	require.Equal(t, 6, q.Len())
	assert.Equal(t, []int{1, 2, 3, 5, 8, 9}, drainKeys(t, q))
	assert.True(t, q.Empty())
	assert.Zero(t, q.Len())
}

func testPayloadTravelsWithKey(t *testing.T, newQ pq.Factory) {
	q := newQ()
	keys := []int{40, 10, 30, 20, 50, 0, 60}
	for i, k := range keys {
		q.Insert(k, 100+i)
	}
	items, err := pq.Drain(q)
	require.NoError(t, err)
	for _, it := range items {
		assert.Equal(t, keys[it.Payload-100], it.Key, "payload %d returned with wrong key", it.Payload)
	}
}

func testMinDoesNotRemove(t *testing.T, newQ pq.Factory) {
	q := newQ()
	insertAll(t, q, 7, 4, 9)
	k, p, err := q.Min()
	require.NoError(t, err)
	assert.Equal(t, 4, k)
	assert.Equal(t, 1, p)
	assert.Equal(t, 3, q.Len())

	k2, p2, err := q.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, k, k2)
	assert.Equal(t, p, p2)
}

func testEmptyHeap(t *testing.T, newQ pq.Factory) {
	q := newQ()
	assert.True(t, q.Empty())
	_, _, err := q.ExtractMin()
	assert.ErrorIs(t, err, pq.ErrEmptyHeap)
	_, _, err = q.Min()
	assert.ErrorIs(t, err, pq.ErrEmptyHeap)

	insertAll(t, q, 3, 1, 2)
	drainKeys(t, q)
	assert.True(t, q.Empty())

	// Repeated failing extractions have no side effects.
	for i := 0; i < 3; i++ {
		_, _, err = q.ExtractMin()
		require.ErrorIs(t, err, pq.ErrEmptyHeap)
		require.True(t, q.Empty())
		require.Zero(t, q.Len())
		RequireValid(t, q)
	}

	// The heap is still usable.
	q.Insert(11, 0)
	assert.Equal(t, []int{11}, drainKeys(t, q))
}

func testDuplicateKeys(t *testing.T, newQ pq.Factory) {
	q := newQ()
	const n = 37
	for i := 0; i < n; i++ {
		q.Insert(i%3, i)
		RequireValid(t, q)
	}
	items, err := pq.Drain(q)
	require.NoError(t, err)
	require.Len(t, items, n)

	seen := make(map[int]bool, n)
	for i, it := range items {
		if i > 0 {
			require.LessOrEqual(t, items[i-1].Key, it.Key)
		}
		require.False(t, seen[it.Payload], "payload %d extracted twice", it.Payload)
		seen[it.Payload] = true
	}
}

func testDecreaseKeyReorders(t *testing.T, newQ pq.Factory) {
	q := newQ()
	hs := insertAll(t, q, 10, 20, 30, 40, 50, 60, 70, 80)

	ok, err := q.DecreaseKey(hs[6], 5) // 70 → 5
	require.NoError(t, err)
	require.True(t, ok)
	RequireValid(t, q)
	assert.Equal(t, 5, hs[6].Key())

	k, p, err := q.Min()
	require.NoError(t, err)
	assert.Equal(t, 5, k)
	assert.Equal(t, 6, p)

	ok, err = q.DecreaseKey(hs[3], 15) // 40 → 15
	require.NoError(t, err)
	require.True(t, ok)
	RequireValid(t, q)

	items, err := pq.Drain(q)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 10, 15, 20, 30, 50, 60, 80}, pq.Keys(items))
	assert.Equal(t, 6, items[0].Payload)
	assert.Equal(t, 3, items[2].Payload)
}

func testDecreaseKeyIncreaseIsNoop(t *testing.T, newQ pq.Factory) {
	keys := []int{8, 3, 6, 1, 9, 4, 7, 2, 5}
	ref := newQ()
	insertAll(t, ref, keys...)
	want, err := pq.Drain(ref)
	require.NoError(t, err)

	q := newQ()
	hs := insertAll(t, q, keys...)
	q.ExtractMin() // force some structure first
	ok, err := q.DecreaseKey(hs[1], 100)
	require.NoError(t, err)
	assert.False(t, ok, "increasing a key must be reported as ignored")
	assert.Equal(t, 3, hs[1].Key())
	RequireValid(t, q)

	got, err := pq.Drain(q)
	require.NoError(t, err)
	assert.Equal(t, want[1:], got)
}

func testDecreaseKeyEqualKey(t *testing.T, newQ pq.Factory) {
	q := newQ()
	hs := insertAll(t, q, 4, 2, 6)
	ok, err := q.DecreaseKey(hs[2], 6)
	require.NoError(t, err)
	assert.True(t, ok)
	RequireValid(t, q)
	assert.Equal(t, []int{2, 4, 6}, drainKeys(t, q))
}

func testStaleHandle(t *testing.T, newQ pq.Factory) {
	q := newQ()
	hs := insertAll(t, q, 3, 1, 2)
	_, p, err := q.ExtractMin()
	require.NoError(t, err)
	require.Equal(t, 1, p)
	assert.False(t, hs[1].Valid())
	assert.True(t, hs[0].Valid())
	assert.Equal(t, 1, hs[1].Key(), "stale handle keeps its last key")

	ok, err := q.DecreaseKey(hs[1], -10)
	assert.ErrorIs(t, err, pq.ErrStaleHandle)
	assert.False(t, ok)
	RequireValid(t, q)
	assert.Equal(t, 2, q.Len())
	assert.Equal(t, []int{2, 3}, drainKeys(t, q))
}

type fakeHandle struct{}

func (fakeHandle) Key() int     { return 0 }
func (fakeHandle) Payload() int { return 0 }
func (fakeHandle) Valid() bool  { return true }

func testNilAndForeignHandles(t *testing.T, newQ pq.Factory) {
	q := newQ()
	insertAll(t, q, 5, 6)

	_, err := q.DecreaseKey(nil, 0)
	assert.ErrorIs(t, err, pq.ErrNilHandle)

	_, err = q.DecreaseKey(fakeHandle{}, 0)
	assert.ErrorIs(t, err, pq.ErrForeignHandle)

	other := newQ()
	oh := other.Insert(1, 99)
	_, err = q.DecreaseKey(oh, 0)
	assert.ErrorIs(t, err, pq.ErrForeignHandle)
	assert.Equal(t, 1, oh.Key(), "rejected handle must be untouched")

	RequireValid(t, q)
	RequireValid(t, other)
	assert.Equal(t, []int{5, 6}, drainKeys(t, q))
}

func testMeldPreservesMultiset(t *testing.T, newQ pq.Factory) {
	a, b := newQ(), newQ()
	a.Insert(2, 0)
	a.Insert(7, 1)
	b.Insert(1, 2)
	b.Insert(5, 3)

	require.NoError(t, a.Meld(b))
	RequireValid(t, a)
	RequireValid(t, b)
	assert.True(t, b.Empty())
	assert.Zero(t, b.Len())
	assert.Equal(t, 4, a.Len())
	assert.Equal(t, []int{1, 2, 5, 7}, drainKeys(t, a))

	// The absorbed heap is empty and reusable as a new heap.
	b.Insert(9, 0)
	assert.Equal(t, []int{9}, drainKeys(t, b))
}

func testHandlesSurviveMeld(t *testing.T, newQ pq.Factory) {
	a, b := newQ(), newQ()
	ha := insertAll(t, a, 10, 20, 30)
	hb := make([]pq.Handle, 0, 5)
	for i, k := range []int{15, 25, 35, 45, 55} {
		hb = append(hb, b.Insert(k, 10+i))
	}
	require.NoError(t, a.Meld(b))

	ok, err := a.DecreaseKey(hb[4], 1) // 55 → 1 through the absorbing heap
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = a.DecreaseKey(ha[2], 12)
	require.NoError(t, err)
	require.True(t, ok)
	RequireValid(t, a)

	// The emptied heap no longer owns them.
	_, err = b.DecreaseKey(hb[0], 0)
	assert.ErrorIs(t, err, pq.ErrForeignHandle)

	k, p, err := a.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, 1, k)
	assert.Equal(t, 14, p)
	assert.Equal(t, []int{10, 12, 15, 20, 25, 35, 45}, drainKeys(t, a))

	// Chained melds: c absorbs a (which absorbed b).
	a2, b2, c := newQ(), newQ(), newQ()
	h := b2.Insert(50, 1)
	a2.Insert(40, 2)
	require.NoError(t, a2.Meld(b2))
	c.Insert(30, 3)
	require.NoError(t, c.Meld(a2))
	ok, err = c.DecreaseKey(h, 0)
	require.NoError(t, err)
	assert.True(t, ok)
	RequireValid(t, c)
	assert.Equal(t, []int{0, 30, 40}, drainKeys(t, c))
}

type otherPQ struct{ pq.MinPQ }

func testMeldEdgeCases(t *testing.T, newQ pq.Factory) {
	q := newQ()
	insertAll(t, q, 4, 2)

	require.NoError(t, q.Meld(nil))
	require.NoError(t, q.Meld(newQ()))
	require.NoError(t, q.Meld(q), "self-meld is a no-op")
	RequireValid(t, q)
	assert.Equal(t, 2, q.Len())

	err := q.Meld(otherPQ{})
	assert.ErrorIs(t, err, pq.ErrIncompatibleHeap)
	assert.Equal(t, 2, q.Len())

	empty := newQ()
	side := newQ()
	side.Insert(3, 7)
	require.NoError(t, empty.Meld(side))
	RequireValid(t, empty)
	k, p, err := empty.Min()
	require.NoError(t, err)
	assert.Equal(t, 3, k)
	assert.Equal(t, 7, p)

	assert.Equal(t, []int{2, 4}, drainKeys(t, q))
}

// Config tunes RunRandomOps.
type Config struct {
	Seed     int64
	Ops      int
	KeyRange int
}

// RunRandomOps drives q through a random mix of Insert, ExtractMin,
// DecreaseKey (lowering and raising) and Meld, checking after every step
// that Min and ExtractMin agree with the reference model and that the queue
// validates. The queue is drained at the end and compared in full.
func RunRandomOps(t *testing.T, newQ pq.Factory, cfg Config) {
	t.Helper()
	rng := rand.New(rand.NewSource(cfg.Seed))
	q := newQ()
	ref := newModel()
	handles := make(map[int]pq.Handle)
	nextPayload := 0

	insert := func(into pq.MinPQ) {
		k := rng.Intn(cfg.KeyRange)
		handles[nextPayload] = into.Insert(k, nextPayload)
		ref.insert(k, nextPayload)
		nextPayload++
	}
	livePayload := func() (int, bool) {
		if len(handles) == 0 {
			return 0, false
		}
		ps := make([]int, 0, len(handles))
		for p := range handles {
			ps = append(ps, p)
		}
		sort.Ints(ps)

		return ps[rng.Intn(len(ps))], true
	}

	for step := 0; step < cfg.Ops; step++ {
		switch op := rng.Intn(10); {
		case op < 4:
			insert(q)
		case op < 7:
			k, p, err := q.ExtractMin()
			want, ok := ref.minKey()
			if !ok {
				require.ErrorIs(t, err, pq.ErrEmptyHeap, "seed %d step %d", cfg.Seed, step)
				break
			}
			require.NoError(t, err, "seed %d step %d", cfg.Seed, step)
			require.Equal(t, want, k, "seed %d step %d: wrong minimum", cfg.Seed, step)
			require.True(t, ref.remove(k, p), "seed %d step %d: (%d,%d) not live", cfg.Seed, step, k, p)
			require.False(t, handles[p].Valid())
			delete(handles, p)
		case op < 9:
			p, ok := livePayload()
			if !ok {
				break
			}
			h := handles[p]
			newKey := h.Key() - rng.Intn(cfg.KeyRange/2+1)
			if rng.Intn(4) == 0 {
				newKey = h.Key() + 1 + rng.Intn(5)
			}
			applied, err := q.DecreaseKey(h, newKey)
			require.NoError(t, err, "seed %d step %d", cfg.Seed, step)
			require.Equal(t, ref.decrease(p, newKey), applied, "seed %d step %d", cfg.Seed, step)
			require.Equal(t, ref.keys[p], h.Key())
		default:
			side := newQ()
			for i := rng.Intn(8); i > 0; i-- {
				insert(side)
			}
			require.NoError(t, q.Meld(side))
			require.True(t, side.Empty())
		}

		RequireValid(t, q)
		require.Equal(t, ref.len(), q.Len(), "seed %d step %d", cfg.Seed, step)
		if want, ok := ref.minKey(); ok {
			k, _, err := q.Min()
			require.NoError(t, err)
			require.Equal(t, want, k, "seed %d step %d", cfg.Seed, step)
		} else {
			require.True(t, q.Empty())
		}
	}

	want := ref.sorted()
	assert.Equal(t, want, drainKeys(t, q), "seed %d final drain", cfg.Seed)
}
