// SPDX-License-Identifier: MIT
// Package: meldheap/pqstats
//
// Package pqstats instruments any pq.MinPQ without touching heap internals.
//
// Wrap returns a *Queue that forwards every call to the wrapped queue and
// records operation counts, wall time per operation kind, peak size and the
// number of nodes allocated. Optionally each operation is exported to
// Prometheus through a shared *Metrics; the heapbench command dumps those
// series with its -metrics flag.
//
// Handles returned by Insert are the wrapped queue's own handles, so they
// pass through DecreaseKey unchanged and Meld between two wrapped queues
// unwraps both sides.
//
// A Queue, like the heaps it wraps, is not safe for concurrent use.
package pqstats

import (
	"time"

	"github.com/katalvlaran/meldheap/pq"
)

// Option configures a Queue.
type Option func(*Queue)

// WithName sets the heap label used in reports and metrics (default "pq").
func WithName(name string) Option {
	return func(q *Queue) { q.stats.Heap = name }
}

// WithMetrics exports every operation to m.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic("pqstats: WithMetrics(nil)")
	}
	return func(q *Queue) { q.metrics = m }
}

// WithClock replaces time.Now, e.g. with a fake clock in tests.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("pqstats: WithClock(nil)")
	}
	return func(q *Queue) { q.now = now }
}

// WithNodeBytes sets the per-element memory cost used by
// Stats.EstimatedMemory, typically binomial.NodeBytes() or
// pairing.NodeBytes().
func WithNodeBytes(n uintptr) Option {
	return func(q *Queue) { q.stats.NodeBytes = n }
}

// Queue is an instrumented pq.MinPQ.
type Queue struct {
	q       pq.MinPQ
	now     func() time.Time
	metrics *Metrics
	series  *series
	stats   Stats
}

// compile-time check
var _ pq.MinPQ = (*Queue)(nil)

// Wrap instruments q. Elements already in q are counted in Size but not in
// NodesAllocated.
func Wrap(q pq.MinPQ, opts ...Option) *Queue {
	w := &Queue{q: q, now: time.Now}
	w.stats.Heap = "pq"
	for _, opt := range opts {
		opt(w)
	}
	w.stats.Size = q.Len()
	w.stats.PeakSize = w.stats.Size
	if w.metrics != nil {
		w.series = w.metrics.series(w.stats.Heap)
	}

	return w
}

// Unwrap returns the instrumented queue.
func (w *Queue) Unwrap() pq.MinPQ { return w.q }

// Stats returns a snapshot of the counters.
func (w *Queue) Stats() Stats { return w.stats }

// Reset zeroes the counters, keeping configuration and current size.
func (w *Queue) Reset() {
	w.stats = Stats{
		Heap:      w.stats.Heap,
		NodeBytes: w.stats.NodeBytes,
		Size:      w.q.Len(),
		PeakSize:  w.q.Len(),
	}
}

// Insert forwards to the wrapped queue.
func (w *Queue) Insert(key, payload int) pq.Handle {
	start := w.now()
	h := w.q.Insert(key, payload)
	d := w.now().Sub(start)

	w.stats.Inserts++
	w.stats.NodesAllocated++
	w.stats.InsertTime += d
	w.resized()
	w.observe(OpInsert, d, nil)

	return h
}

// Min forwards to the wrapped queue. It is not timed.
func (w *Queue) Min() (int, int, error) {
	return w.q.Min()
}

// ExtractMin forwards to the wrapped queue.
func (w *Queue) ExtractMin() (int, int, error) {
	start := w.now()
	k, p, err := w.q.ExtractMin()
	d := w.now().Sub(start)

	w.stats.ExtractTime += d
	if err != nil {
		w.stats.Errors++
	} else {
		w.stats.Extracts++
		w.resized()
	}
	w.observe(OpExtractMin, d, err)

	return k, p, err
}

// DecreaseKey forwards to the wrapped queue. Applied and ignored calls are
// counted separately.
func (w *Queue) DecreaseKey(h pq.Handle, newKey int) (bool, error) {
	start := w.now()
	ok, err := w.q.DecreaseKey(h, newKey)
	d := w.now().Sub(start)

	w.stats.DecreaseTime += d
	switch {
	case err != nil:
		w.stats.Errors++
	case ok:
		w.stats.DecreaseKeys++
	default:
		w.stats.DecreasesIgnored++
		if w.series != nil {
			w.series.ignored.Inc()
		}
	}
	w.observe(OpDecreaseKey, d, err)

	return ok, err
}

// Meld absorbs other. A wrapped other is unwrapped first and its size
// counter drops to zero.
func (w *Queue) Meld(other pq.MinPQ) error {
	src := other
	ow, wrapped := other.(*Queue)
	if wrapped {
		if ow == w {
			return nil
		}
		src = ow.q
	}

	start := w.now()
	err := w.q.Meld(src)
	d := w.now().Sub(start)

	if err != nil {
		w.stats.Errors++
	} else {
		w.stats.Melds++
		w.resized()
		if wrapped {
			ow.stats.Size = ow.q.Len()
		}
	}
	w.observe(OpMeld, d, err)

	return err
}

// Empty forwards to the wrapped queue.
func (w *Queue) Empty() bool { return w.q.Empty() }

// Len forwards to the wrapped queue.
func (w *Queue) Len() int { return w.q.Len() }

// Validate forwards to the wrapped queue's Validate, if it has one.
func (w *Queue) Validate() error {
	if v, ok := w.q.(interface{ Validate() error }); ok {
		return v.Validate()
	}

	return nil
}

// resized refreshes Size and PeakSize after a mutation.
func (w *Queue) resized() {
	w.stats.Size = w.q.Len()
	if w.stats.Size > w.stats.PeakSize {
		w.stats.PeakSize = w.stats.Size
		if w.series != nil {
			raisePeak(w.series.peak, w.stats.PeakSize)
		}
	}
}

func (w *Queue) observe(op string, d time.Duration, err error) {
	if w.series == nil {
		return
	}
	w.series.duration[op].Observe(d.Seconds())
	if err != nil {
		w.series.errors[op].Inc()
		return
	}
	w.series.ops[op].Inc()
}
