package pqstats_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meldheap/binomial"
	"github.com/katalvlaran/meldheap/internal/pqtest"
	"github.com/katalvlaran/meldheap/pairing"
	"github.com/katalvlaran/meldheap/pq"
	"github.com/katalvlaran/meldheap/pq/mock_pq"
	"github.com/katalvlaran/meldheap/pqstats"
)

// stepClock advances by step on every call.
func stepClock(step time.Duration) func() time.Time {
	t := time.Unix(0, 0)
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}

func TestQueue_Conformance(t *testing.T) {
	pqtest.RunConformance(t, func() pq.MinPQ {
		return pqstats.Wrap(binomial.New(), pqstats.WithName("binomial"))
	})
	pqtest.RunConformance(t, func() pq.MinPQ {
		return pqstats.Wrap(pairing.New(), pqstats.WithName("pairing"))
	})
}

func TestQueue_ForwardsAndCounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock_pq.NewMockMinPQ(ctrl)
	h := mock_pq.NewMockHandle(ctrl)

	gomock.InOrder(
		m.EXPECT().Len().Return(0), // Wrap
		m.EXPECT().Insert(5, 50).Return(h),
		m.EXPECT().Len().Return(1),
		m.EXPECT().DecreaseKey(h, 3).Return(true, nil),
		m.EXPECT().DecreaseKey(h, 9).Return(false, nil),
		m.EXPECT().DecreaseKey(h, 1).Return(false, pq.ErrStaleHandle),
		m.EXPECT().Min().Return(3, 50, nil),
		m.EXPECT().ExtractMin().Return(3, 50, nil),
		m.EXPECT().Len().Return(0),
		m.EXPECT().ExtractMin().Return(0, 0, pq.ErrEmptyHeap),
		m.EXPECT().Empty().Return(true),
	)

	q := pqstats.Wrap(m, pqstats.WithName("mock"), pqstats.WithClock(stepClock(time.Microsecond)), pqstats.WithNodeBytes(48))

	assert.Same(t, h, q.Insert(5, 50))
	ok, err := q.DecreaseKey(h, 3)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = q.DecreaseKey(h, 9)
	require.NoError(t, err)
	assert.False(t, ok)
	_, err = q.DecreaseKey(h, 1)
	assert.ErrorIs(t, err, pq.ErrStaleHandle)

	k, p, err := q.Min()
	require.NoError(t, err)
	assert.Equal(t, []int{3, 50}, []int{k, p})
	k, p, err = q.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, []int{3, 50}, []int{k, p})
	_, _, err = q.ExtractMin()
	assert.ErrorIs(t, err, pq.ErrEmptyHeap)
	assert.True(t, q.Empty())

	s := q.Stats()
	assert.Equal(t, "mock", s.Heap)
	assert.EqualValues(t, 1, s.Inserts)
	assert.EqualValues(t, 1, s.Extracts)
	assert.EqualValues(t, 1, s.DecreaseKeys)
	assert.EqualValues(t, 1, s.DecreasesIgnored)
	assert.EqualValues(t, 2, s.Errors)
	assert.Equal(t, 0, s.Size)
	assert.Equal(t, 1, s.PeakSize)
	assert.Equal(t, time.Microsecond, s.InsertTime)
	assert.Equal(t, 3*time.Microsecond, s.DecreaseTime)
	assert.Equal(t, 2*time.Microsecond, s.ExtractTime)
	assert.EqualValues(t, 48, s.EstimatedMemory())
}

func TestQueue_MeldUnwrapsAndTracksSizes(t *testing.T) {
	a := pqstats.Wrap(binomial.New())
	b := pqstats.Wrap(binomial.New())
	a.Insert(2, 0)
	a.Insert(7, 1)
	hb := b.Insert(1, 2)
	b.Insert(5, 3)

	require.NoError(t, a.Meld(b))
	assert.Equal(t, 0, b.Stats().Size)
	assert.True(t, b.Empty())
	assert.EqualValues(t, 1, a.Stats().Melds)
	assert.Equal(t, 4, a.Stats().PeakSize)

	// Handles minted through b still work on a.
	ok, err := a.DecreaseKey(hb, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	items, err := pq.Drain(a)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 5, 7}, pq.Keys(items))

	// Self meld is a no-op; mixing implementations is an error.
	require.NoError(t, a.Meld(a))
	assert.ErrorIs(t, a.Meld(pairing.New()), pq.ErrIncompatibleHeap)
	assert.EqualValues(t, 1, a.Stats().Errors)
}

func TestQueue_ResetKeepsConfig(t *testing.T) {
	q := pqstats.Wrap(pairing.New(), pqstats.WithName("pairing"), pqstats.WithNodeBytes(pairing.NodeBytes()))
	q.Insert(1, 1)
	q.Insert(2, 2)
	q.Reset()

	s := q.Stats()
	assert.Equal(t, "pairing", s.Heap)
	assert.Equal(t, pairing.NodeBytes(), s.NodeBytes)
	assert.Zero(t, s.Inserts)
	assert.Equal(t, 2, s.Size)
	assert.Same(t, q.Unwrap(), q.Unwrap())
}

func TestStats_Report(t *testing.T) {
	s := pqstats.Stats{
		Heap:             "binomial",
		Inserts:          4,
		Extracts:         3,
		DecreaseKeys:     2,
		DecreasesIgnored: 1,
		InsertTime:       1500 * time.Microsecond,
		ExtractTime:      20 * time.Microsecond,
		DecreaseTime:     7 * time.Microsecond,
		PeakSize:         4,
		NodesAllocated:   4,
		NodeBytes:        64,
	}
	var buf bytes.Buffer
	require.NoError(t, s.Report(&buf))
	assert.Equal(t, "=== binomial statistics ===\n"+
		"Insert:       4 ops | 1500 us\n"+
		"Extract-min:  3 ops | 20 us\n"+
		"Decrease-key: 2 ops (1 ignored) | 7 us\n"+
		"Meld:         0 ops\n"+
		"Errors:       0\n"+
		"Peak size:    4\n"+
		"Estimated memory: 256 bytes (4 nodes x 64 bytes)\n", buf.String())
}

func TestStats_Add(t *testing.T) {
	a := pqstats.Stats{Heap: "x", Inserts: 1, PeakSize: 5, InsertTime: time.Second}
	b := pqstats.Stats{Heap: "y", Inserts: 2, PeakSize: 3, InsertTime: time.Second}
	sum := a.Add(b)
	assert.Equal(t, "x", sum.Heap)
	assert.EqualValues(t, 3, sum.Inserts)
	assert.Equal(t, 5, sum.PeakSize)
	assert.Equal(t, 2*time.Second, sum.InsertTime)
}

// counterValue reads one labelled series from reg.
func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if matches(m, labels) {
				return m.GetCounter().GetValue()
			}
		}
	}
	t.Fatalf("series %s%v not found", name, labels)

	return 0
}

func matches(m *dto.Metric, labels map[string]string) bool {
	if len(m.GetLabel()) != len(labels) {
		return false
	}
	for _, lp := range m.GetLabel() {
		if labels[lp.GetName()] != lp.GetValue() {
			return false
		}
	}

	return true
}

func TestMetrics_ExportedPerHeap(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := pqstats.NewMetrics("test")
	require.NoError(t, metrics.Register(reg))
	require.NoError(t, metrics.Register(reg), "re-registering is accepted")

	q := pqstats.Wrap(binomial.New(), pqstats.WithName("binomial"), pqstats.WithMetrics(metrics))
	h := q.Insert(9, 0)
	q.Insert(4, 1)
	q.Insert(6, 2)
	_, _ = q.DecreaseKey(h, 1)
	_, _ = q.DecreaseKey(h, 8)
	for !q.Empty() {
		_, _, _ = q.ExtractMin()
	}
	_, _, _ = q.ExtractMin()

	assert.Equal(t, 3.0, counterValue(t, reg, "test_pq_operations_total", map[string]string{"heap": "binomial", "op": pqstats.OpInsert}))
	assert.Equal(t, 3.0, counterValue(t, reg, "test_pq_operations_total", map[string]string{"heap": "binomial", "op": pqstats.OpExtractMin}))
	assert.Equal(t, 2.0, counterValue(t, reg, "test_pq_operations_total", map[string]string{"heap": "binomial", "op": pqstats.OpDecreaseKey}))
	assert.Equal(t, 1.0, counterValue(t, reg, "test_pq_decrease_key_ignored_total", map[string]string{"heap": "binomial"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "test_pq_errors_total", map[string]string{"heap": "binomial", "op": pqstats.OpExtractMin}))
}

func TestMetrics_SecondRegistrationSharesSeries(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := pqstats.NewMetrics("shared")
	require.NoError(t, first.Register(reg))
	second := pqstats.NewMetrics("shared")
	require.NoError(t, second.Register(reg))

	a := pqstats.Wrap(pairing.New(), pqstats.WithName("pairing"), pqstats.WithMetrics(first))
	b := pqstats.Wrap(pairing.New(), pqstats.WithName("pairing"), pqstats.WithMetrics(second))
	a.Insert(1, 1)
	b.Insert(2, 2)
	b.Insert(3, 3)

	assert.Equal(t, 3.0, counterValue(t, reg, "shared_pq_operations_total", map[string]string{"heap": "pairing", "op": pqstats.OpInsert}))
}

func TestMetrics_RegisterRejectsForeignCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "clash",
		Subsystem: "pq",
		Name:      "operations_total",
		Help:      "Total number of priority-queue operations.",
	}, []string{"heap", "op"})))

	assert.Error(t, pqstats.NewMetrics("clash").Register(reg))
}

func TestMetrics_PeakNeverDecreases(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := pqstats.NewMetrics("peak")
	require.NoError(t, metrics.Register(reg))

	big := pqstats.Wrap(binomial.New(), pqstats.WithName("binomial"), pqstats.WithMetrics(metrics))
	for i := 0; i < 10; i++ {
		big.Insert(i, i)
	}
	small := pqstats.Wrap(binomial.New(), pqstats.WithName("binomial"), pqstats.WithMetrics(metrics))
	small.Insert(1, 1)
	for !big.Empty() {
		_, _, _ = big.ExtractMin()
	}

	assert.Equal(t, 10.0, gaugeValue(t, reg, "peak_pq_peak_size", map[string]string{"heap": "binomial"}))
	assert.Equal(t, 1, small.Stats().PeakSize, "per-queue stats keep their own peak")
}

// gaugeValue reads one labelled gauge from reg.
func gaugeValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if matches(m, labels) {
				return m.GetGauge().GetValue()
			}
		}
	}
	t.Fatalf("series %s%v not found", name, labels)

	return 0
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { pqstats.WithMetrics(nil) })
	assert.Panics(t, func() { pqstats.WithClock(nil) })
}
