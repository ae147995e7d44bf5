package pqstats

import (
	"errors"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Operation label values.
const (
	OpInsert      = "insert"
	OpExtractMin  = "extract_min"
	OpDecreaseKey = "decrease_key"
	OpMeld        = "meld"
)

// Metrics holds the Prometheus collectors shared by every wrapped queue.
// Series are labelled by heap (the queue's name) and op.
type Metrics struct {
	ops      *prometheus.CounterVec
	ignored  *prometheus.CounterVec
	errors   *prometheus.CounterVec
	duration *prometheus.HistogramVec
	peak     *prometheus.GaugeVec
}

// NewMetrics creates unregistered collectors under namespace, subsystem "pq".
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		ops: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "pq",
				Name:      "operations_total",
				Help:      "Total number of priority-queue operations.",
			}, []string{"heap", "op"}),
		ignored: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "pq",
				Name:      "decrease_key_ignored_total",
				Help:      "Total number of decrease-key calls whose new key was larger.",
			}, []string{"heap"}),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "pq",
				Name:      "errors_total",
				Help:      "Total number of failed priority-queue operations.",
			}, []string{"heap", "op"}),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "pq",
				Name:      "operation_duration_seconds",
				Help:      "Bucketed histogram of priority-queue operation duration.",
				Buckets:   prometheus.ExponentialBuckets(0.0000001, 2.0, 20),
			}, []string{"heap", "op"}),
		peak: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "pq",
				Name:      "peak_size",
				Help:      "Largest number of elements any queue held at once.",
			}, []string{"heap"}),
	}
}

// Register adds every collector to r. When r already holds an equivalent
// collector (same namespace, from another Metrics value or an earlier call)
// m adopts the registered one, so every Metrics registered with r feeds the
// same series. Call Register before wrapping queues with m.
func (m *Metrics) Register(r prometheus.Registerer) error {
	var err error
	if m.ops, err = register(r, m.ops); err != nil {
		return err
	}
	if m.ignored, err = register(r, m.ignored); err != nil {
		return err
	}
	if m.errors, err = register(r, m.errors); err != nil {
		return err
	}
	if m.duration, err = register(r, m.duration); err != nil {
		return err
	}
	if m.peak, err = register(r, m.peak); err != nil {
		return err
	}

	return nil
}

// register registers c, or returns the collector r already holds in its place.
func register[C prometheus.Collector](r prometheus.Registerer, c C) (C, error) {
	err := r.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if !errors.As(err, &are) {
		return c, err
	}
	existing, ok := are.ExistingCollector.(C)
	if !ok {
		return c, fmt.Errorf("pqstats: registered collector is %T, want %T: %w", are.ExistingCollector, c, err)
	}

	return existing, nil
}

// peaks records the largest value set on each peak gauge. Gauges are shared
// by every queue with the same heap label, across goroutines and across
// Metrics values that adopted the same collectors.
var peaks = struct {
	sync.Mutex
	max map[prometheus.Gauge]int
}{max: make(map[prometheus.Gauge]int)}

// raisePeak sets g to n unless g already reports a larger peak.
func raisePeak(g prometheus.Gauge, n int) {
	peaks.Lock()
	defer peaks.Unlock()
	if n <= peaks.max[g] {
		return
	}
	peaks.max[g] = n
	g.Set(float64(n))
}

// series caches the labelled children for one heap name so the hot path
// avoids label lookups.
type series struct {
	ops      map[string]prometheus.Counter
	errors   map[string]prometheus.Counter
	duration map[string]prometheus.Observer
	ignored  prometheus.Counter
	peak     prometheus.Gauge
}

func (m *Metrics) series(heap string) *series {
	s := &series{
		ops:      make(map[string]prometheus.Counter, 4),
		errors:   make(map[string]prometheus.Counter, 4),
		duration: make(map[string]prometheus.Observer, 4),
		ignored:  m.ignored.WithLabelValues(heap),
		peak:     m.peak.WithLabelValues(heap),
	}
	for _, op := range []string{OpInsert, OpExtractMin, OpDecreaseKey, OpMeld} {
		s.ops[op] = m.ops.WithLabelValues(heap, op)
		s.errors[op] = m.errors.WithLabelValues(heap, op)
		s.duration[op] = m.duration.WithLabelValues(heap, op)
	}

	return s
}
