// SPDX-License-Identifier: MIT
// Package: meldheap/bench
//
// runner.go - parallel execution of (scenario x algorithm x heap x repeat)
// trials on an ants goroutine pool.
//
// Contract:
//   - Graphs are generated once per scenario and only read by trials.
//   - Every trial creates its own instrumented heap; heaps never cross
//     goroutines.
//   - Results are sorted deterministically, then checked for agreement:
//     every heap must yield the same answer for the same scenario and
//     algorithm.

package bench

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/meldheap/binomial"
	"github.com/katalvlaran/meldheap/builder"
	"github.com/katalvlaran/meldheap/dijkstra"
	"github.com/katalvlaran/meldheap/graph"
	"github.com/katalvlaran/meldheap/pairing"
	"github.com/katalvlaran/meldheap/pq"
	"github.com/katalvlaran/meldheap/pqstats"
	"github.com/katalvlaran/meldheap/prim"
)

// ErrDisagreement indicates two heap variants produced different answers
// for the same scenario and algorithm.
var ErrDisagreement = errors.New("bench: heap variants disagree")

// ErrTrialPanic wraps a panic recovered from a trial.
var ErrTrialPanic = errors.New("bench: trial panicked")

type heapKind struct {
	factory   pq.Factory
	nodeBytes uintptr
}

var heapFactories = map[string]heapKind{
	HeapBinomial: {factory: binomial.Factory(), nodeBytes: binomial.NodeBytes()},
	HeapPairing:  {factory: pairing.Factory(), nodeBytes: pairing.NodeBytes()},
}

// Result is the outcome of one trial.
type Result struct {
	Scenario  string
	Algorithm string
	Heap      string
	Run       int // 1-based repeat index
	Vertices  int
	Edges     int // edges actually generated

	Elapsed time.Duration
	Stats   pqstats.Stats

	// Reached counts vertices with a finite distance (dijkstra) or spanned
	// by the tree (prim). Checksum is the sum of finite distances or the
	// tree weight.
	Reached      int
	Checksum     int
	Disconnected bool
	Agree        bool
	Err          error

	order int // scenario index, for sorting
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger (default zap.NewNop()).
func WithLogger(l *zap.Logger) RunnerOption {
	if l == nil {
		panic("bench: WithLogger(nil)")
	}
	return func(r *Runner) { r.logger = l }
}

// WithMetrics exports every trial's heap operations to m.
func WithMetrics(m *pqstats.Metrics) RunnerOption {
	if m == nil {
		panic("bench: WithMetrics(nil)")
	}
	return func(r *Runner) { r.metrics = m }
}

// Runner executes the trials of a Config.
type Runner struct {
	cfg     Config
	logger  *zap.Logger
	metrics *pqstats.Metrics
	onTrial func(Result) // test hook, called as each trial finishes
}

// NewRunner validates cfg and returns a runner.
func NewRunner(cfg Config, opts ...RunnerOption) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Runner{cfg: cfg, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// trial is one unit of work submitted to the pool.
type trial struct {
	order    int
	scenario Scenario
	g        *graph.Graph
	algo     string
	heap     string
	run      int
}

// Run generates every scenario's graph, executes all trials and returns the
// sorted results. The error joins trial failures and ErrDisagreement; on
// cancellation it is ctx.Err() and the results are those already finished,
// with agreement checked among them.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	// 1) Build the trial list; graphs are shared read-only.
	var trials []trial
	for i, s := range r.cfg.Scenarios {
		start := time.Now()
		g, err := generate(s)
		if err != nil {
			return nil, fmt.Errorf("bench: scenario %q: %w", s.Name, err)
		}
		r.logger.Info("graph generated",
			zap.String("scenario", s.Name),
			zap.Int("vertices", g.Order()),
			zap.Int("edges", g.Size()),
			zap.Duration("elapsed", time.Since(start)))

		for _, a := range s.Algorithms {
			for _, h := range s.Heaps {
				for run := 1; run <= s.Repeat; run++ {
					trials = append(trials, trial{order: i, scenario: s, g: g, algo: a, heap: h, run: run})
				}
			}
		}
	}

	// 2) Execute on the pool.
	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		results  = make([]Result, 0, len(trials))
		failures []error
	)
	pool, err := ants.NewPool(r.cfg.Workers, ants.WithPanicHandler(func(v interface{}) {
		mu.Lock()
		failures = append(failures, fmt.Errorf("%w: %v", ErrTrialPanic, v))
		mu.Unlock()
	}))
	if err != nil {
		return nil, fmt.Errorf("bench: worker pool: %w", err)
	}
	defer pool.Release()

	for _, t := range trials {
		if ctx.Err() != nil {
			break
		}
		t := t
		wg.Add(1)
		if err = pool.Submit(func() {
			defer wg.Done()
			res := r.runTrial(t)
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
			if r.onTrial != nil {
				r.onTrial(res)
			}
		}); err != nil {
			wg.Done()
			mu.Lock()
			failures = append(failures, fmt.Errorf("bench: submit trial: %w", err))
			mu.Unlock()
		}
	}
	wg.Wait()

	// 3) Deterministic order, then agreement over whatever finished.
	sortResults(results)
	agreeErr := checkAgreement(results)
	if ctx.Err() != nil {
		return results, ctx.Err()
	}
	for _, res := range results {
		if res.Err != nil {
			failures = append(failures, fmt.Errorf("bench: %s/%s/%s run %d: %w",
				res.Scenario, res.Algorithm, res.Heap, res.Run, res.Err))
		}
	}
	if agreeErr != nil {
		failures = append(failures, agreeErr)
	}
	for _, res := range results {
		r.logResult(res)
	}

	return results, errors.Join(failures...)
}

// generate builds the scenario's graph.
func generate(s Scenario) (*graph.Graph, error) {
	opts := []builder.Option{builder.WithSeed(s.Seed), builder.WithMaxWeight(s.MaxWeight)}
	if s.Connected {
		return builder.RandomConnected(s.Vertices, s.Edges, opts...)
	}

	return builder.RandomEdges(s.Vertices, s.Edges, opts...)
}

// runTrial runs one algorithm on one heap variant and collects statistics.
func (r *Runner) runTrial(t trial) Result {
	res := Result{
		Scenario:  t.scenario.Name,
		Algorithm: t.algo,
		Heap:      t.heap,
		Run:       t.run,
		Vertices:  t.g.Order(),
		Edges:     t.g.Size(),
		order:     t.order,
	}

	kind := heapFactories[t.heap]
	opts := []pqstats.Option{pqstats.WithName(t.heap), pqstats.WithNodeBytes(kind.nodeBytes)}
	if r.metrics != nil {
		opts = append(opts, pqstats.WithMetrics(r.metrics))
	}
	var q *pqstats.Queue
	factory := func() pq.MinPQ {
		q = pqstats.Wrap(kind.factory(), opts...)
		return q
	}

	start := time.Now()
	switch t.algo {
	case AlgoDijkstra:
		dr, err := dijkstra.Dijkstra(t.g, dijkstra.WithQueue(factory))
		if err != nil {
			res.Err = err
			break
		}
		for _, d := range dr.Dist {
			if d != dijkstra.Infinity {
				res.Reached++
				res.Checksum += d
			}
		}
	case AlgoPrim:
		tree, err := prim.Prim(t.g, prim.WithQueue(factory))
		if err != nil && !errors.Is(err, prim.ErrDisconnected) {
			res.Err = err
			break
		}
		res.Disconnected = err != nil
		res.Reached = len(tree.Edges) + 1
		res.Checksum = tree.Total
	default:
		res.Err = fmt.Errorf("%w: unknown algorithm %q", ErrInvalidConfig, t.algo)
	}
	res.Elapsed = time.Since(start)
	if q != nil {
		res.Stats = q.Stats()
	}

	return res
}

func sortResults(rs []Result) {
	sort.SliceStable(rs, func(i, j int) bool {
		a, b := rs[i], rs[j]
		if a.order != b.order {
			return a.order < b.order
		}
		if a.Algorithm != b.Algorithm {
			return a.Algorithm < b.Algorithm
		}
		if a.Heap != b.Heap {
			return a.Heap < b.Heap
		}
		return a.Run < b.Run
	})
}

// checkAgreement marks results whose (Reached, Checksum) match the first
// successful result of the same scenario and algorithm.
func checkAgreement(rs []Result) error {
	type key struct{ scenario, algo string }
	ref := make(map[key]*Result)
	var bad []string
	for i := range rs {
		res := &rs[i]
		if res.Err != nil {
			continue
		}
		k := key{res.Scenario, res.Algorithm}
		first, ok := ref[k]
		if !ok {
			ref[k] = res
			res.Agree = true
			continue
		}
		res.Agree = res.Reached == first.Reached && res.Checksum == first.Checksum
		if !res.Agree {
			bad = append(bad, fmt.Sprintf("%s/%s: %s run %d checksum %d, %s run %d checksum %d",
				res.Scenario, res.Algorithm, first.Heap, first.Run, first.Checksum, res.Heap, res.Run, res.Checksum))
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("%w: %v", ErrDisagreement, bad)
	}

	return nil
}

func (r *Runner) logResult(res Result) {
	fields := []zap.Field{
		zap.String("scenario", res.Scenario),
		zap.String("algorithm", res.Algorithm),
		zap.String("heap", res.Heap),
		zap.Int("run", res.Run),
		zap.Duration("elapsed", res.Elapsed),
		zap.Int64("inserts", res.Stats.Inserts),
		zap.Int64("extracts", res.Stats.Extracts),
		zap.Int64("decrease_keys", res.Stats.DecreaseKeys),
		zap.Int("reached", res.Reached),
		zap.Int("checksum", res.Checksum),
	}
	switch {
	case res.Err != nil:
		r.logger.Error("trial failed", append(fields, zap.Error(res.Err))...)
	case !res.Agree:
		r.logger.Warn("trial disagrees", fields...)
	case res.Disconnected:
		r.logger.Info("trial finished on disconnected graph", fields...)
	default:
		r.logger.Info("trial finished", fields...)
	}
}
