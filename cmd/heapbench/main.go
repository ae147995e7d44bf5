// Command heapbench generates random weighted graphs, runs Dijkstra and Prim
// on every configured heap variant and prints timings with per-heap
// operation statistics. It exits non-zero when a trial fails or two heap
// variants disagree.
//
// Usage:
//
//	heapbench [-config bench.toml] [-vertices N] [-edges M] [-seed S]
//	          [-algorithms dijkstra,prim] [-heaps binomial,pairing]
//	          [-repeat R] [-workers W] [-metrics FILE]
//
// With -metrics, every heap operation is exported to a Prometheus registry
// whose series are written to FILE ("-" for stdout) in text format on exit.
//
// Command-line values override every scenario of the configuration.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/katalvlaran/meldheap/bench"
	"github.com/katalvlaran/meldheap/internal/logutil"
	"github.com/katalvlaran/meldheap/pqstats"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "heapbench:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("heapbench", flag.ContinueOnError)
	var (
		configPath = fs.String("config", "", "TOML configuration file")
		vertices   = fs.Int("vertices", 0, "vertex count")
		edges      = fs.Int("edges", 0, "random edge attempts")
		seed       = fs.Int64("seed", 0, "random seed")
		algorithms = fs.String("algorithms", "", "comma-separated: dijkstra,prim")
		heaps      = fs.String("heaps", "", "comma-separated: binomial,pairing")
		repeat     = fs.Int("repeat", 0, "runs per (algorithm, heap)")
		workers    = fs.Int("workers", 0, "worker pool size")
		metrics    = fs.String("metrics", "", `write Prometheus metrics to this file on exit ("-" for stdout)`)
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := bench.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = bench.LoadConfig(*configPath); err != nil {
			return err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "workers" {
			cfg.Workers = *workers
		}
		for i := range cfg.Scenarios {
			s := &cfg.Scenarios[i]
			switch f.Name {
			case "vertices":
				s.Vertices = *vertices
			case "edges":
				s.Edges = *edges
			case "seed":
				s.Seed = *seed
			case "algorithms":
				s.Algorithms = splitList(*algorithms)
			case "heaps":
				s.Heaps = splitList(*heaps)
			case "repeat":
				s.Repeat = *repeat
			}
		}
	})

	logger, err := logutil.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	opts := []bench.RunnerOption{bench.WithLogger(logger)}
	var reg *prometheus.Registry
	if *metrics != "" {
		reg = prometheus.NewRegistry()
		m := pqstats.NewMetrics("heapbench")
		if err = m.Register(reg); err != nil {
			return err
		}
		opts = append(opts, bench.WithMetrics(m))
	}

	runner, err := bench.NewRunner(cfg, opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", zap.Int("workers", cfg.Workers), zap.Int("scenarios", len(cfg.Scenarios)))
	results, runErr := runner.Run(ctx)
	if err = bench.WriteReport(os.Stdout, results); err != nil {
		return err
	}
	if reg != nil {
		if err = writeMetrics(reg, *metrics); err != nil {
			return errors.Join(runErr, err)
		}
	}

	return runErr
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
