// SPDX-License-Identifier: MIT
// Package: meldheap/bench
//
// config.go - TOML configuration of the experiment runner.
//
// Layout:
//
//	workers = 4
//
//	[log]
//	level  = "info"
//	format = "console"
//
//	[[scenario]]
//	name       = "sparse"
//	vertices   = 10000
//	edges      = 50000
//	max_weight = 100
//	seed       = 0
//	connected  = false
//	algorithms = ["dijkstra", "prim"]
//	heaps      = ["binomial", "pairing"]
//	repeat     = 1
//
// Omitted scenario fields take the values of DefaultScenario.

package bench

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/meldheap/builder"
	"github.com/katalvlaran/meldheap/internal/logutil"
)

// Algorithm names.
const (
	AlgoDijkstra = "dijkstra"
	AlgoPrim     = "prim"
)

// Heap names.
const (
	HeapBinomial = "binomial"
	HeapPairing  = "pairing"
)

// ErrInvalidConfig is wrapped by LoadConfig and Validate.
var ErrInvalidConfig = errors.New("bench: invalid config")

// Config is the root of the TOML document.
type Config struct {
	Workers   int               `toml:"workers"`
	Log       logutil.LogConfig `toml:"log"`
	Scenarios []Scenario        `toml:"scenario"`
}

// Scenario is one generated graph and the trials run on it.
type Scenario struct {
	Name       string   `toml:"name"`
	Vertices   int      `toml:"vertices"`
	Edges      int      `toml:"edges"`
	MaxWeight  int      `toml:"max_weight"`
	Seed       int64    `toml:"seed"`
	Connected  bool     `toml:"connected"`
	Algorithms []string `toml:"algorithms"`
	Heaps      []string `toml:"heaps"`
	Repeat     int      `toml:"repeat"`
}

// DefaultScenario is the reference experiment: 10000 vertices,
// 50000 random edges, weights 1..100, seed 0, both algorithms, both heaps.
func DefaultScenario() Scenario {
	return Scenario{
		Name:       "default",
		Vertices:   10000,
		Edges:      50000,
		MaxWeight:  builder.DefaultMaxWeight,
		Seed:       0,
		Algorithms: []string{AlgoDijkstra, AlgoPrim},
		Heaps:      []string{HeapBinomial, HeapPairing},
		Repeat:     1,
	}
}

// DefaultConfig runs DefaultScenario on runtime.NumCPU() workers.
func DefaultConfig() Config {
	return Config{
		Workers:   runtime.NumCPU(),
		Log:       logutil.DefaultLogConfig(),
		Scenarios: []Scenario{DefaultScenario()},
	}
}

// LoadConfig decodes path over DefaultConfig, fills omitted scenario fields
// and validates the result. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	cfg.Scenarios = nil

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("bench: load %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys %s in %s", ErrInvalidConfig, strings.Join(keys, ", "), path)
	}
	if len(cfg.Scenarios) == 0 {
		cfg.Scenarios = []Scenario{DefaultScenario()}
	}
	cfg.fillDefaults()

	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// fillDefaults completes zero-valued scenario fields.
func (c *Config) fillDefaults() {
	def := DefaultScenario()
	if c.Workers == 0 {
		c.Workers = runtime.NumCPU()
	}
	for i := range c.Scenarios {
		s := &c.Scenarios[i]
		if s.Name == "" {
			s.Name = fmt.Sprintf("scenario-%d", i+1)
		}
		if s.MaxWeight == 0 {
			s.MaxWeight = def.MaxWeight
		}
		if len(s.Algorithms) == 0 {
			s.Algorithms = def.Algorithms
		}
		if len(s.Heaps) == 0 {
			s.Heaps = def.Heaps
		}
		if s.Repeat == 0 {
			s.Repeat = def.Repeat
		}
	}
}

// Validate reports the first invalid field, wrapped around ErrInvalidConfig.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers=%d", ErrInvalidConfig, c.Workers)
	}
	if len(c.Scenarios) == 0 {
		return fmt.Errorf("%w: no scenarios", ErrInvalidConfig)
	}
	seen := make(map[string]bool, len(c.Scenarios))
	for _, s := range c.Scenarios {
		if seen[s.Name] {
			return fmt.Errorf("%w: duplicate scenario %q", ErrInvalidConfig, s.Name)
		}
		seen[s.Name] = true
		if err := s.validate(); err != nil {
			return err
		}
	}

	return nil
}

func (s Scenario) validate() error {
	switch {
	case s.Vertices < 1:
		return fmt.Errorf("%w: scenario %q: vertices=%d", ErrInvalidConfig, s.Name, s.Vertices)
	case s.Edges < 0:
		return fmt.Errorf("%w: scenario %q: edges=%d", ErrInvalidConfig, s.Name, s.Edges)
	case s.Connected && s.Edges < s.Vertices-1:
		return fmt.Errorf("%w: scenario %q: connected graph needs at least %d edges, got %d",
			ErrInvalidConfig, s.Name, s.Vertices-1, s.Edges)
	case s.MaxWeight < 1:
		return fmt.Errorf("%w: scenario %q: max_weight=%d", ErrInvalidConfig, s.Name, s.MaxWeight)
	case s.Repeat < 1:
		return fmt.Errorf("%w: scenario %q: repeat=%d", ErrInvalidConfig, s.Name, s.Repeat)
	case len(s.Algorithms) == 0 || len(s.Heaps) == 0:
		return fmt.Errorf("%w: scenario %q: no algorithms or heaps", ErrInvalidConfig, s.Name)
	}
	for _, a := range s.Algorithms {
		if a != AlgoDijkstra && a != AlgoPrim {
			return fmt.Errorf("%w: scenario %q: unknown algorithm %q", ErrInvalidConfig, s.Name, a)
		}
	}
	for _, h := range s.Heaps {
		if _, ok := heapFactories[h]; !ok {
			return fmt.Errorf("%w: scenario %q: unknown heap %q", ErrInvalidConfig, s.Name, h)
		}
	}

	return nil
}
