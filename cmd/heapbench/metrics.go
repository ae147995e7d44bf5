package main

import (
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// writeMetrics gathers g and writes every family in the Prometheus text
// format to path, or to stdout when path is "-".
func writeMetrics(g prometheus.Gatherer, path string) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("heapbench: gather metrics: %w", err)
	}

	var w io.Writer = os.Stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("heapbench: metrics file: %w", err)
		}
		defer f.Close()
		w = f
	}

	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("heapbench: write metrics: %w", err)
		}
	}

	return nil
}
