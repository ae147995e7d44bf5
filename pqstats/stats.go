package pqstats

import (
	"fmt"
	"io"
	"time"
)

// Stats is a snapshot of a Queue's counters.
type Stats struct {
	Heap string

	Inserts          int64
	Extracts         int64
	DecreaseKeys     int64 // applied (new key not larger)
	DecreasesIgnored int64 // no-ops because the new key was larger
	Melds            int64
	Errors           int64

	InsertTime   time.Duration
	ExtractTime  time.Duration
	DecreaseTime time.Duration

	Size           int
	PeakSize       int
	NodesAllocated int64
	NodeBytes      uintptr
}

// EstimatedMemory is NodesAllocated times NodeBytes; 0 when NodeBytes is unset.
func (s Stats) EstimatedMemory() uint64 {
	return uint64(s.NodesAllocated) * uint64(s.NodeBytes)
}

// Add returns the element-wise sum of s and o, keeping s.Heap and NodeBytes.
// Peak sizes combine with max.
func (s Stats) Add(o Stats) Stats {
	s.Inserts += o.Inserts
	s.Extracts += o.Extracts
	s.DecreaseKeys += o.DecreaseKeys
	s.DecreasesIgnored += o.DecreasesIgnored
	s.Melds += o.Melds
	s.Errors += o.Errors
	s.InsertTime += o.InsertTime
	s.ExtractTime += o.ExtractTime
	s.DecreaseTime += o.DecreaseTime
	s.Size += o.Size
	s.NodesAllocated += o.NodesAllocated
	if o.PeakSize > s.PeakSize {
		s.PeakSize = o.PeakSize
	}

	return s
}

// Report writes the statistics block:
//
//	=== binomial statistics ===
//	Insert:       10000 ops | 512 us
//	...
func (s Stats) Report(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"=== %s statistics ===\n"+
			"Insert:       %d ops | %d us\n"+
			"Extract-min:  %d ops | %d us\n"+
			"Decrease-key: %d ops (%d ignored) | %d us\n"+
			"Meld:         %d ops\n"+
			"Errors:       %d\n"+
			"Peak size:    %d\n"+
			"Estimated memory: %d bytes (%d nodes x %d bytes)\n",
		s.Heap,
		s.Inserts, s.InsertTime.Microseconds(),
		s.Extracts, s.ExtractTime.Microseconds(),
		s.DecreaseKeys, s.DecreasesIgnored, s.DecreaseTime.Microseconds(),
		s.Melds,
		s.Errors,
		s.PeakSize,
		s.EstimatedMemory(), s.NodesAllocated, s.NodeBytes,
	)

	return err
}
