package bench

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"
)

// WriteReport prints one table row per result followed by the heap
// statistics of every trial, in the order of rs.
func WriteReport(w io.Writer, rs []Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SCENARIO\tALGORITHM\tHEAP\tRUN\tV\tE\tELAPSED\tREACHED\tCHECKSUM\tSTATUS")
	for _, r := range rs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\t%s\t%d\t%d\t%s\n",
			r.Scenario, r.Algorithm, r.Heap, r.Run, r.Vertices, r.Edges,
			r.Elapsed.Round(time.Microsecond), r.Reached, r.Checksum, r.status())
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, r := range rs {
		if r.Err != nil {
			continue
		}
		if _, err := fmt.Fprintf(w, "\n[%s/%s run %d]\n", r.Scenario, r.Algorithm, r.Run); err != nil {
			return err
		}
		if err := r.Stats.Report(w); err != nil {
			return err
		}
	}

	return nil
}

func (r Result) status() string {
	switch {
	case r.Err != nil:
		return "error"
	case !r.Agree:
		return "MISMATCH"
	case r.Disconnected:
		return "ok (disconnected)"
	default:
		return "ok"
	}
}
