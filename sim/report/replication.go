package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/inference-sim/queue-sim/sim/replication"
)

// WriteReplicationSummary writes one row per replication followed by the
// cross-run aggregates.
func WriteReplicationSummary(w io.Writer, s *replication.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Run\tRunID\tSeed\tServed\tBalked\tQueued\tAvgDelay")
	for _, r := range s.Runs {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\t%.2f\n",
			r.Index, r.RunID, r.Seed, r.Metrics.Served, r.Metrics.Balked, r.Metrics.StillQueued, r.Metrics.AverageDelay)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, headerColor.Sprint("=== Replication Summary ==="))
	fmt.Fprintf(w, "Replications       : %d\n", len(s.Runs))
	fmt.Fprintf(w, "Mean served        : %.2f\n", s.MeanServed)
	fmt.Fprintf(w, "Average delay      : %.3f (sd %.3f)\n", s.MeanAverageDelay, s.StdDevAverageDelay)
	fmt.Fprintf(w, "Balk fraction      : %.3f (sd %.3f)\n", s.MeanBalkFraction, s.StdDevBalkFraction)
	for _, name := range s.Servers {
		fmt.Fprintf(w, "Utilization %-7s: %.3f\n", name, s.MeanUtilization[name])
	}
	_, err := fmt.Fprintln(w)
	return err
}
