// Package report renders a finished run: the served-arrival table, the
// summary statistics, the decision-trace summary and the JSON results file.
// Nothing here feeds back into simulation state.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/inference-sim/queue-sim/sim"
	"github.com/inference-sim/queue-sim/sim/trace"
)

const ruleWidth = 70

var (
	headerColor = color.New(color.Bold)
	warnColor   = color.New(color.FgYellow, color.Bold)
)

// WriteTable writes one row per served record, sorted by arrival ID.
func WriteTable(w io.Writer, records []sim.ServiceRecord) error {
	served := make([]sim.ServiceRecord, 0, len(records))
	for _, r := range records {
		if r.Status == sim.StatusServed && r.Service != nil {
			served = append(served, r)
		}
	}
	sort.Slice(served, func(i, j int) bool { return served[i].ID < served[j].ID })

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tArrival\tServer\tStart\tService\tDelay\tStatus")
	fmt.Fprintln(tw, "--\t-------\t------\t-----\t-------\t-----\t------")
	for _, r := range served {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%d\t%d\t%d\t%s\n",
			r.ID, r.ArrivalTime, r.Service.Server, r.Service.Start, r.Service.Duration, r.Service.Delay, r.Status)
	}
	return tw.Flush()
}

// WriteSummary writes the run totals, delay statistics and per-server usage.
func WriteSummary(w io.Writer, m *sim.Metrics) error {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(headerColor.Sprint("=== Simulation Summary ==="))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", ruleWidth))
	sb.WriteString("\n")

	balked := fmt.Sprint(m.Balked)
	if m.Balked > 0 {
		balked = warnColor.Sprint(balked)
	}
	sb.WriteString(fmt.Sprintf("Total arrivals processed       : %d\n", m.Processed))
	sb.WriteString(fmt.Sprintf("Served                         : %d\n", m.Served))
	sb.WriteString(fmt.Sprintf("Balked (waiting area full)     : %s\n", balked))
	sb.WriteString(fmt.Sprintf("Still queued at end of run     : %d\n", m.StillQueued))
	sb.WriteString(fmt.Sprintf("Max waiting-area size          : %d\n", m.MaxQueueLen))
	if m.Served > 0 {
		sb.WriteString(fmt.Sprintf("Average delay                  : %.2f\n", m.AverageDelay))
		sb.WriteString(fmt.Sprintf("Delay p90                      : %.2f\n", m.DelayP90))
		sb.WriteString(fmt.Sprintf("Max delay                      : %d\n", m.MaxDelay))
		sb.WriteString(fmt.Sprintf("Served after waiting           : %d\n", m.Waited))
	}
	for _, s := range m.Servers {
		sb.WriteString(fmt.Sprintf("Server %-8s: served=%d busy=%d idle=%d utilization=%.2f\n",
			s.Name, s.Served, s.BusyTime, s.IdleTime, s.Utilization))
	}
	sb.WriteString(strings.Repeat("-", ruleWidth))
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteTraceSummary writes the aggregated seating decisions.
func WriteTraceSummary(w io.Writer, s *trace.TraceSummary) error {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(headerColor.Sprint("=== Decision Trace ==="))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Decisions          : %d\n", s.TotalDecisions))
	sb.WriteString(fmt.Sprintf("Served immediately : %d\n", s.ServedImmediately))
	sb.WriteString(fmt.Sprintf("Queued             : %d\n", s.QueuedCount))
	sb.WriteString(fmt.Sprintf("Drained from queue : %d\n", s.DrainedFromQueue))
	sb.WriteString(fmt.Sprintf("Balked             : %d\n", s.BalkedCount))
	sb.WriteString(fmt.Sprintf("Max queue depth    : %d\n", s.MaxQueueDepth))

	names := make([]string, 0, len(s.ServerDistribution))
	for name := range s.ServerDistribution {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		sb.WriteString(fmt.Sprintf("  %s: %d assignments\n", name, s.ServerDistribution[name]))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
