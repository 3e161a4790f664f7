package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalDecisions     int
	ServedImmediately  int
	QueuedCount        int
	BalkedCount        int
	DrainedFromQueue   int
	MaxQueueDepth      int
	ServerDistribution map[string]int // server name -> count of assignments
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		ServerDistribution: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalDecisions = len(st.Admissions)
	for _, a := range st.Admissions {
		switch a.Outcome {
		case OutcomeServed:
			summary.ServedImmediately++
		case OutcomeQueued:
			summary.QueuedCount++
		case OutcomeBalked:
			summary.BalkedCount++
		}
		if a.QueueDepth > summary.MaxQueueDepth {
			summary.MaxQueueDepth = a.QueueDepth
		}
	}

	for _, r := range st.Routings {
		summary.ServerDistribution[r.Server]++
		if r.FromQueue {
			summary.DrainedFromQueue++
		}
	}

	return summary
}
