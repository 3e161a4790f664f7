// Summarizes a finished run: arrival counts, delay statistics and per-server
// usage.

package sim

// ServerMetrics reports one server's usage over a run.
type ServerMetrics struct {
	Name        string  `json:"name"`
	Served      int     `json:"served"`
	BusyTime    int64   `json:"busy_time"`
	IdleTime    int64   `json:"idle_time"`   // up to the last arrival's clock
	Utilization float64 `json:"utilization"` // BusyTime / (BusyTime + IdleTime)
}

// Metrics aggregates statistics about a run for final reporting.
type Metrics struct {
	Processed    int             `json:"processed"`    // arrivals considered
	Served       int             `json:"served"`       // arrivals with a Served record
	Balked       int             `json:"balked"`       // arrivals refused by a full waiting area
	StillQueued  int             `json:"still_queued"` // arrivals waiting when the run halted
	Waited       int             `json:"waited"`       // served arrivals with a positive delay
	AverageDelay float64         `json:"average_delay"`
	MaxDelay     int64           `json:"max_delay"`
	DelayP90     float64         `json:"delay_p90"`
	MaxQueueLen  int             `json:"max_queue_len"`
	SimEndedTime int64           `json:"sim_ended_time"`
	Servers      []ServerMetrics `json:"servers"`
}

// Metrics computes the run summary from the ledger and server states.
func (sim *Simulator) Metrics() *Metrics {
	m := &Metrics{
		Processed:    sim.processed,
		Balked:       sim.Balked,
		StillQueued:  sim.WaitQ.Len(),
		MaxQueueLen:  sim.MaxQueueLen,
		SimEndedTime: sim.Clock,
	}

	served := sim.Ledger.Served()
	delays := make([]float64, 0, len(served))
	for _, r := range served {
		d := r.Service.Delay
		delays = append(delays, float64(d))
		if d > 0 {
			m.Waited++
		}
		if d > m.MaxDelay {
			m.MaxDelay = d
		}
	}
	m.Served = len(served)
	m.AverageDelay = CalculateMean(delays)
	m.DelayP90 = CalculatePercentile(delays, 90)

	for _, s := range sim.Servers.States() {
		idle := s.IdleUntil(sim.Clock)
		sm := ServerMetrics{
			Name:     s.Name,
			Served:   s.Served,
			BusyTime: s.BusyTime,
			IdleTime: idle,
		}
		if total := s.BusyTime + idle; total > 0 {
			sm.Utilization = float64(s.BusyTime) / float64(total)
		}
		m.Servers = append(m.Servers, sm)
	}
	return m
}

// BalkFraction returns the share of processed arrivals that balked.
func (m *Metrics) BalkFraction() float64 {
	if m.Processed == 0 {
		return 0
	}
	return float64(m.Balked) / float64(m.Processed)
}
