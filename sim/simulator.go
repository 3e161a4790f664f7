// sim/simulator.go
package sim

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/queue-sim/sim/trace"
)

// Samplers supplies the random variates of a run: one sampler for
// inter-arrival gaps and one service-time sampler per server.
type Samplers struct {
	InterArrival Sampler
	Service      map[string]Sampler
}

// EmpiricalSamplers binds every table in cfg to its own RNG subsystem.
func EmpiricalSamplers(cfg SimConfig, rng *PartitionedRNG) (Samplers, error) {
	arrivals, err := NewEmpiricalSampler(cfg.InterArrival, rng.ForSubsystem(SubsystemArrivals))
	if err != nil {
		return Samplers{}, fmt.Errorf("inter_arrival: %w", err)
	}
	samplers := Samplers{
		InterArrival: arrivals,
		Service:      make(map[string]Sampler, len(cfg.Servers)),
	}
	for _, s := range cfg.Servers {
		svc, err := NewEmpiricalSampler(s.Service, rng.ForSubsystem(SubsystemServer(s.Name)))
		if err != nil {
			return Samplers{}, fmt.Errorf("server %s service: %w", s.Name, err)
		}
		samplers.Service[s.Name] = svc
	}
	return samplers, nil
}

// Simulator is the core object that holds simulation time, the server pool,
// the waiting area and the ledger. A Simulator runs once; replications use
// one Simulator each and share nothing.
type Simulator struct {
	Clock       int64
	NumArrivals int
	// WaitQ holds arrivals that found every server busy
	WaitQ   *WaitingArea
	Servers *ServerPool
	Ledger  *Ledger
	// Balked counts arrivals refused by a full waiting area
	Balked int
	// MaxQueueLen is the largest waiting-area size observed during the run
	MaxQueueLen int
	// Trace records seating decisions when enabled; nil disables tracing
	Trace *trace.SimulationTrace

	interArrival Sampler
	service      map[string]Sampler
	nextArrival  int64
	processed    int
	ran          bool
}

// NewSimulator validates cfg and builds a simulator drawing variates from samplers.
func NewSimulator(cfg SimConfig, samplers Samplers) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if samplers.InterArrival == nil {
		return nil, fmt.Errorf("%w: missing inter-arrival sampler", ErrConfiguration)
	}
	for _, s := range cfg.Servers {
		if samplers.Service[s.Name] == nil {
			return nil, fmt.Errorf("%w: missing service sampler for server %q", ErrConfiguration, s.Name)
		}
	}

	pool, err := NewServerPool(cfg.ServerNames()...)
	if err != nil {
		return nil, err
	}
	waitQ := NewUnboundedWaitingArea()
	if !cfg.UnboundedQueue {
		waitQ = NewWaitingArea(cfg.QueueCapacity)
	}

	return &Simulator{
		Clock:        0,
		NumArrivals:  cfg.NumArrivals,
		WaitQ:        waitQ,
		Servers:      pool,
		Ledger:       &Ledger{},
		interArrival: samplers.InterArrival,
		service:      samplers.Service,
	}, nil
}

// NewSeededSimulator builds a simulator whose variates come from the
// configured empirical tables, seeded from seed.
func NewSeededSimulator(cfg SimConfig, seed int64) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	samplers, err := EmpiricalSamplers(cfg, NewPartitionedRNG(NewSimulationKey(seed)))
	if err != nil {
		return nil, err
	}
	return NewSimulator(cfg, samplers)
}

// Run processes NumArrivals arrivals and halts. Arrivals still waiting when
// the last one has been considered stay in WaitQ. An invariant violation
// aborts the run and is returned.
func (sim *Simulator) Run() error {
	if sim.ran {
		return errors.New("simulator has already run")
	}
	sim.ran = true

	logrus.Infof("Starting simulation: %d arrivals, servers=%v, %s",
		sim.NumArrivals, sim.Servers.Names(), sim.capacityString())

	for i := 1; i <= sim.NumArrivals; i++ {
		ev := NewArrivalEvent(i, sim.nextArrival)
		// advance the clock
		sim.Clock = ev.Timestamp()
		logrus.Debugf("[t %07d] Executing %T", sim.Clock, ev)
		if err := ev.Execute(sim); err != nil {
			logrus.Errorf("[t %07d] Aborting run: %v", sim.Clock, err)
			return fmt.Errorf("arrival %d at t=%d: %w", i, sim.Clock, err)
		}
		sim.processed++
	}

	logrus.Infof("[t %07d] Simulation ended: %d served, %d balked, %d still queued",
		sim.Clock, sim.Ledger.Len()-sim.Balked, sim.Balked, sim.WaitQ.Len())
	return nil
}

// Processed returns the number of arrivals considered so far.
func (sim *Simulator) Processed() int {
	return sim.processed
}

// drainQueue seats waiting arrivals, front first, while some server is free
// at the current clock.
func (sim *Simulator) drainQueue() error {
	for sim.WaitQ.Len() > 0 {
		name, ok := sim.Servers.EarliestFreeAt(sim.Clock)
		if !ok {
			return nil
		}
		next, err := sim.WaitQ.Pop()
		if err != nil {
			return err
		}
		state, _ := sim.Servers.State(name)
		start := max(sim.Clock, state.FreeAt)
		if err := sim.serve(name, next, start, true); err != nil {
			return err
		}
	}
	return nil
}

// seatArrival serves a immediately if a server is free, otherwise queues it,
// otherwise records a balk.
func (sim *Simulator) seatArrival(a Arrival) error {
	if name, ok := sim.Servers.EarliestFreeAt(sim.Clock); ok {
		sim.recordAdmission(a, trace.OutcomeServed)
		return sim.serve(name, a, sim.Clock, false)
	}

	if sim.WaitQ.TryAdmit(a) {
		if sim.WaitQ.Len() > sim.MaxQueueLen {
			sim.MaxQueueLen = sim.WaitQ.Len()
		}
		logrus.Debugf("[t %07d] Arrival %d queued (queue %s)", sim.Clock, a.ID, sim.WaitQ)
		sim.recordAdmission(a, trace.OutcomeQueued)
		return nil
	}

	sim.Balked++
	sim.Ledger.Append(balkedRecord(a))
	logrus.Debugf("[t %07d] Arrival %d balked (queue full at %d)", sim.Clock, a.ID, sim.WaitQ.Len())
	sim.recordAdmission(a, trace.OutcomeBalked)
	return nil
}

// serve samples the server's service time, commits the interval and records
// the disposition.
func (sim *Simulator) serve(server string, a Arrival, start int64, fromQueue bool) error {
	var freeAt map[string]int64
	if sim.Trace.Enabled() {
		freeAt = sim.freeAtSnapshot()
	}

	duration := sim.service[server].Sample()
	if err := sim.Servers.Commit(server, start, duration); err != nil {
		return err
	}
	rec := servedRecord(a, server, start, duration)
	sim.Ledger.Append(rec)
	logrus.Debugf("[t %07d] Arrival %d served by %s: start=%d duration=%d delay=%d",
		sim.Clock, a.ID, server, start, duration, rec.Service.Delay)

	if sim.Trace.Enabled() {
		sim.Trace.RecordRouting(trace.RoutingRecord{
			ArrivalID: a.ID,
			Clock:     sim.Clock,
			Server:    server,
			FromQueue: fromQueue,
			Delay:     rec.Service.Delay,
			FreeAt:    freeAt,
		})
	}
	return nil
}

// scheduleNextArrival samples the next inter-arrival gap.
func (sim *Simulator) scheduleNextArrival() error {
	gap := sim.interArrival.Sample()
	if gap < 0 {
		return fmt.Errorf("%w: negative inter-arrival gap %d", ErrInvariantViolation, gap)
	}
	sim.nextArrival = sim.Clock + gap
	return nil
}

func (sim *Simulator) recordAdmission(a Arrival, outcome trace.Outcome) {
	if !sim.Trace.Enabled() {
		return
	}
	sim.Trace.RecordAdmission(trace.AdmissionRecord{
		ArrivalID:  a.ID,
		Clock:      sim.Clock,
		Outcome:    outcome,
		QueueDepth: sim.WaitQ.Len(),
	})
}

func (sim *Simulator) freeAtSnapshot() map[string]int64 {
	states := sim.Servers.States()
	snapshot := make(map[string]int64, len(states))
	for _, s := range states {
		snapshot[s.Name] = s.FreeAt
	}
	return snapshot
}

func (sim *Simulator) capacityString() string {
	if sim.WaitQ.Unbounded() {
		return "unbounded queue"
	}
	return fmt.Sprintf("queue capacity %d", sim.WaitQ.Capacity())
}
