package sim

import "github.com/sirupsen/logrus"

// Event defines the interface for simulation events.
// Each event has a Timestamp and an Execute method that advances simulation
// state when invoked. An error from Execute aborts the run.
type Event interface {
	Timestamp() int64
	Execute(*Simulator) error
}

// ArrivalEvent is the arrival of a new customer. The model is arrival-driven:
// service completions are never scheduled as events of their own, they are
// only compared against the clock when an arrival is processed.
type ArrivalEvent struct {
	time    int64   // simulation time of arrival
	Arrival Arrival // the customer arriving
}

// NewArrivalEvent creates the event for arrival id at time t.
func NewArrivalEvent(id int, t int64) *ArrivalEvent {
	return &ArrivalEvent{time: t, Arrival: Arrival{ID: id, ArrivalTime: t}}
}

// Timestamp returns the scheduled time of the ArrivalEvent.
func (e *ArrivalEvent) Timestamp() int64 {
	return e.time
}

// Execute drains the waiting area onto servers already free, then seats the
// new arrival, then schedules the next arrival. Queued customers are served
// before the newcomer even when a server frees up exactly at the arrival time.
func (e *ArrivalEvent) Execute(sim *Simulator) error {
	logrus.Debugf("<< Arrival: %d at t=%d (queue %s)", e.Arrival.ID, e.time, sim.WaitQ)

	if err := sim.drainQueue(); err != nil {
		return err
	}
	if err := sim.seatArrival(e.Arrival); err != nil {
		return err
	}
	if e.Arrival.ID < sim.NumArrivals {
		return sim.scheduleNextArrival()
	}
	return nil
}
