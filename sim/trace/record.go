// Package trace provides decision-trace recording for seating and queueing analysis.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// Outcome is what happened to an arrival when it was first considered.
type Outcome string

const (
	OutcomeServed Outcome = "served" // seated on a server immediately
	OutcomeQueued Outcome = "queued" // admitted to the waiting area
	OutcomeBalked Outcome = "balked" // refused by a full waiting area
)

// AdmissionRecord captures the seating decision for a new arrival.
type AdmissionRecord struct {
	ArrivalID  int
	Clock      int64
	Outcome    Outcome
	QueueDepth int // waiting-area size after the decision
}

// RoutingRecord captures a server assignment, either for a new arrival or for
// an arrival drained from the waiting area.
type RoutingRecord struct {
	ArrivalID int
	Clock     int64
	Server    string
	FromQueue bool
	Delay     int64
	FreeAt    map[string]int64 // server name -> FreeAt before the commit
}
