package sim

import "fmt"

// Arrival is a customer entering the facility. It is created when the engine
// schedules the next arrival and carried unchanged until the customer is
// served or balks.
type Arrival struct {
	ID          int   // 1-based arrival index
	ArrivalTime int64 // simulated time of arrival
}

func (a Arrival) String() string {
	return fmt.Sprintf("Arrival: (ID: %d, ArrivalTime: %d)", a.ID, a.ArrivalTime)
}
