package sim

import (
	"fmt"
	"sort"
)

// Status is the final disposition of an arrival.
type Status string

const (
	StatusServed Status = "Served"
	StatusBalked Status = "Balked"
)

// Service holds the timing of a served arrival.
type Service struct {
	Server   string `json:"server"`
	Start    int64  `json:"service_start_time"`
	Duration int64  `json:"service_time"`
	Delay    int64  `json:"delay"` // Start - ArrivalTime
}

// ServiceRecord is the disposition of one arrival. Service is nil for
// balked arrivals.
type ServiceRecord struct {
	ID          int      `json:"id"`
	ArrivalTime int64    `json:"arrival_time"`
	Status      Status   `json:"status"`
	Service     *Service `json:"service,omitempty"`
}

func (r ServiceRecord) String() string {
	if r.Service == nil {
		return fmt.Sprintf("ServiceRecord: (ID: %d, ArrivalTime: %d, Status: %s)", r.ID, r.ArrivalTime, r.Status)
	}
	return fmt.Sprintf("ServiceRecord: (ID: %d, ArrivalTime: %d, Server: %s, Start: %d, Duration: %d, Delay: %d)",
		r.ID, r.ArrivalTime, r.Service.Server, r.Service.Start, r.Service.Duration, r.Service.Delay)
}

// servedRecord builds the record for a served arrival.
func servedRecord(a Arrival, server string, start, duration int64) ServiceRecord {
	return ServiceRecord{
		ID:          a.ID,
		ArrivalTime: a.ArrivalTime,
		Status:      StatusServed,
		Service: &Service{
			Server:   server,
			Start:    start,
			Duration: duration,
			Delay:    start - a.ArrivalTime,
		},
	}
}

// balkedRecord builds the record for an arrival refused by a full waiting area.
func balkedRecord(a Arrival) ServiceRecord {
	return ServiceRecord{ID: a.ID, ArrivalTime: a.ArrivalTime, Status: StatusBalked}
}

// Ledger is the append-only log of dispositions, in the order they occurred.
type Ledger struct {
	records []ServiceRecord
}

// Append adds a record to the end of the ledger.
func (l *Ledger) Append(r ServiceRecord) {
	l.records = append(l.records, r)
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	return len(l.records)
}

// Records returns a copy of every record in disposition order.
func (l *Ledger) Records() []ServiceRecord {
	return append([]ServiceRecord(nil), l.records...)
}

// Served returns the served records sorted by arrival ID.
func (l *Ledger) Served() []ServiceRecord {
	served := make([]ServiceRecord, 0, len(l.records))
	for _, r := range l.records {
		if r.Status == StatusServed {
			served = append(served, r)
		}
	}
	sort.Slice(served, func(i, j int) bool { return served[i].ID < served[j].ID })
	return served
}

// BalkedCount returns the number of balked records.
func (l *Ledger) BalkedCount() int {
	n := 0
	for _, r := range l.records {
		if r.Status == StatusBalked {
			n++
		}
	}
	return n
}
