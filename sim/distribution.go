package sim

import (
	"fmt"
	"math"
)

// probabilityTolerance bounds how far a table's probabilities may sum from 1.
const probabilityTolerance = 1e-9

// Outcome is one row of a discrete empirical distribution.
type Outcome struct {
	Probability float64 `yaml:"probability" json:"probability"`
	Value       int64   `yaml:"value" json:"value"`
}

// Distribution is an ordered table of outcomes.
//
// The row order is part of the distribution's identity: Lookup partitions
// [0, 1) into consecutive intervals following the table order, so two tables
// holding the same rows in a different order map a given draw to different values.
type Distribution []Outcome

// Validate checks that the table is non-empty, that every probability and value
// is non-negative, and that the probabilities sum to 1 within tolerance.
func (d Distribution) Validate() error {
	if len(d) == 0 {
		return fmt.Errorf("%w: empty distribution table", ErrConfiguration)
	}
	total := 0.0
	for i, o := range d {
		if math.IsNaN(o.Probability) || o.Probability < 0 {
			return fmt.Errorf("%w: row %d has invalid probability %v", ErrConfiguration, i, o.Probability)
		}
		if o.Value < 0 {
			return fmt.Errorf("%w: row %d has negative value %d", ErrConfiguration, i, o.Value)
		}
		total += o.Probability
	}
	if math.Abs(total-1) > probabilityTolerance {
		return fmt.Errorf("%w: probabilities sum to %v, want 1", ErrConfiguration, total)
	}
	return nil
}

// Lookup maps a uniform draw r in [0, 1) to a value by walking the table and
// returning the first row whose running probability sum exceeds r.
// When rounding leaves r past every prefix sum, the last row's value is returned.
// Lookup panics on an empty table; call Validate first.
func (d Distribution) Lookup(r float64) int64 {
	if len(d) == 0 {
		panic("Distribution.Lookup: empty table")
	}
	cumulative := 0.0
	for _, o := range d {
		cumulative += o.Probability
		if r < cumulative {
			return o.Value
		}
	}
	return d[len(d)-1].Value
}

// Mean returns the expected value of the table.
func (d Distribution) Mean() float64 {
	mean := 0.0
	for _, o := range d {
		mean += o.Probability * float64(o.Value)
	}
	return mean
}

// DefaultInterArrival is the reference workload's inter-arrival gap table.
func DefaultInterArrival() Distribution {
	return Distribution{
		{Probability: 0.25, Value: 1},
		{Probability: 0.40, Value: 2},
		{Probability: 0.20, Value: 3},
		{Probability: 0.15, Value: 4},
	}
}

// DefaultAbleService is the reference workload's service-time table for Able.
func DefaultAbleService() Distribution {
	return Distribution{
		{Probability: 0.30, Value: 2},
		{Probability: 0.28, Value: 3},
		{Probability: 0.25, Value: 4},
		{Probability: 0.17, Value: 5},
	}
}

// DefaultBakerService is the reference workload's service-time table for Baker.
func DefaultBakerService() Distribution {
	return Distribution{
		{Probability: 0.35, Value: 3},
		{Probability: 0.25, Value: 4},
		{Probability: 0.20, Value: 5},
		{Probability: 0.20, Value: 6},
	}
}
