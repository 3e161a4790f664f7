package sim

import "fmt"

// UniformSource yields uniform draws in [0, 1). *rand.Rand satisfies it.
type UniformSource interface {
	Float64() float64
}

// Sampler produces the next integer variate of a distribution.
// The engine calls one Sampler for inter-arrival gaps and one per server for
// service durations.
type Sampler interface {
	Sample() int64
}

// EmpiricalSampler draws from a Distribution using a UniformSource.
type EmpiricalSampler struct {
	dist Distribution
	src  UniformSource
}

// NewEmpiricalSampler validates dist and binds it to src.
func NewEmpiricalSampler(dist Distribution, src UniformSource) (*EmpiricalSampler, error) {
	if err := dist.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil uniform source", ErrConfiguration)
	}
	return &EmpiricalSampler{dist: dist, src: src}, nil
}

func (s *EmpiricalSampler) Sample() int64 {
	return s.dist.Lookup(s.src.Float64())
}

// ScriptedSampler replays a fixed sequence of values, cycling when exhausted.
// Used for deterministic replay and tests.
type ScriptedSampler struct {
	values []int64
	next   int
}

// NewScriptedSampler returns a sampler replaying values in order.
func NewScriptedSampler(values ...int64) *ScriptedSampler {
	return &ScriptedSampler{values: append([]int64(nil), values...)}
}

func (s *ScriptedSampler) Sample() int64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// Draws returns how many values have been sampled so far.
func (s *ScriptedSampler) Draws() int {
	return s.next
}

// ConstantSampler always returns the same value.
type ConstantSampler struct {
	value int64
}

// NewConstantSampler returns a sampler fixed at value.
func NewConstantSampler(value int64) *ConstantSampler {
	return &ConstantSampler{value: value}
}

func (s *ConstantSampler) Sample() int64 {
	return s.value
}
