package sim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// certainTable is a valid single-row table for configs whose variates come
// from scripted samplers.
var certainTable = Distribution{{Probability: 1, Value: 1}}

// scriptedConfig builds a config for the named servers. The tables are
// placeholders: scripted runs never consult them.
func scriptedConfig(servers []string, numArrivals, capacity int) SimConfig {
	cfg := SimConfig{
		NumArrivals:   numArrivals,
		QueueCapacity: capacity,
		InterArrival:  certainTable,
	}
	for _, name := range servers {
		cfg.Servers = append(cfg.Servers, ServerConfig{Name: name, Service: certainTable})
	}
	return cfg
}

// newScriptedSimulator builds a simulator replaying the given gaps and
// per-server service times.
func newScriptedSimulator(t *testing.T, cfg SimConfig, gaps []int64, service map[string][]int64) *Simulator {
	t.Helper()
	samplers := Samplers{
		InterArrival: NewScriptedSampler(gaps...),
		Service:      make(map[string]Sampler, len(service)),
	}
	for name, values := range service {
		samplers.Service[name] = NewScriptedSampler(values...)
	}
	sim, err := NewSimulator(cfg, samplers)
	require.NoError(t, err)
	return sim
}

// mustRunSeeded runs cfg with the empirical tables seeded from seed.
func mustRunSeeded(t *testing.T, cfg SimConfig, seed int64) *Simulator {
	t.Helper()
	sim, err := NewSeededSimulator(cfg, seed)
	require.NoError(t, err)
	require.NoError(t, sim.Run())
	return sim
}
