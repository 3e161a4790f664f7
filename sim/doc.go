// Package sim provides the discrete-event engine for a finite-capacity,
// multi-server queueing facility.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - event.go: ArrivalEvent, the only event type; each arrival drains the
//     waiting area, seats the newcomer and schedules the next arrival
//   - simulator.go: the run loop, seating, balking and service commits
//   - server.go / routing.go: the server pool and the earliest-free,
//     first-declared-wins server selection
//   - queue.go: the bounded FIFO waiting area
//
// # Randomness
//
// Every variate comes from a Sampler. EmpiricalSampler walks a Distribution
// table with draws from a UniformSource; PartitionedRNG gives each table its
// own seeded stream so runs are reproducible from a single seed.
// ScriptedSampler replays fixed values for deterministic tests.
//
// # Sub-packages
//   - sim/trace: seating and server-assignment decision records
//   - sim/report: table, summary and JSON output of a finished run
//   - sim/replication: independent seeded runs fanned out over workers
package sim
