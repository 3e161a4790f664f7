// Package replication runs independent, separately seeded simulations of the
// same configuration and aggregates their metrics. Runs share no mutable
// state: each builds its own Simulator and PartitionedRNG.
package replication

import (
	"context"
	"fmt"

	"github.com/rs/xid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/inference-sim/queue-sim/sim"
)

// Options controls how many runs are made and how they are seeded.
type Options struct {
	Replications int   // number of runs (must be > 0)
	Workers      int   // concurrent runs; <= 0 means one
	BaseSeed     int64 // run i is seeded with BaseSeed + i
}

// RunResult is the outcome of one replication.
type RunResult struct {
	RunID   string       `json:"run_id"`
	Index   int          `json:"index"`
	Seed    int64        `json:"seed"`
	Metrics *sim.Metrics `json:"metrics"`
}

// Summary aggregates metrics across replications. Runs are ordered by index
// regardless of completion order.
type Summary struct {
	Runs               []RunResult        `json:"runs"`
	Servers            []string           `json:"servers"` // declaration order
	MeanAverageDelay   float64            `json:"mean_average_delay"`
	StdDevAverageDelay float64            `json:"stddev_average_delay"`
	MeanBalkFraction   float64            `json:"mean_balk_fraction"`
	StdDevBalkFraction float64            `json:"stddev_balk_fraction"`
	MeanServed         float64            `json:"mean_served"`
	MeanUtilization    map[string]float64 `json:"mean_utilization"` // server name -> mean utilization
}

// Run executes opts.Replications simulations of cfg over a bounded worker
// pool. The first failing run cancels the rest and its error is returned.
func Run(ctx context.Context, cfg sim.SimConfig, opts Options) (*Summary, error) {
	if opts.Replications <= 0 {
		return nil, fmt.Errorf("%w: replications must be positive, got %d", sim.ErrConfiguration, opts.Replications)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}

	results := make([]RunResult, opts.Replications)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < opts.Replications; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			seed := opts.BaseSeed + int64(i)
			runID := xid.New().String()
			logrus.Debugf("replication %d (run %s) starting with seed %d", i, runID, seed)

			s, err := sim.NewSeededSimulator(cfg, seed)
			if err != nil {
				return fmt.Errorf("replication %d: %w", i, err)
			}
			if err := s.Run(); err != nil {
				return fmt.Errorf("replication %d (seed %d): %w", i, seed, err)
			}
			results[i] = RunResult{RunID: runID, Index: i, Seed: seed, Metrics: s.Metrics()}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logrus.Infof("Completed %d replications with %d workers", opts.Replications, workers)
	return summarize(results, cfg.ServerNames()), nil
}

func summarize(runs []RunResult, servers []string) *Summary {
	delays := make([]float64, len(runs))
	balks := make([]float64, len(runs))
	served := make([]float64, len(runs))
	utilization := make(map[string][]float64, len(servers))
	for i, r := range runs {
		delays[i] = r.Metrics.AverageDelay
		balks[i] = r.Metrics.BalkFraction()
		served[i] = float64(r.Metrics.Served)
		for _, s := range r.Metrics.Servers {
			utilization[s.Name] = append(utilization[s.Name], s.Utilization)
		}
	}

	summary := &Summary{
		Runs:            runs,
		Servers:         servers,
		MeanServed:      stat.Mean(served, nil),
		MeanUtilization: make(map[string]float64, len(servers)),
	}
	summary.MeanAverageDelay, summary.StdDevAverageDelay = meanStdDev(delays)
	summary.MeanBalkFraction, summary.StdDevBalkFraction = meanStdDev(balks)
	for _, name := range servers {
		summary.MeanUtilization[name] = stat.Mean(utilization[name], nil)
	}
	return summary
}

// meanStdDev wraps stat.MeanStdDev, which reports NaN deviation for one sample.
func meanStdDev(x []float64) (mean, std float64) {
	if len(x) == 1 {
		return x[0], 0
	}
	return stat.MeanStdDev(x, nil)
}
