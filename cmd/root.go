package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/queue-sim/sim"
	"github.com/inference-sim/queue-sim/sim/report"
	"github.com/inference-sim/queue-sim/sim/trace"
)

var (
	// CLI flags shared by run and replicate
	seed           int64  // Seed for the inter-arrival and service-time streams
	logLevel       string // Log verbosity level
	noColor        bool   // Disable coloured report output
	configPath     string // Optional YAML config file
	numArrivals    int    // Number of arrivals to simulate
	queueCapacity  int    // Waiting-area capacity
	unboundedQueue bool   // Disable the waiting-area capacity check
	resultsPath    string // Optional JSON results file

	// CLI flags for run
	traceLevel string // Decision trace verbosity

	// CLI flags for replicate
	replications int // Number of independent runs
	workers      int // Concurrent runs
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "queue-sim",
	Short: "Discrete-event simulator for a finite-capacity multi-server queue",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
		if noColor {
			color.NoColor = true
		}
	},
}

// runCmd executes one simulation using parameters from the config file and CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single simulation and print the served-arrival table",
	RunE:  runSimulation,
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, runSeed, err := resolveSimConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if !trace.IsValidTraceLevel(traceLevel) {
		return fmt.Errorf("unknown trace level %q", traceLevel)
	}

	logrus.Infof("Starting simulation with seed=%d, arrivals=%d, queue capacity=%d, servers=%v",
		runSeed, cfg.NumArrivals, cfg.QueueCapacity, cfg.ServerNames())

	s, err := sim.NewSeededSimulator(cfg, runSeed)
	if err != nil {
		return fmt.Errorf("failed to build simulator: %w", err)
	}
	if trace.TraceLevel(traceLevel) == trace.TraceLevelDecisions {
		s.Trace = trace.NewSimulationTrace(trace.TraceLevelDecisions)
	}
	if err := s.Run(); err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	out := cmd.OutOrStdout()
	metrics := s.Metrics()
	if err := report.WriteTable(out, s.Ledger.Records()); err != nil {
		return err
	}
	if err := report.WriteSummary(out, metrics); err != nil {
		return err
	}
	if s.Trace.Enabled() {
		if err := report.WriteTraceSummary(out, trace.Summarize(s.Trace)); err != nil {
			return err
		}
	}
	if resultsPath != "" {
		err := report.SaveResults(resultsPath, report.Results{
			Seed:    runSeed,
			Config:  cfg,
			Metrics: metrics,
			Records: s.Ledger.Records(),
		})
		if err != nil {
			return err
		}
	}

	logrus.Info("Simulation complete.")
	return nil
}

// Execute runs the CLI root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// registerSimFlags adds the flags shared by run and replicate.
func registerSimFlags(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&seed, "seed", 42, "Seed for the inter-arrival and service-time streams")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML config file (distribution tables, servers, counts)")
	cmd.Flags().IntVar(&numArrivals, "num-arrivals", sim.DefaultNumArrivals, "Number of arrivals to simulate")
	cmd.Flags().IntVar(&queueCapacity, "queue-capacity", sim.DefaultQueueCapacity, "Waiting-area capacity; arrivals finding it full balk")
	cmd.Flags().BoolVar(&unboundedQueue, "unbounded-queue", false, "Admit every arrival to the waiting area (no balking)")
	cmd.Flags().StringVar(&resultsPath, "results-path", "", "Write results as JSON to this file")
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable coloured output")

	registerSimFlags(runCmd)
	runCmd.Flags().StringVar(&traceLevel, "trace-level", "none", "Decision trace level (none, decisions)")

	registerSimFlags(replicateCmd)
	replicateCmd.Flags().IntVar(&replications, "replications", 30, "Number of independent runs")
	replicateCmd.Flags().IntVar(&workers, "workers", 4, "Number of runs executed concurrently")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replicateCmd)
}
