package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/queue-sim/sim/replication"
	"github.com/inference-sim/queue-sim/sim/report"
)

// replicateCmd runs independent seeded replications of the same configuration
var replicateCmd = &cobra.Command{
	Use:   "replicate",
	Short: "Run independent seeded replications and aggregate their metrics",
	Long: `Runs --replications simulations of the same configuration, run i seeded
with --seed + i, at most --workers at a time. Each run owns its state and
random streams, so the aggregate does not depend on the worker count.`,
	RunE: runReplications,
}

func runReplications(cmd *cobra.Command, args []string) error {
	cfg, baseSeed, err := resolveSimConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logrus.Infof("Starting %d replications (base seed %d, %d workers)", replications, baseSeed, workers)
	summary, err := replication.Run(cmd.Context(), cfg, replication.Options{
		Replications: replications,
		Workers:      workers,
		BaseSeed:     baseSeed,
	})
	if err != nil {
		return fmt.Errorf("replications failed: %w", err)
	}

	if err := report.WriteReplicationSummary(cmd.OutOrStdout(), summary); err != nil {
		return err
	}
	if resultsPath != "" {
		if err := report.SaveJSON(resultsPath, summary); err != nil {
			return err
		}
	}
	return nil
}
