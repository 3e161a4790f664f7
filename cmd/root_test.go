package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/queue-sim/sim/report"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// newTestRunCmd returns a run command with fresh flags. Registering the
// flags resets the package-level flag variables to their defaults.
func newTestRunCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "run", RunE: runSimulation, SilenceUsage: true}
	registerSimFlags(cmd)
	cmd.Flags().StringVar(&traceLevel, "trace-level", "none", "")
	return cmd
}

func newTestReplicateCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "replicate", RunE: runReplications, SilenceUsage: true}
	registerSimFlags(cmd)
	cmd.Flags().IntVar(&replications, "replications", 30, "")
	cmd.Flags().IntVar(&workers, "workers", 4, "")
	return cmd
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRunCommand_PrintsTableAndSummary(t *testing.T) {
	// GIVEN a short run with the reference tables
	cmd := newTestRunCmd()

	// WHEN it is executed
	out, err := execute(t, cmd, "--num-arrivals", "20", "--seed", "3")

	// THEN the table and summary are printed
	require.NoError(t, err)
	assert.Contains(t, out, "ID  Arrival")
	assert.Contains(t, out, "=== Simulation Summary ===")
	assert.Contains(t, out, "Total arrivals processed       : 20")
	assert.Contains(t, out, "Server Able")
	assert.Contains(t, out, "Server Baker")
	assert.NotContains(t, out, "=== Decision Trace ===")
}

func TestRunCommand_SameSeedSameOutput(t *testing.T) {
	first, err := execute(t, newTestRunCmd(), "--num-arrivals", "30", "--seed", "11")
	require.NoError(t, err)
	second, err := execute(t, newTestRunCmd(), "--num-arrivals", "30", "--seed", "11")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunCommand_TraceAndResults(t *testing.T) {
	// GIVEN decision tracing and a results file
	path := filepath.Join(t.TempDir(), "results.json")

	// WHEN the run executes
	out, err := execute(t, newTestRunCmd(),
		"--num-arrivals", "15", "--trace-level", "decisions", "--results-path", path)

	// THEN the trace summary is printed and the results file holds every arrival
	require.NoError(t, err)
	assert.Contains(t, out, "=== Decision Trace ===")
	assert.Contains(t, out, "Decisions          : 15")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var results report.Results
	require.NoError(t, json.Unmarshal(data, &results))
	assert.Equal(t, int64(42), results.Seed)
	assert.Equal(t, 15, results.Metrics.Processed)
	assert.Equal(t, 15, len(results.Records)+results.Metrics.StillQueued)
}

func TestRunCommand_InvalidTraceLevel(t *testing.T) {
	_, err := execute(t, newTestRunCmd(), "--trace-level", "verbose")
	assert.Error(t, err)
}

func TestRunCommand_SingleServerConfig(t *testing.T) {
	// GIVEN a config declaring only Able
	path := writeConfig(t, "num_arrivals: 12\nservers:\n  - name: Able\n")

	out, err := execute(t, newTestRunCmd(), "--config", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Total arrivals processed       : 12")
	assert.Contains(t, out, "Server Able")
	assert.NotContains(t, out, "Baker")
}

func TestReplicateCommand(t *testing.T) {
	// GIVEN three replications over two workers
	path := filepath.Join(t.TempDir(), "replications.json")

	// WHEN they run
	out, err := execute(t, newTestReplicateCmd(),
		"--replications", "3", "--workers", "2", "--num-arrivals", "25", "--results-path", path)

	// THEN the aggregate is printed and saved
	require.NoError(t, err)
	assert.Contains(t, out, "=== Replication Summary ===")
	assert.Contains(t, out, "Replications       : 3")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var summary map[string]any
	require.NoError(t, json.Unmarshal(data, &summary))
	assert.Len(t, summary["runs"], 3)
}

func TestReplicateCommand_ZeroReplications(t *testing.T) {
	_, err := execute(t, newTestReplicateCmd(), "--replications", "0")
	assert.Error(t, err)
}
