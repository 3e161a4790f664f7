package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/queue-sim/sim"
)

// Results is the JSON document written by SaveResults for a single run.
type Results struct {
	Seed    int64               `json:"seed"`
	Config  sim.SimConfig       `json:"config"`
	Metrics *sim.Metrics        `json:"metrics"`
	Records []sim.ServiceRecord `json:"records"`
}

// SaveResults writes the results of a single run as indented JSON to path.
func SaveResults(path string, results Results) error {
	return SaveJSON(path, results)
}

// SaveJSON writes v as indented JSON to path, replacing any existing file.
func SaveJSON(path string, v any) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("creating results file %s: %w", path, err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	enc := json.NewEncoder(writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flushing results file %s: %w", path, err)
	}

	logrus.Debugf("Successfully wrote results to '%s'", path)
	return nil
}
