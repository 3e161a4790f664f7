// Package testutil provides shared test infrastructure for the queue simulator.
// It holds the golden scenario types and assertion helpers used across the
// sim/ test packages. It must not import sim/ so that sim's own tests can use it.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Scenarios []GoldenScenario `json:"scenarios"`
}

// GoldenScenario is a fully scripted run: every gap and service time is fixed,
// so the expected ledger is exact.
type GoldenScenario struct {
	Name          string             `json:"name"`
	Servers       []string           `json:"servers"`
	NumArrivals   int                `json:"num_arrivals"`
	QueueCapacity int                `json:"queue_capacity"`
	Gaps          []int64            `json:"gaps"`    // replayed cyclically after arrival 1 (which is at t=0)
	Service       map[string][]int64 `json:"service"` // server name -> replayed service times
	Expected      GoldenExpectation  `json:"expected"`
}

// GoldenExpectation is the expected outcome of a GoldenScenario.
type GoldenExpectation struct {
	Records     []GoldenRecord   `json:"records"` // in disposition order
	Balked      int              `json:"balked"`
	StillQueued int              `json:"still_queued"`
	FinalFreeAt map[string]int64 `json:"final_free_at"`
}

// GoldenRecord is one expected ledger entry. Service fields are zero for balks.
type GoldenRecord struct {
	ID          int    `json:"id"`
	ArrivalTime int64  `json:"arrival_time"`
	Status      string `json:"status"`
	Server      string `json:"server"`
	Start       int64  `json:"start"`
	Duration    int64  `json:"duration"`
	Delay       int64  `json:"delay"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
