// sim/metrics_utils.go
package sim

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// CalculateMean returns the arithmetic mean of data, or 0 for an empty slice.
func CalculateMean(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return stat.Mean(data, nil)
}

// CalculatePercentile returns the p-th percentile (0 <= p <= 100) of data
// using the empirical quantile: the smallest sample whose cumulative share
// reaches p. Returns 0 for an empty slice. data is not modified.
func CalculatePercentile(data []float64, p float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)
	return stat.Quantile(p/100.0, stat.Empirical, sorted, nil)
}
