package sim

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistribution_Lookup_InterArrivalTable(t *testing.T) {
	// GIVEN the reference inter-arrival table (0.25,1) (0.40,2) (0.20,3) (0.15,4)
	dist := DefaultInterArrival()
	require.NoError(t, dist.Validate())

	tests := []struct {
		name string
		r    float64
		want int64
	}{
		{"zero maps to first row", 0, 1},
		{"just below first boundary", 0.2499, 1},
		{"first boundary is exclusive", 0.25, 2},
		{"inside second row", 0.5, 2},
		{"inside third row", 0.7, 3},
		{"inside last row", 0.9, 4},
		{"just below one", 0.999999, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dist.Lookup(tt.r))
		})
	}
}

func TestDistribution_Lookup_RoundingFallsBackToLastRow(t *testing.T) {
	// GIVEN a table whose probabilities sum to just under 1
	dist := Distribution{{Probability: 0.5, Value: 1}, {Probability: 0.4999999999, Value: 7}}
	require.NoError(t, dist.Validate())

	// WHEN a draw lands past the final prefix sum
	got := dist.Lookup(0.99999999999)

	// THEN the last row's value is returned
	assert.Equal(t, int64(7), got)
}

func TestDistribution_Lookup_RowOrderMatters(t *testing.T) {
	// GIVEN the same rows in two different orders
	forward := Distribution{{Probability: 0.5, Value: 10}, {Probability: 0.5, Value: 20}}
	reversed := Distribution{{Probability: 0.5, Value: 20}, {Probability: 0.5, Value: 10}}

	// WHEN the same draw is looked up in both
	// THEN the results differ
	assert.Equal(t, int64(10), forward.Lookup(0.1))
	assert.Equal(t, int64(20), reversed.Lookup(0.1))
}

func TestDistribution_Lookup_SkipsZeroProbabilityRows(t *testing.T) {
	dist := Distribution{{Probability: 0, Value: 99}, {Probability: 1, Value: 5}}
	require.NoError(t, dist.Validate())

	assert.Equal(t, int64(5), dist.Lookup(0))
}

func TestDistribution_Lookup_EmptyPanics(t *testing.T) {
	assert.Panics(t, func() { Distribution{}.Lookup(0.5) })
}

func TestDistribution_Validate(t *testing.T) {
	tests := []struct {
		name    string
		dist    Distribution
		wantErr bool
	}{
		{"default inter-arrival", DefaultInterArrival(), false},
		{"default Able", DefaultAbleService(), false},
		{"default Baker", DefaultBakerService(), false},
		{"single certain row", Distribution{{Probability: 1, Value: 3}}, false},
		{"within tolerance", Distribution{{Probability: 0.5, Value: 1}, {Probability: 0.5 + 1e-12, Value: 2}}, false},
		{"empty", Distribution{}, true},
		{"nil", nil, true},
		{"sum below one", Distribution{{Probability: 0.5, Value: 1}, {Probability: 0.4, Value: 2}}, true},
		{"sum above one", Distribution{{Probability: 0.7, Value: 1}, {Probability: 0.4, Value: 2}}, true},
		{"negative probability", Distribution{{Probability: -0.5, Value: 1}, {Probability: 1.5, Value: 2}}, true},
		{"NaN probability", Distribution{{Probability: math.NaN(), Value: 1}}, true},
		{"negative value", Distribution{{Probability: 1, Value: -1}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.dist.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfiguration), "error %v should wrap ErrConfiguration", err)
		})
	}
}

func TestDistribution_Mean(t *testing.T) {
	// 0.25*1 + 0.40*2 + 0.20*3 + 0.15*4 = 2.25
	assert.InDelta(t, 2.25, DefaultInterArrival().Mean(), 1e-12)
	// 0.30*2 + 0.28*3 + 0.25*4 + 0.17*5 = 3.29
	assert.InDelta(t, 3.29, DefaultAbleService().Mean(), 1e-12)
	// 0.35*3 + 0.25*4 + 0.20*5 + 0.20*6 = 4.25
	assert.InDelta(t, 4.25, DefaultBakerService().Mean(), 1e-12)
}
