package backtest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccumulate_CountsWins(t *testing.T) {
	stats := NewDurationStats(10)

	stats = Accumulate(stats, StrategyResult{LSIReturn: 0.08, DCAReturn: 0.05})
	stats = Accumulate(stats, StrategyResult{LSIReturn: 0.02, DCAReturn: 0.06})
	stats = Accumulate(stats, StrategyResult{LSIReturn: 0.10, DCAReturn: 0.01})

	assert.Equal(t, 2, stats.LSIWins)
	assert.Equal(t, 1, stats.DCAWins)
	assert.Equal(t, 3, stats.Windows)
	assert.InDelta(t, 0.20, stats.LSIReturnSum, 1e-12)
	assert.InDelta(t, 0.12, stats.DCAReturnSum, 1e-12)
}

func TestAccumulate_TieCountsAsDCAWin(t *testing.T) {
	stats := NewDurationStats(5)

	stats = Accumulate(stats, StrategyResult{LSIReturn: 0.0, DCAReturn: 0.0})

	assert.Equal(t, 0, stats.LSIWins)
	assert.Equal(t, 1, stats.DCAWins)
}

func TestAccumulate_IsPure(t *testing.T) {
	stats := NewDurationStats(5)

	updated := Accumulate(stats, StrategyResult{LSIReturn: 0.1, DCAReturn: 0.2})

	assert.Equal(t, 0, stats.Windows, "input stats must not be mutated")
	assert.Equal(t, 1, updated.Windows)
}

func TestFinalize_ComputesAveragesAndRatio(t *testing.T) {
	stats := DurationStats{
		Years:        10,
		LSIWins:      3,
		DCAWins:      1,
		LSIReturnSum: 0.40,
		DCAReturnSum: 0.20,
		Windows:      4,
	}

	row := Finalize(stats)

	assert.Equal(t, 10, row.Years)
	assert.Equal(t, 3, row.LSIWins)
	assert.Equal(t, 1, row.DCAWins)
	assert.InDelta(t, 0.10, row.AvgLSIAnnualized, 1e-12)
	assert.InDelta(t, 0.05, row.AvgDCAAnnualized, 1e-12)
	assert.InDelta(t, 0.75, row.LSIWinRatio, 1e-12)
}

func TestFinalize_ZeroWindows(t *testing.T) {
	row := Finalize(NewDurationStats(50))

	assert.Equal(t, 50, row.Years)
	assert.Equal(t, 0, row.LSIWins)
	assert.Equal(t, 0, row.DCAWins)
	assert.True(t, math.IsNaN(row.AvgLSIAnnualized), "zero windows reports NaN, not a division panic")
	assert.True(t, math.IsNaN(row.AvgDCAAnnualized))
	assert.True(t, math.IsNaN(row.LSIWinRatio))
}
