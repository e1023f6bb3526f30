package backtest

import "math"

// DurationStats accumulates comparison results for one configured
// duration. Durations never mix: one instance exists per duration.
type DurationStats struct {
	Years        int
	LSIWins      int
	DCAWins      int
	LSIReturnSum float64
	DCAReturnSum float64
	Windows      int
}

// ReportRow is the finalized statistics for one duration.
type ReportRow struct {
	Years            int     `json:"duration_years"`
	LSIWins          int     `json:"lsi_wins"`
	DCAWins          int     `json:"dca_wins"`
	AvgLSIAnnualized float64 `json:"avg_lsi_annualized_return"`
	AvgDCAAnnualized float64 `json:"avg_dca_annualized_return"`
	LSIWinRatio      float64 `json:"lsi_win_ratio"`
}

// NewDurationStats creates an empty accumulator for a duration.
func NewDurationStats(years int) DurationStats {
	return DurationStats{Years: years}
}

// Accumulate folds one window's result into the stats. LSI wins only
// when its annualized return is strictly greater; a tie counts as a
// DCA win, matching how the win tally has always been framed.
func Accumulate(stats DurationStats, result StrategyResult) DurationStats {
	if result.LSIReturn > result.DCAReturn {
		stats.LSIWins++
	} else {
		stats.DCAWins++
	}

	stats.LSIReturnSum += result.LSIReturn
	stats.DCAReturnSum += result.DCAReturn
	stats.Windows++

	return stats
}

// Finalize computes the averages and win ratio. A duration with zero
// evaluated windows reports NaN averages rather than failing — running
// out of history is not an error.
func Finalize(stats DurationStats) ReportRow {
	row := ReportRow{
		Years:   stats.Years,
		LSIWins: stats.LSIWins,
		DCAWins: stats.DCAWins,
	}

	if stats.Windows == 0 {
		row.AvgLSIAnnualized = math.NaN()
		row.AvgDCAAnnualized = math.NaN()
		row.LSIWinRatio = math.NaN()
		return row
	}

	row.AvgLSIAnnualized = stats.LSIReturnSum / float64(stats.Windows)
	row.AvgDCAAnnualized = stats.DCAReturnSum / float64(stats.Windows)
	row.LSIWinRatio = float64(stats.LSIWins) / float64(stats.Windows)

	return row
}
