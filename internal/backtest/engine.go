package backtest

import (
	"github.com/quantlab/lsi-dca-backtest/pkg/types"
)

// Engine runs the full comparison pipeline for a set of configured
// durations: enumerate windows, simulate both strategies per window,
// accumulate per-duration statistics, finalize report rows.
type Engine struct {
	durations []int
	simulator *Simulator
}

// NewEngine creates an engine for the given durations (in years), DCA
// installment frequency and notional amount.
func NewEngine(durations []int, installmentsPerYear int, notional float64) *Engine {
	return &Engine{
		durations: durations,
		simulator: NewSimulator(installmentsPerYear, notional),
	}
}

// Run evaluates every duration sequentially and returns one report row
// per duration, in the configured order. The computation is pure and
// deterministic: running it twice on the same series yields identical
// rows.
func (e *Engine) Run(series *types.PriceSeries) []ReportRow {
	rows := make([]ReportRow, 0, len(e.durations))
	for _, years := range e.durations {
		rows = append(rows, e.runDuration(series, years))
	}
	return rows
}

// runDuration evaluates all windows of one duration.
func (e *Engine) runDuration(series *types.PriceSeries, years int) ReportRow {
	stats := NewDurationStats(years)

	for _, window := range EnumerateWindows(series, years) {
		result := e.simulator.Simulate(series, window)
		stats = Accumulate(stats, result)
	}

	return Finalize(stats)
}
