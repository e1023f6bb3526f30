package backtest

import (
	"math"

	"github.com/quantlab/lsi-dca-backtest/pkg/types"
)

// StrategyResult holds the annualized returns of both strategies over
// one window. Values are fractions (0.10 = 10%).
type StrategyResult struct {
	LSIReturn float64
	DCAReturn float64
}

// Simulator computes lump-sum and dollar-cost-averaging returns for a
// window. The notional amount only sets the cash-flow scale; the
// reported returns are ratios, so its absolute value never changes the
// outcome.
type Simulator struct {
	installmentsPerYear int
	notional            float64
}

// NewSimulator creates a simulator with the given DCA frequency and
// total notional amount per window.
func NewSimulator(installmentsPerYear int, notional float64) *Simulator {
	return &Simulator{
		installmentsPerYear: installmentsPerYear,
		notional:            notional,
	}
}

// Simulate runs both strategies over the window and returns their
// annualized returns.
//
// LSI invests the full notional at the window start and holds to the
// end. DCA splits the same notional into Years*installmentsPerYear
// equal installments spaced by a fixed calendar interval from the
// window start, each resolved to the next available trading date and
// clamped to the window end. Both returns are annualized over the full
// window duration — DCA installments are not annualized from their own
// dates. That is a deliberate simplification: the comparison asks what
// committing the same money over the same horizon would have done.
func (s *Simulator) Simulate(series *types.PriceSeries, w Window) StrategyResult {
	startPrice := series.At(w.StartIdx).Price
	endPrice := series.At(w.EndIdx).Price
	years := float64(w.Years)

	lsiRaw := endPrice/startPrice - 1

	installments := w.Years * s.installmentsPerYear
	installmentAmount := s.notional / float64(installments)
	stepMonths := 12 / s.installmentsPerYear

	totalShares := 0.0
	for k := 0; k < installments; k++ {
		target := w.Start.AddDate(0, k*stepMonths, 0)

		idx, ok := series.IndexAtOrAfter(target)
		if !ok || idx > w.EndIdx {
			// Boundary rounding pushed the installment past the window
			idx = w.EndIdx
		}

		totalShares += installmentAmount / series.At(idx).Price
	}

	finalValue := totalShares * endPrice
	dcaRaw := finalValue/s.notional - 1

	return StrategyResult{
		LSIReturn: annualize(lsiRaw, years),
		DCAReturn: annualize(dcaRaw, years),
	}
}

// annualize converts a total return over a duration into the
// per-year-equivalent geometric growth rate.
func annualize(rawReturn, years float64) float64 {
	return math.Pow(1+rawReturn, 1/years) - 1
}
