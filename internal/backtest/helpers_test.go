package backtest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/quantlab/lsi-dca-backtest/pkg/types"
)

// generateMonthlySeries builds a series of monthly observations
// starting at the given date, with prices from the pricer function
func generateMonthlySeries(t *testing.T, start time.Time, months int, pricer func(i int) float64) *types.PriceSeries {
	t.Helper()

	observations := make([]types.PriceObservation, months)
	for i := 0; i < months; i++ {
		observations[i] = types.PriceObservation{
			Date:  start.AddDate(0, i, 0),
			Price: pricer(i),
		}
	}

	series, err := types.NewPriceSeries(observations)
	require.NoError(t, err)
	return series
}

// generateFlatSeries builds a monthly series with a constant price
func generateFlatSeries(t *testing.T, months int) *types.PriceSeries {
	t.Helper()
	return generateMonthlySeries(t, date(2000, 1), months, func(i int) float64 { return 100.0 })
}

// generateRisingSeries builds a monthly series with a steadily rising price
func generateRisingSeries(t *testing.T, months int) *types.PriceSeries {
	t.Helper()
	return generateMonthlySeries(t, date(2000, 1), months, func(i int) float64 { return 100.0 + float64(i) })
}

func date(year, month int) time.Time {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
}
