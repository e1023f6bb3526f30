package backtest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantlab/lsi-dca-backtest/pkg/types"
)

func TestEnumerateWindows_MonthlySeries(t *testing.T) {
	// 121 months: 2000-01 through 2010-01
	series := generateRisingSeries(t, 121)

	windows := EnumerateWindows(series, 5)

	// Starts 2000-01 through 2005-01 can fit a 5-year window
	assert.Len(t, windows, 61)

	for i, w := range windows {
		assert.Equal(t, series.At(i).Date, w.Start, "start must be an actual series date")
		assert.True(t, w.End.After(w.Start), "end must come after start")
		assert.Equal(t, w.Start.AddDate(5, 0, 0), w.End, "monthly grid resolves ends exactly")
	}
}

func TestEnumerateWindows_OrderedByStart(t *testing.T) {
	series := generateRisingSeries(t, 60)

	windows := EnumerateWindows(series, 2)
	require.NotEmpty(t, windows)

	for i := 1; i < len(windows); i++ {
		assert.True(t, windows[i-1].Start.Before(windows[i].Start))
	}
}

func TestEnumerateWindows_ForwardFillsGaps(t *testing.T) {
	// A 1-year target of 2001-01-01 does not exist; the next trading
	// date 2001-01-02 must be used instead
	observations := []types.PriceObservation{
		{Date: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), Price: 100},
		{Date: time.Date(2000, 7, 1, 0, 0, 0, 0, time.UTC), Price: 110},
		{Date: time.Date(2001, 1, 2, 0, 0, 0, 0, time.UTC), Price: 120},
	}
	series, err := types.NewPriceSeries(observations)
	require.NoError(t, err)

	windows := EnumerateWindows(series, 1)

	require.Len(t, windows, 1)
	assert.Equal(t, observations[0].Date, windows[0].Start)
	assert.Equal(t, observations[2].Date, windows[0].End)
	assert.Equal(t, 0, windows[0].StartIdx)
	assert.Equal(t, 2, windows[0].EndIdx)
}

func TestEnumerateWindows_DropsUnresolvableEnds(t *testing.T) {
	// The 2000-07-01 start has no observation one year out, so only
	// one window survives
	observations := []types.PriceObservation{
		{Date: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), Price: 100},
		{Date: time.Date(2000, 7, 1, 0, 0, 0, 0, time.UTC), Price: 110},
		{Date: time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC), Price: 120},
	}
	series, err := types.NewPriceSeries(observations)
	require.NoError(t, err)

	windows := EnumerateWindows(series, 1)

	require.Len(t, windows, 1)
	assert.Equal(t, observations[0].Date, windows[0].Start)
}

func TestEnumerateWindows_DurationExceedsSpan(t *testing.T) {
	series := generateRisingSeries(t, 24) // two years of data

	windows := EnumerateWindows(series, 10)

	assert.Empty(t, windows, "a duration longer than the series yields zero windows, not an error")
}

func TestEnumerateWindows_SingleObservation(t *testing.T) {
	series, err := types.NewPriceSeries([]types.PriceObservation{
		{Date: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), Price: 100},
	})
	require.NoError(t, err)

	assert.Empty(t, EnumerateWindows(series, 1))
	assert.Empty(t, EnumerateWindows(series, 5))
}

func TestEnumerateWindows_Restartable(t *testing.T) {
	series := generateRisingSeries(t, 80)

	first := EnumerateWindows(series, 3)
	second := EnumerateWindows(series, 3)

	assert.Equal(t, first, second, "enumeration is a pure function of its inputs")
}
