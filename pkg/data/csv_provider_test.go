package data

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantlab/lsi-dca-backtest/pkg/types"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quotes.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCSVProvider_LoadData(t *testing.T) {
	path := writeTempCSV(t, `Date,Open,High,Low,Close,Volume
2000-01-03,4186.19,4192.19,4073.39,4131.15,1510070000
2000-02-01,3961.93,4195.60,3961.93,4191.37,1511840000
2000-03-01,4784.08,4784.08,4580.73,4734.52,1888390000
`)

	provider := NewCSVProvider()
	observations, err := provider.LoadData(path)

	require.NoError(t, err)
	require.Len(t, observations, 3)
	assert.Equal(t, time.Date(2000, 1, 3, 0, 0, 0, 0, time.UTC), observations[0].Date)
	assert.Equal(t, 4131.15, observations[0].Price)
	assert.Equal(t, 4734.52, observations[2].Price)
}

func TestCSVProvider_SkipsMalformedLines(t *testing.T) {
	path := writeTempCSV(t, `Date,Open,High,Low,Close,Volume
2000-01-03,100,110,90,105,1000
not-a-date,100,110,90,106,1000
2000-03-01,100,110,90,not-a-price,1000
2000-04-03,100,110,90,-5,1000
2000-05-01,100,110,90,108,1000
`)

	provider := NewCSVProvider()
	observations, err := provider.LoadData(path)

	require.NoError(t, err)
	require.Len(t, observations, 2)
	assert.Equal(t, 105.0, observations[0].Price)
	assert.Equal(t, 108.0, observations[1].Price)
}

func TestCSVProvider_MissingFile(t *testing.T) {
	provider := NewCSVProvider()

	_, err := provider.LoadData(filepath.Join(t.TempDir(), "missing.csv"))

	assert.Error(t, err)
}

func TestCSVProvider_YahooFormat(t *testing.T) {
	path := writeTempCSV(t, `Date,Open,High,Low,Close,Adj Close,Volume
2000-01-03,100,110,90,105,104.5,1000
`)

	provider := NewCSVProviderWithFormat(YahooCSVFormat)
	observations, err := provider.LoadData(path)

	require.NoError(t, err)
	require.Len(t, observations, 1)
	assert.Equal(t, 104.5, observations[0].Price, "Yahoo format takes the adjusted close")
}

func TestCSVProvider_ValidateData(t *testing.T) {
	provider := NewCSVProvider()

	valid := []types.PriceObservation{
		{Date: time.Date(2000, 1, 3, 0, 0, 0, 0, time.UTC), Price: 100},
		{Date: time.Date(2000, 2, 1, 0, 0, 0, 0, time.UTC), Price: 101},
	}
	assert.NoError(t, provider.ValidateData(valid))

	assert.Error(t, provider.ValidateData(nil), "empty data fails fast")

	outOfOrder := []types.PriceObservation{valid[1], valid[0]}
	assert.Error(t, provider.ValidateData(outOfOrder))

	duplicate := []types.PriceObservation{valid[0], valid[0]}
	assert.Error(t, provider.ValidateData(duplicate))
}
