package data

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantlab/lsi-dca-backtest/pkg/types"
)

func obs(y, m, d int, price float64) types.PriceObservation {
	return types.PriceObservation{
		Date:  time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC),
		Price: price,
	}
}

func TestFilterByDateRange(t *testing.T) {
	filter := NewDefaultDataFilter()
	observations := []types.PriceObservation{
		obs(2000, 1, 3, 100),
		obs(2000, 2, 1, 101),
		obs(2000, 3, 1, 102),
		obs(2000, 4, 3, 103),
	}

	filtered := filter.FilterByDateRange(observations,
		time.Date(2000, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2000, 3, 1, 0, 0, 0, 0, time.UTC))

	require.Len(t, filtered, 2)
	assert.Equal(t, 101.0, filtered[0].Price)
	assert.Equal(t, 102.0, filtered[1].Price)
}

func TestValidateTimeSequence(t *testing.T) {
	filter := NewDefaultDataFilter()

	assert.NoError(t, filter.ValidateTimeSequence(nil))
	assert.NoError(t, filter.ValidateTimeSequence([]types.PriceObservation{obs(2000, 1, 3, 100)}))
	assert.NoError(t, filter.ValidateTimeSequence([]types.PriceObservation{
		obs(2000, 1, 3, 100),
		obs(2000, 2, 1, 101),
	}))

	assert.Error(t, filter.ValidateTimeSequence([]types.PriceObservation{
		obs(2000, 2, 1, 101),
		obs(2000, 1, 3, 100),
	}))

	assert.Error(t, filter.ValidateTimeSequence([]types.PriceObservation{
		obs(2000, 1, 3, 100),
		obs(2000, 1, 3, 101),
	}))
}

func TestSortByDate(t *testing.T) {
	filter := NewDefaultDataFilter()
	observations := []types.PriceObservation{
		obs(2000, 3, 1, 102),
		obs(2000, 1, 3, 100),
		obs(2000, 2, 1, 101),
	}

	sorted := filter.SortByDate(observations)

	assert.Equal(t, 100.0, sorted[0].Price)
	assert.Equal(t, 101.0, sorted[1].Price)
	assert.Equal(t, 102.0, sorted[2].Price)
	assert.Equal(t, 102.0, observations[0].Price, "input must not be reordered in place")
}

func TestRemoveDuplicates(t *testing.T) {
	filter := NewDefaultDataFilter()
	observations := []types.PriceObservation{
		obs(2000, 1, 3, 100),
		obs(2000, 1, 3, 999),
		obs(2000, 2, 1, 101),
	}

	deduped := filter.RemoveDuplicates(observations)

	require.Len(t, deduped, 2)
	assert.Equal(t, 100.0, deduped[0].Price, "first occurrence wins")
}

func TestCachedProvider_ReturnsCachedData(t *testing.T) {
	path := writeTempCSV(t, `Date,Open,High,Low,Close,Volume
2000-01-03,100,110,90,105,1000
`)

	provider := NewCachedProvider(NewCSVProvider())

	first, err := provider.LoadData(path)
	require.NoError(t, err)

	// Remove the file: a second load must come from the cache
	require.NoError(t, os.Remove(path))

	second, err := provider.LoadData(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	provider.ClearCache()
	_, err = provider.LoadData(path)
	assert.Error(t, err)
}
