package data

import (
	"time"

	"github.com/quantlab/lsi-dca-backtest/pkg/types"
)

// DataProvider interface for loading historical index data from various sources
type DataProvider interface {
	// LoadData loads historical observations from the specified source
	LoadData(source string) ([]types.PriceObservation, error)

	// ValidateData validates the integrity of the loaded observations
	ValidateData(observations []types.PriceObservation) error

	// GetName returns the name of the data provider
	GetName() string
}

// DataCache interface for caching loaded observations
type DataCache interface {
	// Get retrieves observations from cache if available
	Get(key string) ([]types.PriceObservation, bool)

	// Set stores observations in cache
	Set(key string, observations []types.PriceObservation)

	// Clear removes all cached data
	Clear()

	// Size returns the number of cached entries
	Size() int
}

// DataFilter interface for filtering and transforming observations
type DataFilter interface {
	// FilterByDateRange filters observations to a specific date range
	FilterByDateRange(observations []types.PriceObservation, start, end time.Time) []types.PriceObservation

	// ValidateTimeSequence ensures observations are in chronological order
	ValidateTimeSequence(observations []types.PriceObservation) error
}

// CSVColumnMapping defines the column positions for different CSV quote formats
type CSVColumnMapping struct {
	DateCol    int
	PriceCol   int
	MinColumns int
	DateFormat string
}

// Predefined CSV formats
var (
	// StooqCSVFormat matches Stooq exports: Date,Open,High,Low,Close,Volume
	StooqCSVFormat = CSVColumnMapping{
		DateCol:    0,
		PriceCol:   4,
		MinColumns: 5,
		DateFormat: "2006-01-02",
	}

	// YahooCSVFormat matches Yahoo Finance exports, taking the adjusted
	// close: Date,Open,High,Low,Close,Adj Close,Volume
	YahooCSVFormat = CSVColumnMapping{
		DateCol:    0,
		PriceCol:   5,
		MinColumns: 7,
		DateFormat: "2006-01-02",
	}
)
