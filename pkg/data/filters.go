package data

import (
	"fmt"
	"sort"
	"time"

	"github.com/quantlab/lsi-dca-backtest/pkg/types"
)

// DefaultDataFilter implements DataFilter for common filtering operations
type DefaultDataFilter struct{}

// NewDefaultDataFilter creates a new default data filter
func NewDefaultDataFilter() *DefaultDataFilter {
	return &DefaultDataFilter{}
}

// FilterByDateRange filters observations to a specific date range (inclusive)
func (f *DefaultDataFilter) FilterByDateRange(observations []types.PriceObservation, start, end time.Time) []types.PriceObservation {
	if len(observations) == 0 {
		return observations
	}

	var filtered []types.PriceObservation

	for _, obs := range observations {
		if !obs.Date.Before(start) && !obs.Date.After(end) {
			filtered = append(filtered, obs)
		}
	}

	return filtered
}

// ValidateTimeSequence ensures observations are in chronological order
// without duplicate dates
func (f *DefaultDataFilter) ValidateTimeSequence(observations []types.PriceObservation) error {
	if len(observations) <= 1 {
		return nil // single item or empty is always valid
	}

	for i := 1; i < len(observations); i++ {
		if observations[i].Date.Before(observations[i-1].Date) {
			return fmt.Errorf("data not in chronological order at index %d: %s comes after %s",
				i, observations[i].Date.Format("2006-01-02"), observations[i-1].Date.Format("2006-01-02"))
		}

		if observations[i].Date.Equal(observations[i-1].Date) {
			return fmt.Errorf("duplicate date at index %d: %s",
				i, observations[i].Date.Format("2006-01-02"))
		}
	}

	return nil
}

// SortByDate sorts observations by date (ascending order)
func (f *DefaultDataFilter) SortByDate(observations []types.PriceObservation) []types.PriceObservation {
	if len(observations) <= 1 {
		return observations
	}

	sorted := make([]types.PriceObservation, len(observations))
	copy(sorted, observations)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	return sorted
}

// RemoveDuplicates removes duplicate dates, keeping the first occurrence
func (f *DefaultDataFilter) RemoveDuplicates(observations []types.PriceObservation) []types.PriceObservation {
	if len(observations) <= 1 {
		return observations
	}

	var filtered []types.PriceObservation
	seen := make(map[int64]bool)

	for _, obs := range observations {
		key := obs.Date.Unix()
		if !seen[key] {
			seen[key] = true
			filtered = append(filtered, obs)
		}
	}

	return filtered
}
