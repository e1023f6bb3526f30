package types

import (
	"fmt"
	"sort"
	"time"
)

// PriceObservation is a single (date, price) point of an index series.
type PriceObservation struct {
	Date  time.Time
	Price float64
}

// PriceSeries is an ordered, immutable sequence of price observations
// with strictly increasing dates and strictly positive prices. It is
// constructed once from a data provider and passed by reference through
// the whole pipeline.
type PriceSeries struct {
	observations []PriceObservation
}

// NewPriceSeries validates the observations and wraps them in a series.
// The input slice is copied so later mutations by the caller cannot
// break the series invariants.
func NewPriceSeries(observations []PriceObservation) (*PriceSeries, error) {
	if len(observations) == 0 {
		return nil, fmt.Errorf("price series is empty")
	}

	for i, obs := range observations {
		if obs.Price <= 0 {
			return nil, fmt.Errorf("invalid price %.4f at index %d: prices must be positive", obs.Price, i)
		}
		if i > 0 && !observations[i-1].Date.Before(obs.Date) {
			return nil, fmt.Errorf("invalid date sequence at index %d: %s does not come after %s",
				i, obs.Date.Format("2006-01-02"), observations[i-1].Date.Format("2006-01-02"))
		}
	}

	copied := make([]PriceObservation, len(observations))
	copy(copied, observations)

	return &PriceSeries{observations: copied}, nil
}

// Len returns the number of observations in the series.
func (s *PriceSeries) Len() int {
	return len(s.observations)
}

// At returns the observation at index i.
func (s *PriceSeries) At(i int) PriceObservation {
	return s.observations[i]
}

// First returns the earliest observation.
func (s *PriceSeries) First() PriceObservation {
	return s.observations[0]
}

// Last returns the latest observation.
func (s *PriceSeries) Last() PriceObservation {
	return s.observations[len(s.observations)-1]
}

// IndexAtOrAfter resolves a target date to the index of the first
// observation whose date is at or after it (forward-fill). Index data
// has gaps, so a target that falls on a weekend or holiday rolls
// forward to the next trading date. The second return value is false
// when the target lies past the last observation.
func (s *PriceSeries) IndexAtOrAfter(target time.Time) (int, bool) {
	idx := sort.Search(len(s.observations), func(i int) bool {
		return !s.observations[i].Date.Before(target)
	})
	if idx == len(s.observations) {
		return 0, false
	}
	return idx, true
}
