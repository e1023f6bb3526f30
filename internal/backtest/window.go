package backtest

import (
	"time"

	"github.com/quantlab/lsi-dca-backtest/pkg/types"
)

// Window is one fixed-duration historical interval over which both
// strategies are simulated. End is the first observation date at or
// after Start + Years (forward-fill), so Start and End always land on
// actual observations.
type Window struct {
	Start    time.Time
	End      time.Time
	StartIdx int
	EndIdx   int
	Years    int
}

// EnumerateWindows produces every valid window of the given duration,
// one per observation that can serve as a starting point, ordered by
// start date. A start whose target end date falls past the last
// observation is dropped rather than treated as an error; a duration
// longer than the whole series therefore yields zero windows.
//
// The result is a pure function of its inputs, so enumeration can be
// restarted or repeated freely.
func EnumerateWindows(series *types.PriceSeries, years int) []Window {
	if years <= 0 {
		return nil
	}

	var windows []Window
	for i := 0; i < series.Len(); i++ {
		start := series.At(i)
		target := start.Date.AddDate(years, 0, 0)

		endIdx, ok := series.IndexAtOrAfter(target)
		if !ok {
			// Later starts only push the target further out
			break
		}

		windows = append(windows, Window{
			Start:    start.Date,
			End:      series.At(endIdx).Date,
			StartIdx: i,
			EndIdx:   endIdx,
			Years:    years,
		})
	}

	return windows
}
