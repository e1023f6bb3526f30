package reporting

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"

	"github.com/quantlab/lsi-dca-backtest/internal/backtest"
)

// DefaultJSONReporter implements JSON output functionality
type DefaultJSONReporter struct{}

// NewDefaultJSONReporter creates a new JSON reporter
func NewDefaultJSONReporter() *DefaultJSONReporter {
	return &DefaultJSONReporter{}
}

// jsonReportRow mirrors backtest.ReportRow with nullable averages,
// since encoding/json rejects NaN
type jsonReportRow struct {
	Years            int      `json:"duration_years"`
	LSIWins          int      `json:"lsi_wins"`
	DCAWins          int      `json:"dca_wins"`
	AvgLSIAnnualized *float64 `json:"avg_lsi_annualized_return"`
	AvgDCAAnnualized *float64 `json:"avg_dca_annualized_return"`
	LSIWinRatio      *float64 `json:"lsi_win_ratio"`
}

// WriteResultsJSON writes the report rows as an indented JSON array
func (r *DefaultJSONReporter) WriteResultsJSON(rows []backtest.ReportRow, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	out := make([]jsonReportRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, jsonReportRow{
			Years:            row.Years,
			LSIWins:          row.LSIWins,
			DCAWins:          row.DCAWins,
			AvgLSIAnnualized: nullableFloat(row.AvgLSIAnnualized),
			AvgDCAAnnualized: nullableFloat(row.AvgDCAAnnualized),
			LSIWinRatio:      nullableFloat(row.LSIWinRatio),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func nullableFloat(value float64) *float64 {
	if math.IsNaN(value) {
		return nil
	}
	return &value
}
