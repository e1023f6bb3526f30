package reporting

import (
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/quantlab/lsi-dca-backtest/internal/backtest"
)

// DefaultCSVReporter implements CSV output functionality
type DefaultCSVReporter struct{}

// NewDefaultCSVReporter creates a new CSV reporter
func NewDefaultCSVReporter() *DefaultCSVReporter {
	return &DefaultCSVReporter{}
}

// WriteResultsCSV writes one row per duration to a CSV file
func (r *DefaultCSVReporter) WriteResultsCSV(rows []backtest.ReportRow, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{
		"Duration_Years",
		"LSI_Wins",
		"DCA_Wins",
		"Avg_LSI_Annualized_Return",
		"Avg_DCA_Annualized_Return",
		"LSI_Win_Ratio",
	}); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.Years),
			strconv.Itoa(row.LSIWins),
			strconv.Itoa(row.DCAWins),
			formatFloat(row.AvgLSIAnnualized),
			formatFloat(row.AvgDCAAnnualized),
			formatFloat(row.LSIWinRatio),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	return nil
}

func formatFloat(value float64) string {
	if math.IsNaN(value) {
		return ""
	}
	return strconv.FormatFloat(value, 'f', 6, 64)
}
