package reporting

import (
	"fmt"
	"math"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/quantlab/lsi-dca-backtest/internal/backtest"
)

// DefaultConsoleReporter implements console output functionality
type DefaultConsoleReporter struct{}

// NewDefaultConsoleReporter creates a new console reporter
func NewDefaultConsoleReporter() *DefaultConsoleReporter {
	return &DefaultConsoleReporter{}
}

// OutputResults prints one table row per configured duration
func (r *DefaultConsoleReporter) OutputResults(rows []backtest.ReportRow) {
	r.OutputResultsWithContext(rows, "")
}

// OutputResultsWithContext prints the results table with the symbol in the title
func (r *DefaultConsoleReporter) OutputResultsWithContext(rows []backtest.ReportRow, symbol string) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	if symbol != "" {
		t.SetTitle("LUMP SUM vs DCA: %s", symbol)
	} else {
		t.SetTitle("LUMP SUM vs DCA")
	}
	t.SetStyle(table.StyleRounded)

	t.AppendHeader(table.Row{"Years", "LSI Wins", "DCA Wins", "Avg LSI Return", "Avg DCA Return", "LSI Win Ratio", "Windows"})

	for _, row := range rows {
		t.AppendRow(table.Row{
			row.Years,
			row.LSIWins,
			row.DCAWins,
			formatPercent(row.AvgLSIAnnualized),
			formatPercent(row.AvgDCAAnnualized),
			formatPercent(row.LSIWinRatio),
			row.LSIWins + row.DCAWins,
		})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
	})

	t.Render()
	fmt.Println()
}

// formatPercent renders a fractional value as a percentage, keeping
// zero-window durations readable instead of printing NaN%
func formatPercent(value float64) string {
	if math.IsNaN(value) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f%%", value*100)
}
