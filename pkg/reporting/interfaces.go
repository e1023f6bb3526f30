package reporting

import (
	"github.com/quantlab/lsi-dca-backtest/internal/backtest"
)

// Package reporting renders finalized comparison rows; it never
// participates in the simulation itself.

// ConsoleReporter defines interface for console output
type ConsoleReporter interface {
	OutputResults(rows []backtest.ReportRow)
	OutputResultsWithContext(rows []backtest.ReportRow, symbol string)
}

// FileReporter defines interface for file output
type FileReporter interface {
	WriteResultsCSV(rows []backtest.ReportRow, path string) error
	WriteResultsJSON(rows []backtest.ReportRow, path string) error
	WriteResultsXLSX(rows []backtest.ReportRow, path string) error
}

// PathManager defines interface for output path management
type PathManager interface {
	GetDefaultOutputDir(symbol string) string
	EnsureDirectoryExists(path string) error
}

// Reporter combines all reporting interfaces
type Reporter interface {
	ConsoleReporter
	FileReporter
	PathManager
}
