package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

// Flags holds all command line flags for the backtest command
type Flags struct {
	// Configuration
	ConfigFile *string
	DataFile   *string
	Symbol     *string

	// Comparison parameters
	Durations    *string
	Installments *int
	Notional     *float64
	StartDate    *string
	EndDate      *string

	// Execution options
	Parallel *bool

	// Output options
	OutputDir   *string
	ConsoleOnly *bool
	EnvFile     *string

	// Help and version
	ShowVersion *bool
	ShowHelp    *bool
}

// NewFlags creates and registers all command line flags
func NewFlags() *Flags {
	return &Flags{
		ConfigFile: flag.String("config", "", "Path to JSON configuration file"),
		DataFile:   flag.String("data", "", "Path to historical quotes CSV (overrides remote download)"),
		Symbol:     flag.String("symbol", "", "Index symbol to download from Stooq (e.g. ^ixic)"),

		Durations:    flag.String("durations", "", "Comma-separated window durations in years (e.g. 5,10,15)"),
		Installments: flag.Int("installments", 0, "DCA installments per year (1, 2, 3, 4, 6 or 12)"),
		Notional:     flag.Float64("notional", 0, "Total notional amount invested per window"),
		StartDate:    flag.String("start", "", "Restrict series start (YYYY-MM-DD)"),
		EndDate:      flag.String("end", "", "Restrict series end (YYYY-MM-DD)"),

		Parallel: flag.Bool("parallel", false, "Evaluate durations concurrently"),

		OutputDir:   flag.String("output", "", "Directory for CSV/JSON/XLSX results (default results/<SYMBOL>)"),
		ConsoleOnly: flag.Bool("console-only", false, "Print the table only, write no files"),
		EnvFile:     flag.String("env", ".env", "Environment file to load"),

		ShowVersion: flag.Bool("version", false, "Show version information"),
		ShowHelp:    flag.Bool("help", false, "Show detailed help"),
	}
}

// ParseDurations parses the -durations flag into a year list
func ParseDurations(raw string) ([]int, error) {
	var durations []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		years, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid duration %q: %w", part, err)
		}
		durations = append(durations, years)
	}
	if len(durations) == 0 {
		return nil, fmt.Errorf("no durations in %q", raw)
	}
	return durations, nil
}
