package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Default configuration values, matching the classic monthly ^IXIC run
const (
	DefaultSymbol              = "^ixic"
	DefaultInstallmentsPerYear = 12
	DefaultNotionalAmount      = 10_000_000.0
)

// DefaultDurations are the horizons compared when none are configured
var DefaultDurations = []int{5, 10, 15}

// BacktestConfig holds all configuration for an LSI vs DCA comparison run
type BacktestConfig struct {
	DataFile            string  `json:"data_file"`
	Symbol              string  `json:"symbol"`
	DurationsYears      []int   `json:"durations_years"`
	InstallmentsPerYear int     `json:"installments_per_year"`
	NotionalAmount      float64 `json:"notional_amount"`

	// Optional date range filter (YYYY-MM-DD), empty means full series
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`

	// Parallel evaluates durations concurrently; results are identical
	Parallel bool `json:"parallel,omitempty"`
}

// DefaultConfig returns a config populated with defaults
func DefaultConfig() *BacktestConfig {
	return &BacktestConfig{
		Symbol:              DefaultSymbol,
		DurationsYears:      append([]int(nil), DefaultDurations...),
		InstallmentsPerYear: DefaultInstallmentsPerYear,
		NotionalAmount:      DefaultNotionalAmount,
	}
}

// LoadConfig reads a JSON config file on top of the defaults. An empty
// path returns the defaults unchanged.
func LoadConfig(path string) (*BacktestConfig, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := json.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration for values the engine cannot work with
func (c *BacktestConfig) Validate() error {
	if len(c.DurationsYears) == 0 {
		return fmt.Errorf("at least one duration is required")
	}

	for _, years := range c.DurationsYears {
		if years <= 0 {
			return fmt.Errorf("invalid duration %d: durations must be positive years", years)
		}
	}

	if c.InstallmentsPerYear <= 0 {
		return fmt.Errorf("installments per year must be positive, got %d", c.InstallmentsPerYear)
	}

	// Installments are spaced by a whole number of calendar months
	if 12%c.InstallmentsPerYear != 0 {
		return fmt.Errorf("installments per year must divide 12 evenly (1, 2, 3, 4, 6 or 12), got %d", c.InstallmentsPerYear)
	}

	if c.NotionalAmount <= 0 {
		return fmt.Errorf("notional amount must be positive, got %.2f", c.NotionalAmount)
	}

	if c.DataFile == "" && c.Symbol == "" {
		return fmt.Errorf("either a data file or a symbol is required")
	}

	return nil
}
