package orchestrator

import (
	"fmt"
	"log"
	"time"

	"github.com/quantlab/lsi-dca-backtest/internal/backtest"
	"github.com/quantlab/lsi-dca-backtest/pkg/config"
	datamanager "github.com/quantlab/lsi-dca-backtest/pkg/data"
	"github.com/quantlab/lsi-dca-backtest/pkg/types"
)

// Orchestrator runs the full comparison workflow
type Orchestrator interface {
	RunComparison(cfg *config.BacktestConfig) ([]backtest.ReportRow, error)
}

// DefaultOrchestrator implements the Orchestrator interface
type DefaultOrchestrator struct {
	fileProvider   datamanager.DataProvider
	remoteProvider datamanager.DataProvider
	filter         *datamanager.DefaultDataFilter
}

// NewOrchestrator creates an orchestrator with default providers: a
// cached CSV provider for local files and Stooq for remote symbols
func NewOrchestrator() *DefaultOrchestrator {
	return &DefaultOrchestrator{
		fileProvider:   datamanager.NewCachedProvider(datamanager.NewCSVProvider()),
		remoteProvider: datamanager.NewCachedProvider(datamanager.NewStooqProvider()),
		filter:         datamanager.NewDefaultDataFilter(),
	}
}

// NewOrchestratorWithProviders creates an orchestrator with custom providers
func NewOrchestratorWithProviders(fileProvider, remoteProvider datamanager.DataProvider) *DefaultOrchestrator {
	return &DefaultOrchestrator{
		fileProvider:   fileProvider,
		remoteProvider: remoteProvider,
		filter:         datamanager.NewDefaultDataFilter(),
	}
}

// RunComparison loads the price series and evaluates every configured
// duration, returning one report row per duration
func (o *DefaultOrchestrator) RunComparison(cfg *config.BacktestConfig) ([]backtest.ReportRow, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	series, err := o.loadSeries(cfg)
	if err != nil {
		return nil, err
	}

	log.Printf("📊 Series: %d observations, %s → %s",
		series.Len(),
		series.First().Date.Format("2006-01-02"),
		series.Last().Date.Format("2006-01-02"))
	log.Printf("💰 Notional: $%.2f, %d installments/year, durations %v",
		cfg.NotionalAmount, cfg.InstallmentsPerYear, cfg.DurationsYears)

	engine := backtest.NewEngine(cfg.DurationsYears, cfg.InstallmentsPerYear, cfg.NotionalAmount)

	started := time.Now()
	var rows []backtest.ReportRow
	if cfg.Parallel {
		rows = engine.RunParallel(series, 0)
	} else {
		rows = engine.Run(series)
	}
	log.Printf("✅ Evaluated %d durations in %s", len(rows), time.Since(started).Round(time.Millisecond))

	return rows, nil
}

// loadSeries picks a provider, loads the observations, applies the
// optional date-range filter and constructs the immutable series
func (o *DefaultOrchestrator) loadSeries(cfg *config.BacktestConfig) (*types.PriceSeries, error) {
	provider := o.remoteProvider
	source := cfg.Symbol
	if cfg.DataFile != "" {
		provider = o.fileProvider
		source = cfg.DataFile
	}

	observations, err := provider.LoadData(source)
	if err != nil {
		return nil, fmt.Errorf("failed to load price data: %w", err)
	}

	if err := provider.ValidateData(observations); err != nil {
		return nil, fmt.Errorf("invalid price data: %w", err)
	}

	observations, err = o.applyDateRange(cfg, observations)
	if err != nil {
		return nil, err
	}

	series, err := types.NewPriceSeries(observations)
	if err != nil {
		return nil, fmt.Errorf("invalid price series: %w", err)
	}

	return series, nil
}

func (o *DefaultOrchestrator) applyDateRange(cfg *config.BacktestConfig, observations []types.PriceObservation) ([]types.PriceObservation, error) {
	if cfg.StartDate == "" && cfg.EndDate == "" {
		return observations, nil
	}

	start := time.Time{}
	end := time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
	var err error

	if cfg.StartDate != "" {
		if start, err = time.Parse("2006-01-02", cfg.StartDate); err != nil {
			return nil, fmt.Errorf("invalid start date %q: %w", cfg.StartDate, err)
		}
	}
	if cfg.EndDate != "" {
		if end, err = time.Parse("2006-01-02", cfg.EndDate); err != nil {
			return nil, fmt.Errorf("invalid end date %q: %w", cfg.EndDate, err)
		}
	}

	filtered := o.filter.FilterByDateRange(observations, start, end)
	log.Printf("🔍 Date range filter kept %d of %d observations", len(filtered), len(observations))
	return filtered, nil
}
