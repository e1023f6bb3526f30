package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/quantlab/lsi-dca-backtest/pkg/config"
	"github.com/quantlab/lsi-dca-backtest/pkg/orchestrator"
	"github.com/quantlab/lsi-dca-backtest/pkg/reporting"
)

const (
	AppName    = "LSI vs DCA Backtest"
	AppVersion = "1.0.0"
)

func main() {
	flags := NewFlags()
	flag.Parse()

	if *flags.ShowVersion {
		fmt.Printf("%s v%s\n", AppName, AppVersion)
		return
	}

	if *flags.ShowHelp {
		printUsageHelp()
		return
	}

	printHeader()

	loadEnvironment(*flags.EnvFile)

	cfg, err := loadConfiguration(flags)
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}

	orch := orchestrator.NewOrchestrator()
	rows, err := orch.RunComparison(cfg)
	if err != nil {
		log.Fatalf("❌ Backtest failed: %v", err)
	}

	reporter := reporting.NewDefaultReporter()
	reporter.OutputResultsWithContext(rows, cfg.Symbol)

	if *flags.ConsoleOnly {
		return
	}

	outputDir := *flags.OutputDir
	if outputDir == "" {
		outputDir = reporter.GetDefaultOutputDir(cfg.Symbol)
	}

	writers := []struct {
		name  string
		write func() error
	}{
		{"results.csv", func() error { return reporter.WriteResultsCSV(rows, filepath.Join(outputDir, "results.csv")) }},
		{"results.json", func() error { return reporter.WriteResultsJSON(rows, filepath.Join(outputDir, "results.json")) }},
		{"results.xlsx", func() error { return reporter.WriteResultsXLSX(rows, filepath.Join(outputDir, "results.xlsx")) }},
	}

	for _, w := range writers {
		if err := w.write(); err != nil {
			log.Printf("⚠️ Failed to write %s: %v", w.name, err)
			continue
		}
		log.Printf("💾 Wrote %s", filepath.Join(outputDir, w.name))
	}
}

func printHeader() {
	fmt.Printf("🎯 %s v%s\n", strings.ToUpper(AppName), AppVersion)
	fmt.Printf("%s\n\n", strings.Repeat("=", 50))
}

func printUsageHelp() {
	fmt.Printf("%s v%s - Lump Sum vs Dollar-Cost Averaging comparison\n\n", AppName, AppVersion)
	fmt.Printf("USAGE:\n  %s [OPTIONS]\n\n", filepath.Base(flag.CommandLine.Name()))
	fmt.Println("EXAMPLES:")
	fmt.Println("  # Download monthly ^IXIC quotes and compare 5/10/15 year windows")
	fmt.Println("  lsi-dca-backtest -symbol ^ixic")
	fmt.Println()
	fmt.Println("  # Use a local CSV and custom horizons")
	fmt.Println("  lsi-dca-backtest -data data/ixic_monthly.csv -durations 3,7,20")
	fmt.Println()
	fmt.Println("OPTIONS:")
	flag.PrintDefaults()
}

func loadEnvironment(envFile string) {
	if err := godotenv.Load(envFile); err != nil {
		log.Printf("⚠️ Could not load %s (%v)", envFile, err)
	}
}

// loadConfiguration merges the config file with flag overrides
func loadConfiguration(flags *Flags) (*config.BacktestConfig, error) {
	configFile := *flags.ConfigFile
	if configFile != "" && !strings.ContainsAny(configFile, "/\\") {
		configFile = filepath.Join("configs", configFile+".json")
	}

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, err
	}

	if *flags.DataFile != "" {
		cfg.DataFile = *flags.DataFile
	}
	if *flags.Symbol != "" {
		cfg.Symbol = *flags.Symbol
	}
	if *flags.Durations != "" {
		durations, err := ParseDurations(*flags.Durations)
		if err != nil {
			return nil, err
		}
		cfg.DurationsYears = durations
	}
	if *flags.Installments > 0 {
		cfg.InstallmentsPerYear = *flags.Installments
	}
	if *flags.Notional > 0 {
		cfg.NotionalAmount = *flags.Notional
	}
	if *flags.StartDate != "" {
		cfg.StartDate = *flags.StartDate
	}
	if *flags.EndDate != "" {
		cfg.EndDate = *flags.EndDate
	}
	if *flags.Parallel {
		cfg.Parallel = true
	}

	return cfg, cfg.Validate()
}
