package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/quantlab/lsi-dca-backtest/pkg/types"
)

// CSVProvider implements DataProvider for CSV quote files
type CSVProvider struct {
	format CSVColumnMapping
}

// NewCSVProvider creates a new CSV data provider with the Stooq format
func NewCSVProvider() *CSVProvider {
	return &CSVProvider{
		format: StooqCSVFormat,
	}
}

// NewCSVProviderWithFormat creates a new CSV data provider with a custom format
func NewCSVProviderWithFormat(format CSVColumnMapping) *CSVProvider {
	return &CSVProvider{
		format: format,
	}
}

// GetName returns the name of the data provider
func (p *CSVProvider) GetName() string {
	return "CSV Provider"
}

// LoadData loads historical observations from a CSV file
func (p *CSVProvider) LoadData(source string) ([]types.PriceObservation, error) {
	file, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file %s: %w", source, err)
	}
	defer file.Close()

	return p.parseQuotes(file)
}

func (p *CSVProvider) parseQuotes(r io.Reader) ([]types.PriceObservation, error) {
	reader := csv.NewReader(r)

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, err
	}

	var observations []types.PriceObservation

	lineNum := 1 // start from 1 since we already read the header
	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("error reading CSV at line %d: %v", lineNum, err)
		}
		lineNum++

		if len(record) < p.format.MinColumns {
			log.Printf("⚠️ Insufficient columns at line %d (expected %d, got %d), skipping", lineNum, p.format.MinColumns, len(record))
			continue
		}

		date, err := time.Parse(p.format.DateFormat, record[p.format.DateCol])
		if err != nil {
			log.Printf("⚠️ Invalid date '%s' at line %d, skipping: %v", record[p.format.DateCol], lineNum, err)
			continue
		}

		price, err := strconv.ParseFloat(record[p.format.PriceCol], 64)
		if err != nil {
			log.Printf("⚠️ Invalid price '%s' at line %d, skipping: %v", record[p.format.PriceCol], lineNum, err)
			continue
		}

		if price <= 0 {
			log.Printf("⚠️ Invalid price data (negative or zero) at line %d, skipping", lineNum)
			continue
		}

		observations = append(observations, types.PriceObservation{
			Date:  date,
			Price: price,
		})
	}

	return observations, nil
}

// ValidateData validates the integrity of loaded observations
func (p *CSVProvider) ValidateData(observations []types.PriceObservation) error {
	if len(observations) == 0 {
		return fmt.Errorf("no data provided")
	}

	for i, obs := range observations {
		if obs.Price <= 0 {
			return fmt.Errorf("invalid price data at index %d: prices must be positive", i)
		}

		if i > 0 && !obs.Date.After(observations[i-1].Date) {
			return fmt.Errorf("invalid date sequence at index %d: dates must be strictly increasing", i)
		}
	}

	return nil
}
