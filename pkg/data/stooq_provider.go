package data

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/quantlab/lsi-dca-backtest/pkg/types"
)

const (
	stooqBaseURL   = "https://stooq.com/q/d/l/"
	defaultTimeout = 30 * time.Second
)

// StooqProvider implements DataProvider against the Stooq quote export
// endpoint. The source passed to LoadData is the instrument symbol
// (e.g. "^ixic"). Stooq serves plain CSV in the same column layout the
// CSV provider understands.
type StooqProvider struct {
	baseURL  string
	interval string
	client   *http.Client
	parser   *CSVProvider
}

// NewStooqProvider creates a provider downloading monthly quotes
func NewStooqProvider() *StooqProvider {
	return NewStooqProviderWithInterval("m")
}

// NewStooqProviderWithInterval creates a provider with a specific
// interval: "d" (daily), "w" (weekly), "m" (monthly)
func NewStooqProviderWithInterval(interval string) *StooqProvider {
	return &StooqProvider{
		baseURL:  stooqBaseURL,
		interval: interval,
		client:   &http.Client{Timeout: defaultTimeout},
		parser:   NewCSVProvider(),
	}
}

// GetName returns the name of the data provider
func (p *StooqProvider) GetName() string {
	return "Stooq Provider"
}

// LoadData downloads historical quotes for the given symbol
func (p *StooqProvider) LoadData(source string) ([]types.PriceObservation, error) {
	symbol := strings.ToLower(strings.TrimSpace(source))
	if symbol == "" {
		return nil, fmt.Errorf("empty symbol")
	}

	query := url.Values{}
	query.Set("s", symbol)
	query.Set("i", p.interval)

	resp, err := p.client.Get(p.baseURL + "?" + query.Encode())
	if err != nil {
		return nil, fmt.Errorf("failed to download quotes for %s: %w", symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d downloading quotes for %s", resp.StatusCode, symbol)
	}

	observations, err := p.parser.parseQuotes(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse quotes for %s: %w", symbol, err)
	}

	if len(observations) == 0 {
		return nil, fmt.Errorf("no quotes returned for %s (unknown symbol?)", symbol)
	}

	return observations, nil
}

// ValidateData validates the integrity of loaded observations
func (p *StooqProvider) ValidateData(observations []types.PriceObservation) error {
	return p.parser.ValidateData(observations)
}
