// Package interfaces defines client and service contracts for the analyzer.
package interfaces

import (
	"context"
	"time"

	"github.com/PuneetFusion/portfolioanalyzer/internal/models"
)

// MarketDataClient provides historical price data for a ticker.
type MarketDataClient interface {
	// GetEOD retrieves end-of-day price data in ascending date order.
	GetEOD(ctx context.Context, ticker string, opts ...EODOption) ([]models.EODBar, error)
}

// EODOption configures EOD data requests.
type EODOption func(*EODParams)

// EODParams holds EOD query parameters.
type EODParams struct {
	From   time.Time
	To     time.Time
	Period string // d=daily, w=weekly, m=monthly
}

// WithDateRange sets the date range for the EOD query.
func WithDateRange(from, to time.Time) EODOption {
	return func(p *EODParams) {
		p.From = from
		p.To = to
	}
}

// WithPeriod sets the bar period for the EOD query.
func WithPeriod(period string) EODOption {
	return func(p *EODParams) {
		p.Period = period
	}
}

// GenerativeClient is the black-box text backend used by the summary service.
type GenerativeClient interface {
	// Summarize generates text from a prompt with bounded output length
	// (token counts). The backend treats minTokens as advisory.
	Summarize(ctx context.Context, prompt string, minTokens, maxTokens int) (string, error)
}
