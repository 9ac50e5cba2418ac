// Package analyzer implements the portfolio analysis pipeline: composition,
// risk-tier classification and best-effort detailed metrics.
package analyzer

import (
	"context"
	"time"

	"github.com/PuneetFusion/portfolioanalyzer/internal/common"
	"github.com/PuneetFusion/portfolioanalyzer/internal/interfaces"
	"github.com/PuneetFusion/portfolioanalyzer/internal/models"
	"github.com/PuneetFusion/portfolioanalyzer/internal/services/classifier"
)

// LookbackYears is the fixed price-history window for the live-data path.
const LookbackYears = 3

// Service implements AnalyzerService. When a market data client is configured
// it computes metrics from live price history; otherwise it falls back to the
// static asset-class model. Either way the categorical fields are guaranteed.
type Service struct {
	market interfaces.MarketDataClient
	retry  RetryPolicy
	logger *common.Logger
	now    func() time.Time
}

// ServiceOption configures the service.
type ServiceOption func(*Service)

// WithRetryPolicy overrides the fetch retry policy.
func WithRetryPolicy(p RetryPolicy) ServiceOption {
	return func(s *Service) {
		s.retry = p
	}
}

// WithClock overrides the time source. Tests use this to pin the lookback
// window.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates an analyzer service. market may be nil, in which case
// the static asset-class model supplies the detailed metrics.
func NewService(market interfaces.MarketDataClient, logger *common.Logger, opts ...ServiceOption) *Service {
	s := &Service{
		market: market,
		retry:  NewRetryPolicy(),
		logger: logger,
		now:    time.Now,
	}
	if s.logger == nil {
		s.logger = common.NewSilentLogger()
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Analyze produces the analysis record for a portfolio. Composition and risk
// tier are always computed; detailed metrics degrade to absent when market
// data cannot be obtained. Only invalid input returns an error.
func (s *Service) Analyze(ctx context.Context, portfolio *models.Portfolio) (*models.AnalysisResult, error) {
	if err := portfolio.Validate(); err != nil {
		return nil, err
	}

	result := &models.AnalysisResult{}

	for _, h := range portfolio.Holdings {
		switch classifier.Profile(h.Ticker).Type {
		case models.HoldingTypeFixedIncome:
			result.FixedIncomePercentage += h.Percentage
		case models.HoldingTypeCash:
			result.CashPercentage += h.Percentage
		default:
			result.EquityPercentage += h.Percentage
		}
	}
	result.RiskLevel = models.ClassifyRiskLevel(result.EquityPercentage)

	if s.market != nil {
		s.analyzeLive(ctx, portfolio, result)
	} else {
		if err := s.analyzeStatic(portfolio, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// analyzeStatic fills detailed metrics from the fixed asset-class
// assumptions. Weight-invariant violations are input errors; degenerate risk
// degrades to a partial result.
func (s *Service) analyzeStatic(portfolio *models.Portfolio, result *models.AnalysisResult) error {
	metrics, err := ComputeStaticMetrics(portfolio.Holdings)
	if err != nil {
		if models.IsInputError(err) {
			return err
		}
		s.logger.Warn().Err(err).Msg("Static model failed, returning partial result")
		result.Warnings = append(result.Warnings, "detailed metrics unavailable: "+err.Error())
		return nil
	}

	result.ExpectedReturn = models.Float64Ptr(metrics.ExpectedReturn)
	result.Risk = models.Float64Ptr(metrics.Risk)
	result.SharpeRatio = models.Float64Ptr(metrics.SharpeRatio)
	result.AssetClassWeights = metrics.AssetClassWeights
	return nil
}

// analyzeLive attempts the fetch-and-compute path. Every failure is caught
// and downgraded to a warning on the partial result; this is the central
// resilience contract of the analyzer.
func (s *Service) analyzeLive(ctx context.Context, portfolio *models.Portfolio, result *models.AnalysisResult) {
	metrics, err := s.computeLiveMetrics(ctx, portfolio)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Detailed analysis unavailable, returning partial result")
		result.Warnings = append(result.Warnings, "detailed metrics unavailable: "+err.Error())
		return
	}

	weights := make(map[string]float64)
	for _, h := range portfolio.Holdings {
		weights[classifier.Classify(h.Ticker)] += h.Weight()
	}

	result.ExpectedReturn = models.Float64Ptr(metrics.ExpectedReturn)
	result.Risk = models.Float64Ptr(metrics.Volatility)
	result.SharpeRatio = models.Float64Ptr(metrics.SharpeRatio)
	result.AssetClassWeights = weights
}

// computeLiveMetrics fetches price history for the non-cash holdings and runs
// the covariance-based calculator. Cash is excluded entirely; the remaining
// weights sum to the equity plus fixed-income fraction of the portfolio.
func (s *Service) computeLiveMetrics(ctx context.Context, portfolio *models.Portfolio) (*PortfolioMetrics, error) {
	var tickers []string
	var weights []float64
	for _, h := range portfolio.Holdings {
		if classifier.Profile(h.Ticker).Type == models.HoldingTypeCash {
			continue
		}
		tickers = append(tickers, h.Ticker)
		weights = append(weights, h.Weight())
	}
	if len(tickers) == 0 {
		return nil, models.NewDataUnavailableError("no non-cash holdings to price", nil)
	}

	table, err := s.fetchPrices(ctx, tickers)
	if err != nil {
		return nil, models.NewDataUnavailableError("price fetch failed", err)
	}

	metrics, err := ComputePortfolioMetrics(table, weights)
	if err != nil {
		return nil, models.NewDataUnavailableError("metric computation failed", err)
	}

	return metrics, nil
}

// fetchPrices retrieves adjusted-close history for all tickers over the
// lookback window, retrying the whole batch under the retry policy. After
// retries are exhausted the failure propagates; no partial table is returned.
func (s *Service) fetchPrices(ctx context.Context, tickers []string) (*models.PriceTable, error) {
	to := s.now()
	from := to.AddDate(-LookbackYears, 0, 0)

	var table *models.PriceTable
	err := s.retry.Do(ctx, func() error {
		t := models.NewPriceTable(tickers)
		for _, ticker := range tickers {
			bars, err := s.market.GetEOD(ctx, ticker, interfaces.WithDateRange(from, to))
			if err != nil {
				return err
			}
			t.Series[ticker] = bars
		}
		table = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	return table, nil
}

// Ensure Service implements AnalyzerService
var _ interfaces.AnalyzerService = (*Service)(nil)
