package analyzer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PuneetFusion/portfolioanalyzer/internal/interfaces"
	"github.com/PuneetFusion/portfolioanalyzer/internal/models"
)

// stubMarketClient serves canned bars per ticker, or a single error for
// everything.
type stubMarketClient struct {
	bars  map[string][]models.EODBar
	err   error
	calls int
}

func (c *stubMarketClient) GetEOD(ctx context.Context, ticker string, opts ...interfaces.EODOption) ([]models.EODBar, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.bars[ticker], nil
}

func fastRetry() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, Delay: time.Second, Sleep: func(time.Duration) {}}
}

func testPortfolio() *models.Portfolio {
	return &models.Portfolio{Holdings: []models.Holding{
		{Ticker: "SPY", Percentage: 60},
		{Ticker: "AGG", Percentage: 30},
		{Ticker: "CASH", Percentage: 10},
	}}
}

func TestAnalyze_CompositionAndRiskLevel(t *testing.T) {
	svc := NewService(nil, nil)

	result, err := svc.Analyze(context.Background(), testPortfolio())

	require.NoError(t, err)
	assert.InDelta(t, 60.0, result.EquityPercentage, 1e-9)
	assert.InDelta(t, 30.0, result.FixedIncomePercentage, 1e-9)
	assert.InDelta(t, 10.0, result.CashPercentage, 1e-9)
	assert.Equal(t, models.RiskLevelModerate, result.RiskLevel)
}

func TestAnalyze_InvalidPortfolioRefused(t *testing.T) {
	svc := NewService(nil, nil)
	portfolio := &models.Portfolio{Holdings: []models.Holding{{Ticker: "SPY", Percentage: 50}}}

	result, err := svc.Analyze(context.Background(), portfolio)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, models.IsInputError(err))
}

func TestAnalyze_StaticPathFillsMetrics(t *testing.T) {
	svc := NewService(nil, nil)
	portfolio := &models.Portfolio{Holdings: []models.Holding{
		{Ticker: "SPY", Percentage: 30},
		{Ticker: "AGG", Percentage: 40},
		{Ticker: "EFA", Percentage: 20},
		{Ticker: "CASH", Percentage: 10},
	}}

	result, err := svc.Analyze(context.Background(), portfolio)

	require.NoError(t, err)
	require.True(t, result.HasDetailedMetrics())
	assert.InDelta(t, 0.065, *result.ExpectedReturn, 1e-9)
	assert.InDelta(t, 0.098, *result.Risk, 1e-9)
	assert.InDelta(t, 0.5612, *result.SharpeRatio, 1e-4)
}

func TestAnalyze_LivePathComputesMetrics(t *testing.T) {
	client := &stubMarketClient{bars: map[string][]models.EODBar{
		"SPY": barsFromCloses(100, 110, 99, 108.9),
		"AGG": barsFromCloses(100, 105, 99.75, 104.7375),
	}}
	svc := NewService(client, nil, WithRetryPolicy(fastRetry()))

	result, err := svc.Analyze(context.Background(), testPortfolio())

	require.NoError(t, err)
	require.True(t, result.HasDetailedMetrics())
	assert.Greater(t, *result.Risk, 0.0)
	assert.InDelta(t, *result.ExpectedReturn / *result.Risk, *result.SharpeRatio, 1e-9)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, 2, client.calls, "cash holdings are never priced")
}

func TestAnalyze_FetchFailureDegradesToPartialResult(t *testing.T) {
	client := &stubMarketClient{err: errors.New("connection refused")}
	svc := NewService(client, nil, WithRetryPolicy(fastRetry()))

	result, err := svc.Analyze(context.Background(), testPortfolio())

	require.NoError(t, err, "fetch failures must not surface as errors")
	require.NotNil(t, result)
	assert.InDelta(t, 60.0, result.EquityPercentage, 1e-9)
	assert.Equal(t, models.RiskLevelModerate, result.RiskLevel)
	assert.False(t, result.HasDetailedMetrics())
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "detailed metrics unavailable")
}

func TestAnalyze_FetchRetriesBeforeGivingUp(t *testing.T) {
	client := &stubMarketClient{err: errors.New("rate limited")}
	svc := NewService(client, nil, WithRetryPolicy(fastRetry()))

	_, err := svc.Analyze(context.Background(), testPortfolio())

	require.NoError(t, err)
	assert.Equal(t, 3, client.calls, "the batch is retried up to the attempt limit")
}

func TestAnalyze_AllCashPortfolioDegrades(t *testing.T) {
	client := &stubMarketClient{}
	svc := NewService(client, nil, WithRetryPolicy(fastRetry()))
	portfolio := &models.Portfolio{Holdings: []models.Holding{{Ticker: "CASH", Percentage: 100}}}

	result, err := svc.Analyze(context.Background(), portfolio)

	require.NoError(t, err)
	assert.False(t, result.HasDetailedMetrics())
	assert.Equal(t, 0, client.calls)
	assert.Equal(t, models.RiskLevelConservative, result.RiskLevel)
}

func TestAnalyze_Idempotent(t *testing.T) {
	client := &stubMarketClient{bars: map[string][]models.EODBar{
		"SPY": barsFromCloses(100, 110, 99, 108.9),
		"AGG": barsFromCloses(100, 105, 99.75, 104.7375),
	}}
	svc := NewService(client, nil, WithRetryPolicy(fastRetry()), WithClock(func() time.Time {
		return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	}))

	first, err := svc.Analyze(context.Background(), testPortfolio())
	require.NoError(t, err)
	second, err := svc.Analyze(context.Background(), testPortfolio())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
