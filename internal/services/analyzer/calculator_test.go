package analyzer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PuneetFusion/portfolioanalyzer/internal/models"
)

func barsFromCloses(closes ...float64) []models.EODBar {
	bars := make([]models.EODBar, len(closes))
	day := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		bars[i] = models.EODBar{Date: day.AddDate(0, 0, i), Close: c, AdjClose: c}
	}
	return bars
}

func TestPeriodicReturns(t *testing.T) {
	returns := PeriodicReturns(barsFromCloses(100, 110, 99))

	require.Len(t, returns, 2)
	assert.InDelta(t, 0.10, returns[0], 1e-9)
	assert.InDelta(t, -0.10, returns[1], 1e-9)
}

func TestPeriodicReturns_TooShort(t *testing.T) {
	assert.Nil(t, PeriodicReturns(nil))
	assert.Nil(t, PeriodicReturns(barsFromCloses(100)))
}

func TestPeriodicReturns_ZeroPreviousClose(t *testing.T) {
	returns := PeriodicReturns(barsFromCloses(0, 100))

	require.Len(t, returns, 1)
	assert.Equal(t, 0.0, returns[0], "zero-price predecessors contribute a zero return, not Inf")
}

func TestComputePortfolioMetrics(t *testing.T) {
	// Both series alternate +10%/-10% and +5%/-5% in lockstep. Daily mean
	// returns are 1/30 and 1/60; perfectly correlated so the covariance
	// math has a hand-checkable closed form.
	table := models.NewPriceTable([]string{"AAA", "BBB"})
	table.Series["AAA"] = barsFromCloses(100, 110, 99, 108.9)
	table.Series["BBB"] = barsFromCloses(100, 105, 99.75, 104.7375)

	metrics, err := ComputePortfolioMetrics(table, []float64{0.5, 0.5})

	require.NoError(t, err)
	// Weighted daily mean = 0.5*(1/30) + 0.5*(1/60) = 0.025; annualized 6.3.
	assert.InDelta(t, 6.3, metrics.ExpectedReturn, 1e-9)
	// Portfolio daily variance = 0.0075 (sample covariances 0.01, 0.005,
	// 0.0025); annualized 1.89, volatility sqrt(1.89).
	assert.InDelta(t, 1.374772708, metrics.Volatility, 1e-6)
	assert.InDelta(t, metrics.ExpectedReturn/metrics.Volatility, metrics.SharpeRatio, 1e-12)
}

func TestComputePortfolioMetrics_TrimsToCommonLength(t *testing.T) {
	table := models.NewPriceTable([]string{"AAA", "BBB"})
	table.Series["AAA"] = barsFromCloses(50, 100, 110, 99, 108.9)
	table.Series["BBB"] = barsFromCloses(100, 105, 99.75, 104.7375)

	metrics, err := ComputePortfolioMetrics(table, []float64{0.5, 0.5})

	require.NoError(t, err)
	// The extra leading AAA bar is trimmed away, so the numbers match the
	// aligned case exactly.
	assert.InDelta(t, 6.3, metrics.ExpectedReturn, 1e-9)
}

func TestComputePortfolioMetrics_ZeroVolatility(t *testing.T) {
	table := models.NewPriceTable([]string{"FLAT"})
	table.Series["FLAT"] = barsFromCloses(100, 100, 100, 100)

	_, err := ComputePortfolioMetrics(table, []float64{1.0})

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrZeroVolatility)
}

func TestComputePortfolioMetrics_InsufficientBars(t *testing.T) {
	table := models.NewPriceTable([]string{"AAA"})
	table.Series["AAA"] = barsFromCloses(100)

	_, err := ComputePortfolioMetrics(table, []float64{1.0})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 2")
}

func TestComputePortfolioMetrics_WeightCountMismatch(t *testing.T) {
	table := models.NewPriceTable([]string{"AAA"})
	table.Series["AAA"] = barsFromCloses(100, 110, 99)

	_, err := ComputePortfolioMetrics(table, []float64{0.5, 0.5})

	require.Error(t, err)
}
