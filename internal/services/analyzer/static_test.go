package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PuneetFusion/portfolioanalyzer/internal/models"
	"github.com/PuneetFusion/portfolioanalyzer/internal/services/classifier"
)

func TestComputeStaticMetrics(t *testing.T) {
	holdings := []models.Holding{
		{Ticker: "SPY", Percentage: 30},
		{Ticker: "AGG", Percentage: 40},
		{Ticker: "EFA", Percentage: 20},
		{Ticker: "CASH", Percentage: 10},
	}

	metrics, err := ComputeStaticMetrics(holdings)

	require.NoError(t, err)
	// 0.3*0.10 + 0.4*0.04 + 0.2*0.09 + 0.1*0.01
	assert.InDelta(t, 0.065, metrics.ExpectedReturn, 1e-9)
	// 0.3*0.15 + 0.4*0.05 + 0.2*0.16 + 0.1*0.01
	assert.InDelta(t, 0.098, metrics.Risk, 1e-9)
	// (0.065 - 0.01) / 0.098
	assert.InDelta(t, 0.5612, metrics.SharpeRatio, 1e-4)

	assert.InDelta(t, 0.3, metrics.AssetClassWeights[classifier.USLargeCap], 1e-9)
	assert.InDelta(t, 0.4, metrics.AssetClassWeights[classifier.USBonds], 1e-9)
	assert.InDelta(t, 0.2, metrics.AssetClassWeights[classifier.IntlDeveloped], 1e-9)
	assert.InDelta(t, 0.1, metrics.AssetClassWeights[classifier.Cash], 1e-9)
}

func TestComputeStaticMetrics_UnknownTickerUsesDefaultClass(t *testing.T) {
	holdings := []models.Holding{{Ticker: "ZZZZ", Percentage: 100}}

	metrics, err := ComputeStaticMetrics(holdings)

	require.NoError(t, err)
	assert.InDelta(t, 0.10, metrics.ExpectedReturn, 1e-9)
	assert.InDelta(t, 1.0, metrics.AssetClassWeights[classifier.USLargeCap], 1e-9)
}

func TestComputeStaticMetrics_WeightSumViolation(t *testing.T) {
	holdings := []models.Holding{
		{Ticker: "SPY", Percentage: 60},
		{Ticker: "AGG", Percentage: 30},
	}

	_, err := ComputeStaticMetrics(holdings)

	require.Error(t, err)
	assert.True(t, models.IsInputError(err))
}

func TestComputeStaticMetrics_SameClassWeightsMerge(t *testing.T) {
	holdings := []models.Holding{
		{Ticker: "SPY", Percentage: 50},
		{Ticker: "VOO", Percentage: 50},
	}

	metrics, err := ComputeStaticMetrics(holdings)

	require.NoError(t, err)
	require.Len(t, metrics.AssetClassWeights, 1)
	assert.InDelta(t, 1.0, metrics.AssetClassWeights[classifier.USLargeCap], 1e-9)
}
