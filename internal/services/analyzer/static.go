package analyzer

import (
	"math"

	"github.com/PuneetFusion/portfolioanalyzer/internal/models"
	"github.com/PuneetFusion/portfolioanalyzer/internal/services/classifier"
)

// WeightTolerance is how far fractional holding weights may drift from 1.0
// in the static model before analysis fails.
const WeightTolerance = 0.0001

// StaticMetrics holds the output of the assumption-based model.
type StaticMetrics struct {
	ExpectedReturn    float64
	Risk              float64
	SharpeRatio       float64
	AssetClassWeights map[string]float64
}

// ComputeStaticMetrics estimates return and risk from fixed per-asset-class
// assumptions instead of price history. Risk is a simple weighted sum, not a
// variance-covariance aggregate: cross-asset correlation is deliberately
// ignored in this model.
//
// The ratio here subtracts the cash-class return as a risk-free proxy, unlike
// the live-data path in calculator.go. The divergence is intentional (see
// DESIGN.md).
func ComputeStaticMetrics(holdings []models.Holding) (*StaticMetrics, error) {
	totalWeight := 0.0
	for _, h := range holdings {
		totalWeight += h.Weight()
	}
	if math.Abs(totalWeight-1.0) > WeightTolerance {
		return nil, models.NewInputError("holding weights sum to %.4f, expected 1.0", totalWeight)
	}

	expectedReturn := 0.0
	risk := 0.0
	weights := make(map[string]float64)

	for _, h := range holdings {
		profile := classifier.Profile(h.Ticker)
		w := h.Weight()
		expectedReturn += w * profile.ExpectedReturn
		risk += w * profile.Risk
		weights[profile.Name] += w
	}

	if risk == 0 {
		return nil, models.ErrZeroVolatility
	}

	riskFree := classifier.CashProfile().ExpectedReturn

	return &StaticMetrics{
		ExpectedReturn:    expectedReturn,
		Risk:              risk,
		SharpeRatio:       (expectedReturn - riskFree) / risk,
		AssetClassWeights: weights,
	}, nil
}
