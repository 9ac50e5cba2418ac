package analyzer

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/PuneetFusion/portfolioanalyzer/internal/models"
)

// TradingDaysPerYear is the annualization factor for daily bars.
const TradingDaysPerYear = 252

// PortfolioMetrics holds annualized statistics for a weighted portfolio.
type PortfolioMetrics struct {
	ExpectedReturn float64
	Volatility     float64
	SharpeRatio    float64
}

// PeriodicReturns converts adjusted-close bars into simple fractional returns
// between consecutive periods. The first period has no predecessor and is
// dropped.
func PeriodicReturns(bars []models.EODBar) []float64 {
	if len(bars) < 2 {
		return nil
	}
	returns := make([]float64, 0, len(bars)-1)
	for i := 1; i < len(bars); i++ {
		prev := bars[i-1].AdjClose
		if prev == 0 {
			returns = append(returns, 0)
			continue
		}
		returns = append(returns, (bars[i].AdjClose-prev)/prev)
	}
	return returns
}

// ComputePortfolioMetrics computes annualized return, volatility and the
// risk-adjusted ratio for a weighted set of price series. Weights follow the
// order of table.Tickers and sum to the non-cash fraction of the portfolio.
//
// Volatility uses the full sample covariance matrix (w' * (Cov * 252) * w).
// The ratio divides return by volatility without subtracting a risk-free
// rate; the static model in static.go does subtract one. Both behaviors are
// deliberate (see DESIGN.md).
func ComputePortfolioMetrics(table *models.PriceTable, weights []float64) (*PortfolioMetrics, error) {
	n := len(table.Tickers)
	if n == 0 {
		return nil, fmt.Errorf("no price series to compute metrics from")
	}
	if len(weights) != n {
		return nil, fmt.Errorf("weight count %d does not match ticker count %d", len(weights), n)
	}

	// Convert each series to periodic returns, trimming to a common length
	// (the tail keeps the most recent observations aligned).
	allReturns := make([][]float64, n)
	minLen := -1
	for i, ticker := range table.Tickers {
		r := PeriodicReturns(table.Series[ticker])
		if len(r) == 0 {
			return nil, fmt.Errorf("ticker %s: need at least 2 price bars, got %d", ticker, len(table.Series[ticker]))
		}
		allReturns[i] = r
		if minLen < 0 || len(r) < minLen {
			minLen = len(r)
		}
	}
	if minLen < 2 {
		return nil, fmt.Errorf("need at least 2 return observations, got %d", minLen)
	}
	for i := range allReturns {
		allReturns[i] = allReturns[i][len(allReturns[i])-minLen:]
	}

	// Annualized weighted return.
	expectedReturn := 0.0
	for i := range allReturns {
		expectedReturn += weights[i] * stat.Mean(allReturns[i], nil) * TradingDaysPerYear
	}

	// Annualized covariance matrix, then portfolio variance w' * Sigma * w.
	sigma := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			cov := stat.Covariance(allReturns[i], allReturns[j], nil) * TradingDaysPerYear
			sigma.SetSym(i, j, cov)
		}
	}

	w := mat.NewVecDense(n, weights)
	variance := mat.Inner(w, sigma, w)
	if variance < 0 {
		variance = 0
	}
	volatility := math.Sqrt(variance)

	// Degenerate inputs (constant prices, zero weights) produce zero
	// volatility; the ratio is undefined and the caller must degrade.
	if volatility == 0 {
		return nil, models.ErrZeroVolatility
	}

	return &PortfolioMetrics{
		ExpectedReturn: expectedReturn,
		Volatility:     volatility,
		SharpeRatio:    expectedReturn / volatility,
	}, nil
}
