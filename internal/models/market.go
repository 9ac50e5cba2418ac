package models

import (
	"time"
)

// EODBar represents a single day's price data.
type EODBar struct {
	Date     time.Time `json:"date"`
	Open     float64   `json:"open"`
	High     float64   `json:"high"`
	Low      float64   `json:"low"`
	Close    float64   `json:"close"`
	AdjClose float64   `json:"adj_close"`
	Volume   int64     `json:"volume"`
}

// PriceTable holds aligned adjusted-close history for a set of tickers.
// Tickers preserves request order; every ticker has an entry in Series.
type PriceTable struct {
	Tickers []string            `json:"tickers"`
	Series  map[string][]EODBar `json:"series"`
}

// NewPriceTable creates an empty table for the given tickers.
func NewPriceTable(tickers []string) *PriceTable {
	return &PriceTable{
		Tickers: tickers,
		Series:  make(map[string][]EODBar, len(tickers)),
	}
}

// MinLength returns the shortest series length across all tickers, or 0 for
// an empty table.
func (t *PriceTable) MinLength() int {
	if len(t.Tickers) == 0 {
		return 0
	}
	min := -1
	for _, ticker := range t.Tickers {
		n := len(t.Series[ticker])
		if min < 0 || n < min {
			min = n
		}
	}
	return min
}

// AssetClassProfile holds static return/risk assumptions for one asset class.
// Used when live market data is unavailable or not configured.
type AssetClassProfile struct {
	Name           string      `json:"name"`
	ExpectedReturn float64     `json:"expected_return"`
	Risk           float64     `json:"risk"`
	Type           HoldingType `json:"type"`
}
