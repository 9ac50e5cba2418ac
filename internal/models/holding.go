package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PercentTolerance is how far the holding percentages may drift from 100
// before the portfolio is rejected.
const PercentTolerance = 0.01

// HoldingType is a coarse security-type classification.
type HoldingType string

const (
	HoldingTypeEquity      HoldingType = "equity"
	HoldingTypeFixedIncome HoldingType = "fixed_income"
	HoldingTypeCash        HoldingType = "cash"
)

// Holding represents a single position: ticker plus percentage weight.
// Immutable once parsed.
type Holding struct {
	Ticker     string      `json:"ticker"`
	Percentage float64     `json:"percentage"`
	Type       HoldingType `json:"type,omitempty"`
}

// Weight returns the holding's fractional weight (percentage / 100).
func (h Holding) Weight() float64 {
	return h.Percentage / 100.0
}

// Portfolio is an ordered list of holdings.
type Portfolio struct {
	Holdings []Holding `json:"holdings"`
}

// TotalPercentage sums the holding percentages.
func (p *Portfolio) TotalPercentage() float64 {
	total := 0.0
	for _, h := range p.Holdings {
		total += h.Percentage
	}
	return total
}

// Validate checks the weight-sum invariant: percentages must total 100 within
// PercentTolerance. Violations are InputErrors and refuse analysis.
func (p *Portfolio) Validate() error {
	if len(p.Holdings) == 0 {
		return NewInputError("portfolio has no holdings")
	}
	total := p.TotalPercentage()
	if math.Abs(total-100.0) > PercentTolerance {
		return NewInputError("total portfolio percentage is %.2f%%, it should add up to 100%%", total)
	}
	return nil
}

// ParseHoldings parses free text into a Portfolio. Each line is a
// whitespace-separated "TICKER PERCENTAGE" pair. Lines that fail to parse are
// skipped and reported as warnings; they never abort the batch.
func ParseHoldings(text string) (*Portfolio, []string) {
	var holdings []Holding
	var warnings []string

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			warnings = append(warnings, fmt.Sprintf("line %d: expected 'TICKER PERCENTAGE', got %q", i+1, line))
			continue
		}

		pct, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("line %d: invalid percentage %q", i+1, fields[1]))
			continue
		}
		if pct < 0 || pct > 100 {
			warnings = append(warnings, fmt.Sprintf("line %d: percentage %.2f out of range [0, 100]", i+1, pct))
			continue
		}

		holdings = append(holdings, Holding{
			Ticker:     strings.ToUpper(fields[0]),
			Percentage: pct,
		})
	}

	return &Portfolio{Holdings: holdings}, warnings
}
