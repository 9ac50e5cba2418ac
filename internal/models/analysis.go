package models

// RiskLevel is the coarse risk tier derived from the equity percentage.
type RiskLevel string

const (
	RiskLevelAggressive   RiskLevel = "aggressive"
	RiskLevelModerate     RiskLevel = "moderate"
	RiskLevelConservative RiskLevel = "conservative"
)

// ClassifyRiskLevel maps an equity percentage to a risk tier. The thresholds
// are strict: exactly 70% or exactly 30% equity is moderate.
func ClassifyRiskLevel(equityPct float64) RiskLevel {
	switch {
	case equityPct > 70:
		return RiskLevelAggressive
	case equityPct < 30:
		return RiskLevelConservative
	default:
		return RiskLevelModerate
	}
}

// Description returns a plain-language explanation of the risk tier.
func (r RiskLevel) Description() string {
	switch r {
	case RiskLevelAggressive:
		return "An aggressive portfolio aims for high growth but can swing sharply in value."
	case RiskLevelConservative:
		return "A conservative portfolio favors stability and income over growth."
	default:
		return "A moderate portfolio balances growth potential against stability."
	}
}

// AnalysisResult is the normalized output of a portfolio analysis. The three
// percentage fields and RiskLevel are always present. The detailed metric
// fields are best-effort: nil when the detailed computation path was
// unavailable and the analysis degraded to a partial result.
type AnalysisResult struct {
	EquityPercentage      float64   `json:"equity_percentage"`
	FixedIncomePercentage float64   `json:"fixed_income_percentage"`
	CashPercentage        float64   `json:"cash_percentage"`
	RiskLevel             RiskLevel `json:"risk_level"`

	ExpectedReturn    *float64           `json:"expected_return,omitempty"`
	Risk              *float64           `json:"risk,omitempty"`
	SharpeRatio       *float64           `json:"sharpe_ratio,omitempty"`
	AssetClassWeights map[string]float64 `json:"asset_class_weights,omitempty"`

	Warnings []string `json:"warnings,omitempty"`
}

// HasDetailedMetrics reports whether the detailed computation path succeeded.
func (r *AnalysisResult) HasDetailedMetrics() bool {
	return r.ExpectedReturn != nil && r.Risk != nil && r.SharpeRatio != nil
}

// Float64Ptr returns a pointer to v. Helper for the optional metric fields.
func Float64Ptr(v float64) *float64 {
	return &v
}
