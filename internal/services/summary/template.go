package summary

import (
	"fmt"
	"strings"

	"github.com/PuneetFusion/portfolioanalyzer/internal/models"
)

// goodSharpeThreshold gates the qualitative sharpe-ratio clause in the
// fallback templates.
const goodSharpeThreshold = 0.5

// fallbackTemplates are the deterministic substitutes for a failed generative
// summary. Argument order: risk level, stocks %, bonds %, cash %, return %,
// risk %, sharpe ratio, sharpe description. Each variant covers every
// required topic keyword.
var fallbackTemplates = []string{
	"This %[1]s portfolio consists of %[2]s%% stocks, %[3]s%% bonds, and %[4]s%% cash. " +
		"Stocks offer growth potential but can be volatile, bonds provide steady income with lower risk, and cash offers stability. " +
		"The expected annual return is %[5]s%%, with an estimated risk of %[6]s%%. " +
		"The Sharpe ratio of %[7].2f indicates the portfolio's risk-adjusted performance. " +
		"Remember, past performance doesn't guarantee future results. Consider consulting a financial advisor for personalized advice.",
	"Your investment portfolio has a %[1]s approach, with %[2]s%% in stocks for growth, %[3]s%% in bonds for stability, and %[4]s%% in cash for security. " +
		"It aims for an annual return of %[5]s%%, with a risk level of %[6]s%%. " +
		"The Sharpe ratio (%[7].2f) suggests %[8]s. " +
		"Always keep in mind that investments can go up or down, and it's wise to seek advice from a professional financial advisor.",
	"This %[1]s portfolio balances %[2]s%% stocks, %[3]s%% bonds, and %[4]s%% cash. " +
		"Stocks can grow but fluctuate, bonds offer steadier returns, and cash provides a safety net. " +
		"Aiming for a %[5]s%% annual return with %[6]s%% risk, it has a Sharpe ratio of %[7].2f, indicating its efficiency. " +
		"Remember, financial markets can be unpredictable, so consider talking to a financial advisor about your specific goals.",
}

// fallbackSummary substitutes the analysis into a randomly chosen template.
// The choice is cosmetic variety, not a correctness concern; the selector is
// injectable for deterministic tests.
func (s *Service) fallbackSummary(analysis *models.AnalysisResult) string {
	if !analysis.HasDetailedMetrics() {
		return TemplateSummary(analysis)
	}

	template := fallbackTemplates[s.pick(len(fallbackTemplates))]

	sharpeDescription := "room for improvement in balancing return and risk"
	if *analysis.SharpeRatio > goodSharpeThreshold {
		sharpeDescription = "a good balance of return for the risk taken"
	}

	return fmt.Sprintf(template,
		analysis.RiskLevel,
		fmt.Sprintf("%.1f", analysis.EquityPercentage),
		fmt.Sprintf("%.1f", analysis.FixedIncomePercentage),
		fmt.Sprintf("%.1f", analysis.CashPercentage),
		fmt.Sprintf("%.2f", *analysis.ExpectedReturn*100),
		fmt.Sprintf("%.2f", *analysis.Risk*100),
		*analysis.SharpeRatio,
		sharpeDescription,
	)
}

// TemplateSummary is the deterministic template strategy. It substitutes the
// analysis fields into fixed prose blocks and omits the detailed-metrics
// paragraph when the analysis is partial.
func TemplateSummary(analysis *models.AnalysisResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Your portfolio holds %.1f%% stocks, %.1f%% bonds, and %.1f%% cash, a %s allocation. ",
		analysis.EquityPercentage, analysis.FixedIncomePercentage, analysis.CashPercentage, analysis.RiskLevel)
	b.WriteString(analysis.RiskLevel.Description())

	if analysis.HasDetailedMetrics() {
		fmt.Fprintf(&b, " The expected annual return is %.2f%% with an estimated annual risk of %.2f%%. ",
			*analysis.ExpectedReturn*100, *analysis.Risk*100)
		fmt.Fprintf(&b, "The Sharpe ratio of %.2f measures return earned per unit of risk taken.",
			*analysis.SharpeRatio)
	} else {
		b.WriteString(" Detailed return and risk metrics are unavailable right now, so only the allocation breakdown is shown.")
	}

	b.WriteString(" Past performance doesn't guarantee future results; consider consulting a financial advisor for personalized advice.")

	return b.String()
}
