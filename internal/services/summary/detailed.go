package summary

import (
	"fmt"
	"strings"

	"github.com/PuneetFusion/portfolioanalyzer/internal/models"
)

// RenderDetailed produces the deterministic markdown analysis report shown
// alongside the prose summary. The key-metrics section is omitted for
// partial results.
func (s *Service) RenderDetailed(analysis *models.AnalysisResult) string {
	var b strings.Builder

	b.WriteString("## Portfolio Analysis\n\n")
	b.WriteString("### Composition\n\n")
	fmt.Fprintf(&b, "| Asset Type | Allocation |\n|---|---|\n")
	fmt.Fprintf(&b, "| Stocks | %.1f%% |\n", analysis.EquityPercentage)
	fmt.Fprintf(&b, "| Bonds | %.1f%% |\n", analysis.FixedIncomePercentage)
	fmt.Fprintf(&b, "| Cash | %.1f%% |\n", analysis.CashPercentage)

	fmt.Fprintf(&b, "\n**Risk Level:** %s (%s)\n", analysis.RiskLevel, analysis.RiskLevel.Description())

	if analysis.HasDetailedMetrics() {
		b.WriteString("\n### Key Metrics\n\n")
		fmt.Fprintf(&b, "- Expected Annual Return: %.2f%%\n", *analysis.ExpectedReturn*100)
		fmt.Fprintf(&b, "- Estimated Annual Risk: %.2f%%\n", *analysis.Risk*100)
		fmt.Fprintf(&b, "- Sharpe Ratio: %.2f\n", *analysis.SharpeRatio)
	}

	if len(analysis.AssetClassWeights) > 0 {
		b.WriteString("\n### Asset Class Breakdown\n\n")
		for _, line := range assetClassLines(analysis.AssetClassWeights) {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	for _, w := range analysis.Warnings {
		fmt.Fprintf(&b, "\n> Note: %s\n", w)
	}

	b.WriteString("\n*Past performance doesn't guarantee future results. Consult a financial advisor for personalized advice.*\n")

	return b.String()
}
