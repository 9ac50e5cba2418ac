package summary

import (
	"fmt"
	"sort"
	"strings"

	"github.com/PuneetFusion/portfolioanalyzer/internal/models"
)

// Output length bounds passed to the generative backend.
const (
	minSummaryTokens = 300
	maxSummaryTokens = 400
)

// requiredKeywords are the topics a generated summary must cover. The check
// is a case-insensitive substring match.
var requiredKeywords = []string{
	"stocks", "bonds", "cash", "risk", "return", "sharpe ratio", "financial advisor",
}

// buildPrompt constructs the natural-language prompt for the generative
// backend from the analysis record.
func buildPrompt(analysis *models.AnalysisResult) string {
	var b strings.Builder

	b.WriteString("Summarize the following investment portfolio for a novice investor:\n\n")
	b.WriteString("Portfolio Composition:\n")
	fmt.Fprintf(&b, "- Stocks: %.1f%%\n", analysis.EquityPercentage)
	fmt.Fprintf(&b, "- Bonds: %.1f%%\n", analysis.FixedIncomePercentage)
	fmt.Fprintf(&b, "- Cash: %.1f%%\n", analysis.CashPercentage)

	if analysis.HasDetailedMetrics() {
		b.WriteString("\nKey Metrics:\n")
		fmt.Fprintf(&b, "- Expected Annual Return: %.2f%%\n", *analysis.ExpectedReturn*100)
		fmt.Fprintf(&b, "- Estimated Annual Risk: %.2f%%\n", *analysis.Risk*100)
		fmt.Fprintf(&b, "- Sharpe Ratio: %.2f\n", *analysis.SharpeRatio)
	}

	if len(analysis.AssetClassWeights) > 0 {
		b.WriteString("\nAsset Class Breakdown:\n")
		for _, line := range assetClassLines(analysis.AssetClassWeights) {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\nInstructions:\n")
	b.WriteString("1. Explain what stocks, bonds, and cash are in simple terms.\n")
	fmt.Fprintf(&b, "2. Describe the portfolio's risk level (%s) and what it means for the investor.\n", analysis.RiskLevel)
	b.WriteString("3. Explain what the Expected Annual Return and Estimated Annual Risk mean in practical terms.\n")
	b.WriteString("4. Briefly explain the Sharpe Ratio and its significance.\n")
	b.WriteString("5. Provide a cautionary note about past performance and suggest consulting a financial advisor.\n")
	b.WriteString("6. Keep the language simple and avoid jargon.\n")
	fmt.Fprintf(&b, "7. Write between %d and %d words.\n", minSummaryTokens, maxSummaryTokens)

	return b.String()
}

// assetClassLines renders non-zero asset-class weights as prompt bullet
// lines, sorted by name for a stable prompt.
func assetClassLines(weights map[string]float64) []string {
	names := make([]string, 0, len(weights))
	for name, w := range weights {
		if w > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("- %s: %.1f%%", titleCase(name), weights[name]*100))
	}
	return lines
}

// titleCase turns an asset-class identifier like "us_large_cap" into
// "Us Large Cap" for display.
func titleCase(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// postProcessSummary removes repeated lines, joins the remainder into a
// single paragraph and guarantees terminal punctuation.
func postProcessSummary(text string) string {
	var unique []string
	seen := make(map[string]bool)
	for _, line := range strings.Split(text, "\n") {
		if !seen[line] {
			seen[line] = true
			unique = append(unique, line)
		}
	}

	cleaned := strings.TrimSpace(strings.Join(unique, " "))
	if cleaned != "" && !strings.HasSuffix(cleaned, ".") {
		cleaned += "."
	}

	return cleaned
}

// validateSummary checks that the text covers every required topic. A
// failure means the generated output must not reach the display layer.
func validateSummary(text string) error {
	lower := strings.ToLower(text)
	var missing []string
	for _, kw := range requiredKeywords {
		if !strings.Contains(lower, kw) {
			missing = append(missing, kw)
		}
	}
	if len(missing) > 0 {
		return &models.GenerativeOutputInvalidError{MissingKeywords: missing}
	}
	return nil
}
