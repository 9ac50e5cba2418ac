package summary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PuneetFusion/portfolioanalyzer/internal/models"
)

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt(fullAnalysis())

	assert.Contains(t, prompt, "- Stocks: 60.0%")
	assert.Contains(t, prompt, "- Bonds: 30.0%")
	assert.Contains(t, prompt, "- Cash: 10.0%")
	assert.Contains(t, prompt, "Expected Annual Return: 6.50%")
	assert.Contains(t, prompt, "Estimated Annual Risk: 9.80%")
	assert.Contains(t, prompt, "Sharpe Ratio: 0.56")
	assert.Contains(t, prompt, "risk level (moderate)")
	assert.Contains(t, prompt, "- Us Large Cap: 60.0%")
	assert.Contains(t, prompt, "Write between 300 and 400 words")
}

func TestBuildPrompt_PartialOmitsMetricsSection(t *testing.T) {
	prompt := buildPrompt(partialAnalysis())

	assert.NotContains(t, prompt, "Key Metrics")
	assert.Contains(t, prompt, "- Stocks: 60.0%")
}

func TestBuildPrompt_StableAcrossCalls(t *testing.T) {
	analysis := fullAnalysis()
	assert.Equal(t, buildPrompt(analysis), buildPrompt(analysis), "map iteration must not leak into prompt order")
}

func TestPostProcessSummary(t *testing.T) {
	raw := "Line one\nLine two\nLine one\nLine three"

	got := postProcessSummary(raw)

	assert.Equal(t, "Line one Line two Line three.", got)
}

func TestPostProcessSummary_KeepsExistingPunctuation(t *testing.T) {
	assert.Equal(t, "Done.", postProcessSummary("Done."))
	assert.Equal(t, "", postProcessSummary("   \n  "))
}

func TestValidateSummary(t *testing.T) {
	require.NoError(t, validateSummary(validGenerated))
	require.NoError(t, validateSummary(strings.ToUpper(validGenerated)), "keyword match is case-insensitive")
}

func TestValidateSummary_ReportsMissingKeywords(t *testing.T) {
	err := validateSummary("stocks and bonds and cash and risk and return")

	require.Error(t, err)
	var invalid *models.GenerativeOutputInvalidError
	require.ErrorAs(t, err, &invalid)
	assert.ElementsMatch(t, []string{"sharpe ratio", "financial advisor"}, invalid.MissingKeywords)
}

func TestAssetClassLines_SortedAndNonZero(t *testing.T) {
	lines := assetClassLines(map[string]float64{
		"us_large_cap": 0.5,
		"cash":         0.2,
		"us_bonds":     0.3,
		"real_estate":  0,
	})

	require.Len(t, lines, 3, "zero weights are dropped")
	assert.Equal(t, "- Cash: 20.0%", lines[0])
	assert.Equal(t, "- Us Bonds: 30.0%", lines[1])
	assert.Equal(t, "- Us Large Cap: 50.0%", lines[2])
}
