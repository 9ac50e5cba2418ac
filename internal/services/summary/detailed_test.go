package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderDetailed(t *testing.T) {
	svc := NewService(nil, nil)

	report := svc.RenderDetailed(fullAnalysis())

	assert.Contains(t, report, "## Portfolio Analysis")
	assert.Contains(t, report, "| Stocks | 60.0% |")
	assert.Contains(t, report, "| Bonds | 30.0% |")
	assert.Contains(t, report, "| Cash | 10.0% |")
	assert.Contains(t, report, "**Risk Level:** moderate")
	assert.Contains(t, report, "### Key Metrics")
	assert.Contains(t, report, "Sharpe Ratio: 0.56")
	assert.Contains(t, report, "- Us Large Cap: 60.0%")
	assert.Contains(t, report, "financial advisor")
}

func TestRenderDetailed_PartialResult(t *testing.T) {
	svc := NewService(nil, nil)

	report := svc.RenderDetailed(partialAnalysis())

	assert.NotContains(t, report, "### Key Metrics")
	assert.Contains(t, report, "> Note: detailed metrics unavailable")
}

func TestRenderAllocationChart(t *testing.T) {
	svc := NewService(nil, nil)

	png, err := svc.RenderAllocationChart(fullAnalysis())

	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
