package interfaces

import (
	"context"

	"github.com/PuneetFusion/portfolioanalyzer/internal/models"
)

// AnalyzerService is the single entry point for portfolio analysis.
type AnalyzerService interface {
	// Analyze produces an AnalysisResult for the portfolio. The categorical
	// fields are guaranteed; detailed metrics are best-effort and absent when
	// market data was unavailable. Only invalid input returns an error.
	Analyze(ctx context.Context, portfolio *models.Portfolio) (*models.AnalysisResult, error)
}

// SummaryService renders an AnalysisResult as display text.
type SummaryService interface {
	// GenerateSummary produces a plain-language summary, preferring the
	// generative backend and falling back to templates when the output fails
	// validation or the backend is unavailable.
	GenerateSummary(ctx context.Context, analysis *models.AnalysisResult) string

	// RenderDetailed produces the deterministic markdown analysis report.
	RenderDetailed(analysis *models.AnalysisResult) string

	// RenderAllocationChart renders the asset allocation as a PNG.
	RenderAllocationChart(analysis *models.AnalysisResult) ([]byte, error)
}
