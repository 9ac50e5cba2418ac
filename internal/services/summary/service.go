// Package summary renders analysis results as human-readable prose, either
// through deterministic templates or a generative backend with validation
// and fallback.
package summary

import (
	"context"
	"math/rand"

	"github.com/PuneetFusion/portfolioanalyzer/internal/common"
	"github.com/PuneetFusion/portfolioanalyzer/internal/interfaces"
	"github.com/PuneetFusion/portfolioanalyzer/internal/models"
)

// Service implements SummaryService.
type Service struct {
	backend interfaces.GenerativeClient
	pick    func(n int) int
	logger  *common.Logger
}

// ServiceOption configures the service.
type ServiceOption func(*Service)

// WithTemplatePicker overrides the random fallback-template selector. Tests
// use this to pin the choice.
func WithTemplatePicker(pick func(n int) int) ServiceOption {
	return func(s *Service) {
		s.pick = pick
	}
}

// NewService creates a summary service. backend may be nil, in which case
// every summary is template-based.
func NewService(backend interfaces.GenerativeClient, logger *common.Logger, opts ...ServiceOption) *Service {
	s := &Service{
		backend: backend,
		pick:    rand.Intn,
		logger:  logger,
	}
	if s.logger == nil {
		s.logger = common.NewSilentLogger()
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// GenerateSummary produces the display summary. The generative backend is
// used when configured and the analysis carries detailed metrics; its output
// is post-processed and validated, and replaced by a fallback template when
// validation fails. Template output is always a safe result, so this method
// never fails.
func (s *Service) GenerateSummary(ctx context.Context, analysis *models.AnalysisResult) string {
	if s.backend == nil || !analysis.HasDetailedMetrics() {
		return TemplateSummary(analysis)
	}

	raw, err := s.backend.Summarize(ctx, buildPrompt(analysis), minSummaryTokens, maxSummaryTokens)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Generative summary failed, using fallback template")
		return s.fallbackSummary(analysis)
	}

	cleaned := postProcessSummary(raw)
	if err := validateSummary(cleaned); err != nil {
		s.logger.Warn().Err(err).Msg("Generated summary failed validation, using fallback template")
		return s.fallbackSummary(analysis)
	}

	return cleaned
}

// Ensure Service implements SummaryService
var _ interfaces.SummaryService = (*Service)(nil)
