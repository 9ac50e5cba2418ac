package server

import (
	"net/http"

	"github.com/PuneetFusion/portfolioanalyzer/internal/common"
	"github.com/PuneetFusion/portfolioanalyzer/internal/models"
)

// analyzeRequest is the common request body for the analysis endpoints.
// Holdings is free text, one "TICKER PERCENTAGE" pair per line.
type analyzeRequest struct {
	Holdings string `json:"holdings"`
}

// parseAndAnalyze runs the shared parse-validate-analyze sequence. On failure
// it writes the error response and returns nil.
func (s *Server) parseAndAnalyze(w http.ResponseWriter, r *http.Request) *models.AnalysisResult {
	var req analyzeRequest
	if !DecodeJSON(w, r, &req) {
		return nil
	}
	if req.Holdings == "" {
		WriteError(w, http.StatusBadRequest, "Please enter your portfolio details before analyzing")
		return nil
	}

	portfolio, warnings := models.ParseHoldings(req.Holdings)

	result, err := s.app.AnalyzerService.Analyze(r.Context(), portfolio)
	if err != nil {
		if models.IsInputError(err) {
			WriteError(w, http.StatusBadRequest, err.Error())
		} else {
			WriteError(w, http.StatusInternalServerError, "Analysis failed: "+err.Error())
		}
		return nil
	}

	// Parser warnings surface alongside any degradation warnings.
	result.Warnings = append(warnings, result.Warnings...)

	return result
}

// handleAnalyze returns the analysis record plus the deterministic report.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	result := s.parseAndAnalyze(w, r)
	if result == nil {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"analysis": result,
		"report":   s.app.SummaryService.RenderDetailed(result),
	})
}

// handleSummary returns the prose summary, generated when a backend is
// configured and falling back to templates otherwise.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	result := s.parseAndAnalyze(w, r)
	if result == nil {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"analysis": result,
		"summary":  s.app.SummaryService.GenerateSummary(r.Context(), result),
	})
}

// handleChart returns the allocation chart as a PNG image.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	result := s.parseAndAnalyze(w, r)
	if result == nil {
		return
	}

	png, err := s.app.SummaryService.RenderAllocationChart(result)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Chart render failed: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// handleHealth responds to GET/HEAD /api/health with {"status":"ok"}.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleVersion responds to GET/HEAD /api/version with version info.
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}
