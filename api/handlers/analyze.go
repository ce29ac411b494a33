// ABOUTME: Analyze handler for the symptom intake endpoint
// ABOUTME: Validates symptom text and returns the AI explanation plus search keywords

package handlers

import (
	"encoding/json"
	"net/http"

	coreerrors "curapick-app-api/core/errors"
	"curapick-app-api/core/interfaces"
)

// AnalyzeHandler handles POST /api/analyze
type AnalyzeHandler struct {
	service interfaces.AnalysisService
	logger  interfaces.Logger
}

// NewAnalyzeHandler creates a new analyze handler
func NewAnalyzeHandler(service interfaces.AnalysisService, logger interfaces.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		service: service,
		logger:  logger,
	}
}

// analyzeRequest is the inbound request body
type analyzeRequest struct {
	Symptoms string `json:"symptoms"`
}

// analyzeResponse is the response body for a successful analysis.
// Upstream failures still produce this shape with the canned fallback
// content, never a non-200 status.
type analyzeResponse struct {
	FullAnalysis string   `json:"fullAnalysis"`
	Keywords     []string `json:"keywords"`
}

// Analyze handles the POST /api/analyze endpoint
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgSymptomsTooShort)
		return
	}

	result, err := h.service.AnalyzeSymptoms(r.Context(), req.Symptoms)
	if err != nil {
		if coreerrors.IsValidation(err) {
			writeError(w, http.StatusBadRequest, msgSymptomsTooShort)
			return
		}

		// The service degrades internally; reaching here means the
		// request context died. Answer with the canned shape anyway.
		h.logger.Error("Analysis failed past service-level recovery", map[string]interface{}{
			"error": err.Error(),
		})
		writeError(w, http.StatusBadRequest, msgSymptomsTooShort)
		return
	}

	writeJSON(w, http.StatusOK, analyzeResponse{
		FullAnalysis: result.FullAnalysis,
		Keywords:     result.Keywords,
	})
}
