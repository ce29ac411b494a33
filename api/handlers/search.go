// ABOUTME: Search handler for the product curation endpoint
// ABOUTME: Validates keyword batches and returns curated, deduplicated product lists

package handlers

import (
	"encoding/json"
	"net/http"

	"curapick-app-api/core/curation"
	"curapick-app-api/core/domain"
	coreerrors "curapick-app-api/core/errors"
	"curapick-app-api/core/interfaces"
)

// SearchHandler handles POST /api/search
type SearchHandler struct {
	service interfaces.CurationService
	logger  interfaces.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(service interfaces.CurationService, logger interfaces.Logger) *SearchHandler {
	return &SearchHandler{
		service: service,
		logger:  logger,
	}
}

// searchRequest is the inbound request body
type searchRequest struct {
	Keywords []string `json:"keywords"`
}

// searchResponse is the response body. Error is set only when the
// pipeline degraded to placeholder products; the status stays 200.
type searchResponse struct {
	Success  bool                    `json:"success"`
	Products []domain.CuratedProduct `json:"products"`
	Total    int                     `json:"total"`
	Keywords []string                `json:"keywords"`
	Quality  string                  `json:"quality"`
	Error    string                  `json:"error,omitempty"`
}

// Search handles the POST /api/search endpoint
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgKeywordsRequired)
		return
	}
	if len(req.Keywords) == 0 {
		writeError(w, http.StatusBadRequest, msgKeywordsRequired)
		return
	}

	result, err := h.service.CurateProducts(r.Context(), req.Keywords)
	if err != nil {
		if coreerrors.IsValidation(err) {
			writeError(w, http.StatusBadRequest, msgKeywordsRequired)
			return
		}

		// Well-formed requests never fail hard: degrade to placeholders.
		h.logger.Error("Curation failed past service-level recovery", map[string]interface{}{
			"error": err.Error(),
		})
		h.writeDegraded(w, req.Keywords)
		return
	}

	resp := searchResponse{
		Success:  true,
		Products: result.Products,
		Total:    len(result.Products),
		Keywords: result.Keywords,
		Quality:  result.Quality,
	}
	if result.Degraded {
		resp.Error = msgSearchFailed
	}

	writeJSON(w, http.StatusOK, resp)
}

// writeDegraded answers with the placeholder product set and an error
// marker, still HTTP 200.
func (h *SearchHandler) writeDegraded(w http.ResponseWriter, keywords []string) {
	keyword := "건강보조식품"
	if len(keywords) > 0 && keywords[0] != "" {
		keyword = keywords[0]
	}

	products := curation.PlaceholderProducts(keyword)
	writeJSON(w, http.StatusOK, searchResponse{
		Success:  true,
		Products: products,
		Total:    len(products),
		Keywords: keywords,
		Quality:  "fallback_sample",
		Error:    msgSearchFailed,
	})
}
