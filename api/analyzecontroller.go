package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"credcheck/analysis"
	"credcheck/types"
)

// AnalyzeRequest represents the request to analyze a piece of text
type AnalyzeRequest struct {
	Text string `json:"text"`
}

// AnalyzeResponse is the analysis result plus, for authenticated callers,
// whether the audit entry was written. A failed audit write is reported
// here instead of failing the analysis.
type AnalyzeResponse struct {
	types.AnalysisResult
	Recorded *bool `json:"recorded,omitempty"`
}

// handleAnalyze runs one analysis. Anonymous callers get the result only;
// authenticated callers also get a history entry recorded best-effort.
func (s *Server) handleAnalyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ownerID := identity(c)

	result, recorded, err := s.analyzer.Analyze(c.Request.Context(), req.Text, ownerID)
	if err != nil {
		var upstream *analysis.UpstreamError
		switch {
		case errors.Is(err, analysis.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "no text provided"})
		case errors.As(err, &upstream):
			c.JSON(http.StatusBadGateway, gin.H{
				"error":  "inference service unavailable",
				"kind":   string(upstream.Kind),
				"detail": upstream.Detail,
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	resp := AnalyzeResponse{AnalysisResult: result}
	if ownerID != "" {
		resp.Recorded = &recorded
	}

	c.JSON(http.StatusOK, resp)
}
