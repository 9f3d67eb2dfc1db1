package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"credcheck/history"
	"credcheck/types"
)

// RecordHistoryRequest represents the request to record an audit entry
type RecordHistoryRequest struct {
	Article         string `json:"article" binding:"required"`
	NewsCorrect     bool   `json:"news_correct"`
	FormatCorrect   bool   `json:"format_correct"`
	FactCheck       bool   `json:"fact_check"`
	LanguageQuality bool   `json:"language_quality"`
}

// handleRecordHistory persists an entry for the authenticated caller.
func (s *Server) handleRecordHistory(c *gin.Context) {
	var req RecordHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := types.HistoryEntry{
		OwnerID:         identity(c),
		Article:         req.Article,
		NewsCorrect:     req.NewsCorrect,
		FormatCorrect:   req.FormatCorrect,
		FactCheck:       req.FactCheck,
		LanguageQuality: req.LanguageQuality,
	}

	saved, err := s.store.Record(c.Request.Context(), entry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record history: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, saved)
}

// handleListHistory returns the caller's entries, newest first.
func (s *Server) handleListHistory(c *gin.Context) {
	entries, err := s.store.List(c.Request.Context(), identity(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list history: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// handleDeleteHistory deletes one of the caller's entries. An entry owned
// by someone else looks identical to a missing one.
func (s *Server) handleDeleteHistory(c *gin.Context) {
	err := s.store.Delete(c.Request.Context(), identity(c), c.Param("id"))
	if errors.Is(err, history.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "history not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete history: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
