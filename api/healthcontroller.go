package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleHealth reports service liveness and, when a checker is wired,
// whether the inference service is currently reachable. Callers use this to
// pre-warm a cold inference service before submitting.
func (s *Server) handleHealth(c *gin.Context) {
	resp := gin.H{"status": "ok"}

	if s.health != nil {
		if err := s.health.Health(c.Request.Context()); err != nil {
			resp["inference"] = "unreachable"
		} else {
			resp["inference"] = "ok"
		}
	}

	c.JSON(http.StatusOK, resp)
}
