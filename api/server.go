package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"credcheck/history"
	"credcheck/types"
)

// Analyzer runs one credibility analysis for the given text and optional
// caller identity. The returned bool reports whether an audit entry was
// written.
type Analyzer interface {
	Analyze(ctx context.Context, rawText, ownerID string) (types.AnalysisResult, bool, error)
}

// TokenVerifier resolves a bearer token into a user identifier.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// HealthChecker probes the upstream inference service.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Server bundles the dependencies the HTTP handlers need.
type Server struct {
	analyzer Analyzer
	store    history.Store
	verifier TokenVerifier
	health   HealthChecker
}

// NewServer creates the handler set for the given collaborators. health may
// be nil, in which case the health endpoint reports only service liveness.
func NewServer(analyzer Analyzer, store history.Store, verifier TokenVerifier, health HealthChecker) *Server {
	return &Server{
		analyzer: analyzer,
		store:    store,
		verifier: verifier,
		health:   health,
	}
}

// Router constructs a Gin engine with registered routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	r.POST("/api/analyze", s.optionalAuth(), s.handleAnalyze)

	h := r.Group("/api/history", s.requireAuth())
	h.POST("", s.handleRecordHistory)
	h.GET("", s.handleListHistory)
	h.DELETE("/:id", s.handleDeleteHistory)

	r.GET("/health", s.handleHealth)
	return r
}
