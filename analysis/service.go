package analysis

import (
	"context"
	"errors"
	"log"
	"strings"

	"credcheck/inference"
	"credcheck/types"
)

// Inferrer abstracts the inference client so the orchestration logic can be
// exercised against fakes.
type Inferrer interface {
	Infer(ctx context.Context, text string) (*inference.Outcome, error)
}

// Recorder persists audit entries for authenticated callers.
type Recorder interface {
	Record(ctx context.Context, entry types.HistoryEntry) (types.HistoryEntry, error)
}

// Publisher emits an event for each completed analysis. Implementations are
// best-effort; a publish failure never reaches the caller.
type Publisher interface {
	AnalysisCompleted(ctx context.Context, ownerID string, article string, result types.AnalysisResult) error
}

// Archiver retains a copy of the submitted text and its result in external
// storage. Best-effort, like Publisher.
type Archiver interface {
	ArchiveAnalysis(ctx context.Context, article string, result types.AnalysisResult) error
}

// Service orchestrates one analysis: validate, infer, normalize, and
// best-effort record. It holds no mutable state; every request is
// independent and uses the same deadline policy.
type Service struct {
	inferrer  Inferrer
	recorder  Recorder
	publisher Publisher
	archiver  Archiver
}

// NewService wires the orchestrator. recorder, publisher, and archiver may
// each be nil when the corresponding backend is not configured.
func NewService(inferrer Inferrer, recorder Recorder, publisher Publisher, archiver Archiver) *Service {
	return &Service{
		inferrer:  inferrer,
		recorder:  recorder,
		publisher: publisher,
		archiver:  archiver,
	}
}

// Analyze validates the submission, runs one bounded inference call, and
// returns the normalized result. When ownerID is non-empty a history entry
// is recorded for that owner; recording failures are logged and reported
// through the returned recorded flag, never as the primary error. A failed
// inference call aborts the whole analysis with *UpstreamError.
func (s *Service) Analyze(ctx context.Context, rawText, ownerID string) (types.AnalysisResult, bool, error) {
	if strings.TrimSpace(rawText) == "" {
		return types.AnalysisResult{}, false, ErrInvalidInput
	}

	outcome, err := s.inferrer.Infer(ctx, rawText)
	if err != nil {
		var infErr *inference.Error
		if errors.As(err, &infErr) {
			return types.AnalysisResult{}, false, &UpstreamError{Kind: infErr.Kind, Detail: infErr.Detail}
		}
		return types.AnalysisResult{}, false, err
	}

	result := Normalize(outcome)

	recorded := false
	if ownerID != "" && s.recorder != nil {
		entry := types.EntryFromResult(ownerID, rawText, result)
		if _, err := s.recorder.Record(ctx, entry); err != nil {
			log.Printf("analysis: history record failed for owner %s: %v", ownerID, err)
		} else {
			recorded = true
		}
	}

	if s.publisher != nil {
		if err := s.publisher.AnalysisCompleted(ctx, ownerID, rawText, result); err != nil {
			log.Printf("analysis: event publish failed: %v", err)
		}
	}

	if s.archiver != nil {
		if err := s.archiver.ArchiveAnalysis(ctx, rawText, result); err != nil {
			log.Printf("analysis: archive failed: %v", err)
		}
	}

	return result, recorded, nil
}
