package analysis

import (
	"errors"
	"fmt"

	"credcheck/inference"
)

// ErrInvalidInput rejects submissions that are empty after trimming.
// Validation runs before any network call.
var ErrInvalidInput = errors.New("no text provided")

// UpstreamError reports that the inference call failed. The analysis is
// aborted whole: no partial or guessed result accompanies it.
type UpstreamError struct {
	Kind   inference.FailureKind
	Detail string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("inference service unavailable (%s): %s", e.Kind, e.Detail)
}
