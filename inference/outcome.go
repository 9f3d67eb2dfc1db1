package inference

import (
	"fmt"

	"credcheck/types"
)

// Outcome is the raw payload returned by the inference service for one
// prediction. FactCheck is optional upstream; the analysis layer fills in
// a default when it is absent.
type Outcome struct {
	Prediction string           `json:"prediction"`
	Confidence float64          `json:"confidence"`
	FactCheck  *types.FactCheck `json:"factCheck,omitempty"`
}

// FailureKind classifies why an inference call produced no usable outcome.
type FailureKind string

const (
	// FailureTimeout means the configured deadline expired and the
	// in-flight call was cancelled.
	FailureTimeout FailureKind = "timeout"
	// FailureUnreachable covers transport-level failures: refused
	// connections, DNS errors, resets.
	FailureUnreachable FailureKind = "unreachable"
	// FailureBadStatus means the service answered with a non-2xx status.
	FailureBadStatus FailureKind = "bad_status"
	// FailureMalformedBody means the response body could not be decoded
	// into the expected shape.
	FailureMalformedBody FailureKind = "malformed_body"
)

// Error is a typed inference failure. Callers surface Kind and Detail
// verbatim; no fabricated result ever substitutes for a failed call.
type Error struct {
	Kind   FailureKind
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("inference %s: %s", e.Kind, e.Detail)
}
