package analysis

import (
	"math"

	"credcheck/inference"
	"credcheck/types"
)

// defaultFactCheck substitutes for an absent or unrecognized upstream
// fact-check block.
var defaultFactCheck = types.FactCheck{
	Verdict: types.VerdictInsufficient,
	Reason:  "Not available",
}

// Normalize maps a raw inference outcome onto the stable result contract.
// The mapping is total and deterministic: a "Real" prediction becomes
// Well-structured, anything else Poorly-structured; confidence is rounded
// to an integer percent and clamped to [0,100]; a missing or malformed
// fact-check block is replaced with the default. Upstream confidence is
// reported as-is, never inflated.
func Normalize(outcome *inference.Outcome) types.AnalysisResult {
	structure := types.StructurePoorlyFormed
	if outcome.Prediction == "Real" {
		structure = types.StructureWellFormed
	}

	confidence := int(math.Round(outcome.Confidence * 100))
	if confidence < 0 {
		confidence = 0
	} else if confidence > 100 {
		confidence = 100
	}

	return types.AnalysisResult{
		Structure:  structure,
		Confidence: confidence,
		FactCheck:  normalizeFactCheck(outcome.FactCheck),
	}
}

func normalizeFactCheck(fc *types.FactCheck) types.FactCheck {
	if fc == nil {
		return defaultFactCheck
	}
	switch fc.Verdict {
	case types.VerdictTrue, types.VerdictFalse, types.VerdictInsufficient:
		return *fc
	default:
		return defaultFactCheck
	}
}
