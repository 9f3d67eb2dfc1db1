package types

// Structure labels assigned to analyzed text.
const (
	StructureWellFormed   = "Well-structured"
	StructurePoorlyFormed = "Poorly-structured"
)

// Fact-check verdicts returned by the inference service.
const (
	VerdictTrue         = "TRUE"
	VerdictFalse        = "FALSE"
	VerdictInsufficient = "INSUFFICIENT_INFORMATION"
)

// FactCheck carries the verdict and a short explanation for the analyzed text.
type FactCheck struct {
	Verdict string `json:"verdict"`
	Reason  string `json:"reason"`
}

// AnalysisResult is the stable contract returned to callers regardless of
// what the upstream inference payload looked like. FactCheck is always
// populated; Confidence is an integer percent in [0,100].
type AnalysisResult struct {
	Structure  string    `json:"structure"`
	Confidence int       `json:"confidence"`
	FactCheck  FactCheck `json:"factCheck"`
}
