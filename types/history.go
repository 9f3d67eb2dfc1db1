package types

import "time"

// HistoryEntry is an append-only audit record of one analysis outcome,
// tagged with the identity that produced it. OwnerID never changes after
// creation and gates every read and delete.
type HistoryEntry struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"owner_id"`
	Article         string    `json:"article"`
	NewsCorrect     bool      `json:"news_correct"`
	FormatCorrect   bool      `json:"format_correct"`
	FactCheck       bool      `json:"fact_check"`
	LanguageQuality bool      `json:"language_quality"`
	CreatedAt       time.Time `json:"created_at"`
}

// EntryFromResult derives the audit fields recorded for a successful
// analysis. LanguageQuality is a fixed placeholder; no independent
// language-quality signal is computed.
func EntryFromResult(ownerID, article string, result AnalysisResult) HistoryEntry {
	factual := result.FactCheck.Verdict == VerdictTrue
	return HistoryEntry{
		OwnerID:         ownerID,
		Article:         article,
		NewsCorrect:     factual,
		FormatCorrect:   result.Structure == StructureWellFormed,
		FactCheck:       factual,
		LanguageQuality: true,
	}
}
