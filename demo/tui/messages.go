package tui

import (
	"credcheck/demo/client"
	"credcheck/types"
)

// WarmUpMsg is sent when the startup health probe completes
type WarmUpMsg struct {
	Inference string
	Err       error
}

// AnalysisMsg is sent when an analyze call completes
type AnalysisMsg struct {
	Result *client.AnalyzeResult
	Err    error
}

// HistoryMsg is sent when a history listing completes
type HistoryMsg struct {
	Entries []types.HistoryEntry
	Err     error
}

// DeletedMsg is sent when a history delete completes
type DeletedMsg struct {
	ID  string
	Err error
}
