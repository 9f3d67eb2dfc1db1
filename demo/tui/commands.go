package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"credcheck/demo/client"
)

// warmUp probes the service health, warming a cold inference backend.
func warmUp(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		inference, err := c.Health(context.Background())
		return WarmUpMsg{Inference: inference, Err: err}
	}
}

// analyze submits the text for analysis.
func analyze(c *client.Client, text string) tea.Cmd {
	return func() tea.Msg {
		result, err := c.Analyze(context.Background(), text)
		return AnalysisMsg{Result: result, Err: err}
	}
}

// loadHistory fetches the caller's audit entries.
func loadHistory(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		entries, err := c.ListHistory(context.Background())
		return HistoryMsg{Entries: entries, Err: err}
	}
}

// deleteEntry deletes one entry and reloads the listing.
func deleteEntry(c *client.Client, id string) tea.Cmd {
	return func() tea.Msg {
		err := c.DeleteHistory(context.Background(), id)
		return DeletedMsg{ID: id, Err: err}
	}
}
