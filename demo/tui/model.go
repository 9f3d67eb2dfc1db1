package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"credcheck/demo/client"
	"credcheck/types"
)

// State represents the TUI screen state machine
type State string

const (
	StateInput     State = "input"
	StateAnalyzing State = "analyzing"
	StateResult    State = "result"
	StateHistory   State = "history"
	StateError     State = "error"
)

// Model represents the TUI client state (thin client)
type Model struct {
	Client *client.Client
	Authed bool

	State    State
	Input    string
	Result   *client.AnalyzeResult
	History  []types.HistoryEntry
	Selected int

	// Inference backend status reported by the warm-up probe.
	Inference string
	Err       error
}

// NewModel creates a new TUI model. authed reports whether a bearer token
// was supplied; history screens are only offered when it was.
func NewModel(c *client.Client, authed bool) Model {
	return Model{
		Client: c,
		Authed: authed,
		State:  StateInput,
	}
}

// Init implements tea.Model interface. The health probe doubles as a
// warm-up call for a cold inference service.
func (m Model) Init() tea.Cmd {
	return warmUp(m.Client)
}
