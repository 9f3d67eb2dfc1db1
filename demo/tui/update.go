package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case WarmUpMsg:
		return m.handleWarmUp(msg)
	case AnalysisMsg:
		return m.handleAnalysis(msg)
	case HistoryMsg:
		return m.handleHistory(msg)
	case DeletedMsg:
		return m.handleDeleted(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.State {
	case StateInput:
		return m.handleInputKey(msg)
	case StateResult, StateError:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "n":
			m.State = StateInput
			m.Input = ""
			m.Err = nil
			return m, nil
		case "h":
			if m.Authed {
				m.State = StateHistory
				return m, loadHistory(m.Client)
			}
		}
	case StateHistory:
		return m.handleHistoryKey(msg)
	}
	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		if strings.TrimSpace(m.Input) == "" {
			return m, nil
		}
		m.State = StateAnalyzing
		return m, analyze(m.Client, m.Input)
	case tea.KeyBackspace:
		if len(m.Input) > 0 {
			runes := []rune(m.Input)
			m.Input = string(runes[:len(runes)-1])
		}
	case tea.KeySpace:
		m.Input += " "
	case tea.KeyRunes:
		m.Input += string(msg.Runes)
	case tea.KeyCtrlH:
		if m.Authed {
			m.State = StateHistory
			return m, loadHistory(m.Client)
		}
	case tea.KeyEsc:
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "n", "esc":
		m.State = StateInput
		m.Input = ""
		return m, nil
	case "j", "down":
		if m.Selected < len(m.History)-1 {
			m.Selected++
		}
	case "k", "up":
		if m.Selected > 0 {
			m.Selected--
		}
	case "x":
		if m.Selected < len(m.History) {
			return m, deleteEntry(m.Client, m.History[m.Selected].ID)
		}
	}
	return m, nil
}

func (m Model) handleWarmUp(msg WarmUpMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.Inference = "unknown"
		return m, nil
	}
	m.Inference = msg.Inference
	return m, nil
}

func (m Model) handleAnalysis(msg AnalysisMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}
	m.Result = msg.Result
	m.State = StateResult
	return m, nil
}

func (m Model) handleHistory(msg HistoryMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}
	m.History = msg.Entries
	if m.Selected >= len(m.History) {
		m.Selected = 0
	}
	return m, nil
}

func (m Model) handleDeleted(msg DeletedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}
	return m, loadHistory(m.Client)
}
