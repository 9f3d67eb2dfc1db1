package tui

import (
	"fmt"
	"strings"
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("CredCheck"))
	b.WriteString("\n\n")

	if m.Inference == "unreachable" {
		b.WriteString(ErrorStyle.Render("Inference service unreachable; first analysis may fail"))
		b.WriteString("\n\n")
	}

	switch m.State {
	case StateInput:
		b.WriteString(InfoStyle.Render("Paste or type the text to check, then press Enter:"))
		b.WriteString("\n\n")
		b.WriteString(BoxStyle.Render(m.Input + "_"))
		b.WriteString("\n\n")
		footer := "Enter: analyze | Ctrl+C: quit"
		if m.Authed {
			footer += " | Ctrl+H: history"
		}
		b.WriteString(InfoStyle.Render(footer))
	case StateAnalyzing:
		b.WriteString(StatusStyle.Render("Analyzing... a cold inference service can take a couple of minutes"))
	case StateResult:
		b.WriteString(m.formatResult())
		b.WriteString("\n\n")
		footer := "n: new analysis | q: quit"
		if m.Authed {
			footer += " | h: history"
		}
		b.WriteString(InfoStyle.Render(footer))
	case StateHistory:
		b.WriteString(m.formatHistory())
		b.WriteString("\n\n")
		b.WriteString(InfoStyle.Render("j/k: move | x: delete | n: new analysis | q: quit"))
	case StateError:
		errMsg := "unknown error"
		if m.Err != nil {
			errMsg = m.Err.Error()
		}
		b.WriteString(ErrorStyle.Render("Error: " + errMsg))
		b.WriteString("\n\n")
		b.WriteString(InfoStyle.Render("n: try again | q: quit"))
	}

	b.WriteString("\n")
	return b.String()
}

// formatResult renders the analysis outcome.
func (m Model) formatResult() string {
	var b strings.Builder

	b.WriteString(HighlightStyle.Render("Analysis Result"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Structure:  %s\n", StatusStyle.Render(m.Result.Structure)))
	b.WriteString(fmt.Sprintf("Confidence: %s\n", StatusStyle.Render(fmt.Sprintf("%d%%", m.Result.Confidence))))
	b.WriteString(fmt.Sprintf("Verdict:    %s\n", StatusStyle.Render(m.Result.FactCheck.Verdict)))
	b.WriteString(fmt.Sprintf("Reason:     %s\n", InfoStyle.Render(m.Result.FactCheck.Reason)))

	if m.Result.Recorded != nil {
		if *m.Result.Recorded {
			b.WriteString("\n" + InfoStyle.Render("Saved to your history."))
		} else {
			b.WriteString("\n" + ErrorStyle.Render("Could not save to your history."))
		}
	}

	return BoxStyle.Render(b.String())
}

// formatHistory renders the owner's audit entries.
func (m Model) formatHistory() string {
	if len(m.History) == 0 {
		return InfoStyle.Render("No history yet.")
	}

	var b strings.Builder
	b.WriteString(HighlightStyle.Render("History"))
	b.WriteString("\n\n")

	for i, entry := range m.History {
		cursor := "  "
		if i == m.Selected {
			cursor = "> "
		}

		article := entry.Article
		if len(article) > 60 {
			article = article[:57] + "..."
		}

		verdict := "suspect"
		if entry.FormatCorrect {
			verdict = "well-formed"
		}

		line := fmt.Sprintf("%s%s  [%s]  %s", cursor, entry.CreatedAt.Local().Format("2006-01-02 15:04"), verdict, article)
		if i == m.Selected {
			b.WriteString(StatusStyle.Render(line))
		} else {
			b.WriteString(InfoStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}
