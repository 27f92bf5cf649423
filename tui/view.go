package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m model) View() string {
	if m.step == StepDone || m.cancelled {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("=== File Organizer ===") + "\n")

	b.WriteString(labelStyle.Render("Enter path to organize:") + "\n")
	b.WriteString(m.dirInput.View() + "\n")

	if m.step == StepVerbose {
		b.WriteString("\n" + labelStyle.Render("Show details? (y/n):") + "\n")
		b.WriteString(m.verboseInput.View() + "\n")
	}

	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.err.Error()) + "\n")
	}

	b.WriteString("\n" + hintStyle.Render("Enter to confirm • Esc/Ctrl+C to cancel") + "\n")

	return lipgloss.NewStyle().
		Padding(1).
		Render(b.String())
}
