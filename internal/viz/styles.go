package viz

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(12)

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	StableStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	UnstableStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff4444"))

	DiagramStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Field formats a label/value report line.
func Field(label string, format string, args ...any) string {
	return LabelStyle.Render(label) + ValueStyle.Render(fmt.Sprintf(format, args...))
}

// StabilityBadge renders a colored stable/unstable marker for one side.
func StabilityBadge(stable bool) string {
	if stable {
		return StableStyle.Render("stable")
	}
	return UnstableStyle.Render("unstable")
}
