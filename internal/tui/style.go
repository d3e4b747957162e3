package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	emphStyle    = lipgloss.NewStyle().Bold(true)
)

// StyleSuccess renders text in the success color
func StyleSuccess(text string) string {
	return successStyle.Render(text)
}

// StyleError renders text in the error color
func StyleError(text string) string {
	return errorStyle.Render(text)
}

// StyleHint renders text dimmed, for remediation hints
func StyleHint(text string) string {
	return hintStyle.Render(text)
}

// StyleEmphasis renders text bold
func StyleEmphasis(text string) string {
	return emphStyle.Render(text)
}
