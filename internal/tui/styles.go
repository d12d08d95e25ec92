package tui

import "github.com/charmbracelet/lipgloss"

// Styles defines the core UI styles
var (
	appStyle = lipgloss.NewStyle().
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7B61FF")).
			MarginBottom(1)

	acceptedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#73F59F"))

	rejectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F56E6E"))

	skippedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7B61FF")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5A9"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F56E6E")).
			Bold(true)
)
