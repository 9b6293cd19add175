package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	devStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	prodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	outdatedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(1, 1, 0, 1)
)

// buildTypeStyle picks the color for a classification string.
func buildTypeStyle(buildType string) lipgloss.Style {
	switch buildType {
	case "development":
		return devStyle
	case "outdated":
		return outdatedStyle
	default:
		return prodStyle
	}
}
