package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	warnStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	okStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

// botStyle colours a bot's short label with the colour the portal assigned.
func botStyle(color string) lipgloss.Style {
	if color == "" {
		return titleStyle
	}
	return titleStyle.Foreground(lipgloss.Color(color))
}
