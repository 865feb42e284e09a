package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	chipStyle       = lipgloss.NewStyle().Padding(0, 1)
	activeChipStyle = chipStyle.Reverse(true).Bold(true)
	selectedStyle   = lipgloss.NewStyle().Bold(true)
)

// badgeStyles colour the state badge of a row.
var badgeStyles = map[string]lipgloss.Style{
	"ok":      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	"waiting": lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	"failed":  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	"mail":    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
}
