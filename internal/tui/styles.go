package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/rebus/internal/puzzle"
)

var (
	correctColor   = lipgloss.Color("#43BF6D")
	incorrectColor = lipgloss.Color("#FF5555")
	neutralColor   = lipgloss.AdaptiveColor{Light: "#1F1F1F", Dark: "#DDDDDD"}
	focusColor     = lipgloss.Color("#7D56F4")
	mutedColor     = lipgloss.Color("#626262")
)

var (
	titleStyle        = lipgloss.NewStyle().Bold(true).Foreground(focusColor)
	introStyle        = lipgloss.NewStyle().Foreground(neutralColor)
	sectionBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	cellStyle         = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Width(cellWidth).Align(lipgloss.Center)
	focusedCellStyle  = cellStyle.Copy().Bold(true).Underline(true)
	dialogBoxStyle    = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(correctColor).Padding(1, 3)
	dialogTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(correctColor)
	dialogTextStyle   = lipgloss.NewStyle().Foreground(neutralColor)
	helpBoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(mutedColor).Padding(0, 2)
	helpHeadingStyle  = lipgloss.NewStyle().Bold(true).Foreground(focusColor)
	helpStepNameStyle = lipgloss.NewStyle().Bold(true)
)

// statusColor maps a section status to the colour shared by its border,
// cells and hint.
func statusColor(status puzzle.Status) lipgloss.TerminalColor {
	switch status {
	case puzzle.Correct:
		return correctColor
	case puzzle.Incorrect:
		return incorrectColor
	default:
		return neutralColor
	}
}
