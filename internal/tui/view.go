package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

func (m *model) View() string {
	if m.completed {
		return m.dialogView()
	}
	parts := []string{m.headerView(), m.sectionsView()}
	if m.helpVisible {
		parts = append(parts, m.guideView())
	}
	parts = append(parts, m.help.View(m.keys))
	return joinNonEmpty(parts)
}

func (m *model) headerView() string {
	def := m.config.Puzzle
	lines := []string{}
	if def.Title != "" {
		lines = append(lines, titleStyle.Render(def.Title))
	}
	if strings.TrimSpace(def.Intro) != "" {
		lines = append(lines, introStyle.Render(wordwrap.String(def.Intro, m.layout.introWidth())))
	}
	return strings.Join(lines, "\n")
}

func (m *model) sectionsView() string {
	widths := make([]int, len(m.sections))
	for i, sv := range m.sections {
		widths[i] = sv.OuterWidth()
	}
	gap := strings.Repeat(" ", sectionGap)
	rows := []string{}
	for _, row := range packRows(widths, m.layout.contentWidth, sectionGap) {
		boxes := make([]string, 0, 2*len(row))
		for n, idx := range row {
			if n > 0 {
				boxes = append(boxes, gap)
			}
			boxes = append(boxes, m.sections[idx].View(m.board.Row(idx)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *model) guideView() string {
	wrap := m.layout.introWidth() - 6
	lines := []string{helpHeadingStyle.Render("How to play")}
	for _, step := range m.guide {
		text := helpStepNameStyle.Render(step.Title) + " " + step.Description
		lines = append(lines, wordwrap.String(text, wrap))
	}
	return helpBoxStyle.Render(strings.Join(lines, "\n"))
}

// dialogView renders the reward centred on the screen. There is no way to
// close it; the puzzle stays solved for the rest of the session.
func (m *model) dialogView() string {
	reward := m.config.Puzzle.Reward
	width := m.layout.dialogWidth()
	parts := []string{
		lipgloss.PlaceHorizontal(width, lipgloss.Center, dialogTitleStyle.Render(reward.Title)),
	}
	for _, paragraph := range reward.Paragraphs {
		text := wordwrap.String(strings.TrimSpace(paragraph), width)
		parts = append(parts, dialogTextStyle.Copy().Width(width).Align(lipgloss.Center).Render(text))
	}
	box := dialogBoxStyle.Render(strings.Join(parts, "\n\n"))
	return lipgloss.Place(m.layout.windowWidth, m.layout.windowHeight, lipgloss.Center, lipgloss.Center, box)
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}
