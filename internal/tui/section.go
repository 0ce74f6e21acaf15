package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/rebus/internal/puzzle"
)

// sectionHooks are the callbacks a section uses to talk to the root.
type sectionHooks struct {
	OnGuessChange    func(cell int, value string)
	FocusNextSection func() tea.Cmd
	FocusPrevSection func() tea.Cmd
}

// sectionView renders one clue: a row of single-character cells over its
// hint. It owns the keystroke rules for its own cells.
type sectionView struct {
	index   int
	letters []string
	hint    string
	inputs  []textinput.Model
	refs    *focusRegistry
	erase   key.Binding
	hooks   sectionHooks
}

func newSectionView(index int, section puzzle.Section, refs *focusRegistry, keys keyMap, hooks sectionHooks) *sectionView {
	s := &sectionView{
		index:   index,
		letters: append([]string(nil), section.Letters...),
		hint:    section.Hint,
		inputs:  make([]textinput.Model, len(section.Letters)),
		refs:    refs,
		erase:   keys.Erase,
		hooks:   hooks,
	}
	for i := range s.inputs {
		// No CharLimit: the input would keep the first pasted rune, the
		// cell keeps the last.
		input := textinput.New()
		input.Prompt = ""
		input.Width = 1
		s.inputs[i] = input
		refs.Register(index, i, &s.inputs[i])
	}
	return s
}

func (s *sectionView) lastCell() int {
	return len(s.letters) - 1
}

// HandleKey applies a keystroke to cell. guesses is the section's current
// state as held by the root.
func (s *sectionView) HandleKey(cell int, msg tea.KeyMsg, guesses []string) tea.Cmd {
	if cell < 0 || cell > s.lastCell() {
		return nil
	}
	current := ""
	if cell < len(guesses) {
		current = guesses[cell]
	}
	switch {
	case key.Matches(msg, s.erase):
		if current == "" {
			if cell == 0 {
				return call(s.hooks.FocusPrevSection)
			}
			return s.refs.Focus(cellRef{section: s.index, cell: cell - 1})
		}
		input := &s.inputs[cell]
		input.SetValue(current)
		input.CursorEnd()
		cmd := s.update(cell, msg)
		s.report(cell, input.Value())
		return cmd
	case msg.Alt:
		return nil
	case msg.Type == tea.KeyRunes, msg.Type == tea.KeySpace:
		return s.enter(cell, msg, current)
	}
	return nil
}

// enter replaces the cell with the last character typed or pasted and
// moves focus forward. Input the text field drops leaves the cell as it was.
func (s *sectionView) enter(cell int, msg tea.KeyMsg, current string) tea.Cmd {
	input := &s.inputs[cell]
	input.SetValue("")
	input.CursorStart()
	blink := s.update(cell, msg)
	value := puzzle.LastChar(input.Value())
	if value == "" {
		input.SetValue(current)
		return blink
	}
	s.report(cell, value)
	if cell < s.lastCell() {
		return tea.Batch(blink, s.refs.Focus(cellRef{section: s.index, cell: cell + 1}))
	}
	return tea.Batch(blink, call(s.hooks.FocusNextSection))
}

func (s *sectionView) update(cell int, msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	s.inputs[cell], cmd = s.inputs[cell].Update(msg)
	return cmd
}

func (s *sectionView) report(cell int, value string) {
	s.inputs[cell].SetValue(value)
	if s.hooks.OnGuessChange != nil {
		s.hooks.OnGuessChange(cell, value)
	}
}

func (s *sectionView) Status(guesses []string) puzzle.Status {
	return puzzle.SectionStatus(s.letters, guesses)
}

// InnerWidth is the content width of the section box: wide enough for the
// cells, and for the hint up to maxHintWidth.
func (s *sectionView) InnerWidth() int {
	n := len(s.letters)
	cells := n*(cellWidth+2) + (n-1)*cellGap
	hint := lipgloss.Width(s.hint)
	if hint > maxHintWidth {
		hint = maxHintWidth
	}
	if hint > 0 && hint < minHintWidth {
		hint = minHintWidth
	}
	if cells > hint {
		return cells
	}
	return hint
}

// OuterWidth includes the box border and padding.
func (s *sectionView) OuterWidth() int {
	return s.InnerWidth() + 4
}

// View draws the cells from their inputs and colours the box from guesses.
func (s *sectionView) View(guesses []string) string {
	status := s.Status(guesses)
	color := statusColor(status)

	cells := make([]string, 0, 2*len(s.letters))
	for i := range s.letters {
		if i > 0 {
			cells = append(cells, strings.Repeat(" ", cellGap))
		}
		cells = append(cells, s.renderCell(i, s.inputs[i].Value(), color))
	}
	width := s.InnerWidth()
	row := lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.JoinHorizontal(lipgloss.Top, cells...))

	parts := []string{row}
	if strings.TrimSpace(s.hint) != "" {
		hint := wordwrap.String(s.hint, width)
		parts = append(parts, lipgloss.NewStyle().Foreground(color).Width(width).Align(lipgloss.Center).Render(hint))
	}
	return sectionBoxStyle.Copy().BorderForeground(color).Render(lipgloss.JoinVertical(lipgloss.Center, parts...))
}

func (s *sectionView) renderCell(i int, value string, color lipgloss.TerminalColor) string {
	style := cellStyle
	if s.inputs[i].Focused() {
		style = focusedCellStyle
	}
	border := color
	if s.inputs[i].Focused() {
		border = focusColor
	}
	if value == "" {
		return style.Copy().BorderForeground(border).Foreground(mutedColor).Render(emptyCellGlyph)
	}
	return style.Copy().BorderForeground(border).Foreground(color).Render(value)
}

func call(hook func() tea.Cmd) tea.Cmd {
	if hook == nil {
		return nil
	}
	return hook()
}
