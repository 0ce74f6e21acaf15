package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/csheth/rebus/internal/guide"
	"github.com/csheth/rebus/internal/logging"
	"github.com/csheth/rebus/internal/puzzle"
)

// Config wires runtime options into the TUI program.
type Config struct {
	Puzzle puzzle.Definition
}

// New returns a tea.Model ready to be mounted into a Program. The puzzle
// must already be valid; see puzzle.Definition.Validate.
func New(config Config) tea.Model {
	def := config.Puzzle
	m := &model{
		config:   config,
		board:    puzzle.NewBoard(def),
		refs:     newFocusRegistry(len(def.Sections)),
		statuses: make([]puzzle.Status, len(def.Sections)),
		keys:     newKeyMap(),
		help:     help.New(),
		layout:   newPageLayout(),
		guide: guide.Build(guide.Metadata{
			Title:    def.Title,
			Sections: len(def.Sections),
			Letters:  def.LetterCount(),
		}),
	}
	m.sections = make([]*sectionView, len(def.Sections))
	for i, section := range def.Sections {
		index := i
		m.sections[i] = newSectionView(index, section, m.refs, m.keys, sectionHooks{
			OnGuessChange: func(cell int, value string) {
				m.updateGuess(index, cell, value)
			},
			FocusNextSection: func() tea.Cmd {
				return m.focusNextSection(index)
			},
			FocusPrevSection: func() tea.Cmd {
				return m.focusPrevSection(index)
			},
		})
	}
	m.refs.Focus(cellRef{})
	return m
}

type model struct {
	config Config

	board     *puzzle.Board
	refs      *focusRegistry
	sections  []*sectionView
	statuses  []puzzle.Status
	completed bool

	keys        keyMap
	help        help.Model
	helpVisible bool
	guide       []guide.Step
	layout      pageLayout
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.help.Width = m.layout.contentWidth
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) {
		return tea.Quit
	}
	// The reward dialog is modal and has no dismiss action.
	if m.completed {
		return nil
	}
	current := m.refs.Current()
	switch {
	case key.Matches(msg, m.keys.Help):
		m.helpVisible = !m.helpVisible
		return nil
	case key.Matches(msg, m.keys.Right):
		return m.step(current, 1)
	case key.Matches(msg, m.keys.Left):
		return m.step(current, -1)
	case key.Matches(msg, m.keys.Next):
		return m.focusNextSection(current.section)
	case key.Matches(msg, m.keys.Prev):
		if current.cell > 0 {
			return m.refs.Focus(cellRef{section: current.section})
		}
		return m.focusPrevSection(current.section)
	}
	if current.section < 0 || current.section >= len(m.sections) {
		return nil
	}
	return m.sections[current.section].HandleKey(current.cell, msg, m.board.Row(current.section))
}

func (m *model) step(from cellRef, delta int) tea.Cmd {
	ref, ok := m.refs.Step(from, delta)
	if !ok {
		return nil
	}
	return m.refs.Focus(ref)
}

// updateGuess replaces a single cell and re-derives section statuses and
// completion.
func (m *model) updateGuess(section, cell int, value string) {
	stored := m.board.Set(section, cell, value)
	logging.Debug("cell updated",
		zap.Int("section", section),
		zap.Int("cell", cell),
		zap.String("value", stored),
	)
	m.refresh()
}

func (m *model) refresh() {
	for i, sv := range m.sections {
		status := sv.Status(m.board.Row(i))
		if status != m.statuses[i] {
			logging.Debug("section status changed",
				zap.Int("section", i),
				zap.Stringer("from", m.statuses[i]),
				zap.Stringer("to", status),
			)
			m.statuses[i] = status
		}
	}
	completed := puzzle.IsComplete(m.config.Puzzle, m.board)
	if completed != m.completed {
		if completed {
			logging.Info("puzzle solved", zap.Int("sections", len(m.sections)))
		} else {
			logging.Info("puzzle no longer solved")
		}
	}
	m.completed = completed
}

// focusNextSection moves focus to the first cell of the following section.
// It is a no-op on the last section.
func (m *model) focusNextSection(current int) tea.Cmd {
	if current >= len(m.sections)-1 {
		return nil
	}
	return m.refs.Focus(cellRef{section: current + 1})
}

// focusPrevSection moves focus to the last cell of the preceding section.
// It is a no-op on the first section.
func (m *model) focusPrevSection(current int) tea.Cmd {
	if current <= 0 {
		return nil
	}
	return m.refs.Focus(m.refs.LastCell(current - 1))
}
