package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/rebus/internal/puzzle"
)

func newTestModel(t *testing.T, def puzzle.Definition) *model {
	t.Helper()
	teaModel, ok := New(Config{Puzzle: def}).(*model)
	if !ok {
		t.Fatalf("expected *model, got %T", teaModel)
	}
	return teaModel
}

func singleSection() puzzle.Definition {
	return puzzle.Definition{
		Sections: []puzzle.Section{{Letters: []string{"a", "b"}, Hint: "x"}},
		Reward:   puzzle.Reward{Title: "Done", Paragraphs: []string{"You solved it."}},
	}
}

func threeSections() puzzle.Definition {
	return puzzle.Definition{
		Sections: []puzzle.Section{
			{Letters: []string{"s", "y", "k"}, Hint: "first"},
			{Letters: []string{"k"}, Hint: "second"},
			{Letters: []string{"e", "l"}, Hint: "third"},
		},
		Reward: puzzle.Reward{Title: "Gratulerer!", Paragraphs: []string{"One.", "Two."}},
	}
}

func typeText(m *model, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(m *model, keyType tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: keyType})
	return cmd
}

func assertFocus(t *testing.T, m *model, section, cell int) {
	t.Helper()
	got := m.refs.Current()
	if got.section != section || got.cell != cell {
		t.Fatalf("focus mismatch: got %d/%d want %d/%d", got.section, got.cell, section, cell)
	}
	if !m.sections[section].inputs[cell].Focused() {
		t.Fatalf("input %d/%d should report focus", section, cell)
	}
	for i, sv := range m.sections {
		for j := range sv.inputs {
			if (i != section || j != cell) && sv.inputs[j].Focused() {
				t.Fatalf("input %d/%d should be blurred", i, j)
			}
		}
	}
}

func TestInitialState(t *testing.T) {
	m := newTestModel(t, puzzle.Default())
	if m.completed {
		t.Fatal("puzzle must not start completed")
	}
	for i := range m.sections {
		for j, value := range m.board.Row(i) {
			if value != "" {
				t.Fatalf("cell %d/%d should start empty, got %q", i, j, value)
			}
		}
		if m.statuses[i] != puzzle.Neutral {
			t.Fatalf("section %d should start neutral", i)
		}
	}
	assertFocus(t, m, 0, 0)
}

func TestTypingAdvancesWithinSection(t *testing.T) {
	m := newTestModel(t, threeSections())
	typeText(m, "s")
	assertFocus(t, m, 0, 1)
	typeText(m, "y")
	assertFocus(t, m, 0, 2)
	if got := m.board.Row(0); got[0] != "s" || got[1] != "y" || got[2] != "" {
		t.Fatalf("unexpected row: %q", got)
	}
}

func TestTypingLastCellMovesToNextSection(t *testing.T) {
	m := newTestModel(t, threeSections())
	typeText(m, "syk")
	assertFocus(t, m, 1, 0)
	typeText(m, "k")
	assertFocus(t, m, 2, 0)
}

func TestTypingLastCellOfLastSectionKeepsFocus(t *testing.T) {
	m := newTestModel(t, threeSections())
	typeText(m, "xyzwab")
	assertFocus(t, m, 2, 1)
	typeText(m, "q")
	assertFocus(t, m, 2, 1)
	if got := m.board.Cell(2, 1); got != "q" {
		t.Fatalf("last cell should be overwritten, got %q", got)
	}
}

func TestPasteKeepsLastCharacter(t *testing.T) {
	m := newTestModel(t, threeSections())
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hello")})
	if got := m.board.Cell(0, 0); got != "o" {
		t.Fatalf("paste should keep last character, got %q", got)
	}
	if got := m.sections[0].inputs[0].Value(); got != "o" {
		t.Fatalf("input value out of sync: %q", got)
	}
	assertFocus(t, m, 0, 1)
}

func TestSpaceCountsAsTypedButNotFilled(t *testing.T) {
	m := newTestModel(t, singleSection())
	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assertFocus(t, m, 0, 1)
	typeText(m, "b")
	if m.statuses[0] != puzzle.Neutral {
		t.Fatalf("whitespace cell should keep the section neutral, got %v", m.statuses[0])
	}
}

func TestBackspaceOnFilledCellClearsWithoutMoving(t *testing.T) {
	m := newTestModel(t, threeSections())
	typeText(m, "s")
	press(m, tea.KeyLeft)
	assertFocus(t, m, 0, 0)
	press(m, tea.KeyBackspace)
	assertFocus(t, m, 0, 0)
	if got := m.board.Cell(0, 0); got != "" {
		t.Fatalf("backspace should clear the cell, got %q", got)
	}
	if got := m.sections[0].inputs[0].Value(); got != "" {
		t.Fatalf("input value should be cleared, got %q", got)
	}
}

func TestBackspaceOnEmptyCellRetreats(t *testing.T) {
	m := newTestModel(t, threeSections())
	typeText(m, "s")
	assertFocus(t, m, 0, 1)
	press(m, tea.KeyBackspace)
	assertFocus(t, m, 0, 0)
	if got := m.board.Cell(0, 0); got != "s" {
		t.Fatalf("retreating must not clear the previous cell, got %q", got)
	}
}

func TestBackspaceOnFirstCellMovesToPreviousSection(t *testing.T) {
	m := newTestModel(t, threeSections())
	typeText(m, "sykk")
	assertFocus(t, m, 2, 0)
	press(m, tea.KeyBackspace)
	assertFocus(t, m, 1, 0)
	press(m, tea.KeyBackspace)
	assertFocus(t, m, 1, 0)
	if m.board.Cell(1, 0) != "" {
		t.Fatal("filled cell should be cleared first")
	}
	press(m, tea.KeyBackspace)
	assertFocus(t, m, 0, 2)
}

func TestBackspaceOnFirstCellOfFirstSectionIsNoop(t *testing.T) {
	m := newTestModel(t, threeSections())
	if cmd := press(m, tea.KeyBackspace); cmd != nil {
		t.Fatalf("expected no command, got %T", cmd)
	}
	assertFocus(t, m, 0, 0)
}

func TestCtrlHErasesLikeBackspace(t *testing.T) {
	m := newTestModel(t, threeSections())
	typeText(m, "s")
	assertFocus(t, m, 0, 1)
	press(m, tea.KeyCtrlH)
	assertFocus(t, m, 0, 0)
	press(m, tea.KeyCtrlH)
	assertFocus(t, m, 0, 0)
	if got := m.board.Cell(0, 0); got != "" {
		t.Fatalf("ctrl+h should clear the cell, got %q", got)
	}
	if got := m.sections[0].inputs[0].Value(); got != "" {
		t.Fatalf("input value should be cleared, got %q", got)
	}
}

func TestAltChordsAreIgnored(t *testing.T) {
	m := newTestModel(t, threeSections())
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}, Alt: true})
	assertFocus(t, m, 0, 0)
	if got := m.board.Cell(0, 0); got != "" {
		t.Fatalf("alt+s must not fill the cell, got %q", got)
	}
}

func TestRetypingCellReplacesInputValue(t *testing.T) {
	m := newTestModel(t, threeSections())
	typeText(m, "x")
	press(m, tea.KeyLeft)
	typeText(m, "s")
	if got := m.board.Cell(0, 0); got != "s" {
		t.Fatalf("retyped cell should hold the new letter, got %q", got)
	}
	if got := m.sections[0].inputs[0].Value(); got != "s" {
		t.Fatalf("input should hold the new letter, got %q", got)
	}
	if view := m.sections[0].View(m.board.Row(0)); strings.Contains(view, "x") {
		t.Fatalf("replaced letter still rendered:\n%s", view)
	}
}

func TestArrowAndTabNavigation(t *testing.T) {
	m := newTestModel(t, threeSections())
	press(m, tea.KeyLeft)
	assertFocus(t, m, 0, 0)
	press(m, tea.KeyRight)
	press(m, tea.KeyRight)
	press(m, tea.KeyRight)
	assertFocus(t, m, 1, 0)
	press(m, tea.KeyTab)
	assertFocus(t, m, 2, 0)
	press(m, tea.KeyTab)
	assertFocus(t, m, 2, 0)
	press(m, tea.KeyRight)
	press(m, tea.KeyRight)
	assertFocus(t, m, 2, 1)
	press(m, tea.KeyShiftTab)
	assertFocus(t, m, 2, 0)
	press(m, tea.KeyShiftTab)
	assertFocus(t, m, 1, 0)
	press(m, tea.KeyLeft)
	assertFocus(t, m, 0, 2)
	if m.board.Cell(0, 2) != "" {
		t.Fatal("navigation keys must not edit cells")
	}
}

func TestSectionStatusFollowsGuesses(t *testing.T) {
	m := newTestModel(t, threeSections())
	typeText(m, "sy")
	if m.statuses[0] != puzzle.Neutral {
		t.Fatalf("partial section should be neutral, got %v", m.statuses[0])
	}
	typeText(m, "x")
	if m.statuses[0] != puzzle.Incorrect {
		t.Fatalf("wrong letter should mark section incorrect, got %v", m.statuses[0])
	}
	press(m, tea.KeyShiftTab)
	assertFocus(t, m, 0, 2)
	typeText(m, "k")
	if m.statuses[0] != puzzle.Correct {
		t.Fatalf("section should be correct, got %v", m.statuses[0])
	}
	press(m, tea.KeyLeft)
	press(m, tea.KeyBackspace)
	if m.statuses[0] != puzzle.Neutral {
		t.Fatalf("clearing a cell should return the section to neutral, got %v", m.statuses[0])
	}
}

func TestSingleSectionCorrectScenario(t *testing.T) {
	m := newTestModel(t, singleSection())
	typeText(m, "a")
	assertFocus(t, m, 0, 1)
	if m.statuses[0] != puzzle.Neutral || m.completed {
		t.Fatalf("after first letter: status %v completed %v", m.statuses[0], m.completed)
	}
	typeText(m, "b")
	if m.statuses[0] != puzzle.Correct {
		t.Fatalf("section should be correct, got %v", m.statuses[0])
	}
	if !m.completed {
		t.Fatal("single-section puzzle should be complete")
	}
}

func TestSingleSectionIncorrectScenario(t *testing.T) {
	m := newTestModel(t, singleSection())
	typeText(m, "ac")
	if m.statuses[0] != puzzle.Incorrect {
		t.Fatalf("section should be incorrect, got %v", m.statuses[0])
	}
	if m.completed {
		t.Fatal("puzzle must not be complete with a wrong letter")
	}
}

func TestCompletionRequiresEverySection(t *testing.T) {
	m := newTestModel(t, threeSections())
	typeText(m, "sykk")
	if m.completed {
		t.Fatal("completion must wait for the last section")
	}
	typeText(m, "el")
	if !m.completed {
		t.Fatal("puzzle should be complete")
	}
}

func TestDefaultPuzzleSolvedByTypingAnswer(t *testing.T) {
	def := puzzle.Default()
	m := newTestModel(t, def)
	typeText(m, def.Answer())
	if !m.completed {
		t.Fatal("typing the answer should solve the default puzzle")
	}
	for i, status := range m.statuses {
		if status != puzzle.Correct {
			t.Fatalf("section %d should be correct, got %v", i, status)
		}
	}
}

func TestDialogIsModalAndHasNoDismiss(t *testing.T) {
	m := newTestModel(t, singleSection())
	typeText(m, "ab")
	if !m.completed {
		t.Fatal("expected completion")
	}
	press(m, tea.KeyBackspace)
	typeText(m, "z")
	press(m, tea.KeyLeft)
	m.Update(tea.KeyMsg{Type: tea.KeyF1})
	if !m.completed {
		t.Fatal("dialog should stay open after further keys")
	}
	if got := m.board.Row(0); got[0] != "a" || got[1] != "b" {
		t.Fatalf("board must not change behind the dialog: %q", got)
	}
	view := m.View()
	if !strings.Contains(view, "Done") || !strings.Contains(view, "You solved it.") {
		t.Fatalf("dialog should show the reward, got:\n%s", view)
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t, singleSection())
	for _, keyType := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		cmd := press(m, keyType)
		if cmd == nil {
			t.Fatalf("%v should quit", keyType)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%v should return tea.Quit", keyType)
		}
	}
	typeText(m, "ab")
	if cmd := press(m, tea.KeyCtrlC); cmd == nil {
		t.Fatal("ctrl+c should still quit while the dialog is shown")
	}
}

func TestViewRendersHintsAndTitle(t *testing.T) {
	def := threeSections()
	def.Title = "Julegave rebus"
	def.Intro = "Svaret er ett ord."
	m := newTestModel(t, def)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	view := m.View()
	for _, want := range []string{"Julegave rebus", "Svaret er ett ord.", "first", "second", "third"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Gratulerer!") {
		t.Fatal("reward must stay hidden until solved")
	}
}

func TestHelpToggleShowsGuide(t *testing.T) {
	m := newTestModel(t, threeSections())
	if strings.Contains(m.View(), "How to play") {
		t.Fatal("guide should start hidden")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyF1})
	if !m.helpVisible || !strings.Contains(m.View(), "How to play") {
		t.Fatal("f1 should show the guide")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyF1})
	if m.helpVisible {
		t.Fatal("f1 should toggle the guide off")
	}
}

func TestNarrowWindowWrapsSections(t *testing.T) {
	m := newTestModel(t, puzzle.Default())
	m.Update(tea.WindowSizeMsg{Width: 260, Height: 40})
	wide := strings.Count(m.sectionsView(), "\n")
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 40})
	narrow := strings.Count(m.sectionsView(), "\n")
	if narrow <= wide {
		t.Fatalf("narrow layout should use more lines: wide=%d narrow=%d", wide, narrow)
	}
}
