package puzzle

import (
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

// Status is the three-way colouring of a section.
type Status int

const (
	Neutral Status = iota
	Correct
	Incorrect
)

func (s Status) String() string {
	switch s {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	default:
		return "neutral"
	}
}

// Board is the player's guess state: one slot per expected letter, each
// either empty or a single character.
type Board struct {
	cells [][]string
}

// NewBoard returns an empty board shaped like def.
func NewBoard(def Definition) *Board {
	return &Board{
		cells: lo.Map(def.Sections, func(s Section, _ int) []string {
			return lo.Times(len(s.Letters), func(_ int) string { return "" })
		}),
	}
}

// Sections returns the number of rows on the board.
func (b *Board) Sections() int {
	return len(b.cells)
}

// Cell returns the guess at the given position, or "" when out of range.
func (b *Board) Cell(section, cell int) string {
	if !b.inRange(section, cell) {
		return ""
	}
	return b.cells[section][cell]
}

// Row returns a copy of one section's guesses.
func (b *Board) Row(section int) []string {
	if section < 0 || section >= len(b.cells) {
		return nil
	}
	return append([]string(nil), b.cells[section]...)
}

// Set replaces a single cell with the last character of value and returns
// what was stored. Positions outside the board are ignored.
func (b *Board) Set(section, cell int, value string) string {
	if !b.inRange(section, cell) {
		return ""
	}
	stored := LastChar(value)
	b.cells[section][cell] = stored
	return stored
}

func (b *Board) inRange(section, cell int) bool {
	return section >= 0 && section < len(b.cells) && cell >= 0 && cell < len(b.cells[section])
}

// LastChar keeps only the final character of s.
func LastChar(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeLastRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s[len(s)-1:]
	}
	return s[len(s)-size:]
}

// SectionStatus compares one section's guesses to its letters. A cell that
// holds only whitespace does not count as filled.
func SectionStatus(letters, guesses []string) Status {
	allFilled := len(guesses) == len(letters) && lo.EveryBy(guesses, func(g string) bool {
		return strings.TrimSpace(g) != ""
	})
	if !allFilled {
		return Neutral
	}
	if matches(letters, guesses) {
		return Correct
	}
	return Incorrect
}

// IsComplete reports whether every cell on the board equals its letter.
func IsComplete(def Definition, board *Board) bool {
	if board == nil || board.Sections() != len(def.Sections) {
		return false
	}
	return lo.EveryBy(lo.Range(len(def.Sections)), func(i int) bool {
		return matches(def.Sections[i].Letters, board.cells[i])
	})
}

func matches(letters, guesses []string) bool {
	if len(letters) != len(guesses) {
		return false
	}
	for i, guess := range guesses {
		if guess != letters[i] {
			return false
		}
	}
	return true
}
