package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// focusRegistry is a two-level table of cell inputs indexed by section and
// cell. Sections register their inputs on construction; navigation only
// ever goes through Focus.
type focusRegistry struct {
	handles [][]*textinput.Model
	current cellRef
	active  bool
}

func newFocusRegistry(sections int) *focusRegistry {
	return &focusRegistry{handles: make([][]*textinput.Model, sections)}
}

func (r *focusRegistry) Register(section, cell int, input *textinput.Model) {
	if section < 0 || cell < 0 {
		return
	}
	for len(r.handles) <= section {
		r.handles = append(r.handles, nil)
	}
	row := r.handles[section]
	for len(row) <= cell {
		row = append(row, nil)
	}
	row[cell] = input
	r.handles[section] = row
}

func (r *focusRegistry) handle(ref cellRef) *textinput.Model {
	if ref.section < 0 || ref.section >= len(r.handles) {
		return nil
	}
	row := r.handles[ref.section]
	if ref.cell < 0 || ref.cell >= len(row) {
		return nil
	}
	return row[ref.cell]
}

// Focus moves focus to ref, blurring the previously focused cell. Unknown
// refs leave focus where it is.
func (r *focusRegistry) Focus(ref cellRef) tea.Cmd {
	target := r.handle(ref)
	if target == nil {
		return nil
	}
	if r.active && r.current != ref {
		if prev := r.handle(r.current); prev != nil {
			prev.Blur()
		}
	}
	r.current = ref
	r.active = true
	return target.Focus()
}

func (r *focusRegistry) Current() cellRef {
	return r.current
}

func (r *focusRegistry) Sections() int {
	return len(r.handles)
}

func (r *focusRegistry) Cells(section int) int {
	if section < 0 || section >= len(r.handles) {
		return 0
	}
	return len(r.handles[section])
}

// LastCell returns the final cell of a section.
func (r *focusRegistry) LastCell(section int) cellRef {
	return cellRef{section: section, cell: r.Cells(section) - 1}
}

// Step returns the ref delta cells away in reading order, crossing section
// boundaries. ok is false past either end of the puzzle.
func (r *focusRegistry) Step(from cellRef, delta int) (cellRef, bool) {
	ref := from
	for delta > 0 {
		if ref.cell+1 < r.Cells(ref.section) {
			ref.cell++
		} else if ref.section+1 < r.Sections() {
			ref = cellRef{section: ref.section + 1}
		} else {
			return from, false
		}
		delta--
	}
	for delta < 0 {
		if ref.cell > 0 {
			ref.cell--
		} else if ref.section > 0 {
			ref = r.LastCell(ref.section - 1)
		} else {
			return from, false
		}
		delta++
	}
	return ref, true
}
