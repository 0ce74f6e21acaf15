package tui

// cellRef addresses one cell by section and position within it.
type cellRef struct {
	section int
	cell    int
}

const (
	cellWidth      = 3
	cellGap        = 1
	sectionGap     = 2
	minHintWidth   = 12
	maxHintWidth   = 28
	maxIntroWidth  = 80
	maxDialogWidth = 60
)

const (
	defaultWindowWidth  = 100
	defaultWindowHeight = 30
	minWindowWidth      = 40
	windowPadding       = 4
)

const emptyCellGlyph = "·"
