package tui

type pageLayout struct {
	windowWidth  int
	windowHeight int
	contentWidth int
}

func newPageLayout() pageLayout {
	l := pageLayout{}
	l.Update(defaultWindowWidth, defaultWindowHeight)
	return l
}

func (l *pageLayout) Update(width, height int) {
	l.windowWidth = width
	l.windowHeight = height
	inner := width - windowPadding
	if inner < minWindowWidth {
		inner = minWindowWidth
	}
	l.contentWidth = inner
}

// introWidth is the wrap width for the intro paragraph.
func (l pageLayout) introWidth() int {
	if l.contentWidth < maxIntroWidth {
		return l.contentWidth
	}
	return maxIntroWidth
}

// dialogWidth is the wrap width for the reward paragraphs.
func (l pageLayout) dialogWidth() int {
	width := l.contentWidth - 8
	if width > maxDialogWidth {
		width = maxDialogWidth
	}
	if width < 20 {
		width = 20
	}
	return width
}

// packRows splits items of the given widths into rows no wider than
// available, keeping order. An item wider than available gets a row of its
// own.
func packRows(widths []int, available, gap int) [][]int {
	var rows [][]int
	var row []int
	used := 0
	for idx, w := range widths {
		need := w
		if len(row) > 0 {
			need += gap
		}
		if len(row) > 0 && used+need > available {
			rows = append(rows, row)
			row = nil
			used = 0
			need = w
		}
		row = append(row, idx)
		used += need
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return rows
}
