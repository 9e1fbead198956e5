package textarea

// Cursor movement operates on grapheme clusters horizontally so combining
// sequences and emoji move as one unit, while the column itself is stored as
// a rune index.

// CursorLeft moves one grapheme left, wrapping to the end of the previous
// line at a line start.
func (m *Model) CursorLeft() {
	if m.col > 0 {
		m.col -= graphemeBefore(m.lines[m.row], m.col)
		return
	}
	if m.row > 0 {
		m.row--
		m.col = len([]rune(m.lines[m.row]))
	}
}

// CursorRight moves one grapheme right, wrapping to the start of the next
// line at a line end.
func (m *Model) CursorRight() {
	if m.col < len([]rune(m.lines[m.row])) {
		m.col += graphemeAt(m.lines[m.row], m.col)
		return
	}
	if m.row < len(m.lines)-1 {
		m.row++
		m.col = 0
	}
}

func (m *Model) CursorUp() {
	if m.row > 0 {
		m.row--
		m.clampCol()
	}
}

func (m *Model) CursorDown() {
	if m.row < len(m.lines)-1 {
		m.row++
		m.clampCol()
	}
}

func (m *Model) CursorLineStart() { m.col = 0 }

func (m *Model) CursorLineEnd() { m.col = len([]rune(m.lines[m.row])) }

// CursorTop moves to the first line, keeping the column where possible.
func (m *Model) CursorTop() {
	m.row = 0
	m.clampCol()
}

// CursorBottom moves to the last line, keeping the column where possible.
func (m *Model) CursorBottom() {
	m.row = len(m.lines) - 1
	m.clampCol()
}

// CursorPageUp moves up by one viewport height.
func (m *Model) CursorPageUp() {
	m.SetCursor(m.row-m.pageSize(), m.col)
}

// CursorPageDown moves down by one viewport height.
func (m *Model) CursorPageDown() {
	m.SetCursor(m.row+m.pageSize(), m.col)
}

func (m Model) pageSize() int {
	_, _, _, h := m.viewport.Rect()
	if h == 0 {
		if m.height > 0 {
			return m.height
		}
		return 1
	}
	return int(h)
}

func (m *Model) clampCol() {
	if n := len([]rune(m.lines[m.row])); m.col > n {
		m.col = n
	}
}
