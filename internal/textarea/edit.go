package textarea

import "strings"

// InsertRune inserts r at the cursor and advances the column.
func (m *Model) InsertRune(r rune) {
	rs := []rune(m.lines[m.row])
	m.clampCol()
	rs = append(rs[:m.col], append([]rune{r}, rs[m.col:]...)...)
	m.lines[m.row] = string(rs)
	m.col++
}

// InsertString inserts s at the cursor. Newlines split lines as if typed.
func (m *Model) InsertString(s string) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	first := true
	for _, part := range strings.Split(s, "\n") {
		if !first {
			m.InsertNewline()
		}
		first = false
		for _, r := range part {
			m.InsertRune(r)
		}
	}
}

// InsertNewline splits the current line at the cursor.
func (m *Model) InsertNewline() {
	rs := []rune(m.lines[m.row])
	m.clampCol()
	head, tail := string(rs[:m.col]), string(rs[m.col:])
	m.lines[m.row] = head
	rest := append([]string{tail}, m.lines[m.row+1:]...)
	m.lines = append(m.lines[:m.row+1], rest...)
	m.row++
	m.col = 0
}

// DeleteBackward removes the grapheme before the cursor, joining with the
// previous line at a line start.
func (m *Model) DeleteBackward() {
	if m.col > 0 {
		w := graphemeBefore(m.lines[m.row], m.col)
		rs := []rune(m.lines[m.row])
		m.lines[m.row] = string(append(rs[:m.col-w:m.col-w], rs[m.col:]...))
		m.col -= w
		return
	}
	if m.row > 0 {
		prev := m.lines[m.row-1]
		m.col = len([]rune(prev))
		m.lines[m.row-1] = prev + m.lines[m.row]
		m.lines = append(m.lines[:m.row], m.lines[m.row+1:]...)
		m.row--
	}
}

// DeleteForward removes the grapheme under the cursor, joining with the next
// line at a line end.
func (m *Model) DeleteForward() {
	rs := []rune(m.lines[m.row])
	if m.col < len(rs) {
		w := graphemeAt(m.lines[m.row], m.col)
		m.lines[m.row] = string(append(rs[:m.col:m.col], rs[m.col+w:]...))
		return
	}
	if m.row < len(m.lines)-1 {
		m.lines[m.row] += m.lines[m.row+1]
		m.lines = append(m.lines[:m.row+1], m.lines[m.row+2:]...)
	}
}

// DeleteLine removes the current line entirely. The buffer always keeps at
// least one (possibly empty) line.
func (m *Model) DeleteLine() {
	if len(m.lines) == 1 {
		m.lines[0] = ""
		m.col = 0
		return
	}
	m.lines = append(m.lines[:m.row], m.lines[m.row+1:]...)
	if m.row > len(m.lines)-1 {
		m.row = len(m.lines) - 1
	}
	m.col = 0
}
