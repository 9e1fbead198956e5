package textarea

// nextScrollTop resolves the minimal movement along one axis that keeps the
// cursor visible: snap the top to the cursor when it moved above the window,
// make the cursor the last visible unit when it moved past the end, and stay
// put otherwise. Used for rows, and for columns when wrapping is off.
func nextScrollTop(prevTop, cursor, length uint16) uint16 {
	if cursor < prevTop {
		return cursor
	}
	if int(prevTop)+int(length) <= int(cursor) {
		return uint16(int(cursor) + 1 - int(length))
	}
	return prevTop
}

// scrollTopRow resolves the row offset for unwrapped rendering.
func (m Model) scrollTopRow(prevTop, height uint16) uint16 {
	return nextScrollTop(prevTop, clampU16(m.row), height)
}

// scrollTopCol resolves the column offset. The cursor column is shifted by
// the line-number gutter so the visibility check runs in rendered-column
// coordinates. Columns at or inside the gutter width are doubled instead,
// which slides the gutter back into view gradually as the cursor approaches
// the left edge.
func (m Model) scrollTopCol(prevTop, width uint16) uint16 {
	cursor := clampU16(m.col)
	if m.ShowLineNumbers {
		lnum := clampU16(numDigits(len(m.lines)) + 2) // + 2 for margins
		if cursor <= lnum {
			cursor = satAdd(cursor, cursor)
		} else {
			cursor = satAdd(cursor, lnum)
		}
	}
	return nextScrollTop(prevTop, cursor, width)
}

// nextScrollRowWrapped resolves the row offset when lines wrap. A wrapped
// line spans a variable number of screen rows, so "scroll one row" and
// "scroll one line" diverge; the walk accumulates per-line row counts to
// find the fewest leading lines that, once scrolled off, bring the cursor's
// line fully into view. The top never advances past the cursor's own line,
// which keeps the cursor's first wrapped row visible even when that line
// alone is taller than the viewport.
//
// rows must hold exactly one entry per logical line, each >= 1.
func nextScrollRowWrapped(prevTop, cursorRow, height uint16, rows []uint16) uint16 {
	if cursorRow < prevTop {
		return cursorRow
	}

	// The +1 counts the first screen row of the cursor's own line.
	fromTop := 1
	for _, r := range rows[prevTop:cursorRow] {
		fromTop += int(r)
	}
	cursorWraps := int(rows[cursorRow]) - 1

	if fromTop+cursorWraps <= int(height) {
		return prevTop
	}

	// Overflow past the bottom edge, in screen rows.
	rowsToMove := fromTop + cursorWraps - int(height)

	// First line index whose cumulative row count soaks up the overflow.
	idx := 0
	acc := 0
	for i, r := range rows[prevTop:cursorRow] {
		acc += int(r)
		if acc >= rowsToMove {
			idx = i
			break
		}
	}

	top := int(prevTop) + idx + 1
	if top > int(cursorRow) {
		top = int(cursorRow)
	}
	return uint16(top)
}

// wrappedRows computes the on-screen row count of every logical line at the
// given wrap width. Rebuilt before each wrapped scroll resolution so it
// always has exactly one entry per line.
func (m Model) wrappedRows(width uint16) []uint16 {
	rows := make([]uint16, len(m.lines))
	for i, line := range m.lines {
		rows[i] = lineRows(line, width, m.ShowLineNumbers, len(m.lines))
	}
	return rows
}

func clampU16(n int) uint16 {
	if n < 0 {
		return 0
	}
	if n > 0xffff {
		return 0xffff
	}
	return uint16(n)
}
