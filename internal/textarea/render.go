package textarea

import "fmt"

// View renders one frame. It reads where the previous frame was scrolled,
// moves the minimum needed to keep the cursor visible, paints the visible
// slice into a string surface, and stores the resolved offset for the next
// frame.
func (m Model) View() string {
	var s stringSurface
	m.render(&s, Rect{Width: clampU16(m.width), Height: clampU16(m.height)})
	out := s.String()
	if m.frame != nil {
		out = m.frame.Render(out)
	}
	return out
}

// render is the orchestration behind View, split out so tests can supply
// their own surface.
func (m Model) render(surface Surface, area Rect) {
	inner := m.innerRect(area)
	width, height := inner.Width, inner.Height

	prevRow, prevCol := m.viewport.ScrollTop()

	var topRow, topCol uint16
	if m.Wrap {
		topRow = nextScrollRowWrapped(prevRow, clampU16(m.row), height, m.wrappedRows(width))
		// Columns never scroll while wrapping; the stored offset is kept but
		// not applied.
		topCol = prevCol
	} else {
		topRow = m.scrollTopRow(prevRow, height)
		topCol = m.scrollTopCol(prevCol, width)
	}

	var lines []Line
	if m.IsEmpty() && m.Placeholder != "" {
		lines = []Line{m.placeholderLine()}
	} else {
		lines = m.visibleLines(int(topRow), int(height))
	}

	opts := DrawOptions{Wrap: m.Wrap}
	if !m.Wrap {
		opts.ScrollCols = topCol
	}
	surface.Draw(inner, lines, opts)

	// Store scroll top once per frame, reflecting the rectangle actually
	// painted, so the next frame scrolls relative to what was shown.
	m.viewport.store(topRow, topCol, width, height)

	m.metrics.Renders.Add(1)
	if topRow != prevRow || topCol != prevCol {
		m.metrics.CursorFollows.Add(1)
	}
}

// innerRect shrinks the widget area by the decorative frame, if any.
func (m Model) innerRect(area Rect) Rect {
	if m.frame == nil {
		return area
	}
	return Rect{
		X:      area.X,
		Y:      area.Y,
		Width:  satSub(area.Width, clampU16(m.frame.GetHorizontalFrameSize())),
		Height: satSub(area.Height, clampU16(m.frame.GetVerticalFrameSize())),
	}
}

// visibleLines builds the styled lines for the slice [top, top+height),
// clipped to the buffer.
func (m Model) visibleLines(top, height int) []Line {
	bottom := top + height
	if bottom > len(m.lines) {
		bottom = len(m.lines)
	}
	if top > bottom {
		top = bottom
	}

	lnumWidth := 0
	if m.ShowLineNumbers {
		lnumWidth = numDigits(len(m.lines))
	}

	lines := make([]Line, 0, bottom-top)
	for i := top; i < bottom; i++ {
		lines = append(lines, m.lineSpans(m.lines[i], i, lnumWidth))
	}
	return lines
}

// lineSpans styles one buffer line, prefixing the gutter label and splitting
// the cursor line around the cursor cell.
func (m Model) lineSpans(line string, row, lnumWidth int) Line {
	var spans Line
	if lnumWidth > 0 {
		spans = append(spans, Span{
			Text:  fmt.Sprintf(" %*d ", lnumWidth, row+1),
			Style: m.Styles.LineNumber,
		})
	}

	if row != m.row {
		return append(spans, Span{Text: line, Style: m.Styles.Text})
	}

	rs := []rune(line)
	col := m.col
	if col > len(rs) {
		col = len(rs)
	}
	cursorCell := " "
	tail := ""
	if col < len(rs) {
		w := graphemeAt(line, col)
		cursorCell = string(rs[col : col+w])
		tail = string(rs[col+w:])
	}
	if col > 0 {
		spans = append(spans, Span{Text: string(rs[:col]), Style: m.Styles.CursorLine})
	}
	spans = append(spans, Span{Text: cursorCell, Style: m.Styles.Cursor})
	if tail != "" {
		spans = append(spans, Span{Text: tail, Style: m.Styles.CursorLine})
	}
	return spans
}

func (m Model) placeholderLine() Line {
	return Line{
		{Text: " ", Style: m.Styles.Cursor},
		{Text: m.Placeholder, Style: m.Styles.Placeholder},
	}
}
