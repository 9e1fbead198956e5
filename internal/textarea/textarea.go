package textarea

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// wheelLines is how many rows one mouse wheel tick scrolls.
const wheelLines = 3

// Styles bundles the lipgloss styles used when painting the widget.
type Styles struct {
	Text        lipgloss.Style
	Cursor      lipgloss.Style
	CursorLine  lipgloss.Style
	LineNumber  lipgloss.Style
	Placeholder lipgloss.Style
}

// DefaultStyles returns the stock look: reverse-video cursor, dim gutter and
// placeholder.
func DefaultStyles() Styles {
	return Styles{
		Cursor:      lipgloss.NewStyle().Reverse(true),
		LineNumber:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// Model is a multi-line text area whose viewport follows the cursor with
// minimal movement. Copies of a Model share the same viewport state, so the
// last-rendered scroll position stays consistent across bubbletea's
// value-typed update loop.
type Model struct {
	// Placeholder is rendered instead of the buffer while it is empty.
	Placeholder string
	// ShowLineNumbers enables the line-number gutter.
	ShowLineNumbers bool
	// Wrap soft-wraps long lines instead of scrolling horizontally.
	// Horizontal scrolling is disabled while set.
	Wrap bool
	// TabWidth is how many spaces a tab key press inserts.
	TabWidth int

	Styles Styles

	width, height int
	lines         []string
	row, col      int

	frame    *lipgloss.Style
	viewport *Viewport
	metrics  *RenderMetrics
}

// New returns an empty text area.
func New() Model {
	return Model{
		Styles:   DefaultStyles(),
		TabWidth: 4,
		lines:    []string{""},
		viewport: &Viewport{},
		metrics:  &RenderMetrics{},
	}
}

// SetSize sets the outer dimensions the next View call will paint into.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetFrame draws a decorative border around the content. The inner rectangle
// shrinks accordingly.
func (m *Model) SetFrame(style lipgloss.Style) {
	s := style
	m.frame = &s
}

// ClearFrame removes the border.
func (m *Model) ClearFrame() { m.frame = nil }

// SetText replaces the buffer content and moves the cursor to the start.
func (m *Model) SetText(s string) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	m.lines = strings.Split(s, "\n")
	if len(m.lines) == 0 {
		m.lines = []string{""}
	}
	m.row, m.col = 0, 0
}

// Text returns the buffer content joined with newlines.
func (m Model) Text() string {
	return strings.Join(m.lines, "\n")
}

// Lines returns a copy of the buffer lines.
func (m Model) Lines() []string {
	out := make([]string, len(m.lines))
	copy(out, m.lines)
	return out
}

// LineCount returns the number of logical lines.
func (m Model) LineCount() int { return len(m.lines) }

// IsEmpty reports whether the buffer holds nothing but a single empty line.
func (m Model) IsEmpty() bool {
	return len(m.lines) == 1 && m.lines[0] == ""
}

// CurrentLine returns the line under the cursor.
func (m Model) CurrentLine() string { return m.lines[m.row] }

// CursorPos returns the cursor position in logical buffer coordinates
// (0-based row, rune column).
func (m Model) CursorPos() (row, col int) { return m.row, m.col }

// SetCursor moves the cursor, clamping into the buffer.
func (m *Model) SetCursor(row, col int) {
	if row < 0 {
		row = 0
	}
	if row > len(m.lines)-1 {
		row = len(m.lines) - 1
	}
	m.row = row
	if col < 0 {
		col = 0
	}
	if n := len([]rune(m.lines[m.row])); col > n {
		col = n
	}
	m.col = col
}

// ScrollTop returns the last-rendered scroll offset.
func (m Model) ScrollTop() (row, col uint16) { return m.viewport.ScrollTop() }

// VisibleRect returns the last-rendered scroll offset and dimensions.
func (m Model) VisibleRect() (row, col, width, height uint16) { return m.viewport.Rect() }

// PositionBounds returns the inclusive bounds of the last-rendered window.
func (m Model) PositionBounds() (topRow, topCol, bottomRow, bottomCol uint16) {
	return m.viewport.Position()
}

// ScrollBy adjusts the viewport independently of the cursor, e.g. for a
// mouse wheel or a key binding. The next render still keeps the cursor
// visible per the minimal-movement rule.
func (m Model) ScrollBy(rows, cols int) {
	m.viewport.Scroll(rows, cols)
	m.metrics.ManualScrolls.Add(1)
}

// Metrics returns a snapshot of the render counters.
func (m Model) Metrics() RenderMetricsSnapshot { return m.metrics.Snapshot() }

// Update handles editing keys and wheel scrolling.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKey(msg)
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			switch msg.Button {
			case tea.MouseButtonWheelUp:
				m.ScrollBy(-wheelLines, 0)
			case tea.MouseButtonWheelDown:
				m.ScrollBy(wheelLines, 0)
			}
		}
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "left":
		m.CursorLeft()
	case "right":
		m.CursorRight()
	case "up":
		m.CursorUp()
	case "down":
		m.CursorDown()
	case "home", "ctrl+a":
		m.CursorLineStart()
	case "end", "ctrl+e":
		m.CursorLineEnd()
	case "pgup":
		m.CursorPageUp()
	case "pgdown":
		m.CursorPageDown()
	case "enter":
		m.InsertNewline()
	case "backspace":
		m.DeleteBackward()
	case "delete":
		m.DeleteForward()
	case "ctrl+k":
		m.DeleteLine()
	case "tab":
		tw := m.TabWidth
		if tw <= 0 {
			tw = 4
		}
		m.InsertString(strings.Repeat(" ", tw))
	default:
		if msg.Type == tea.KeyRunes && !msg.Alt {
			m.InsertString(string(msg.Runes))
		} else if msg.Type == tea.KeySpace {
			m.InsertRune(' ')
		}
	}
}
