package textarea

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Rect is a rectangle of screen cells.
type Rect struct {
	X, Y          uint16
	Width, Height uint16
}

// Span is a run of text painted with a single style.
type Span struct {
	Text  string
	Style lipgloss.Style
}

// Line is one display line composed of styled spans.
type Line []Span

// DrawOptions control how a surface lays out the lines it is given.
type DrawOptions struct {
	// ScrollCols shifts every line left by this many screen columns before
	// clipping. Ignored when Wrap is set.
	ScrollCols uint16
	// Wrap hard-wraps lines at the area width instead of clipping them.
	// Wrapped rows keep their leading whitespace.
	Wrap bool
}

// Surface is the paint target for one render pass. The widget decides which
// lines are visible and hands them off; the surface owns the actual cells.
type Surface interface {
	Draw(area Rect, lines []Line, opts DrawOptions)
}

// stringSurface renders into a newline-joined string, which is what the
// bubbletea View contract wants. All clipping and shifting is ANSI-aware so
// styled spans survive intact.
type stringSurface struct {
	rows []string
}

func (s *stringSurface) Draw(area Rect, lines []Line, opts DrawOptions) {
	width := int(area.Width)
	height := int(area.Height)
	s.rows = s.rows[:0]

	for _, line := range lines {
		if len(s.rows) >= height {
			break
		}
		var b strings.Builder
		for _, sp := range line {
			b.WriteString(sp.Style.Render(sp.Text))
		}
		row := b.String()

		if opts.Wrap {
			for _, wrapped := range strings.Split(ansi.Hardwrap(row, width, true), "\n") {
				if len(s.rows) >= height {
					break
				}
				s.rows = append(s.rows, wrapped)
			}
			continue
		}

		if opts.ScrollCols > 0 {
			row = ansi.TruncateLeft(row, int(opts.ScrollCols), "")
		}
		s.rows = append(s.rows, ansi.Truncate(row, width, ""))
	}
}

func (s *stringSurface) String() string {
	return strings.Join(s.rows, "\n")
}
