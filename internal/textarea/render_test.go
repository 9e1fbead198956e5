package textarea

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// recordingSurface captures what the orchestration asked to paint.
type recordingSurface struct {
	area  Rect
	lines []Line
	opts  DrawOptions
	draws int
}

func (r *recordingSurface) Draw(area Rect, lines []Line, opts DrawOptions) {
	r.area = area
	r.lines = lines
	r.opts = opts
	r.draws++
}

func numberedLines(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("l%d", i)
	}
	return strings.Join(lines, "\n")
}

func TestRenderPlaceholder(t *testing.T) {
	m := New()
	m.Placeholder = "Start typing"
	m.SetSize(20, 5)

	var s recordingSurface
	m.render(&s, Rect{Width: 20, Height: 5})

	if len(s.lines) != 1 {
		t.Fatalf("expected a single placeholder line, got %d", len(s.lines))
	}
	if s.lines[0][0].Text != " " {
		t.Fatalf("expected leading cursor cell, got %q", s.lines[0][0].Text)
	}
	if s.lines[0][1].Text != "Start typing" {
		t.Fatalf("expected placeholder text, got %q", s.lines[0][1].Text)
	}
}

func TestRenderVisibleRange(t *testing.T) {
	m := New()
	m.SetText(numberedLines(10))
	m.SetSize(20, 3)
	m.SetCursor(9, 0)

	var s recordingSurface
	m.render(&s, Rect{Width: 20, Height: 3})

	if len(s.lines) != 3 {
		t.Fatalf("expected 3 visible lines, got %d", len(s.lines))
	}
	if s.lines[0][0].Text != "l7" {
		t.Fatalf("expected slice to start at l7, got %q", s.lines[0][0].Text)
	}

	// The stored rect must reflect what was painted.
	row, col, w, h := m.VisibleRect()
	if row != 7 || col != 0 || w != 20 || h != 3 {
		t.Fatalf("VisibleRect() = (%d, %d, %d, %d), want (7, 0, 20, 3)", row, col, w, h)
	}
}

func TestRenderStoresOncePerPass(t *testing.T) {
	m := New()
	m.SetText(numberedLines(10))
	m.SetSize(20, 3)
	m.SetCursor(9, 0)

	var s recordingSurface
	m.render(&s, Rect{Width: 20, Height: 3})
	if s.draws != 1 {
		t.Fatalf("expected one draw, got %d", s.draws)
	}

	ms := m.Metrics()
	if ms.Renders != 1 {
		t.Fatalf("expected 1 render counted, got %d", ms.Renders)
	}
	if ms.CursorFollows != 1 {
		t.Fatalf("expected the scroll to be counted, got %d", ms.CursorFollows)
	}
}

func TestRenderHorizontalScrollOnlyUnwrapped(t *testing.T) {
	m := New()
	m.SetText("abcdefghijklmnopqrstuvwxyz")
	m.SetSize(10, 3)
	m.SetCursor(0, 25)

	var s recordingSurface
	m.render(&s, Rect{Width: 10, Height: 3})
	if s.opts.ScrollCols != 16 {
		t.Fatalf("expected scroll of 16 columns, got %d", s.opts.ScrollCols)
	}

	m2 := New()
	m2.SetText("abcdefghijklmnopqrstuvwxyz")
	m2.Wrap = true
	m2.SetSize(10, 3)
	m2.SetCursor(0, 25)

	var s2 recordingSurface
	m2.render(&s2, Rect{Width: 10, Height: 3})
	if !s2.opts.Wrap {
		t.Fatal("expected wrap mode draw")
	}
	if s2.opts.ScrollCols != 0 {
		t.Fatalf("wrap mode must not scroll columns, got %d", s2.opts.ScrollCols)
	}
}

func TestRenderWrappedFollowsCursor(t *testing.T) {
	m := New()
	// Line 1 wraps to 3 rows at width 4.
	m.SetText("ab\nabcdefghij\ncd\nef")
	m.Wrap = true
	m.SetSize(4, 3)
	m.SetCursor(2, 0)

	var s recordingSurface
	m.render(&s, Rect{Width: 4, Height: 3})

	row, _ := m.ScrollTop()
	if row != 2 {
		t.Fatalf("expected wrapped scroll to top 2, got %d", row)
	}
}

func TestRenderGutterLabels(t *testing.T) {
	m := New()
	m.SetText(numberedLines(12))
	m.ShowLineNumbers = true
	m.SetSize(20, 5)

	var s recordingSurface
	m.render(&s, Rect{Width: 20, Height: 5})

	if got := s.lines[0][0].Text; got != "  1 " {
		t.Fatalf("expected gutter label %q, got %q", "  1 ", got)
	}
	if got := s.lines[4][0].Text; got != "  5 " {
		t.Fatalf("expected gutter label %q, got %q", "  5 ", got)
	}
}

func TestRenderFrameShrinksInner(t *testing.T) {
	m := New()
	m.SetText(numberedLines(10))
	m.SetSize(20, 10)
	m.SetFrame(lipgloss.NewStyle().Border(lipgloss.NormalBorder()))

	var s recordingSurface
	m.render(&s, Rect{Width: 20, Height: 10})

	if s.area.Width != 18 || s.area.Height != 8 {
		t.Fatalf("inner area = (%d, %d), want (18, 8)", s.area.Width, s.area.Height)
	}
	if _, _, w, h := m.VisibleRect(); w != 18 || h != 8 {
		t.Fatalf("stored rect = (%d, %d), want inner (18, 8)", w, h)
	}
}

func TestViewRendersVisibleText(t *testing.T) {
	m := New()
	m.SetText("hello\nworld")
	m.SetSize(10, 2)

	out := ansi.Strip(m.View())
	if !strings.Contains(out, "hello") || !strings.Contains(out, "world") {
		t.Fatalf("unexpected view output: %q", out)
	}
}
