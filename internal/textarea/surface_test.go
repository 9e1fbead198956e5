package textarea

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func plainLine(s string) Line {
	return Line{{Text: s, Style: lipgloss.NewStyle()}}
}

func TestStringSurfaceClipsHeight(t *testing.T) {
	var s stringSurface
	s.Draw(Rect{Width: 10, Height: 2}, []Line{
		plainLine("one"), plainLine("two"), plainLine("three"),
	}, DrawOptions{})

	if len(s.rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(s.rows))
	}
	if ansi.Strip(s.rows[1]) != "two" {
		t.Fatalf("unexpected second row: %q", s.rows[1])
	}
}

func TestStringSurfaceTruncatesWidth(t *testing.T) {
	var s stringSurface
	s.Draw(Rect{Width: 5, Height: 1}, []Line{plainLine("abcdefghij")}, DrawOptions{})

	if got := ansi.Strip(s.rows[0]); got != "abcde" {
		t.Fatalf("expected %q, got %q", "abcde", got)
	}
}

func TestStringSurfaceScrollCols(t *testing.T) {
	var s stringSurface
	s.Draw(Rect{Width: 5, Height: 1}, []Line{plainLine("abcdefghij")}, DrawOptions{ScrollCols: 3})

	if got := ansi.Strip(s.rows[0]); got != "defgh" {
		t.Fatalf("expected %q, got %q", "defgh", got)
	}
}

func TestStringSurfaceWrap(t *testing.T) {
	var s stringSurface
	s.Draw(Rect{Width: 4, Height: 5}, []Line{plainLine("abcdefghij")}, DrawOptions{Wrap: true})

	want := []string{"abcd", "efgh", "ij"}
	if len(s.rows) != len(want) {
		t.Fatalf("expected %d rows, got %d (%q)", len(want), len(s.rows), s.rows)
	}
	for i, w := range want {
		if got := ansi.Strip(s.rows[i]); got != w {
			t.Fatalf("row %d = %q, want %q", i, got, w)
		}
	}
}

func TestStringSurfaceWrapClipsHeight(t *testing.T) {
	var s stringSurface
	s.Draw(Rect{Width: 4, Height: 2}, []Line{plainLine("abcdefghij"), plainLine("tail")}, DrawOptions{Wrap: true})

	if len(s.rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(s.rows))
	}
	if got := ansi.Strip(s.rows[1]); got != "efgh" {
		t.Fatalf("expected wrapped continuation, got %q", got)
	}
}

func TestStringSurfaceJoins(t *testing.T) {
	var s stringSurface
	s.Draw(Rect{Width: 10, Height: 3}, []Line{plainLine("a"), plainLine("b")}, DrawOptions{})

	if got := ansi.Strip(s.String()); got != "a\nb" {
		t.Fatalf("unexpected output: %q", got)
	}
}
