package textarea

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// numDigits returns the number of decimal digits in n. Used to size the
// line-number gutter.
func numDigits(n int) int {
	if n < 0 {
		n = -n
	}
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}

// lineRows returns how many screen rows line occupies when hard-wrapped to
// the viewport width. The line-number gutter eats into the wrap width when
// enabled. Every line occupies at least one row.
func lineRows(line string, width uint16, hasGutter bool, totalLines int) uint16 {
	w := int(width)
	if hasGutter {
		w -= numDigits(totalLines) + 2
	}
	if w <= 0 {
		return 1
	}
	cells := runewidth.StringWidth(line)
	if cells <= w {
		return 1
	}
	rows := (cells + w - 1) / w
	if rows > 0xffff {
		return 0xffff
	}
	return uint16(rows)
}

// graphemeAt returns the rune length of the grapheme cluster starting at
// rune offset col, or 0 when col is at or past the end of the line.
func graphemeAt(line string, col int) int {
	rs := []rune(line)
	if col < 0 || col >= len(rs) {
		return 0
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(string(rs[col:]), -1)
	return len([]rune(cluster))
}

// graphemeBefore returns the rune length of the grapheme cluster ending at
// rune offset col, or 0 when col is at the start of the line.
func graphemeBefore(line string, col int) int {
	rs := []rune(line)
	if col > len(rs) {
		col = len(rs)
	}
	if col <= 0 {
		return 0
	}
	rest := string(rs[:col])
	state := -1
	prev := 0
	seen := 0
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		prev = seen
		seen += len([]rune(cluster))
	}
	return col - prev
}
