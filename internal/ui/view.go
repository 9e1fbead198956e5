package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.state == stateQuit {
		return ""
	}

	header := m.renderHeader()
	bar := m.renderPromptBar()
	content := m.ta.View()
	footer := renderFooter(m.renderStatusLine(), m.helpLine())

	if bar == "" {
		return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, bar, content, footer)
}

func (m Model) renderHeader() string {
	var b strings.Builder
	title := "inkpad"
	if m.path != "" {
		title += " — " + m.path
	}
	if m.dirty {
		title += " " + dirtySign
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(dividerStyle.Render(strings.Repeat("─", max(10, m.width-2))))
	return b.String()
}

func (m Model) renderPromptBar() string {
	switch m.state {
	case stateSearch:
		line := promptStyle.Render("Find: ") + m.search.searchInput.View()
		if m.search.query != "" {
			line += subtleStyle.Render(fmt.Sprintf("  %d/%d", m.search.matchIndex+1, len(m.search.matches)))
		}
		return line
	case stateSavePrompt:
		return promptStyle.Render("Save as: ") + m.saveInput.View()
	case stateReloadPrompt:
		return warnStyle.Render("File changed on disk. Reload? (y/n)")
	default:
		return ""
	}
}

// renderStatusLine reports the cursor and the last-rendered window of the
// textarea.
func (m Model) renderStatusLine() string {
	row, col := m.ta.CursorPos()
	topRow, topCol := m.ta.ScrollTop()
	first, _, last, _ := m.ta.PositionBounds()

	pos := fmt.Sprintf("%d:%d", row+1, col+1)
	win := fmt.Sprintf("top %d,%d  rows %d-%d", topRow, topCol, first+1, last+1)

	parts := []string{pos, win, fmt.Sprintf("%d lines", m.ta.LineCount())}
	if m.statusMsg != "" {
		parts = append(parts, m.statusMsg)
	}
	return strings.Join(parts, "  |  ")
}

func (m Model) helpLine() string {
	switch m.state {
	case stateSearch:
		return "enter jump · up/down cycle · esc cancel"
	case stateSavePrompt:
		return "enter save · esc cancel"
	case stateReloadPrompt:
		return "y reload · n keep buffer"
	default:
		return "ctrl+s save · ctrl+o save as · ctrl+f find · ctrl+w wrap · ctrl+g lines · ctrl+y/p yank/paste · alt+↑/↓ scroll · ctrl+c quit"
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
