package ui

import (
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"inkpad/internal/infra/logx"
)

// ---------- Update ----------
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		key := msg.String()

		// global shortcut
		if key == "ctrl+c" {
			return m.quit()
		}

		switch m.state {
		case stateEditing:
			return m.handleEditingKey(msg)
		case stateSearch:
			return m.handleSearchKey(msg)
		case stateSavePrompt:
			return m.handleSavePromptKey(msg)
		case stateReloadPrompt:
			return m.handleReloadPromptKey(key)
		}

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.ta, cmd = m.ta.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		vp := m.height - chrome
		if vp < 3 {
			vp = 3
		}
		m.ta.SetSize(m.width, vp)

	case fileLoadedMsg:
		if msg.err != nil {
			m.statusMsg = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.ta.SetText(msg.content)
		m.path = msg.path
		m.dirty = false
		m.state = stateEditing
		m.statusMsg = "Opened " + msg.path
		m.watchFile(msg.path)
		return m, m.waitForChangeCmd()

	case fileSavedMsg:
		if msg.err != nil {
			m.statusMsg = "Save failed: " + msg.err.Error()
			return m, nil
		}
		m.path = msg.path
		m.dirty = false
		m.statusMsg = "Saved " + msg.path
		m.watchFile(msg.path)
		return m, m.waitForChangeCmd()

	case fileChangedMsg:
		if m.suppressWatch {
			// our own save echoed back
			m.suppressWatch = false
			return m, m.waitForChangeCmd()
		}
		m.state = stateReloadPrompt
		m.statusMsg = msg.path + " changed on disk."
		return m, m.waitForChangeCmd()
	}

	return m, nil
}

// ---------- Handlers ----------

func (m Model) handleEditingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+q":
		return m.quit()

	case "ctrl+s":
		if m.path == "" {
			return m.openSavePrompt()
		}
		m.suppressWatch = true
		return m, saveFileCmd(m.path, m.ta.Text())

	case "ctrl+o":
		return m.openSavePrompt()

	case "ctrl+f":
		m.state = stateSearch
		m.search.searchInput.SetValue(m.search.query)
		m.search.searchInput.CursorEnd()
		m.search.searchInput.Focus()
		return m, nil

	case "ctrl+w":
		m.ta.Wrap = !m.ta.Wrap
		if m.ta.Wrap {
			m.statusMsg = "Wrap on"
		} else {
			m.statusMsg = "Wrap off"
		}
		return m, nil

	case "ctrl+g":
		m.ta.ShowLineNumbers = !m.ta.ShowLineNumbers
		return m, nil

	case "ctrl+y":
		if err := clipboard.WriteAll(m.ta.CurrentLine()); err != nil {
			logx.Warnf("clipboard write: %v", err)
			m.statusMsg = "Clipboard unavailable"
			return m, nil
		}
		m.statusMsg = "Line yanked"
		return m, nil

	case "ctrl+p":
		text, err := clipboard.ReadAll()
		if err != nil {
			logx.Warnf("clipboard read: %v", err)
			m.statusMsg = "Clipboard unavailable"
			return m, nil
		}
		m.ta.InsertString(text)
		m.dirty = true
		return m, nil

	case "alt+up":
		m.ta.ScrollBy(-1, 0)
		return m, nil
	case "alt+down":
		m.ta.ScrollBy(1, 0)
		return m, nil

	default:
		before := m.ta.Text()
		var cmd tea.Cmd
		m.ta, cmd = m.ta.Update(msg)
		if m.ta.Text() != before {
			m.dirty = true
		}
		return m, cmd
	}
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = stateEditing
		m.search.searchInput.Blur()
		return m, nil
	case "enter":
		if len(m.search.matches) > 0 {
			row := m.search.matches[m.search.matchIndex]
			m.ta.SetCursor(row, 0)
			m.statusMsg = "Jumped to line " + strconv.Itoa(row+1)
		}
		m.state = stateEditing
		m.search.searchInput.Blur()
		return m, nil
	case "down", "ctrl+n":
		if n := len(m.search.matches); n > 0 {
			m.search.matchIndex = (m.search.matchIndex + 1) % n
		}
		return m, nil
	case "up", "ctrl+p":
		if n := len(m.search.matches); n > 0 {
			m.search.matchIndex = (m.search.matchIndex + n - 1) % n
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.search.searchInput, cmd = m.search.searchInput.Update(msg)
		if q := m.search.searchInput.Value(); q != m.search.query {
			m.search.query = q
			m.search.matches = searchLines(q, m.ta.Lines(), m.searchCfg)
			m.search.matchIndex = 0
		}
		return m, cmd
	}
}

func (m Model) handleSavePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = stateEditing
		m.saveInput.Blur()
		return m, nil
	case "enter":
		path := strings.TrimSpace(m.saveInput.Value())
		if path == "" {
			m.statusMsg = "Path empty."
			return m, nil
		}
		m.state = stateEditing
		m.saveInput.Blur()
		m.suppressWatch = true
		return m, saveFileCmd(path, m.ta.Text())
	default:
		var cmd tea.Cmd
		m.saveInput, cmd = m.saveInput.Update(msg)
		return m, cmd
	}
}

func (m Model) handleReloadPromptKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "y", "enter":
		m.state = stateEditing
		m.statusMsg = "Reloading…"
		return m, loadFileCmd(m.path)
	case "n", "esc":
		m.state = stateEditing
		m.statusMsg = "Kept buffer; disk version ignored."
		return m, nil
	}
	return m, nil
}

func (m Model) openSavePrompt() (tea.Model, tea.Cmd) {
	m.state = stateSavePrompt
	m.saveInput.SetValue(m.path)
	m.saveInput.CursorEnd()
	m.saveInput.Focus()
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.watcher != nil {
		_ = m.watcher.Close()
	}
	m.state = stateQuit
	return m, tea.Quit
}
