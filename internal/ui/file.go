package ui

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"inkpad/internal/infra/logx"
)

// ---------- Messages / Cmds ----------
type fileLoadedMsg struct {
	path    string
	content string
	err     error
}

type fileSavedMsg struct {
	path string
	err  error
}

// fileChangedMsg reports an on-disk change of the open file.
type fileChangedMsg struct {
	path string
}

func loadFileCmd(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return fileLoadedMsg{path: path, err: fmt.Errorf("read %s: %w", path, err)}
		}
		return fileLoadedMsg{path: path, content: string(data)}
	}
}

func saveFileCmd(path, content string) tea.Cmd {
	return func() tea.Msg {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fileSavedMsg{path: path, err: fmt.Errorf("write %s: %w", path, err)}
		}
		return fileSavedMsg{path: path}
	}
}

// watchFile registers path with the watcher. fsnotify watches the directory
// so editors that replace the file on save (rename + create) are still seen.
func (m *Model) watchFile(path string) {
	if m.watcher == nil {
		return
	}
	dir := filepath.Dir(path)
	if err := m.watcher.Add(dir); err != nil {
		logx.Warnf("watch %s: %v", dir, err)
	}
}

// waitForChangeCmd blocks on the watcher until an event for the open file
// arrives, then reports it. The caller re-issues it after every message to
// keep listening.
func (m Model) waitForChangeCmd() tea.Cmd {
	w, path := m.watcher, m.path
	if w == nil || path == "" {
		return nil
	}
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(ev.Name) != filepath.Clean(path) {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				return fileChangedMsg{path: path}
			case err, ok := <-w.Errors:
				if !ok {
					return nil
				}
				logx.Errorf("watcher: %v", err)
			}
		}
	}
}
