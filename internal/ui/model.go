package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"inkpad/internal/config"
	"inkpad/internal/infra/logx"
	"inkpad/internal/textarea"
)

// --- Model / State ---
type state int

const (
	stateEditing state = iota
	stateSearch
	stateSavePrompt
	stateReloadPrompt
	stateQuit
)

// chrome is the number of rows the header, status bar and help footer occupy
// around the textarea.
const chrome = 4

type SearchState struct {
	searchInput textinput.Model
	query       string
	matches     []int // matching line indices in buffer order
	matchIndex  int   // currently highlighted match
}

type Model struct {
	state     state
	cfg       config.Config
	cfgPath   string
	path      string
	dirty     bool
	statusMsg string

	width, height int

	ta textarea.Model

	search    SearchState
	searchCfg SearchConfig

	// save-as prompt
	saveInput textinput.Model

	// file watching
	watcher       *fsnotify.Watcher
	suppressWatch bool
}

func InitialModel(path string) Model {
	p := config.DefaultPath()
	cfg, err := config.Load(p)
	if err != nil {
		logx.Warnf("config load: %v", err)
	}

	m := Model{
		state:   stateEditing,
		cfg:     cfg,
		cfgPath: p,
		path:    path,
	}

	ta := textarea.New()
	ta.Placeholder = cfg.Placeholder
	ta.Wrap = cfg.Wrap
	ta.ShowLineNumbers = cfg.LineNumbers
	if cfg.TabWidth > 0 {
		ta.TabWidth = cfg.TabWidth
	}
	m.ta = ta

	// search
	si := textinput.New()
	si.Placeholder = "Jump to line…"
	si.CharLimit = 200
	si.Width = 40
	m.search.searchInput = si
	m.searchCfg = SearchConfig{
		MinCoverage: 0.6,
		MaxSpread:   40,
		MaxResults:  200,
	}

	// save-as
	sv := textinput.New()
	sv.Placeholder = "Path to save to"
	sv.CharLimit = 400
	sv.Width = 40
	m.saveInput = sv

	if path == "" {
		m.statusMsg = "New buffer. ctrl+s to save."
	} else {
		m.statusMsg = "Opening " + path + "…"
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		logx.Warnf("watcher unavailable: %v", err)
	} else {
		m.watcher = w
	}

	return m
}

func (m Model) Init() tea.Cmd {
	if m.path == "" {
		return nil
	}
	return loadFileCmd(m.path)
}
