// Package tui renders a terminal preview of a directory as a drop
// zone: every entry is classified against the configured accept list
// and listed with its verdict.
package tui

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"dropzone/internal/classify"
	"dropzone/internal/config"
	"dropzone/pkg/types"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type entryStatus int

const (
	statusAccepted entryStatus = iota
	statusRejected
	statusSkipped
)

type fileEntry struct {
	name   string
	status entryStatus
	reason string
}

// KeyMap holds the key bindings for the preview.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model is the bubbletea model for the drop-zone preview.
type Model struct {
	dir     string
	engine  *classify.Engine
	entries []fileEntry
	cursor  int
	err     error
	keys    KeyMap
}

// New builds a preview model for the directory.
func New(cfg *config.Config, dir string) (*Model, error) {
	engine, err := classify.NewWithConfig(cfg)
	if err != nil {
		return nil, err
	}

	m := &Model{
		dir:    dir,
		engine: engine,
		keys:   DefaultKeyMap(),
	}
	m.reload()
	return m, nil
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Refresh):
			m.reload()
		}
	}
	return m, nil
}

// View implements tea.Model
func (m *Model) View() string {
	out := titleStyle.Render(fmt.Sprintf("Drop zone preview — %s", m.dir)) + "\n"

	if m.err != nil {
		out += errorStyle.Render(fmt.Sprintf("error: %v", m.err)) + "\n"
		return appStyle.Render(out)
	}

	if len(m.entries) == 0 {
		out += skippedStyle.Render("no files") + "\n"
	}

	for i, e := range m.entries {
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
		}
		out += marker + renderEntry(e) + "\n"
	}

	out += "\n" + helpStyle.Render("[↑/k] Up  [↓/j] Down  [r] Refresh  [q] Quit")
	return appStyle.Render(out)
}

// Entries returns the rendered entry count; used by status reporting.
func (m *Model) Entries() int {
	return len(m.entries)
}

// Cursor returns the current cursor position.
func (m *Model) Cursor() int {
	return m.cursor
}

func renderEntry(e fileEntry) string {
	switch e.status {
	case statusAccepted:
		return acceptedStyle.Render("✓ ") + e.name
	case statusRejected:
		return rejectedStyle.Render("✗ ") + e.name + rejectedStyle.Render(" ("+e.reason+")")
	default:
		return skippedStyle.Render("- " + e.name + " (no extension)")
	}
}

// reload re-reads the directory and classifies every regular file.
// Classification runs per file so entries the extension pattern cannot
// match still show up, marked as skipped.
func (m *Model) reload() {
	m.entries = nil
	m.cursor = 0
	m.err = nil

	dirEntries, err := os.ReadDir(m.dir)
	if err != nil {
		m.err = err
		return
	}

	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		name := de.Name()
		desc := types.FileDescriptor{
			Name:     name,
			MIMEType: mime.TypeByExtension(filepath.Ext(name)),
		}

		verdicts := m.engine.Classify([]types.FileDescriptor{desc})
		if len(verdicts) == 0 {
			m.entries = append(m.entries, fileEntry{name: name, status: statusSkipped})
			continue
		}
		v := verdicts[0]
		if v.Rejected() {
			m.entries = append(m.entries, fileEntry{name: name, status: statusRejected, reason: string(v.Reason)})
		} else {
			m.entries = append(m.entries, fileEntry{name: name, status: statusAccepted})
		}
	}
}
