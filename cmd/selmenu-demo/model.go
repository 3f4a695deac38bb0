package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/selmenu/buffer"
	"github.com/iw2rmb/selmenu/editor"
	"github.com/iw2rmb/selmenu/internal/config"
	"github.com/iw2rmb/selmenu/layer"
	"github.com/iw2rmb/selmenu/menu"
)

const sampleText = `Selection menu demo

Select text with shift+arrows or by dragging with the mouse.
The menu appears above the end of the selection and follows it.
Collapse the selection to hide it again.

    ctrl+a selects everything
    ctrl+c, ctrl+x and ctrl+v use the system clipboard
    ctrl+z undoes, ctrl+y redoes
    ctrl+q quits

Lines near the top still get a menu; it is clipped to the screen.`

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

// menuStatus follows the menu through its show and hide callbacks.
type menuStatus struct {
	visible bool
	x, y    int
	shows   int
}

func (s *menuStatus) shown(n *layer.Node) {
	s.visible = true
	s.x, s.y = n.Position()
	s.shows++
}

func (s *menuStatus) hidden(*layer.Node) { s.visible = false }

type model struct {
	editor editor.Model
	status *menuStatus
	log    *slog.Logger
	width  int
	err    error
}

func newModel(cfg config.Config, log *slog.Logger) (model, error) {
	text := sampleText
	if cfg.Editor.FilePath != "" {
		data, err := os.ReadFile(cfg.Editor.FilePath)
		if err != nil {
			return model{}, err
		}
		text = string(data)
	}

	content := defaultContent()
	if cfg.Menu.ContentPath != "" {
		var err error
		if content, err = menu.LoadContentFile(cfg.Menu.ContentPath); err != nil {
			return model{}, err
		}
	}

	status := &menuStatus{}
	ed := editor.New(editor.Config{
		Text:         text,
		ShowLineNums: cfg.Editor.ShowLineNums,
		Clipboard:    newClipboard(),
		Logger:       log,
		Plugins: []editor.Plugin{menu.Plugin(menu.Options{
			Content:  content,
			Debounce: cfg.Menu.Debounce,
			OnShow:   status.shown,
			OnHide:   status.hidden,
			Logger:   log,
		})},
	})
	if err := ed.Err(); err != nil {
		return model{}, err
	}
	return model{editor: ed, status: status, log: log}, nil
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.editor = m.editor.SetSize(msg.Width, max(msg.Height-1, 0))
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+q" {
			m.editor = m.editor.Destroy()
			return m, tea.Quit
		}
	case editor.PluginErrorMsg:
		m.err = msg.Err
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return m.editor.View() + "\n" + statusStyle.Render(m.statusLine())
}

func (m model) statusLine() string {
	parts := []string{"menu hidden"}
	if m.status.visible {
		parts[0] = fmt.Sprintf("menu at %d,%d", m.status.x, m.status.y)
	}
	parts = append(parts, fmt.Sprintf("shown %d×", m.status.shows))
	if sel := m.editor.State().Selection; !sel.Empty() {
		r := sel.Range()
		parts = append(parts, fmt.Sprintf("selection %d:%d-%d:%d", r.Start.Row+1, r.Start.Col+1, r.End.Row+1, r.End.Col+1))
	}
	if m.err != nil {
		parts = append(parts, "error: "+m.err.Error())
	}
	line := strings.Join(parts, " · ")
	if m.width > 0 {
		line = ansi.Truncate(line, m.width, "…")
	}
	return line
}

func defaultContent() []menu.Group {
	hasSelection := func(s buffer.State) bool { return !s.Selection.Empty() }
	multiLine := func(s buffer.State) bool { return s.Selection.Anchor.Row != s.Selection.Head.Row }
	return []menu.Group{
		{
			{Label: "Copy", Key: "ctrl+c", Enable: hasSelection},
			{Label: "Cut", Key: "ctrl+x", Enable: hasSelection},
		},
		{
			{Label: "Select all", Key: "ctrl+a"},
			{Label: "Lines", Active: multiLine},
		},
	}
}
