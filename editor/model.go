package editor

import (
	"errors"
	"log/slog"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/selmenu/buffer"
	"github.com/iw2rmb/selmenu/layer"
)

// Model is a Bubble Tea component that renders and edits a buffer.
//
// Model is a value type; copies share the buffer, the surface and the plugin
// views, so the usual m = m.Update(...) flow keeps one editor alive.
type Model struct {
	cfg Config
	buf *buffer.Buffer
	log *slog.Logger

	focused bool

	viewport viewport.Model
	surface  *layer.Surface
	views    []PluginView
	err      error

	lastVersion uint64
	lastState   buffer.State

	mouseAnchor   buffer.Pos
	mouseDragging bool
}

// New builds the editor and instantiates every configured plugin view.
//
// Plugin construction errors do not abort New; they are joined into Err and
// the failing plugin is skipped.
func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		log:      cfg.Logger,
		focused:  true,
		viewport: viewport.New(0, 0),
		surface:  layer.NewSurface(layer.Rect{}),
	}
	m.lastVersion = m.buf.Version()
	m.lastState = m.buf.State()
	m.rebuildContent()

	for _, p := range cfg.Plugins {
		if p == nil {
			continue
		}
		pv, err := p.NewView(m)
		if err != nil {
			m.log.Error("plugin view construction failed", "error", err)
			m.err = errors.Join(m.err, err)
			continue
		}
		m.views = append(m.views, pv)
	}
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) State() buffer.State { return m.buf.State() }

func (m Model) Surface() *layer.Surface { return m.surface }

// Err reports plugin construction failures from New.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	width = max(width, 0)
	height = max(height, 0)
	m.viewport.Width = width
	m.viewport.Height = height
	m.surface.SetBounds(layer.Rect{Right: width, Bottom: height})

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// Destroy tears down every plugin view. Further updates reach no plugins.
func (m Model) Destroy() Model {
	for _, pv := range m.views {
		pv.Destroy()
	}
	m.views = nil
	return m
}

func (m Model) View() string {
	return m.surface.Composite(m.viewport.View())
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	h := m.viewport.Height
	if h <= 0 {
		return
	}
	cur := m.buf.Cursor()
	y := m.viewport.YOffset
	if cur.Row < y {
		m.viewport.SetYOffset(cur.Row)
		return
	}
	if cur.Row >= y+h {
		m.viewport.SetYOffset(cur.Row - h + 1)
	}
}
