package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/selmenu/buffer"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		m = m.updateKey(msg)
	case tea.MouseMsg:
		var cmd tea.Cmd
		m, cmd = m.updateMouse(msg)
		cmds = append(cmds, cmd)
	default:
		cmds = append(cmds, m.forward(msg)...)
	}

	// Hosts may also mutate the buffer directly between messages.
	cmds = append(cmds, m.syncFromBuffer()...)
	return m, tea.Batch(cmds...)
}

// syncFromBuffer re-renders after a buffer change and hands the transition
// to every plugin view.
func (m *Model) syncFromBuffer() []tea.Cmd {
	ver := m.buf.Version()
	if ver == m.lastVersion {
		return nil
	}
	prev := m.lastState
	cur := m.buf.State()
	m.lastVersion = ver
	m.lastState = cur

	m.rebuildContent()
	m.followCursor()

	if m.cfg.OnChange != nil {
		m.cfg.OnChange(ChangeEvent{Version: ver, Prev: prev, State: cur})
	}

	var cmds []tea.Cmd
	for _, pv := range m.views {
		cmd, err := pv.Update(*m, prev)
		cmds = append(cmds, m.pluginResult(cmd, err)...)
	}
	return cmds
}

func (m Model) forward(msg tea.Msg) []tea.Cmd {
	var cmds []tea.Cmd
	for _, pv := range m.views {
		cmd, err := pv.Message(m, msg)
		cmds = append(cmds, m.pluginResult(cmd, err)...)
	}
	return cmds
}

func (m Model) pluginResult(cmd tea.Cmd, err error) []tea.Cmd {
	if err != nil {
		m.log.Error("plugin view failed", "error", err)
		return []tea.Cmd{cmd, pluginErrorCmd(err)}
	}
	return []tea.Cmd{cmd}
}

func (m Model) updateKey(msg tea.KeyMsg) Model {
	if !m.focused {
		return m
	}

	// Paste events insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.buf.InsertText(string(msg.Runes))
		}
		return m
	}

	km := m.cfg.KeyMap
	mv := func(unit buffer.MoveUnit, dir buffer.MoveDir, extend bool) {
		m.buf.Move(buffer.Move{Unit: unit, Dir: dir, Extend: extend})
	}
	edit := func(fn func()) {
		if !m.cfg.ReadOnly {
			fn()
		}
	}

	switch {
	case key.Matches(msg, km.Left):
		mv(buffer.MoveGrapheme, buffer.DirLeft, false)
	case key.Matches(msg, km.Right):
		mv(buffer.MoveGrapheme, buffer.DirRight, false)
	case key.Matches(msg, km.Up):
		mv(buffer.MoveGrapheme, buffer.DirUp, false)
	case key.Matches(msg, km.Down):
		mv(buffer.MoveGrapheme, buffer.DirDown, false)

	case key.Matches(msg, km.ShiftLeft):
		mv(buffer.MoveGrapheme, buffer.DirLeft, true)
	case key.Matches(msg, km.ShiftRight):
		mv(buffer.MoveGrapheme, buffer.DirRight, true)
	case key.Matches(msg, km.ShiftUp):
		mv(buffer.MoveGrapheme, buffer.DirUp, true)
	case key.Matches(msg, km.ShiftDown):
		mv(buffer.MoveGrapheme, buffer.DirDown, true)

	case key.Matches(msg, km.WordLeft):
		mv(buffer.MoveWord, buffer.DirLeft, false)
	case key.Matches(msg, km.WordRight):
		mv(buffer.MoveWord, buffer.DirRight, false)
	case key.Matches(msg, km.ShiftWordLeft):
		mv(buffer.MoveWord, buffer.DirLeft, true)
	case key.Matches(msg, km.ShiftWordRight):
		mv(buffer.MoveWord, buffer.DirRight, true)

	case key.Matches(msg, km.Home):
		mv(buffer.MoveLine, buffer.DirHome, false)
	case key.Matches(msg, km.End):
		mv(buffer.MoveLine, buffer.DirEnd, false)
	case key.Matches(msg, km.ShiftHome):
		mv(buffer.MoveLine, buffer.DirHome, true)
	case key.Matches(msg, km.ShiftEnd):
		mv(buffer.MoveLine, buffer.DirEnd, true)
	case key.Matches(msg, km.SelectAll):
		m.buf.SelectAll()

	case key.Matches(msg, km.Backspace):
		edit(m.buf.DeleteBackward)
	case key.Matches(msg, km.Delete):
		edit(m.buf.DeleteForward)
	case key.Matches(msg, km.Enter):
		edit(m.buf.InsertNewline)

	case key.Matches(msg, km.Undo):
		edit(func() { _ = m.buf.Undo() })
	case key.Matches(msg, km.Redo):
		edit(func() { _ = m.buf.Redo() })

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		m.copySelection()
		edit(m.buf.DeleteSelection)
	case key.Matches(msg, km.Paste):
		edit(m.pasteClipboard)

	default:
		switch {
		case msg.Type == tea.KeyTab:
			edit(func() { m.buf.InsertText("\t") })
		case msg.Type == tea.KeySpace:
			edit(func() { m.buf.InsertText(" ") })
		case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
			edit(func() { m.buf.InsertText(string(msg.Runes)) })
		}
	}
	return m
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := m.buf.State().SelectedText()
	if s == "" {
		return
	}
	if err := m.cfg.Clipboard.WriteText(s); err != nil {
		m.log.Warn("clipboard write failed", "error", err)
	}
}

func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.log.Warn("clipboard read failed", "error", err)
		return
	}
	if s != "" {
		m.buf.InsertText(s)
	}
}
