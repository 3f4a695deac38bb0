package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/selmenu/buffer"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if tea.MouseEvent(msg).IsWheel() {
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	if !m.focused {
		return m, nil
	}

	// Only left button interactions move the cursor or the selection.
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.inBounds(msg.X, msg.Y) {
			return m, nil
		}
		p := m.screenToDocPos(msg.X, msg.Y)
		if msg.Shift {
			m.mouseAnchor = m.buf.Selection().Anchor
			m.buf.SetSelection(buffer.Selection{Anchor: m.mouseAnchor, Head: p})
		} else {
			m.mouseAnchor = p
			m.buf.SetCursor(p)
		}
		m.mouseDragging = true

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m, nil
		}
		p := m.screenToDocPos(m.clampToBounds(msg.X, msg.Y))
		m.buf.SetSelection(buffer.Selection{Anchor: m.mouseAnchor, Head: p})

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}
	return m, nil
}

func (m Model) inBounds(x, y int) bool {
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}

func (m Model) clampToBounds(x, y int) (int, int) {
	return clampInt(x, 0, m.viewport.Width-1), clampInt(y, 0, m.viewport.Height-1)
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
