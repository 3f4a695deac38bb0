package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/selmenu/buffer"
	"github.com/iw2rmb/selmenu/layer"
)

// View is what plugin views see of the editor.
type View interface {
	// State returns the current snapshot.
	State() buffer.State
	// CoordsAtPos returns the cell at pos in surface coordinates.
	CoordsAtPos(pos buffer.Pos) (layer.Rect, error)
	// Surface is the container floating nodes attach to.
	Surface() *layer.Surface
}

// Plugin creates one PluginView per editor.
type Plugin interface {
	NewView(v View) (PluginView, error)
}

// PluginFunc adapts a function to Plugin.
type PluginFunc func(v View) (PluginView, error)

func (f PluginFunc) NewView(v View) (PluginView, error) { return f(v) }

// PluginView follows the editor's lifecycle.
//
// Update is called after every state change with the state before it.
// Message receives messages the editor does not handle itself, which is how
// commands returned by a plugin view come back to it. Destroy is called once.
type PluginView interface {
	Update(v View, prev buffer.State) (tea.Cmd, error)
	Message(v View, msg tea.Msg) (tea.Cmd, error)
	Destroy()
}

// PluginErrorMsg carries a plugin view error to the host program.
type PluginErrorMsg struct {
	Err error
}

func (m PluginErrorMsg) Error() string { return m.Err.Error() }

func pluginErrorCmd(err error) tea.Cmd {
	return func() tea.Msg { return PluginErrorMsg{Err: err} }
}
