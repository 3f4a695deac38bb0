// Package layer provides floating blocks composited over a rendered view.
//
// A Node is the terminal counterpart of an absolutely positioned element:
// it is created once, attached to one Surface, moved and toggled in place,
// and removed once.
package layer

import (
	"errors"

	"github.com/charmbracelet/lipgloss"
)

var (
	// ErrDetached is returned when a node must be measured against a
	// container it is not attached to.
	ErrDetached = errors.New("layer: node is not attached to a surface")
	// ErrAttached is returned when appending a node that already has a parent.
	ErrAttached = errors.New("layer: node is already attached")
)

// Rect is a cell rectangle. Right and Bottom are exclusive.
type Rect struct {
	Left, Top, Right, Bottom int
}

func (r Rect) Width() int  { return r.Right - r.Left }
func (r Rect) Height() int { return r.Bottom - r.Top }

// Viewer is anything that renders to a string. Menu renderers and plain
// strings wrapped in Text both satisfy it.
type Viewer interface {
	View() string
}

// Text is a static Viewer.
type Text string

func (t Text) View() string { return string(t) }

type Node struct {
	class  string
	hidden bool
	x, y   int
	child  Viewer
	parent *Surface
}

// NewNode returns a visible, detached node at (0,0).
func NewNode(class string) *Node {
	return &Node{class: class}
}

func (n *Node) Class() string { return n.class }

func (n *Node) Show() { n.hidden = false }

func (n *Node) Hide() { n.hidden = true }

func (n *Node) Hidden() bool { return n.hidden }

// MoveTo sets the node's top-left corner in surface coordinates.
func (n *Node) MoveTo(x, y int) {
	n.x, n.y = x, y
}

func (n *Node) Position() (x, y int) { return n.x, n.y }

// SetChild replaces the node's content.
func (n *Node) SetChild(v Viewer) { n.child = v }

func (n *Node) Child() Viewer { return n.child }

// Render returns the child's current view, or "" without a child.
func (n *Node) Render() string {
	if n.child == nil {
		return ""
	}
	return n.child.View()
}

// Size measures the rendered content in cells.
func (n *Node) Size() (width, height int) {
	s := n.Render()
	if s == "" {
		return 0, 0
	}
	return lipgloss.Width(s), lipgloss.Height(s)
}

// Bounds returns the node's rectangle in surface coordinates.
func (n *Node) Bounds() Rect {
	w, h := n.Size()
	return Rect{Left: n.x, Top: n.y, Right: n.x + w, Bottom: n.y + h}
}

// Parent returns the surface the node is attached to, or nil.
func (n *Node) Parent() *Surface { return n.parent }

func (n *Node) Attached() bool { return n.parent != nil }
