package layer

import (
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

// Surface is the container nodes are composited onto. Its bounds are the
// offset container used for placement.
type Surface struct {
	bounds Rect
	nodes  []*Node
}

func NewSurface(bounds Rect) *Surface {
	return &Surface{bounds: bounds}
}

func (s *Surface) Bounds() Rect { return s.bounds }

func (s *Surface) SetBounds(r Rect) { s.bounds = r }

// Append attaches n on top of existing nodes.
func (s *Surface) Append(n *Node) error {
	if n.parent != nil {
		return ErrAttached
	}
	n.parent = s
	s.nodes = append(s.nodes, n)
	return nil
}

// Remove detaches n. It reports false when n was not attached here.
func (s *Surface) Remove(n *Node) bool {
	if n == nil || n.parent != s {
		return false
	}
	for i, cur := range s.nodes {
		if cur == n {
			s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)
			break
		}
	}
	n.parent = nil
	return true
}

// Nodes returns the attached nodes, bottom first.
func (s *Surface) Nodes() []*Node {
	return append([]*Node(nil), s.nodes...)
}

// Composite draws every visible node over base, in attach order.
//
// Node positions may fall outside the surface (a menu above the first row);
// the drawn block is clipped to the top-left corner in that case, the node's
// own position is left untouched.
func (s *Surface) Composite(base string) string {
	out := base
	for _, n := range s.nodes {
		if n.hidden {
			continue
		}
		fg := n.Render()
		if fg == "" {
			continue
		}
		x := max(n.x-s.bounds.Left, 0)
		y := max(n.y-s.bounds.Top, 0)
		out = overlay.Composite(fg, out, overlay.Left, overlay.Top, x, y)
	}
	return out
}
