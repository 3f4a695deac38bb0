package menu

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/selmenu/buffer"
	"github.com/iw2rmb/selmenu/editor"
)

// Item is one menu entry. Enable and Active are optional; a nil Enable means
// always enabled, a nil Active means never active.
type Item struct {
	Label string
	Key   string

	Enable func(buffer.State) bool
	Active func(buffer.State) bool
}

// Group is a run of items rendered together; groups are separated visually.
type Group []Item

// Rendered is the body of a menu. The controller attaches it to its node and
// calls Update on every state transition.
type Rendered interface {
	View() string
	// Update refreshes item status and reports whether anything changed.
	Update(state buffer.State) bool
}

// Renderer builds the menu body for an editor view.
type Renderer func(v editor.View, content []Group) (Rendered, error)

// Style controls RenderGrouped.
type Style struct {
	Frame     lipgloss.Style
	Item      lipgloss.Style
	Disabled  lipgloss.Style
	Active    lipgloss.Style
	Key       lipgloss.Style
	Separator string
}

func DefaultStyle() Style {
	return Style{
		Frame:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		Item:      lipgloss.NewStyle(),
		Disabled:  lipgloss.NewStyle().Faint(true),
		Active:    lipgloss.NewStyle().Bold(true).Reverse(true),
		Key:       lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Separator: " │ ",
	}
}

// RenderGrouped renders content with DefaultStyle.
func RenderGrouped(v editor.View, content []Group) (Rendered, error) {
	return GroupedRenderer(DefaultStyle())(v, content)
}

// GroupedRenderer lays out each group's items on one row, groups separated by
// style.Separator, inside style.Frame.
func GroupedRenderer(style Style) Renderer {
	return func(v editor.View, content []Group) (Rendered, error) {
		if countItems(content) == 0 {
			return nil, ErrNoContent
		}
		g := &groupedMenu{style: style}
		for _, group := range content {
			if len(group) == 0 {
				continue
			}
			g.groups = append(g.groups, append(Group(nil), group...))
		}
		g.status = make([][]itemStatus, len(g.groups))
		for i := range g.groups {
			g.status[i] = make([]itemStatus, len(g.groups[i]))
		}
		g.Update(v.State())
		return g, nil
	}
}

type itemStatus struct {
	enabled bool
	active  bool
}

type groupedMenu struct {
	style  Style
	groups []Group
	status [][]itemStatus
}

func (g *groupedMenu) Update(state buffer.State) bool {
	changed := false
	for gi, group := range g.groups {
		for ii, item := range group {
			next := itemStatus{enabled: true}
			if item.Enable != nil {
				next.enabled = item.Enable(state)
			}
			if item.Active != nil {
				next.active = item.Active(state)
			}
			if g.status[gi][ii] != next {
				g.status[gi][ii] = next
				changed = true
			}
		}
	}
	return changed
}

func (g *groupedMenu) View() string {
	parts := make([]string, 0, len(g.groups))
	for gi, group := range g.groups {
		items := make([]string, 0, len(group))
		for ii, item := range group {
			items = append(items, g.renderItem(item, g.status[gi][ii]))
		}
		parts = append(parts, strings.Join(items, " "))
	}
	return g.style.Frame.Render(strings.Join(parts, g.style.Separator))
}

func (g *groupedMenu) renderItem(item Item, st itemStatus) string {
	style := g.style.Item
	switch {
	case !st.enabled:
		style = g.style.Disabled
	case st.active:
		style = g.style.Active
	}
	out := style.Render(item.Label)
	if item.Key != "" {
		out += " " + g.style.Key.Render(item.Key)
	}
	return out
}
