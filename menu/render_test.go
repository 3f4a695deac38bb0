package menu

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/selmenu/buffer"
)

func plainStyle() Style {
	return Style{Separator: " | "}
}

func TestGroupedRenderer_Layout(t *testing.T) {
	v := newFakeView(40, 10)
	content := []Group{
		{{Label: "Bold", Key: "ctrl+b"}, {Label: "Italic"}},
		{},
		{{Label: "Link"}},
	}

	r, err := GroupedRenderer(plainStyle())(v, content)
	require.NoError(t, err)
	assert.Equal(t, "Bold ctrl+b Italic | Link", ansi.Strip(r.View()))
}

func TestRenderGrouped_DrawsFrame(t *testing.T) {
	v := newFakeView(40, 10)
	r, err := RenderGrouped(v, testContent)
	require.NoError(t, err)

	view := ansi.Strip(r.View())
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "╭"))
	assert.Contains(t, lines[1], "Bold Italic")
	assert.Equal(t, lipgloss.Width(lines[0]), lipgloss.Width(lines[1]))
}

func TestGroupedRenderer_RejectsEmptyContent(t *testing.T) {
	_, err := GroupedRenderer(plainStyle())(newFakeView(1, 1), []Group{{}, {}})
	assert.ErrorIs(t, err, ErrNoContent)
}

func TestGroupedRenderer_UpdateReportsChanges(t *testing.T) {
	v := newFakeView(40, 10)
	v.set("hello world", pos(0, 0), pos(0, 0))
	hasSel := func(s buffer.State) bool { return !s.Selection.Empty() }
	content := []Group{{
		{Label: "Cut", Enable: hasSel},
		{Label: "Wide", Active: func(s buffer.State) bool { return s.Selection.Range().End.Col > 5 }},
	}}

	r, err := GroupedRenderer(plainStyle())(v, content)
	require.NoError(t, err)
	g := r.(*groupedMenu)
	assert.Equal(t, itemStatus{enabled: false}, g.status[0][0])

	v.set("hello world", pos(0, 0), pos(0, 3))
	assert.True(t, r.Update(v.State()))
	assert.Equal(t, itemStatus{enabled: true}, g.status[0][0])
	assert.False(t, r.Update(v.State()), "same state changes nothing")

	v.set("hello world", pos(0, 0), pos(0, 8))
	assert.True(t, r.Update(v.State()))
	assert.Equal(t, itemStatus{enabled: true, active: true}, g.status[0][1])
}

func TestGroupedRenderer_CopiesContent(t *testing.T) {
	v := newFakeView(40, 10)
	content := []Group{{{Label: "Bold"}}}

	r, err := GroupedRenderer(plainStyle())(v, content)
	require.NoError(t, err)
	content[0][0].Label = "Changed"
	assert.Equal(t, "Bold", ansi.Strip(r.View()))
}
