package menu

import (
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/selmenu/buffer"
	"github.com/iw2rmb/selmenu/editor"
	"github.com/iw2rmb/selmenu/layer"
)

// fakeView maps Pos{Row, Col} to the cell (Col, Row).
type fakeView struct {
	state   buffer.State
	surface *layer.Surface
	coords  func(buffer.Pos) (layer.Rect, error)
}

func newFakeView(width, height int) *fakeView {
	return &fakeView{
		state:   buffer.State{Doc: buffer.NewDoc(""), Selection: buffer.Cursor(buffer.Pos{})},
		surface: layer.NewSurface(layer.Rect{Right: width, Bottom: height}),
	}
}

func (v *fakeView) State() buffer.State { return v.state }

func (v *fakeView) Surface() *layer.Surface { return v.surface }

func (v *fakeView) CoordsAtPos(p buffer.Pos) (layer.Rect, error) {
	if v.coords != nil {
		return v.coords(p)
	}
	return layer.Rect{Left: p.Col, Top: p.Row, Right: p.Col + 1, Bottom: p.Row + 1}, nil
}

// set moves the view to a new state and returns the previous one.
func (v *fakeView) set(text string, anchor, head buffer.Pos) buffer.State {
	prev := v.state
	v.state = buffer.State{
		Doc:       buffer.NewDoc(text),
		Selection: buffer.Selection{Anchor: anchor, Head: head},
	}
	return prev
}

func pos(row, col int) buffer.Pos { return buffer.Pos{Row: row, Col: col} }

// boxRendered is a fixed-size menu body.
type boxRendered struct {
	width, height int
	updates       int
}

func (b *boxRendered) View() string {
	row := strings.Repeat("x", b.width)
	rows := make([]string, b.height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

func (b *boxRendered) Update(buffer.State) bool {
	b.updates++
	return false
}

func fixedRenderer(r Rendered) Renderer {
	return func(editor.View, []Group) (Rendered, error) { return r, nil }
}

// fakeClock collects ticks and delivers them in deadline order on advance.
type fakeClock struct {
	now    time.Duration
	timers []fakeTimer
}

type fakeTimer struct {
	at time.Duration
	fn func(time.Time) tea.Msg
}

func (f *fakeClock) tick(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	f.timers = append(f.timers, fakeTimer{at: f.now + d, fn: fn})
	return func() tea.Msg { return nil }
}

// advance moves time forward by d, handing each due tick to deliver.
func (f *fakeClock) advance(d time.Duration, deliver func(tea.Msg)) {
	target := f.now + d
	for {
		sort.SliceStable(f.timers, func(i, j int) bool { return f.timers[i].at < f.timers[j].at })
		if len(f.timers) == 0 || f.timers[0].at > target {
			break
		}
		t := f.timers[0]
		f.timers = f.timers[1:]
		f.now = t.at
		deliver(t.fn(time.Time{}))
	}
	f.now = target
}

// recorder counts strategy and callback invocations with the fake time.
type recorder struct {
	clock   *fakeClock
	shows   []time.Duration
	hides   int
	onShows int
	onHides int
}

func (r *recorder) options(content []Group, rendered *boxRendered) Options {
	return Options{
		Content: content,
		Show: func(v editor.View, n *layer.Node) error {
			if r.clock != nil {
				r.shows = append(r.shows, r.clock.now)
			} else {
				r.shows = append(r.shows, 0)
			}
			return DefaultShow(v, n)
		},
		Hide: func(n *layer.Node) {
			r.hides++
			DefaultHide(n)
		},
		OnShow:   func(*layer.Node) { r.onShows++ },
		OnHide:   func(*layer.Node) { r.onHides++ },
		Renderer: fixedRenderer(rendered),
	}
}

var testContent = []Group{{{Label: "Bold"}, {Label: "Italic"}}}
