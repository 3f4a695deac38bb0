package menu

import (
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/iw2rmb/selmenu/buffer"
	"github.com/iw2rmb/selmenu/editor"
	"github.com/iw2rmb/selmenu/layer"
)

// NodeClass is the class of the node a Controller attaches to the surface.
const NodeClass = "selection-menu"

// Phase is the visibility state of a Controller.
type Phase uint8

const (
	// Hidden: the menu is not shown and no show is pending.
	Hidden Phase = iota
	// PendingShow: a debounce tick is armed.
	PendingShow
	// Visible: the menu is shown.
	Visible
)

func (p Phase) String() string {
	switch p {
	case Hidden:
		return "hidden"
	case PendingShow:
		return "pending-show"
	case Visible:
		return "visible"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// pendingShow is the handle of the one armed debounce tick.
type pendingShow struct {
	seq uint64
}

// showMsg is delivered when a debounce tick elapses. It only acts when it
// matches the controller's current handle.
type showMsg struct {
	controller string
	seq        uint64
}

type tickFunc func(time.Duration, func(time.Time) tea.Msg) tea.Cmd

// Controller owns the menu node of one editor view and decides when it is
// shown. It implements editor.PluginView.
type Controller struct {
	id   string
	opts Options
	log  *slog.Logger

	node *layer.Node
	menu Rendered

	visible   bool
	timer     *pendingShow
	seq       uint64
	destroyed bool

	tick tickFunc
}

var _ editor.PluginView = (*Controller)(nil)

// New attaches a hidden menu node to v's surface and renders opts.Content
// into it. The node is removed again if anything after attaching fails.
func New(v editor.View, opts Options) (_ *Controller, err error) {
	opts, err = normalizeOptions(opts)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	c := &Controller{
		id:   id,
		opts: opts,
		log:  opts.Logger.With("controller", id),
		node: layer.NewNode(NodeClass),
		tick: tea.Tick,
	}

	surface := v.Surface()
	if err := surface.Append(c.node); err != nil {
		return nil, fmt.Errorf("menu: attach node: %w", err)
	}
	attached := false
	defer func() {
		if !attached {
			surface.Remove(c.node)
		}
	}()

	// The initial hide is not a transition: OnHide does not run.
	c.opts.Hide(c.node)

	rendered, err := c.opts.Renderer(v, opts.Content)
	if err != nil {
		return nil, fmt.Errorf("menu: render content: %w", err)
	}
	c.menu = rendered
	c.node.SetChild(rendered)

	attached = true
	c.log.Debug("menu created", "debounce", opts.Debounce)
	return c, nil
}

func (c *Controller) ID() string { return c.id }

// Node returns the menu node. It stays attached until Destroy.
func (c *Controller) Node() *layer.Node { return c.node }

func (c *Controller) Phase() Phase {
	switch {
	case c.timer != nil:
		return PendingShow
	case c.visible:
		return Visible
	default:
		return Hidden
	}
}

// Update handles one editor state transition.
//
// The rendered menu is refreshed first. Nothing else happens when neither
// the document nor the selection changed. An empty selection hides at once
// and drops any pending show. Otherwise the menu is shown, immediately or
// after Debounce; a change that arrives while a show is pending hides the
// menu and restarts the full delay.
func (c *Controller) Update(v editor.View, prev buffer.State) (tea.Cmd, error) {
	if c.destroyed {
		return nil, nil
	}

	state := v.State()
	c.menu.Update(state)

	if prev.Doc.Eq(state.Doc) && prev.Selection.Eq(state.Selection) {
		return nil, nil
	}

	switch {
	case state.Selection.Empty():
		c.cancelTimer()
		c.hide()
		return nil, nil
	case c.opts.Debounce > 0:
		if c.timer != nil {
			c.cancelTimer()
			c.hide()
		}
		return c.armTimer(), nil
	default:
		return nil, c.show(v)
	}
}

// Message handles the controller's own debounce ticks and ignores anything
// else, including ticks that were cancelled or belong to another controller.
func (c *Controller) Message(v editor.View, msg tea.Msg) (tea.Cmd, error) {
	m, ok := msg.(showMsg)
	if !ok || m.controller != c.id {
		return nil, nil
	}
	if c.destroyed || c.timer == nil || c.timer.seq != m.seq {
		c.log.Debug("stale show tick dropped", "seq", m.seq)
		return nil, nil
	}
	return nil, c.show(v)
}

// Destroy hides the menu, drops any pending show and removes the node.
// Calling it again is a no-op.
func (c *Controller) Destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true
	c.cancelTimer()

	if surface := c.node.Parent(); surface != nil {
		defer surface.Remove(c.node)
	}
	c.hide()
	c.log.Debug("menu destroyed")
}

// armTimer replaces the current handle, if any, with a fresh one and
// returns the tick that will fire it.
func (c *Controller) armTimer() tea.Cmd {
	c.cancelTimer()
	c.seq++
	c.timer = &pendingShow{seq: c.seq}
	msg := showMsg{controller: c.id, seq: c.seq}
	c.log.Debug("show pending", "seq", msg.seq, "after", c.opts.Debounce)
	return c.tick(c.opts.Debounce, func(time.Time) tea.Msg { return msg })
}

// cancelTimer drops the handle. The tick already in flight is ignored on
// arrival because its sequence no longer matches.
func (c *Controller) cancelTimer() {
	c.timer = nil
}

func (c *Controller) show(v editor.View) error {
	c.timer = nil
	if err := c.opts.Show(v, c.node); err != nil {
		return fmt.Errorf("menu: show: %w", err)
	}
	c.visible = true
	x, y := c.node.Position()
	c.log.Debug("menu shown", "x", x, "y", y)
	if c.opts.OnShow != nil {
		c.opts.OnShow(c.node)
	}
	return nil
}

func (c *Controller) hide() {
	c.opts.Hide(c.node)
	c.visible = false
	c.log.Debug("menu hidden")
	if c.opts.OnHide != nil {
		c.opts.OnHide(c.node)
	}
}
