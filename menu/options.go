package menu

import (
	"errors"
	"log/slog"
	"time"

	"github.com/iw2rmb/selmenu/editor"
	"github.com/iw2rmb/selmenu/layer"
)

// ErrNoContent is returned when Options carries no menu items.
var ErrNoContent = errors.New("menu: content has no items")

// ShowFunc makes the menu visible and places it.
type ShowFunc func(v editor.View, menu *layer.Node) error

// HideFunc makes the menu invisible.
type HideFunc func(menu *layer.Node)

// Options configures a Controller. Only Content is required.
type Options struct {
	// Content is passed to the Renderer.
	Content []Group

	// Show replaces DefaultShow.
	Show ShowFunc
	// Hide replaces DefaultHide.
	Hide HideFunc

	// OnShow and OnHide run after the corresponding strategy.
	OnShow func(menu *layer.Node)
	OnHide func(menu *layer.Node)

	// Debounce delays showing after a qualifying selection change.
	// Zero shows immediately.
	Debounce time.Duration

	// Renderer turns Content into the menu body. Default: RenderGrouped.
	Renderer Renderer

	Logger *slog.Logger
}

// DebounceMillis converts a millisecond count into a Debounce value.
// Non-positive counts mean no debounce.
func DebounceMillis(ms int) time.Duration {
	if ms <= 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}

func normalizeOptions(opts Options) (Options, error) {
	if countItems(opts.Content) == 0 {
		return opts, ErrNoContent
	}
	if opts.Show == nil {
		opts.Show = DefaultShow
	}
	if opts.Hide == nil {
		opts.Hide = DefaultHide
	}
	if opts.Renderer == nil {
		opts.Renderer = RenderGrouped
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Debounce < 0 {
		opts.Debounce = 0
	}
	return opts, nil
}

func countItems(content []Group) int {
	n := 0
	for _, g := range content {
		n += len(g)
	}
	return n
}
