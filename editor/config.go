package editor

import "log/slog"

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums bool
	Style        Style
	TabWidth     int // default: 4

	KeyMap KeyMap

	// Forwarded to buffer.Options.
	HistoryLimit int

	ReadOnly  bool
	Clipboard Clipboard

	// Plugins get one view each, created by New and destroyed by Destroy.
	Plugins []Plugin

	// OnChange is called after each effective buffer change.
	OnChange func(ChangeEvent)

	Logger *slog.Logger
}

const defaultTabWidth = 4

func normalizeConfig(cfg Config) Config {
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = defaultTabWidth
	}
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Style.isZero() {
		cfg.Style = DefaultStyle()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return cfg
}
