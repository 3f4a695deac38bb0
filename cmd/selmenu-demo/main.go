package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/selmenu"
	"github.com/iw2rmb/selmenu/internal/config"
	"github.com/iw2rmb/selmenu/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return 2
	}

	level, _ := logging.ParseLevel(cfg.Logging.Level)
	log, err := logging.Configure(cfg.Logging.FilePath, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer logging.Close()
	logging.SetTraceEnabled(cfg.Logging.Trace)
	traceStartup(cfg)

	if cfg.Editor.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	m, err := newModel(cfg, log)
	if err != nil {
		log.Error("startup failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		log.Error("program failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func traceStartup(cfg config.Config) {
	args := []any{
		"version", selmenu.UserAgent(),
		"argv", cfg.Args,
		"flags", cfg.Flags,
		"tty", collectTTYDetails(),
	}
	if exe, err := os.Executable(); err == nil {
		args = append(args, "executable", exe)
	}
	if cwd, err := os.Getwd(); err == nil {
		args = append(args, "cwd", cwd)
	}
	logging.Trace("app.start", args...)
}
