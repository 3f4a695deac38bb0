package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/iw2rmb/selmenu/internal/logging"
)

// Config captures runtime configuration for the demo.
type Config struct {
	Editor  Editor
	Menu    Menu
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Editor struct {
	// FilePath is the file opened into the editor; empty starts with sample text.
	FilePath     string
	ShowLineNums bool
	NoColor      bool
}

type Menu struct {
	// ContentPath is a YAML menu definition; empty uses the built-in menu.
	ContentPath string
	Debounce    time.Duration
}

type Logging struct {
	FilePath string
	Level    string
	Trace    bool
}

const (
	envDebounce    = "SELMENU_DEBOUNCE"
	envMenu        = "SELMENU_MENU"
	envFile        = "SELMENU_FILE"
	envLineNumbers = "SELMENU_LINE_NUMBERS"
	envLogFile     = "SELMENU_LOG_FILE"
	envLogLevel    = "SELMENU_LOG_LEVEL"
	envTrace       = "SELMENU_TRACE"
	envNoColor     = "SELMENU_NO_COLOR"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Flags win over
// the environment; unparsable environment values fall back to defaults.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("selmenu-demo", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	debounce := fs.Duration("debounce", envOrDuration(env, envDebounce, 0), "delay before the menu appears after a selection change (0 shows immediately)")
	menu := fs.String("menu", envOrDefault(env, envMenu, ""), "path to a YAML menu definition")
	file := fs.String("file", envOrDefault(env, envFile, ""), "file to open in the editor")
	lineNums := fs.Bool("line-numbers", envOrBool(env, envLineNumbers, false), "show the line number gutter")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	logLevel := fs.String("log-level", envOrDefault(env, envLogLevel, "info"), "log level: debug, info, warn or error")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "log every menu transition")
	noColor := fs.Bool("no-color", envOrBool(env, envNoColor, false), "render without colors")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Editor: Editor{
			FilePath:     *file,
			ShowLineNums: *lineNums,
			NoColor:      *noColor,
		},
		Menu: Menu{
			ContentPath: *menu,
			Debounce:    *debounce,
		},
		Logging: Logging{
			FilePath: *logFile,
			Level:    *logLevel,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"debounce":    debounce.String(),
			"menu":        *menu,
			"file":        *file,
			"lineNumbers": strconv.FormatBool(*lineNums),
			"logFile":     *logFile,
			"logLevel":    *logLevel,
			"trace":       strconv.FormatBool(*trace),
			"noColor":     strconv.FormatBool(*noColor),
		},
		Args: append([]string(nil), args...),
	}
	if rest := fs.Args(); len(rest) > 0 && cfg.Editor.FilePath == "" {
		cfg.Editor.FilePath = rest[0]
		cfg.Flags["file"] = rest[0]
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		values[key] = value
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// envOrDuration accepts Go durations ("250ms") and bare milliseconds ("250").
func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	v = strings.TrimSpace(v)
	if !ok || v == "" {
		return fallback
	}
	if ms, err := strconv.Atoi(v); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects values the demo cannot run with.
func Validate(cfg Config) error {
	if cfg.Menu.Debounce < 0 {
		return fmt.Errorf("debounce must be >= 0 (got %s)", cfg.Menu.Debounce)
	}
	if _, err := logging.ParseLevel(cfg.Logging.Level); err != nil {
		return err
	}
	return nil
}
