package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadArgs_Defaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	require.NoError(t, err)

	assert.Zero(t, cfg.Menu.Debounce)
	assert.Empty(t, cfg.Menu.ContentPath)
	assert.Empty(t, cfg.Editor.FilePath)
	assert.False(t, cfg.Editor.ShowLineNums)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Trace)
	assert.Equal(t, "0s", cfg.Flags["debounce"])
	assert.NoError(t, Validate(cfg))
}

func TestLoadArgs_FlagsOverrideEnvironment(t *testing.T) {
	env := []string{
		"SELMENU_DEBOUNCE=100",
		"SELMENU_MENU=env.yaml",
		"SELMENU_TRACE=true",
		"SELMENU_LOG_LEVEL=warn",
	}
	args := []string{"-debounce", "250ms", "-menu", "flag.yaml", "-line-numbers", "-no-color"}

	cfg, err := LoadArgs(args, env)
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.Menu.Debounce)
	assert.Equal(t, "flag.yaml", cfg.Menu.ContentPath)
	assert.True(t, cfg.Logging.Trace)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.True(t, cfg.Editor.ShowLineNums)
	assert.True(t, cfg.Editor.NoColor)
	assert.Equal(t, args, cfg.Args)
}

func TestLoadArgs_EnvironmentValues(t *testing.T) {
	cases := []struct {
		name string
		env  string
		want time.Duration
	}{
		{name: "milliseconds", env: "SELMENU_DEBOUNCE=300", want: 300 * time.Millisecond},
		{name: "duration", env: "SELMENU_DEBOUNCE=1.5s", want: 1500 * time.Millisecond},
		{name: "garbage falls back", env: "SELMENU_DEBOUNCE=soon", want: 0},
		{name: "blank falls back", env: "SELMENU_DEBOUNCE= ", want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := LoadArgs(nil, []string{tc.env, "MALFORMED", "=x"})
			require.NoError(t, err)
			assert.Equal(t, tc.want, cfg.Menu.Debounce)
		})
	}
}

func TestLoadArgs_PositionalFile(t *testing.T) {
	cfg, err := LoadArgs([]string{"-trace", "notes.txt"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "notes.txt", cfg.Editor.FilePath)
	assert.Equal(t, "notes.txt", cfg.Flags["file"])

	cfg, err = LoadArgs([]string{"-file", "a.txt", "b.txt"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "a.txt", cfg.Editor.FilePath)
}

func TestLoadArgs_Errors(t *testing.T) {
	_, err := LoadArgs([]string{"-bogus"}, nil)
	assert.Error(t, err)

	_, err = LoadArgs([]string{"-debounce", "fast"}, nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg, err := LoadArgs([]string{"-debounce", "-5ms"}, nil)
	require.NoError(t, err)
	assert.EqualError(t, Validate(cfg), "debounce must be >= 0 (got -5ms)")

	cfg, err = LoadArgs([]string{"-log-level", "loud"}, nil)
	require.NoError(t, err)
	assert.EqualError(t, Validate(cfg), "invalid log level: loud")
}
