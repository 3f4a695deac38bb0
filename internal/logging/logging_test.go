package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configureTemp(t *testing.T, lvl slog.Level) string {
	t.Helper()
	prev := slog.Default()
	path := filepath.Join(t.TempDir(), "nested", "selmenu.log")
	_, err := Configure(path, lvl)
	require.NoError(t, err)
	t.Cleanup(func() {
		SetTraceEnabled(false)
		_ = Close()
		slog.SetDefault(prev)
	})
	return path
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestConfigure_WritesToFileAndFiltersLevel(t *testing.T) {
	path := configureTemp(t, slog.LevelInfo)

	slog.Info("menu shown", "x", 3)
	Logger().Debug("dropped")

	out := readLog(t, path)
	assert.Contains(t, out, "msg=\"menu shown\"")
	assert.Contains(t, out, "x=3")
	assert.NotContains(t, out, "dropped")
}

func TestConfigure_AppendsToExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "selmenu.log")
	require.NoError(t, os.WriteFile(path, []byte("earlier\n"), 0o644))
	prev := slog.Default()
	t.Cleanup(func() {
		_ = Close()
		slog.SetDefault(prev)
	})

	l, err := Configure(path, slog.LevelInfo)
	require.NoError(t, err)
	l.Warn("later")

	out := readLog(t, path)
	assert.Contains(t, out, "earlier\n")
	assert.Contains(t, out, "later")
}

func TestTrace_OnlyWhenEnabled(t *testing.T) {
	path := configureTemp(t, slog.LevelWarn)

	Trace("app.start", "tty", false)
	assert.NotContains(t, readLog(t, path), "app.start")

	SetTraceEnabled(true)
	assert.True(t, TraceEnabled())
	Trace("app.start", "tty", false)
	Logger().Debug("transition")
	out := readLog(t, path)
	assert.Contains(t, out, "app.start")
	assert.Contains(t, out, "transition")

	SetTraceEnabled(false)
	Logger().Info("quiet")
	assert.NotContains(t, readLog(t, path), "quiet")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.EqualError(t, err, "invalid log level: loud")
}
