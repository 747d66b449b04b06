package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDisabledDiscards(t *testing.T) {
	t.Setenv("GOBLIN_DEBUG", "")
	var buf bytes.Buffer

	closer, err := Initialize(Options{Stderr: &buf})
	require.NoError(t, err)
	defer closer.Close()

	Logger.Error("should not appear")
	assert.Empty(t, buf.String())
}

func TestInitializeDebugWritesJSONWithRunID(t *testing.T) {
	t.Setenv("GOBLIN_DEBUG", "")
	var buf bytes.Buffer

	closer, err := Initialize(Options{Debug: true, Stderr: &buf})
	require.NoError(t, err)
	defer closer.Close()

	buf.Reset()
	Logger.Info("hello", "branch", "master")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "master", entry["branch"])
	assert.NotEmpty(t, entry["run_id"])
}

func TestInitializeEnvEnablesDebug(t *testing.T) {
	t.Setenv("GOBLIN_DEBUG", "1")
	var buf bytes.Buffer

	closer, err := Initialize(Options{Stderr: &buf})
	require.NoError(t, err)
	defer closer.Close()

	assert.NotEmpty(t, buf.String())
}

func TestInitializeFile(t *testing.T) {
	t.Setenv("GOBLIN_DEBUG", "")
	path := filepath.Join(t.TempDir(), "logs", "goblin.log")

	closer, err := Initialize(Options{Debug: true, Level: "warn", File: path})
	require.NoError(t, err)

	Logger.Info("filtered out")
	Logger.Warn("kept")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "filtered out")
	assert.Contains(t, string(data), "kept")
}

func TestCloseFileFallsBackToStderr(t *testing.T) {
	t.Setenv("GOBLIN_DEBUG", "")
	path := filepath.Join(t.TempDir(), "goblin.log")
	var buf bytes.Buffer

	closer, err := Initialize(Options{Debug: true, File: path, Stderr: &buf})
	require.NoError(t, err)
	require.NoError(t, closer.Close())

	err = closer.Close()
	assert.ErrorIs(t, err, os.ErrClosed)

	Logger.Debug("after close", "error", err)
	assert.Contains(t, buf.String(), "after close")
	assert.Contains(t, buf.String(), "run_id")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelDebug,
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelDebug,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
	assert.False(t, ValidLevel("bogus"))
	assert.True(t, ValidLevel("Info"))
}
