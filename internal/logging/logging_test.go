package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_DiscardsWhenDebugDisabled(t *testing.T) {
	t.Setenv("FIELDNOTES_DEBUG", "")
	t.Setenv("FIELDNOTES_DEBUG_FILE", "")

	path, err := Initialize(false, "", DefaultMaxLogFiles)
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.NotNil(t, Logger)
}

func TestInitialize_CustomDebugFile(t *testing.T) {
	t.Setenv("FIELDNOTES_DEBUG", "")
	t.Setenv("FIELDNOTES_DEBUG_FILE", "")
	logFile := filepath.Join(t.TempDir(), "nested", "debug.log")

	path, err := Initialize(false, logFile, DefaultMaxLogFiles)
	require.NoError(t, err)
	assert.Equal(t, logFile, path)

	Logger.Info("hello from test")
	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
}

func TestRotateLogs_RemovesOldest(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	names := []string{"a.log", "b.log", "c.log"}
	for i, name := range names {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte("x"), 0644))
		mod := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(p, mod, mod))
	}
	// Non-log files are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("x"), 0644))

	require.NoError(t, rotateLogs(dir, 2))

	_, err := os.Stat(filepath.Join(dir, "a.log"))
	assert.True(t, os.IsNotExist(err), "oldest log should be removed")
	_, err = os.Stat(filepath.Join(dir, "b.log"))
	assert.True(t, os.IsNotExist(err), "second oldest log should make room for the new one")
	assert.FileExists(t, filepath.Join(dir, "c.log"))
	assert.FileExists(t, filepath.Join(dir, "keep.txt"))
}

func TestAttachConsole_WritesInfoAndAbove(t *testing.T) {
	t.Setenv("FIELDNOTES_DEBUG", "")
	t.Setenv("FIELDNOTES_DEBUG_FILE", "")
	logFile := filepath.Join(t.TempDir(), "debug.log")
	_, err := Initialize(false, logFile, DefaultMaxLogFiles)
	require.NoError(t, err)

	var console bytes.Buffer
	AttachConsole(&console, slog.LevelInfo)
	Logger.Debug("file only")
	Logger.With("component", "api").Info("API server listening", "addr", "127.0.0.1:0")

	assert.NotContains(t, console.String(), "file only")
	assert.Contains(t, console.String(), "API server listening")
	assert.Contains(t, console.String(), "component=api")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "file only")
	assert.Contains(t, string(data), "API server listening")
}

func TestAttachConsole_WithoutDebugFile(t *testing.T) {
	t.Setenv("FIELDNOTES_DEBUG", "")
	t.Setenv("FIELDNOTES_DEBUG_FILE", "")
	_, err := Initialize(false, "", DefaultMaxLogFiles)
	require.NoError(t, err)

	var console bytes.Buffer
	AttachConsole(&console, slog.LevelWarn)
	Logger.Info("dropped")
	Logger.Warn("kept")

	assert.NotContains(t, console.String(), "dropped")
	assert.Contains(t, console.String(), "kept")
}
