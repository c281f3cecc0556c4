package harness

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own FIELDNOTES_HOME.
type TestEnvironment struct {
	FieldnotesHome string
	extraEnv       map[string]string
	tb             testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp FIELDNOTES_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		FieldnotesHome: tb.TempDir(),
		extraEnv:       make(map[string]string),
		tb:             tb,
	}
}

// NewMigratedEnvironment creates an environment whose database already has
// the repository's migrations applied
func NewMigratedEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	env := NewTestEnvironment(tb)
	env.WriteSettings(map[string]any{"migrations_dir": MigrationsDir()})

	result := RunCommand(tb, env, "migrate")
	if result.ExitCode != 0 {
		tb.Fatalf("migrate failed (exit %d): %s", result.ExitCode, result.Stderr)
	}
	return env
}

// Environ returns environment variables configured for test isolation.
// It filters out FIELDNOTES_* variables and sets:
//   - FIELDNOTES_HOME to the temp directory
//   - FIELDNOTES_DEBUG to empty string (disables debug logging)
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+2+len(e.extraEnv))

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "FIELDNOTES_") {
			continue
		}
		if _, overridden := e.extraEnv[key]; overridden {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"FIELDNOTES_HOME="+e.FieldnotesHome,
		"FIELDNOTES_DEBUG=",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the test database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.FieldnotesHome, "fieldnotes.db")
}

// SettingsPath returns the path to settings.json.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.FieldnotesHome, "settings.json")
}

// WriteSettings replaces settings.json with the given values.
func (e *TestEnvironment) WriteSettings(values map[string]any) {
	e.tb.Helper()

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		e.tb.Fatalf("Failed to marshal settings: %v", err)
	}
	if err := os.WriteFile(e.SettingsPath(), data, 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}
