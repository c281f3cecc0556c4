package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_MissingFileIsEmpty(t *testing.T) {
	t.Setenv("FIELDNOTES_HOME", t.TempDir())

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
}

func TestSaveAndLoadSettings(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested")
	t.Setenv("FIELDNOTES_HOME", home)

	delay := 5
	pathStyle := true
	require.NoError(t, SaveSettings(&Settings{
		APIURL:          "http://10.0.0.5:7420",
		DatabaseDriver:  "postgres",
		ErrorClearDelay: &delay,
		Keys:            KeyBindingsConfig{"save": {"ctrl+w"}},
		Recordings:      &RecordingSettings{S3PathStyle: &pathStyle, S3Region: "eu-west-1"},
	}))

	loaded, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.5:7420", loaded.APIURL)
	assert.Equal(t, "postgres", loaded.DatabaseDriver)
	assert.Equal(t, 5, *loaded.ErrorClearDelay)
	assert.Equal(t, KeyBindingValue{"ctrl+w"}, loaded.Keys["save"])
	require.NotNil(t, loaded.Recordings)
	assert.True(t, *loaded.Recordings.S3PathStyle)
}

func TestLoadSettings_InvalidJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv("FIELDNOTES_HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte("{"), 0644))

	_, err := LoadSettings()
	assert.ErrorContains(t, err, "invalid settings.json")
}

func TestKeyBindingValue_AcceptsStringOrArray(t *testing.T) {
	var keys KeyBindingsConfig
	require.NoError(t, json.Unmarshal([]byte(`{"save":"ctrl+s","help":["f1","?"]}`), &keys))

	assert.Equal(t, KeyBindingValue{"ctrl+s"}, keys["save"])
	assert.Equal(t, KeyBindingValue{"f1", "?"}, keys["help"])

	data, err := json.Marshal(keys["save"])
	require.NoError(t, err)
	assert.JSONEq(t, `"ctrl+s"`, string(data))
}

func TestKeyBindingsConfig_Validate(t *testing.T) {
	valid := []string{"save", "help", "quit"}

	assert.NoError(t, KeyBindingsConfig{"save": {"ctrl+s"}}.Validate(valid))
	assert.ErrorContains(t, KeyBindingsConfig{"launch": {"x"}}.Validate(valid), "unknown key binding")
	assert.ErrorContains(t, KeyBindingsConfig{"save": {""}}.Validate(valid), "empty value")
	assert.ErrorContains(t,
		KeyBindingsConfig{"save": {"ctrl+s"}, "quit": {"ctrl+s"}}.Validate(valid),
		"is assigned to both")
}

func TestGetSettingsExample(t *testing.T) {
	example := GetSettingsExample()

	assert.Equal(t, DefaultAPIAddr, example["api_addr"])
	assert.Equal(t, "sqlite", example["database_driver"])
	recordings, ok := example["recordings"].(map[string]any)
	require.True(t, ok, "nested settings are expanded")
	assert.Equal(t, 15, recordings["link_expiry_minutes"])
	assert.Contains(t, example, "keys")
}

func TestGetFieldnotesHome(t *testing.T) {
	t.Setenv("FIELDNOTES_HOME", "/srv/fieldnotes")
	assert.Equal(t, "/srv/fieldnotes", GetFieldnotesHome())
	assert.Equal(t, "/srv/fieldnotes/fieldnotes.db", GetDBPath())
	assert.Equal(t, "/srv/fieldnotes/settings.json", GetSettingsPath())
}

func TestSaveSettings_KeepsPathsAsWritten(t *testing.T) {
	t.Setenv("FIELDNOTES_HOME", t.TempDir())

	require.NoError(t, SaveSettings(&Settings{SSHHostKeyPath: "~/.fieldnotes/host_key"}))

	loaded, err := LoadSettings()
	require.NoError(t, err)
	require.NoError(t, SaveSettings(loaded))

	data, err := os.ReadFile(GetSettingsPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"ssh_host_key_path": "~/.fieldnotes/host_key"`)
}
