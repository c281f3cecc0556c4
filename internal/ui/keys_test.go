package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldnotes/internal/config"
)

func TestKeyDefinitions_UniqueNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, def := range AllKeyDefinitions {
		assert.False(t, seen[def.Name], "duplicate key definition %s", def.Name)
		seen[def.Name] = true
		assert.NotEmpty(t, def.Defaults, "%s has no default keys", def.Name)
	}
}

func TestDefaultBindingsPassValidation(t *testing.T) {
	defaults := make(config.KeyBindingsConfig)
	for name, keys := range GetDefaultKeyBindings() {
		defaults[name] = keys
	}
	assert.NoError(t, defaults.Validate(GetValidKeyNames()))
}

func TestNewKeyMap_CustomOverride(t *testing.T) {
	keys := NewKeyMap(config.KeyBindingsConfig{"save": {"ctrl+w"}})

	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlW}, keys.Editor.Save))
	assert.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlS}, keys.Editor.Save))
	assert.Equal(t, "ctrl+w", keys.Editor.Save.Help().Key)
}

func TestEditorKeysAreNotPrintable(t *testing.T) {
	keys := NewKeyMap(nil)
	for _, b := range keys.EditorShortHelp() {
		for _, k := range b.Keys() {
			require.NotEmpty(t, k)
			assert.Greater(t, len(k), 1, "editor binding %q would shadow typing", k)
		}
	}
}

func TestIsValidKeyName(t *testing.T) {
	assert.True(t, IsValidKeyName("toggle_mode"))
	assert.False(t, IsValidKeyName("archive"))
}

func TestKeyDefinitions_HaveGroup(t *testing.T) {
	groups := []KeyGroup{GroupApplication, GroupDashboard, GroupEditor}
	for _, def := range AllKeyDefinitions {
		assert.Contains(t, groups, def.Group, "%s has no group", def.Name)
	}
}
