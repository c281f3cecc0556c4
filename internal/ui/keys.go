package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"fieldnotes/internal/config"
)

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Dashboard   DashboardKeys
	Editor      EditorKeys
}

// NewKeyMap creates a KeyMap, applying any custom bindings over the defaults.
// Pass nil to use default bindings.
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		Application: newApplicationKeys(defaults, customKeys),
		Dashboard:   newDashboardKeys(defaults, customKeys),
		Editor:      newEditorKeys(defaults, customKeys),
	}
}

// EditorShortHelp returns the bindings shown in the session detail footer
func (k KeyMap) EditorShortHelp() []key.Binding {
	return []key.Binding{
		k.Editor.ToggleMode,
		k.Editor.Save,
		k.Editor.Mark,
		k.Editor.Insight,
		k.Editor.Import,
		k.Editor.Preview,
		k.Application.Help,
		k.Application.Back,
	}
}

// buildBinding creates a key.Binding from the key definition, using custom keys if provided
func buildBinding(name string, defaults map[string][]string, customKeys config.KeyBindingsConfig) key.Binding {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := defaults[name]
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), def.Help),
	)
}
