package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"fieldnotes/internal/config"
)

// ApplicationKeys defines key bindings available in every view
type ApplicationKeys struct {
	Back      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newApplicationKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) ApplicationKeys {
	return ApplicationKeys{
		Back:      buildBinding("back", defaults, customKeys),
		ForceQuit: buildBinding("force_quit", defaults, customKeys),
		Help:      buildBinding("help", defaults, customKeys),
		Quit:      buildBinding("quit", defaults, customKeys),
	}
}

// DashboardKeys defines key bindings for the dashboard session list
type DashboardKeys struct {
	Open    key.Binding
	Refresh key.Binding
}

func newDashboardKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) DashboardKeys {
	return DashboardKeys{
		Open:    buildBinding("open", defaults, customKeys),
		Refresh: buildBinding("refresh", defaults, customKeys),
	}
}

// EditorKeys defines key bindings for the session detail editor
type EditorKeys struct {
	Import     key.Binding
	Insight    key.Binding
	Mark       key.Binding
	Preview    key.Binding
	Save       key.Binding
	ToggleMode key.Binding
}

func newEditorKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) EditorKeys {
	return EditorKeys{
		Import:     buildBinding("import_transcript", defaults, customKeys),
		Insight:    buildBinding("insight", defaults, customKeys),
		Mark:       buildBinding("mark", defaults, customKeys),
		Preview:    buildBinding("preview", defaults, customKeys),
		Save:       buildBinding("save", defaults, customKeys),
		ToggleMode: buildBinding("toggle_mode", defaults, customKeys),
	}
}
