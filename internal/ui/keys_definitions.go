package ui

import (
	"sort"
	"sync"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults []string
	Group    KeyGroup
	Help     string
	Name     string
}

// KeyGroup is the screen a binding acts on
type KeyGroup string

const (
	GroupApplication KeyGroup = "application"
	GroupDashboard   KeyGroup = "dashboard"
	GroupEditor      KeyGroup = "editor"
)

// AllKeyDefinitions contains all configurable key bindings.
// Editor keys avoid printable characters so they never shadow typing.
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "back", Group: GroupApplication, Defaults: []string{"esc"}, Help: "go back / close"},
	{Name: "force_quit", Group: GroupApplication, Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Group: GroupApplication, Defaults: []string{"f1"}, Help: "show keyboard shortcuts"},
	{Name: "quit", Group: GroupApplication, Defaults: []string{"q"}, Help: "exit (dashboard)"},

	// Dashboard keys
	{Name: "open", Group: GroupDashboard, Defaults: []string{"enter"}, Help: "open session"},
	{Name: "refresh", Group: GroupDashboard, Defaults: []string{"r"}, Help: "reload dashboard"},

	// Session editor keys
	{Name: "import_transcript", Group: GroupEditor, Defaults: []string{"ctrl+o"}, Help: "import transcript from file"},
	{Name: "insight", Group: GroupEditor, Defaults: []string{"ctrl+y"}, Help: "create insight from selection"},
	{Name: "mark", Group: GroupEditor, Defaults: []string{"ctrl+x"}, Help: "start / finish selection"},
	{Name: "preview", Group: GroupEditor, Defaults: []string{"ctrl+p"}, Help: "markdown preview"},
	{Name: "save", Group: GroupEditor, Defaults: []string{"ctrl+s"}, Help: "save notes and transcript"},
	{Name: "toggle_mode", Group: GroupEditor, Defaults: []string{"tab"}, Help: "switch notes / transcript"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name, or nil
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}

// IsValidKeyName checks if a name is a valid key binding name
func IsValidKeyName(name string) bool {
	return GetKeyDefinition(name) != nil
}
