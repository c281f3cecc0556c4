package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"fieldnotes/internal/config"
	"fieldnotes/internal/logging"
	"fieldnotes/internal/ui"
)

// SettingsKeysCmd manages keyboard shortcuts of the terminal UI
type SettingsKeysCmd struct {
	List  SettingsKeysListCmd  `cmd:"list" help:"List all key bindings (defaults and custom)" default:"1"`
	Reset SettingsKeysResetCmd `cmd:"reset" help:"Restore the default for a key binding"`
	Set   SettingsKeysSetCmd   `cmd:"set" help:"Set a key binding"`
}

// SettingsKeysListCmd lists all key bindings
type SettingsKeysListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// SettingsKeysSetCmd sets a key binding
type SettingsKeysSetCmd struct {
	Key   string `arg:"" help:"Key name (e.g., save, mark, toggle_mode)"`
	Value string `arg:"" help:"Key binding (e.g., ctrl+s, or comma-separated for multiple: f1,ctrl+h)"`
}

// SettingsKeysResetCmd removes a custom key binding
type SettingsKeysResetCmd struct {
	Key string `arg:"" help:"Key name to restore"`
}

// keyRow is one binding as shown by `settings keys list`
type keyRow struct {
	Action  string   `json:"action"`
	Custom  []string `json:"custom,omitempty"`
	Default []string `json:"default"`
	Group   string   `json:"group"`
	Name    string   `json:"name"`
}

// effective returns the keys the terminal UI will actually bind
func (r keyRow) effective() []string {
	if len(r.Custom) > 0 {
		return r.Custom
	}
	return r.Default
}

// keyRows lists every configurable binding in name order
func keyRows(custom config.KeyBindingsConfig) []keyRow {
	names := ui.GetValidKeyNames()
	rows := make([]keyRow, 0, len(names))
	for _, name := range names {
		def := ui.GetKeyDefinition(name)
		rows = append(rows, keyRow{
			Action:  def.Help,
			Custom:  custom[name],
			Default: def.Defaults,
			Group:   string(def.Group),
			Name:    name,
		})
	}
	return rows
}

// Run executes the list command
func (s *SettingsKeysListCmd) Run(cli *CLI) error {
	var custom config.KeyBindingsConfig
	if cli.settings != nil {
		custom = cli.settings.Keys
	}
	rows := keyRows(custom)

	if s.Format == "json" {
		return printJSON(rows)
	}

	fmt.Printf("Key Bindings (settings file: %s)\n\n", config.GetSettingsPath())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tGROUP\tDEFAULT\tCUSTOM\tACTION")
	for _, r := range rows {
		customStr := "-"
		if len(r.Custom) > 0 {
			customStr = strings.Join(r.Custom, ", ")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.Name, r.Group, strings.Join(r.Default, ", "), customStr, r.Action)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Use 'fieldnotes settings keys set <name> <value>' to customize.")
	return nil
}

// Run executes the set command
func (s *SettingsKeysSetCmd) Run(cli *CLI) error {
	if err := requireKeyName(s.Key); err != nil {
		return err
	}

	values := parseKeyValues(s.Value)
	if len(values) == 0 {
		return fmt.Errorf("value cannot be empty")
	}

	logging.Logger.Debug("Setting key binding", "key", s.Key, "values", values)

	return updateKeyBindings(func(keys config.KeyBindingsConfig) {
		keys[s.Key] = values
	}, fmt.Sprintf("Set '%s' to: %s", s.Key, strings.Join(values, ", ")))
}

// Run executes the reset command
func (s *SettingsKeysResetCmd) Run(cli *CLI) error {
	if err := requireKeyName(s.Key); err != nil {
		return err
	}

	logging.Logger.Debug("Resetting key binding", "key", s.Key)

	def := ui.GetKeyDefinition(s.Key)
	return updateKeyBindings(func(keys config.KeyBindingsConfig) {
		delete(keys, s.Key)
	}, fmt.Sprintf("Reset '%s' to: %s", s.Key, strings.Join(def.Defaults, ", ")))
}

func requireKeyName(name string) error {
	if !ui.IsValidKeyName(name) {
		return fmt.Errorf("unknown key '%s'. Valid keys: %s",
			name, strings.Join(ui.GetValidKeyNames(), ", "))
	}
	return nil
}

// updateKeyBindings loads settings.json, applies change, rejects conflicting
// bindings and saves the result
func updateKeyBindings(change func(config.KeyBindingsConfig), done string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if settings.Keys == nil {
		settings.Keys = make(config.KeyBindingsConfig)
	}

	change(settings.Keys)

	if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return fmt.Errorf("conflict: %w", err)
	}
	if err := checkEffectiveConflicts(settings.Keys); err != nil {
		return fmt.Errorf("conflict: %w", err)
	}
	if len(settings.Keys) == 0 {
		settings.Keys = nil
	}

	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Println(done)
	return nil
}

// parseKeyValues parses comma-separated key values
func parseKeyValues(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// checkEffectiveConflicts reports a key bound to two actions once the custom
// bindings are layered over the defaults
func checkEffectiveConflicts(custom config.KeyBindingsConfig) error {
	owner := make(map[string]string)
	for _, r := range keyRows(custom) {
		for _, k := range r.effective() {
			if existing, found := owner[k]; found {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", k, existing, r.Name)
			}
			owner[k] = r.Name
		}
	}
	return nil
}
