package cmd

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"fieldnotes/internal/adapters/httpapi"
	"fieldnotes/internal/config"
	"fieldnotes/internal/logging"
	"fieldnotes/internal/ui"
)

// TUIFlags are shared by the terminal UI commands
type TUIFlags struct {
	APIURL          string `help:"Base URL of the fieldnotes API" name:"api-url" env:"FIELDNOTES_API_URL" default:"http://127.0.0.1:7420"`
	Dev             bool   `help:"Enable development mode (shows version info in dialogs)"`
	ErrorClearDelay int    `help:"Seconds before error messages auto-clear" default:"10"`
}

// applySettings fills flags still at their defaults from settings.json
func (f *TUIFlags) applySettings(settings *config.Settings) {
	if settings == nil {
		return
	}

	if f.APIURL == config.DefaultAPIURL {
		if _, hasEnv := os.LookupEnv("FIELDNOTES_API_URL"); !hasEnv && settings.APIURL != "" {
			f.APIURL = settings.APIURL
		}
	}

	if f.ErrorClearDelay == config.DefaultErrorClearDelay && settings.ErrorClearDelay != nil {
		f.ErrorClearDelay = *settings.ErrorClearDelay
	}
}

// runTUI starts the terminal UI against the API at flags.APIURL. Exactly one
// of projectID and sessionID selects the first screen.
func runTUI(cli *CLI, flags TUIFlags, projectID, sessionID string) error {
	flags.applySettings(cli.settings)

	// Validate key bindings if configured
	var keysConfig config.KeyBindingsConfig
	if cli.settings != nil && cli.settings.Keys != nil {
		if err := cli.settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
			return fmt.Errorf("invalid key bindings in settings.json: %w", err)
		}
		if err := checkEffectiveConflicts(cli.settings.Keys); err != nil {
			return fmt.Errorf("invalid key bindings in settings.json: %w", err)
		}
		keysConfig = cli.settings.Keys
		logging.Logger.Debug("Custom key bindings loaded and validated")
	}

	client := httpapi.NewClient(flags.APIURL)
	model, err := ui.NewModel(ui.ModelConfig{
		Dashboards:      client,
		DevMode:         flags.Dev,
		ErrorClearDelay: time.Duration(flags.ErrorClearDelay) * time.Second,
		Keys:            keysConfig,
		ProjectID:       projectID,
		SessionID:       sessionID,
		Sessions:        client,
	})
	if err != nil {
		return err
	}

	logging.Logger.Info("Starting TUI program",
		"api_url", flags.APIURL,
		"project_id", projectID,
		"session_id", sessionID)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
