package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"fieldnotes/internal/adapters/storage"
	"fieldnotes/internal/config"
	"fieldnotes/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version        kong.VersionFlag `help:"Show version information"`
	DatabaseDSN    string           `help:"SQLite file path or Postgres connection string" name:"database-dsn" env:"FIELDNOTES_DATABASE_DSN"`
	DatabaseDriver string           `help:"Database driver (sqlite or postgres)" name:"database-driver" env:"FIELDNOTES_DATABASE_DRIVER" default:"sqlite"`
	Debug          bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile      string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles    int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Dashboard DashboardCmd `cmd:"dashboard" help:"Open the project dashboard in the terminal"`
	Insights  InsightsCmd  `cmd:"insights" help:"Manage insights (add)"`
	Migrate   MigrateCmd   `cmd:"migrate" help:"Apply the SQL migrations in order"`
	Personas  PersonasCmd  `cmd:"personas" help:"Manage personas (add, list)"`
	Projects  ProjectsCmd  `cmd:"projects" help:"Manage projects (add, list)"`
	Serve     ServeCmd     `cmd:"serve" help:"Run the HTTP API (and optionally the SSH terminal UI)"`
	Sessions  SessionsCmd  `cmd:"sessions" help:"Manage sessions (add, list, view)"`
	Settings  SettingsCmd  `cmd:"settings" help:"Manage settings (example, keys)"`
	View      ViewCmd      `cmd:"view" help:"Edit a session's notes and transcript in the terminal"`
	Workflows WorkflowsCmd `cmd:"workflows" help:"Manage workflows (add, list)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	c.applySettings()

	// Initialize logging first and get the log file path
	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Child processes inherit the debug settings and append to the same file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("FIELDNOTES_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("FIELDNOTES_DEBUG_FILE", logFilePath)
		}
	}

	driver, dsn, err := c.database()
	if err != nil {
		return err
	}

	// Created after logging so the GORM logger bridge has a logger to write to
	c.Container = NewContainer(driver, dsn, c.settings)
	logging.Logger.Debug("Container ready", "driver", driver)

	return nil
}

// applySettings fills values still at their defaults from settings.json.
// Precedence: CLI flags > env vars > settings.json > defaults.
func (c *CLI) applySettings() {
	if c.settings == nil {
		return
	}

	if c.MaxLogFiles == logging.DefaultMaxLogFiles {
		if _, hasEnv := os.LookupEnv("FIELDNOTES_MAX_LOG_FILES"); !hasEnv {
			if c.settings.MaxLogFiles != nil {
				c.MaxLogFiles = *c.settings.MaxLogFiles
			}
		}
	}

	if !c.Debug {
		if _, hasEnv := os.LookupEnv("FIELDNOTES_DEBUG"); !hasEnv {
			if c.settings.Debug != nil && *c.settings.Debug {
				c.Debug = true
			}
		}
	}

	if c.DatabaseDriver == string(storage.DriverSQLite) {
		if _, hasEnv := os.LookupEnv("FIELDNOTES_DATABASE_DRIVER"); !hasEnv {
			if c.settings.DatabaseDriver != "" {
				c.DatabaseDriver = c.settings.DatabaseDriver
			}
		}
	}

	if c.DatabaseDSN == "" && c.settings.DatabaseDSN != "" {
		c.DatabaseDSN = c.settings.DatabaseDSN
	}
}

// database resolves the driver and dsn, defaulting sqlite to $FIELDNOTES_HOME/fieldnotes.db
func (c *CLI) database() (storage.Driver, string, error) {
	driver, err := storage.ParseDriver(c.DatabaseDriver)
	if err != nil {
		return "", "", err
	}

	dsn := c.DatabaseDSN
	if dsn == "" && driver == storage.DriverSQLite {
		dsn = config.GetDBPath()
	}
	if dsn == "" {
		return "", "", fmt.Errorf("--database-dsn is required for %s", driver)
	}
	if driver == storage.DriverSQLite {
		dsn = config.ExpandPath(dsn)
	}
	return driver, dsn, nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
