package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"fieldnotes/internal/config"
	"fieldnotes/internal/logging"
	"fieldnotes/migrations"
)

// MigrateCmd applies the ordered migration files from the migrations directory
type MigrateCmd struct{}

// Run executes the migrate command
func (m *MigrateCmd) Run(cli *CLI) error {
	dir := config.DefaultMigrationsDir
	if cli.settings != nil && cli.settings.MigrationsDir != "" {
		dir = config.ExpandPath(cli.settings.MigrationsDir)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logging.Logger.Info("Running migrations", "dir", dir)
	fmt.Printf("Migrating from %s\n", dir)

	service := cli.Container.NewMigrationService(os.Stdout)
	if _, err := service.Apply(ctx, os.DirFS(dir), migrations.Ordered); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
