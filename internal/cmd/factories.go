package cmd

import (
	"context"
	"io"
	"time"

	"fieldnotes/internal/adapters/blob"
	"fieldnotes/internal/adapters/storage"
	"fieldnotes/internal/config"
	"fieldnotes/internal/logging"
	"fieldnotes/internal/ports"
	"fieldnotes/internal/services"
)

// Container holds all dependencies for the application. The database is
// opened on first use so commands that only talk to the API never touch it.
type Container struct {
	driver   storage.Driver
	dsn      string
	settings *config.Settings

	// Internal - for cleanup only
	repo *storage.GormRepository
}

// Services are the application services built over one repository
type Services struct {
	Dashboard *services.DashboardService
	Projects  *services.ProjectService
	Sessions  *services.SessionService
}

// NewContainer creates a new Container for the given database
func NewContainer(driver storage.Driver, dsn string, settings *config.Settings) *Container {
	if settings == nil {
		settings = &config.Settings{}
	}
	return &Container{
		driver:   driver,
		dsn:      dsn,
		settings: settings,
	}
}

// Repository opens the session repository once and reuses it
func (c *Container) Repository() (*storage.GormRepository, error) {
	if c.repo != nil {
		return c.repo, nil
	}

	repo, err := storage.NewRepository(c.driver, c.dsn)
	if err != nil {
		return nil, err
	}
	c.repo = repo
	return repo, nil
}

// Services wires the application services over the repository
func (c *Container) Services(ctx context.Context) (*Services, error) {
	repo, err := c.Repository()
	if err != nil {
		return nil, err
	}

	linker, err := c.recordingLinker(ctx)
	if err != nil {
		return nil, err
	}

	return &Services{
		Dashboard: services.NewDashboardService(repo),
		Projects:  services.NewProjectService(repo),
		Sessions:  services.NewSessionService(repo, linker),
	}, nil
}

// NewMigrationService creates a migration service that opens its own
// connection per run. Progress is written to out.
func (c *Container) NewMigrationService(out io.Writer) *services.MigrationService {
	factory := func(ctx context.Context) (ports.MigrationTarget, error) {
		return storage.NewMigrationTarget(ctx, c.driver, c.dsn)
	}
	return services.NewMigrationService(factory, out)
}

// recordingLinker returns nil when no recordings block is configured, in
// which case stored references are served unchanged
func (c *Container) recordingLinker(ctx context.Context) (ports.RecordingLinker, error) {
	rec := c.settings.Recordings
	if rec == nil {
		return nil, nil
	}

	cfg := blob.Config{
		Endpoint: rec.S3Endpoint,
		Region:   rec.S3Region,
	}
	if rec.S3PathStyle != nil {
		cfg.PathStyle = *rec.S3PathStyle
	}
	if rec.LinkExpiryMinutes != nil {
		cfg.Expiry = time.Duration(*rec.LinkExpiryMinutes) * time.Minute
	}

	logging.Logger.Debug("Configuring recording linker", "endpoint", cfg.Endpoint, "region", cfg.Region)
	return blob.NewRecordingLinker(ctx, cfg)
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.repo != nil {
		return c.repo.Close()
	}
	return nil
}
