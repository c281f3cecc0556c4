package cmd

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldnotes/internal/adapters/storage"
	"fieldnotes/internal/config"
	"fieldnotes/internal/domain"
	"fieldnotes/internal/services"
	"fieldnotes/migrations"
)

func newTestContainer(t *testing.T) *Container {
	t.Helper()
	c := NewContainer(storage.DriverSQLite, filepath.Join(t.TempDir(), "fieldnotes.db"), nil)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestContainer_MigrateThenUseServices(t *testing.T) {
	ctx := context.Background()
	c := newTestContainer(t)

	report, err := c.NewMigrationService(io.Discard).Apply(ctx, migrations.Files, migrations.Ordered)
	require.NoError(t, err)
	assert.Len(t, report.Files, len(migrations.Ordered))
	assert.Zero(t, report.AlreadyApplied())

	svc, err := c.Services(ctx)
	require.NoError(t, err)

	project, err := svc.Projects.CreateProject(ctx, "Checkout study", "")
	require.NoError(t, err)

	session, err := svc.Sessions.CreateSession(ctx, services.CreateSessionParams{
		ProjectID: project.ID,
		Type:      domain.SessionInterview,
	})
	require.NoError(t, err)

	_, err = svc.Sessions.UpdateSessionContent(ctx, session.ID, domain.NewSessionContent("A", "B"))
	require.NoError(t, err)

	dash, err := svc.Dashboard.GetDashboard(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, dash.SessionCount)

	// A second run finds every object in place
	report, err = c.NewMigrationService(io.Discard).Apply(ctx, migrations.Files, migrations.Ordered)
	require.NoError(t, err)
	assert.Zero(t, report.Executed())
	assert.Positive(t, report.AlreadyApplied())
}

func TestContainer_ReusesRepository(t *testing.T) {
	c := newTestContainer(t)

	first, err := c.Repository()
	require.NoError(t, err)
	second, err := c.Repository()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestContainer_RecordingLinker(t *testing.T) {
	ctx := context.Background()

	none := NewContainer(storage.DriverSQLite, "unused.db", nil)
	linker, err := none.recordingLinker(ctx)
	require.NoError(t, err)
	assert.Nil(t, linker)

	t.Setenv("AWS_ACCESS_KEY_ID", "test")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "test")
	configured := NewContainer(storage.DriverSQLite, "unused.db", &config.Settings{
		Recordings: &config.RecordingSettings{
			LinkExpiryMinutes: intPtr(5),
			S3Endpoint:        "http://localhost:9000",
			S3PathStyle:       boolPtr(true),
			S3Region:          "us-east-1",
		},
	})
	linker, err = configured.recordingLinker(ctx)
	require.NoError(t, err)

	url, err := linker.Link(ctx, "s3://recordings/p1.mp4")
	require.NoError(t, err)
	assert.Contains(t, url, "http://localhost:9000/recordings/p1.mp4")
	assert.Contains(t, url, "X-Amz-Expires=300")
}
