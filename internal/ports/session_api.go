package ports

import (
	"context"

	"fieldnotes/internal/domain"
)

// SessionAPI is what the terminal views need from the session backend.
// It is served by the HTTP client for local use and by the services
// directly when the views run inside the SSH server.
type SessionAPI interface {
	CreateInsight(ctx context.Context, insight domain.Insight) (*domain.Insight, error)
	GetSession(ctx context.Context, id string) (*domain.Session, error)
	ListSessions(ctx context.Context, projectID string) ([]domain.Session, error)
	UpdateSessionContent(ctx context.Context, id string, content domain.SessionContent) (*domain.Session, error)
}

// DashboardAPI serves per-project aggregates
type DashboardAPI interface {
	GetDashboard(ctx context.Context, projectID string) (*domain.Dashboard, error)
}
