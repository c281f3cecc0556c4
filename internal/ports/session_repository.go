package ports

import (
	"context"

	"fieldnotes/internal/domain"
)

// SessionReader reads session data
type SessionReader interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
	List(ctx context.Context, projectID string) ([]domain.Session, error)
}

// SessionWriter creates sessions and updates their editable content
type SessionWriter interface {
	Add(ctx context.Context, session domain.Session) error
	UpdateContent(ctx context.Context, id string, content domain.SessionContent) error
}

// InsightWriter attaches insights to sessions
type InsightWriter interface {
	AddInsight(ctx context.Context, insight domain.Insight) error
}

// ProjectRepository stores projects and their personas and workflows
type ProjectRepository interface {
	AddPersona(ctx context.Context, persona domain.Persona) error
	AddProject(ctx context.Context, project domain.Project) error
	AddWorkflow(ctx context.Context, workflow domain.Workflow) error
	GetProject(ctx context.Context, id string) (*domain.Project, error)
	ListPersonas(ctx context.Context, projectID string) ([]domain.Persona, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	ListWorkflows(ctx context.Context, projectID string) ([]domain.Workflow, error)
}

// SessionRepository is the composite interface
type SessionRepository interface {
	SessionReader
	SessionWriter
	InsightWriter
	ProjectRepository
	Close() error
}
