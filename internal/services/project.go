package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"fieldnotes/internal/domain"
	"fieldnotes/internal/logging"
	"fieldnotes/internal/ports"
)

// ProjectService manages projects and the personas and workflows inside them
type ProjectService struct {
	repo ports.ProjectRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(repo ports.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

// CreateProject stores a new project
func (s *ProjectService) CreateProject(ctx context.Context, name, description string) (*domain.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: project name is required", domain.ErrInvalidInput)
	}

	project := domain.Project{
		Description: strings.TrimSpace(description),
		ID:          uuid.New().String(),
		Name:        name,
	}

	logging.Logger.Info("Creating project", "id", project.ID, "name", project.Name)
	if err := s.repo.AddProject(ctx, project); err != nil {
		return nil, err
	}
	return s.repo.GetProject(ctx, project.ID)
}

// GetProject returns a project by id
func (s *ProjectService) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	return s.repo.GetProject(ctx, id)
}

// ListProjects returns every project
func (s *ProjectService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.repo.ListProjects(ctx)
}

// CreatePersonaParams contains parameters for creating a persona
type CreatePersonaParams struct {
	Goals     string
	Name      string
	ProjectID string
	Role      string
}

// CreatePersona stores a persona in an existing project
func (s *ProjectService) CreatePersona(ctx context.Context, params CreatePersonaParams) (*domain.Persona, error) {
	if strings.TrimSpace(params.Name) == "" {
		return nil, fmt.Errorf("%w: persona name is required", domain.ErrInvalidInput)
	}
	if _, err := s.repo.GetProject(ctx, params.ProjectID); err != nil {
		return nil, err
	}

	persona := domain.Persona{
		Goals:     strings.TrimSpace(params.Goals),
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(params.Name),
		ProjectID: params.ProjectID,
		Role:      strings.TrimSpace(params.Role),
	}

	logging.Logger.Info("Creating persona", "id", persona.ID, "project", persona.ProjectID)
	if err := s.repo.AddPersona(ctx, persona); err != nil {
		return nil, err
	}
	return &persona, nil
}

// ListPersonas returns the personas of a project
func (s *ProjectService) ListPersonas(ctx context.Context, projectID string) ([]domain.Persona, error) {
	return s.repo.ListPersonas(ctx, projectID)
}

// CreateWorkflowParams contains parameters for creating a workflow.
// Tasks are stored in the given order.
type CreateWorkflowParams struct {
	Name      string
	PersonaID string
	ProjectID string
	Tasks     []WorkflowTaskParams
}

// WorkflowTaskParams describes one task of a new workflow
type WorkflowTaskParams struct {
	Name      string
	PainLevel domain.Severity
}

// ParseWorkflowTask parses "name:level" (level defaults to low when omitted)
func ParseWorkflowTask(s string) (WorkflowTaskParams, error) {
	name, level, hasLevel := strings.Cut(s, ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return WorkflowTaskParams{}, fmt.Errorf("%w: task %q has no name", domain.ErrInvalidInput, s)
	}
	if !hasLevel {
		return WorkflowTaskParams{Name: name, PainLevel: domain.SeverityLow}, nil
	}

	severity, err := domain.ParseSeverity(level)
	if err != nil {
		return WorkflowTaskParams{}, err
	}
	return WorkflowTaskParams{Name: name, PainLevel: severity}, nil
}

// CreateWorkflow stores a workflow with its tasks in an existing project
func (s *ProjectService) CreateWorkflow(ctx context.Context, params CreateWorkflowParams) (*domain.Workflow, error) {
	if strings.TrimSpace(params.Name) == "" {
		return nil, fmt.Errorf("%w: workflow name is required", domain.ErrInvalidInput)
	}
	if _, err := s.repo.GetProject(ctx, params.ProjectID); err != nil {
		return nil, err
	}

	workflow := domain.Workflow{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(params.Name),
		PersonaID: optionalString(params.PersonaID),
		ProjectID: params.ProjectID,
	}
	for i, t := range params.Tasks {
		if t.PainLevel.Rank() == 0 {
			return nil, fmt.Errorf("%w: task %q has pain level %q", domain.ErrInvalidSeverity, t.Name, t.PainLevel)
		}
		workflow.Tasks = append(workflow.Tasks, domain.WorkflowTask{
			ID:        uuid.New().String(),
			Name:      t.Name,
			PainLevel: t.PainLevel,
			Position:  i,
		})
	}

	logging.Logger.Info("Creating workflow", "id", workflow.ID, "project", workflow.ProjectID, "tasks", len(workflow.Tasks))
	if err := s.repo.AddWorkflow(ctx, workflow); err != nil {
		return nil, err
	}
	return &workflow, nil
}

// ListWorkflows returns the workflows of a project
func (s *ProjectService) ListWorkflows(ctx context.Context, projectID string) ([]domain.Workflow, error) {
	return s.repo.ListWorkflows(ctx, projectID)
}
