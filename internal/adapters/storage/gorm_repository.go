package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"fieldnotes/internal/domain"
	"fieldnotes/internal/ports"
)

const maxRetries = 3

// GormRepository implements ports.SessionRepository using GORM.
// The schema is owned by the migrations package; nothing here creates tables.
type GormRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.SessionRepository = (*GormRepository)(nil)

// NewRepository opens a repository on the given driver
func NewRepository(driver Driver, dsn string) (*GormRepository, error) {
	db, err := openDB(driver, dsn)
	if err != nil {
		return nil, err
	}

	if driver == DriverPostgres {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database handle: %w", err)
		}
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
	}

	return &GormRepository{db: db}, nil
}

// Close closes the underlying connection pool
func (r *GormRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func orderedInsights(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC, id ASC")
}

// Get returns a session with its insights
func (r *GormRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	var model SessionModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Preload("Insights", orderedInsights).
			Where("id = ?", id).
			First(&model).Error
	}, maxRetries)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("session %s: %w", id, domain.ErrSessionNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	session := sessionModelToDomain(model)
	return &session, nil
}

// List returns the sessions of a project, most recent first
func (r *GormRepository) List(ctx context.Context, projectID string) ([]domain.Session, error) {
	var models []SessionModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Preload("Insights", orderedInsights).
			Where("project_id = ?", projectID).
			Order("date DESC, created_at DESC").
			Find(&models).Error
	}, maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	sessions := make([]domain.Session, 0, len(models))
	for _, m := range models {
		sessions = append(sessions, sessionModelToDomain(m))
	}
	return sessions, nil
}

// Add inserts a new session
func (r *GormRepository) Add(ctx context.Context, session domain.Session) error {
	model := domainToSessionModel(session)
	return withRetry(func() error {
		if err := r.db.WithContext(ctx).Omit("Insights").Create(&model).Error; err != nil {
			return fmt.Errorf("failed to add session: %w", err)
		}
		return nil
	}, maxRetries)
}

// UpdateContent writes the content fields that are set and differ from the
// stored values, plus updated_at. A field left nil keeps its stored value; a
// write that changes nothing leaves the row, updated_at included, untouched.
func (r *GormRepository) UpdateContent(ctx context.Context, id string, content domain.SessionContent) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var current SessionModel
			err := tx.Select("id", "notes", "transcript").Where("id = ?", id).Take(&current).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("session %s: %w", id, domain.ErrSessionNotFound)
			}
			if err != nil {
				return fmt.Errorf("failed to load session content: %w", err)
			}

			updates := contentChanges(current, content)
			if len(updates) == 0 {
				return nil
			}
			updates["updated_at"] = tx.NowFunc()

			if err := tx.Model(&SessionModel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
				return fmt.Errorf("failed to update session content: %w", err)
			}
			return nil
		})
	}, maxRetries)
}

// contentChanges returns the columns whose requested value differs from current
func contentChanges(current SessionModel, content domain.SessionContent) map[string]any {
	updates := make(map[string]any, 3)
	if content.Notes != nil && (current.Notes == nil || *current.Notes != *content.Notes) {
		updates["notes"] = *content.Notes
	}
	if content.Transcript != nil && (current.Transcript == nil || *current.Transcript != *content.Transcript) {
		updates["transcript"] = *content.Transcript
	}
	return updates
}

// AddInsight stores an insight for an existing session
func (r *GormRepository) AddInsight(ctx context.Context, insight domain.Insight) error {
	model := domainToInsightModel(insight)
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&SessionModel{}).Where("id = ?", insight.SessionID).Count(&count).Error; err != nil {
				return fmt.Errorf("failed to check session: %w", err)
			}
			if count == 0 {
				return fmt.Errorf("session %s: %w", insight.SessionID, domain.ErrSessionNotFound)
			}
			if err := tx.Create(&model).Error; err != nil {
				return fmt.Errorf("failed to add insight: %w", err)
			}
			return nil
		})
	}, maxRetries)
}

// AddProject inserts a new project
func (r *GormRepository) AddProject(ctx context.Context, project domain.Project) error {
	model := ProjectModel{
		CreatedAt:   project.CreatedAt,
		Description: project.Description,
		ID:          project.ID,
		Name:        project.Name,
	}
	return withRetry(func() error {
		if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
			return fmt.Errorf("failed to add project: %w", err)
		}
		return nil
	}, maxRetries)
}

// GetProject returns a project by id
func (r *GormRepository) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	var model ProjectModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	}, maxRetries)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("project %s: %w", id, domain.ErrProjectNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	project := projectModelToDomain(model)
	return &project, nil
}

// ListProjects returns every project ordered by name
func (r *GormRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	var models []ProjectModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Order("name ASC").Find(&models).Error
	}, maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	projects := make([]domain.Project, 0, len(models))
	for _, m := range models {
		projects = append(projects, projectModelToDomain(m))
	}
	return projects, nil
}

// AddPersona inserts a persona into its project
func (r *GormRepository) AddPersona(ctx context.Context, persona domain.Persona) error {
	model := PersonaModel{
		Goals:     persona.Goals,
		ID:        persona.ID,
		Name:      persona.Name,
		ProjectID: persona.ProjectID,
		Role:      persona.Role,
	}
	return withRetry(func() error {
		if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
			return fmt.Errorf("failed to add persona: %w", err)
		}
		return nil
	}, maxRetries)
}

// ListPersonas returns the personas of a project ordered by name
func (r *GormRepository) ListPersonas(ctx context.Context, projectID string) ([]domain.Persona, error) {
	var models []PersonaModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("name ASC").Find(&models).Error
	}, maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to list personas: %w", err)
	}

	personas := make([]domain.Persona, 0, len(models))
	for _, m := range models {
		personas = append(personas, personaModelToDomain(m))
	}
	return personas, nil
}

// AddWorkflow inserts a workflow and its tasks in one transaction
func (r *GormRepository) AddWorkflow(ctx context.Context, workflow domain.Workflow) error {
	model := WorkflowModel{
		ID:        workflow.ID,
		Name:      workflow.Name,
		PersonaID: workflow.PersonaID,
		ProjectID: workflow.ProjectID,
	}
	tasks := domainToWorkflowTaskModels(workflow.ID, workflow.Tasks)

	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Omit("Tasks").Create(&model).Error; err != nil {
				return fmt.Errorf("failed to add workflow: %w", err)
			}
			if len(tasks) == 0 {
				return nil
			}
			if err := tx.Create(&tasks).Error; err != nil {
				return fmt.Errorf("failed to add workflow tasks: %w", err)
			}
			return nil
		})
	}, maxRetries)
}

// ListWorkflows returns the workflows of a project with tasks in position order
func (r *GormRepository) ListWorkflows(ctx context.Context, projectID string) ([]domain.Workflow, error) {
	var models []WorkflowModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Preload("Tasks", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
			Where("project_id = ?", projectID).
			Order("name ASC").
			Find(&models).Error
	}, maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to list workflows: %w", err)
	}

	workflows := make([]domain.Workflow, 0, len(models))
	for _, m := range models {
		workflows = append(workflows, workflowModelToDomain(m))
	}
	return workflows, nil
}
