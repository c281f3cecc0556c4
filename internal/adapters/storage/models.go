package storage

import "time"

// ProjectModel is the GORM model for the projects table
type ProjectModel struct {
	CreatedAt   time.Time
	Description string `gorm:"not null;default:''"`
	ID          string `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (ProjectModel) TableName() string { return "projects" }

// PersonaModel is the GORM model for the personas table
type PersonaModel struct {
	CreatedAt time.Time
	Goals     string `gorm:"not null;default:''"`
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	ProjectID string `gorm:"not null;index:idx_personas_project"`
	Role      string `gorm:"not null;default:''"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (PersonaModel) TableName() string { return "personas" }

// SessionModel is the GORM model for the sessions table
type SessionModel struct {
	CreatedAt       time.Time
	Date            time.Time      `gorm:"not null"`
	Duration        *int           `gorm:"default:null"`
	ID              string         `gorm:"primaryKey"`
	Insights        []InsightModel `gorm:"foreignKey:SessionID"`
	Notes           *string        `gorm:"default:null"`
	ParticipantName *string        `gorm:"default:null"`
	PersonaID       *string        `gorm:"default:null"`
	ProjectID       string         `gorm:"not null;index:idx_sessions_project"`
	RecordingURL    *string        `gorm:"column:recording_url;default:null"`
	Transcript      *string        `gorm:"default:null"`
	Type            string         `gorm:"not null;check:type IN ('interview','observation','usability_test','survey','analytics','diary')"`
	UpdatedAt       time.Time
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string { return "sessions" }

// InsightModel is the GORM model for the insights table.
// Kind-specific columns are zero valued for the kinds that do not use them.
type InsightModel struct {
	CreatedAt time.Time
	Excerpt   string `gorm:"not null"`
	Frequency int    `gorm:"not null;default:0"`
	ID        string `gorm:"primaryKey"`
	Kind      string `gorm:"not null"`
	Label     string `gorm:"not null;default:''"`
	Note      string `gorm:"not null;default:''"`
	SessionID string `gorm:"not null;index:idx_insights_session"`
	Severity  string `gorm:"not null;default:''"`
	Speaker   string `gorm:"not null;default:''"`
}

// TableName specifies the table name for GORM
func (InsightModel) TableName() string { return "insights" }

// WorkflowModel is the GORM model for the workflows table
type WorkflowModel struct {
	CreatedAt time.Time
	ID        string              `gorm:"primaryKey"`
	Name      string              `gorm:"not null"`
	PersonaID *string             `gorm:"default:null"`
	ProjectID string              `gorm:"not null;index:idx_workflows_project"`
	Tasks     []WorkflowTaskModel `gorm:"foreignKey:WorkflowID"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (WorkflowModel) TableName() string { return "workflows" }

// WorkflowTaskModel is the GORM model for the workflow_tasks table
type WorkflowTaskModel struct {
	ID         string `gorm:"primaryKey"`
	Name       string `gorm:"not null"`
	PainLevel  string `gorm:"not null;default:'low'"`
	Position   int    `gorm:"not null;default:0"`
	WorkflowID string `gorm:"not null;index:idx_workflow_tasks_workflow"`
}

// TableName specifies the table name for GORM
func (WorkflowTaskModel) TableName() string { return "workflow_tasks" }
