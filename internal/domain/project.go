package domain

import "time"

// Project groups the sessions, personas and workflows of one study
type Project struct {
	CreatedAt   time.Time
	Description string
	ID          string
	Name        string
}

// Persona is a synthesized user archetype derived from session data
type Persona struct {
	Goals     string
	ID        string
	Name      string
	ProjectID string
	Role      string
}

// Workflow is a sequence of tasks a persona performs
type Workflow struct {
	ID        string
	Name      string
	PersonaID *string
	ProjectID string
	Tasks     []WorkflowTask
}

// WorkflowTask is one step of a workflow with its observed pain level
type WorkflowTask struct {
	ID        string
	Name      string
	PainLevel Severity
	Position  int
}

// MaxPain returns the most severe pain level among the workflow tasks
func (w Workflow) MaxPain() Severity {
	var max Severity
	for _, t := range w.Tasks {
		if t.PainLevel.Rank() > max.Rank() {
			max = t.PainLevel
		}
	}
	return max
}
