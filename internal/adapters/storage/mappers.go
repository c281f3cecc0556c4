package storage

import (
	"fieldnotes/internal/domain"
)

// sessionModelToDomain converts a SessionModel (GORM) to domain.Session
func sessionModelToDomain(m SessionModel) domain.Session {
	insights := make([]domain.Insight, 0, len(m.Insights))
	for _, im := range m.Insights {
		insights = append(insights, insightModelToDomain(im))
	}

	return domain.Session{
		CreatedAt:       m.CreatedAt,
		Date:            m.Date,
		Duration:        m.Duration,
		ID:              m.ID,
		Insights:        insights,
		Notes:           m.Notes,
		ParticipantName: m.ParticipantName,
		PersonaID:       m.PersonaID,
		ProjectID:       m.ProjectID,
		RecordingURL:    m.RecordingURL,
		Transcript:      m.Transcript,
		Type:            domain.SessionType(m.Type),
		UpdatedAt:       m.UpdatedAt,
	}
}

// domainToSessionModel converts a domain.Session to SessionModel (GORM).
// Insights are stored separately through AddInsight.
func domainToSessionModel(s domain.Session) SessionModel {
	return SessionModel{
		CreatedAt:       s.CreatedAt,
		Date:            s.Date,
		Duration:        s.Duration,
		ID:              s.ID,
		Notes:           s.Notes,
		ParticipantName: s.ParticipantName,
		PersonaID:       s.PersonaID,
		ProjectID:       s.ProjectID,
		RecordingURL:    s.RecordingURL,
		Transcript:      s.Transcript,
		Type:            string(s.Type),
		UpdatedAt:       s.UpdatedAt,
	}
}

// insightModelToDomain rebuilds the kind-specific detail from the flat row
func insightModelToDomain(m InsightModel) domain.Insight {
	var detail domain.InsightDetail
	switch domain.InsightKind(m.Kind) {
	case domain.InsightObservation:
		detail = domain.Observation{Note: m.Note}
	case domain.InsightPattern:
		detail = domain.Pattern{Frequency: m.Frequency, Label: m.Label}
	case domain.InsightQuote:
		detail = domain.Quote{Speaker: m.Speaker}
	case domain.InsightPainPoint:
		detail = domain.PainPoint{Severity: domain.Severity(m.Severity)}
	}

	return domain.Insight{
		CreatedAt: m.CreatedAt,
		Detail:    detail,
		Excerpt:   m.Excerpt,
		ID:        m.ID,
		SessionID: m.SessionID,
	}
}

// domainToInsightModel flattens an insight into one row
func domainToInsightModel(i domain.Insight) InsightModel {
	m := InsightModel{
		CreatedAt: i.CreatedAt,
		Excerpt:   i.Excerpt,
		ID:        i.ID,
		Kind:      string(i.Kind()),
		SessionID: i.SessionID,
	}

	switch d := i.Detail.(type) {
	case domain.Observation:
		m.Note = d.Note
	case domain.Pattern:
		m.Frequency = d.Frequency
		m.Label = d.Label
	case domain.Quote:
		m.Speaker = d.Speaker
	case domain.PainPoint:
		m.Severity = string(d.Severity)
	}

	return m
}

func projectModelToDomain(m ProjectModel) domain.Project {
	return domain.Project{
		CreatedAt:   m.CreatedAt,
		Description: m.Description,
		ID:          m.ID,
		Name:        m.Name,
	}
}

func personaModelToDomain(m PersonaModel) domain.Persona {
	return domain.Persona{
		Goals:     m.Goals,
		ID:        m.ID,
		Name:      m.Name,
		ProjectID: m.ProjectID,
		Role:      m.Role,
	}
}

func workflowModelToDomain(m WorkflowModel) domain.Workflow {
	tasks := make([]domain.WorkflowTask, 0, len(m.Tasks))
	for _, t := range m.Tasks {
		tasks = append(tasks, domain.WorkflowTask{
			ID:        t.ID,
			Name:      t.Name,
			PainLevel: domain.Severity(t.PainLevel),
			Position:  t.Position,
		})
	}

	return domain.Workflow{
		ID:        m.ID,
		Name:      m.Name,
		PersonaID: m.PersonaID,
		ProjectID: m.ProjectID,
		Tasks:     tasks,
	}
}

func domainToWorkflowTaskModels(workflowID string, tasks []domain.WorkflowTask) []WorkflowTaskModel {
	models := make([]WorkflowTaskModel, 0, len(tasks))
	for _, t := range tasks {
		models = append(models, WorkflowTaskModel{
			ID:         t.ID,
			Name:       t.Name,
			PainLevel:  string(t.PainLevel),
			Position:   t.Position,
			WorkflowID: workflowID,
		})
	}
	return models
}
