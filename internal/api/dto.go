package api

import (
	"fmt"
	"time"

	"fieldnotes/internal/domain"
)

// SessionDTO is the API representation of a session.
// Optional fields are omitted when unset. Insights is always an array.
type SessionDTO struct {
	CreatedAt       time.Time    `json:"createdAt"`
	Date            time.Time    `json:"date"`
	Duration        *int         `json:"duration,omitempty"`
	ID              string       `json:"id"`
	Insights        []InsightDTO `json:"insights"`
	Notes           *string      `json:"notes,omitempty"`
	ParticipantName *string      `json:"participantName,omitempty"`
	PersonaID       *string      `json:"personaId,omitempty"`
	ProjectID       string       `json:"projectId"`
	RecordingURL    *string      `json:"recordingUrl,omitempty"`
	Transcript      *string      `json:"transcript,omitempty"`
	Type            string       `json:"type"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

// InsightDTO flattens the insight variants; only the fields of its kind are set
type InsightDTO struct {
	CreatedAt time.Time `json:"createdAt"`
	Excerpt   string    `json:"excerpt"`
	Frequency int       `json:"frequency,omitempty"`
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Label     string    `json:"label,omitempty"`
	Note      string    `json:"note,omitempty"`
	SessionID string    `json:"sessionId"`
	Severity  string    `json:"severity,omitempty"`
	Speaker   string    `json:"speaker,omitempty"`
}

// SessionContentBody is the PUT /api/sessions/{id} body.
// A field that is absent (or null) leaves the stored value unchanged.
type SessionContentBody struct {
	Notes      *string `json:"notes"`
	Transcript *string `json:"transcript"`
}

func (b SessionContentBody) toContent() domain.SessionContent {
	return domain.SessionContent{Notes: b.Notes, Transcript: b.Transcript}
}

// InsightCreateBody is the POST /api/sessions/{id}/insights body
type InsightCreateBody struct {
	Excerpt   string `json:"excerpt"`
	Frequency int    `json:"frequency,omitempty"`
	Kind      string `json:"kind"`
	Label     string `json:"label,omitempty"`
	Note      string `json:"note,omitempty"`
	Severity  string `json:"severity,omitempty"`
	Speaker   string `json:"speaker,omitempty"`
}

// ProjectDTO is the API representation of a project
type ProjectDTO struct {
	CreatedAt   time.Time `json:"createdAt"`
	Description string    `json:"description"`
	ID          string    `json:"id"`
	Name        string    `json:"name"`
}

// DashboardDTO is the API representation of a project dashboard
type DashboardDTO struct {
	InsightCount   int                 `json:"insightCount"`
	InsightsByKind map[string]int      `json:"insightsByKind"`
	PainPoints     []PainPointTierDTO  `json:"painPoints"`
	Personas       []PersonaRollupDTO  `json:"personas"`
	ProjectID      string              `json:"projectId"`
	SessionCount   int                 `json:"sessionCount"`
	SessionsByType map[string]int      `json:"sessionsByType"`
	Workflows      []WorkflowRollupDTO `json:"workflows"`
}

// PainPointTierDTO is one severity tier of pain points
type PainPointTierDTO struct {
	Items    []PainPointItemDTO `json:"items"`
	Severity string             `json:"severity"`
}

// PainPointItemDTO is one pain point in a tier
type PainPointItemDTO struct {
	Excerpt   string `json:"excerpt"`
	InsightID string `json:"insightId"`
	SessionID string `json:"sessionId"`
}

// PersonaRollupDTO is a persona with its counts
type PersonaRollupDTO struct {
	Goals          string `json:"goals"`
	ID             string `json:"id"`
	InsightCount   int    `json:"insightCount"`
	Name           string `json:"name"`
	PainPointCount int    `json:"painPointCount"`
	Role           string `json:"role"`
	SessionCount   int    `json:"sessionCount"`
}

// WorkflowRollupDTO is a workflow with its tasks and most severe pain level
type WorkflowRollupDTO struct {
	ID        string            `json:"id"`
	MaxPain   string            `json:"maxPain"`
	Name      string            `json:"name"`
	PersonaID *string           `json:"personaId,omitempty"`
	Tasks     []WorkflowTaskDTO `json:"tasks"`
}

// WorkflowTaskDTO is one workflow task
type WorkflowTaskDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	PainLevel string `json:"painLevel"`
	Position  int    `json:"position"`
}

// SessionToDTO converts a domain session
func SessionToDTO(s domain.Session) SessionDTO {
	insights := make([]InsightDTO, 0, len(s.Insights))
	for _, in := range s.Insights {
		insights = append(insights, InsightToDTO(in))
	}

	return SessionDTO{
		CreatedAt:       s.CreatedAt,
		Date:            s.Date,
		Duration:        s.Duration,
		ID:              s.ID,
		Insights:        insights,
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

// ToDomain converts the DTO back to a domain session
func (d SessionDTO) ToDomain() (domain.Session, error) {
	insights := make([]domain.Insight, 0, len(d.Insights))
	for _, in := range d.Insights {
		insight, err := in.ToDomain()
		if err != nil {
			return domain.Session{}, err
		}
		insights = append(insights, insight)
	}

	return domain.Session{
		CreatedAt:       d.CreatedAt,
		Date:            d.Date,
		Duration:        d.Duration,
		ID:              d.ID,
		Insights:        insights,
		Notes:           d.Notes,
		ParticipantName: d.ParticipantName,
		PersonaID:       d.PersonaID,
		ProjectID:       d.ProjectID,
		RecordingURL:    d.RecordingURL,
		Transcript:      d.Transcript,
		Type:            domain.SessionType(d.Type),
		UpdatedAt:       d.UpdatedAt,
	}, nil
}

// InsightToDTO converts a domain insight
func InsightToDTO(i domain.Insight) InsightDTO {
	dto := InsightDTO{
		CreatedAt: i.CreatedAt,
		Excerpt:   i.Excerpt,
		ID:        i.ID,
		Kind:      string(i.Kind()),
		SessionID: i.SessionID,
	}

	switch d := i.Detail.(type) {
	case domain.Observation:
		dto.Note = d.Note
	case domain.Pattern:
		dto.Frequency = d.Frequency
		dto.Label = d.Label
	case domain.Quote:
		dto.Speaker = d.Speaker
	case domain.PainPoint:
		dto.Severity = string(d.Severity)
	}
	return dto
}

// ToDomain converts the DTO back to a domain insight
func (d InsightDTO) ToDomain() (domain.Insight, error) {
	detail, err := insightDetail(d.Kind, d.Note, d.Label, d.Frequency, d.Speaker, d.Severity)
	if err != nil {
		return domain.Insight{}, err
	}
	return domain.Insight{
		CreatedAt: d.CreatedAt,
		Detail:    detail,
		Excerpt:   d.Excerpt,
		ID:        d.ID,
		SessionID: d.SessionID,
	}, nil
}

// ToDomain builds the insight to create for sessionID
func (b InsightCreateBody) ToDomain(sessionID string) (domain.Insight, error) {
	detail, err := insightDetail(b.Kind, b.Note, b.Label, b.Frequency, b.Speaker, b.Severity)
	if err != nil {
		return domain.Insight{}, err
	}
	return domain.Insight{
		Detail:    detail,
		Excerpt:   b.Excerpt,
		SessionID: sessionID,
	}, nil
}

// InsightToCreateBody is the inverse of InsightCreateBody.ToDomain
func InsightToCreateBody(i domain.Insight) InsightCreateBody {
	dto := InsightToDTO(i)
	return InsightCreateBody{
		Excerpt:   dto.Excerpt,
		Frequency: dto.Frequency,
		Kind:      dto.Kind,
		Label:     dto.Label,
		Note:      dto.Note,
		Severity:  dto.Severity,
		Speaker:   dto.Speaker,
	}
}

func insightDetail(kind, note, label string, frequency int, speaker, severity string) (domain.InsightDetail, error) {
	k, err := domain.ParseInsightKind(kind)
	if err != nil {
		return nil, err
	}

	switch k {
	case domain.InsightObservation:
		return domain.Observation{Note: note}, nil
	case domain.InsightPattern:
		if frequency < 0 {
			return nil, fmt.Errorf("%w: pattern frequency must not be negative", domain.ErrInvalidInput)
		}
		return domain.Pattern{Frequency: frequency, Label: label}, nil
	case domain.InsightQuote:
		return domain.Quote{Speaker: speaker}, nil
	case domain.InsightPainPoint:
		sev, err := domain.ParseSeverity(severity)
		if err != nil {
			return nil, err
		}
		return domain.PainPoint{Severity: sev}, nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrInvalidInsightKind, kind)
}

// ProjectToDTO converts a domain project
func ProjectToDTO(p domain.Project) ProjectDTO {
	return ProjectDTO{
		CreatedAt:   p.CreatedAt,
		Description: p.Description,
		ID:          p.ID,
		Name:        p.Name,
	}
}

// DashboardToDTO converts a domain dashboard. Collections are never null.
func DashboardToDTO(d domain.Dashboard) DashboardDTO {
	dto := DashboardDTO{
		InsightCount:   d.InsightCount,
		InsightsByKind: make(map[string]int, len(d.InsightsByKind)),
		PainPoints:     make([]PainPointTierDTO, 0, len(d.PainPoints)),
		Personas:       make([]PersonaRollupDTO, 0, len(d.Personas)),
		ProjectID:      d.ProjectID,
		SessionCount:   d.SessionCount,
		SessionsByType: make(map[string]int, len(d.SessionsByType)),
		Workflows:      make([]WorkflowRollupDTO, 0, len(d.Workflows)),
	}

	for k, v := range d.InsightsByKind {
		dto.InsightsByKind[string(k)] = v
	}
	for k, v := range d.SessionsByType {
		dto.SessionsByType[string(k)] = v
	}
	for _, tier := range d.PainPoints {
		items := make([]PainPointItemDTO, 0, len(tier.Items))
		for _, item := range tier.Items {
			items = append(items, PainPointItemDTO(item))
		}
		dto.PainPoints = append(dto.PainPoints, PainPointTierDTO{Items: items, Severity: string(tier.Severity)})
	}
	for _, p := range d.Personas {
		dto.Personas = append(dto.Personas, PersonaRollupDTO{
			Goals:          p.Persona.Goals,
			ID:             p.Persona.ID,
			InsightCount:   p.InsightCount,
			Name:           p.Persona.Name,
			PainPointCount: p.PainPointCount,
			Role:           p.Persona.Role,
			SessionCount:   p.SessionCount,
		})
	}
	for _, w := range d.Workflows {
		tasks := make([]WorkflowTaskDTO, 0, len(w.Workflow.Tasks))
		for _, t := range w.Workflow.Tasks {
			tasks = append(tasks, WorkflowTaskDTO{
				ID:        t.ID,
				Name:      t.Name,
				PainLevel: string(t.PainLevel),
				Position:  t.Position,
			})
		}
		dto.Workflows = append(dto.Workflows, WorkflowRollupDTO{
			ID:        w.Workflow.ID,
			MaxPain:   string(w.MaxPain),
			Name:      w.Workflow.Name,
			PersonaID: w.Workflow.PersonaID,
			Tasks:     tasks,
		})
	}

	return dto
}

// ToDomain converts the DTO back to a domain dashboard
func (d DashboardDTO) ToDomain() domain.Dashboard {
	out := domain.Dashboard{
		InsightCount:   d.InsightCount,
		InsightsByKind: make(map[domain.InsightKind]int, len(d.InsightsByKind)),
		ProjectID:      d.ProjectID,
		SessionCount:   d.SessionCount,
		SessionsByType: make(map[domain.SessionType]int, len(d.SessionsByType)),
	}

	for k, v := range d.InsightsByKind {
		out.InsightsByKind[domain.InsightKind(k)] = v
	}
	for k, v := range d.SessionsByType {
		out.SessionsByType[domain.SessionType(k)] = v
	}
	for _, tier := range d.PainPoints {
		var items []domain.PainPointItem
		for _, item := range tier.Items {
			items = append(items, domain.PainPointItem(item))
		}
		out.PainPoints = append(out.PainPoints, domain.PainPointTier{Items: items, Severity: domain.Severity(tier.Severity)})
	}
	for _, p := range d.Personas {
		out.Personas = append(out.Personas, domain.PersonaRollup{
			InsightCount:   p.InsightCount,
			PainPointCount: p.PainPointCount,
			Persona:        domain.Persona{Goals: p.Goals, ID: p.ID, Name: p.Name, ProjectID: d.ProjectID, Role: p.Role},
			SessionCount:   p.SessionCount,
		})
	}
	for _, w := range d.Workflows {
		workflow := domain.Workflow{ID: w.ID, Name: w.Name, PersonaID: w.PersonaID, ProjectID: d.ProjectID}
		for _, t := range w.Tasks {
			workflow.Tasks = append(workflow.Tasks, domain.WorkflowTask{
				ID:        t.ID,
				Name:      t.Name,
				PainLevel: domain.Severity(t.PainLevel),
				Position:  t.Position,
			})
		}
		out.Workflows = append(out.Workflows, domain.WorkflowRollup{MaxPain: domain.Severity(w.MaxPain), Workflow: workflow})
	}

	return out
}
