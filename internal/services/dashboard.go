package services

import (
	"context"
	"fmt"

	"fieldnotes/internal/domain"
	"fieldnotes/internal/logging"
	"fieldnotes/internal/ports"
)

// DashboardService computes per-project rollups from stored rows
type DashboardService struct {
	repo ports.SessionRepository
}

var _ ports.DashboardAPI = (*DashboardService)(nil)

// NewDashboardService creates a new DashboardService
func NewDashboardService(repo ports.SessionRepository) *DashboardService {
	return &DashboardService{repo: repo}
}

// GetDashboard loads a project's sessions, personas and workflows and aggregates them
func (s *DashboardService) GetDashboard(ctx context.Context, projectID string) (*domain.Dashboard, error) {
	if _, err := s.repo.GetProject(ctx, projectID); err != nil {
		return nil, err
	}

	sessions, err := s.repo.List(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}
	personas, err := s.repo.ListPersonas(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load personas: %w", err)
	}
	workflows, err := s.repo.ListWorkflows(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load workflows: %w", err)
	}

	dashboard := BuildDashboard(projectID, sessions, personas, workflows)
	logging.Logger.Debug("Dashboard built",
		"project", projectID,
		"sessions", dashboard.SessionCount,
		"insights", dashboard.InsightCount)
	return dashboard, nil
}

// BuildDashboard aggregates already loaded rows. Every severity tier is
// present in PainPoints, most severe first, even when it has no items.
func BuildDashboard(
	projectID string,
	sessions []domain.Session,
	personas []domain.Persona,
	workflows []domain.Workflow,
) *domain.Dashboard {
	d := &domain.Dashboard{
		InsightsByKind: make(map[domain.InsightKind]int),
		ProjectID:      projectID,
		SessionCount:   len(sessions),
		SessionsByType: make(map[domain.SessionType]int),
	}

	tiers := make(map[domain.Severity][]domain.PainPointItem)
	type personaTotals struct{ sessions, insights, painPoints int }
	byPersona := make(map[string]*personaTotals)

	for _, session := range sessions {
		d.SessionsByType[session.Type]++

		var totals *personaTotals
		if session.PersonaID != nil {
			totals = byPersona[*session.PersonaID]
			if totals == nil {
				totals = &personaTotals{}
				byPersona[*session.PersonaID] = totals
			}
			totals.sessions++
		}

		for _, insight := range session.Insights {
			d.InsightCount++
			d.InsightsByKind[insight.Kind()]++
			if totals != nil {
				totals.insights++
			}

			pp, ok := insight.Detail.(domain.PainPoint)
			if !ok {
				continue
			}
			if totals != nil {
				totals.painPoints++
			}
			tiers[pp.Severity] = append(tiers[pp.Severity], domain.PainPointItem{
				Excerpt:   insight.Excerpt,
				InsightID: insight.ID,
				SessionID: session.ID,
			})
		}
	}

	for _, severity := range domain.Severities {
		d.PainPoints = append(d.PainPoints, domain.PainPointTier{
			Items:    tiers[severity],
			Severity: severity,
		})
	}

	for _, persona := range personas {
		rollup := domain.PersonaRollup{Persona: persona}
		if totals := byPersona[persona.ID]; totals != nil {
			rollup.SessionCount = totals.sessions
			rollup.InsightCount = totals.insights
			rollup.PainPointCount = totals.painPoints
		}
		d.Personas = append(d.Personas, rollup)
	}

	for _, workflow := range workflows {
		d.Workflows = append(d.Workflows, domain.WorkflowRollup{
			MaxPain:  workflow.MaxPain(),
			Workflow: workflow,
		})
	}

	return d
}
