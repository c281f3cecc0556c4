package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fieldnotes/internal/domain"
	portsmocks "fieldnotes/internal/ports/mocks"
)

func dashboardFixture() ([]domain.Session, []domain.Persona, []domain.Workflow) {
	sessions := []domain.Session{
		{
			ID:        "s1",
			PersonaID: strPtr("pe1"),
			Type:      domain.SessionInterview,
			Insights: []domain.Insight{
				{ID: "i1", Excerpt: "card declined", Detail: domain.PainPoint{Severity: domain.SeverityCritical}},
				{ID: "i2", Excerpt: "love the summary", Detail: domain.Quote{Speaker: "P1"}},
			},
		},
		{
			ID:        "s2",
			PersonaID: strPtr("pe1"),
			Type:      domain.SessionUsabilityTest,
			Insights: []domain.Insight{
				{ID: "i3", Excerpt: "missed the coupon field", Detail: domain.PainPoint{Severity: domain.SeverityMedium}},
			},
		},
		{
			ID:   "s3",
			Type: domain.SessionInterview,
			Insights: []domain.Insight{
				{ID: "i4", Excerpt: "opens help first", Detail: domain.Pattern{Label: "help first", Frequency: 2}},
			},
		},
	}
	personas := []domain.Persona{{ID: "pe1", Name: "Busy parent"}, {ID: "pe2", Name: "Student"}}
	workflows := []domain.Workflow{{
		ID:   "w1",
		Name: "Checkout",
		Tasks: []domain.WorkflowTask{
			{Name: "cart", PainLevel: domain.SeverityLow},
			{Name: "pay", PainLevel: domain.SeverityHigh},
		},
	}}
	return sessions, personas, workflows
}

func TestBuildDashboard_Counts(t *testing.T) {
	sessions, personas, workflows := dashboardFixture()

	d := BuildDashboard("p1", sessions, personas, workflows)

	assert.Equal(t, "p1", d.ProjectID)
	assert.Equal(t, 3, d.SessionCount)
	assert.Equal(t, 2, d.SessionsByType[domain.SessionInterview])
	assert.Equal(t, 1, d.SessionsByType[domain.SessionUsabilityTest])
	assert.Equal(t, 4, d.InsightCount)
	assert.Equal(t, 2, d.InsightsByKind[domain.InsightPainPoint])
	assert.Equal(t, 1, d.InsightsByKind[domain.InsightQuote])
	assert.Equal(t, 1, d.InsightsByKind[domain.InsightPattern])
}

func TestBuildDashboard_PainPointTiers(t *testing.T) {
	sessions, personas, workflows := dashboardFixture()

	d := BuildDashboard("p1", sessions, personas, workflows)

	require.Len(t, d.PainPoints, 4, "every tier is present")
	assert.Equal(t, domain.SeverityCritical, d.PainPoints[0].Severity)
	assert.Equal(t, domain.SeverityLow, d.PainPoints[3].Severity)

	require.Len(t, d.PainPoints[0].Items, 1)
	assert.Equal(t, "card declined", d.PainPoints[0].Items[0].Excerpt)
	assert.Equal(t, "s1", d.PainPoints[0].Items[0].SessionID)
	assert.Empty(t, d.PainPoints[1].Items)
	require.Len(t, d.PainPoints[2].Items, 1)
	assert.Equal(t, "i3", d.PainPoints[2].Items[0].InsightID)
}

func TestBuildDashboard_PersonaAndWorkflowRollups(t *testing.T) {
	sessions, personas, workflows := dashboardFixture()

	d := BuildDashboard("p1", sessions, personas, workflows)

	require.Len(t, d.Personas, 2)
	assert.Equal(t, 2, d.Personas[0].SessionCount)
	assert.Equal(t, 3, d.Personas[0].InsightCount)
	assert.Equal(t, 2, d.Personas[0].PainPointCount)
	assert.Equal(t, 0, d.Personas[1].SessionCount, "persona without sessions still listed")

	require.Len(t, d.Workflows, 1)
	assert.Equal(t, domain.SeverityHigh, d.Workflows[0].MaxPain)
}

func TestBuildDashboard_Empty(t *testing.T) {
	d := BuildDashboard("p1", nil, nil, nil)

	assert.Equal(t, 0, d.SessionCount)
	assert.Equal(t, 0, d.InsightCount)
	assert.Len(t, d.PainPoints, 4)
	assert.Empty(t, d.Personas)
}

func TestGetDashboard_UnknownProject(t *testing.T) {
	repo := portsmocks.NewMockSessionRepository(t)
	repo.EXPECT().GetProject(mock.Anything, "nope").Return(nil, domain.ErrProjectNotFound).Once()

	_, err := NewDashboardService(repo).GetDashboard(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}
