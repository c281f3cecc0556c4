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

func TestParseWorkflowTask(t *testing.T) {
	tests := []struct {
		input    string
		expected WorkflowTaskParams
		wantErr  bool
	}{
		{input: "pay:high", expected: WorkflowTaskParams{Name: "pay", PainLevel: domain.SeverityHigh}},
		{input: " review cart ", expected: WorkflowTaskParams{Name: "review cart", PainLevel: domain.SeverityLow}},
		{input: "confirm:CRITICAL", expected: WorkflowTaskParams{Name: "confirm", PainLevel: domain.SeverityCritical}},
		{input: ":high", wantErr: true},
		{input: "pay:urgent", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseWorkflowTask(tt.input)
			if tt.wantErr {
				assert.True(t, domain.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCreateWorkflow_AssignsPositions(t *testing.T) {
	repo := portsmocks.NewMockSessionRepository(t)
	repo.EXPECT().GetProject(mock.Anything, "p1").Return(&domain.Project{ID: "p1"}, nil).Once()

	var stored domain.Workflow
	repo.EXPECT().AddWorkflow(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, workflow domain.Workflow) { stored = workflow }).
		Return(nil).Once()

	service := NewProjectService(repo)
	_, err := service.CreateWorkflow(context.Background(), CreateWorkflowParams{
		Name:      "Checkout",
		ProjectID: "p1",
		Tasks: []WorkflowTaskParams{
			{Name: "review cart", PainLevel: domain.SeverityLow},
			{Name: "pay", PainLevel: domain.SeverityHigh},
		},
	})

	require.NoError(t, err)
	require.Len(t, stored.Tasks, 2)
	assert.Equal(t, 0, stored.Tasks[0].Position)
	assert.Equal(t, 1, stored.Tasks[1].Position)
	assert.Nil(t, stored.PersonaID)
}

func TestCreateProject_RequiresName(t *testing.T) {
	repo := portsmocks.NewMockSessionRepository(t)

	_, err := NewProjectService(repo).CreateProject(context.Background(), "  ", "desc")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreatePersona_UnknownProject(t *testing.T) {
	repo := portsmocks.NewMockSessionRepository(t)
	repo.EXPECT().GetProject(mock.Anything, "p9").Return(nil, domain.ErrProjectNotFound).Once()

	_, err := NewProjectService(repo).CreatePersona(context.Background(), CreatePersonaParams{Name: "Ops lead", ProjectID: "p9"})
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}
