package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldnotes/internal/domain"
	portsmocks "fieldnotes/internal/ports/mocks"
)

func TestNewModel_Validation(t *testing.T) {
	api := portsmocks.NewMockSessionAPI(t)

	_, err := NewModel(ModelConfig{SessionID: "s1"})
	assert.Error(t, err, "session API is required")

	_, err = NewModel(ModelConfig{Sessions: api})
	assert.Error(t, err, "needs a project or a session")

	_, err = NewModel(ModelConfig{ProjectID: "proj", Sessions: api})
	assert.Error(t, err, "dashboard needs the dashboard API")

	m, err := NewModel(ModelConfig{SessionID: "s1", Sessions: api})
	require.NoError(t, err)
	assert.Equal(t, stateDetail, m.state)
}

func TestModel_OpenAndLeaveSession(t *testing.T) {
	m, err := NewModel(ModelConfig{
		Dashboards: portsmocks.NewMockDashboardAPI(t),
		ProjectID:  "proj",
		Sessions:   portsmocks.NewMockSessionAPI(t),
	})
	require.NoError(t, err)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	m.Update(OpenSessionMsg{SessionID: "s1"})
	require.NotNil(t, m.detail)
	assert.Equal(t, stateDetail, m.state)
	assert.Equal(t, "s1", m.detail.SessionID())

	_, cmd := m.Update(BackMsg{})
	assert.Equal(t, stateDashboard, m.state)
	assert.Nil(t, m.detail)
	assert.NotNil(t, cmd, "dashboard reloads")

	// Late result for the closed detail view is dropped
	_, cmd = m.Update(sessionSavedMsg{session: &domain.Session{ID: "s1"}, sessionID: "s1"})
	assert.Nil(t, cmd)
}

func TestModel_BackFromStandaloneDetailQuits(t *testing.T) {
	m, err := NewModel(ModelConfig{SessionID: "s1", Sessions: portsmocks.NewMockSessionAPI(t)})
	require.NoError(t, err)

	_, cmd := m.Update(BackMsg{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_HelpDialogOpensAndCloses(t *testing.T) {
	m, err := NewModel(ModelConfig{SessionID: "s1", Sessions: portsmocks.NewMockSessionAPI(t)})
	require.NoError(t, err)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	m.Update(ShowHelpMsg{})
	assert.Equal(t, stateHelp, m.state)
	assert.Contains(t, m.View(), "Session Editor")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stateDetail, m.state)
	assert.Nil(t, m.dialog)
}

func TestModel_InsightDialogCancel(t *testing.T) {
	m, err := NewModel(ModelConfig{SessionID: "s1", Sessions: portsmocks.NewMockSessionAPI(t)})
	require.NoError(t, err)

	m.Update(ShowInsightFormMsg{Excerpt: "very slow", SessionID: "s1"})
	assert.Equal(t, stateInsight, m.state)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd, "cancel creates nothing")
	assert.Equal(t, stateDetail, m.state)
}

func TestModel_ClearError(t *testing.T) {
	m, err := NewModel(ModelConfig{SessionID: "s1", Sessions: portsmocks.NewMockSessionAPI(t)})
	require.NoError(t, err)
	m.errorManager.SetError(ErrNoSelection)

	m.Update(clearErrorMsg{generation: 1})
	assert.False(t, m.errorManager.HasError())
}

func TestModel_StaleClearKeepsNewerError(t *testing.T) {
	m, err := NewModel(ModelConfig{SessionID: "s1", Sessions: portsmocks.NewMockSessionAPI(t)})
	require.NoError(t, err)
	m.errorManager.SetError(ErrNoSelection)
	m.errorManager.SetError(errors.New("save failed"))

	m.Update(clearErrorMsg{generation: 1})
	require.True(t, m.errorManager.HasError())
	assert.EqualError(t, m.errorManager.GetError(), "save failed")

	m.Update(clearErrorMsg{generation: 2})
	assert.False(t, m.errorManager.HasError())
}
