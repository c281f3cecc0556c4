package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldnotes/test/integration/harness"
)

func TestProjectsAndSessions(t *testing.T) {
	env := harness.NewMigratedEnvironment(t)

	result := harness.RunCommand(t, env, "projects", "add", "Checkout study", "--description", "Q3 research")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Project 'Checkout study' added")
	projectID := harness.ExtractID(t, result)

	result = harness.RunCommand(t, env, "personas", "add", "Busy parent", "--project", projectID, "--role", "buyer")
	harness.AssertSuccess(t, result)
	personaID := harness.ExtractID(t, result)

	result = harness.RunCommand(t, env, "workflows", "add", "Checkout",
		"--project", projectID,
		"--persona", personaID,
		"--task", "search:low",
		"--task", "pay:critical")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "with 2 tasks")

	result = harness.RunCommand(t, env, "sessions", "add", "interview",
		"--project", projectID,
		"--persona", personaID,
		"--participant", "P1",
		"--date", "2024-03-09",
		"--duration", "45")
	harness.AssertSuccess(t, result)
	sessionID := harness.ExtractID(t, result)

	result = harness.RunCommand(t, env, "insights", "add", sessionID,
		"--kind", "pain_point",
		"--severity", "high",
		"--excerpt", "very slow")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "pain_point insight added")

	t.Run("projects list json", func(t *testing.T) {
		result := harness.RunCommand(t, env, "projects", "list", "--format", "json")
		harness.AssertSuccess(t, result)

		var projects []map[string]any
		harness.AssertValidJSON(t, result, &projects)
		require.Len(t, projects, 1)
		assert.Equal(t, projectID, projects[0]["id"])
		assert.Equal(t, "Q3 research", projects[0]["description"])
	})

	t.Run("sessions list", func(t *testing.T) {
		result := harness.RunCommand(t, env, "sessions", "list", projectID)
		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, sessionID)
		harness.AssertStdoutContains(t, result, "2024-03-09")
		harness.AssertStdoutContains(t, result, "P1")
	})

	t.Run("sessions view json", func(t *testing.T) {
		result := harness.RunCommand(t, env, "sessions", "view", sessionID, "--format", "json")
		harness.AssertSuccess(t, result)

		var session map[string]any
		harness.AssertValidJSON(t, result, &session)
		assert.Equal(t, "interview", session["type"])
		assert.EqualValues(t, 45, session["duration"])
		insights, ok := session["insights"].([]any)
		require.True(t, ok)
		require.Len(t, insights, 1)
		assert.Equal(t, "high", insights[0].(map[string]any)["severity"])
	})

	t.Run("sessions view raw", func(t *testing.T) {
		result := harness.RunCommand(t, env, "sessions", "view", sessionID, "--format", "raw")
		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "Type: interview")
		harness.AssertStdoutContains(t, result, "── Insights (1) ──")
		harness.AssertStdoutContains(t, result, `[pain_point] "very slow" severity: high`)
	})

	t.Run("workflows list", func(t *testing.T) {
		result := harness.RunCommand(t, env, "workflows", "list", projectID)
		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "critical")
		harness.AssertStdoutContains(t, result, "search (low) → pay (critical)")
	})
}

func TestDataCommandFailures(t *testing.T) {
	env := harness.NewMigratedEnvironment(t)

	tests := []struct {
		name       string
		args       []string
		wantStderr string
	}{
		{
			name:       "session for unknown project",
			args:       []string{"sessions", "add", "interview", "--project", "missing"},
			wantStderr: "project not found",
		},
		{
			name:       "invalid session type",
			args:       []string{"sessions", "add", "focus_group", "--project", "missing"},
			wantStderr: "focus_group",
		},
		{
			name:       "insight for unknown session",
			args:       []string{"insights", "add", "missing", "--excerpt", "x"},
			wantStderr: "session not found",
		},
		{
			name:       "workflow task with unknown pain level",
			args:       []string{"workflows", "add", "Checkout", "--project", "missing", "--task", "pay:urgent"},
			wantStderr: "invalid severity",
		},
		{
			name:       "view unknown session",
			args:       []string{"sessions", "view", "missing"},
			wantStderr: "session not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := harness.RunCommand(t, env, tt.args...)
			harness.AssertFailure(t, result)
			harness.AssertStderrContains(t, result, tt.wantStderr)
		})
	}
}
