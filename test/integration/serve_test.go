package integration_test

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldnotes/test/integration/harness"
)

func doJSON(t *testing.T, method, url, body string, target any) int {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if target != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
	}
	return resp.StatusCode
}

func TestServe_SessionAPI(t *testing.T) {
	env := harness.NewMigratedEnvironment(t)

	result := harness.RunCommand(t, env, "projects", "add", "Onboarding")
	harness.AssertSuccess(t, result)
	projectID := harness.ExtractID(t, result)

	result = harness.RunCommand(t, env, "sessions", "add", "usability_test", "--project", projectID, "--participant", "P7")
	harness.AssertSuccess(t, result)
	sessionID := harness.ExtractID(t, result)

	srv := harness.StartServer(t, env, "--quiet")
	sessionURL := srv.BaseURL + "/api/sessions/" + sessionID

	var session map[string]any
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, sessionURL, "", &session))
	assert.Equal(t, "usability_test", session["type"])
	assert.Equal(t, "P7", session["participantName"])
	assert.Empty(t, session["insights"])

	t.Run("put writes only the fields present", func(t *testing.T) {
		var updated map[string]any
		status := doJSON(t, http.MethodPut, sessionURL, `{"transcript": "Interviewer: hi"}`, &updated)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Interviewer: hi", updated["transcript"])

		status = doJSON(t, http.MethodPut, sessionURL, `{"notes": "# Findings"}`, &updated)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "# Findings", updated["notes"])
		assert.Equal(t, "Interviewer: hi", updated["transcript"])
	})

	t.Run("insight from selected text", func(t *testing.T) {
		var insight map[string]any
		status := doJSON(t, http.MethodPost, sessionURL+"/insights",
			`{"kind": "pain_point", "excerpt": "could not find the button", "severity": "critical"}`, &insight)
		require.Equal(t, http.StatusCreated, status)
		assert.Equal(t, sessionID, insight["sessionId"])
	})

	t.Run("dashboard has every severity tier", func(t *testing.T) {
		var dash struct {
			InsightCount int `json:"insightCount"`
			PainPoints   []struct {
				Items    []map[string]any `json:"items"`
				Severity string           `json:"severity"`
			} `json:"painPoints"`
			SessionCount int `json:"sessionCount"`
		}
		status := doJSON(t, http.MethodGet, srv.BaseURL+"/api/projects/"+projectID+"/dashboard", "", &dash)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, 1, dash.SessionCount)
		assert.Equal(t, 1, dash.InsightCount)
		require.Len(t, dash.PainPoints, 4)
		assert.Equal(t, "critical", dash.PainPoints[0].Severity)
		assert.Len(t, dash.PainPoints[0].Items, 1)
	})

	t.Run("unknown session", func(t *testing.T) {
		var envelope struct {
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		status := doJSON(t, http.MethodGet, srv.BaseURL+"/api/sessions/missing", "", &envelope)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "not_found", envelope.Error.Code)
	})
}

func TestServe_MigrateFlag(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	srv := harness.StartServer(t, env, "--quiet", "--migrate")

	var projects []map[string]any
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, srv.BaseURL+"/api/projects", "", &projects))
	assert.Empty(t, projects)
}
