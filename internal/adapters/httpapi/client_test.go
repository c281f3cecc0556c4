package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldnotes/internal/api"
	"fieldnotes/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestGetSession_DecodesDTO(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/api/sessions/s1", r.URL.Path)
		api.WriteJSON(w, api.SessionDTO{
			Date:      time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
			ID:        "s1",
			Insights:  []api.InsightDTO{{ID: "i1", Kind: "quote", Excerpt: "too slow", Speaker: "Dana", SessionID: "s1"}},
			Notes:     strPtr("A"),
			ProjectID: "p1",
			Type:      "interview",
		}, http.StatusOK)
	}))
	defer ts.Close()

	session, err := NewClient(ts.URL + "/").GetSession(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "A", session.NotesText())
	assert.Nil(t, session.Transcript)
	assert.Equal(t, domain.SessionInterview, session.Type)
	require.Len(t, session.Insights, 1)
	assert.Equal(t, domain.Quote{Speaker: "Dana"}, session.Insights[0].Detail)
}

func TestGetSession_NotFoundMapsToSentinel(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.WriteError(w, api.ErrNotFound, "session not found", http.StatusNotFound)
	}))
	defer ts.Close()

	_, err := NewClient(ts.URL).GetSession(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestUpdateSessionContent_SendsPair(t *testing.T) {
	var received map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		api.WriteJSON(w, api.SessionDTO{ID: "s1", Notes: strPtr("A"), Transcript: strPtr("")}, http.StatusOK)
	}))
	defer ts.Close()

	session, err := NewClient(ts.URL).UpdateSessionContent(context.Background(), "s1", domain.NewSessionContent("A", ""))
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"notes": "A", "transcript": ""}, received)
	assert.Equal(t, "", *session.Transcript)
}

func TestServerErrorsSurfaceAsAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.WriteError(w, api.ErrInternal, "update session failed", http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := NewClient(ts.URL).UpdateSessionContent(context.Background(), "s1", domain.NewSessionContent("A", "B"))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "update session failed", apiErr.Message)
	assert.NotErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestCreateInsight_PostsKindFields(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sessions/s1/insights", r.URL.Path)
		var body api.InsightCreateBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "quote", body.Kind)
		assert.Equal(t, "P1", body.Speaker)
		api.WriteJSON(w, api.InsightDTO{ID: "i9", Kind: body.Kind, Excerpt: body.Excerpt, Speaker: body.Speaker, SessionID: "s1"}, http.StatusCreated)
	}))
	defer ts.Close()

	created, err := NewClient(ts.URL).CreateInsight(context.Background(), domain.Insight{
		Detail: domain.Quote{Speaker: "P1"}, Excerpt: "hard to find", SessionID: "s1",
	})
	require.NoError(t, err)
	assert.Equal(t, "i9", created.ID)
	assert.Equal(t, domain.InsightQuote, created.Kind())
}

func TestGetDashboard_UnknownProject(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.WriteError(w, api.ErrNotFound, "project not found", http.StatusNotFound)
	}))
	defer ts.Close()

	_, err := NewClient(ts.URL).GetDashboard(context.Background(), "p9")
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}
