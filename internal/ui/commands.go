package ui

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"fieldnotes/internal/domain"
	"fieldnotes/internal/logging"
	"fieldnotes/internal/ports"
)

// requestTimeout bounds every API call made from the views
const requestTimeout = 30 * time.Second

func loadSessionCmd(api ports.SessionAPI, sessionID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		session, err := api.GetSession(ctx, sessionID)
		if err != nil {
			logging.Logger.Warn("Failed to load session", "session_id", sessionID, "error", err)
		}
		return sessionLoadedMsg{err: err, session: session, sessionID: sessionID}
	}
}

// saveSessionCmd sends the full content and then re-fetches the canonical record
func saveSessionCmd(api ports.SessionAPI, sessionID string, content domain.SessionContent) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if _, err := api.UpdateSessionContent(ctx, sessionID, content); err != nil {
			logging.Logger.Error("Failed to save session", "session_id", sessionID, "error", err)
			return sessionSavedMsg{err: fmt.Errorf("failed to save session: %w", err), sessionID: sessionID}
		}

		session, err := api.GetSession(ctx, sessionID)
		if err != nil {
			logging.Logger.Error("Failed to re-fetch saved session", "session_id", sessionID, "error", err)
			return sessionSavedMsg{err: fmt.Errorf("saved, but failed to reload session: %w", err), sessionID: sessionID}
		}

		logging.Logger.Info("Session saved", "session_id", sessionID)
		return sessionSavedMsg{session: session, sessionID: sessionID}
	}
}

func createInsightCmd(api ports.SessionAPI, insight domain.Insight) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		created, err := api.CreateInsight(ctx, insight)
		if err != nil {
			logging.Logger.Error("Failed to create insight", "session_id", insight.SessionID, "error", err)
			err = fmt.Errorf("failed to create insight: %w", err)
		}
		return insightCreatedMsg{err: err, insight: created, sessionID: insight.SessionID}
	}
}

// readTranscriptCmd reads a file as raw bytes. No size limit or parsing is applied.
func readTranscriptCmd(path, sessionID string) tea.Cmd {
	return func() tea.Msg {
		contents, err := os.ReadFile(path)
		if err != nil {
			err = fmt.Errorf("failed to read %s: %w", path, err)
		}
		return transcriptReadMsg{contents: contents, err: err, path: path, sessionID: sessionID}
	}
}

func loadDashboardCmd(sessions ports.SessionAPI, dashboards ports.DashboardAPI, projectID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		dashboard, err := dashboards.GetDashboard(ctx, projectID)
		if err != nil {
			logging.Logger.Warn("Failed to load dashboard", "project_id", projectID, "error", err)
			return dashboardLoadedMsg{err: err, projectID: projectID}
		}
		list, err := sessions.ListSessions(ctx, projectID)
		if err != nil {
			logging.Logger.Warn("Failed to list sessions", "project_id", projectID, "error", err)
			return dashboardLoadedMsg{err: err, projectID: projectID}
		}
		return dashboardLoadedMsg{dashboard: dashboard, projectID: projectID, sessions: list}
	}
}
