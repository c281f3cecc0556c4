package ui

import (
	"fieldnotes/internal/domain"
)

// Action messages emitted by the views and handled by Model

// BackMsg requests leaving the current view
type BackMsg struct{}

// OpenSessionMsg requests opening the detail view for a session
type OpenSessionMsg struct {
	SessionID string
}

// QuitMsg requests quitting the application
type QuitMsg struct{}

// ShowHelpMsg requests showing the help screen
type ShowHelpMsg struct{}

// ShowImportMsg requests the transcript file picker
type ShowImportMsg struct{}

// ShowInsightFormMsg requests the insight dialog seeded with captured text
type ShowInsightFormMsg struct {
	Excerpt   string
	SessionID string
	Speaker   string
}

// ShowPreviewMsg requests a rendered markdown preview
type ShowPreviewMsg struct {
	Text  string
	Title string
}

// Results of asynchronous API calls. Each carries the session or project it
// was issued for so late responses for a view that has moved on are dropped.

type sessionLoadedMsg struct {
	err       error
	session   *domain.Session
	sessionID string
}

type sessionSavedMsg struct {
	err       error
	session   *domain.Session
	sessionID string
}

type insightCreatedMsg struct {
	err       error
	insight   *domain.Insight
	sessionID string
}

type transcriptReadMsg struct {
	contents  []byte
	err       error
	path      string
	sessionID string
}

type dashboardLoadedMsg struct {
	dashboard *domain.Dashboard
	err       error
	projectID string
	sessions  []domain.Session
}
