package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"fieldnotes/internal/domain"
	"fieldnotes/internal/logging"
	"fieldnotes/internal/ports"
)

// SessionService handles session reads, content edits and insight capture
type SessionService struct {
	linker ports.RecordingLinker
	repo   ports.SessionRepository
}

var _ ports.SessionAPI = (*SessionService)(nil)

// NewSessionService creates a new SessionService. linker may be nil, in
// which case recording references are returned as stored.
func NewSessionService(repo ports.SessionRepository, linker ports.RecordingLinker) *SessionService {
	return &SessionService{
		linker: linker,
		repo:   repo,
	}
}

// CreateSessionParams contains parameters for creating a session
type CreateSessionParams struct {
	Date            time.Time
	Duration        *int
	ParticipantName string
	PersonaID       string
	ProjectID       string
	RecordingURL    string
	Type            domain.SessionType
}

// CreateSession validates and stores a new session with no content
func (s *SessionService) CreateSession(ctx context.Context, params CreateSessionParams) (*domain.Session, error) {
	if _, err := domain.ParseSessionType(string(params.Type)); err != nil {
		return nil, err
	}
	if params.Duration != nil && *params.Duration < 0 {
		return nil, fmt.Errorf("%w: duration must not be negative", domain.ErrInvalidInput)
	}
	if _, err := s.repo.GetProject(ctx, params.ProjectID); err != nil {
		return nil, err
	}

	if params.PersonaID != "" {
		personas, err := s.repo.ListPersonas(ctx, params.ProjectID)
		if err != nil {
			return nil, err
		}
		if !containsPersona(personas, params.PersonaID) {
			return nil, fmt.Errorf("%w: persona %s is not part of project %s",
				domain.ErrInvalidInput, params.PersonaID, params.ProjectID)
		}
	}

	date := params.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	session := domain.Session{
		Date:            date,
		Duration:        params.Duration,
		ID:              uuid.New().String(),
		ParticipantName: optionalString(params.ParticipantName),
		PersonaID:       optionalString(params.PersonaID),
		ProjectID:       params.ProjectID,
		RecordingURL:    optionalString(params.RecordingURL),
		Type:            params.Type,
	}

	logging.Logger.Info("Creating session", "id", session.ID, "project", session.ProjectID, "type", session.Type)
	if err := s.repo.Add(ctx, session); err != nil {
		return nil, err
	}

	return s.repo.Get(ctx, session.ID)
}

// GetSession returns a session with its insights
func (s *SessionService) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	return s.repo.Get(ctx, id)
}

// ListSessions returns the sessions of an existing project
func (s *SessionService) ListSessions(ctx context.Context, projectID string) ([]domain.Session, error) {
	if _, err := s.repo.GetProject(ctx, projectID); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, projectID)
}

// UpdateSessionContent writes the provided notes and transcript and returns
// the stored record. An update with neither field set changes nothing.
func (s *SessionService) UpdateSessionContent(ctx context.Context, id string, content domain.SessionContent) (*domain.Session, error) {
	if content.IsEmpty() {
		return s.repo.Get(ctx, id)
	}

	logging.Logger.Debug("Updating session content",
		"id", id,
		"notes", content.Notes != nil,
		"transcript", content.Transcript != nil)

	if err := s.repo.UpdateContent(ctx, id, content); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

// CreateInsight attaches an insight to its session. The id and creation
// time are assigned here.
func (s *SessionService) CreateInsight(ctx context.Context, insight domain.Insight) (*domain.Insight, error) {
	insight.Excerpt = strings.TrimSpace(insight.Excerpt)
	if err := insight.Validate(); err != nil {
		return nil, err
	}

	insight.ID = uuid.New().String()
	insight.CreatedAt = time.Now().UTC()

	logging.Logger.Info("Creating insight", "id", insight.ID, "session", insight.SessionID, "kind", insight.Kind())
	if err := s.repo.AddInsight(ctx, insight); err != nil {
		return nil, err
	}
	return &insight, nil
}

// RecordingLink resolves the session's recording reference to an openable URL
func (s *SessionService) RecordingLink(ctx context.Context, id string) (string, error) {
	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if session.RecordingURL == nil || strings.TrimSpace(*session.RecordingURL) == "" {
		return "", fmt.Errorf("session %s: %w", id, domain.ErrNoRecording)
	}
	if s.linker == nil {
		return *session.RecordingURL, nil
	}
	return s.linker.Link(ctx, *session.RecordingURL)
}

func containsPersona(personas []domain.Persona, id string) bool {
	for _, p := range personas {
		if p.ID == id {
			return true
		}
	}
	return false
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
