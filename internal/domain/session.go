package domain

import (
	"fmt"
	"strings"
	"time"
)

// SessionType represents the kind of research encounter a session records
type SessionType string

const (
	SessionAnalytics     SessionType = "analytics"
	SessionDiary         SessionType = "diary"
	SessionInterview     SessionType = "interview"
	SessionObservation   SessionType = "observation"
	SessionSurvey        SessionType = "survey"
	SessionUsabilityTest SessionType = "usability_test"
)

// SessionTypes lists every session type in display order
var SessionTypes = []SessionType{
	SessionInterview,
	SessionObservation,
	SessionUsabilityTest,
	SessionSurvey,
	SessionAnalytics,
	SessionDiary,
}

// ParseSessionType converts user input to a SessionType.
// Input is case-insensitive and accepts "usability-test" as an alias.
func ParseSessionType(s string) (SessionType, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for _, t := range SessionTypes {
		if string(t) == normalized {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSessionType, s)
}

// Session is one recorded research encounter (domain entity)
type Session struct {
	CreatedAt       time.Time
	Date            time.Time
	Duration        *int // minutes
	ID              string
	Insights        []Insight
	Notes           *string
	ParticipantName *string
	PersonaID       *string
	ProjectID       string
	RecordingURL    *string
	Transcript      *string
	Type            SessionType
	UpdatedAt       time.Time
}

// NotesText returns the notes or an empty string when none are stored
func (s Session) NotesText() string {
	if s.Notes == nil {
		return ""
	}
	return *s.Notes
}

// TranscriptText returns the transcript or an empty string when none is stored
func (s Session) TranscriptText() string {
	if s.Transcript == nil {
		return ""
	}
	return *s.Transcript
}

// SessionContent is the editable text of a session.
// A nil field means "leave the stored value unchanged".
type SessionContent struct {
	Notes      *string
	Transcript *string
}

// NewSessionContent builds a full-replace content update from both texts
func NewSessionContent(notes, transcript string) SessionContent {
	return SessionContent{Notes: &notes, Transcript: &transcript}
}

// IsEmpty reports whether the update would change nothing
func (c SessionContent) IsEmpty() bool {
	return c.Notes == nil && c.Transcript == nil
}
