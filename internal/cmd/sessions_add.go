package cmd

import (
	"context"
	"fmt"

	"fieldnotes/internal/domain"
	"fieldnotes/internal/services"
)

// SessionsAddCmd adds a new session
type SessionsAddCmd struct {
	Date        string `help:"Session date (YYYY-MM-DD or RFC3339, default now)" default:""`
	Duration    int    `help:"Duration in minutes (0 = not recorded)" default:"0"`
	Participant string `help:"Participant name" default:""`
	Persona     string `help:"Persona ID (must belong to the project)" default:""`
	Project     string `help:"Project ID" required:""`
	Recording   string `help:"Recording reference (s3://bucket/key or an http(s) URL)" default:""`
	Type        string `arg:"" help:"Session type" enum:"interview,observation,usability_test,survey,analytics,diary"`
}

// Run executes the add command
func (s *SessionsAddCmd) Run(cli *CLI) error {
	sessionType, err := domain.ParseSessionType(s.Type)
	if err != nil {
		return err
	}
	date, err := parseDate(s.Date)
	if err != nil {
		return err
	}
	if s.Duration < 0 {
		return fmt.Errorf("duration must not be negative")
	}

	params := services.CreateSessionParams{
		Date:            date,
		ParticipantName: s.Participant,
		PersonaID:       s.Persona,
		ProjectID:       s.Project,
		RecordingURL:    s.Recording,
		Type:            sessionType,
	}
	if s.Duration > 0 {
		duration := s.Duration
		params.Duration = &duration
	}

	ctx := context.Background()
	svc, err := cli.Container.Services(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	session, err := svc.Sessions.CreateSession(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to add session: %w", err)
	}

	fmt.Printf("Session added (id %s)\n", session.ID)
	return nil
}
