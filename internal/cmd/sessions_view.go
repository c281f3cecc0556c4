package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fieldnotes/internal/api"
	"fieldnotes/internal/domain"
	"fieldnotes/internal/logging"
	"fieldnotes/internal/services"
	"fieldnotes/internal/ui"
)

// markdownWidth is the wrap width for rendered notes and transcripts
const markdownWidth = 100

// SessionsViewCmd views a specific session
type SessionsViewCmd struct {
	Format string `help:"Output format: text (markdown rendered), raw or json" enum:"text,raw,json" default:"text"`
	ID     string `arg:"" help:"ID of the session to view"`
}

// Run executes the view command
func (s *SessionsViewCmd) Run(cli *CLI) error {
	ctx := context.Background()
	svc, err := cli.Container.Services(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	session, err := svc.Sessions.GetSession(ctx, s.ID)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	if s.Format == "json" {
		return printJSON(api.SessionToDTO(*session))
	}

	s.printHeader(ctx, svc.Sessions, session)
	s.printSection("Notes", session.NotesText())
	s.printSection("Transcript", session.TranscriptText())
	s.printInsights(session.Insights)
	return nil
}

func (s *SessionsViewCmd) printHeader(ctx context.Context, sessions *services.SessionService, session *domain.Session) {
	fmt.Printf("Session: %s\n", session.ID)
	fmt.Printf("Project: %s\n", session.ProjectID)
	fmt.Printf("Type: %s\n", session.Type)
	fmt.Printf("Date: %s\n", session.Date.Format("2006-01-02"))
	fmt.Printf("Participant: %s\n", valueOr(session.ParticipantName, "-"))
	fmt.Printf("Persona: %s\n", valueOr(session.PersonaID, "-"))
	if session.Duration != nil {
		fmt.Printf("Duration: %d min\n", *session.Duration)
	}

	link, err := sessions.RecordingLink(ctx, session.ID)
	switch {
	case err == nil:
		fmt.Printf("Recording: %s\n", link)
	case errors.Is(err, domain.ErrNoRecording):
	default:
		logging.Logger.Warn("Failed to resolve recording link", "session_id", session.ID, "error", err)
		fmt.Printf("Recording: %s (link unavailable: %v)\n", valueOr(session.RecordingURL, "-"), err)
	}
}

func (s *SessionsViewCmd) printSection(title, text string) {
	fmt.Printf("\n── %s ──\n", title)
	if strings.TrimSpace(text) == "" {
		fmt.Println("(empty)")
		return
	}
	if s.Format == "raw" {
		fmt.Println(text)
		return
	}

	rendered, err := ui.RenderMarkdown(text, markdownWidth)
	if err != nil {
		logging.Logger.Warn("Failed to render markdown", "section", title, "error", err)
		fmt.Println(text)
		return
	}
	fmt.Print(rendered)
}

func (s *SessionsViewCmd) printInsights(insights []domain.Insight) {
	fmt.Printf("\n── Insights (%d) ──\n", len(insights))
	for _, insight := range insights {
		fmt.Printf("- [%s] %q", insight.Kind(), insight.Excerpt)
		switch d := insight.Detail.(type) {
		case domain.Observation:
			if d.Note != "" {
				fmt.Printf(" note: %s", d.Note)
			}
		case domain.Pattern:
			fmt.Printf(" %s ×%d", d.Label, d.Frequency)
		case domain.Quote:
			if d.Speaker != "" {
				fmt.Printf(" (%s)", d.Speaker)
			}
		case domain.PainPoint:
			fmt.Printf(" severity: %s", d.Severity)
		}
		fmt.Println()
	}
}
