package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"fieldnotes/internal/api"
)

// SessionsListCmd lists the sessions of a project
type SessionsListCmd struct {
	Format    string `help:"Output format: table or json" enum:"table,json" default:"table"`
	ProjectID string `arg:"" help:"Project ID"`
}

// Run executes the list command
func (s *SessionsListCmd) Run(cli *CLI) error {
	ctx := context.Background()
	svc, err := cli.Container.Services(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	sessions, err := svc.Sessions.ListSessions(ctx, s.ProjectID)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if s.Format == "json" {
		dtos := make([]api.SessionDTO, len(sessions))
		for i, session := range sessions {
			dtos[i] = api.SessionToDTO(session)
		}
		return printJSON(dtos)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tTYPE\tPARTICIPANT\tINSIGHTS")
	for _, session := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
			session.ID,
			session.Date.Format("2006-01-02"),
			session.Type,
			valueOr(session.ParticipantName, "-"),
			len(session.Insights))
	}
	return w.Flush()
}
