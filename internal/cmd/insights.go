package cmd

import (
	"context"
	"fmt"

	"fieldnotes/internal/api"
)

// InsightsCmd manages insights
type InsightsCmd struct {
	Add InsightsAddCmd `cmd:"add" help:"Attach an insight to a session"`
}

// InsightsAddCmd adds an insight
type InsightsAddCmd struct {
	Excerpt   string `help:"Source text the insight is drawn from" required:""`
	Frequency int    `help:"How often the pattern was seen (pattern only)" default:"0"`
	Kind      string `help:"Insight kind" enum:"observation,pattern,quote,pain_point" default:"quote"`
	Label     string `help:"Pattern label (pattern only)" default:""`
	Note      string `help:"Observation note (observation only)" default:""`
	SessionID string `arg:"" help:"Session ID"`
	Severity  string `help:"Pain point severity (pain_point only)" enum:"low,medium,high,critical" default:"medium"`
	Speaker   string `help:"Who said it (quote only)" default:""`
}

// Run executes the add command
func (i *InsightsAddCmd) Run(cli *CLI) error {
	body := api.InsightCreateBody{
		Excerpt:   i.Excerpt,
		Frequency: i.Frequency,
		Kind:      i.Kind,
		Label:     i.Label,
		Note:      i.Note,
		Severity:  i.Severity,
		Speaker:   i.Speaker,
	}
	insight, err := body.ToDomain(i.SessionID)
	if err != nil {
		return err
	}

	ctx := context.Background()
	svc, err := cli.Container.Services(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	// Fails with not found when the session does not exist
	if _, err := svc.Sessions.GetSession(ctx, i.SessionID); err != nil {
		return fmt.Errorf("failed to add insight: %w", err)
	}

	created, err := svc.Sessions.CreateInsight(ctx, insight)
	if err != nil {
		return fmt.Errorf("failed to add insight: %w", err)
	}

	fmt.Printf("%s insight added (id %s)\n", created.Kind(), created.ID)
	return nil
}
