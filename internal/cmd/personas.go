package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"fieldnotes/internal/services"
)

// PersonasCmd manages personas
type PersonasCmd struct {
	Add  PersonasAddCmd  `cmd:"add" help:"Add a persona to a project"`
	List PersonasListCmd `cmd:"list" help:"List the personas of a project"`
}

// PersonasAddCmd adds a persona
type PersonasAddCmd struct {
	Goals   string `help:"What the persona is trying to achieve" default:""`
	Name    string `arg:"" help:"Name of the persona"`
	Project string `help:"Project ID" required:""`
	Role    string `help:"Role of the persona" default:""`
}

// Run executes the add command
func (p *PersonasAddCmd) Run(cli *CLI) error {
	ctx := context.Background()
	svc, err := cli.Container.Services(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	persona, err := svc.Projects.CreatePersona(ctx, services.CreatePersonaParams{
		Goals:     p.Goals,
		Name:      p.Name,
		ProjectID: p.Project,
		Role:      p.Role,
	})
	if err != nil {
		return fmt.Errorf("failed to add persona: %w", err)
	}

	fmt.Printf("Persona '%s' added (id %s)\n", persona.Name, persona.ID)
	return nil
}

// PersonasListCmd lists the personas of a project
type PersonasListCmd struct {
	ProjectID string `arg:"" help:"Project ID"`
}

// Run executes the list command
func (p *PersonasListCmd) Run(cli *CLI) error {
	ctx := context.Background()
	svc, err := cli.Container.Services(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	personas, err := svc.Projects.ListPersonas(ctx, p.ProjectID)
	if err != nil {
		return fmt.Errorf("failed to list personas: %w", err)
	}

	if len(personas) == 0 {
		fmt.Println("No personas found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tROLE\tGOALS")
	for _, persona := range personas {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", persona.ID, persona.Name, persona.Role, persona.Goals)
	}
	return w.Flush()
}
