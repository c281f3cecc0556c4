package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"fieldnotes/internal/api"
)

// ProjectsCmd manages projects
type ProjectsCmd struct {
	Add  ProjectsAddCmd  `cmd:"add" help:"Add a new project"`
	List ProjectsListCmd `cmd:"list" help:"List all projects" default:"1"`
}

// ProjectsAddCmd adds a new project
type ProjectsAddCmd struct {
	Description string `help:"Project description" default:""`
	Name        string `arg:"" help:"Name of the project"`
}

// Run executes the add command
func (p *ProjectsAddCmd) Run(cli *CLI) error {
	ctx := context.Background()
	svc, err := cli.Container.Services(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	project, err := svc.Projects.CreateProject(ctx, p.Name, p.Description)
	if err != nil {
		return fmt.Errorf("failed to add project: %w", err)
	}

	fmt.Printf("Project '%s' added (id %s)\n", project.Name, project.ID)
	return nil
}

// ProjectsListCmd lists projects
type ProjectsListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (p *ProjectsListCmd) Run(cli *CLI) error {
	ctx := context.Background()
	svc, err := cli.Container.Services(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	projects, err := svc.Projects.ListProjects(ctx)
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}

	if p.Format == "json" {
		dtos := make([]api.ProjectDTO, len(projects))
		for i, project := range projects {
			dtos[i] = api.ProjectToDTO(project)
		}
		return printJSON(dtos)
	}

	if len(projects) == 0 {
		fmt.Println("No projects found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCREATED\tDESCRIPTION")
	for _, project := range projects {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			project.ID, project.Name, project.CreatedAt.Format("2006-01-02"), project.Description)
	}
	return w.Flush()
}
