package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"fieldnotes/internal/services"
)

// WorkflowsCmd manages workflows
type WorkflowsCmd struct {
	Add  WorkflowsAddCmd  `cmd:"add" help:"Add a workflow with its tasks to a project"`
	List WorkflowsListCmd `cmd:"list" help:"List the workflows of a project"`
}

// WorkflowsAddCmd adds a workflow
type WorkflowsAddCmd struct {
	Name    string   `arg:"" help:"Name of the workflow"`
	Persona string   `help:"Persona ID performing the workflow" default:""`
	Project string   `help:"Project ID" required:""`
	Task    []string `help:"Task as name:level (level is low, medium, high or critical), repeat in order"`
}

// Run executes the add command
func (w *WorkflowsAddCmd) Run(cli *CLI) error {
	tasks := make([]services.WorkflowTaskParams, 0, len(w.Task))
	for _, raw := range w.Task {
		task, err := services.ParseWorkflowTask(raw)
		if err != nil {
			return err
		}
		tasks = append(tasks, task)
	}

	ctx := context.Background()
	svc, err := cli.Container.Services(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	workflow, err := svc.Projects.CreateWorkflow(ctx, services.CreateWorkflowParams{
		Name:      w.Name,
		PersonaID: w.Persona,
		ProjectID: w.Project,
		Tasks:     tasks,
	})
	if err != nil {
		return fmt.Errorf("failed to add workflow: %w", err)
	}

	fmt.Printf("Workflow '%s' added with %d tasks (id %s)\n", workflow.Name, len(workflow.Tasks), workflow.ID)
	return nil
}

// WorkflowsListCmd lists the workflows of a project
type WorkflowsListCmd struct {
	ProjectID string `arg:"" help:"Project ID"`
}

// Run executes the list command
func (w *WorkflowsListCmd) Run(cli *CLI) error {
	ctx := context.Background()
	svc, err := cli.Container.Services(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	workflows, err := svc.Projects.ListWorkflows(ctx, w.ProjectID)
	if err != nil {
		return fmt.Errorf("failed to list workflows: %w", err)
	}

	if len(workflows) == 0 {
		fmt.Println("No workflows found")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tMAX PAIN\tTASKS")
	for _, workflow := range workflows {
		names := make([]string, len(workflow.Tasks))
		for i, task := range workflow.Tasks {
			names[i] = fmt.Sprintf("%s (%s)", task.Name, task.PainLevel)
		}
		maxPain := string(workflow.MaxPain())
		if maxPain == "" {
			maxPain = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", workflow.ID, workflow.Name, maxPain, strings.Join(names, " → "))
	}
	return tw.Flush()
}
