package cmd

// DashboardCmd opens a project's dashboard, from which sessions can be opened
type DashboardCmd struct {
	TUIFlags `embed:""`

	ProjectID string `arg:"" help:"ID of the project to show"`
}

// Run executes the dashboard command
func (d *DashboardCmd) Run(cli *CLI) error {
	return runTUI(cli, d.TUIFlags, d.ProjectID, "")
}
