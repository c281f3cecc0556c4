package cmd

// ViewCmd opens the session detail editor
type ViewCmd struct {
	TUIFlags `embed:""`

	SessionID string `arg:"" help:"ID of the session to edit"`
}

// Run executes the view command
func (v *ViewCmd) Run(cli *CLI) error {
	return runTUI(cli, v.TUIFlags, "", v.SessionID)
}
