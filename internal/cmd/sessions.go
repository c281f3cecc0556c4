package cmd

// SessionsCmd manages sessions
type SessionsCmd struct {
	Add  SessionsAddCmd  `cmd:"add" help:"Add a new session to a project"`
	List SessionsListCmd `cmd:"list" help:"List the sessions of a project"`
	View SessionsViewCmd `cmd:"view" help:"View a session with its notes, transcript and insights"`
}
