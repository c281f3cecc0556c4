package server

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"fieldnotes/internal/logging"
	"fieldnotes/internal/ui"
)

const usage = "usage: ssh <host> <project-id> | session <session-id>"

// target is what an SSH session asked to open
type target struct {
	projectID string
	sessionID string
}

// parseTarget reads the SSH command: a project id opens its dashboard,
// "session <id>" opens a single session
func parseTarget(args []string) (target, error) {
	switch {
	case len(args) == 1 && args[0] != "session":
		return target{projectID: args[0]}, nil
	case len(args) == 2 && args[0] == "session":
		return target{sessionID: args[1]}, nil
	}
	return target{}, errors.New(usage)
}

// sessionModel wraps ui.Model to log the SSH session lifecycle
type sessionModel struct {
	*ui.Model
	sessionID string
	startTime time.Time
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		logging.Logger.Info("SSH session ended",
			"session_id", s.sessionID,
			"duration", time.Since(s.startTime).String())
	}

	updated, cmd := s.Model.Update(msg)
	if m, ok := updated.(*ui.Model); ok {
		s.Model = m
	}
	return s, cmd
}

// teaHandler creates a Bubbletea model for each SSH session
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"command", sess.Command(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	t, err := parseTarget(sess.Command())
	if err != nil {
		return errorModel{err}, nil
	}

	model, err := ui.NewModel(ui.ModelConfig{
		Dashboards:      s.dashboards,
		ErrorClearDelay: s.config.ErrorClearDelay,
		ProjectID:       t.projectID,
		SessionID:       t.sessionID,
		Sessions:        s.sessions,
	})
	if err != nil {
		logging.Logger.Error("Failed to create UI for SSH session", "error", err, "session_id", sessionID)
		return errorModel{err}, nil
	}

	wrapped := &sessionModel{
		Model:     model,
		sessionID: sessionID,
		startTime: time.Now(),
	}

	return wrapped, []tea.ProgramOption{tea.WithAltScreen()}
}

// errorModel displays an error and exits
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return tea.Quit
}

func (e errorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return e, tea.Quit
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n", e.err)
}
