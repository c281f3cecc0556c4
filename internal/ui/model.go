package ui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"fieldnotes/internal/config"
	"fieldnotes/internal/logging"
	"fieldnotes/internal/ports"
	"fieldnotes/internal/theme"
)

type uiState int

const (
	stateDashboard uiState = iota
	stateDetail
	stateHelp
	stateImport
	stateInsight
	statePreview
)

// ModelConfig holds everything needed to build a Model.
// ProjectID starts on the dashboard; otherwise SessionID opens the detail view.
type ModelConfig struct {
	Dashboards      ports.DashboardAPI
	DevMode         bool
	ErrorClearDelay time.Duration
	Keys            config.KeyBindingsConfig
	ProjectID       string
	SessionID       string
	Sessions        ports.SessionAPI
}

// Model is the root of the terminal UI
type Model struct {
	dashboard    *Dashboard // nil when started on a single session
	dashboards   ports.DashboardAPI
	detail       *SessionDetail // nil while on the dashboard
	devMode      bool
	dialog       *Dialog // help, import, insight and preview share this slot
	errorManager *ErrorManager
	height       int
	keys         KeyMap
	previous     uiState // view to return to when the dialog closes
	sessions     ports.SessionAPI
	state        uiState
	width        int
}

// NewModel creates the root model from cfg
func NewModel(cfg ModelConfig) (*Model, error) {
	if cfg.Sessions == nil {
		return nil, errors.New("session API is required")
	}
	if cfg.ProjectID == "" && cfg.SessionID == "" {
		return nil, errors.New("a project or a session id is required")
	}
	if cfg.ProjectID != "" && cfg.Dashboards == nil {
		return nil, errors.New("dashboard API is required to show a project")
	}

	delay := cfg.ErrorClearDelay
	if delay <= 0 {
		delay = time.Duration(config.DefaultErrorClearDelay) * time.Second
	}

	m := &Model{
		dashboards:   cfg.Dashboards,
		devMode:      cfg.DevMode,
		errorManager: NewErrorManager(delay),
		keys:         NewKeyMap(cfg.Keys),
		sessions:     cfg.Sessions,
	}

	if cfg.ProjectID != "" {
		m.dashboard = NewDashboard(cfg.Sessions, cfg.Dashboards, cfg.ProjectID, &m.keys)
		m.state = stateDashboard
	} else {
		m.detail = NewSessionDetail(cfg.Sessions, cfg.SessionID, &m.keys, m.errorManager)
		m.state = stateDetail
	}
	return m, nil
}

func (m *Model) Init() tea.Cmd {
	if m.state == stateDashboard {
		return m.dashboard.Init()
	}
	return m.detail.Init()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.dashboard != nil {
			m.dashboard.SetSize(msg.Width, msg.Height)
		}
		if m.detail != nil {
			m.detail.SetSize(msg.Width, msg.Height)
		}
		if m.dialog != nil {
			return m.updateDialog(msg)
		}
		return m, nil

	case clearErrorMsg:
		m.errorManager.handleClear(msg)
		return m, nil

	case QuitMsg:
		return m, tea.Quit

	case spinner.TickMsg:
		// Spinners ignore ticks carrying another spinner's id
		var cmds []tea.Cmd
		if m.dashboard != nil {
			var cmd tea.Cmd
			m.dashboard, cmd = m.dashboard.Update(msg)
			cmds = append(cmds, cmd)
		}
		if m.detail != nil {
			var cmd tea.Cmd
			m.detail, cmd = m.detail.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case dashboardLoadedMsg:
		if m.dashboard == nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.dashboard, cmd = m.dashboard.Update(msg)
		return m, cmd

	case sessionLoadedMsg, sessionSavedMsg, insightCreatedMsg, transcriptReadMsg:
		// Results for a detail view that was closed are dropped
		if m.detail == nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd

	case OpenSessionMsg:
		logging.Logger.Debug("Opening session", "session_id", msg.SessionID)
		m.detail = NewSessionDetail(m.sessions, msg.SessionID, &m.keys, m.errorManager)
		m.detail.SetSize(m.width, m.height)
		m.state = stateDetail
		return m, m.detail.Init()

	case BackMsg:
		if m.state == stateDetail && m.dashboard != nil {
			m.detail = nil
			m.state = stateDashboard
			return m, m.dashboard.Refresh()
		}
		return m, tea.Quit

	case ShowHelpMsg:
		return m, m.openDialog(stateHelp, "Help", NewHelpScreen(&m.keys))

	case ShowImportMsg:
		return m, m.openDialog(stateImport, "Import Transcript", NewImportForm("", &m.keys))

	case ShowInsightFormMsg:
		return m, m.openDialog(stateInsight, "New Insight", NewInsightForm(msg.SessionID, msg.Excerpt, msg.Speaker, &m.keys))

	case ShowPreviewMsg:
		return m, m.openDialog(statePreview, "Preview: "+msg.Title, NewPreview(msg.Text, &m.keys))
	}

	switch m.state {
	case stateDashboard:
		var cmd tea.Cmd
		m.dashboard, cmd = m.dashboard.Update(msg)
		return m, cmd
	case stateDetail:
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	case stateHelp, stateImport, stateInsight, statePreview:
		return m.updateDialog(msg)
	}
	return m, nil
}

// openDialog shows content in a Dialog and sends it the current size so
// viewports can initialize
func (m *Model) openDialog(state uiState, title string, content tea.Model) tea.Cmd {
	m.previous = m.state
	m.state = state
	m.dialog = NewDialog(title, content, m.devMode)

	initCmd := m.dialog.Init()
	updated, sizeCmd := m.dialog.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	m.dialog = updated.(*Dialog)
	return tea.Batch(initCmd, sizeCmd)
}

func (m *Model) closeDialog() {
	m.dialog = nil
	m.state = m.previous
}

func (m *Model) updateDialog(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.dialog == nil {
		m.state = m.previous
		return m, nil
	}

	updated, cmd := m.dialog.Update(msg)
	m.dialog = updated.(*Dialog)

	switch content := m.dialog.Content().(type) {
	case *HelpScreen:
		if content.Completed {
			m.closeDialog()
			return m, nil
		}
	case *Preview:
		if content.Completed {
			m.closeDialog()
			return m, nil
		}
	case *ImportForm:
		if content.Completed {
			m.closeDialog()
			result := content.Result()
			if result.Cancelled || result.Path == "" || m.detail == nil {
				return m, nil
			}
			logging.Logger.Info("Importing transcript", "path", result.Path, "session_id", m.detail.SessionID())
			return m, m.detail.ImportFile(result.Path)
		}
	case *InsightForm:
		if content.Completed {
			m.closeDialog()
			result := content.Result()
			if result.Cancelled {
				return m, nil
			}
			return m, createInsightCmd(m.sessions, result.Insight)
		}
	}

	return m, cmd
}

func (m *Model) View() string {
	switch m.state {
	case stateDashboard:
		view := m.dashboard.View()
		if m.errorManager.HasError() {
			view += "\n" + theme.ErrorStyle.Render(formatErrorForDisplay(m.errorManager.GetError(), m.width))
		}
		return view
	case stateDetail:
		return m.detail.View()
	case stateHelp, stateImport, stateInsight, statePreview:
		if m.dialog != nil {
			return m.dialog.View()
		}
	}
	return ""
}
