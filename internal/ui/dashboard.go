package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fieldnotes/internal/domain"
	"fieldnotes/internal/ports"
	"fieldnotes/internal/theme"
)

// maxPainPointsPerTier caps how many excerpts are listed under each severity
const maxPainPointsPerTier = 3

// sessionItem adapts a session to the bubbles list
type sessionItem struct {
	session domain.Session
}

func (i sessionItem) Title() string {
	parts := []string{i.session.Date.Format("2006-01-02"), string(i.session.Type)}
	if i.session.ParticipantName != nil && *i.session.ParticipantName != "" {
		parts = append(parts, *i.session.ParticipantName)
	}
	return strings.Join(parts, " · ")
}

func (i sessionItem) Description() string {
	desc := fmt.Sprintf("%d insights", len(i.session.Insights))
	if i.session.Duration != nil {
		desc += fmt.Sprintf(" · %d min", *i.session.Duration)
	}
	return desc
}

func (i sessionItem) FilterValue() string {
	return i.Title()
}

// Dashboard shows a project's aggregates next to its session list
type Dashboard struct {
	dashboard  *domain.Dashboard
	dashboards ports.DashboardAPI
	err        error
	height     int
	keys       *KeyMap
	list       list.Model
	loading    bool
	projectID  string
	sessions   ports.SessionAPI
	spinner    spinner.Model
	width      int
}

// NewDashboard creates the dashboard for one project. Call Init to load it.
func NewDashboard(sessions ports.SessionAPI, dashboards ports.DashboardAPI, projectID string, keys *KeyMap) *Dashboard {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Sessions"
	l.Styles.Title = theme.SectionStyle
	l.SetShowHelp(false)
	l.SetStatusBarItemName("session", "sessions")
	l.DisableQuitKeybindings()

	return &Dashboard{
		dashboards: dashboards,
		keys:       keys,
		list:       l,
		loading:    true,
		projectID:  projectID,
		sessions:   sessions,
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(theme.SpinnerStyle)),
	}
}

func (d *Dashboard) Init() tea.Cmd {
	return d.reload()
}

func (d *Dashboard) reload() tea.Cmd {
	d.loading = true
	return tea.Batch(d.spinner.Tick, loadDashboardCmd(d.sessions, d.dashboards, d.projectID))
}

// Refresh reloads aggregates, used after returning from the detail view
func (d *Dashboard) Refresh() tea.Cmd {
	return d.reload()
}

// Data returns the loaded aggregates, nil until loaded
func (d *Dashboard) Data() *domain.Dashboard { return d.dashboard }

// SetSize splits the width between the list and the aggregates panel
func (d *Dashboard) SetSize(width, height int) {
	d.width = width
	d.height = height
	d.list.SetSize(width/2, max(height-4, 5))
}

func (d *Dashboard) Update(msg tea.Msg) (*Dashboard, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !d.loading {
			return d, nil
		}
		var cmd tea.Cmd
		d.spinner, cmd = d.spinner.Update(msg)
		return d, cmd

	case dashboardLoadedMsg:
		if msg.projectID != d.projectID {
			return d, nil
		}
		d.loading = false
		d.err = msg.err
		if msg.err != nil {
			return d, nil
		}
		d.dashboard = msg.dashboard
		items := make([]list.Item, len(msg.sessions))
		for i, s := range msg.sessions {
			items[i] = sessionItem{session: s}
		}
		return d, d.list.SetItems(items)

	case tea.KeyMsg:
		if key.Matches(msg, d.keys.Application.ForceQuit) {
			return d, emit(QuitMsg{})
		}
		// While typing a filter every key belongs to the list
		if d.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, d.keys.Application.Quit):
			return d, emit(QuitMsg{})
		case key.Matches(msg, d.keys.Application.Help):
			return d, emit(ShowHelpMsg{})
		case key.Matches(msg, d.keys.Dashboard.Refresh):
			return d, d.reload()
		case key.Matches(msg, d.keys.Dashboard.Open):
			if item, ok := d.list.SelectedItem().(sessionItem); ok {
				return d, emit(OpenSessionMsg{SessionID: item.session.ID})
			}
			return d, nil
		}
	}

	var cmd tea.Cmd
	d.list, cmd = d.list.Update(msg)
	return d, cmd
}

func (d *Dashboard) View() string {
	header := renderHeader(false, "Project dashboard") + "\n"

	if d.loading && d.dashboard == nil {
		return header + d.spinner.View() + " Loading dashboard...\n"
	}
	if d.err != nil {
		footer := theme.HelpStyle.Render(d.keys.Dashboard.Refresh.Help().Key + " retry • " + d.keys.Application.Quit.Help().Key + " quit")
		return header + theme.ErrorStyle.Render(formatErrorForDisplay(d.err, d.width)) + "\n" + footer
	}

	panelWidth := max(d.width-d.width/2-4, 20)
	panel := theme.PanelStyle.Width(panelWidth).Render(renderAggregates(d.dashboard, panelWidth))
	return header + lipgloss.JoinHorizontal(lipgloss.Top, d.list.View(), "  ", panel)
}

// renderAggregates renders the dashboard rollups as plain sections
func renderAggregates(dash *domain.Dashboard, width int) string {
	if dash == nil {
		return ""
	}
	var b strings.Builder

	b.WriteString(theme.SectionStyle.Render("Sessions") + " " + theme.ValueStyle.Render(fmt.Sprint(dash.SessionCount)) + "\n")
	for _, t := range domain.SessionTypes {
		if n := dash.SessionsByType[t]; n > 0 {
			b.WriteString(theme.LabelStyle.Render(fmt.Sprintf("  %-16s", t)) + fmt.Sprint(n) + "\n")
		}
	}

	b.WriteString("\n" + theme.SectionStyle.Render("Insights") + " " + theme.ValueStyle.Render(fmt.Sprint(dash.InsightCount)) + "\n")
	for _, k := range domain.InsightKinds {
		if n := dash.InsightsByKind[k]; n > 0 {
			b.WriteString(theme.LabelStyle.Render(fmt.Sprintf("  %-16s", k)) + fmt.Sprint(n) + "\n")
		}
	}

	b.WriteString("\n" + theme.SectionStyle.Render("Pain points") + "\n")
	for _, tier := range dash.PainPoints {
		badge := theme.SeverityStyle(string(tier.Severity)).Render(fmt.Sprintf("● %-8s", tier.Severity))
		b.WriteString("  " + badge + " " + fmt.Sprint(len(tier.Items)) + "\n")
		for i, item := range tier.Items {
			if i == maxPainPointsPerTier {
				b.WriteString(theme.MutedStyle.Render(fmt.Sprintf("      +%d more", len(tier.Items)-i)) + "\n")
				break
			}
			b.WriteString(theme.MutedStyle.Render("      “"+truncate(item.Excerpt, max(width-10, 10))+"”") + "\n")
		}
	}

	if len(dash.Workflows) > 0 {
		b.WriteString("\n" + theme.SectionStyle.Render("Workflows") + "\n")
		for _, w := range dash.Workflows {
			b.WriteString("  " + w.Workflow.Name)
			if w.MaxPain != "" {
				b.WriteString(" " + theme.SeverityStyle(string(w.MaxPain)).Render("["+string(w.MaxPain)+"]"))
			}
			b.WriteString("\n")
			for _, task := range w.Workflow.Tasks {
				b.WriteString("    " + theme.SeverityStyle(string(task.PainLevel)).Render("●") + " " + task.Name + "\n")
			}
		}
	}

	if len(dash.Personas) > 0 {
		b.WriteString("\n" + theme.SectionStyle.Render("Personas") + "\n")
		for _, p := range dash.Personas {
			b.WriteString(fmt.Sprintf("  %s %s\n", p.Persona.Name,
				theme.MutedStyle.Render(fmt.Sprintf("%d sessions · %d insights · %d pain points",
					p.SessionCount, p.InsightCount, p.PainPointCount))))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
