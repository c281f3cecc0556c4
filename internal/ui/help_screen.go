package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"fieldnotes/internal/theme"
)

// HelpScreen displays keyboard shortcuts organized by category
type HelpScreen struct {
	Completed   bool
	content     string
	initialized bool
	keys        *KeyMap
	viewport    viewport.Model
}

// renderShortcut renders a single shortcut line with key and description
func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

// renderBinding renders a single shortcut line from a key binding
func renderBinding(binding key.Binding) string {
	h := binding.Help()
	return renderShortcut(h.Key, h.Desc)
}

// buildHelpContent builds the complete help text content using key bindings
func buildHelpContent(keys *KeyMap) string {
	var b strings.Builder

	b.WriteString(theme.HelpGroupStyle.Render("Session Editor") + "\n")
	b.WriteString(renderBinding(keys.Editor.ToggleMode))
	b.WriteString(renderBinding(keys.Editor.Save))
	b.WriteString(renderBinding(keys.Editor.Preview))
	b.WriteString(renderBinding(keys.Editor.Import))

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Selecting Text") + "\n")
	b.WriteString(renderBinding(keys.Editor.Mark))
	b.WriteString(renderShortcut("arrows / home / end", "move the cursor to extend the selection"))
	b.WriteString(renderBinding(keys.Editor.Insight))

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Dashboard") + "\n")
	b.WriteString(renderShortcut("↑/↓", "select session"))
	b.WriteString(renderShortcut("/", "filter sessions"))
	b.WriteString(renderBinding(keys.Dashboard.Open))
	b.WriteString(renderBinding(keys.Dashboard.Refresh))

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Application") + "\n")
	b.WriteString(renderBinding(keys.Application.Help))
	b.WriteString(renderBinding(keys.Application.Back))
	b.WriteString(renderBinding(keys.Application.Quit))
	b.WriteString(renderBinding(keys.Application.ForceQuit))

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Severity") + "\n")
	b.WriteString(renderShortcut(theme.SeverityStyle("critical").Render("●"), "critical"))
	b.WriteString(renderShortcut(theme.SeverityStyle("high").Render("●"), "high"))
	b.WriteString(renderShortcut(theme.SeverityStyle("medium").Render("●"), "medium"))
	b.WriteString(renderShortcut(theme.SeverityStyle("low").Render("●"), "low"))

	return b.String()
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys),
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Dialog header: 4 lines, footer: 2 lines
		h.viewport.Width = msg.Width
		h.viewport.Height = max(msg.Height-6, 5)
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if key.Matches(msg, h.keys.Application.Back, h.keys.Application.Help, h.keys.Application.Quit) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}

	footer := theme.HelpStyle.Render("Press esc, q, or " + h.keys.Application.Help.Help().Key + " to close • ↑↓/jk/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n\n" + footer
}
