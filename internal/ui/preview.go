package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"fieldnotes/internal/theme"
)

// Preview shows a read-only markdown rendering of the active text
type Preview struct {
	Completed bool
	err       error
	keys      *KeyMap
	text      string
	viewport  viewport.Model
}

// NewPreview creates a preview for text. Content is rendered on the first resize.
func NewPreview(text string, keys *KeyMap) *Preview {
	return &Preview{
		keys:     keys,
		text:     text,
		viewport: viewport.New(0, 0),
	}
}

func (p *Preview) Init() tea.Cmd {
	return nil
}

func (p *Preview) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Dialog header: 4 lines, footer: 2 lines
		p.viewport.Width = msg.Width
		p.viewport.Height = max(msg.Height-6, 5)

		rendered, err := RenderMarkdown(p.text, msg.Width)
		p.err = err
		if err != nil {
			rendered = p.text
		}
		p.viewport.SetContent(rendered)
		return p, nil

	case tea.KeyMsg:
		if key.Matches(msg, p.keys.Application.Back, p.keys.Editor.Preview, p.keys.Application.ForceQuit) {
			p.Completed = true
			return p, nil
		}
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

func (p *Preview) View() string {
	footer := "esc to close • ↑↓/PgUp/PgDn to scroll"
	if p.err != nil {
		footer = formatErrorForDisplay(p.err, p.viewport.Width) + "\n" + footer
	}
	return p.viewport.View() + "\n\n" + theme.HelpStyle.Render(footer)
}
