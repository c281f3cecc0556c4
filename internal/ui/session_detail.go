package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fieldnotes/internal/ports"
	"fieldnotes/internal/theme"
)

// detailChrome is the number of lines around the textarea:
// header (2) + mode tabs (2) + selection/status (2) + footer (2) + error (2)
const detailChrome = 10

// SessionDetail is the notes/transcript editor for one session
type SessionDetail struct {
	api          ports.SessionAPI
	editor       *SessionEditor
	errorManager *ErrorManager
	help         help.Model
	keys         *KeyMap
	readOnly     bool // the textarea cannot hold the active value exactly
	sessionID    string
	spinner      spinner.Model
	status       string // transient feedback line
	textarea     textarea.Model
	width        int
}

// NewSessionDetail creates the detail view. Call Init to start loading.
func NewSessionDetail(api ports.SessionAPI, sessionID string, keys *KeyMap, errorManager *ErrorManager) *SessionDetail {
	ta := textarea.New()
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.ShowLineNumbers = false
	ta.Placeholder = "Start typing..."

	return &SessionDetail{
		api:          api,
		editor:       NewSessionEditor(),
		errorManager: errorManager,
		help:         help.New(),
		keys:         keys,
		sessionID:    sessionID,
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(theme.SpinnerStyle)),
		textarea:     ta,
	}
}

// Init fetches the session
func (d *SessionDetail) Init() tea.Cmd {
	return tea.Batch(d.spinner.Tick, loadSessionCmd(d.api, d.sessionID))
}

// SessionID returns the id of the session being edited
func (d *SessionDetail) SessionID() string { return d.sessionID }

// Editor exposes the underlying editor state
func (d *SessionDetail) Editor() *SessionEditor { return d.editor }

// SetSize resizes the editing control to the terminal
func (d *SessionDetail) SetSize(width, height int) {
	d.width = width
	d.help.Width = width
	d.textarea.SetWidth(max(width, 20))
	d.textarea.SetHeight(max(height-detailChrome, 3))
}

func (d *SessionDetail) Update(msg tea.Msg) (*SessionDetail, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if d.editor.State() != EditorLoading && !d.editor.Saving() {
			return d, nil
		}
		var cmd tea.Cmd
		d.spinner, cmd = d.spinner.Update(msg)
		return d, cmd

	case sessionLoadedMsg:
		if msg.sessionID != d.sessionID {
			return d, nil
		}
		if msg.err != nil {
			d.editor.LoadFailed(msg.err)
			d.textarea.Blur()
			return d, nil
		}
		d.editor.Loaded(msg.session)
		d.syncTextarea()
		return d, d.textarea.Focus()

	case sessionSavedMsg:
		if msg.sessionID != d.sessionID {
			return d, nil
		}
		if msg.err != nil {
			d.editor.SaveFailed(msg.err)
			d.status = ""
			return d, d.errorManager.SetError(msg.err)
		}
		before := d.editor.Value()
		d.editor.SaveSucceeded(msg.session)
		if d.editor.Value() != before {
			d.syncTextarea()
		}
		d.status = "saved"
		return d, nil

	case insightCreatedMsg:
		if msg.sessionID != d.sessionID {
			return d, nil
		}
		if msg.err != nil {
			return d, d.errorManager.SetError(msg.err)
		}
		d.editor.InsightAdded(*msg.insight)
		d.editor.ClearSelection()
		d.status = fmt.Sprintf("%s insight added", msg.insight.Kind())
		return d, nil

	case transcriptReadMsg:
		if msg.sessionID != d.sessionID {
			return d, nil
		}
		if msg.err == nil {
			msg.err = d.editor.ImportTranscript(msg.contents)
		}
		if msg.err != nil {
			return d, d.errorManager.SetError(msg.err)
		}
		d.syncTextarea()
		d.status = "imported " + msg.path
		return d, nil

	case tea.KeyMsg:
		return d.handleKey(msg)
	}

	// Cursor blink, paste and other internal textarea messages
	if !d.editor.Editable() {
		return d, nil
	}
	return d, d.updateTextarea(msg)
}

func (d *SessionDetail) handleKey(msg tea.KeyMsg) (*SessionDetail, tea.Cmd) {
	switch {
	case key.Matches(msg, d.keys.Application.ForceQuit):
		return d, emit(QuitMsg{})
	case key.Matches(msg, d.keys.Application.Help):
		return d, emit(ShowHelpMsg{})
	case key.Matches(msg, d.keys.Application.Back):
		if d.editor.Selecting() {
			d.editor.ClearSelection()
			d.status = "selection cancelled"
			return d, nil
		}
		return d, emit(BackMsg{})
	}

	if !d.editor.Editable() {
		return d, nil
	}

	switch {
	case key.Matches(msg, d.keys.Editor.ToggleMode):
		d.editor.ToggleMode()
		d.syncTextarea()
		return d, nil

	case key.Matches(msg, d.keys.Editor.Save):
		content, err := d.editor.BeginSave()
		if err != nil {
			return d, d.errorManager.SetError(err)
		}
		d.status = ""
		return d, tea.Batch(d.spinner.Tick, saveSessionCmd(d.api, d.sessionID, content))

	case key.Matches(msg, d.keys.Editor.Mark):
		if d.editor.Mark(d.cursorOffset()) {
			d.status = ""
		} else if d.editor.Selecting() {
			d.status = "selection started: move the cursor and press " + d.keys.Editor.Mark.Help().Key + " again"
		} else {
			d.status = "empty selection ignored"
		}
		return d, nil

	case key.Matches(msg, d.keys.Editor.Insight):
		excerpt := d.editor.SelectedText()
		if excerpt == "" {
			return d, d.errorManager.SetError(ErrNoSelection)
		}
		speaker := ""
		if s := d.editor.Session(); s != nil && s.ParticipantName != nil {
			speaker = *s.ParticipantName
		}
		return d, emit(ShowInsightFormMsg{Excerpt: excerpt, SessionID: d.sessionID, Speaker: speaker})

	case key.Matches(msg, d.keys.Editor.Import):
		return d, emit(ShowImportMsg{})

	case key.Matches(msg, d.keys.Editor.Preview):
		return d, emit(ShowPreviewMsg{Text: d.editor.Value(), Title: modeTitle(d.editor.Mode())})
	}

	return d, d.updateTextarea(msg)
}

// updateTextarea forwards msg to the textarea and copies its text into the
// editor only when msg changed it. Cursor movement never rewrites the value.
func (d *SessionDetail) updateTextarea(msg tea.Msg) tea.Cmd {
	before := d.textarea.Value()
	next, cmd := d.textarea.Update(msg)
	after := next.Value()
	if after == before {
		d.textarea = next
		return cmd
	}
	if d.readOnly {
		return d.errorManager.SetError(ErrReadOnlyText)
	}
	d.textarea = next
	d.editor.SetValue(after)
	return cmd
}

// ImportFile reads a file into the transcript
func (d *SessionDetail) ImportFile(path string) tea.Cmd {
	return readTranscriptCmd(path, d.sessionID)
}

// syncTextarea binds the textarea to the active mode's value. The textarea
// rewrites tabs, carriage returns and control runes and stops at its line
// limit; such values are shown read-only so they reach the server intact.
func (d *SessionDetail) syncTextarea() {
	value := d.editor.Value()
	d.textarea.SetValue(value)
	d.readOnly = d.textarea.Value() != value
}

// ReadOnly reports whether the active text is shown without editing
func (d *SessionDetail) ReadOnly() bool { return d.readOnly }

// cursorOffset is the rune offset of the textarea cursor in the active value
func (d *SessionDetail) cursorOffset() int {
	info := d.textarea.LineInfo()
	shown := runeOffset(d.textarea.Value(), d.textarea.Line(), info.StartColumn+info.ColumnOffset)
	return valueOffset(d.editor.Value(), shown)
}

func (d *SessionDetail) View() string {
	var b strings.Builder

	switch d.editor.State() {
	case EditorLoading:
		b.WriteString(d.spinner.View() + " Loading session...\n")
		return b.String()
	case EditorNotFound:
		b.WriteString(theme.ErrorStyle.Render("session not found") + "\n\n")
		b.WriteString(theme.HelpStyle.Render(d.help.ShortHelpView([]key.Binding{d.keys.Application.Back})))
		return b.String()
	case EditorFailed:
		b.WriteString(theme.ErrorStyle.Render(formatErrorForDisplay(d.editor.Err(), d.width)) + "\n\n")
		b.WriteString(theme.HelpStyle.Render(d.help.ShortHelpView([]key.Binding{d.keys.Application.Back})))
		return b.String()
	}

	b.WriteString(d.renderHeader() + "\n")
	b.WriteString(d.renderModeTabs() + "\n\n")
	b.WriteString(d.textarea.View() + "\n")
	b.WriteString(d.renderSelection() + "\n")
	b.WriteString(d.renderStatus() + "\n")
	b.WriteString(theme.HelpStyle.Render(d.help.ShortHelpView(d.keys.EditorShortHelp())))
	return b.String()
}

func (d *SessionDetail) renderHeader() string {
	s := d.editor.Session()
	parts := []string{string(s.Type), s.Date.Format("2006-01-02")}
	if s.ParticipantName != nil && *s.ParticipantName != "" {
		parts = append(parts, *s.ParticipantName)
	}
	if s.Duration != nil {
		parts = append(parts, fmt.Sprintf("%d min", *s.Duration))
	}
	parts = append(parts, fmt.Sprintf("%d insights", len(s.Insights)))

	header := theme.AppNameStyle.Render("Session ") + theme.SubtitleStyle.Render(strings.Join(parts, " · "))
	if d.editor.Dirty() {
		header += theme.MarkStyle.Render("  ● modified")
	}
	return header
}

func (d *SessionDetail) renderModeTabs() string {
	notes := theme.ModeInactiveStyle.Render(modeTitle(ModeNotes))
	transcript := theme.ModeInactiveStyle.Render(modeTitle(ModeTranscript))
	if d.editor.Mode() == ModeNotes {
		notes = theme.ModeNotesStyle.Render(modeTitle(ModeNotes))
	} else {
		transcript = theme.ModeTranscriptStyle.Render(modeTitle(ModeTranscript))
	}
	tabs := lipgloss.JoinHorizontal(lipgloss.Top, notes, "   ", transcript)
	if d.readOnly {
		tabs += theme.MarkStyle.Render("   read-only: " + readOnlyReason)
	}
	return tabs
}

func (d *SessionDetail) renderSelection() string {
	if d.editor.Selecting() {
		return theme.MarkStyle.Render("◆ selecting...")
	}
	if sel := d.editor.SelectedText(); sel != "" {
		return theme.LabelStyle.Render("Selected: ") + theme.SelectionStyle.Render(truncate(sel, max(d.width-12, 10)))
	}
	return ""
}

func (d *SessionDetail) renderStatus() string {
	if d.editor.Saving() {
		return d.spinner.View() + " Saving..."
	}
	if d.errorManager.HasError() {
		return theme.ErrorStyle.Render(formatErrorForDisplay(d.errorManager.GetError(), d.width))
	}
	if d.status == "saved" {
		return theme.SavedStyle.Render("✓ saved")
	}
	return theme.MutedStyle.Render(d.status)
}

func modeTitle(mode EditMode) string {
	if mode == ModeTranscript {
		return "Transcript"
	}
	return "Notes"
}

// truncate shortens s to width runes with a trailing ellipsis, flattening newlines
func truncate(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:max(width-1, 0)]) + "…"
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
