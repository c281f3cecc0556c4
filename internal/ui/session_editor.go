package ui

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"fieldnotes/internal/domain"
)

// EditorState is the lifecycle of the session detail view
type EditorState int

const (
	EditorLoading EditorState = iota
	EditorLoaded
	EditorNotFound
	EditorFailed
)

func (s EditorState) String() string {
	switch s {
	case EditorLoading:
		return "loading"
	case EditorLoaded:
		return "loaded"
	case EditorNotFound:
		return "not-found"
	case EditorFailed:
		return "error"
	}
	return "unknown"
}

// EditMode selects which text the shared editing control is bound to
type EditMode string

const (
	ModeNotes      EditMode = "notes"
	ModeTranscript EditMode = "transcript"
)

// SessionEditor holds the editable state of one session independently of
// any rendering. Notes and transcript are kept as separate in-memory copies;
// the mode only decides which one Value and SetValue address.
type SessionEditor struct {
	anchor     int // selection start offset, -1 when no selection is in progress
	err        error
	mode       EditMode
	notes      string
	pending    *domain.SessionContent // content sent by the in-flight save
	selected   string
	session    *domain.Session
	state      EditorState
	transcript string
}

// NewSessionEditor creates an editor waiting for its session to load
func NewSessionEditor() *SessionEditor {
	return &SessionEditor{
		anchor: -1,
		mode:   ModeNotes,
		state:  EditorLoading,
	}
}

// State returns the current lifecycle state
func (e *SessionEditor) State() EditorState { return e.state }

// Mode returns the active edit mode
func (e *SessionEditor) Mode() EditMode { return e.mode }

// Session returns the last canonical record, nil until loaded
func (e *SessionEditor) Session() *domain.Session { return e.session }

// Err returns the load or save error being reported, if any
func (e *SessionEditor) Err() error { return e.err }

// Notes returns the in-memory notes
func (e *SessionEditor) Notes() string { return e.notes }

// Transcript returns the in-memory transcript
func (e *SessionEditor) Transcript() string { return e.transcript }

// SelectedText returns the last captured selection
func (e *SessionEditor) SelectedText() string { return e.selected }

// Saving reports whether a save is in flight
func (e *SessionEditor) Saving() bool { return e.pending != nil }

// Editable reports whether an edit surface should be shown
func (e *SessionEditor) Editable() bool { return e.state == EditorLoaded }

// CanSave reports whether the save control is enabled
func (e *SessionEditor) CanSave() bool { return e.Editable() && !e.Saving() }

// Loaded populates the local copies from a freshly fetched session
func (e *SessionEditor) Loaded(session *domain.Session) {
	e.session = session
	e.notes = session.NotesText()
	e.transcript = session.TranscriptText()
	e.state = EditorLoaded
	e.err = nil
}

// LoadFailed moves to not-found or error. No editable copies are kept.
func (e *SessionEditor) LoadFailed(err error) {
	e.err = err
	e.notes = ""
	e.transcript = ""
	e.session = nil
	if errors.Is(err, domain.ErrSessionNotFound) {
		e.state = EditorNotFound
		return
	}
	e.state = EditorFailed
}

// SetMode switches the bound text. The other mode's edits are untouched.
func (e *SessionEditor) SetMode(mode EditMode) {
	if mode != ModeNotes && mode != ModeTranscript {
		return
	}
	if mode != e.mode {
		e.anchor = -1
	}
	e.mode = mode
}

// ToggleMode switches between notes and transcript
func (e *SessionEditor) ToggleMode() {
	if e.mode == ModeNotes {
		e.SetMode(ModeTranscript)
		return
	}
	e.SetMode(ModeNotes)
}

// Value returns the text bound to the active mode
func (e *SessionEditor) Value() string {
	if e.mode == ModeTranscript {
		return e.transcript
	}
	return e.notes
}

// SetValue replaces the text bound to the active mode
func (e *SessionEditor) SetValue(value string) {
	if e.mode == ModeTranscript {
		e.transcript = value
		return
	}
	e.notes = value
}

// Dirty reports whether the local copies differ from the stored record
func (e *SessionEditor) Dirty() bool {
	if e.session == nil {
		return false
	}
	return e.notes != e.session.NotesText() || e.transcript != e.session.TranscriptText()
}

// BeginSave marks a save as in flight and returns the full {notes, transcript}
// pair to send. It fails while another save is outstanding.
func (e *SessionEditor) BeginSave() (domain.SessionContent, error) {
	if !e.Editable() {
		return domain.SessionContent{}, ErrNotEditable
	}
	if e.Saving() {
		return domain.SessionContent{}, ErrSaveInProgress
	}
	content := domain.NewSessionContent(e.notes, e.transcript)
	e.pending = &content
	return content, nil
}

// SaveSucceeded records the re-fetched canonical session. Local copies edited
// while the save was in flight are kept; the rest follow the stored values.
func (e *SessionEditor) SaveSucceeded(session *domain.Session) {
	sent := e.pending
	e.pending = nil
	e.err = nil
	e.session = session
	if sent == nil || e.notes == *sent.Notes {
		e.notes = session.NotesText()
	}
	if sent == nil || e.transcript == *sent.Transcript {
		e.transcript = session.TranscriptText()
	}
}

// SaveFailed clears the saving flag and keeps local edits for a retry
func (e *SessionEditor) SaveFailed(err error) {
	e.pending = nil
	e.err = err
}

// InsightAdded appends a newly created insight to the loaded record
func (e *SessionEditor) InsightAdded(insight domain.Insight) {
	if e.session == nil {
		return
	}
	e.session.Insights = append(e.session.Insights, insight)
}

// CaptureSelection stores trimmed selected text. Blank selections are ignored.
func (e *SessionEditor) CaptureSelection(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	e.selected = trimmed
	return true
}

// ClearSelection forgets the captured text and any selection in progress
func (e *SessionEditor) ClearSelection() {
	e.selected = ""
	e.anchor = -1
}

// Selecting reports whether a selection has been started but not finished
func (e *SessionEditor) Selecting() bool { return e.anchor >= 0 }

// Mark starts a selection at offset, or finishes the one in progress and
// captures the text between the two marks. It returns true when a non-empty
// selection was captured.
func (e *SessionEditor) Mark(offset int) bool {
	if e.anchor < 0 {
		e.anchor = offset
		return false
	}
	start := e.anchor
	e.anchor = -1
	return e.CaptureSelection(textBetween(e.Value(), start, offset))
}

// ImportTranscript replaces the transcript with the file contents as-is and
// switches to transcript mode. Notes are untouched.
func (e *SessionEditor) ImportTranscript(contents []byte) error {
	if !e.Editable() {
		return ErrNotEditable
	}
	e.transcript = string(contents)
	e.SetMode(ModeTranscript)
	return nil
}

// textBetween returns the runes of value between two offsets in either order
func textBetween(value string, a, b int) string {
	runes := []rune(value)
	if a > b {
		a, b = b, a
	}
	a = max(0, min(a, len(runes)))
	b = max(0, min(b, len(runes)))
	return string(runes[a:b])
}

// runeOffset converts a logical row and column into an offset into value
func runeOffset(value string, row, col int) int {
	lines := strings.Split(value, "\n")
	offset := 0
	for i := 0; i < row && i < len(lines); i++ {
		offset += len([]rune(lines[i])) + 1
	}
	if row < len(lines) {
		col = min(col, len([]rune(lines[row])))
	}
	return offset + max(col, 0)
}

// valueOffset maps a rune offset in the textarea's copy of value back to a
// rune offset in value. The textarea drops invalid and control runes, shows
// each tab as four spaces and each carriage return as a line break.
func valueOffset(value string, shown int) int {
	pos, i := 0, 0
	for _, r := range value {
		if pos >= shown {
			return i
		}
		pos += shownWidth(r)
		i++
	}
	return i
}

// shownWidth is how many runes the textarea shows for r
func shownWidth(r rune) int {
	switch {
	case r == '\t':
		return 4
	case r == '\r' || r == '\n':
		return 1
	case r == utf8.RuneError || unicode.IsControl(r):
		return 0
	}
	return 1
}
