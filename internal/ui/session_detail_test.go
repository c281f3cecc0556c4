package ui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fieldnotes/internal/domain"
	portsmocks "fieldnotes/internal/ports/mocks"
)

func newTestDetail(t *testing.T, api *portsmocks.MockSessionAPI) *SessionDetail {
	t.Helper()
	keys := NewKeyMap(nil)
	d := NewSessionDetail(api, "s1", &keys, NewErrorManager(0))
	d.SetSize(80, 30)
	return d
}

func loadDetail(d *SessionDetail, notes, transcript string) {
	d.Update(sessionLoadedMsg{
		session:   &domain.Session{ID: "s1", Type: domain.SessionInterview, Notes: strPtr(notes), Transcript: strPtr(transcript)},
		sessionID: "s1",
	})
}

func press(d *SessionDetail, msgs ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = d.Update(msg)
	}
	return cmd
}

func typeText(d *SessionDetail, text string) {
	for _, r := range text {
		press(d, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestSessionDetail_LoadedShowsEditor(t *testing.T) {
	d := newTestDetail(t, portsmocks.NewMockSessionAPI(t))
	loadDetail(d, "A", "B")

	view := d.View()
	assert.Contains(t, view, "Notes")
	assert.Contains(t, view, "Transcript")
	assert.Contains(t, view, "save")
}

func TestSessionDetail_NotFoundHidesSaveControl(t *testing.T) {
	d := newTestDetail(t, portsmocks.NewMockSessionAPI(t))
	d.Update(sessionLoadedMsg{err: domain.ErrSessionNotFound, sessionID: "s1"})

	view := d.View()
	assert.Contains(t, view, "session not found")
	assert.NotContains(t, view, "save")
	assert.Equal(t, EditorNotFound, d.Editor().State())

	assert.Nil(t, press(d, tea.KeyMsg{Type: tea.KeyCtrlS}), "save key does nothing without a session")
}

func TestSessionDetail_IgnoresResultsForOtherSessions(t *testing.T) {
	d := newTestDetail(t, portsmocks.NewMockSessionAPI(t))
	d.Update(sessionLoadedMsg{session: &domain.Session{ID: "other"}, sessionID: "other"})

	assert.Equal(t, EditorLoading, d.Editor().State())
}

func TestSessionDetail_TypingAndToggleKeepBothTexts(t *testing.T) {
	d := newTestDetail(t, portsmocks.NewMockSessionAPI(t))
	loadDetail(d, "A", "B")

	typeText(d, "!")
	press(d, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, ModeTranscript, d.Editor().Mode())
	assert.Equal(t, "B", d.textarea.Value())

	press(d, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "A!", d.textarea.Value())
	assert.Equal(t, "B", d.Editor().Transcript())
}

func TestSessionDetail_MarkSelection(t *testing.T) {
	d := newTestDetail(t, portsmocks.NewMockSessionAPI(t))
	loadDetail(d, "it was very slow today", "")

	press(d, tea.KeyMsg{Type: tea.KeyCtrlA})
	for range 7 {
		press(d, tea.KeyMsg{Type: tea.KeyRight})
	}
	press(d, tea.KeyMsg{Type: tea.KeyCtrlX})
	for range 9 {
		press(d, tea.KeyMsg{Type: tea.KeyRight})
	}
	press(d, tea.KeyMsg{Type: tea.KeyCtrlX})

	assert.Equal(t, "very slow", d.Editor().SelectedText())
	assert.Contains(t, d.View(), "very slow")
}

func TestSessionDetail_InsightKeyRequiresSelection(t *testing.T) {
	d := newTestDetail(t, portsmocks.NewMockSessionAPI(t))
	loadDetail(d, "text", "")

	press(d, tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.ErrorIs(t, d.errorManager.GetError(), ErrNoSelection)

	d.Editor().CaptureSelection("text")
	cmd := press(d, tea.KeyMsg{Type: tea.KeyCtrlY})
	require.NotNil(t, cmd)
	assert.Equal(t, ShowInsightFormMsg{Excerpt: "text", SessionID: "s1"}, cmd())
}

func TestSessionDetail_SaveDisabledWhileSaving(t *testing.T) {
	d := newTestDetail(t, portsmocks.NewMockSessionAPI(t))
	loadDetail(d, "A", "B")

	require.NotNil(t, press(d, tea.KeyMsg{Type: tea.KeyCtrlS}))
	assert.True(t, d.Editor().Saving())
	assert.Contains(t, d.View(), "Saving")

	press(d, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.ErrorIs(t, d.errorManager.GetError(), ErrSaveInProgress)
}

func TestSessionDetail_SaveFailureKeepsEdits(t *testing.T) {
	d := newTestDetail(t, portsmocks.NewMockSessionAPI(t))
	loadDetail(d, "A", "B")
	typeText(d, "x")
	press(d, tea.KeyMsg{Type: tea.KeyCtrlS})

	d.Update(sessionSavedMsg{err: errors.New("server down"), sessionID: "s1"})

	assert.False(t, d.Editor().Saving())
	assert.Equal(t, "Ax", d.textarea.Value())
	assert.EqualError(t, d.errorManager.GetError(), "server down")
}

func TestSessionDetail_TranscriptImport(t *testing.T) {
	d := newTestDetail(t, portsmocks.NewMockSessionAPI(t))
	loadDetail(d, "notes", "")

	path := filepath.Join(t.TempDir(), "call.txt")
	require.NoError(t, os.WriteFile(path, []byte("Speaker 1: hello"), 0644))

	msg := d.ImportFile(path)()
	d.Update(msg)

	assert.Equal(t, ModeTranscript, d.Editor().Mode())
	assert.Equal(t, "Speaker 1: hello", d.textarea.Value())
	assert.Equal(t, "notes", d.Editor().Notes())
}

func TestSessionDetail_TranscriptImportMissingFile(t *testing.T) {
	d := newTestDetail(t, portsmocks.NewMockSessionAPI(t))
	loadDetail(d, "notes", "old")

	d.Update(d.ImportFile(filepath.Join(t.TempDir(), "missing.txt"))())

	assert.Error(t, d.errorManager.GetError())
	assert.Equal(t, "old", d.Editor().Transcript())
}

func TestSessionDetail_CursorKeysKeepTextTheEditorCannotHold(t *testing.T) {
	tests := []struct {
		name       string
		notes      string
		transcript string
		mode       EditMode
	}{
		{name: "tab in notes", notes: "a\tb", mode: ModeNotes},
		{name: "crlf in transcript", notes: "n", transcript: "Speaker 1:\thello\r\nok\r\n", mode: ModeTranscript},
		{name: "control rune", notes: "bell\x07here", mode: ModeNotes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDetail(t, portsmocks.NewMockSessionAPI(t))
			loadDetail(d, tt.notes, tt.transcript)
			if tt.mode == ModeTranscript {
				press(d, tea.KeyMsg{Type: tea.KeyTab})
			}
			require.True(t, d.ReadOnly())

			press(d, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyLeft})

			assert.Equal(t, tt.notes, d.Editor().Notes())
			assert.Equal(t, tt.transcript, d.Editor().Transcript())
			assert.False(t, d.Editor().Dirty(), "moving the cursor is not an edit")
			assert.Contains(t, d.View(), "read-only")
		})
	}
}

func TestSessionDetail_CursorKeysKeepPlainText(t *testing.T) {
	d := newTestDetail(t, portsmocks.NewMockSessionAPI(t))
	loadDetail(d, "line one\nline two", "")
	require.False(t, d.ReadOnly())

	press(d, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyLeft})

	assert.False(t, d.Editor().Dirty())
	assert.NotContains(t, d.View(), "read-only")
}

func TestSessionDetail_LargeImportSurvivesCursorKeys(t *testing.T) {
	d := newTestDetail(t, portsmocks.NewMockSessionAPI(t))
	loadDetail(d, "notes", "")
	contents := "Speaker 1:\thello\r\n" + strings.Repeat("line\n", 10005)

	d.Update(transcriptReadMsg{contents: []byte(contents), path: "call.txt", sessionID: "s1"})
	require.Equal(t, contents, d.Editor().Transcript())

	press(d, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyUp})

	assert.Equal(t, contents, d.Editor().Transcript())
	assert.True(t, d.ReadOnly())

	content, err := d.Editor().BeginSave()
	require.NoError(t, err)
	require.NotNil(t, content.Transcript)
	assert.Equal(t, contents, *content.Transcript, "save sends the imported file as-is")
	assert.Equal(t, "notes", *content.Notes)
}

func TestSessionDetail_TypingIntoReadOnlyTextIsRefused(t *testing.T) {
	d := newTestDetail(t, portsmocks.NewMockSessionAPI(t))
	loadDetail(d, "a\tb", "")

	typeText(d, "x")

	assert.Equal(t, "a\tb", d.Editor().Notes())
	assert.ErrorIs(t, d.errorManager.GetError(), ErrReadOnlyText)
}

func TestSessionDetail_MarkSelectionAcrossTabs(t *testing.T) {
	d := newTestDetail(t, portsmocks.NewMockSessionAPI(t))
	loadDetail(d, "x\tvery slow today", "")

	// the textarea shows the tab as four spaces
	press(d, tea.KeyMsg{Type: tea.KeyCtrlA})
	for range 5 {
		press(d, tea.KeyMsg{Type: tea.KeyRight})
	}
	press(d, tea.KeyMsg{Type: tea.KeyCtrlX})
	for range 9 {
		press(d, tea.KeyMsg{Type: tea.KeyRight})
	}
	press(d, tea.KeyMsg{Type: tea.KeyCtrlX})

	assert.Equal(t, "very slow", d.Editor().SelectedText())
}

func TestSaveSessionCmd_UpdatesThenRefetches(t *testing.T) {
	api := portsmocks.NewMockSessionAPI(t)
	content := domain.NewSessionContent("A", "B")
	canonical := &domain.Session{ID: "s1", Notes: strPtr("A"), Transcript: strPtr("B")}

	api.EXPECT().UpdateSessionContent(mock.Anything, "s1", content).Return(canonical, nil).Once()
	api.EXPECT().GetSession(mock.Anything, "s1").Return(canonical, nil).Once()

	msg := saveSessionCmd(api, "s1", content)()

	saved, ok := msg.(sessionSavedMsg)
	require.True(t, ok)
	require.NoError(t, saved.err)
	assert.Equal(t, canonical, saved.session)
}

func TestSaveSessionCmd_UpdateError(t *testing.T) {
	api := portsmocks.NewMockSessionAPI(t)
	api.EXPECT().UpdateSessionContent(mock.Anything, "s1", mock.Anything).Return(nil, errors.New("boom")).Once()

	msg := saveSessionCmd(api, "s1", domain.NewSessionContent("A", "B"))().(sessionSavedMsg)

	assert.ErrorContains(t, msg.err, "boom")
	assert.Nil(t, msg.session)
}

func TestLoadSessionCmd(t *testing.T) {
	api := portsmocks.NewMockSessionAPI(t)
	api.EXPECT().GetSession(mock.Anything, "s1").Return(nil, domain.ErrSessionNotFound).Once()

	msg := loadSessionCmd(api, "s1")().(sessionLoadedMsg)

	assert.ErrorIs(t, msg.err, domain.ErrSessionNotFound)
	assert.Equal(t, "s1", msg.sessionID)
}
