package ui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldnotes/internal/domain"
)

func strPtr(s string) *string { return &s }

func loadedEditor(notes, transcript string) *SessionEditor {
	e := NewSessionEditor()
	e.Loaded(&domain.Session{ID: "s1", Notes: strPtr(notes), Transcript: strPtr(transcript)})
	return e
}

func TestSessionEditor_StartsLoading(t *testing.T) {
	e := NewSessionEditor()

	assert.Equal(t, EditorLoading, e.State())
	assert.Equal(t, ModeNotes, e.Mode())
	assert.False(t, e.Editable())
	assert.False(t, e.CanSave())
}

func TestSessionEditor_LoadedDefaultsAbsentTextToEmpty(t *testing.T) {
	e := NewSessionEditor()
	e.Loaded(&domain.Session{ID: "s1", Notes: strPtr("A")})

	assert.Equal(t, EditorLoaded, e.State())
	assert.Equal(t, "A", e.Notes())
	assert.Equal(t, "", e.Transcript())
	assert.True(t, e.CanSave())
}

func TestSessionEditor_ModeSwitchRoundTripPreservesBothValues(t *testing.T) {
	e := loadedEditor("A", "B")

	e.SetMode(ModeTranscript)
	assert.Equal(t, "B", e.Value())
	e.SetMode(ModeNotes)
	assert.Equal(t, "A", e.Value())

	assert.Equal(t, "A", e.Notes())
	assert.Equal(t, "B", e.Transcript())
}

func TestSessionEditor_ModeSwitchKeepsUnsavedEdits(t *testing.T) {
	e := loadedEditor("A", "B")

	e.SetValue("A edited")
	e.ToggleMode()
	e.SetValue("B edited")
	e.ToggleMode()

	assert.Equal(t, "A edited", e.Value())
	assert.Equal(t, "B edited", e.Transcript())
	assert.True(t, e.Dirty())
}

func TestSessionEditor_LoadFailed(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected EditorState
	}{
		{"not found", fmt.Errorf("session x: %w", domain.ErrSessionNotFound), EditorNotFound},
		{"other error", errors.New("connection refused"), EditorFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewSessionEditor()
			e.LoadFailed(tt.err)

			assert.Equal(t, tt.expected, e.State())
			assert.False(t, e.Editable())
			assert.False(t, e.CanSave())
			assert.ErrorIs(t, e.Err(), tt.err)
		})
	}
}

func TestSessionEditor_BeginSaveSendsFullPair(t *testing.T) {
	e := loadedEditor("A", "B")
	e.SetValue("A2")

	content, err := e.BeginSave()
	require.NoError(t, err)
	require.NotNil(t, content.Notes)
	require.NotNil(t, content.Transcript)
	assert.Equal(t, "A2", *content.Notes)
	assert.Equal(t, "B", *content.Transcript)
	assert.True(t, e.Saving())
	assert.False(t, e.CanSave())
}

func TestSessionEditor_BeginSaveRejectsWhileInFlight(t *testing.T) {
	e := loadedEditor("A", "B")
	_, err := e.BeginSave()
	require.NoError(t, err)

	_, err = e.BeginSave()
	assert.ErrorIs(t, err, ErrSaveInProgress)
}

func TestSessionEditor_BeginSaveRequiresLoadedSession(t *testing.T) {
	e := NewSessionEditor()
	e.LoadFailed(domain.ErrSessionNotFound)

	_, err := e.BeginSave()
	assert.ErrorIs(t, err, ErrNotEditable)
}

func TestSessionEditor_SaveFailedKeepsLocalEdits(t *testing.T) {
	e := loadedEditor("A", "B")
	e.SetValue("unsaved")
	_, err := e.BeginSave()
	require.NoError(t, err)

	e.SaveFailed(errors.New("boom"))

	assert.False(t, e.Saving())
	assert.True(t, e.CanSave(), "user may retry")
	assert.Equal(t, "unsaved", e.Notes())
	assert.EqualError(t, e.Err(), "boom")
}

func TestSessionEditor_SaveSucceededAdoptsCanonicalRecord(t *testing.T) {
	e := loadedEditor("A", "B")
	e.SetValue("A2")
	_, err := e.BeginSave()
	require.NoError(t, err)

	e.SaveSucceeded(&domain.Session{ID: "s1", Notes: strPtr("A2"), Transcript: strPtr("B"), Insights: []domain.Insight{{ID: "i1"}}})

	assert.False(t, e.Saving())
	assert.False(t, e.Dirty())
	assert.Len(t, e.Session().Insights, 1)
}

func TestSessionEditor_SaveSucceededKeepsEditsMadeDuringSave(t *testing.T) {
	e := loadedEditor("A", "B")
	_, err := e.BeginSave()
	require.NoError(t, err)
	e.SetValue("typed while saving")

	e.SaveSucceeded(&domain.Session{ID: "s1", Notes: strPtr("A"), Transcript: strPtr("B")})

	assert.Equal(t, "typed while saving", e.Notes())
	assert.True(t, e.Dirty())
}

func TestSessionEditor_ImportTranscript(t *testing.T) {
	e := loadedEditor("my notes", "old")

	require.NoError(t, e.ImportTranscript([]byte("Speaker 1: hello")))

	assert.Equal(t, "Speaker 1: hello", e.Transcript())
	assert.Equal(t, ModeTranscript, e.Mode())
	assert.Equal(t, "my notes", e.Notes(), "notes are untouched")
}

func TestSessionEditor_ImportTranscriptRequiresLoadedSession(t *testing.T) {
	e := NewSessionEditor()
	assert.ErrorIs(t, e.ImportTranscript([]byte("x")), ErrNotEditable)
}

func TestSessionEditor_CaptureSelectionTrims(t *testing.T) {
	e := loadedEditor("", "")

	assert.True(t, e.CaptureSelection("  very slow \n"))
	assert.Equal(t, "very slow", e.SelectedText())

	assert.False(t, e.CaptureSelection("   "), "blank selection is ignored")
	assert.Equal(t, "very slow", e.SelectedText())
}

func TestSessionEditor_MarkCapturesBetweenMarks(t *testing.T) {
	e := loadedEditor("it was  very slow  today", "")

	assert.False(t, e.Mark(6))
	assert.True(t, e.Selecting())
	assert.True(t, e.Mark(18))

	assert.False(t, e.Selecting())
	assert.Equal(t, "very slow", e.SelectedText())
}

func TestSessionEditor_MarkBackwards(t *testing.T) {
	e := loadedEditor("it was very slow today", "")

	e.Mark(16)
	require.True(t, e.Mark(7))
	assert.Equal(t, "very slow", e.SelectedText())
}

func TestSessionEditor_ModeSwitchCancelsSelectionInProgress(t *testing.T) {
	e := loadedEditor("abc", "def")
	e.Mark(0)

	e.ToggleMode()

	assert.False(t, e.Selecting())
}

func TestSessionEditor_InsightAdded(t *testing.T) {
	e := loadedEditor("", "")
	e.InsightAdded(domain.Insight{ID: "i1", Detail: domain.Quote{}})

	assert.Len(t, e.Session().Insights, 1)
}

func TestRuneOffset(t *testing.T) {
	value := "héllo\nwörld\n"

	assert.Equal(t, 0, runeOffset(value, 0, 0))
	assert.Equal(t, 3, runeOffset(value, 0, 3))
	assert.Equal(t, 6, runeOffset(value, 1, 0))
	assert.Equal(t, 8, runeOffset(value, 1, 2))
	assert.Equal(t, 11, runeOffset(value, 1, 99), "column is clamped to the line")
	assert.Equal(t, 12, runeOffset(value, 2, 0))
}

func TestTextBetween(t *testing.T) {
	assert.Equal(t, "wör", textBetween("hello wörld", 6, 9))
	assert.Equal(t, "wör", textBetween("hello wörld", 9, 6))
	assert.Equal(t, "wörld", textBetween("hello wörld", 6, 100))
	assert.Equal(t, "", textBetween("", 0, 3))
}

func TestValueOffset(t *testing.T) {
	tests := []struct {
		name  string
		value string
		shown int
		want  int
	}{
		{name: "plain text", value: "abc", shown: 2, want: 2},
		{name: "after a tab", value: "a\tb", shown: 5, want: 2},
		{name: "inside a tab", value: "a\tb", shown: 3, want: 2},
		{name: "crlf is two breaks", value: "a\r\nb", shown: 3, want: 3},
		{name: "control rune is hidden", value: "a\x07b", shown: 2, want: 3},
		{name: "past the end", value: "ab", shown: 9, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, valueOffset(tt.value, tt.shown))
		})
	}
}
