package ui

import (
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// ImportFormResult contains the picked transcript file
type ImportFormResult struct {
	Cancelled bool
	Path      string
}

// ImportForm lets the user pick a text file to import as the transcript
type ImportForm struct {
	Completed bool
	form      *huh.Form
	keys      *KeyMap
	result    ImportFormResult
}

// NewImportForm creates a file picker rooted at startDir (the working directory when empty)
func NewImportForm(startDir string, keys *KeyMap) *ImportForm {
	if startDir == "" {
		if wd, err := os.Getwd(); err == nil {
			startDir = wd
		}
	}

	f := &ImportForm{keys: keys}
	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewFilePicker().
				Title("Import transcript").
				Description("The file replaces the current transcript").
				CurrentDirectory(startDir).
				DirAllowed(false).
				FileAllowed(true).
				Height(15).
				Picking(true).
				Value(&f.result.Path),
		),
	).WithShowHelp(true)

	return f
}

func (f *ImportForm) Init() tea.Cmd {
	return f.form.Init()
}

func (f *ImportForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, f.keys.Application.Back, f.keys.Application.ForceQuit) {
			f.result.Cancelled = true
			f.Completed = true
			return f, nil
		}
	}

	form, cmd := f.form.Update(msg)
	if updated, ok := form.(*huh.Form); ok {
		f.form = updated
	}

	switch f.form.State {
	case huh.StateCompleted:
		f.Completed = true
		return f, nil
	case huh.StateAborted:
		f.result.Cancelled = true
		f.Completed = true
		return f, nil
	}

	return f, cmd
}

func (f *ImportForm) View() string {
	return f.form.View()
}

// Result returns the form result
func (f *ImportForm) Result() ImportFormResult {
	return f.result
}
