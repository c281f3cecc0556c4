package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// clearErrorMsg is sent after the error clear delay. It only clears the
// error it was scheduled for.
type clearErrorMsg struct {
	generation int
}

// ErrorManager holds the error shown in the status line and clears it
// after a delay
type ErrorManager struct {
	currentError    error
	errorClearDelay time.Duration
	generation      int // bumped by every SetError
}

// NewErrorManager creates a new ErrorManager with the specified auto-clear delay
func NewErrorManager(errorClearDelay time.Duration) *ErrorManager {
	return &ErrorManager{errorClearDelay: errorClearDelay}
}

// SetError sets the error to display and returns the command that clears it
func (em *ErrorManager) SetError(err error) tea.Cmd {
	em.currentError = err
	em.generation++
	generation := em.generation
	return tea.Tick(em.errorClearDelay, func(time.Time) tea.Msg {
		return clearErrorMsg{generation: generation}
	})
}

// handleClear clears the error unless a newer one replaced it since msg was scheduled
func (em *ErrorManager) handleClear(msg clearErrorMsg) {
	if msg.generation == em.generation {
		em.currentError = nil
	}
}

// GetError returns the current error
func (em *ErrorManager) GetError() error {
	return em.currentError
}

// HasError returns true if there is a current error
func (em *ErrorManager) HasError() bool {
	return em.currentError != nil
}
