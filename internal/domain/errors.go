package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidInsightKind = errors.New("invalid insight kind")
	ErrInvalidSessionType = errors.New("invalid session type")
	ErrInvalidSeverity    = errors.New("invalid severity")
	ErrNoRecording        = errors.New("session has no recording")
	ErrProjectNotFound    = errors.New("project not found")
	ErrSessionNotFound    = errors.New("session not found")
)

// IsValidationError reports whether err was caused by bad caller input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrInvalidInsightKind) ||
		errors.Is(err, ErrInvalidSessionType) ||
		errors.Is(err, ErrInvalidSeverity)
}

// MigrationError is returned when a migration statement fails for a reason
// other than the target object already existing. It aborts the run.
type MigrationError struct {
	Err            error
	File           string
	Statement      string
	StatementIndex int // 1-based within File
}

func (e *MigrationError) Error() string {
	return fmt.Sprintf("migration %s statement %d failed: %v", e.File, e.StatementIndex, e.Err)
}

func (e *MigrationError) Unwrap() error {
	return e.Err
}
