package ui

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	ErrNotEditable    = errors.New("session is not loaded")
	ErrNoSelection    = errors.New("no text selected: mark both ends first")
	ErrReadOnlyText   = errors.New("text is read-only: " + readOnlyReason)
	ErrSaveInProgress = errors.New("save already in progress")
)

// readOnlyReason explains why a value cannot be edited in the terminal
const readOnlyReason = "it has tabs or carriage returns, or is too long for the editor"

const (
	maxErrorLines  = 2
	errorPrefix    = "Error: "
	minLineWidth   = 10
	truncationMark = "..."
)

// formatErrorForDisplay word-wraps an error to at most maxErrorLines lines of
// maxWidth, with the "Error: " prefix counted against the first line. Text
// that does not fit ends with "...".
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}
	words := strings.Fields(err.Error())
	if len(words) == 0 {
		return errorPrefix + "unknown error"
	}

	width := max(maxWidth, minLineWidth)
	limit := max(width-utf8.RuneCountInString(errorPrefix), minLineWidth)

	var lines []string
	var line strings.Builder
	truncated := false
	for _, word := range words {
		n := utf8.RuneCountInString(line.String())
		if n > 0 && n+1+utf8.RuneCountInString(word) > limit {
			lines = append(lines, line.String())
			line.Reset()
			limit = width
			if len(lines) == maxErrorLines {
				truncated = true
				break
			}
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}

	if truncated {
		last := []rune(lines[len(lines)-1])
		keep := width - utf8.RuneCountInString(truncationMark)
		if len(last) > keep {
			last = last[:keep]
		}
		lines[len(lines)-1] = string(last) + truncationMark
	}

	return errorPrefix + strings.Join(lines, "\n")
}
