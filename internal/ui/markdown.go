package ui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// previewStyle is fixed rather than auto-detected so output is the same over SSH
const previewStyle = "dark"

// RenderMarkdown renders text as terminal markdown wrapped at width
func RenderMarkdown(text string, width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath(previewStyle),
		glamour.WithWordWrap(max(width, 20)),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	out, err := renderer.Render(text)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}
