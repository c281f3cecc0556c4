package ports

import "context"

// RecordingLinker turns a stored recording reference into a URL a browser can open
type RecordingLinker interface {
	Link(ctx context.Context, ref string) (string, error)
}
