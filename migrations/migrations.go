// Package migrations holds the ordered SQL schema migrations. Files are
// authored in the statement-breakpoint format and are also embedded so a
// binary can migrate without the directory on disk.
package migrations

import "embed"

// StatementBreakpoint separates independently executable statements within a file
const StatementBreakpoint = "--> statement-breakpoint"

// Ordered is the fixed apply order. New files must be appended, never reordered.
var Ordered = []string{
	"0000_initial_schema.sql",
	"0001_session_transcript.sql",
	"0002_insights.sql",
	"0003_workflows.sql",
	"0004_session_date_index.sql",
}

// Files embeds every migration in this directory
//
//go:embed *.sql
var Files embed.FS
