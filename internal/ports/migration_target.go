package ports

import "context"

// MigrationTarget is a single database connection that migration statements run against
type MigrationTarget interface {
	// Exec runs one statement outside of any transaction
	Exec(ctx context.Context, statement string) error
	// IsAlreadyApplied reports whether err means the object the statement creates already exists
	IsAlreadyApplied(err error) bool
	Close() error
}
