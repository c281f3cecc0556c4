package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fieldnotes/internal/logging"
	"fieldnotes/internal/ports"
)

// MigrationTarget runs migration statements over one pinned connection
type MigrationTarget struct {
	conn *sql.Conn
	db   *sql.DB
}

var _ ports.MigrationTarget = (*MigrationTarget)(nil)

// NewMigrationTarget opens the database and acquires the single connection
// used for the whole run
func NewMigrationTarget(ctx context.Context, driver Driver, dsn string) (*MigrationTarget, error) {
	gdb, err := openDB(driver, dsn)
	if err != nil {
		return nil, err
	}

	db, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}

	conn, err := db.Conn(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}

	logging.Logger.Debug("Migration connection acquired", "driver", driver)
	return &MigrationTarget{conn: conn, db: db}, nil
}

// Exec runs a single statement with no transaction around it
func (t *MigrationTarget) Exec(ctx context.Context, statement string) error {
	_, err := t.conn.ExecContext(ctx, statement)
	return err
}

// IsAlreadyApplied reports whether err is an "object already exists" failure
func (t *MigrationTarget) IsAlreadyApplied(err error) bool {
	return IsAlreadyExists(err)
}

// Close releases the connection and the pool behind it
func (t *MigrationTarget) Close() error {
	return errors.Join(t.conn.Close(), t.db.Close())
}
