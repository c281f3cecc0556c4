package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationTarget_DetectsAlreadyAppliedOnSQLite(t *testing.T) {
	ctx := context.Background()
	target, err := NewMigrationTarget(ctx, DriverSQLite, filepath.Join(t.TempDir(), "m.db"))
	require.NoError(t, err)
	defer target.Close()

	require.NoError(t, target.Exec(ctx, "CREATE TABLE things (id TEXT PRIMARY KEY)"))
	require.NoError(t, target.Exec(ctx, "ALTER TABLE things ADD COLUMN label TEXT"))
	require.NoError(t, target.Exec(ctx, "CREATE INDEX idx_things_label ON things (label)"))

	tests := []struct {
		name string
		stmt string
	}{
		{"duplicate table", "CREATE TABLE things (id TEXT PRIMARY KEY)"},
		{"duplicate column", "ALTER TABLE things ADD COLUMN label TEXT"},
		{"duplicate index", "CREATE INDEX idx_things_label ON things (label)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := target.Exec(ctx, tt.stmt)
			require.Error(t, err)
			assert.True(t, target.IsAlreadyApplied(err), "got %v", err)
		})
	}

	err = target.Exec(ctx, "CREATE TABLE broken (")
	require.Error(t, err)
	assert.False(t, target.IsAlreadyApplied(err), "syntax errors are fatal")
}

func TestIsAlreadyExists_PostgresCodes(t *testing.T) {
	tests := []struct {
		code     string
		expected bool
	}{
		{"42701", true},
		{"42P07", true},
		{"42710", true},
		{"42P06", true},
		{"42601", false}, // syntax_error
		{"23505", false}, // unique_violation
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := &pgconn.PgError{Code: tt.code, Message: "relation \"sessions\" already exists"}
			assert.Equal(t, tt.expected, IsAlreadyExists(err))
		})
	}
}

func TestIsAlreadyExists_MessageFallback(t *testing.T) {
	assert.True(t, IsAlreadyExists(errors.New("duplicate column name: transcript")))
	assert.True(t, IsAlreadyExists(errors.New("table sessions already exists")))
	assert.False(t, IsAlreadyExists(errors.New("no such table: sessions")))
	assert.False(t, IsAlreadyExists(nil))
}

func TestParseDriver(t *testing.T) {
	d, err := ParseDriver("")
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, d)

	d, err = ParseDriver("PostgreSQL")
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, d)

	_, err = ParseDriver("mysql")
	assert.Error(t, err)
}
