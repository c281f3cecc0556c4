package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"fieldnotes/internal/domain"
	"fieldnotes/internal/logging"
	"fieldnotes/internal/ports"
	"fieldnotes/migrations"
)

// MigrationTargetFactory opens the connection a migration run executes against
type MigrationTargetFactory func(ctx context.Context) (ports.MigrationTarget, error)

// MigrationFileStatus is the outcome of one migration file
type MigrationFileStatus string

const (
	MigrationApplied MigrationFileStatus = "applied"
	MigrationMissing MigrationFileStatus = "missing"
)

// MigrationFileResult records what happened to one file during a run
type MigrationFileResult struct {
	AlreadyApplied int
	Executed       int
	Name           string
	Status         MigrationFileStatus
}

// MigrationReport summarizes a migration run in file order
type MigrationReport struct {
	Files []MigrationFileResult
}

// AlreadyApplied returns the number of statements skipped as already applied
func (r *MigrationReport) AlreadyApplied() int {
	total := 0
	for _, f := range r.Files {
		total += f.AlreadyApplied
	}
	return total
}

// Executed returns the number of statements that ran successfully
func (r *MigrationReport) Executed() int {
	total := 0
	for _, f := range r.Files {
		total += f.Executed
	}
	return total
}

// MigrationService applies SQL migration files in a fixed order
type MigrationService struct {
	out           io.Writer
	targetFactory MigrationTargetFactory
}

// NewMigrationService creates a new MigrationService. Progress lines are
// written to out; pass io.Discard to silence them.
func NewMigrationService(targetFactory MigrationTargetFactory, out io.Writer) *MigrationService {
	if out == nil {
		out = io.Discard
	}
	return &MigrationService{
		out:           out,
		targetFactory: targetFactory,
	}
}

// SplitStatements splits file contents on the statement breakpoint marker,
// trims each fragment and drops empty ones
func SplitStatements(contents string) []string {
	var statements []string
	for _, fragment := range strings.Split(contents, migrations.StatementBreakpoint) {
		if stmt := strings.TrimSpace(fragment); stmt != "" {
			statements = append(statements, stmt)
		}
	}
	return statements
}

// Apply runs the named files from source in order. A missing file is
// skipped. A statement failing because its object already exists is logged
// and skipped. Any other failure stops the run and is returned as a
// *domain.MigrationError; statements executed before it stay applied.
func (s *MigrationService) Apply(ctx context.Context, source fs.FS, names []string) (*MigrationReport, error) {
	logging.Logger.Info("Starting migration run", "files", len(names))

	target, err := s.targetFactory(ctx)
	if err != nil {
		logging.Logger.Error("Failed to open migration target", "error", err)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if closeErr := target.Close(); closeErr != nil {
			logging.Logger.Warn("Failed to close migration connection", "error", closeErr)
		}
	}()

	report := &MigrationReport{}
	for _, name := range names {
		result, err := s.applyFile(ctx, target, source, name)
		report.Files = append(report.Files, result)
		if err != nil {
			return report, err
		}
	}

	logging.Logger.Info("Migration run complete",
		"executed", report.Executed(),
		"already_applied", report.AlreadyApplied())
	fmt.Fprintf(s.out, "Migrations complete: %d statements executed, %d already applied\n",
		report.Executed(), report.AlreadyApplied())

	return report, nil
}

func (s *MigrationService) applyFile(
	ctx context.Context,
	target ports.MigrationTarget,
	source fs.FS,
	name string,
) (MigrationFileResult, error) {
	result := MigrationFileResult{Name: name, Status: MigrationApplied}

	data, err := fs.ReadFile(source, name)
	if errors.Is(err, fs.ErrNotExist) {
		logging.Logger.Warn("Migration file not found, skipping", "file", name)
		fmt.Fprintf(s.out, "⚠ %s: not found, skipping\n", name)
		result.Status = MigrationMissing
		return result, nil
	}
	if err != nil {
		return result, &domain.MigrationError{File: name, Err: fmt.Errorf("failed to read file: %w", err)}
	}

	fmt.Fprintf(s.out, "Applying %s\n", name)
	for i, stmt := range SplitStatements(string(data)) {
		if err := target.Exec(ctx, stmt); err != nil {
			if target.IsAlreadyApplied(err) {
				logging.Logger.Info("Statement already applied", "file", name, "statement", i+1, "error", err)
				fmt.Fprintf(s.out, "  statement %d already applied\n", i+1)
				result.AlreadyApplied++
				continue
			}

			logging.Logger.Error("Migration statement failed", "file", name, "statement", i+1, "error", err)
			return result, &domain.MigrationError{
				Err:            err,
				File:           name,
				Statement:      stmt,
				StatementIndex: i + 1,
			}
		}
		result.Executed++
	}

	fmt.Fprintf(s.out, "✓ %s (%d executed, %d already applied)\n", name, result.Executed, result.AlreadyApplied)
	return result, nil
}
