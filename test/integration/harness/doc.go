// Package harness provides utilities for integration testing the fieldnotes CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - FIELDNOTES_HOME: Isolated per test (temp directory)
//   - FIELDNOTES_DEBUG: Disabled to reduce noise
//   - FIELDNOTES_DATABASE_DRIVER, FIELDNOTES_DATABASE_DSN: Cleared so the
//     SQLite database inside FIELDNOTES_HOME is used
package harness
