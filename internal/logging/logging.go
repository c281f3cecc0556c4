// Package logging owns the process-wide structured logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
)

// DefaultMaxLogFiles is the rotation limit used when nothing else is configured
const DefaultMaxLogFiles = 1000

// Logger is the public logger instance accessible from all packages.
// It discards everything until Initialize is called.
var Logger = slog.New(discardHandler())

// fileHandler is the handler installed by Initialize, kept so a console
// sink can be attached later without losing the debug file
var fileHandler slog.Handler = discardHandler()

// Options controls where debug logs are written
type Options struct {
	Debug       bool
	DebugFile   string // custom path, disables rotation
	MaxLogFiles int    // 0 = unlimited
}

// fromEnv merges the inherited FIELDNOTES_DEBUG* variables into opts
func (o Options) fromEnv() Options {
	if os.Getenv("FIELDNOTES_DEBUG") == "1" {
		o.Debug = true
	}
	if o.DebugFile == "" {
		o.DebugFile = os.Getenv("FIELDNOTES_DEBUG_FILE")
	}
	if v, ok := os.LookupEnv("FIELDNOTES_MAX_LOG_FILES"); ok && o.MaxLogFiles == DefaultMaxLogFiles {
		if parsed, err := strconv.Atoi(v); err == nil {
			o.MaxLogFiles = parsed
		}
	}
	return o
}

// Initialize installs the debug file logger. It returns the path of the log
// file in use, or "" when records are discarded.
func Initialize(debug bool, debugFile string, maxLogFiles int) (string, error) {
	opts := Options{Debug: debug, DebugFile: debugFile, MaxLogFiles: maxLogFiles}.fromEnv()

	if !opts.Debug && opts.DebugFile == "" {
		install(discardHandler())
		return "", nil
	}

	path, err := logFilePath(opts)
	if err != nil {
		return "", err
	}

	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}

	install(slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug}))
	Logger.Info("Debug logging initialized", "log_file", path)
	return path, nil
}

// logFilePath picks the custom file or a fresh uuid-named file in the
// rotated log directory
func logFilePath(opts Options) (string, error) {
	if opts.DebugFile != "" {
		if err := os.MkdirAll(filepath.Dir(opts.DebugFile), 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		return opts.DebugFile, nil
	}

	dir, err := LogDir()
	if err != nil {
		return "", fmt.Errorf("failed to get log directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	if opts.MaxLogFiles > 0 {
		if err := rotateLogs(dir, opts.MaxLogFiles); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
		}
	}

	return filepath.Join(dir, uuid.New().String()+".log"), nil
}

// AttachConsole copies records at or above level to w in text form, next to
// the debug file. Used by long-running commands such as serve.
func AttachConsole(w io.Writer, level slog.Level) {
	console := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	Logger = slog.New(fanout{fileHandler, console})
}

func install(h slog.Handler) {
	fileHandler = h
	Logger = slog.New(h)
}

func discardHandler() slog.Handler {
	return slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1})
}
