// Package logging routes structured logs to a file. The TUI owns the
// terminal, so nothing may ever be written to stdout or stderr while the
// screen is active.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Logger is the process-wide logger, discarding until Initialize is called
var Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))

// Initialize sets up file logging. With debug false and no explicit path
// all logs are discarded. Each run gets a session id so interleaved runs
// sharing a log file stay distinguishable.
func Initialize(debug bool, path string) error {
	if os.Getenv("BLOCKD_DEBUG") == "1" {
		debug = true
	}
	if env := os.Getenv("BLOCKD_DEBUG_FILE"); env != "" && path == "" {
		path = env
	}

	if !debug && path == "" {
		Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
		return nil
	}

	session := uuid.New().String()[:8]
	if path == "" {
		path = filepath.Join(os.TempDir(), fmt.Sprintf("blockd-%s.log", session))
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	Logger = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level})).
		With("session", session)
	Logger.Info("logging initialized", "path", path, "debug", debug)
	return nil
}
