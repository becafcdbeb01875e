package logging

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-faster/errors"
)

// New builds a logger writing to w at the given level name.
// Unknown level names fall back to info.
func New(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           lvl,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return New(io.Discard, "error")
}

// OpenFile returns a logger appending to path. An empty path yields a
// discarding logger, since the TUI owns stdout and stderr.
// The returned close func is never nil.
func OpenFile(path, level string) (*log.Logger, func() error, error) {
	if path == "" {
		return Discard(), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open log file")
	}
	return New(f, level), f.Close, nil
}
