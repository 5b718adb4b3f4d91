// Package logger builds the slog loggers used by the server.  Records go to
// stdout as JSON and, when a file is configured, to a size-rotated file.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures New.
type Options struct {
	Level string // debug | info | warn | error
	File  string // optional path of a rotated log file
}

// New returns a JSON logger writing to stdout and, if opts.File is set, to a
// lumberjack-rotated file.  The returned closer flushes the file.
func New(opts Options) (*slog.Logger, io.Closer) {
	var (
		w      io.Writer = os.Stdout
		closer io.Closer = nopCloser{}
	)
	if opts.File != "" {
		rot := NewRotatingFile(opts.File)
		w = io.MultiWriter(os.Stdout, rot)
		closer = rot
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(opts.Level)})
	return slog.New(h), closer
}

// NewRotatingFile returns a writer that rotates path at 50 MB and keeps a
// week of compressed backups.
func NewRotatingFile(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    50,
		MaxBackups: 7,
		MaxAge:     7,
		Compress:   true,
	}
}

// ParseLevel maps a level name to slog.Level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
