// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package logging

import (
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration.
type Config struct {
	// Level is the minimum log level: trace, debug, info, warn, error,
	// fatal, panic or disabled. Unknown values fall back to info.
	Level string

	// Format is json or console.
	Format string

	// Caller adds file:line to every event.
	Caller bool

	// Timestamp adds a time field to every event.
	Timestamp bool

	// Service, when set, is attached to every event as "service".
	Service string

	// Output defaults to os.Stderr.
	Output io.Writer
}

// DefaultConfig returns JSON logging at info level to stderr.
func DefaultConfig() Config {
	return Config{
		Level:     "info",
		Format:    "json",
		Timestamp: true,
		Service:   "internmatch",
		Output:    os.Stderr,
	}
}

// current holds the process-wide logger. Swapped whole on Init/SetLogger.
var current atomic.Pointer[zerolog.Logger]

//nolint:gochecknoinits // logging must work before Init is called
func init() {
	Init(DefaultConfig())
}

// Init builds a logger from cfg and installs it globally. Safe to call
// more than once; callers holding an older logger keep using it.
func Init(cfg Config) {
	l := New(cfg)
	current.Store(&l)
}

// New builds a logger from cfg without installing it.
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFieldName = "time"
	zerolog.MessageFieldName = "message"

	ctx := zerolog.New(out).Level(parseLevel(cfg.Level)).With()
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	if cfg.Service != "" {
		ctx = ctx.Str("service", cfg.Service)
	}
	return ctx.Logger()
}

// parseLevel maps a level name to zerolog.Level. "warning" is accepted as
// an alias and anything unrecognized is info.
func parseLevel(level string) zerolog.Level {
	level = strings.ToLower(strings.TrimSpace(level))
	switch level {
	case "warning":
		return zerolog.WarnLevel
	case "", "info":
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Logger returns a copy of the global logger.
func Logger() zerolog.Logger {
	return *current.Load()
}

// SetLogger replaces the global logger. Tests use it with NewTestLogger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func SetLogger(l zerolog.Logger) {
	current.Store(&l)
}

// WithComponent returns a child of the global logger tagged with
// component, e.g. "supervisor" or "probe".
func WithComponent(component string) zerolog.Logger {
	return current.Load().With().Str("component", component).Logger()
}

// Debug starts a debug event on the global logger.
func Debug() *zerolog.Event { return current.Load().Debug() }

// Info starts an info event on the global logger.
func Info() *zerolog.Event { return current.Load().Info() }

// Warn starts a warn event on the global logger.
func Warn() *zerolog.Event { return current.Load().Warn() }

// Error starts an error event on the global logger.
func Error() *zerolog.Event { return current.Load().Error() }

// Fatal logs at fatal level and exits the process once the event is sent.
func Fatal() *zerolog.Event { return current.Load().Fatal() }

// NewTestLogger returns a debug-level JSON logger writing to w.
func NewTestLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}
