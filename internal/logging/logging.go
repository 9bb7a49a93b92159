// Package logging builds the zerolog loggers used across timelog.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldMonth     = "month"
	FieldPath      = "path"
	FieldLine      = "line"
	FieldIndex     = "index"
	FieldCount     = "count"
)

// Component names
const (
	ComponentStorage = "storage"
	ComponentService = "service"
	ComponentCLI     = "cli"
	ComponentTimer   = "timer"
)

// DefaultLevel is used when no level is configured
const DefaultLevel = "warn"

// New creates a logger writing human-readable lines to w at the given level.
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := ParseLevel(level)
	if err != nil {
		lvl = zerolog.WarnLevel
	}

	console := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}
	return zerolog.New(console).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// Nop returns a logger that discards everything
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// ParseLevel parses debug, info, warn or error (case-insensitive).
// An empty string yields DefaultLevel.
func ParseLevel(level string) (zerolog.Level, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		level = DefaultLevel
	}
	switch level {
	case "debug", "info", "warn", "error":
		return zerolog.ParseLevel(level)
	}
	return zerolog.NoLevel, &LevelError{Level: level}
}

// LevelError reports an unsupported log level name
type LevelError struct {
	Level string
}

func (e *LevelError) Error() string {
	return fmt.Sprintf("invalid log level %q: must be debug, info, warn or error", e.Level)
}

// Component returns a child logger tagged with the component name
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str(FieldComponent, name).Logger()
}
