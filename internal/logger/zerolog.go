// Package logger builds the zerolog loggers used by the edge-mcp binary.
//
// Stdout carries the MCP protocol, so every logger built here is meant to
// be pointed at stderr or a file.
package logger

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Environment variables read by FromEnv.
const (
	EnvLevel  = "EDGE_MCP_LOG_LEVEL"
	EnvFormat = "EDGE_MCP_LOG_FORMAT"
)

// New returns a JSON logger writing to w at level with a timestamp field.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// NewConsole returns a human-readable logger writing to w at level.
// Colors are disabled since the output is usually captured by an MCP client.
func NewConsole(w io.Writer, level zerolog.Level) zerolog.Logger {
	return New(zerolog.ConsoleWriter{Out: w, NoColor: true}, level)
}

// ParseLevel maps a level name to a zerolog level. Empty and unknown names
// fall back to info; "warning" is accepted as an alias for warn.
func ParseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	if s == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// FromEnv builds a logger from EDGE_MCP_LOG_LEVEL and EDGE_MCP_LOG_FORMAT.
// getenv is normally os.Getenv. A format of "console" selects NewConsole;
// anything else produces JSON lines.
func FromEnv(w io.Writer, getenv func(string) string) zerolog.Logger {
	level := ParseLevel(getenv(EnvLevel))
	if strings.EqualFold(strings.TrimSpace(getenv(EnvFormat)), "console") {
		return NewConsole(w, level)
	}
	return New(w, level)
}
